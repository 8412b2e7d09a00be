package utils

import (
	"fmt"
	"math/rand"
)

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var slugRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

// GenerateSlugSuffix returns a short lowercase suffix used to disambiguate
// colliding salon slugs.
func GenerateSlugSuffix(length int) string {
	suffix := make([]rune, length)
	for i := range suffix {
		suffix[i] = slugRunes[rand.Intn(len(slugRunes))]
	}
	return string(suffix)
}
