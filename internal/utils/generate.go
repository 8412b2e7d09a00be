package utils

import (
	"fmt"
	"math/rand"

	"golang.org/x/crypto/bcrypt"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

var firstNames = []string{"Ava", "Mia", "Noah", "Liam", "Emma", "Olivia", "Lucas", "Sofia", "Ethan", "Chloe"}
var lastNames = []string{"Nguyen", "Garcia", "Smith", "Chen", "Patel", "Johnson", "Kim", "Lopez", "Brown", "Silva"}

// GenerateRandomUser returns a throwaway client account for seeding. Every
// seeded user shares the configured password so logging in as one is easy.
func GenerateRandomUser(password string) (*domain.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]
	suffix := rand.Intn(100000)

	return &domain.User{
		Username:     fmt.Sprintf("%s%s%d", first, last, suffix),
		PasswordHash: string(passwordHash),
		FullName:     fmt.Sprintf("%s %s", first, last),
		Email:        fmt.Sprintf("%s.%s.%d@example.com", first, last, suffix),
		Phone:        fmt.Sprintf("555-%04d", rand.Intn(10000)),
		Role:         domain.RoleClient,
	}, nil
}
