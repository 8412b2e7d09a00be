package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"` // minutes
}

type ChangeEmailMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"` // minutes
}

type AppointmentMailData struct {
	FullName    string `json:"fullName"`
	SalonName   string `json:"salonName"`
	ServiceName string `json:"serviceName"`
	StylistName string `json:"stylistName"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	Status      string `json:"status"`
}

type StaffInviteMailData struct {
	Name       string `json:"name"`
	SalonName  string `json:"salonName"`
	Token      string `json:"token"`
	Expiration int    `json:"expiration"` // hours
}
