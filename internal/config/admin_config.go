package config

// AdminCredentials identify the single privileged account created at startup.
type AdminCredentials struct {
	Email    string
	Password string
}

// Configured reports whether both parts of the credential pair are present.
func (c AdminCredentials) Configured() bool {
	return c.Email != "" && c.Password != ""
}

type AdminConfig interface {
	GetAdminCredentials() AdminCredentials
}

type Admin struct{}

var _ AdminConfig = Admin{}

func (Admin) GetAdminCredentials() AdminCredentials {
	return AdminCredentials{
		Email:    GetEnv("ADMIN_EMAIL", ""),
		Password: GetEnv("ADMIN_PASSWORD", ""),
	}
}
