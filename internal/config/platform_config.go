package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	apperrors "github.com/jrsteele09/go-seller-bootstrap/internal/errors"
)

// PlatformOptions is the web-app configuration record of the backing Firebase project.
type PlatformOptions struct {
	APIKey            string `env:"FIREBASE_API_KEY"`
	AuthDomain        string `env:"FIREBASE_AUTH_DOMAIN"`
	ProjectID         string `env:"FIREBASE_PROJECT_ID"`
	StorageBucket     string `env:"FIREBASE_STORAGE_BUCKET"`
	MessagingSenderID string `env:"FIREBASE_MESSAGING_SENDER_ID"`
	AppID             string `env:"FIREBASE_APP_ID"`
	MeasurementID     string `env:"FIREBASE_MEASUREMENT_ID"`
}

// Validate checks the fields the platform clients cannot start without.
func (o PlatformOptions) Validate() error {
	if o.APIKey == "" {
		return fmt.Errorf("FIREBASE_API_KEY is required")
	}
	if o.ProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}
	return nil
}

type PlatformConfig interface {
	GetPlatformOptions() (PlatformOptions, error)
	GetCredentialsFile() string
	GetIdentityBaseURL() string
	GetIdentityTimeout() time.Duration
	GetVerifyIDTokens() bool
}

type Platform struct{}

var _ PlatformConfig = Platform{}

func (Platform) GetPlatformOptions() (PlatformOptions, error) {
	var opts PlatformOptions
	if err := env.Parse(&opts); err != nil {
		return PlatformOptions{}, apperrors.Wrapf(err, "[config GetPlatformOptions] failed to parse platform options")
	}
	return opts, nil
}

// GetCredentialsFile returns the service account file, empty means application default credentials.
func (Platform) GetCredentialsFile() string {
	return GetEnv("GOOGLE_APPLICATION_CREDENTIALS", "")
}

// GetIdentityBaseURL points at the Identity Toolkit REST API, or an auth emulator.
func (Platform) GetIdentityBaseURL() string {
	return GetEnv("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com")
}

func (Platform) GetIdentityTimeout() time.Duration {
	return GetEnvDuration("IDENTITY_TIMEOUT", 30*time.Second)
}

func (Platform) GetVerifyIDTokens() bool {
	return GetEnvBool("VERIFY_ID_TOKENS", false)
}
