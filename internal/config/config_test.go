package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-seller-bootstrap/internal/config"
	"github.com/stretchr/testify/require"
)

func TestEnvVars(t *testing.T) {
	t.Run("port gets a colon prefix", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		require.Equal(t, ":9090", config.EnvVars{}.GetPort())
	})

	t.Run("port already prefixed", func(t *testing.T) {
		t.Setenv("PORT", ":9191")
		require.Equal(t, ":9191", config.EnvVars{}.GetPort())
	})

	t.Run("env defaults to DEV", func(t *testing.T) {
		t.Setenv("ENV", "")
		require.Equal(t, "DEV", config.EnvVars{}.GetEnv())
	})
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("TEST_INT", "7")
	t.Setenv("TEST_BAD_INT", "seven")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "5s")

	require.Equal(t, 7, config.GetEnvInt("TEST_INT", 1))
	require.Equal(t, 1, config.GetEnvInt("TEST_BAD_INT", 1))
	require.True(t, config.GetEnvBool("TEST_BOOL", false))
	require.False(t, config.GetEnvBool("TEST_MISSING_BOOL", false))
	require.Equal(t, 5*time.Second, config.GetEnvDuration("TEST_DURATION", time.Second))
	require.Equal(t, time.Second, config.GetEnvDuration("TEST_MISSING_DURATION", time.Second))
}

func TestPlatformOptions(t *testing.T) {
	t.Setenv("FIREBASE_API_KEY", "api-key")
	t.Setenv("FIREBASE_AUTH_DOMAIN", "shop.firebaseapp.com")
	t.Setenv("FIREBASE_PROJECT_ID", "shop")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "shop.appspot.com")
	t.Setenv("FIREBASE_MESSAGING_SENDER_ID", "1234")
	t.Setenv("FIREBASE_APP_ID", "1:1234:web:abcd")
	t.Setenv("FIREBASE_MEASUREMENT_ID", "G-XYZ")

	opts, err := config.Platform{}.GetPlatformOptions()
	require.NoError(t, err)
	require.NoError(t, opts.Validate())
	require.Equal(t, config.PlatformOptions{
		APIKey:            "api-key",
		AuthDomain:        "shop.firebaseapp.com",
		ProjectID:         "shop",
		StorageBucket:     "shop.appspot.com",
		MessagingSenderID: "1234",
		AppID:             "1:1234:web:abcd",
		MeasurementID:     "G-XYZ",
	}, opts)

	t.Run("missing project id", func(t *testing.T) {
		err := config.PlatformOptions{APIKey: "k"}.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "FIREBASE_PROJECT_ID")
	})
}

func TestAdminCredentials(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_PASSWORD", "")

	creds := config.Admin{}.GetAdminCredentials()
	require.Equal(t, "ops@example.com", creds.Email)
	require.False(t, creds.Configured())

	t.Setenv("ADMIN_PASSWORD", "s3cret")
	require.True(t, config.Admin{}.GetAdminCredentials().Configured())
}
