package logging_test

import (
	"bytes"
	"testing"

	"github.com/jrsteele09/go-seller-bootstrap/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json output outside DEV", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(logging.Config{Level: "warn", Env: "PROD", Out: &buf})

		logger.Info().Msg("hidden")
		component := logging.Component(logger, "provisioning")
		component.Warn().Msg("visible")

		out := buf.String()
		require.NotContains(t, out, "hidden")
		require.Contains(t, out, `"component":"provisioning"`)
		require.Contains(t, out, `"message":"visible"`)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(logging.Config{Level: "chatty", Env: "PROD", Out: &buf})

		logger.Debug().Msg("debug")
		logger.Info().Msg("info")

		require.NotContains(t, buf.String(), `"message":"debug"`)
		require.Contains(t, buf.String(), `"message":"info"`)
	})
}
