package platform_test

import (
	"context"
	"testing"
	"time"

	"github.com/jrsteele09/go-seller-bootstrap/internal/config"
	"github.com/jrsteele09/go-seller-bootstrap/platform"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubPlatformConfig struct {
	config.Platform
	opts config.PlatformOptions
}

func (s stubPlatformConfig) GetPlatformOptions() (config.PlatformOptions, error) {
	return s.opts, nil
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    config.PlatformOptions
		wantErr string
	}{
		{name: "missing api key", opts: config.PlatformOptions{ProjectID: "shop"}, wantErr: "FIREBASE_API_KEY"},
		{name: "missing project", opts: config.PlatformOptions{APIKey: "key"}, wantErr: "FIREBASE_PROJECT_ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			app, err := platform.New(ctx, stubPlatformConfig{opts: tt.opts}, zerolog.Nop())
			require.Error(t, err)
			require.Nil(t, app)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
