package provisioning_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/jrsteele09/go-seller-bootstrap/internal/errors"
	"github.com/jrsteele09/go-seller-bootstrap/platform/docstore/docstorefake"
	"github.com/jrsteele09/go-seller-bootstrap/platform/identity"
	"github.com/jrsteele09/go-seller-bootstrap/profiles"
	"github.com/jrsteele09/go-seller-bootstrap/provisioning"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newIdentityAPI answers every sign in with signInCode and every sign up with signUpCode.
func newIdentityAPI(t *testing.T, signInCode, signUpCode string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := signUpCode
		if r.URL.Path == "/v1/accounts:signInWithPassword" {
			code = signInCode
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"` + code + `"}}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestProvision_IdentityAPI(t *testing.T) {
	tests := []struct {
		name        string
		signInCode  string
		wantErr     error
		wantOutcome provisioning.Outcome
		wantLog     string
	}{
		{
			name:        "ambiguous sign in then existing email",
			signInCode:  "INVALID_LOGIN_CREDENTIALS",
			wantErr:     apperrors.ErrInvalidCredentials,
			wantOutcome: provisioning.OutcomeFailed,
		},
		{
			name:        "unknown email then existing email",
			signInCode:  "EMAIL_NOT_FOUND",
			wantOutcome: provisioning.OutcomeAlreadyExists,
			wantLog:     "Admin user already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newIdentityAPI(t, tt.signInCode, "EMAIL_EXISTS")
			docs := docstorefake.NewFakeDocStore()
			logs := &bytes.Buffer{}

			p := provisioning.NewAdminProvisioner(
				identity.New(server.URL, "test-api-key"),
				profiles.NewRepo(docs),
				adminCredentials(),
				zerolog.New(logs),
			)

			err := p.ProvisionErr(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantOutcome, p.Outcome())
			require.Zero(t, docs.SetCalls)
			if tt.wantLog != "" {
				require.Contains(t, logs.String(), tt.wantLog)
			}
		})
	}
}
