package identity

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	apperrors "github.com/jrsteele09/go-seller-bootstrap/internal/errors"
)

// SecureTokenIssuer prefixes the project id to form the ID token issuer.
const SecureTokenIssuer = "https://securetoken.google.com/"

// TokenVerifier checks an ID token returned by a sign in before it is trusted.
type TokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) error
}

// VerifierFunc adapts a function to TokenVerifier.
type VerifierFunc func(ctx context.Context, rawIDToken string) error

func (f VerifierFunc) Verify(ctx context.Context, rawIDToken string) error {
	return f(ctx, rawIDToken)
}

// OIDCVerifier validates ID tokens against the project's secure token issuer.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

var _ TokenVerifier = (*OIDCVerifier)(nil)

// NewOIDCVerifier discovers the issuer's signing keys. It performs a network call.
func NewOIDCVerifier(ctx context.Context, projectID string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, SecureTokenIssuer+projectID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "[identity NewOIDCVerifier] failed to discover issuer")
	}
	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: projectID}),
	}, nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, rawIDToken string) error {
	if _, err := v.verifier.Verify(ctx, rawIDToken); err != nil {
		return fmt.Errorf("[identity OIDCVerifier.Verify] %w: %w", apperrors.ErrInvalidToken, err)
	}
	return nil
}
