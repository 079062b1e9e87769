// Package identity talks to the platform's email/password authentication API and tracks
// the principal the process is currently signed in as.
package identity

import "context"

// Service is the authentication surface the bootstrap procedures depend on.
type Service interface {
	// SignIn authenticates with email and password and makes the result the current principal.
	SignIn(ctx context.Context, email, password string) (*Principal, error)

	// SignUp creates an account and signs in as it.
	SignUp(ctx context.Context, email, password string) (*Principal, error)

	// SignOut clears the current principal.
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed in principal, nil when signed out.
	CurrentUser() *Principal
}
