// Package provisioning makes sure the platform's single admin account and its profile exist.
package provisioning

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jrsteele09/go-seller-bootstrap/internal/config"
	apperrors "github.com/jrsteele09/go-seller-bootstrap/internal/errors"
	"github.com/jrsteele09/go-seller-bootstrap/platform/identity"
	"github.com/jrsteele09/go-seller-bootstrap/profiles"
	"github.com/rs/zerolog"
)

// Outcome describes what a provisioning attempt did.
type Outcome string

const (
	OutcomeNone           Outcome = ""                // Not attempted yet
	OutcomeSkipped        Outcome = "skipped"         // No admin credentials configured
	OutcomeExisting       Outcome = "existing"        // Account and profile already present
	OutcomeProfileCreated Outcome = "profile_created" // Account present, profile written
	OutcomeCreated        Outcome = "created"         // Account and profile created
	OutcomeAlreadyExists  Outcome = "already_exists"  // Account creation raced with another creator
	OutcomeFailed         Outcome = "failed"
)

// AdminProvisioner creates the admin account on first start. Each instance makes at most
// one attempt; the instance is the startup sequencing state that enforces it.
type AdminProvisioner struct {
	auth        identity.Service
	profiles    *profiles.Repo
	credentials config.AdminCredentials
	logger      zerolog.Logger
	now         func() time.Time

	attempted atomic.Bool
	outcome   atomic.Value // Outcome
}

type Option func(*AdminProvisioner)

func WithClock(now func() time.Time) Option {
	return func(p *AdminProvisioner) {
		p.now = now
	}
}

func NewAdminProvisioner(auth identity.Service, profileRepo *profiles.Repo, credentials config.AdminCredentials, logger zerolog.Logger, opts ...Option) *AdminProvisioner {
	p := &AdminProvisioner{
		auth:        auth,
		profiles:    profileRepo,
		credentials: credentials,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Provision runs the provisioning attempt. It never fails the caller: errors are logged.
func (p *AdminProvisioner) Provision(ctx context.Context) {
	if err := p.ProvisionErr(ctx); err != nil && !apperrors.Is(err, apperrors.ErrAlreadyAttempted) {
		p.logger.Err(err).Msg("Error in admin setup")
	}
}

// ProvisionErr runs the provisioning attempt and returns its error. A second call returns
// ErrAlreadyAttempted without contacting the platform, whatever the first call's result.
func (p *AdminProvisioner) ProvisionErr(ctx context.Context) (err error) {
	if !p.attempted.CompareAndSwap(false, true) {
		return fmt.Errorf("[provisioning ProvisionErr] %w", apperrors.ErrAlreadyAttempted)
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("[provisioning ProvisionErr] panic: %v", rec)
		}
		if err != nil {
			p.outcome.Store(OutcomeFailed)
		}
	}()

	if !p.credentials.Configured() {
		p.outcome.Store(OutcomeSkipped)
		p.logger.Warn().Msg("Admin credentials not configured, skipping admin setup")
		return nil
	}

	outcome, err := p.provision(ctx)
	if err != nil {
		return err
	}
	p.outcome.Store(outcome)
	return nil
}

// Attempted reports whether Provision has been called.
func (p *AdminProvisioner) Attempted() bool {
	return p.attempted.Load()
}

// Outcome returns the result of the attempt, OutcomeNone before it finished.
func (p *AdminProvisioner) Outcome() Outcome {
	outcome, _ := p.outcome.Load().(Outcome)
	return outcome
}

func (p *AdminProvisioner) provision(ctx context.Context) (Outcome, error) {
	email, password := p.credentials.Email, p.credentials.Password

	principal, err := p.auth.SignIn(ctx, email, password)
	switch {
	case err == nil:
		return p.ensureProfile(ctx, principal)

	case apperrors.Is(err, apperrors.ErrAccountNotFound):
		return p.createAccount(ctx, err)

	case apperrors.Is(err, apperrors.ErrAccountExists):
		p.logger.Info().Msg("Admin user already exists")
		return OutcomeAlreadyExists, nil

	default:
		return OutcomeFailed, apperrors.Wrapf(err, "[provisioning provision] admin sign in")
	}
}

// ensureProfile writes the admin profile if it is missing and signs out.
func (p *AdminProvisioner) ensureProfile(ctx context.Context, principal *identity.Principal) (outcome Outcome, err error) {
	defer p.signOut(ctx, &err)

	exists, err := p.profiles.AdminExists(ctx, principal.UID)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("[provisioning ensureProfile] %w", err)
	}
	if exists {
		p.logger.Debug().Str("uid", principal.UID).Msg("Admin profile already exists")
		return OutcomeExisting, nil
	}

	if err := p.profiles.PutAdmin(ctx, profiles.NewAdmin(principal.UID, p.credentials.Email, p.now())); err != nil {
		return OutcomeFailed, fmt.Errorf("[provisioning ensureProfile] %w", err)
	}
	p.logger.Info().Str("uid", principal.UID).Msg("Admin profile created")
	return OutcomeProfileCreated, nil
}

// createAccount signs up the admin, writes its profile and signs out. signInErr is the
// sign-in failure that led here; when it could also mean a wrong password, an existing
// account on sign up means the configured password is wrong.
func (p *AdminProvisioner) createAccount(ctx context.Context, signInErr error) (outcome Outcome, err error) {
	principal, err := p.auth.SignUp(ctx, p.credentials.Email, p.credentials.Password)
	if apperrors.Is(err, apperrors.ErrAccountExists) {
		if apperrors.Is(signInErr, apperrors.ErrInvalidCredentials) {
			return OutcomeFailed, fmt.Errorf("[provisioning createAccount] %w", apperrors.ErrInvalidCredentials)
		}
		p.logger.Info().Msg("Admin user already exists")
		return OutcomeAlreadyExists, nil
	}
	if err != nil {
		return OutcomeFailed, apperrors.Wrapf(err, "[provisioning createAccount] admin sign up")
	}
	defer p.signOut(ctx, &err)

	if err := p.profiles.PutAdmin(ctx, profiles.NewAdmin(principal.UID, p.credentials.Email, p.now())); err != nil {
		return OutcomeFailed, fmt.Errorf("[provisioning createAccount] %w", err)
	}
	p.logger.Info().Str("uid", principal.UID).Msg("Admin user created successfully")
	return OutcomeCreated, nil
}

// signOut always runs after a successful sign in; its error is reported only when nothing else failed.
func (p *AdminProvisioner) signOut(ctx context.Context, errp *error) {
	if err := p.auth.SignOut(ctx); err != nil && *errp == nil {
		*errp = fmt.Errorf("[provisioning signOut] %w", err)
	}
}
