// Package session re-establishes the seller's platform session from the identity cached locally.
package session

import (
	"context"

	apperrors "github.com/jrsteele09/go-seller-bootstrap/internal/errors"
	"github.com/jrsteele09/go-seller-bootstrap/localstore"
	"github.com/jrsteele09/go-seller-bootstrap/platform/identity"
	"github.com/jrsteele09/go-seller-bootstrap/profiles"
	"github.com/rs/zerolog"
)

type Refresher struct {
	auth     identity.Service
	profiles *profiles.Repo
	local    localstore.Store
	logger   zerolog.Logger
}

func NewRefresher(auth identity.Service, profileRepo *profiles.Repo, local localstore.Store, logger zerolog.Logger) *Refresher {
	return &Refresher{
		auth:     auth,
		profiles: profileRepo,
		local:    local,
		logger:   logger,
	}
}

// Refresh reports whether the platform is signed in as the locally cached seller after the call.
// It signs in with the password stored on the seller's profile when needed. Failures are
// logged and reported as false; nothing is retried.
func (r *Refresher) Refresh(ctx context.Context) (refreshed bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().Interface("panic", rec).Msg("Recovered from panic during session refresh")
			refreshed = false
		}
	}()

	local, err := localstore.ReadIdentity(ctx, r.local)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrMissingLocalIdentity) {
			r.logger.Debug().Msg("No cached seller identity, skipping session refresh")
		} else {
			r.logger.Err(err).Msg("Failed to read cached seller identity")
		}
		return false
	}

	if current := r.auth.CurrentUser(); current != nil && current.Email == local.SellerEmail {
		return true
	}

	doc, err := r.profiles.Seller(ctx, local.SellerID)
	if err != nil {
		r.logger.Err(err).Str("seller_id", local.SellerID).Msg("Failed to load seller profile")
		return false
	}
	if !doc.Exists {
		r.logger.Debug().Str("seller_id", local.SellerID).Msg("Seller profile not found")
		return false
	}

	password, legacy, ok := profiles.StoredPassword(doc)
	if !ok {
		r.logger.Debug().Str("seller_id", local.SellerID).Msg("Seller profile has no stored password")
		return false
	}
	if legacy {
		r.logger.Warn().Str("seller_id", local.SellerID).Msgf("Seller profile uses legacy %q field", profiles.FieldLegacyPassword)
	}

	if _, err := r.auth.SignIn(ctx, local.SellerEmail, password); err != nil {
		level := zerolog.ErrorLevel
		if apperrors.Is(err, apperrors.ErrInvalidCredentials) || apperrors.Is(err, apperrors.ErrAccountNotFound) {
			level = zerolog.WarnLevel
		}
		r.logger.WithLevel(level).Err(err).Str("seller_id", local.SellerID).Msg("Failed to refresh seller session")
		return false
	}

	r.logger.Info().Str("seller_id", local.SellerID).Msg("Seller session refreshed")
	return true
}
