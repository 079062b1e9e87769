// Package localstore reads the identity a previous run of the application cached locally.
// The store is written by the host application; this package only reads it.
package localstore

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-seller-bootstrap/internal/config"
	apperrors "github.com/jrsteele09/go-seller-bootstrap/internal/errors"
)

const (
	KeySellerID    = "sellerId"
	KeySellerEmail = "sellerEmail"
)

// Store is a read-only string key/value store. ok is false when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
}

// Identity is the locally cached account of the last signed in seller.
type Identity struct {
	SellerID    string
	SellerEmail string
}

// ReadIdentity returns ErrMissingLocalIdentity unless both identity keys hold a value.
func ReadIdentity(ctx context.Context, s Store) (Identity, error) {
	id, ok, err := s.Get(ctx, KeySellerID)
	if err != nil {
		return Identity{}, fmt.Errorf("[localstore ReadIdentity] %s: %w", KeySellerID, err)
	}
	if !ok || id == "" {
		return Identity{}, fmt.Errorf("[localstore ReadIdentity] %s: %w", KeySellerID, apperrors.ErrMissingLocalIdentity)
	}

	email, ok, err := s.Get(ctx, KeySellerEmail)
	if err != nil {
		return Identity{}, fmt.Errorf("[localstore ReadIdentity] %s: %w", KeySellerEmail, err)
	}
	if !ok || email == "" {
		return Identity{}, fmt.Errorf("[localstore ReadIdentity] %s: %w", KeySellerEmail, apperrors.ErrMissingLocalIdentity)
	}
	return Identity{SellerID: id, SellerEmail: email}, nil
}

// New opens the store selected by LOCAL_STORE.
func New(ctx context.Context, cfg config.LocalStoreConfig) (Store, error) {
	switch cfg.GetLocalStoreKind() {
	case config.LocalStoreFile:
		return NewFile(cfg.GetLocalStoreFile()), nil
	case config.LocalStoreRedis:
		store, err := NewRedis(ctx, RedisConfig{
			Addr:     cfg.GetRedisAddr(),
			Password: cfg.GetRedisPassword(),
			DB:       cfg.GetRedisDB(),
			Prefix:   cfg.GetRedisPrefix(),
		})
		if err != nil {
			return nil, fmt.Errorf("[localstore New] %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("[localstore New] %q: %w", cfg.GetLocalStoreKind(), apperrors.ErrUnsupported)
	}
}
