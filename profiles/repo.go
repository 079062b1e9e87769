// Package profiles maps seller and admin profile records onto the document store.
package profiles

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-seller-bootstrap/platform/docstore"
)

type Repo struct {
	docs docstore.Store
}

func NewRepo(docs docstore.Store) *Repo {
	return &Repo{docs: docs}
}

// Seller returns the seller document for id; check Exists before use.
func (r *Repo) Seller(ctx context.Context, id string) (*docstore.Document, error) {
	doc, err := r.docs.Get(ctx, CollectionSellers, id)
	if err != nil {
		return nil, fmt.Errorf("[profiles Repo.Seller] %w", err)
	}
	return doc, nil
}

func (r *Repo) AdminExists(ctx context.Context, uid string) (bool, error) {
	doc, err := r.docs.Get(ctx, CollectionAdmins, uid)
	if err != nil {
		return false, fmt.Errorf("[profiles Repo.AdminExists] %w", err)
	}
	return doc.Exists, nil
}

func (r *Repo) PutAdmin(ctx context.Context, profile Profile) error {
	if err := r.docs.Set(ctx, CollectionAdmins, profile.ID, profile.Fields()); err != nil {
		return fmt.Errorf("[profiles Repo.PutAdmin] %w", err)
	}
	return nil
}
