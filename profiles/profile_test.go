package profiles_test

import (
	"context"
	"testing"
	"time"

	"github.com/jrsteele09/go-seller-bootstrap/platform/docstore"
	"github.com/jrsteele09/go-seller-bootstrap/platform/docstore/docstorefake"
	"github.com/jrsteele09/go-seller-bootstrap/profiles"
	"github.com/stretchr/testify/require"
)

func TestProfile_Fields(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 891_000_000, time.FixedZone("CET", 3600))
	p := profiles.NewAdmin("uid-1", "ops@example.com", now)

	require.Equal(t, map[string]any{
		"email":     "ops@example.com",
		"role":      "admin",
		"createdAt": "2026-03-04T04:06:07.891Z",
	}, p.Fields())
}

func TestStoredPassword(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		want       string
		wantLegacy bool
		wantOK     bool
	}{
		{
			name:   "plain password",
			data:   map[string]any{"plainPassword": "current", "password": "old"},
			want:   "current",
			wantOK: true,
		},
		{
			name:       "legacy fallback",
			data:       map[string]any{"password": "old"},
			want:       "old",
			wantLegacy: true,
			wantOK:     true,
		},
		{
			name:       "empty plain password falls back",
			data:       map[string]any{"plainPassword": "", "password": "old"},
			want:       "old",
			wantLegacy: true,
			wantOK:     true,
		},
		{
			name: "neither field",
			data: map[string]any{"email": "seller@example.com"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, legacy, ok := profiles.StoredPassword(&docstore.Document{Exists: true, Data: tt.data})
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantLegacy, legacy)
			require.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestRepo(t *testing.T) {
	ctx := context.Background()
	docs := docstorefake.NewFakeDocStore()
	repo := profiles.NewRepo(docs)

	exists, err := repo.AdminExists(ctx, "uid-1")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, repo.PutAdmin(ctx, profiles.NewAdmin("uid-1", "ops@example.com", time.Now())))
	exists, err = repo.AdminExists(ctx, "uid-1")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, 1, docs.Count(profiles.CollectionAdmins))

	docs.Put(profiles.CollectionSellers, "seller-1", map[string]any{"email": "seller@example.com"})
	seller, err := repo.Seller(ctx, "seller-1")
	require.NoError(t, err)
	require.True(t, seller.Exists)
}
