package profiles

import (
	"time"

	"github.com/jrsteele09/go-seller-bootstrap/platform/docstore"
)

// Collections holding profile records, keyed by account id.
const (
	CollectionSellers = "sellers"
	CollectionAdmins  = "admins"
)

type RoleType string

const (
	RoleAdmin RoleType = "admin"
)

// Document field names.
const (
	FieldEmail          = "email"
	FieldRole           = "role"
	FieldCreatedAt      = "createdAt"
	FieldPlainPassword  = "plainPassword"
	FieldLegacyPassword = "password" // Superseded by plainPassword; older seller documents still carry it
)

// TimestampLayout is ISO 8601 in UTC with millisecond precision, e.g. 2026-01-02T03:04:05.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Profile is the record describing a seller or admin account.
type Profile struct {
	ID        string
	Email     string
	Role      RoleType
	CreatedAt time.Time
}

// NewAdmin returns the profile written for a freshly provisioned admin.
func NewAdmin(uid, email string, now time.Time) Profile {
	return Profile{
		ID:        uid,
		Email:     email,
		Role:      RoleAdmin,
		CreatedAt: now,
	}
}

// Fields returns the document representation of the profile.
func (p Profile) Fields() map[string]any {
	return map[string]any{
		FieldEmail:     p.Email,
		FieldRole:      string(p.Role),
		FieldCreatedAt: p.CreatedAt.UTC().Format(TimestampLayout),
	}
}

// StoredPassword returns the plaintext password kept on a seller document, preferring
// plainPassword over the legacy password field. legacy reports which one was used.
func StoredPassword(doc *docstore.Document) (password string, legacy bool, ok bool) {
	if password, ok := doc.String(FieldPlainPassword); ok {
		return password, false, true
	}
	if password, ok := doc.String(FieldLegacyPassword); ok {
		return password, true, true
	}
	return "", false, false
}
