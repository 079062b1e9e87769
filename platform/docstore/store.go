// Package docstore reads and writes documents in the platform's document database.
package docstore

import "context"

// Document is a snapshot of a single document. Exists is false when nothing is stored at the path.
type Document struct {
	Collection string
	ID         string
	Exists     bool
	Data       map[string]any
}

// String returns a non-empty string field.
func (d *Document) String(field string) (string, bool) {
	if d == nil || !d.Exists {
		return "", false
	}
	s, ok := d.Data[field].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Store is the document store surface used by the bootstrap procedures.
type Store interface {
	// Get returns the document at collection/id. A missing document is not an error.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Set creates or overwrites the document at collection/id.
	Set(ctx context.Context, collection, id string, data map[string]any) error
}
