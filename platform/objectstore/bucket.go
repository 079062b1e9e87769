// Package objectstore exposes the project's default storage bucket to the host application.
package objectstore

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
	firebasestorage "firebase.google.com/go/v4/storage"
)

// Bucket is the default object storage bucket of the project.
type Bucket struct {
	name   string
	handle *gcs.BucketHandle
}

// New resolves the default bucket configured on the app. No network call is made.
func New(client *firebasestorage.Client, name string) (*Bucket, error) {
	if name == "" {
		return nil, fmt.Errorf("[objectstore New] storage bucket not configured")
	}
	handle, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("[objectstore New] failed to open bucket %s: %w", name, err)
	}
	return &Bucket{name: name, handle: handle}, nil
}

func (b *Bucket) Name() string {
	return b.name
}

func (b *Bucket) Handle() *gcs.BucketHandle {
	return b.handle
}

// Object returns a handle to the named object in the bucket.
func (b *Bucket) Object(name string) *gcs.ObjectHandle {
	return b.handle.Object(name)
}

// Attrs fetches the bucket metadata, useful as a connectivity check.
func (b *Bucket) Attrs(ctx context.Context) (*gcs.BucketAttrs, error) {
	attrs, err := b.handle.Attrs(ctx)
	if err != nil {
		return nil, fmt.Errorf("[objectstore Bucket.Attrs] %s: %w", b.name, err)
	}
	return attrs, nil
}
