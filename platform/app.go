// Package platform initializes the shared client handle to the backing Firebase project.
package platform

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"github.com/jrsteele09/go-seller-bootstrap/internal/config"
	apperrors "github.com/jrsteele09/go-seller-bootstrap/internal/errors"
	"github.com/jrsteele09/go-seller-bootstrap/internal/logging"
	"github.com/jrsteele09/go-seller-bootstrap/platform/docstore"
	"github.com/jrsteele09/go-seller-bootstrap/platform/identity"
	"github.com/jrsteele09/go-seller-bootstrap/platform/objectstore"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// App is the process wide handle to the platform: authentication, documents and object storage.
// It is created once at startup and shared read-only.
type App struct {
	auth      *identity.Client
	documents *docstore.Firestore
	storage   *objectstore.Bucket
}

// New initializes the platform clients from configuration. Storage is optional; when no
// bucket is configured Storage returns nil.
func New(ctx context.Context, cfg config.PlatformConfig, logger zerolog.Logger) (*App, error) {
	opts, err := cfg.GetPlatformOptions()
	if err != nil {
		return nil, fmt.Errorf("[platform New] %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, apperrors.Wrapf(err, "[platform New] invalid platform options")
	}

	var clientOpts []option.ClientOption
	if file := cfg.GetCredentialsFile(); file != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(file))
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     opts.ProjectID,
		StorageBucket: opts.StorageBucket,
	}, clientOpts...)
	if err != nil {
		return nil, apperrors.Wrapf(err, "[platform New] failed to initialise app")
	}

	identityOpts := []identity.Option{
		identity.WithLogger(logging.Component(logger, "identity")),
		identity.WithTimeout(cfg.GetIdentityTimeout()),
	}
	if cfg.GetVerifyIDTokens() {
		verifier, err := identity.NewOIDCVerifier(ctx, opts.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("[platform New] %w", err)
		}
		identityOpts = append(identityOpts, identity.WithVerifier(verifier))
	}

	fs, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, apperrors.Wrapf(err, "[platform New] failed to initialise firestore")
	}

	app := &App{
		auth:      identity.New(cfg.GetIdentityBaseURL(), opts.APIKey, identityOpts...),
		documents: docstore.NewFirestore(fs),
	}

	if opts.StorageBucket == "" {
		logger.Warn().Msg("No storage bucket configured, object storage disabled")
		return app, nil
	}
	storageClient, err := fbApp.Storage(ctx)
	if err != nil {
		_ = app.Close()
		return nil, apperrors.Wrapf(err, "[platform New] failed to initialise storage")
	}
	if app.storage, err = objectstore.New(storageClient, opts.StorageBucket); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("[platform New] %w", err)
	}
	return app, nil
}

func (a *App) Auth() *identity.Client {
	return a.auth
}

func (a *App) Documents() *docstore.Firestore {
	return a.documents
}

func (a *App) Storage() *objectstore.Bucket {
	return a.storage
}

// Close releases the document store connection.
func (a *App) Close() error {
	return a.documents.Close()
}
