// Package bootstrap runs the startup procedures against the platform and records their results.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/jrsteele09/go-seller-bootstrap/internal/config"
	"github.com/jrsteele09/go-seller-bootstrap/internal/logging"
	"github.com/jrsteele09/go-seller-bootstrap/localstore"
	"github.com/jrsteele09/go-seller-bootstrap/platform/docstore"
	"github.com/jrsteele09/go-seller-bootstrap/platform/identity"
	"github.com/jrsteele09/go-seller-bootstrap/profiles"
	"github.com/jrsteele09/go-seller-bootstrap/provisioning"
	"github.com/jrsteele09/go-seller-bootstrap/session"
	"github.com/rs/zerolog"
)

// Result summarises a bootstrap run.
type Result struct {
	AdminOutcome     provisioning.Outcome `json:"admin_outcome"`
	SessionRefreshed bool                 `json:"session_refreshed"`
	CurrentUser      string               `json:"current_user,omitempty"`
	StartedAt        time.Time            `json:"started_at"`
	FinishedAt       time.Time            `json:"finished_at"`
}

// Bootstrap owns the startup sequencing state: the admin provisioner's single attempt and
// the session refresher.
type Bootstrap struct {
	auth        identity.Service
	provisioner *provisioning.AdminProvisioner
	refresher   *session.Refresher
	logger      zerolog.Logger

	lock   sync.RWMutex
	result *Result
}

func New(auth identity.Service, docs docstore.Store, local localstore.Store, credentials config.AdminCredentials, logger zerolog.Logger) *Bootstrap {
	repo := profiles.NewRepo(docs)
	return &Bootstrap{
		auth:        auth,
		provisioner: provisioning.NewAdminProvisioner(auth, repo, credentials, logging.Component(logger, "provisioning")),
		refresher:   session.NewRefresher(auth, repo, local, logging.Component(logger, "session")),
		logger:      logger,
	}
}

// Run provisions the admin account and then refreshes the seller session. Provisioning goes
// first because it always finishes signed out. Both steps are safe to call unconditionally.
func (b *Bootstrap) Run(ctx context.Context) Result {
	b.logger.Info().Msg("🔧 Bootstrap: Checking platform configuration...")

	result := Result{StartedAt: time.Now()}

	b.provisioner.Provision(ctx)
	result.AdminOutcome = b.provisioner.Outcome()

	result.SessionRefreshed = b.refresher.Refresh(ctx)
	if current := b.auth.CurrentUser(); current != nil {
		result.CurrentUser = current.Email
	}
	result.FinishedAt = time.Now()

	b.lock.Lock()
	b.result = &result
	b.lock.Unlock()

	b.logger.Info().
		Str("admin_outcome", string(result.AdminOutcome)).
		Bool("session_refreshed", result.SessionRefreshed).
		Dur("elapsed", result.FinishedAt.Sub(result.StartedAt)).
		Msg("✅ Bootstrap complete")
	return result
}

// RefreshSession re-runs the session refresher, e.g. when the host notices the session was lost.
func (b *Bootstrap) RefreshSession(ctx context.Context) bool {
	return b.refresher.Refresh(ctx)
}

// ProvisionAdmin runs the admin provisioner; only the first call in the process does anything.
func (b *Bootstrap) ProvisionAdmin(ctx context.Context) {
	b.provisioner.Provision(ctx)
}

// LastResult returns the result of the last Run, false if Run has not completed.
func (b *Bootstrap) LastResult() (Result, bool) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.result == nil {
		return Result{}, false
	}
	return *b.result, true
}
