package identityfake

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-seller-bootstrap/internal/errors"
	"github.com/jrsteele09/go-seller-bootstrap/platform/identity"
	"golang.org/x/crypto/bcrypt"
)

var _ identity.Service = (*FakeIdentity)(nil)

type account struct {
	uid          string
	passwordHash string
}

// FakeIdentity is an in-memory identity platform. Errors set in SignInErr or SignUpErr are
// returned instead of evaluating the request.
type FakeIdentity struct {
	accounts map[string]account // email to account
	current  *identity.Principal
	lock     sync.RWMutex

	SignInErr error
	SignUpErr error

	// EnumerationProtection makes SignIn report unknown emails and wrong passwords with the
	// same ambiguous error, as the platform does when email enumeration protection is on.
	EnumerationProtection bool

	SignInCalls  int
	SignUpCalls  int
	SignOutCalls int
}

func NewFakeIdentity() *FakeIdentity {
	return &FakeIdentity{
		accounts: make(map[string]account),
	}
}

// AddAccount registers an account directly and returns its uid.
func (f *FakeIdentity) AddAccount(email, password string) (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.addAccount(email, password)
}

// SetCurrentUser replaces the signed in principal without a sign in call.
func (f *FakeIdentity) SetCurrentUser(principal *identity.Principal) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.current = principal
}

// AccountCount returns the number of registered accounts.
func (f *FakeIdentity) AccountCount() int {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return len(f.accounts)
}

// UID returns the uid registered for email.
func (f *FakeIdentity) UID(email string) (string, bool) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	a, ok := f.accounts[email]
	return a.uid, ok
}

func (f *FakeIdentity) SignIn(_ context.Context, email, password string) (*identity.Principal, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.SignInCalls++
	if f.SignInErr != nil {
		return nil, f.SignInErr
	}

	a, ok := f.accounts[email]
	if ok && bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) != nil {
		ok = false
		if !f.EnumerationProtection {
			return nil, fmt.Errorf("[FakeIdentity SignIn] %w", apperrors.ErrInvalidCredentials)
		}
	}
	if !ok {
		if f.EnumerationProtection {
			return nil, fmt.Errorf("[FakeIdentity SignIn] %w, %w", apperrors.ErrAccountNotFound, apperrors.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("[FakeIdentity SignIn] %w", apperrors.ErrAccountNotFound)
	}
	f.current = newPrincipal(a.uid, email)
	return f.current, nil
}

func (f *FakeIdentity) SignUp(_ context.Context, email, password string) (*identity.Principal, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.SignUpCalls++
	if f.SignUpErr != nil {
		return nil, f.SignUpErr
	}

	uid, err := f.addAccount(email, password)
	if err != nil {
		return nil, err
	}
	f.current = newPrincipal(uid, email)
	return f.current, nil
}

func (f *FakeIdentity) SignOut(_ context.Context) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.SignOutCalls++
	f.current = nil
	return nil
}

func (f *FakeIdentity) CurrentUser() *identity.Principal {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.current
}

func (f *FakeIdentity) addAccount(email, password string) (string, error) {
	if _, ok := f.accounts[email]; ok {
		return "", fmt.Errorf("[FakeIdentity] %w", apperrors.ErrAccountExists)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", fmt.Errorf("[FakeIdentity] failed to hash password: %w", err)
	}
	uid := uuid.New().String()
	f.accounts[email] = account{uid: uid, passwordHash: string(hash)}
	return uid, nil
}

func newPrincipal(uid, email string) *identity.Principal {
	return &identity.Principal{
		UID:       uid,
		Email:     email,
		IDToken:   "fake-id-token-" + uid,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
