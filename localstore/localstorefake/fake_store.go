package localstorefake

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-seller-bootstrap/localstore"
)

var _ localstore.Store = (*FakeStore)(nil)

type FakeStore struct {
	values map[string]string
	lock   sync.RWMutex

	GetErr   error
	GetCalls int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{values: make(map[string]string)}
}

// NewIdentityStore returns a store pre-populated with the seller identity keys; empty
// arguments are left unset.
func NewIdentityStore(sellerID, sellerEmail string) *FakeStore {
	s := NewFakeStore()
	if sellerID != "" {
		s.Set(localstore.KeySellerID, sellerID)
	}
	if sellerEmail != "" {
		s.Set(localstore.KeySellerEmail, sellerEmail)
	}
	return s
}

func (s *FakeStore) Set(key, value string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.values[key] = value
}

func (s *FakeStore) Get(_ context.Context, key string) (string, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.GetCalls++
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	value, ok := s.values[key]
	return value, ok, nil
}
