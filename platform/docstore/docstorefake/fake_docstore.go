package docstorefake

import (
	"context"
	"maps"
	"sync"

	"github.com/jrsteele09/go-seller-bootstrap/platform/docstore"
)

var _ docstore.Store = (*FakeDocStore)(nil)

// FakeDocStore keeps documents in memory. GetErr and SetErr, when set, are returned by every call.
type FakeDocStore struct {
	docs map[string]map[string]map[string]any // collection -> id -> data
	lock sync.RWMutex

	GetErr error
	SetErr error

	GetCalls int
	SetCalls int
}

func NewFakeDocStore() *FakeDocStore {
	return &FakeDocStore{
		docs: make(map[string]map[string]map[string]any),
	}
}

// Put stores a document without counting as a Set call.
func (f *FakeDocStore) Put(collection, id string, data map[string]any) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.put(collection, id, data)
}

// Count returns the number of documents in collection.
func (f *FakeDocStore) Count(collection string) int {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return len(f.docs[collection])
}

func (f *FakeDocStore) Get(_ context.Context, collection, id string) (*docstore.Document, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.GetCalls++
	if f.GetErr != nil {
		return nil, f.GetErr
	}

	doc := &docstore.Document{Collection: collection, ID: id}
	if data, ok := f.docs[collection][id]; ok {
		doc.Exists = true
		doc.Data = maps.Clone(data)
	}
	return doc, nil
}

func (f *FakeDocStore) Set(_ context.Context, collection, id string, data map[string]any) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.SetCalls++
	if f.SetErr != nil {
		return f.SetErr
	}
	f.put(collection, id, data)
	return nil
}

func (f *FakeDocStore) put(collection, id string, data map[string]any) {
	if _, ok := f.docs[collection]; !ok {
		f.docs[collection] = make(map[string]map[string]any)
	}
	f.docs[collection][id] = maps.Clone(data)
}
