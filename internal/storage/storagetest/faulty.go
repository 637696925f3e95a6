// Package storagetest provides storage doubles for tests.
package storagetest

import (
	"context"
	"errors"
	"sync"

	"chatfuture/internal/storage"
)

// ErrInjected is returned by every failing operation
var ErrInjected = errors.New("injected failure")

// FaultyStore wraps a Store and fails the selected operations. Used to exercise
// the non-fatal persistence paths.
type FaultyStore struct {
	storage.Store

	mu         sync.Mutex
	failSave   bool
	failLoad   bool
	failDelete bool
}

// NewFaultyStore wraps inner
func NewFaultyStore(inner storage.Store) *FaultyStore {
	return &FaultyStore{Store: inner}
}

// Fail toggles failures per operation
func (f *FaultyStore) Fail(save, load, del bool) {
	f.mu.Lock()
	f.failSave, f.failLoad, f.failDelete = save, load, del
	f.mu.Unlock()
}

func (f *FaultyStore) Save(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	fail := f.failSave
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.Store.Save(ctx, key, value)
}

func (f *FaultyStore) Load(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	fail := f.failLoad
	f.mu.Unlock()
	if fail {
		return nil, ErrInjected
	}
	return f.Store.Load(ctx, key)
}

func (f *FaultyStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failDelete
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.Store.Delete(ctx, key)
}
