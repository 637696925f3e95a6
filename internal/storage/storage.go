// Package storage is the namespaced key-value persistence port used for
// sessions, results, reports and profile data.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Logical keys, scoped per user with ScopedKey
const (
	KeySession    = "questionnaire_session"
	KeyBasicInfo  = "basic_info"
	KeyResults    = "assessment_results"
	KeyReport     = "career_report"
	AnonymousUser = "anonymous"
)

// ErrUnavailable marks a backend failure. Callers treat it as non-fatal.
var ErrUnavailable = errors.New("persistence unavailable")

// Store is a flat key-value store. Load returns (nil, nil) when the key is absent.
type Store interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// UserID normalises an identity; blank means anonymous
func UserID(userID string) string {
	if strings.TrimSpace(userID) == "" {
		return AnonymousUser
	}
	return userID
}

// ScopedKey builds "{logicalKey}_{userIdentity}"
func ScopedKey(logicalKey, userID string) string {
	return logicalKey + "_" + UserID(userID)
}

// UserData reads and writes JSON values for one identity
type UserData struct {
	store  Store
	userID string
}

// NewUserData scopes a store to an identity
func NewUserData(store Store, userID string) *UserData {
	return &UserData{store: store, userID: UserID(userID)}
}

// UserID returns the scoped identity
func (u *UserData) UserID() string {
	return u.userID
}

// Save marshals v under the scoped key
func (u *UserData) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := u.store.Save(ctx, ScopedKey(key, u.userID), data); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

// Get unmarshals the scoped key into v and reports whether it existed
func (u *UserData) Get(ctx context.Context, key string, v any) (bool, error) {
	data, err := u.store.Load(ctx, ScopedKey(key, u.userID))
	if err != nil {
		return false, fmt.Errorf("%w: load %s: %v", ErrUnavailable, key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Has reports whether the scoped key holds a value
func (u *UserData) Has(ctx context.Context, key string) (bool, error) {
	data, err := u.store.Load(ctx, ScopedKey(key, u.userID))
	if err != nil {
		return false, fmt.Errorf("%w: load %s: %v", ErrUnavailable, key, err)
	}
	return data != nil, nil
}

// Delete removes the scoped key
func (u *UserData) Delete(ctx context.Context, key string) error {
	if err := u.store.Delete(ctx, ScopedKey(key, u.userID)); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrUnavailable, key, err)
	}
	return nil
}
