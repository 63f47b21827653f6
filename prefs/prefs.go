// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/danielhkuo/popvote/db"
	"github.com/danielhkuo/popvote/metrics"
	"github.com/danielhkuo/popvote/models"
)

var ErrNotFound = errors.New("preference not found")

// Store is a string key/value store for visitor preferences
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// DefaultOverlay is used when a visitor has never toggled the overlay
const DefaultOverlay = true

// Key scopes a preference name to a visitor
func Key(visitorID, name string) string {
	return visitorID + "/" + name
}

// Overlay reads the visitor's overlay preference, defaulting to true when unset
func Overlay(ctx context.Context, s Store, visitorID string) (bool, error) {
	raw, err := s.Get(ctx, Key(visitorID, models.PreferenceOverlay))
	if errors.Is(err, ErrNotFound) {
		return DefaultOverlay, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read overlay preference: %w", err)
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		// A corrupt value behaves like an unset one
		return DefaultOverlay, nil
	}
	return v, nil
}

// SetOverlay persists the visitor's overlay preference
func SetOverlay(ctx context.Context, s Store, visitorID string, overlay bool) error {
	if err := s.Set(ctx, Key(visitorID, models.PreferenceOverlay), strconv.FormatBool(overlay)); err != nil {
		return fmt.Errorf("failed to write overlay preference: %w", err)
	}
	metrics.PreferenceWrites.WithLabelValues(models.PreferenceOverlay).Inc()
	return nil
}

// toggles serializes read-modify-write cycles per preference key
var toggles = &keyLocks{locks: make(map[string]*keyLock)}

type keyLock struct {
	sync.Mutex
	refs int
}

type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// lock holds the key until the returned func is called. Entries are dropped
// once no caller holds or waits on them.
func (k *keyLocks) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// ToggleOverlay flips the overlay preference and returns the new value.
// Concurrent toggles for one visitor are applied one after another.
func ToggleOverlay(ctx context.Context, s Store, visitorID string) (bool, error) {
	unlock := toggles.lock(Key(visitorID, models.PreferenceOverlay))
	defer unlock()

	current, err := Overlay(ctx, s, visitorID)
	if err != nil {
		return false, err
	}
	next := !current
	if err := SetOverlay(ctx, s, visitorID, next); err != nil {
		return false, err
	}
	return next, nil
}

// SQLStore keeps preferences in the preference table
type SQLStore struct {
	db *db.DB
}

func NewSQLStore(conn *db.DB) *SQLStore {
	return &SQLStore{db: conn}
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT pref_value FROM preference WHERE pref_key = ?
	`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preference (pref_key, pref_value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (pref_key) DO UPDATE SET pref_value = excluded.pref_value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	return err
}

// MemoryStore is an in-process Store
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
