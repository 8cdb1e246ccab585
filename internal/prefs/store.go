// internal/prefs/store.go

// Package prefs is the persistent key-value store backing user preferences.
// Values are plain strings; absence of a key is a valid state, not an error.
package prefs

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

// Keys used by the selection store.
const (
	KeySelectedTeam = "nhl-selected-team"
	KeyColorScheme  = "nhl-color-scheme"
)

// Store wraps a Badger database instance.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the preference database at path. An empty path
// opens an in-memory database, used by tests.
func Open(path string) (*Store, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts.Logger = nil // Badger's internal logging is noisy; zerolog covers us
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}

	log.Info().Str("path", path).Msg("Preference store opened")
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value for key. A missing key returns ("", false, nil).
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
