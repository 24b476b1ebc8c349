// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/metrics"
)

const (
	// gcDiscardRatio is the fraction of stale data a value-log file must hold
	// before it is rewritten.
	gcDiscardRatio = 0.5

	closeTimeout = 30 * time.Second
)

// BadgerStore is a Store backed by BadgerDB entry TTLs.
type BadgerStore struct {
	db       *badger.DB
	inMemory bool

	mu     sync.RWMutex
	closed bool

	hits   atomic.Int64
	misses atomic.Int64
	writes atomic.Int64
}

// Open opens the provider cache described by cfg. The directory is created
// when it does not exist.
func Open(cfg *config.CacheConfig) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Provider cache opened")

	return &BadgerStore{db: db, inMemory: cfg.InMemory}, nil
}

// OpenInMemory opens a throwaway in-memory store.
func OpenInMemory() (*BadgerStore, error) {
	return Open(&config.CacheConfig{InMemory: true})
}

// Get implements Store.
func (s *BadgerStore) Get(_ context.Context, namespace, key string, dst interface{}) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, ErrClosed
	}

	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storageKey(namespace, key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		s.misses.Add(1)
		metrics.RecordCacheLookup(namespace, false)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache entry: %w", err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		// A value written by an older release no longer decodes. Treat it as
		// a miss so the caller refetches and overwrites it.
		logging.Warn().Err(err).Str("namespace", namespace).Msg("Discarding undecodable cache entry")
		s.misses.Add(1)
		metrics.RecordCacheLookup(namespace, false)
		return false, nil
	}

	s.hits.Add(1)
	metrics.RecordCacheLookup(namespace, true)
	return true, nil
}

// Set implements Store.
func (s *BadgerStore) Set(_ context.Context, namespace, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(storageKey(namespace, key), data).WithTTL(ttl))
	})
	if err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	s.writes.Add(1)
	return nil
}

// Delete implements Store. Deleting a missing key is not an error.
func (s *BadgerStore) Delete(_ context.Context, namespace, key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(storageKey(namespace, key))
	})
}

// Purge drops every entry in namespace and returns how many were removed.
func (s *BadgerStore) Purge(namespace string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosed
	}

	prefix := []byte(namespace + ":")
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan namespace %s: %w", namespace, err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err := wb.Delete(k); err != nil {
			return 0, fmt.Errorf("purge namespace %s: %w", namespace, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, fmt.Errorf("purge namespace %s: %w", namespace, err)
	}
	return len(keys), nil
}

// Stats returns a snapshot of the lookup counters.
func (s *BadgerStore) Stats() Stats {
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Writes: s.writes.Load(),
	}
}

// RunGC rewrites value-log files until nothing more can be reclaimed.
// In-memory stores have no value log and return immediately.
func (s *BadgerStore) RunGC() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	if s.inMemory {
		return nil
	}

	for {
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// Close closes the database. It returns an error if BadgerDB does not close
// within 30 seconds. Calling Close twice is safe.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- s.db.Close()
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("close BadgerDB: %w", err)
		}
		logging.Info().Msg("Provider cache closed")
		return nil
	case <-time.After(closeTimeout):
		logging.Warn().Dur("timeout", closeTimeout).Msg("BadgerDB close timed out")
		return fmt.Errorf("badgerdb close timeout after %v", closeTimeout)
	}
}
