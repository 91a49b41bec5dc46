package sink

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Store keeps emitted positions in an embedded Badger database keyed by
// their FEN record, making reruns idempotent: a record already present is
// counted as a duplicate instead of being stored again.
type Store struct {
	db   *badger.DB
	dups atomic.Int64
}

// OpenStore opens (or creates) the dedup store at dir.
func OpenStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Badger's own logging is noise here
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening position store: %w", err)
	}
	return &Store{db: db}, nil
}

// Write records the position unless it is already present. The stored value
// is the first-seen timestamp.
func (s *Store) Write(fen string) error {
	key := []byte(fen)
	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			s.dups.Add(1)
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		return txn.Set(key, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

// Has reports whether the position is already stored.
func (s *Store) Has(fen string) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(fen))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// Count returns the number of distinct stored positions.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// Duplicates returns how many writes hit an already-stored position.
func (s *Store) Duplicates() int64 { return s.dups.Load() }

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
