package offline

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Store is the station's local append-only queue, one badger keyspace
// per badge number. Records only leave the queue through Clear, after
// staff have exported them.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) the badger database at path and starts
// a background value log GC loop.
func OpenStore(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open offline store: %w", err)
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
		again:
			if err := db.RunValueLogGC(0.7); err == nil {
				goto again
			}
		}
	}()

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func recordKey(badgeNumber, recordID string) []byte {
	return []byte(fmt.Sprintf("offline_verifications:%s:%s", badgeNumber, recordID))
}

func badgePrefix(badgeNumber string) []byte {
	return []byte(fmt.Sprintf("offline_verifications:%s:", badgeNumber))
}

// Append writes one captured verification. Existing records are never
// overwritten or mutated.
func (s *Store) Append(record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(record.BadgeNumber, record.ID), data)
	})
}

// List returns the badge's queued records ordered by capture time.
func (s *Store) List(badgeNumber string) ([]Record, error) {
	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := badgePrefix(badgeNumber)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var r Record
				if err := json.Unmarshal(v, &r); err != nil {
					return err
				}
				records = append(records, r)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CapturedAt.Before(records[j].CapturedAt)
	})
	return records, nil
}

func (s *Store) Count(badgeNumber string) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := badgePrefix(badgeNumber)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Clear drops the badge's queue. Only called after a successful export.
func (s *Store) Clear(badgeNumber string) (int, error) {
	records, err := s.List(badgeNumber)
	if err != nil {
		return 0, err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		for _, r := range records {
			if err := txn.Delete(recordKey(badgeNumber, r.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
