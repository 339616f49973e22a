// ABOUTME: Badger key-value submission store with type-prefixed keys.
// ABOUTME: Resolves short ID prefixes by scanning the key space like the SQLite store.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v3"
	log "github.com/sirupsen/logrus"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// SubmissionPrefix is the key prefix for stored submissions.
const SubmissionPrefix = "submission:"

// KVStore is the Badger-backed Repository.
type KVStore struct {
	db *badger.DB
	mu sync.RWMutex
}

// badgerLogger routes badger's internal logs through logrus, demoting its
// chatty info messages to debug.
type badgerLogger struct {
	*log.Entry
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.Entry.Debugf(format, args...)
}

// OpenKV opens or creates a Badger store in dir.
func OpenKV(dir string) (*KVStore, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(badgerLogger{log.WithField("component", "badger")})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kv store %s (is another wellness process running?): %w", dir, err)
	}
	return &KVStore{db: db}, nil
}

// OpenKVInMemory opens a Badger store that lives only in memory.
func OpenKVInMemory() (*KVStore, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(badgerLogger{log.WithField("component", "badger")})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory kv store: %w", err)
	}
	return &KVStore{db: db}, nil
}

// Close closes the Badger database.
func (k *KVStore) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.db != nil {
		return k.db.Close()
	}
	return nil
}

// CreateSubmission stores a new submission.
func (k *KVStore) CreateSubmission(s *models.Submission) error {
	data, err := marshalJSON(s)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}
	if err := k.insert(SubmissionPrefix+s.ID.String(), data); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

// GetSubmission retrieves a submission by ID or ID prefix.
func (k *KVStore) GetSubmission(idOrPrefix string) (*models.Submission, error) {
	data, err := k.getByIDPrefix(SubmissionPrefix, idOrPrefix)
	if err != nil {
		return nil, err
	}
	s, err := unmarshalJSON[models.Submission](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal submission: %w", err)
	}
	return s, nil
}

// ListSubmissions returns submissions newest first, optionally filtered by goal.
func (k *KVStore) ListSubmissions(goal *models.FitnessGoal, limit int) ([]*models.Submission, error) {
	values, err := k.listByPrefix(SubmissionPrefix)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	var subs []*models.Submission
	for _, v := range values {
		s, err := unmarshalJSON[models.Submission](v)
		if err != nil {
			return nil, fmt.Errorf("unmarshal submission: %w", err)
		}
		if goal != nil && s.Form.FitnessGoal != *goal {
			continue
		}
		subs = append(subs, s)
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	if limit > 0 && len(subs) > limit {
		subs = subs[:limit]
	}
	return subs, nil
}

// DeleteSubmission removes a submission by ID or prefix.
func (k *KVStore) DeleteSubmission(idOrPrefix string) error {
	if err := k.deleteByIDPrefix(SubmissionPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}
	return nil
}

// insert stores a value under key, failing with ErrExists if the key is taken.
func (k *KVStore) insert(key string, data []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		switch {
		case err == nil:
			return ErrExists
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set([]byte(key), data)
	})
}

// listByPrefix returns all values with keys matching the given prefix.
func (k *KVStore) listByPrefix(prefix string) ([][]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	var results [][]byte
	err := k.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			results = append(results, val)
		}
		return nil
	})
	return results, err
}

// matchKeys returns up to two full keys starting with typePrefix+idPrefix.
func matchKeys(txn *badger.Txn, typePrefix, idPrefix string) ([][]byte, error) {
	idPrefix = strings.ToLower(strings.TrimSpace(idPrefix))
	if idPrefix == "" {
		return nil, fmt.Errorf("%w: empty ID", ErrNotFound)
	}

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(typePrefix + idPrefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	var matches [][]byte
	for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
		matches = append(matches, it.Item().KeyCopy(nil))
		if len(matches) > 1 {
			return nil, fmt.Errorf("%w %s: matches multiple submissions", ErrAmbiguous, idPrefix)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idPrefix)
	}
	return matches, nil
}

// getByIDPrefix retrieves a single value by ID prefix match.
// Returns error if no match or multiple matches found.
func (k *KVStore) getByIDPrefix(typePrefix, idPrefix string) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	var val []byte
	err := k.db.View(func(txn *badger.Txn) error {
		keys, err := matchKeys(txn, typePrefix, idPrefix)
		if err != nil {
			return err
		}
		item, err := txn.Get(keys[0])
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, idPrefix)
		}
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	return val, err
}

// deleteByIDPrefix deletes a record by ID prefix match.
func (k *KVStore) deleteByIDPrefix(typePrefix, idPrefix string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.db.Update(func(txn *badger.Txn) error {
		keys, err := matchKeys(txn, typePrefix, idPrefix)
		if err != nil {
			return err
		}
		return txn.Delete(keys[0])
	})
}

// unmarshalJSON is a helper to unmarshal JSON data.
func unmarshalJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// marshalJSON is a helper to marshal data to JSON.
func marshalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}
