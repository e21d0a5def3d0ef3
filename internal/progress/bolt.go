package progress

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketProgress = "progress"

var doneValue = []byte("1")

// BoltStore keeps progress in a bbolt database with one nested bucket per
// visitor.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens or creates the database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create progress directory %s: %w", dir, err)
		}
	}

	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open progress database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketProgress))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize progress database: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Completed implements Store.
func (s *BoltStore) Completed(visitor, key string) (bool, error) {
	var done bool
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketProgress)).Bucket([]byte(visitor))
		done = b != nil && b.Get([]byte(key)) != nil
		return nil
	})
	return done, err
}

// Toggle implements Store.
func (s *BoltStore) Toggle(visitor, key string) (bool, error) {
	var done bool
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(bucketProgress)).CreateBucketIfNotExists([]byte(visitor))
		if err != nil {
			return err
		}
		if b.Get([]byte(key)) != nil {
			return b.Delete([]byte(key))
		}
		done = true
		return b.Put([]byte(key), doneValue)
	})
	if err != nil {
		return false, fmt.Errorf("failed to toggle %s: %w", key, err)
	}
	return done, nil
}

// Set implements Store.
func (s *BoltStore) Set(visitor, key string, done bool) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(bucketProgress)).CreateBucketIfNotExists([]byte(visitor))
		if err != nil {
			return err
		}
		if done {
			return b.Put([]byte(key), doneValue)
		}
		return b.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// All implements Store.
func (s *BoltStore) All(visitor string) (map[string]bool, error) {
	out := map[string]bool{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketProgress)).Bucket([]byte(visitor))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			out[string(k)] = true
			return nil
		})
	})
	return out, err
}

// Reset implements Store.
func (s *BoltStore) Reset(visitor string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket([]byte(bucketProgress)).DeleteBucket([]byte(visitor))
		if err == bolt.ErrBucketNotFound {
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
