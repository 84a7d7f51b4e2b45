// Package nutsstore keeps the key/value entries in a NutsDB directory.
package nutsstore

import (
	"errors"
	"fmt"

	"github.com/nutsdb/nutsdb"

	"github.com/Makepad-fr/taskflow/internal/store"
)

const bucket = "taskflow"

// segmentSize keeps data files small; the whole dataset is a few KiB.
const segmentSize = 8 * 1024 * 1024

type Store struct {
	db *nutsdb.DB
}

// Open opens (or creates) a NutsDB database in dir.
func Open(dir string) (*Store, error) {
	opts := nutsdb.DefaultOptions
	opts.Dir = dir
	opts.SegmentSize = segmentSize
	db, err := nutsdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open nutsdb: %w", err)
	}

	if err := db.Update(func(tx *nutsdb.Tx) error {
		return tx.NewBucket(nutsdb.DataStructureBTree, bucket)
	}); err != nil {
		if !errors.Is(err, nutsdb.ErrBucketAlreadyExist) {
			_ = db.Close()
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(key string) (string, error) {
	var v []byte
	err := s.db.View(func(tx *nutsdb.Tx) error {
		b, err := tx.Get(bucket, []byte(key))
		if err != nil {
			return err
		}
		v = b
		return nil
	})
	if err != nil {
		if errors.Is(err, nutsdb.ErrKeyNotFound) {
			return "", store.ErrNotFound
		}
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return string(v), nil
}

func (s *Store) Set(key, value string) error {
	err := s.db.Update(func(tx *nutsdb.Tx) error {
		return tx.Put(bucket, []byte(key), []byte(value), nutsdb.Persistent)
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	err := s.db.Update(func(tx *nutsdb.Tx) error {
		return tx.Delete(bucket, []byte(key))
	})
	if err != nil && !errors.Is(err, nutsdb.ErrKeyNotFound) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
