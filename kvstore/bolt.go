// Copyright 2024 The statechain Authors
// This file is part of statechain.
//
// statechain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// statechain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with statechain. If not, see <http://www.gnu.org/licenses/>.

package kvstore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// BoltStore implements Store over a single bbolt bucket. bbolt's B+tree
// already iterates keys in byte order, which is exactly what "ordered
// key/value store" means throughout this module — no extra sorting layer
// is needed on top.
type BoltStore struct {
	db     *bolt.DB
	bucket []byte
}

// OpenBoltStore opens (creating if absent) the bbolt file at path and
// ensures bucket exists.
func OpenBoltStore(path, bucket string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "kvstore: open %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "kvstore: create bucket %s", bucket)
	}
	return &BoltStore{db: db, bucket: []byte(bucket)}, nil
}

// Get returns a copy of the value stored under key, since bbolt's returned
// slices are only valid for the lifetime of the read transaction.
func (s *BoltStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "kvstore: get")
	}
	return value, value != nil, nil
}

// Put writes key/value, overwriting any previous value.
func (s *BoltStore) Put(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
	if err != nil {
		return errors.Wrap(err, "kvstore: put")
	}
	return nil
}

// KeysAll enumerates every key in the bucket via a cursor, which walks the
// B+tree in ascending byte order.
func (s *BoltStore) KeysAll(_ context.Context) ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "kvstore: keys")
	}
	return keys, nil
}

// Close releases the underlying file handle.
func (s *BoltStore) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "kvstore: close")
	}
	return nil
}
