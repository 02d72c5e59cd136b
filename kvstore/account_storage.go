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
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// AccountStore is a single contract's storage namespace, opened exclusively
// for the duration of a commit.
type AccountStore struct {
	*BoltStore
	lock *flock.Flock
}

// OpenAccountStore opens the per-account storage database at
// <dataRoot>/accountStore/<address>/storage.db. Opening is exclusive per
// address: a process-level gofrs/flock guards the directory in addition
// to bbolt's own file lock, so a second engine instance racing on the
// same dataRoot gets an explicit error rather than blocking indefinitely.
func OpenAccountStore(dataRoot, address string) (*AccountStore, error) {
	dir := filepath.Join(dataRoot, "accountStore", address)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "kvstore: mkdir %s", dir)
	}
	lockPath := filepath.Join(dir, ".lock")
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "kvstore: lock %s", lockPath)
	}
	if !locked {
		return nil, errors.Errorf("kvstore: account store %s already open", address)
	}
	bs, err := OpenBoltStore(filepath.Join(dir, "storage.db"), StorageBucket)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	return &AccountStore{BoltStore: bs, lock: lock}, nil
}

// Close flushes and closes the underlying bbolt file, then releases the
// exclusive lock so another block's commit can open this address again.
func (a *AccountStore) Close() error {
	closeErr := a.BoltStore.Close()
	if err := a.lock.Unlock(); err != nil && closeErr == nil {
		closeErr = errors.Wrap(err, "kvstore: unlock account store")
	}
	return closeErr
}
