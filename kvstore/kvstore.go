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

// Package kvstore is the persistence layer: an ordered key/value store
// abstraction (get, put, keys-all, open/close), with a bbolt-backed
// implementation and the per-account storage path convention
// (<data_root>/accountStore/<address>).
package kvstore

import "context"

// Store is the ordered key/value abstraction stateDB, codeDB and every
// per-account storage database satisfy. Every operation may suspend:
// implementations that wrap disk or network I/O must respect ctx
// cancellation.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	// KeysAll returns every key currently in the store, in the store's
	// natural (byte-lexicographic) order.
	KeysAll(ctx context.Context) ([]string, error)
	Close() error
}

// Bucket names for the two shared stores. A per-account storage store uses
// a single fixed bucket (StorageBucket) since each account gets its own
// physical database file.
const (
	AccountsBucket = "Accounts" // address -> json(AccountState)
	CodeBucket     = "Code"     // codeHash -> contract body (raw bytes)
	StorageBucket  = "Storage"  // storage key -> storage value (raw bytes)
)
