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
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/godwnwaswa/Drisschain/core/types"
)

// accountCacheSize bounds the read-through cache StateStore keeps over raw
// Get calls. A single block touches at most a few thousand distinct
// addresses in realistic workloads; this is pure performance enrichment
// and never changes an observed Get/Put's result.
const accountCacheSize = 4096

// StateStore is stateDB: an address-keyed Store of AccountState, with a
// bounded LRU cache over repeated reads of the same hot address within a
// block's replay.
type StateStore struct {
	store Store
	cache *lru.Cache[string, *types.AccountState]
}

// NewStateStore wraps store, which must already expose the AccountsBucket
// namespace (see OpenBoltStore(path, AccountsBucket)).
func NewStateStore(store Store) *StateStore {
	cache, _ := lru.New[string, *types.AccountState](accountCacheSize)
	return &StateStore{store: store, cache: cache}
}

// GetAccount satisfies txcodec.StateReader and engine's stateDB dependency.
func (s *StateStore) GetAccount(address string) (*types.AccountState, bool, error) {
	return s.GetAccountCtx(context.Background(), address)
}

// GetAccountCtx is GetAccount with an explicit context for I/O suspension.
func (s *StateStore) GetAccountCtx(ctx context.Context, address string) (*types.AccountState, bool, error) {
	if cached, ok := s.cache.Get(address); ok {
		return cached.Clone(), true, nil
	}
	raw, ok, err := s.store.Get(ctx, address)
	if err != nil {
		return nil, false, errors.Wrap(err, "kvstore: get account")
	}
	if !ok {
		return nil, false, nil
	}
	var acc types.AccountState
	if err := json.Unmarshal(raw, &acc); err != nil {
		return nil, false, errors.Wrap(err, "kvstore: decode account")
	}
	s.cache.Add(address, acc.Clone())
	return &acc, true, nil
}

// PutAccount writes acc under address and refreshes the cache entry.
func (s *StateStore) PutAccount(ctx context.Context, address string, acc *types.AccountState) error {
	raw, err := json.Marshal(acc)
	if err != nil {
		return errors.Wrap(err, "kvstore: encode account")
	}
	if err := s.store.Put(ctx, address, raw); err != nil {
		return errors.Wrap(err, "kvstore: put account")
	}
	s.cache.Add(address, acc.Clone())
	return nil
}

// Addresses lists every address ever materialized in stateDB.
func (s *StateStore) Addresses(ctx context.Context) ([]string, error) {
	return s.store.KeysAll(ctx)
}

// Close closes the underlying store.
func (s *StateStore) Close() error { return s.store.Close() }

// CodeStore is codeDB: a codeHash-keyed Store of contract bodies. It seeds
// and enforces the EmptyHash -> "" convention so no caller can
// accidentally shadow it with a non-empty body.
type CodeStore struct {
	store     Store
	emptyHash string
}

// NewCodeStore wraps store (opened on CodeBucket) and seeds the empty-code
// entry if it is not already present.
func NewCodeStore(ctx context.Context, store Store, emptyHash string) (*CodeStore, error) {
	cs := &CodeStore{store: store, emptyHash: emptyHash}
	if _, ok, err := store.Get(ctx, emptyHash); err != nil {
		return nil, errors.Wrap(err, "kvstore: seed empty code")
	} else if !ok {
		if err := store.Put(ctx, emptyHash, []byte("")); err != nil {
			return nil, errors.Wrap(err, "kvstore: seed empty code")
		}
	}
	return cs, nil
}

// GetCode returns the contract body stored under codeHash.
func (c *CodeStore) GetCode(ctx context.Context, codeHash string) (string, bool, error) {
	raw, ok, err := c.store.Get(ctx, codeHash)
	if err != nil {
		return "", false, errors.Wrap(err, "kvstore: get code")
	}
	return string(raw), ok, nil
}

// PutCode writes body under codeHash. Writing over EmptyHash with anything
// but "" is rejected: that key is reserved.
func (c *CodeStore) PutCode(ctx context.Context, codeHash, body string) error {
	if codeHash == c.emptyHash && body != "" {
		return errors.Errorf("kvstore: refusing to overwrite empty-code entry %s with non-empty body", c.emptyHash)
	}
	if err := c.store.Put(ctx, codeHash, []byte(body)); err != nil {
		return errors.Wrap(err, "kvstore: put code")
	}
	return nil
}

// Close closes the underlying store.
func (c *CodeStore) Close() error { return c.store.Close() }
