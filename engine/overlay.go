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

package engine

import (
	"context"
	"errors"
	"sort"

	"github.com/google/btree"

	"github.com/godwnwaswa/Drisschain/core/types"
	"github.com/godwnwaswa/Drisschain/kvstore"
)

// errUnknownAccount signals that an address the replay needed to touch as
// a sender is absent from both the overlay and stateDB. Senders are never
// created on the fly: only recipients are.
var errUnknownAccount = errors.New("engine: unknown account")

// overlay is the in-memory working set every mutation is staged into
// before a block's writes are committed all at once. It owns copies of
// every account it touches — never aliases stateDB-resident values — so
// an aborted run leaves the real stores untouched.
type overlay struct {
	states  map[string]*types.AccountState
	code    map[string]string
	storage map[string]map[string]string // address -> key -> value, full replacement per step 4h
}

func newOverlay() *overlay {
	return &overlay{
		states:  map[string]*types.AccountState{},
		code:    map[string]string{},
		storage: map[string]map[string]string{},
	}
}

// GetAccount implements both txcodec.StateReader and contractvm.StateView:
// read the overlay first (today's in-flight mutations), fall back to
// stateDB for anything the replay hasn't touched yet.
type overlayView struct {
	ov    *overlay
	state *kvstore.StateStore
}

func (v overlayView) GetAccount(address string) (*types.AccountState, bool, error) {
	if acc, ok := v.ov.states[address]; ok {
		return acc, true, nil
	}
	return v.state.GetAccount(address)
}

// loadAccount resolves address against the overlay, then stateDB. The
// sender path (createIfMissing=false) never materializes new accounts;
// the recipient path (createIfMissing=true) creates a fresh EOA on first
// receipt of value.
//
// Code is always fetched into the overlay's code map once an account is
// first loaded, before any contract-account check — code[codeHash] is
// looked up unconditionally and only afterwards is it decided whether the
// account may send; codeDB's seeded EmptyHash -> "" entry makes this a
// no-op cost for EOAs.
func loadAccount(ctx context.Context, ov *overlay, state *kvstore.StateStore, code *kvstore.CodeStore, emptyHash, address string, createIfMissing bool) (*types.AccountState, error) {
	if acc, ok := ov.states[address]; ok {
		return acc, nil
	}
	acc, exists, err := state.GetAccountCtx(ctx, address)
	if err != nil {
		return nil, err
	}
	if !exists {
		if !createIfMissing {
			return nil, errUnknownAccount
		}
		acc = types.NewEOA(emptyHash)
	}
	ov.states[address] = acc
	if _, have := ov.code[acc.CodeHash]; !have {
		body, _, err := code.GetCode(ctx, acc.CodeHash)
		if err != nil {
			return nil, err
		}
		ov.code[acc.CodeHash] = body
	}
	return acc, nil
}

// sortedStorageKeys returns an account's touched-this-block storage keys
// in lexicographic ascending order, this module's chosen deterministic
// order for storage-leaf enumeration. A google/btree is used rather than
// sort.Strings over a freshly collected slice so the ordering guarantee is
// structural, not an easily-dropped call site convention.
func sortedStorageKeys(kv map[string]string) []string {
	tree := btree.NewG(32, func(a, b string) bool { return a < b })
	for k := range kv {
		tree.ReplaceOrInsert(k)
	}
	keys := make([]string, 0, tree.Len())
	tree.Ascend(func(k string) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// sortedAddresses returns the overlay's touched account addresses in
// ascending order, used only to make commit iteration order deterministic
// for logging/testing; stateDB writes themselves are order-independent.
func (ov *overlay) sortedAddresses() []string {
	addrs := make([]string, 0, len(ov.states))
	for a := range ov.states {
		addrs = append(addrs, a)
	}
	sort.Strings(addrs)
	return addrs
}
