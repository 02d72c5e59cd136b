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

// Package statetest builds small scenario fixtures for exercising the
// engine package's block validation, with stateDB and codeDB held in
// memory; per-account storage databases are written under a per-test
// temporary directory. It plays the same role a JSON pre/post state fixture harness plays
// elsewhere: a compact way to describe "starting balances, one block,
// expected outcome" and run it.
package statetest

import (
	"context"
	"math/big"
	"sort"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/godwnwaswa/Drisschain/blocktypes"
	"github.com/godwnwaswa/Drisschain/chainconfig"
	"github.com/godwnwaswa/Drisschain/core/types"
	"github.com/godwnwaswa/Drisschain/engine"
	"github.com/godwnwaswa/Drisschain/kvstore"
	"github.com/godwnwaswa/Drisschain/merkle"
	"github.com/godwnwaswa/Drisschain/txsig"
)

// memStore is a Store backed by a plain map, used so every test gets a
// fresh, disk-free stateDB/codeDB pair.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Put(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) KeysAll(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memStore) Close() error { return nil }

// Fixture bundles a fresh engine over in-memory stores plus a scratch
// directory for per-account storage, ready for a test to seed accounts and
// replay blocks against.
type Fixture struct {
	T      *testing.T
	Engine *engine.Engine
	State  *kvstore.StateStore
	Code   *kvstore.CodeStore
	Config *chainconfig.Config
}

// New builds a Fixture with chainconfig.Default() and an empty stateDB and
// codeDB, storing account databases under t.TempDir().
func New(t *testing.T) *Fixture {
	t.Helper()
	state := kvstore.NewStateStore(newMemStore())
	code, err := kvstore.NewCodeStore(context.Background(), newMemStore(), chainconfig.EmptyHash)
	require.NoError(t, err)
	cfg := chainconfig.Default()
	return &Fixture{
		T:      t,
		Engine: engine.New(state, code, t.TempDir(), cfg, nil),
		State:  state,
		Code:   code,
		Config: cfg,
	}
}

// SeedEOA writes a plain account with the given balance and nonce directly
// into stateDB, bypassing the engine — the starting condition a scenario
// test declares rather than derives.
func (f *Fixture) SeedEOA(address string, balance *big.Int, nonce uint64) {
	f.T.Helper()
	acc := types.NewEOA(chainconfig.EmptyHash)
	acc.Balance = balance
	acc.Nonce = nonce
	require.NoError(f.T, f.State.PutAccount(context.Background(), address, acc))
}

// Account returns the current stateDB record for address.
func (f *Fixture) Account(address string) (*types.AccountState, bool) {
	f.T.Helper()
	acc, ok, err := f.State.GetAccount(address)
	require.NoError(f.T, err)
	return acc, ok
}

// NewKey returns a fresh secp256k1 keypair and its derived address, for
// tests that need a signer they don't otherwise care about.
func NewKey(t *testing.T) (*secp256k1.PrivateKey, string) {
	t.Helper()
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	addr := txsig.Address(priv.PubKey().SerializeUncompressed())
	return priv, addr
}

// SignedTx builds and signs a transaction with the given fields, filling in
// its canonical signature and recoverable public key.
func SignedTx(priv *secp256k1.PrivateKey, recipient string, amount, gas *big.Int, nonce uint64, additional types.AdditionalData) *types.Transaction {
	tx := &types.Transaction{
		Recipient:      recipient,
		Amount:         amount,
		Gas:            gas,
		Nonce:          nonce,
		AdditionalData: additional,
	}
	txsig.Sign(priv, tx)
	return tx
}

// Block assembles a single-block candidate from txs, computing txRoot and
// the header hash the same way the engine will recompute and check them.
func Block(parentHash, coinbase string, blockNumber uint64, txs []*types.Transaction) *types.Block {
	header := types.BlockHeader{
		BlockNumber: blockNumber,
		Timestamp:   1,
		Difficulty:  1,
		ParentHash:  parentHash,
		Nonce:       0,
		Coinbase:    coinbase,
		TxRoot:      merkle.Root(merkle.IndexedTxLeaves(txs), chainconfig.EmptyHash),
	}
	block := &types.Block{BlockHeader: header, Transactions: txs}
	block.Hash = blocktypes.Hash(header)
	return block
}
