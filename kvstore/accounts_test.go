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
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/godwnwaswa/Drisschain/core/types"
)

func newTestStateStore(t *testing.T) *StateStore {
	t.Helper()
	store, err := OpenBoltStore(filepath.Join(t.TempDir(), "state.db"), AccountsBucket)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewStateStore(store)
}

func TestStateStoreGetPutRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ss := newTestStateStore(t)

	_, ok, err := ss.GetAccountCtx(ctx, "addr")
	require.NoError(t, err)
	require.False(t, ok)

	acc := &types.AccountState{Balance: big.NewInt(50), Nonce: 2, CodeHash: "c", StorageRoot: "s"}
	require.NoError(t, ss.PutAccount(ctx, "addr", acc))

	got, ok, err := ss.GetAccountCtx(ctx, "addr")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, acc.Balance, got.Balance)
	require.Equal(t, acc.Nonce, got.Nonce)
}

func TestStateStoreCachedReadIsClonedNotAliased(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ss := newTestStateStore(t)
	require.NoError(t, ss.PutAccount(ctx, "addr", &types.AccountState{Balance: big.NewInt(10)}))

	first, _, err := ss.GetAccountCtx(ctx, "addr")
	require.NoError(t, err)
	first.Balance.Add(first.Balance, big.NewInt(100))

	second, _, err := ss.GetAccountCtx(ctx, "addr")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(10), second.Balance)
}

func newTestCodeStore(t *testing.T) *CodeStore {
	t.Helper()
	ctx := context.Background()
	store, err := OpenBoltStore(filepath.Join(t.TempDir(), "code.db"), CodeBucket)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	cs, err := NewCodeStore(ctx, store, "empty")
	require.NoError(t, err)
	return cs
}

func TestCodeStoreSeedsEmptyEntry(t *testing.T) {
	t.Parallel()

	cs := newTestCodeStore(t)
	body, ok, err := cs.GetCode(context.Background(), "empty")
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, body)
}

func TestCodeStoreRefusesOverwritingEmptyHash(t *testing.T) {
	t.Parallel()

	cs := newTestCodeStore(t)
	err := cs.PutCode(context.Background(), "empty", "function() {}")
	require.Error(t, err)
}

func TestCodeStorePutAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cs := newTestCodeStore(t)
	require.NoError(t, cs.PutCode(ctx, "hash1", "function run() {}"))

	body, ok, err := cs.GetCode(ctx, "hash1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "function run() {}", body)
}
