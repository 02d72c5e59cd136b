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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoltStoreGetPutRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "store.db")
	store, err := OpenBoltStore(path, AccountsBucket)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Put(ctx, "addr1", []byte("value1")))
	value, ok, err := store.Get(ctx, "addr1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("value1"), value)
}

func TestBoltStoreKeysAllAscending(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "store.db")
	store, err := OpenBoltStore(path, CodeBucket)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "b", []byte("2")))
	require.NoError(t, store.Put(ctx, "a", []byte("1")))
	require.NoError(t, store.Put(ctx, "c", []byte("3")))

	keys, err := store.KeysAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestBoltStoreReopenPersistsData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "store.db")
	ctx := context.Background()

	store, err := OpenBoltStore(path, StorageBucket)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "k", []byte("v")))
	require.NoError(t, store.Close())

	reopened, err := OpenBoltStore(path, StorageBucket)
	require.NoError(t, err)
	defer reopened.Close()
	value, ok, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v"), value)
}
