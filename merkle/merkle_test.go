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

package merkle

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/godwnwaswa/Drisschain/core/types"
)

func TestRootOfEmptyLeavesIsEmptyHash(t *testing.T) {
	t.Parallel()

	require.Equal(t, "empty", Root(nil, "empty"))
}

func TestRootIsDeterministic(t *testing.T) {
	t.Parallel()

	leaves := []string{"a", "b", "c"}
	require.Equal(t, Root(leaves, "empty"), Root(leaves, "empty"))
}

func TestRootChangesWithLeafOrder(t *testing.T) {
	t.Parallel()

	require.NotEqual(t, Root([]string{"a", "b"}, "empty"), Root([]string{"b", "a"}, "empty"))
}

func TestRootHandlesOddLeafCount(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { Root([]string{"a", "b", "c"}, "empty") })
}

func TestIndexedTxLeavesReflectOrdinalPosition(t *testing.T) {
	t.Parallel()

	txs := []*types.Transaction{
		{Recipient: "r1", Amount: big.NewInt(1), Gas: big.NewInt(1)},
		{Recipient: "r1", Amount: big.NewInt(1), Gas: big.NewInt(1)},
	}
	leaves := IndexedTxLeaves(txs)
	require.Len(t, leaves, 2)
	require.NotEqual(t, leaves[0], leaves[1])
}

func TestStorageLeavesPreservesGivenOrder(t *testing.T) {
	t.Parallel()

	values := map[string]string{"a": "1", "b": "2"}
	leaves := StorageLeaves([]string{"b", "a"}, values)
	require.Equal(t, []string{"b 2", "a 1"}, leaves)
}
