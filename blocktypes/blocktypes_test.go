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

package blocktypes

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/godwnwaswa/Drisschain/core/types"
)

func TestHashIsDeterministicAndFieldSensitive(t *testing.T) {
	t.Parallel()

	h := types.BlockHeader{BlockNumber: 1, Timestamp: 2, TxRoot: "root", Difficulty: 3, ParentHash: "parent", Nonce: 4}
	require.Equal(t, Hash(h), Hash(h))

	h2 := h
	h2.Nonce = 5
	require.NotEqual(t, Hash(h), Hash(h2))
}

func validBlock() *types.Block {
	return &types.Block{
		BlockHeader: types.BlockHeader{Coinbase: "miner"},
		Transactions: []*types.Transaction{
			{Recipient: "r", Amount: big.NewInt(1), Gas: big.NewInt(1), Signature: []byte{1}},
		},
	}
}

func TestHasValidPropTypesAcceptsWellFormedBlock(t *testing.T) {
	t.Parallel()

	require.True(t, HasValidPropTypes(validBlock()))
}

func TestHasValidPropTypesRejectsNilBlock(t *testing.T) {
	t.Parallel()

	require.False(t, HasValidPropTypes(nil))
}

func TestHasValidPropTypesRejectsMissingCoinbase(t *testing.T) {
	t.Parallel()

	b := validBlock()
	b.Coinbase = ""
	require.False(t, HasValidPropTypes(b))
}

func TestHasValidPropTypesRejectsTxWithoutSignature(t *testing.T) {
	t.Parallel()

	b := validBlock()
	b.Transactions[0].Signature = nil
	require.False(t, HasValidPropTypes(b))
}

func TestHasValidPropTypesRejectsNilAmount(t *testing.T) {
	t.Parallel()

	b := validBlock()
	b.Transactions[0].Amount = nil
	require.False(t, HasValidPropTypes(b))
}
