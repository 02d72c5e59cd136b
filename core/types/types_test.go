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

package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEOA(t *testing.T) {
	t.Parallel()

	acc := NewEOA("empty")
	require.Equal(t, big.NewInt(0), acc.Balance)
	require.Equal(t, uint64(0), acc.Nonce)
	require.Equal(t, "empty", acc.CodeHash)
	require.Equal(t, "empty", acc.StorageRoot)
	require.False(t, acc.IsContract("empty"))
}

func TestCloneIsIndependentOfSource(t *testing.T) {
	t.Parallel()

	acc := NewEOA("empty")
	clone := acc.Clone()
	clone.Balance.Add(clone.Balance, big.NewInt(5))

	require.Equal(t, big.NewInt(0), acc.Balance)
	require.Equal(t, big.NewInt(5), clone.Balance)
}

func TestAccountStateJSONRoundTripPreservesBigBalance(t *testing.T) {
	t.Parallel()

	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	acc := &AccountState{Balance: huge, Nonce: 7, CodeHash: "c", StorageRoot: "s"}

	raw, err := json.Marshal(acc)
	require.NoError(t, err)
	require.Contains(t, string(raw), "\"123456789012345678901234567890\"")

	var decoded AccountState
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, acc.Balance, decoded.Balance)
	require.Equal(t, acc.Nonce, decoded.Nonce)
	require.Equal(t, acc.CodeHash, decoded.CodeHash)
	require.Equal(t, acc.StorageRoot, decoded.StorageRoot)
}

func TestContractGasOrZero(t *testing.T) {
	t.Parallel()

	tx := &Transaction{}
	require.Equal(t, big.NewInt(0), tx.ContractGasOrZero())

	tx.AdditionalData.ContractGas = big.NewInt(42)
	require.Equal(t, big.NewInt(42), tx.ContractGasOrZero())
}

func TestCanonicalIncludesOptionalFields(t *testing.T) {
	t.Parallel()

	base := &Transaction{Recipient: "r", Amount: big.NewInt(1), Gas: big.NewInt(2), Nonce: 3}
	withGas := &Transaction{Recipient: "r", Amount: big.NewInt(1), Gas: big.NewInt(2), Nonce: 3,
		AdditionalData: AdditionalData{ContractGas: big.NewInt(9)}}

	require.NotEqual(t, base.Canonical(), withGas.Canonical())
	require.Equal(t, "r123", base.Canonical())
	require.Equal(t, "r1293", withGas.Canonical()) // contractGas sits between gas and nonce
}
