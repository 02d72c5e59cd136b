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
	"math/big"

	"github.com/godwnwaswa/Drisschain/core/types"
	"github.com/godwnwaswa/Drisschain/txcodec"
	"github.com/godwnwaswa/Drisschain/txsig"
)

// HasValidTxOrder replays nonces for each sender, in block order, and
// requires them to produce preNonce+1, preNonce+2, ... with no gaps and no
// reordering. Callers run this alongside VerifyAndTransit, not instead of
// it.
func HasValidTxOrder(block *types.Block, reader txcodec.StateReader) bool {
	lastNonce := map[string]uint64{}
	for _, tx := range block.Transactions {
		pub, err := txsig.RecoverPubKey(tx)
		if err != nil {
			return false
		}
		sender := txsig.Address(pub)
		expected, seen := lastNonce[sender]
		if !seen {
			acc, exists, err := reader.GetAccount(sender)
			if err != nil || !exists {
				return false
			}
			expected = acc.Nonce
		}
		if tx.Nonce != expected+1 {
			return false
		}
		lastNonce[sender] = tx.Nonce
	}
	return true
}

// HasValidGasLimit requires the sum of every transaction's contractGas
// (base gas is not counted) to not exceed blockGasLimit.
func HasValidGasLimit(block *types.Block, blockGasLimit *big.Int) bool {
	sum := big.NewInt(0)
	for _, tx := range block.Transactions {
		sum.Add(sum, tx.ContractGasOrZero())
	}
	return sum.Cmp(blockGasLimit) <= 0
}
