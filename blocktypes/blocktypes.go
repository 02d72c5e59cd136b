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

// Package blocktypes implements block hashing and the structural
// pre-filter checked before any cryptography runs.
package blocktypes

import (
	"strconv"

	"github.com/godwnwaswa/Drisschain/core/types"
	"github.com/godwnwaswa/Drisschain/hashutil"
)

// Hash computes a block's hash:
// SHA256(blockNumber || timestamp || txRoot || difficulty || parentHash || nonce),
// with every integer field rendered in base-10 decimal.
func Hash(h types.BlockHeader) string {
	s := strconv.FormatUint(h.BlockNumber, 10) +
		strconv.FormatInt(h.Timestamp, 10) +
		h.TxRoot +
		strconv.FormatUint(h.Difficulty, 10) +
		h.ParentHash +
		strconv.FormatUint(h.Nonce, 10)
	return hashutil.Sha256HexString(s)
}

// HasValidPropTypes is the pre-cryptography structural filter: a non-nil
// sequence of transactions, each non-nil with a recipient, an amount, a gas
// value and a signature, and a non-empty coinbase. Parent hash and tx root
// are not checked here. Malformed shape is rejected here so the signature and balance checks
// that follow never run against garbage input.
func HasValidPropTypes(b *types.Block) bool {
	if b == nil {
		return false
	}
	if b.Transactions == nil {
		return false
	}
	for _, tx := range b.Transactions {
		if tx == nil {
			return false
		}
		if tx.Recipient == "" {
			return false
		}
		if tx.Amount == nil || tx.Gas == nil {
			return false
		}
		if len(tx.Signature) == 0 {
			return false
		}
	}
	if b.Coinbase == "" {
		return false
	}
	return true
}
