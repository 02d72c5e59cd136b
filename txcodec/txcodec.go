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

// Package txcodec implements the canonical transaction serialization and
// the per-transaction validity check every signer and validator must agree
// on.
package txcodec

import (
	"math/big"

	"github.com/godwnwaswa/Drisschain/bigint"
	"github.com/godwnwaswa/Drisschain/core/types"
	"github.com/godwnwaswa/Drisschain/txsig"
)

// Canonical returns tx's deterministic, separator-free canonical string.
// It simply delegates to types.Transaction.Canonical; kept as a top-level
// function so callers outside core/types (e.g. merkle) have a stable name
// to import.
func Canonical(tx *types.Transaction) string {
	return tx.Canonical()
}

// StateReader is the read-only slice of account state IsValid needs. Both
// a raw stateDB handle and the engine's in-flight overlay satisfy it.
type StateReader interface {
	GetAccount(address string) (*types.AccountState, bool, error)
}

// Rejection reasons returned alongside a false IsValid so callers can log
// why without re-deriving it.
const (
	ReasonInvalidSignature    = "invalid_signature"
	ReasonInsufficientBalance = "insufficient_balance"
	ReasonUnknownSender       = "unknown_sender"
)

// IsValid reports whether tx may be applied: its signature verifies,
// amount and gas are non-negative and gas clears the protocol minimum, the
// sender exists, and the sender can cover amount+gas+contractGas. The
// returned reason is "" when ok is true and when err is non-nil (a state
// read failure).
func IsValid(tx *types.Transaction, reader StateReader, minTxGas *big.Int) (ok bool, reason string, err error) {
	pubKey, err := txsig.RecoverPubKey(tx)
	if err != nil {
		return false, ReasonInvalidSignature, nil
	}
	// A transaction carrying a claimed PubKey must actually have been
	// signed by it: the recovered key and the claimed one must agree, or
	// the signature verifies against the wrong identity.
	if len(tx.PubKey) > 0 {
		matches, verr := txsig.Verify(tx, tx.PubKey)
		if verr != nil || !matches {
			return false, ReasonInvalidSignature, nil
		}
	}
	if !bigint.NonNegative(tx.Amount) {
		return false, ReasonInvalidSignature, nil
	}
	if minTxGas == nil {
		minTxGas = big.NewInt(1)
	}
	if tx.Gas == nil || tx.Gas.Cmp(minTxGas) < 0 {
		return false, ReasonInvalidSignature, nil
	}
	sender := txsig.Address(pubKey)
	account, exists, err := reader.GetAccount(sender)
	if err != nil {
		return false, "", err
	}
	if !exists {
		return false, ReasonUnknownSender, nil
	}
	required := new(big.Int).Add(tx.Amount, tx.Gas)
	required.Add(required, tx.ContractGasOrZero())
	if account.Balance.Cmp(required) < 0 {
		return false, ReasonInsufficientBalance, nil
	}
	return true, "", nil
}
