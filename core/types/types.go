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

// Package types defines the wire-level data model shared across this
// module: accounts, code entries, transactions and blocks.
package types

import (
	"encoding/json"
	"math/big"

	"github.com/godwnwaswa/Drisschain/bigint"
)

// AccountState is the per-address record kept in stateDB.
type AccountState struct {
	Balance     *big.Int `json:"balance"`
	Nonce       uint64   `json:"nonce"`
	CodeHash    string   `json:"codeHash"`
	StorageRoot string   `json:"storageRoot"`
}

// NewEOA returns the zero-value account assigned on first credit: zero
// balance, nonce zero, and both hashes set to emptyHash.
func NewEOA(emptyHash string) *AccountState {
	return &AccountState{
		Balance:     big.NewInt(0),
		Nonce:       0,
		CodeHash:    emptyHash,
		StorageRoot: emptyHash,
	}
}

// Clone returns a deep copy so an in-flight working set never aliases a
// stateDB-owned value.
func (a *AccountState) Clone() *AccountState {
	if a == nil {
		return nil
	}
	bal := new(big.Int)
	if a.Balance != nil {
		bal.Set(a.Balance)
	}
	return &AccountState{
		Balance:     bal,
		Nonce:       a.Nonce,
		CodeHash:    a.CodeHash,
		StorageRoot: a.StorageRoot,
	}
}

// IsContract reports whether this account carries deployed code.
func (a *AccountState) IsContract(emptyHash string) bool {
	return a.CodeHash != emptyHash
}

// accountStateJSON is the on-disk shape: balance is a decimal string, never
// a JSON number, so precision beyond float64 survives a round trip.
type accountStateJSON struct {
	Balance     string `json:"balance"`
	Nonce       uint64 `json:"nonce"`
	CodeHash    string `json:"codeHash"`
	StorageRoot string `json:"storageRoot"`
}

// MarshalJSON renders Balance as a decimal string.
func (a AccountState) MarshalJSON() ([]byte, error) {
	return json.Marshal(accountStateJSON{
		Balance:     bigint.Decimal(a.Balance),
		Nonce:       a.Nonce,
		CodeHash:    a.CodeHash,
		StorageRoot: a.StorageRoot,
	})
}

// UnmarshalJSON parses Balance from a decimal string.
func (a *AccountState) UnmarshalJSON(data []byte) error {
	var raw accountStateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	bal, ok := bigint.ParseDecimal(raw.Balance)
	if !ok {
		bal = big.NewInt(0)
	}
	a.Balance = bal
	a.Nonce = raw.Nonce
	a.CodeHash = raw.CodeHash
	a.StorageRoot = raw.StorageRoot
	return nil
}

// AdditionalData carries the two optional transaction extensions: a
// contract-execution gas budget and a contract deployment body.
type AdditionalData struct {
	ContractGas *big.Int `json:"contractGas,omitempty"`
	SCBody      *string  `json:"scBody,omitempty"`
}

// Transaction is the unit of work a block carries.
type Transaction struct {
	Recipient      string         `json:"recipient"`
	Amount         *big.Int       `json:"amount"`
	Gas            *big.Int       `json:"gas"`
	Nonce          uint64         `json:"nonce"`
	AdditionalData AdditionalData `json:"additionalData"`

	// PubKey is the uncompressed secp256k1 sender public key, either
	// carried alongside the signature or recovered from it (txsig.RecoverPubKey).
	PubKey []byte `json:"pubKey,omitempty"`
	// Signature is a 65-byte compact secp256k1 signature: 1-byte recovery
	// id followed by r||s, produced by txsig.Sign.
	Signature []byte `json:"signature"`
}

// ContractGasOrZero returns AdditionalData.ContractGas, or zero if unset.
func (tx *Transaction) ContractGasOrZero() *big.Int {
	if tx.AdditionalData.ContractGas == nil {
		return big.NewInt(0)
	}
	return tx.AdditionalData.ContractGas
}

// Canonical returns the deterministic, separator-free concatenation of a
// transaction's fields: recipient, amount, gas, additionalData, nonce. Every
// signer and validator in the system must agree on this exact order and
// shape — it is what gets signed and what txRoot's leaves embed.
func (tx *Transaction) Canonical() string {
	additional := ""
	if tx.AdditionalData.ContractGas != nil {
		additional += bigint.Decimal(tx.AdditionalData.ContractGas)
	}
	if tx.AdditionalData.SCBody != nil {
		additional += *tx.AdditionalData.SCBody
	}
	return tx.Recipient +
		bigint.Decimal(tx.Amount) +
		bigint.Decimal(tx.Gas) +
		additional +
		bigint.Decimal(new(big.Int).SetUint64(tx.Nonce))
}

// BlockHeader is the chain's fixed-shape block header.
type BlockHeader struct {
	BlockNumber uint64 `json:"blockNumber"`
	Timestamp   int64  `json:"timestamp"`
	Difficulty  uint64 `json:"difficulty"`
	ParentHash  string `json:"parentHash"`
	Nonce       uint64 `json:"nonce"`
	TxRoot      string `json:"txRoot"`
	Coinbase    string `json:"coinbase"`
	Hash        string `json:"hash"`
}

// Block is a header plus its ordered transaction body.
type Block struct {
	BlockHeader
	Transactions []*Transaction `json:"transactions"`
}
