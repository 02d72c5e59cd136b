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

// Package txsig implements signing, public-key recovery and address
// derivation over secp256k1. One curve is fixed: there is no scheme
// agility here by design.
package txsig

import (
	"encoding/hex"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/godwnwaswa/Drisschain/core/types"
	"github.com/godwnwaswa/Drisschain/hashutil"
)

// ErrBadSignature is returned when a signature is the wrong length to be a
// compact secp256k1 recoverable signature.
var ErrBadSignature = errors.New("txsig: signature must be 65 bytes (recovery id || r || s)")

// digest hashes a transaction's canonical form the same way on both the
// signing and the verifying side.
func digest(tx *types.Transaction) []byte {
	sum := hashutil.Sha256HexString(tx.Canonical())
	return []byte(sum)
}

// Sign produces a 65-byte compact recoverable signature over tx's canonical
// digest and stores it, along with the signer's uncompressed public key, on
// tx.
func Sign(priv *secp256k1.PrivateKey, tx *types.Transaction) {
	sig := ecdsa.SignCompact(priv, digest(tx), false)
	tx.Signature = sig
	tx.PubKey = priv.PubKey().SerializeUncompressed()
}

// RecoverPubKey recovers the sender's uncompressed public key from tx's
// compact signature, independent of whatever PubKey field the transaction
// carries.
func RecoverPubKey(tx *types.Transaction) ([]byte, error) {
	if len(tx.Signature) != 65 {
		return nil, ErrBadSignature
	}
	pub, _, err := ecdsa.RecoverCompact(tx.Signature, digest(tx))
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

// Verify checks tx's signature recovers to the given uncompressed public
// key. Recovery (rather than a plain DER-signature check) is what lets the
// engine derive the sender address without the transaction separately
// asserting who sent it.
func Verify(tx *types.Transaction, pubKeyUncompressed []byte) (bool, error) {
	recovered, err := RecoverPubKey(tx)
	if err != nil {
		return false, err
	}
	return hex.EncodeToString(recovered) == hex.EncodeToString(pubKeyUncompressed), nil
}

// Address derives the 64-hex address from an uncompressed public key:
// SHA-256 of the hex-encoded public key.
func Address(pubKeyUncompressed []byte) string {
	return hashutil.Sha256HexString(hex.EncodeToString(pubKeyUncompressed))
}
