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

// Package hashutil provides the single hash primitive the rest of the
// module builds on: a hex-encoded SHA-256 digest. No field separators are
// introduced here; callers are responsible for canonicalizing their input
// before it reaches this package.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256Hex returns the lowercase hex-encoded SHA-256 digest of b.
func Sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Sha256HexString is a convenience wrapper for string input.
func Sha256HexString(s string) string {
	return Sha256Hex([]byte(s))
}
