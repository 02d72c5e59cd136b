// Copyright 2017 The go-ethereum Authors
// (original work)
// Copyright 2024 The statechain Authors
// (modifications)
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

// Package bigint holds the decimal-string <-> arbitrary-precision integer
// conversions that the wire format relies on. Balances, amounts and gas are
// never represented as fixed-width integers: a contract or account that
// outgrows uint64 must not silently wrap.
package bigint

import (
	"fmt"
	"math/big"
)

// ParseDecimal parses s as a base-10 arbitrary-precision integer. The empty
// string parses as zero, matching the zero-value fields a freshly created
// account is assigned.
func ParseDecimal(s string) (*big.Int, bool) {
	if s == "" {
		return big.NewInt(0), true
	}
	n, ok := new(big.Int).SetString(s, 10)
	return n, ok
}

// MustParseDecimal parses s and panics on malformed input. Reserved for
// config constants baked in at process start, never for wire data.
func MustParseDecimal(s string) *big.Int {
	n, ok := ParseDecimal(s)
	if !ok {
		panic(fmt.Sprintf("bigint: invalid decimal integer %q", s))
	}
	return n
}

// Decimal renders n as a base-10 string, the on-disk/on-wire representation
// for every balance, amount and gas field.
func Decimal(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}

// NonNegative reports whether n is present and >= 0.
func NonNegative(n *big.Int) bool {
	return n != nil && n.Sign() >= 0
}
