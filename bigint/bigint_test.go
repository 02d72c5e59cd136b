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

package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDecimalEmptyStringIsZero(t *testing.T) {
	t.Parallel()

	n, ok := ParseDecimal("")
	require.True(t, ok)
	require.Equal(t, big.NewInt(0), n)
}

func TestParseDecimalRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, ok := ParseDecimal("not-a-number")
	require.False(t, ok)
}

func TestParseDecimalBeyondUint64(t *testing.T) {
	t.Parallel()

	huge := "115792089237316195423570985008687907853269984665640564039457584007913129639936" // 2^256
	n, ok := ParseDecimal(huge)
	require.True(t, ok)
	require.Equal(t, huge, Decimal(n))
}

func TestMustParseDecimalPanicsOnInvalidInput(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { MustParseDecimal("xx") })
}

func TestDecimalOfNilIsZero(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0", Decimal(nil))
}

func TestNonNegative(t *testing.T) {
	t.Parallel()

	require.True(t, NonNegative(big.NewInt(0)))
	require.True(t, NonNegative(big.NewInt(5)))
	require.False(t, NonNegative(big.NewInt(-1)))
	require.False(t, NonNegative(nil))
}
