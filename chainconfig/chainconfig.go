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

// Package chainconfig holds the small set of protocol constants treated as
// externally configured: the block reward, the contract-gas budget per
// block, and the empty-code/empty-storage sentinel. This package only
// defines the typed values and a minimal loader for the surrounding system
// to populate them with.
package chainconfig

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/godwnwaswa/Drisschain/bigint"
	"github.com/godwnwaswa/Drisschain/hashutil"
)

// EmptyHash is the sentinel for "no code" / "no storage". It must equal
// sha256_hex(""), computed once at init rather than hardcoded, so it can
// never drift from hashutil's actual digest.
var EmptyHash = hashutil.Sha256Hex(nil)

// MinTxGas is the minimum base gas every transaction must carry to pass
// validity checking.
var MinTxGas = big.NewInt(1)

// Config is the set of protocol constants the engine consults.
type Config struct {
	BlockReward   *big.Int
	BlockGasLimit *big.Int
}

type rawConfig struct {
	BlockReward   string `yaml:"blockReward"`
	BlockGasLimit string `yaml:"blockGasLimit"`
}

// Default returns sane values for local development and tests.
func Default() *Config {
	return &Config{
		BlockReward:   big.NewInt(100),
		BlockGasLimit: big.NewInt(1_000_000),
	}
}

// Load reads BlockReward and BlockGasLimit from a YAML file at path. Both
// fields are required decimal strings, never JSON numbers, so that a
// reward exceeding float64 precision round-trips exactly.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chainconfig: read %s: %w", path, err)
	}
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("chainconfig: parse %s: %w", path, err)
	}
	if raw.BlockReward == "" || raw.BlockGasLimit == "" {
		return nil, fmt.Errorf("chainconfig: %s: blockReward and blockGasLimit are required", path)
	}
	reward, ok := bigint.ParseDecimal(raw.BlockReward)
	if !ok {
		return nil, fmt.Errorf("chainconfig: invalid blockReward %q", raw.BlockReward)
	}
	gasLimit, ok := bigint.ParseDecimal(raw.BlockGasLimit)
	if !ok {
		return nil, fmt.Errorf("chainconfig: invalid blockGasLimit %q", raw.BlockGasLimit)
	}
	return &Config{BlockReward: reward, BlockGasLimit: gasLimit}, nil
}
