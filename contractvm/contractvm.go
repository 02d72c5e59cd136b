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

// Package contractvm is a thin facade in front of the actual contract
// interpreter: a black box with a fixed I/O contract, run(code, ...) ->
// (new_states, new_storage), over contract bodies whose internal opcode
// semantics this module never interprets itself.
//
// The interpreter backing this adapter is goja, an embedded ECMAScript
// engine — contract bodies here are JS source, and goja is the idiomatic
// Go stand-in for running script-bodied logic in-process (go-ethereum's
// own internal/jsre reaches for the same library).
//
// Gas accounting is the one place this adapter cannot simply delegate to
// the interpreter's internals: a contract must stop and return cleanly once
// its cumulative cost exceeds its gas budget, deterministically given its
// inputs, which rules out a wall-clock timeout. This adapter exposes a
// single native binding, useGas(cost), that contract code calls to report
// incremental cost; cumulative cost is tracked in Go and checked
// synchronously, so the same (code, gasBudget) pair always halts at the
// same point regardless of host speed.
package contractvm

import (
	"fmt"
	"math/big"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/godwnwaswa/Drisschain/bigint"
	"github.com/godwnwaswa/Drisschain/core/types"
)

// StateView is the read-only account lookup a running contract may consult.
// It must never be used to write — the adapter only returns data for the
// caller to merge.
type StateView interface {
	GetAccount(address string) (*types.AccountState, bool, error)
}

// ContractInfo identifies the contract currently executing.
type ContractInfo struct {
	Address string
}

// ErrGasExhausted is surfaced (wrapped) when a contract's cumulative
// reported cost exceeds its gas budget.
var ErrGasExhausted = fmt.Errorf("contractvm: gas budget exceeded")

// Run executes code (a contract body) against a read-only view of chain
// state and returns the full updated account map and the full storage map
// of the invoked contract.
func Run(
	code string,
	view StateView,
	gasBudget *big.Int,
	block *types.Block,
	tx *types.Transaction,
	info ContractInfo,
	logger *zap.Logger,
) (states map[string]*types.AccountState, storage map[string]string, err error) {
	vm := goja.New()

	budget := int64(0)
	if gasBudget != nil && gasBudget.IsInt64() {
		budget = gasBudget.Int64()
	}
	var spent int64

	vm.Set("useGas", func(call goja.FunctionCall) goja.Value {
		spent += call.Argument(0).ToInteger()
		if spent > budget {
			panic(vm.ToValue(ErrGasExhausted.Error()))
		}
		return goja.Undefined()
	})

	vm.Set("getState", func(call goja.FunctionCall) goja.Value {
		addr := call.Argument(0).String()
		acc, ok, gerr := view.GetAccount(addr)
		if gerr != nil || !ok {
			return goja.Null()
		}
		obj := vm.NewObject()
		_ = obj.Set("balance", bigint.Decimal(acc.Balance))
		_ = obj.Set("nonce", acc.Nonce)
		_ = obj.Set("codeHash", acc.CodeHash)
		_ = obj.Set("storageRoot", acc.StorageRoot)
		return obj
	})

	vm.Set("tx", map[string]interface{}{
		"recipient": tx.Recipient,
		"amount":    bigint.Decimal(tx.Amount),
		"gas":       bigint.Decimal(tx.Gas),
		"nonce":     tx.Nonce,
	})
	vm.Set("block", map[string]interface{}{
		"blockNumber": block.BlockNumber,
		"timestamp":   block.Timestamp,
		"difficulty":  block.Difficulty,
		"coinbase":    block.Coinbase,
	})
	vm.Set("self", map[string]interface{}{"address": info.Address})
	vm.Set("gasBudget", bigint.Decimal(gasBudget))

	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Warn("contractvm: runtime error", zap.Any("recover", r), zap.String("address", info.Address))
			}
			err = fmt.Errorf("contractvm: %v", r)
			if spent > budget {
				err = fmt.Errorf("contractvm: %w", ErrGasExhausted)
			}
		}
	}()

	_, runErr := vm.RunString(code)
	if spent > budget {
		return nil, nil, fmt.Errorf("contractvm: %w", ErrGasExhausted)
	}
	if runErr != nil {
		return nil, nil, fmt.Errorf("contractvm: %w", runErr)
	}

	return readResult(vm)
}

// readResult pulls the two global objects a contract is expected to leave
// behind, `states` and `storage`, and decodes them into Go values. Missing
// globals decode to empty maps rather than an error: a contract that
// touched nothing is a valid (if unusual) outcome.
func readResult(vm *goja.Runtime) (map[string]*types.AccountState, map[string]string, error) {
	states := map[string]*types.AccountState{}
	storage := map[string]string{}

	if statesVal := vm.Get("states"); statesVal != nil && !goja.IsUndefined(statesVal) && !goja.IsNull(statesVal) {
		obj := statesVal.ToObject(vm)
		for _, key := range obj.Keys() {
			entry := obj.Get(key).ToObject(vm)
			bal, ok := bigint.ParseDecimal(entry.Get("balance").String())
			if !ok {
				return nil, nil, fmt.Errorf("contractvm: states[%s].balance is not a decimal integer", key)
			}
			states[key] = &types.AccountState{
				Balance:     bal,
				Nonce:       uint64(entry.Get("nonce").ToInteger()),
				CodeHash:    entry.Get("codeHash").String(),
				StorageRoot: entry.Get("storageRoot").String(),
			}
		}
	}

	if storageVal := vm.Get("storage"); storageVal != nil && !goja.IsUndefined(storageVal) && !goja.IsNull(storageVal) {
		obj := storageVal.ToObject(vm)
		for _, key := range obj.Keys() {
			storage[key] = obj.Get(key).String()
		}
	}

	return states, storage, nil
}
