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

// Package engine wires every other package into the single entry point
// this module exists to provide: given a candidate block and the chain's
// current state, either the whole block's effects land atomically or none
// of them do.
package engine

import (
	"context"
	"math/big"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/godwnwaswa/Drisschain/blocktypes"
	"github.com/godwnwaswa/Drisschain/chainconfig"
	"github.com/godwnwaswa/Drisschain/contractvm"
	"github.com/godwnwaswa/Drisschain/core/types"
	"github.com/godwnwaswa/Drisschain/hashutil"
	"github.com/godwnwaswa/Drisschain/kvstore"
	"github.com/godwnwaswa/Drisschain/merkle"
	"github.com/godwnwaswa/Drisschain/txcodec"
	"github.com/godwnwaswa/Drisschain/txsig"
)

// Rejection kinds logged by reject, beyond the ones txcodec.IsValid already
// names. A caller wanting machine-readable outcomes should treat these as
// part of this package's API, not just log text.
const (
	ReasonMalformedBlock     = "malformed_block"
	ReasonContractCannotSend = "contract_cannot_send"
	ReasonBadNonce           = "bad_nonce"
	ReasonGasLimitExceeded   = "gas_limit_exceeded"
	ReasonRuntimeError       = "runtime_error"
)

// Engine holds the durable handles a running chain node keeps open across
// many blocks: the two top-level stores and the per-instance serialization
// lock that keeps concurrent VerifyAndTransit calls from racing on the same
// databases.
type Engine struct {
	stateStore *kvstore.StateStore
	codeStore  *kvstore.CodeStore
	dataRoot   string
	emptyHash  string
	config     *chainconfig.Config
	sem        *semaphore.Weighted
	logger     *zap.Logger
}

// New builds an Engine over already-open stores. dataRoot is the directory
// under which per-account storage databases are opened on demand. A nil
// logger is replaced with a no-op one.
func New(stateStore *kvstore.StateStore, codeStore *kvstore.CodeStore, dataRoot string, config *chainconfig.Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config == nil {
		config = chainconfig.Default()
	}
	return &Engine{
		stateStore: stateStore,
		codeStore:  codeStore,
		dataRoot:   dataRoot,
		emptyHash:  chainconfig.EmptyHash,
		config:     config,
		sem:        semaphore.NewWeighted(1),
		logger:     logger,
	}
}

// VerifyAndTransit validates block against the current chain state and, if
// and only if every check passes, commits its effects: updated balances,
// nonces, deployed code and contract storage, and the coinbase reward. A
// false return with a nil error means the block was rejected; callers must
// not retry it unless its contents change. Concurrent calls on the same
// Engine are serialized — a second caller blocks until the first commits or
// rejects, since both operate on the same on-disk databases.
func (e *Engine) VerifyAndTransit(ctx context.Context, block *types.Block) (bool, error) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer e.sem.Release(1)

	if !blocktypes.HasValidPropTypes(block) {
		e.reject(ReasonMalformedBlock, "", nil)
		return false, nil
	}

	wantRoot := merkle.Root(merkle.IndexedTxLeaves(block.Transactions), e.emptyHash)
	if block.TxRoot != wantRoot {
		e.reject(ReasonMalformedBlock, "", nil)
		return false, nil
	}
	if block.Hash != blocktypes.Hash(block.BlockHeader) {
		e.reject(ReasonMalformedBlock, "", nil)
		return false, nil
	}

	if !HasValidGasLimit(block, e.config.BlockGasLimit) {
		e.reject(ReasonGasLimitExceeded, "", nil)
		return false, nil
	}
	if !HasValidTxOrder(block, e.stateStore) {
		e.reject(ReasonBadNonce, "", nil)
		return false, nil
	}

	for _, tx := range block.Transactions {
		ok, reason, err := txcodec.IsValid(tx, e.stateStore, chainconfig.MinTxGas)
		if err != nil {
			return false, err
		}
		if !ok {
			e.reject(reason, "", tx)
			return false, nil
		}
	}

	ov := newOverlay()
	view := overlayView{ov: ov, state: e.stateStore}

	for _, tx := range block.Transactions {
		pub, err := txsig.RecoverPubKey(tx)
		if err != nil {
			// Already screened by IsValid above; a recovery failure here
			// would mean the two calls disagree, which never happens for
			// the same tx and signature.
			return false, err
		}
		senderAddr := txsig.Address(pub)

		sender, err := loadAccount(ctx, ov, e.stateStore, e.codeStore, e.emptyHash, senderAddr, false)
		if err != nil {
			return false, err
		}
		if sender.IsContract(e.emptyHash) {
			e.reject(ReasonContractCannotSend, senderAddr, tx)
			return false, nil
		}

		debit := new(big.Int).Add(tx.Amount, tx.Gas)
		debit.Add(debit, tx.ContractGasOrZero())
		sender.Balance = new(big.Int).Sub(sender.Balance, debit)
		if sender.Balance.Sign() < 0 {
			e.reject(txcodec.ReasonInsufficientBalance, senderAddr, tx)
			return false, nil
		}
		sender.Nonce = tx.Nonce

		deploying := sender.CodeHash == e.emptyHash && tx.AdditionalData.SCBody != nil
		if deploying {
			body := *tx.AdditionalData.SCBody
			codeHash := deployedCodeHash(body)
			sender.CodeHash = codeHash
			ov.code[codeHash] = body
		}

		recipient, err := loadAccount(ctx, ov, e.stateStore, e.codeStore, e.emptyHash, tx.Recipient, true)
		if err != nil {
			return false, err
		}
		recipient.Balance = new(big.Int).Add(recipient.Balance, tx.Amount)

		selfDeploy := deploying && tx.Recipient == senderAddr
		if recipient.IsContract(e.emptyHash) && !selfDeploy {
			body := ov.code[recipient.CodeHash]
			newStates, newStorage, err := contractvm.Run(body, view, tx.ContractGasOrZero(), block, tx, contractvm.ContractInfo{Address: tx.Recipient}, e.logger)
			if err != nil {
				e.reject(ReasonRuntimeError, tx.Recipient, tx)
				return false, nil
			}
			for addr, state := range newStates {
				ov.states[addr] = state
			}
			ov.storage[tx.Recipient] = newStorage
		}
	}

	coinbase, err := loadAccount(ctx, ov, e.stateStore, e.codeStore, e.emptyHash, block.Coinbase, true)
	if err != nil {
		return false, err
	}
	reward := new(big.Int).Set(e.config.BlockReward)
	for _, tx := range block.Transactions {
		reward.Add(reward, tx.Gas)
		reward.Add(reward, tx.ContractGasOrZero())
	}
	coinbase.Balance = new(big.Int).Add(coinbase.Balance, reward)

	if err := e.commit(ctx, ov); err != nil {
		return false, err
	}
	return true, nil
}

// commit flushes every account this block touched, in two passes: first
// each address's full storage replacement (so StorageRoot can be recomputed
// from what was just written), then the account records themselves and any
// newly deployed code.
func (e *Engine) commit(ctx context.Context, ov *overlay) error {
	for addr, kv := range ov.storage {
		acc, ok := ov.states[addr]
		if !ok {
			continue
		}
		keys := sortedStorageKeys(kv)
		acc.StorageRoot = merkle.Root(merkle.StorageLeaves(keys, kv), e.emptyHash)

		store, err := kvstore.OpenAccountStore(e.dataRoot, addr)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := store.Put(ctx, k, []byte(kv[k])); err != nil {
				_ = store.Close()
				return err
			}
		}
		if err := store.Close(); err != nil {
			return err
		}
	}

	for _, addr := range ov.sortedAddresses() {
		acc := ov.states[addr]
		if body, ok := ov.code[acc.CodeHash]; ok {
			if err := e.codeStore.PutCode(ctx, acc.CodeHash, body); err != nil {
				return err
			}
		}
		if err := e.stateStore.PutAccount(ctx, addr, acc); err != nil {
			return err
		}
	}
	return nil
}

// deployedCodeHash derives the codeHash a freshly deployed contract body is
// stored under: the same digest scheme used everywhere else in this
// module, so codeDB's key space has one shape regardless of where a hash
// enters it.
func deployedCodeHash(body string) string {
	return hashutil.Sha256HexString(body)
}

// reject logs a single rejected-block decision at the point the rejecting
// check ran, naming the kind, the account (if any) implicated, and the
// offending transaction's recipient (if any) rather than the whole body.
func (e *Engine) reject(kind, address string, tx *types.Transaction) {
	fields := []zap.Field{zap.String("reason", kind)}
	if address != "" {
		fields = append(fields, zap.String("address", address))
	}
	if tx != nil {
		fields = append(fields, zap.String("recipient", tx.Recipient), zap.Uint64("nonce", tx.Nonce))
	}
	e.logger.Info("block rejected", fields...)
}
