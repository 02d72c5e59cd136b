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

// Package merkle builds the binary Merkle roots used for both a block's
// txRoot and a contract's storageRoot. Leaf pairing is left-to-right;
// an odd leaf out is carried up unchanged rather than duplicated, matching
// the source's shape.
package merkle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	gomerkle "github.com/xsleonard/go-merkle"

	"github.com/godwnwaswa/Drisschain/core/types"
	"github.com/godwnwaswa/Drisschain/txcodec"
)

// Root computes the Merkle root over leaves, an ordered sequence of
// already-canonicalized strings. Empty input returns emptyHash (the
// well-known sentinel, since there is no meaningful root over zero leaves).
func Root(leaves []string, emptyHash string) string {
	if len(leaves) == 0 {
		return emptyHash
	}
	blocks := make([][]byte, len(leaves))
	for i, l := range leaves {
		blocks[i] = []byte(l)
	}
	tree := gomerkle.NewTree()
	if err := tree.Generate(blocks, sha256.New()); err != nil {
		// Generate only fails on programmer error (mismatched leaf
		// sizes for a fixed-size hash), never on input content.
		panic(fmt.Sprintf("merkle: Generate: %v", err))
	}
	root := tree.Root()
	return hex.EncodeToString(root.Hash)
}

// IndexedTxLeaves pairs each transaction with its ordinal position before
// canonicalization, so that reordering the block's transactions changes
// txRoot.
func IndexedTxLeaves(txs []*types.Transaction) []string {
	leaves := make([]string, len(txs))
	for i, tx := range txs {
		leaves[i] = strconv.Itoa(i) + txcodec.Canonical(tx)
	}
	return leaves
}

// StorageLeaves renders an ordered key/value sequence into the
// "key value" leaf form the storageRoot commitment uses. Callers must
// supply keys in lexicographic ascending order — this function does not
// sort.
func StorageLeaves(orderedKeys []string, values map[string]string) []string {
	leaves := make([]string, len(orderedKeys))
	for i, k := range orderedKeys {
		leaves[i] = strings.Join([]string{k, values[k]}, " ")
	}
	return leaves
}
