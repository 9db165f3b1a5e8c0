// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"gitlab.com/cellchain/cellchaind/types/wire"
)

// BlockInfo describes the block that produced a cell.
type BlockInfo struct {
	Number uint64
	Epoch  uint64
}

// CellMeta carries the per-input context needed to evaluate a since lock.  A
// nil Block means the cell has not yet been confirmed on-chain (for example
// it is still in a pending pool), which makes any relative lock against it
// unsatisfiable.
type CellMeta struct {
	Block *BlockInfo
}

// ResolvedTransaction pairs a transaction with the metadata of the cells its
// inputs spend.  ResolvedInputs is indexed in input order; a nil entry means
// the cell could not be located.  Resolution failures are reported by the
// resolver, not by since verification, so verification skips such entries.
type ResolvedTransaction struct {
	Tx             *wire.MsgTx
	ResolvedInputs []*CellMeta
}

// NewResolvedTransaction returns a ResolvedTransaction for the provided
// transaction with all inputs unresolved.
func NewResolvedTransaction(tx *wire.MsgTx) *ResolvedTransaction {
	return &ResolvedTransaction{
		Tx:             tx,
		ResolvedInputs: make([]*CellMeta, len(tx.TxIn)),
	}
}
