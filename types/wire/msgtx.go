// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"gitlab.com/cellchain/cellchaind/types/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxTxInputsCount is the maximum number of inputs a transaction can
	// carry and still be relayed.
	MaxTxInputsCount = 1 << 16
)

// OutPoint defines a cell outpoint which references an output of a previous
// transaction by hash and index.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new cellchain outpoint with the provided hash and
// index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.Hash, o.Index)
}

// CellInput defines a cellchain transaction input.  Since carries the packed
// 64-bit lock field governing when the referenced cell may be consumed; its
// bit layout is interpreted by the consensus rules, not here.
type CellInput struct {
	PreviousOutPoint OutPoint
	Since            uint64
}

// NewCellInput returns a new cellchain transaction input with the provided
// previous outpoint and since field.
func NewCellInput(prevOut *OutPoint, since uint64) *CellInput {
	return &CellInput{
		PreviousOutPoint: *prevOut,
		Since:            since,
	}
}

// CellOutput defines a cellchain transaction output.  The lock script is an
// opaque blob from this package's point of view; script execution belongs to
// the VM subsystem.
type CellOutput struct {
	Value      uint64
	LockScript []byte
}

// NewCellOutput returns a new cellchain transaction output with the provided
// value and lock script.
func NewCellOutput(value uint64, lockScript []byte) *CellOutput {
	return &CellOutput{
		Value:      value,
		LockScript: lockScript,
	}
}

// MsgTx represents a cellchain transaction.  Only the fields the consensus
// rules read are modeled here; wire serialization belongs to a separate
// subsystem.
type MsgTx struct {
	Version int32
	TxIn    []*CellInput
	TxOut   []*CellOutput
}

// NewMsgTx returns a new cellchain transaction with the provided version and
// no inputs or outputs.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{
		Version: version,
		TxIn:    make([]*CellInput, 0, 8),
		TxOut:   make([]*CellOutput, 0, 8),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *CellInput) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *CellOutput) {
	msg.TxOut = append(msg.TxOut, to)
}

// Copy creates a deep copy of a transaction so that the original does not get
// modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := MsgTx{
		Version: msg.Version,
		TxIn:    make([]*CellInput, 0, len(msg.TxIn)),
		TxOut:   make([]*CellOutput, 0, len(msg.TxOut)),
	}

	for _, oldTxIn := range msg.TxIn {
		newTxIn := *oldTxIn
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	for _, oldTxOut := range msg.TxOut {
		newScript := make([]byte, len(oldTxOut.LockScript))
		copy(newScript, oldTxOut.LockScript)

		newTx.TxOut = append(newTx.TxOut, &CellOutput{
			Value:      oldTxOut.Value,
			LockScript: newScript,
		})
	}

	return &newTx
}
