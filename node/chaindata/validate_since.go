// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"fmt"
)

// SinceVerifier checks that every input of a transaction has reached the
// maturity demanded by its since lock, given a fixed view of the chain tip.
// A verifier is scoped to a single (tip number, tip epoch, transaction)
// triple; construct a new one per verification call.  Independent
// transactions may be verified concurrently as long as each has its own
// verifier.
type SinceVerifier struct {
	rtx       *ResolvedTransaction
	median    *medianTimeCache
	tipNumber uint64
	tipEpoch  uint64
}

// NewSinceVerifier returns a verifier for the provided resolved transaction
// against the chain tip described by tipNumber and tipEpoch.  The past median
// time cache is sized to the number of resolved inputs since distinct inputs
// of one transaction frequently share origin blocks.
func NewSinceVerifier(rtx *ResolvedTransaction, source ChainTimeSource,
	tipNumber, tipEpoch uint64) *SinceVerifier {
	return &SinceVerifier{
		rtx:       rtx,
		median:    newMedianTimeCache(source, len(rtx.ResolvedInputs)),
		tipNumber: tipNumber,
		tipEpoch:  tipEpoch,
	}
}

// parentMedianTime returns the past median time of the block preceding the
// block with the provided number, saturating at the genesis block.
//
// An unresolvable median is reported as 0, which lets a timestamp lock pass
// vacuously against a tip with no resolvable window (only reachable near
// genesis).  This fallback is part of the established consensus rules;
// diverging from it would fork the chain.
func (v *SinceVerifier) parentMedianTime(number uint64) uint64 {
	if number > 0 {
		number--
	}

	ts, ok := v.median.pastMedianTime(number)
	if !ok {
		return 0
	}
	return ts
}

// verifyAbsolute checks an absolute since lock against the chain tip.
func (v *SinceVerifier) verifyAbsolute(index int, metric SinceMetric) error {
	switch metric.Kind {
	case MetricBlockNumber:
		if v.tipNumber < metric.Value {
			str := fmt.Sprintf("input %d locked until block %d, tip is %d",
				index, metric.Value, v.tipNumber)
			return NewRuleError(ErrImmature, str)
		}
	case MetricEpochNumber:
		if v.tipEpoch < metric.Value {
			str := fmt.Sprintf("input %d locked until epoch %d, tip epoch is %d",
				index, metric.Value, v.tipEpoch)
			return NewRuleError(ErrImmature, str)
		}
	case MetricTimestamp:
		tipTimestamp := v.parentMedianTime(v.tipNumber)
		if tipTimestamp < metric.Value {
			str := fmt.Sprintf("input %d locked until median time %d, tip median time is %d",
				index, metric.Value, tipTimestamp)
			return NewRuleError(ErrImmature, str)
		}
	}

	return nil
}

// verifyRelative checks a relative since lock against the offset from the
// block that produced the spent cell.
func (v *SinceVerifier) verifyRelative(index int, metric SinceMetric, info *BlockInfo) error {
	// A relative lock can never be satisfied against a cell that has not
	// been confirmed on-chain yet.
	if info == nil {
		str := fmt.Sprintf("input %d has a relative lock but spends an unconfirmed cell", index)
		return NewRuleError(ErrImmature, str)
	}

	switch metric.Kind {
	case MetricBlockNumber:
		if v.tipNumber < info.Number+metric.Value {
			str := fmt.Sprintf("input %d locked until block %d (cell block %d + %d), tip is %d",
				index, info.Number+metric.Value, info.Number, metric.Value, v.tipNumber)
			return NewRuleError(ErrImmature, str)
		}
	case MetricEpochNumber:
		if v.tipEpoch < info.Epoch+metric.Value {
			str := fmt.Sprintf("input %d locked until epoch %d (cell epoch %d + %d), tip epoch is %d",
				index, info.Epoch+metric.Value, info.Epoch, metric.Value, v.tipEpoch)
			return NewRuleError(ErrImmature, str)
		}
	case MetricTimestamp:
		tipTimestamp := v.parentMedianTime(v.tipNumber)
		cellTimestamp := v.parentMedianTime(info.Number)
		if tipTimestamp < cellTimestamp+metric.Value {
			str := fmt.Sprintf("input %d locked until median time %d (cell median %d + %d), tip median time is %d",
				index, cellTimestamp+metric.Value, cellTimestamp, metric.Value, tipTimestamp)
			return NewRuleError(ErrImmature, str)
		}
	}

	return nil
}

// Verify checks the since lock of every input in order and returns the first
// rule violation encountered, or nil when every input has matured.  Inputs
// whose cells failed to resolve upstream contribute no constraint here; the
// resolver reports those separately.
func (v *SinceVerifier) Verify() error {
	for i, meta := range v.rtx.ResolvedInputs {
		if meta == nil {
			continue
		}

		raw := v.rtx.Tx.TxIn[i].Since
		if raw == 0 {
			continue
		}

		since := Since(raw)
		if !since.FlagsAreValid() {
			str := fmt.Sprintf("input %d has malformed since encoding %#016x", i, raw)
			return NewRuleError(ErrInvalidSince, str)
		}

		// FlagsAreValid already excludes the reserved metric, so a
		// missing metric is unreachable here, but an undecodable lock
		// must never be treated as satisfied.
		metric, ok := since.Metric()
		if !ok {
			str := fmt.Sprintf("input %d has undecodable since metric %#016x", i, raw)
			return NewRuleError(ErrInvalidSince, str)
		}

		var err error
		if since.IsAbsolute() {
			err = v.verifyAbsolute(i, metric)
		} else {
			err = v.verifyRelative(i, metric, meta.Block)
		}
		if err != nil {
			log.Debug().
				Int("input", i).
				Uint64("since", raw).
				Uint64("tipNumber", v.tipNumber).
				Uint64("tipEpoch", v.tipEpoch).
				Err(err).
				Msg("since lock not satisfied")
			return err
		}
	}

	return nil
}

// VerifyTransactionSince checks every since lock of the provided resolved
// transaction against the chain tip described by tipNumber and tipEpoch.  It
// is a convenience wrapper that constructs a session-scoped SinceVerifier and
// runs it.
func VerifyTransactionSince(rtx *ResolvedTransaction, source ChainTimeSource,
	tipNumber, tipEpoch uint64) error {
	return NewSinceVerifier(rtx, source, tipNumber, tipEpoch).Verify()
}
