// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"gitlab.com/cellchain/cellchaind/types/chaincfg"
)

// Since is the packed 64-bit lock field carried on a transaction input.  The
// bit layout is consensus-critical and must match bit-for-bit across node
// implementations:
//
//	bit  63     relative flag (0 = absolute, 1 = relative)
//	bits 62-61  metric flag (00 block number, 01 epoch number,
//	            10 timestamp, 11 reserved)
//	bits 60-56  reserved, must be zero
//	bits 55-0   56-bit unsigned lock value
//
// A Since of zero disables the lock for its input entirely.
type Since uint64

const (
	// SinceRelativeFlag is the mask of the relative/absolute flag bit.
	SinceRelativeFlag Since = 1 << 63

	// SinceMetricMask is the mask of the two metric flag bits.
	SinceMetricMask Since = 3 << 61

	// SinceReservedMask is the mask of the reserved bits which must be
	// zero in any valid since encoding.
	SinceReservedMask Since = 0x1f << 56

	// SinceValueMask is the mask of the 56-bit lock value.
	SinceValueMask Since = 0x00ff_ffff_ffff_ffff
)

// SinceMetricKind enumerates the unit a since lock value is expressed in.
type SinceMetricKind uint8

// The metric flag values as they appear in bits 62-61 of the packed field.
const (
	MetricBlockNumber SinceMetricKind = 0x0
	MetricEpochNumber SinceMetricKind = 0x1
	MetricTimestamp   SinceMetricKind = 0x2
	metricReserved    SinceMetricKind = 0x3
)

// String returns the SinceMetricKind as a human-readable name.
func (k SinceMetricKind) String() string {
	switch k {
	case MetricBlockNumber:
		return "block"
	case MetricEpochNumber:
		return "epoch"
	case MetricTimestamp:
		return "timestamp"
	default:
		return "reserved"
	}
}

// SinceMetric is the decoded lock condition of a since field.  For the
// timestamp kind the value is in milliseconds, already scaled from the
// second-granular on-wire value.
type SinceMetric struct {
	Kind  SinceMetricKind
	Value uint64
}

// IsAbsolute returns whether the lock condition is compared directly against
// the chain tip.
func (s Since) IsAbsolute() bool {
	return s&SinceRelativeFlag == 0
}

// IsRelative returns whether the lock condition is compared against an offset
// from the block that produced the spent cell.  It is the exact complement of
// IsAbsolute.
func (s Since) IsRelative() bool {
	return !s.IsAbsolute()
}

// metricFlag extracts the raw two-bit metric flag.
func (s Since) metricFlag() SinceMetricKind {
	return SinceMetricKind(s & SinceMetricMask >> 61)
}

// Value extracts the 56-bit lock value without interpreting the metric.
func (s Since) Value() uint64 {
	return uint64(s & SinceValueMask)
}

// FlagsAreValid returns whether the flag bits form a valid encoding: all
// reserved bits are zero and the metric flag is not the reserved value.  It
// makes no statement about whether the lock is satisfied.
func (s Since) FlagsAreValid() bool {
	if s&SinceReservedMask != 0 {
		return false
	}
	return s.metricFlag() != metricReserved
}

// Metric decodes the lock condition.  The second return value is false when
// the metric flag carries the reserved value, in which case the since field
// cannot be interpreted.  The timestamp value is scaled from seconds to
// milliseconds to match the granularity of the past median time.
func (s Since) Metric() (SinceMetric, bool) {
	value := s.Value()
	switch s.metricFlag() {
	case MetricBlockNumber:
		return SinceMetric{Kind: MetricBlockNumber, Value: value}, true
	case MetricEpochNumber:
		return SinceMetric{Kind: MetricEpochNumber, Value: value}, true
	case MetricTimestamp:
		return SinceMetric{Kind: MetricTimestamp, Value: value * chaincfg.MillisecondsPerSecond}, true
	default:
		return SinceMetric{}, false
	}
}

// LockTimeToSince packs a lock condition into a since field.  The value is
// masked to 56 bits; timestamp values are given in seconds, matching the
// on-wire representation.
func LockTimeToSince(relative bool, kind SinceMetricKind, value uint64) Since {
	s := Since(value) & SinceValueMask
	s |= Since(kind) << 61
	if relative {
		s |= SinceRelativeFlag
	}
	return s
}
