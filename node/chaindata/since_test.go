/*
 * Copyright (c) 2023 The CellChain developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaindata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinceFlagsAreValid(t *testing.T) {
	tests := []struct {
		name  string
		since Since
		valid bool
	}{
		{"zero", 0, true},
		{"absolute block", LockTimeToSince(false, MetricBlockNumber, 10000), true},
		{"absolute epoch", LockTimeToSince(false, MetricEpochNumber, 42), true},
		{"absolute timestamp", LockTimeToSince(false, MetricTimestamp, 1600000000), true},
		{"relative block", LockTimeToSince(true, MetricBlockNumber, 10), true},
		{"relative timestamp", LockTimeToSince(true, MetricTimestamp, 259200), true},
		{"reserved metric absolute", Since(3) << 61, false},
		{"reserved metric relative", SinceRelativeFlag | Since(3)<<61, false},
		{"reserved metric with value", Since(3)<<61 | 0xff, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.since.FlagsAreValid())
		})
	}

	// Any reserved bit set invalidates the encoding regardless of the rest.
	for bit := 56; bit <= 60; bit++ {
		s := LockTimeToSince(false, MetricBlockNumber, 1) | Since(1)<<uint(bit)
		assert.Falsef(t, s.FlagsAreValid(), "reserved bit %d", bit)
	}
}

func TestSinceAbsoluteRelativeComplement(t *testing.T) {
	samples := []Since{
		0,
		SinceRelativeFlag,
		Since(3) << 61,
		SinceRelativeFlag | Since(3)<<61,
		LockTimeToSince(false, MetricTimestamp, 1),
		LockTimeToSince(true, MetricEpochNumber, 1<<55),
		Since(0xffff_ffff_ffff_ffff),
	}

	for _, s := range samples {
		assert.Equalf(t, s.IsAbsolute(), !s.IsRelative(), "since %#016x", uint64(s))
	}
}

func TestSinceMetric(t *testing.T) {
	tests := []struct {
		name   string
		since  Since
		kind   SinceMetricKind
		value  uint64
		wantOk bool
	}{
		{"block number", LockTimeToSince(false, MetricBlockNumber, 10000), MetricBlockNumber, 10000, true},
		{"epoch number", LockTimeToSince(true, MetricEpochNumber, 6), MetricEpochNumber, 6, true},
		{
			// The on-wire value is in seconds; the decoded metric is in
			// milliseconds to match the past median time granularity.
			"timestamp scaling", LockTimeToSince(true, MetricTimestamp, 259200),
			MetricTimestamp, 259200 * 1000, true,
		},
		{"reserved metric", Since(3) << 61, 0, 0, false},
		{"reserved metric relative", SinceRelativeFlag | Since(3)<<61 | 99, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metric, ok := tt.since.Metric()
			assert.Equal(t, tt.wantOk, ok)
			if !tt.wantOk {
				return
			}
			assert.Equal(t, tt.kind, metric.Kind)
			assert.Equal(t, tt.value, metric.Value)
		})
	}
}

func TestSinceTimestampValueMask(t *testing.T) {
	raw := Since(0x8000_0000_0000_0000 | 2<<61 | 0x00ff_ffff_ffff_ffff)
	metric, ok := raw.Metric()

	assert.True(t, ok)
	assert.Equal(t, uint64(raw&SinceValueMask)*1000, metric.Value)
}

func TestLockTimeToSinceMasksValue(t *testing.T) {
	// Values wider than 56 bits must not leak into the flag bits.
	s := LockTimeToSince(false, MetricBlockNumber, 1<<60)

	assert.True(t, s.IsAbsolute())
	assert.True(t, s.FlagsAreValid())
	assert.Equal(t, uint64(1<<60)&uint64(SinceValueMask), s.Value())
}
