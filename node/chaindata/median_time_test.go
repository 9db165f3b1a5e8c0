/*
 * Copyright (c) 2023 The CellChain developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaindata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimeSource is an in-memory ChainTimeSource that counts lookups so
// tests can assert on caching behaviour.
type fakeTimeSource struct {
	count      uint64
	timestamps map[uint64]uint64
	queries    int
}

func newFakeTimeSource(count uint64) *fakeTimeSource {
	return &fakeTimeSource{
		count:      count,
		timestamps: make(map[uint64]uint64),
	}
}

func (f *fakeTimeSource) MedianBlockCount() uint64 { return f.count }

func (f *fakeTimeSource) BlockTimestamp(number uint64) (uint64, bool) {
	f.queries++
	ts, ok := f.timestamps[number]
	return ts, ok
}

// withBlocks records consecutive block timestamps starting at the given
// number.
func (f *fakeTimeSource) withBlocks(from uint64, timestamps ...uint64) *fakeTimeSource {
	for i, ts := range timestamps {
		f.timestamps[from+uint64(i)] = ts
	}
	return f
}

func TestPastMedianTimeTieBreak(t *testing.T) {
	// Four resolvable timestamps sort to [1,3,5,7]; the consensus rules
	// pick index 4/2 = 2, the upper of the two middle values.
	source := newFakeTimeSource(11).withBlocks(0, 7, 1, 5, 3)

	median, ok := PastMedianTime(source, 3)

	require.True(t, ok)
	assert.Equal(t, uint64(5), median)
}

func TestPastMedianTimeOddWindow(t *testing.T) {
	source := newFakeTimeSource(2).withBlocks(10, 3000, 1000, 2000)

	median, ok := PastMedianTime(source, 12)

	require.True(t, ok)
	assert.Equal(t, uint64(2000), median)
}

func TestPastMedianTimeSkipsUnresolvable(t *testing.T) {
	// Block 11 is missing from the source; the window must shrink rather
	// than treat the gap as a zero timestamp.
	source := newFakeTimeSource(2).withBlocks(10, 4000)
	source.timestamps[12] = 6000

	median, ok := PastMedianTime(source, 12)

	require.True(t, ok)
	assert.Equal(t, uint64(6000), median)
}

func TestPastMedianTimeNearGenesis(t *testing.T) {
	// The window saturates at block 0 instead of wrapping below genesis.
	source := newFakeTimeSource(11).withBlocks(0, 100, 200, 300)

	median, ok := PastMedianTime(source, 2)

	require.True(t, ok)
	assert.Equal(t, uint64(200), median)
}

func TestPastMedianTimeEmptyWindow(t *testing.T) {
	source := newFakeTimeSource(11)

	median, ok := PastMedianTime(source, 5)

	assert.False(t, ok)
	assert.Zero(t, median)
}

func TestMedianTimeCacheHit(t *testing.T) {
	source := newFakeTimeSource(11).withBlocks(0,
		100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100, 1200)
	cache := newMedianTimeCache(source, 4)

	first, ok := cache.pastMedianTime(11)
	require.True(t, ok)
	queriesAfterFirst := source.queries
	assert.Equal(t, uint64(700), first)

	// The second call must be served from the cache without touching the
	// source again.
	second, ok := cache.pastMedianTime(11)
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, queriesAfterFirst, source.queries)
}

func TestMedianTimeCacheFloorsCapacity(t *testing.T) {
	source := newFakeTimeSource(2).withBlocks(0, 10, 20, 30)
	cache := newMedianTimeCache(source, 0)

	median, ok := cache.pastMedianTime(2)

	require.True(t, ok)
	assert.Equal(t, uint64(20), median)
}
