// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"sort"

	lru "github.com/hashicorp/golang-lru"
)

// ChainTimeSource is the capability interface through which the consensus
// rules read chain state.  Implementations must be safe for concurrent
// readers; verification never writes through it.
type ChainTimeSource interface {
	// MedianBlockCount returns the configured window size for the past
	// median time calculation.
	MedianBlockCount() uint64

	// BlockTimestamp returns the header timestamp, in milliseconds, of the
	// block with the provided number.  The second return value is false
	// when the block is unknown.
	BlockTimestamp(number uint64) (uint64, bool)
}

// PastMedianTime calculates the median of the timestamps of the block with
// the provided number and its MedianBlockCount nearest ancestors.  Blocks
// whose timestamp cannot be resolved are omitted from the window rather than
// treated as zero, so the window shrinks near the beginning of the chain.
//
// NOTE: For an even number of collected timestamps this selects the upper of
// the two middle values rather than averaging them.  A true median would
// average, but the established consensus rules pick element len/2 of the
// sorted window and every implementation must reproduce that exact
// tie-break.
//
// The second return value is false when not a single timestamp in the window
// could be resolved.
func PastMedianTime(source ChainTimeSource, number uint64) (uint64, bool) {
	count := source.MedianBlockCount()

	lowest := uint64(0)
	if number > count {
		lowest = number - count
	}

	timestamps := make([]uint64, 0, count+1)
	for n := lowest; n <= number; n++ {
		ts, ok := source.BlockTimestamp(n)
		if !ok {
			continue
		}
		timestamps = append(timestamps, ts)
	}

	if len(timestamps) == 0 {
		return 0, false
	}

	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i] < timestamps[j]
	})

	return timestamps[len(timestamps)/2], true
}

// medianEntry is the cached result of one PastMedianTime computation.
type medianEntry struct {
	timestamp uint64
	ok        bool
}

// medianTimeCache memoizes PastMedianTime per block number for the duration
// of one verification session.  A session observes a fixed chain view, so
// entries are never invalidated; the LRU bound only caps memory when a
// transaction references an unusual number of distinct origin blocks.
type medianTimeCache struct {
	source ChainTimeSource
	cache  *lru.Cache
}

// newMedianTimeCache returns a cache over the provided source, bounded at
// capacity entries.  A capacity below one is raised to one, which keeps the
// degenerate zero-input case valid.
func newMedianTimeCache(source ChainTimeSource, capacity int) *medianTimeCache {
	if capacity < 1 {
		capacity = 1
	}

	// lru.New only fails for non-positive sizes, which the floor above
	// rules out.
	cache, _ := lru.New(capacity)

	return &medianTimeCache{
		source: source,
		cache:  cache,
	}
}

// pastMedianTime returns the memoized past median time of the block with the
// provided number, computing and storing it on a miss.
func (m *medianTimeCache) pastMedianTime(number uint64) (uint64, bool) {
	if cached, hit := m.cache.Get(number); hit {
		entry := cached.(medianEntry)
		return entry.timestamp, entry.ok
	}

	ts, ok := PastMedianTime(m.source, number)
	m.cache.Add(number, medianEntry{timestamp: ts, ok: ok})

	return ts, ok
}
