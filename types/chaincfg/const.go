/*
 * Copyright (c) 2023 The CellChain developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

const (
	// DefaultMedianTimeBlocks is the historical window size for the past
	// median time calculation.  Networks may override it in their Params,
	// but every production network to date uses this value.
	DefaultMedianTimeBlocks = 11

	// DefaultEpochLength is the nominal number of blocks per epoch on the
	// production networks.
	DefaultEpochLength = 1800

	// MillisecondsPerSecond converts the second-granular since timestamp
	// value to the millisecond granularity of header timestamps and the
	// past median time.
	MillisecondsPerSecond = 1000
)
