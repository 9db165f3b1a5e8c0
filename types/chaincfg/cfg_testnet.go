// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"gitlab.com/cellchain/cellchaind/types/wire"
)

// TestNetParams defines the network parameters for the test cellchain
// network.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         wire.TestNet,
	DefaultPort: "18633",

	MedianTimeBlocks:   DefaultMedianTimeBlocks,
	EpochLength:        DefaultEpochLength,
	TargetTimePerBlock: time.Second * 8,

	RelayNonStdTxs: true,
}

// SimNetParams defines the network parameters for the simulation test
// network.  This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing.
var SimNetParams = Params{
	Name:        "simnet",
	Net:         wire.SimNet,
	DefaultPort: "18733",

	MedianTimeBlocks:   DefaultMedianTimeBlocks,
	EpochLength:        150,
	TargetTimePerBlock: time.Second * 8,

	RelayNonStdTxs: true,
}
