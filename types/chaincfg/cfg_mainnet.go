// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"gitlab.com/cellchain/cellchaind/types/wire"
)

// MainNetParams defines the network parameters for the main cellchain
// network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         wire.MainNet,
	DefaultPort: "8633",

	MedianTimeBlocks:   DefaultMedianTimeBlocks,
	EpochLength:        DefaultEpochLength,
	TargetTimePerBlock: time.Second * 8,

	RelayNonStdTxs: false,
}
