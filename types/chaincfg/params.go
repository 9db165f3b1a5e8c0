// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"time"

	"gitlab.com/cellchain/cellchaind/types/wire"
)

// ErrDuplicateNet describes an error where the parameters for a network
// could not be set due to the network already being a standard network.
var ErrDuplicateNet = errors.New("duplicate network")

// Params defines a cellchain network by its parameters.  These parameters may
// be used by cellchain applications to differentiate networks as well as
// addresses and keys for one network from those intended for use on another
// network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.CellNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// MedianTimeBlocks is the number of previous blocks which should be
	// used to calculate the median time used to validate timestamp-based
	// since locks.
	MedianTimeBlocks uint64

	// EpochLength is the nominal number of blocks in one epoch.  The
	// consensus rules compare whole epoch numbers only; the length exists
	// for tooling and documentation.
	EpochLength uint64

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// RelayNonStdTxs defines whether the network should relay non-standard
	// transactions using the default mempool policy.
	RelayNonStdTxs bool
}

// PastMedianTimeBlocks returns the window size for the past median time
// calculation.
func (p *Params) PastMedianTimeBlocks() uint64 {
	return p.MedianTimeBlocks
}

// registeredNets keeps track of registered networks to prevent accidental
// duplicate registration of two networks with the same magic.
var registeredNets = map[wire.CellNet]struct{}{
	MainNetParams.Net: {},
	TestNetParams.Net: {},
	SimNetParams.Net:  {},
}

// Register registers the network parameters for a cellchain network.  This
// may error with ErrDuplicateNet if the network is already registered, either
// due to a previous Register call or the network being one of the default
// networks.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}

	return nil
}

// IsRegistered returns whether the given network parameters have been
// registered.
func IsRegistered(params *Params) bool {
	_, ok := registeredNets[params.Net]
	return ok
}

// NetParams returns the registered default parameters for the provided
// network name, or nil when the name is unknown.
func NetParams(name string) *Params {
	switch name {
	case MainNetParams.Name:
		return &MainNetParams
	case TestNetParams.Name:
		return &TestNetParams
	case SimNetParams.Name:
		return &SimNetParams
	default:
		return nil
	}
}
