// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// CellNet represents which CellChain network a message belongs to.
type CellNet uint32

// Constants used to indicate the network.  They can also be used to seek to
// the next message when a stream's state is unknown, but this package does
// not provide that functionality since it's generally a better idea to simply
// disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main cellchain network.
	MainNet CellNet = 0x63_65_6c_6c

	// TestNet represents the test network.
	TestNet CellNet = 0x74_63_65_6c

	// SimNet represents the simulation test network.
	SimNet CellNet = 0x12141c16
)

// cnStrings is a map of networks back to their constant names for pretty
// printing.
var cnStrings = map[CellNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	SimNet:  "SimNet",
}

// String returns the CellNet in human-readable form.
func (n CellNet) String() string {
	if s, ok := cnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown CellNet (%d)", uint32(n))
}
