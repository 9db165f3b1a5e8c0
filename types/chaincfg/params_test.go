/*
 * Copyright (c) 2023 The CellChain developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPastMedianTimeBlocks(t *testing.T) {
	for _, params := range []*Params{&MainNetParams, &TestNetParams, &SimNetParams} {
		assert.Equalf(t, params.MedianTimeBlocks, params.PastMedianTimeBlocks(),
			"network %s", params.Name)
	}

	custom := &Params{MedianTimeBlocks: 37}
	assert.Equal(t, uint64(37), custom.PastMedianTimeBlocks())
}

func TestRegister(t *testing.T) {
	assert.ErrorIs(t, Register(&MainNetParams), ErrDuplicateNet)
	assert.True(t, IsRegistered(&TestNetParams))

	assert.Nil(t, NetParams("no-such-net"))
	assert.Equal(t, &SimNetParams, NetParams("simnet"))
}
