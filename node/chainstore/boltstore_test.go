/*
 * Copyright (c) 2023 The CellChain developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/cellchain/cellchaind/node/chaindata"
	"gitlab.com/cellchain/cellchaind/types/chaincfg"
	"gitlab.com/cellchain/cellchaind/types/chainhash"
	"gitlab.com/cellchain/cellchaind/types/wire"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "chainstore.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

func TestStoreBlockTimeRoundTrip(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.PutBlockTime(42, 1_600_000_000_000))

	ts, found, err := store.BlockTime(42)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(1_600_000_000_000), ts)

	_, found, err = store.BlockTime(43)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreTipTracking(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.Tip()
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetTip(1000))

	tip, found, err := store.Tip()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(1000), tip)
}

func TestTimeSourceMedianWindow(t *testing.T) {
	store := openTestStore(t)

	// Twelve consecutive blocks; the default window of 11 over block 11
	// covers all of them, so the median is element 12/2 of the sorted
	// timestamps.
	for n := uint64(0); n <= 11; n++ {
		require.NoError(t, store.PutBlockTime(n, (n+1)*100))
	}

	source := store.TimeSource(&chaincfg.SimNetParams)
	assert.Equal(t, chaincfg.SimNetParams.MedianTimeBlocks, source.MedianBlockCount())

	median, ok := chaindata.PastMedianTime(source, 11)
	require.True(t, ok)
	assert.Equal(t, uint64(700), median)
}

func TestTimeSourceDrivesVerifier(t *testing.T) {
	store := openTestStore(t)

	for n := uint64(0); n <= 199; n++ {
		require.NoError(t, store.PutBlockTime(n, 1_000_000+n*8000))
	}
	require.NoError(t, store.SetTip(199))

	// The tip median over blocks 188..199 is the timestamp of block 194;
	// a lock just below it passes, one just above stays immature.
	tipMedian := uint64(1_000_000 + 194*8000)

	hash := chainhash.HashH([]byte("test"))
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewCellInput(wire.NewOutPoint(&hash, 0),
		uint64(chaindata.LockTimeToSince(false, chaindata.MetricTimestamp, tipMedian/1000))))

	rtx := &chaindata.ResolvedTransaction{
		Tx:             tx,
		ResolvedInputs: []*chaindata.CellMeta{{Block: &chaindata.BlockInfo{Number: 100, Epoch: 1}}},
	}

	source := store.TimeSource(&chaincfg.SimNetParams)
	assert.NoError(t, chaindata.VerifyTransactionSince(rtx, source, 200, 5))

	tx.TxIn[0].Since = uint64(chaindata.LockTimeToSince(false, chaindata.MetricTimestamp,
		tipMedian/1000+1))
	err := chaindata.VerifyTransactionSince(rtx, source, 200, 5)
	require.Error(t, err)
	assert.True(t, chaindata.IsRuleErrorCode(err, chaindata.ErrImmature))
}
