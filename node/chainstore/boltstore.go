// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainstore persists the per-block header timestamps the consensus
// rules read.  It is a thin index over bbolt, not a block store: only the
// data the since rules need (block number to millisecond timestamp, plus the
// tip number) is kept.
package chainstore

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"gitlab.com/cellchain/cellchaind/node/chaindata"
	"gitlab.com/cellchain/cellchaind/types/chaincfg"
)

var (
	bucketTimestamps = []byte("timestamps")
	bucketMeta       = []byte("meta")

	keyTip = []byte("tip")
)

// Store wraps a bbolt database holding the block timestamp index.  It is
// safe for concurrent readers; writes are serialized by bbolt.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the timestamp index at dbPath.  The parent directory
// is created if it does not exist.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, errors.Wrap(err, "chainstore: create directory")
	}

	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "chainstore: open db")
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketTimestamps, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return errors.Wrapf(err, "create bucket %q", name)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "chainstore: create buckets")
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// encodeUint64 encodes a value as 8 big-endian bytes; block-number keys
// encoded this way keep the bucket in chain order.
func encodeUint64(v uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, v)
	return k
}

// PutBlockTime records the header timestamp, in milliseconds, of the block
// with the provided number.  Re-recording a block overwrites the previous
// value; the index carries one chain view, not forks.
func (s *Store) PutBlockTime(number, timestamp uint64) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTimestamps).Put(encodeUint64(number), encodeUint64(timestamp))
	})
	return errors.Wrapf(err, "chainstore: put block %d", number)
}

// BlockTime returns the recorded timestamp of the block with the provided
// number.  The boolean is false when the block is not in the index.
func (s *Store) BlockTime(number uint64) (uint64, bool, error) {
	var (
		timestamp uint64
		found     bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketTimestamps).Get(encodeUint64(number))
		if raw == nil {
			return nil
		}
		timestamp = binary.BigEndian.Uint64(raw)
		found = true
		return nil
	})
	if err != nil {
		return 0, false, errors.Wrapf(err, "chainstore: get block %d", number)
	}
	return timestamp, found, nil
}

// SetTip records the number of the current chain tip.
func (s *Store) SetTip(number uint64) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyTip, encodeUint64(number))
	})
	return errors.Wrap(err, "chainstore: set tip")
}

// Tip returns the recorded chain tip number.  The boolean is false when no
// tip has been recorded yet.
func (s *Store) Tip() (uint64, bool, error) {
	var (
		number uint64
		found  bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketMeta).Get(keyTip)
		if raw == nil {
			return nil
		}
		number = binary.BigEndian.Uint64(raw)
		found = true
		return nil
	})
	if err != nil {
		return 0, false, errors.Wrap(err, "chainstore: get tip")
	}
	return number, found, nil
}

// TimeSource returns a chaindata.ChainTimeSource reading this index with the
// window size configured in params.
func (s *Store) TimeSource(params *chaincfg.Params) chaindata.ChainTimeSource {
	return &timeSource{store: s, params: params}
}

// timeSource adapts a Store plus network parameters to the capability
// interface the verifier consumes.
type timeSource struct {
	store  *Store
	params *chaincfg.Params
}

var _ chaindata.ChainTimeSource = (*timeSource)(nil)

// MedianBlockCount returns the configured past median time window size.
func (ts *timeSource) MedianBlockCount() uint64 {
	return ts.params.PastMedianTimeBlocks()
}

// BlockTimestamp returns the recorded timestamp of the block with the
// provided number.  A read failure is reported as an unknown block; bbolt
// read transactions over an open handle do not fail in practice.
func (ts *timeSource) BlockTimestamp(number uint64) (uint64, bool) {
	timestamp, found, err := ts.store.BlockTime(number)
	if err != nil || !found {
		return 0, false
	}
	return timestamp, true
}
