// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/bitnet-project/bntd/chaincfg"

// HeaderCtx is a read-only view of one entry in a parent-linked block
// index. The retarget algorithms only ever need height, timestamp, the
// block's own compact target, and a way to walk toward genesis, so that is
// all this interface exposes; the concrete block index (out of scope for
// this package) implements it however it stores its headers.
type HeaderCtx interface {
	// Height returns the height of the block, with the genesis block at
	// height 0.
	Height() int64

	// Timestamp returns the block header's timestamp as a Unix time in
	// seconds. Timestamps are not guaranteed to be monotonic between
	// consecutive blocks.
	Timestamp() int64

	// Bits returns the block header's compact-encoded target.
	Bits() uint32

	// Parent returns the HeaderCtx for the block's parent, or nil if this
	// is the genesis block.
	Parent() HeaderCtx

	// RelativeAncestorCtx returns the ancestor that is distance blocks
	// before this one, or nil if the chain is not long enough.
	RelativeAncestorCtx(distance int64) HeaderCtx
}

// ChainCtx exposes the chain parameters and retarget-window arithmetic the
// algorithms need beyond a single HeaderCtx walk.
type ChainCtx interface {
	// ChainParams returns the network parameters in effect.
	ChainParams() *chaincfg.Params

	// BlocksPerRetarget returns the number of blocks in a BTC-style
	// retarget window, i.e. TargetTimespan / TargetTimePerBlock.
	BlocksPerRetarget() int64

	// MinRetargetTimespan returns the smallest actual timespan, in
	// seconds, a BTC-style retarget window may be clamped to.
	MinRetargetTimespan() int64

	// MaxRetargetTimespan returns the largest actual timespan, in
	// seconds, a BTC-style retarget window may be clamped to.
	MaxRetargetTimespan() int64
}

// ancestorByWalk walks parent links from start by distance blocks and
// returns the ancestor reached, or nil if the chain runs out before then.
// A HeaderCtx implementation with no faster way of answering
// RelativeAncestorCtx can delegate to it; nothing in this package calls it.
func ancestorByWalk(start HeaderCtx, distance int64) HeaderCtx {
	if distance < 0 {
		return nil
	}
	node := start
	for i := int64(0); i < distance; i++ {
		if node == nil {
			return nil
		}
		node = node.Parent()
	}
	return node
}
