// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/bitnet-project/bntd/internal/primitives"
	"github.com/bitnet-project/bntd/math/uint256"
)

// findPrevTestNetDifficulty returns the difficulty of the most recent block
// which did not have the special testnet minimum-difficulty rule applied.
func findPrevTestNetDifficulty(startNode HeaderCtx, c ChainCtx) uint32 {
	params := c.ChainParams()
	blocksPerRetarget := c.BlocksPerRetarget()

	iterNode := startNode
	for iterNode != nil && iterNode.Height()%blocksPerRetarget != 0 &&
		iterNode.Bits() == params.PowLimitBits {

		iterNode = iterNode.Parent()
	}

	lastBits := params.PowLimitBits
	if iterNode != nil {
		lastBits = iterNode.Bits()
	}
	return lastBits
}

// calcNextRequiredDifficultyBTC implements the original Bitcoin-style
// periodic retarget: the difficulty stays constant for BlocksPerRetarget
// blocks, then is scaled by the ratio of the actual time the window took to
// the time it was supposed to take.
func calcNextRequiredDifficultyBTC(tip HeaderCtx, candidateTime int64, c ChainCtx) (uint32, error) {
	params := c.ChainParams()

	if params.NoRetargeting {
		return tip.Bits(), nil
	}

	blocksPerRetarget := c.BlocksPerRetarget()
	nextHeight := tip.Height() + 1

	if nextHeight%blocksPerRetarget != 0 {
		if params.AllowMinDifficultyBlocks {
			// Allow the minimum difficulty once too much time has
			// elapsed since the tip, the testnet exception.
			spacing := int64(params.TargetTimePerBlock / time.Second)
			if candidateTime > tip.Timestamp()+2*spacing {
				return params.PowLimitBits, nil
			}
			return findPrevTestNetDifficulty(tip, c), nil
		}
		return tip.Bits(), nil
	}

	// The off-by-one: go back the full window unless this is the very
	// first retarget after genesis, in which case the window is one
	// block short.
	distance := blocksPerRetarget
	if nextHeight == blocksPerRetarget {
		distance = blocksPerRetarget - 1
	}

	firstNode := tip.RelativeAncestorCtx(distance)
	if firstNode == nil {
		return 0, AssertError("unable to obtain previous retarget block")
	}

	actualTimespan := tip.Timestamp() - firstNode.Timestamp()
	minSpan := c.MinRetargetTimespan()
	maxSpan := c.MaxRetargetTimespan()
	adjustedTimespan := actualTimespan
	if adjustedTimespan < minSpan {
		adjustedTimespan = minSpan
	} else if adjustedTimespan > maxSpan {
		adjustedTimespan = maxSpan
	}

	oldTarget, negative, overflow := primitives.DiffBitsToUint256(tip.Bits())
	if negative || overflow {
		return 0, AssertError("tip carries an invalid compact target")
	}
	targetTimespan := int64(params.TargetTimespan / time.Second)

	newTarget := retargetMulDiv(oldTarget, adjustedTimespan, targetTimespan, params.PowLimit)
	if newTarget.Cmp(params.PowLimit) > 0 {
		newTarget = params.PowLimit
	}

	newBits := primitives.Uint256ToDiffBits(newTarget)
	log.Debugf("Difficulty retarget at block height %d", nextHeight)
	log.Debugf("Old target %08x", tip.Bits())
	log.Debugf("New target %08x", newBits)
	log.Debugf("Actual timespan %v, adjusted timespan %v, target timespan %v",
		time.Duration(actualTimespan)*time.Second,
		time.Duration(adjustedTimespan)*time.Second,
		params.TargetTimespan)

	return newBits, nil
}

// retargetMulDiv computes target*mul/div, the core of the periodic
// retarget. When target already uses as many bits as pow_limit, the
// product target*mul can require one bit more than this package's
// fixed-width Uint256 holds; in that case the target is shifted right by
// one bit before the multiply and the quotient shifted back left by one
// bit afterward. This single bit of precision loss is consensus-accepted
// and must be reproduced rather than "fixed" with a wider intermediate.
func retargetMulDiv(target *uint256.Uint256, mul, div int64, powLimit *uint256.Uint256) *uint256.Uint256 {
	shiftGuard := target.BitLen() >= powLimit.BitLen()

	n := target
	if shiftGuard {
		n = new(uint256.Uint256).Rsh(target, 1)
	}

	n = new(uint256.Uint256).MulUint64(n, uint64(mul))
	n = new(uint256.Uint256).DivUint64(n, uint64(div))

	if shiftGuard {
		n = new(uint256.Uint256).Lsh(n, 1)
	}
	return n
}
