// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/bitnet-project/bntd/internal/primitives"
	"github.com/bitnet-project/bntd/math/uint256"
)

// lwmaWindowSums walks the last blocks parent-child pairs ending at tip and
// returns the weighted sum of solvetimes (each clamped to [1, 6T]) and the
// triangular sum of weights blocks*(blocks+1)/2. It is shared by LWMA v1 and
// v2, which differ only in which target they weight the ratio against and
// how tight the symmetric cap on the result is.
func lwmaWindowSums(tip HeaderCtx, blocks, spacingSeconds int64) (sumWeightedSolvetimes, sumWeights int64) {
	block := tip
	for i := blocks; i >= 1; i-- {
		prev := block.Parent()
		if prev == nil {
			break
		}

		solvetime := block.Timestamp() - prev.Timestamp()
		if solvetime < 1 {
			solvetime = 1
		}
		if maxSolvetime := 6 * spacingSeconds; solvetime > maxSolvetime {
			solvetime = maxSolvetime
		}

		sumWeightedSolvetimes += solvetime * i
		sumWeights += i

		block = prev
	}
	return sumWeightedSolvetimes, sumWeights
}

// lwmaBlocksInWindow returns how many LWMA-era parent-child pairs are
// available at nextHeight, capped at the configured window size.
func lwmaBlocksInWindow(nextHeight, lwmaHeight, window int64) int64 {
	blocks := nextHeight - lwmaHeight
	if blocks > window {
		blocks = window
	}
	return blocks
}

// calcNextRequiredDifficultyLWMA computes the next target using LWMA v1: a
// linearly weighted moving average of recent solvetimes applied against the
// previous block's own target, with a 10x symmetric cap on the adjustment.
//
// An earlier version of this algorithm seen in network history also
// weighted the window's targets (not just solvetimes) and clamped solvetime
// to [-6T, 6T] rather than [1, 6T]. That variant is not implemented here:
// this package follows the variant the dispatcher in §4.7 actually selects,
// which weights solvetime only and clamps it to a strictly positive range.
func calcNextRequiredDifficultyLWMA(tip HeaderCtx, c ChainCtx) (uint32, error) {
	params := c.ChainParams()
	spacing := int64(params.TargetTimePerBlock / time.Second)

	nextHeight := tip.Height() + 1
	blocks := lwmaBlocksInWindow(nextHeight, int64(params.LWMAHeight), params.LWMAWindow)
	if blocks < 3 {
		return tip.Bits(), nil
	}

	prevTarget, negative, overflow := primitives.DiffBitsToUint256(tip.Bits())
	if negative || overflow {
		return 0, AssertError("tip carries an invalid compact target")
	}

	sumWeightedSolvetimes, sumWeights := lwmaWindowSums(tip, blocks, spacing)
	expected := sumWeights * spacing

	minWS := expected / 10
	maxWS := expected * 10
	if sumWeightedSolvetimes < minWS {
		sumWeightedSolvetimes = minWS
	} else if sumWeightedSolvetimes > maxWS {
		sumWeightedSolvetimes = maxWS
	}

	nextTarget := new(uint256.Uint256).MulUint64(prevTarget, uint64(sumWeightedSolvetimes))
	nextTarget = new(uint256.Uint256).DivUint64(nextTarget, uint64(expected))

	if nextTarget.Cmp(params.PowLimit) > 0 {
		nextTarget = params.PowLimit
	}
	return primitives.Uint256ToDiffBits(nextTarget), nil
}

// calcNextRequiredDifficultyLWMAv2 computes the next target using the
// stabilized LWMA v2: identical to v1 except the reference target is the
// target at the start of the averaging window rather than the previous
// block's, which removes the feedback loop that caused v1 to oscillate,
// and the symmetric cap is tightened to 3x.
func calcNextRequiredDifficultyLWMAv2(tip HeaderCtx, c ChainCtx) (uint32, error) {
	params := c.ChainParams()
	spacing := int64(params.TargetTimePerBlock / time.Second)

	nextHeight := tip.Height() + 1
	blocks := lwmaBlocksInWindow(nextHeight, int64(params.LWMAHeight), params.LWMAWindow)
	if blocks < 3 {
		return tip.Bits(), nil
	}

	windowStart := tip.RelativeAncestorCtx(blocks)
	if windowStart == nil {
		return 0, AssertError("unable to obtain LWMA window start block")
	}
	referenceTarget, negative, overflow := primitives.DiffBitsToUint256(windowStart.Bits())
	if negative || overflow {
		return 0, AssertError("LWMA window start block carries an invalid compact target")
	}

	sumWeightedSolvetimes, sumWeights := lwmaWindowSums(tip, blocks, spacing)
	expected := sumWeights * spacing

	minWS := expected / 3
	maxWS := expected * 3
	if sumWeightedSolvetimes < minWS {
		sumWeightedSolvetimes = minWS
	} else if sumWeightedSolvetimes > maxWS {
		sumWeightedSolvetimes = maxWS
	}

	nextTarget := new(uint256.Uint256).MulUint64(referenceTarget, uint64(sumWeightedSolvetimes))
	nextTarget = new(uint256.Uint256).DivUint64(nextTarget, uint64(expected))

	if nextTarget.Cmp(params.PowLimit) > 0 {
		nextTarget = params.PowLimit
	}
	return primitives.Uint256ToDiffBits(nextTarget), nil
}
