// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sync"
	"time"

	"github.com/bitnet-project/bntd/internal/primitives"
	"github.com/bitnet-project/bntd/math/uint256"
)

// AnchorCache holds the single ASERT anchor block lazily located by walking
// parents from a tip. It is safe for concurrent access: writes are
// idempotent (any two callers racing to locate the anchor compute the same
// block and one overwrite is harmless), so only the cache slot itself needs
// a lock, not the walk that fills it.
type AnchorCache struct {
	mu     sync.Mutex
	anchor HeaderCtx
}

// Get returns the cached anchor, or nil if the cache is empty.
func (a *AnchorCache) Get() HeaderCtx {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.anchor
}

// Set stores anchor in the cache.
func (a *AnchorCache) Set(anchor HeaderCtx) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.anchor = anchor
}

// Reset clears the cache. It must be called when the active chain's
// history before the anchor height changes, i.e. a reorg crossing the
// anchor; the caller is responsible for quiescing retargeting around the
// reorg so a reset cannot race a concurrent lookup.
func (a *AnchorCache) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.anchor = nil
}

// locateASERTAnchor returns the block at height asertHeight reached by
// walking parents from tip, using and populating cache along the way.
func locateASERTAnchor(tip HeaderCtx, asertHeight int64, cache *AnchorCache) HeaderCtx {
	if cache != nil {
		if cached := cache.Get(); cached != nil {
			return cached
		}
	}

	anchor := tip
	for anchor != nil && anchor.Height() > asertHeight {
		anchor = anchor.Parent()
	}

	if cache != nil && anchor != nil {
		cache.Set(anchor)
	}
	return anchor
}

// asertExponentCoefficients are the cubic polynomial coefficients
// approximating 65536*2^(frac/65536) to within 0.013% error, along with the
// rounding constant added before the final right-shift of 48. These are
// taken from BCH's aserti3-2d and must be used verbatim; they are not to be
// re-derived or "improved".
const (
	asertCoeffLinear  = 195766423245049
	asertCoeffQuad    = 971821376
	asertCoeffCubic   = 5127
	asertRoundingTerm = 1 << 47
)

// asertFactor computes 65536 + the cubic correction for a fractional
// exponent frac in [0, 65536).
func asertFactor(frac uint64) uint64 {
	if frac == 0 {
		return 65536
	}
	f := frac
	correction := (asertCoeffLinear*f + asertCoeffQuad*f*f + asertCoeffCubic*f*f*f + asertRoundingTerm) >> 48
	return 65536 + correction
}

// asertShiftsAndFrac decomposes a signed fixed-point exponent (16
// fractional bits) into an integer shift count and a fractional part in
// [0, 65536), handling negative exponents by rounding the fractional part
// up so it stays non-negative.
func asertShiftsAndFrac(exponentFP int64) (shifts int64, frac uint64) {
	if exponentFP >= 0 {
		return exponentFP >> 16, uint64(exponentFP & 0xFFFF)
	}

	abs := -exponentFP
	shifts = -(abs >> 16)
	remainder := uint64(abs & 0xFFFF)
	if remainder != 0 {
		shifts--
		frac = 65536 - remainder
	}
	return shifts, frac
}

// calcNextRequiredDifficultyASERT computes the next target using ASERT: the
// anchor's target scaled by an exponential function of how far the chain
// has drifted from its ideal schedule since the anchor, with no reference
// to any recent window. Because each block's target only depends on the
// absolute schedule deviation, the algorithm cannot oscillate under
// constant hashrate.
func calcNextRequiredDifficultyASERT(tip HeaderCtx, c ChainCtx, cache *AnchorCache) (uint32, error) {
	params := c.ChainParams()

	anchor := locateASERTAnchor(tip, int64(params.ASERTHeight), cache)
	if anchor == nil {
		return 0, AssertError("unable to locate ASERT anchor block")
	}
	anchorParent := anchor.Parent()
	if anchorParent == nil {
		return 0, AssertError("ASERT anchor block has no parent")
	}

	anchorTarget, negative, overflow := primitives.DiffBitsToUint256(params.ASERTAnchorBits)
	if negative || overflow {
		return 0, AssertError("ASERT anchor bits are an invalid compact target")
	}

	spacing := int64(params.TargetTimePerBlock / time.Second)
	timeDelta := tip.Timestamp() - anchorParent.Timestamp()
	heightDelta := (tip.Height() + 1) - int64(params.ASERTHeight)

	exponentFP := ((timeDelta - spacing*heightDelta) * 65536) / params.ASERTHalfLife
	shifts, frac := asertShiftsAndFrac(exponentFP)
	factor := asertFactor(frac)

	nextTarget := new(uint256.Uint256).MulUint64(anchorTarget, factor)
	nextTarget = new(uint256.Uint256).Rsh(nextTarget, 16)

	switch {
	case shifts >= 256:
		return primitives.Uint256ToDiffBits(params.PowLimit), nil
	case shifts <= -256:
		return primitives.Uint256ToDiffBits(uint256.NewFromUint64(1)), nil
	case shifts > 0:
		nextTarget = new(uint256.Uint256).Lsh(nextTarget, uint(shifts))
	case shifts < 0:
		nextTarget = new(uint256.Uint256).Rsh(nextTarget, uint(-shifts))
	}

	if nextTarget.IsZero() {
		nextTarget = uint256.NewFromUint64(1)
	}
	if nextTarget.Cmp(params.PowLimit) > 0 {
		nextTarget = params.PowLimit
	}

	return primitives.Uint256ToDiffBits(nextTarget), nil
}
