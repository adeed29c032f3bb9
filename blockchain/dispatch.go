// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/bitnet-project/bntd/chaincfg"
	"github.com/bitnet-project/bntd/chaincfg/chainhash"
	"github.com/bitnet-project/bntd/internal/primitives"
)

// Dispatcher selects among the four retarget algorithms by height and
// tracks the ASERT anchor cache for whichever chain it is constructed
// against. It holds no other state; GetNextWork and CheckProofOfWork are
// both safe for concurrent access.
type Dispatcher struct {
	anchorCache AnchorCache
}

// NewDispatcher returns a Dispatcher with an empty anchor cache.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// ResetAnchorCache clears the cached ASERT anchor block. It must be called
// whenever a reorg changes the active chain's history before the anchor
// height; see AnchorCache.Reset.
func (d *Dispatcher) ResetAnchorCache() {
	d.anchorCache.Reset()
}

// GetNextWork returns the compact target the block after tip must satisfy,
// dispatching to BTC, LWMA v1, LWMA v2, or ASERT by the height of that next
// block. candidateTime is the candidate header's own timestamp; only the
// BTC testnet minimum-difficulty exception reads it.
func (d *Dispatcher) GetNextWork(tip HeaderCtx, candidateTime int64, c ChainCtx) (uint32, error) {
	params := c.ChainParams()

	if tip == nil {
		return params.PowLimitBits, nil
	}
	if params.NoRetargeting {
		return tip.Bits(), nil
	}

	nextHeight := tip.Height() + 1
	switch {
	case nextHeight > int64(params.ASERTHeight):
		return calcNextRequiredDifficultyASERT(tip, c, &d.anchorCache)
	case nextHeight >= int64(params.LWMAFixHeight):
		return calcNextRequiredDifficultyLWMAv2(tip, c)
	case nextHeight >= int64(params.LWMAHeight):
		return calcNextRequiredDifficultyLWMA(tip, c)
	default:
		return calcNextRequiredDifficultyBTC(tip, candidateTime, c)
	}
}

// CheckProofOfWork reports whether blockHash satisfies the proof-of-work
// requirement implied by claimedBits under params. It is the sole
// consensus-rejection surface of this package: it never returns an error,
// only a boolean verdict, per the contract in package primitives.
func CheckProofOfWork(blockHash *chainhash.Hash, claimedBits uint32, params *chaincfg.Params) bool {
	return primitives.CheckProofOfWork(blockHash, claimedBits, params.PowLimit)
}
