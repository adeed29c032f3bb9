// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/bitnet-project/bntd/chaincfg"
)

// Context is the concrete ChainCtx this package provides: a thin wrapper
// around a chaincfg.Params that derives the retarget-window arithmetic the
// algorithms need. Callers that already have their own chain-index type
// satisfying ChainCtx are free to use that instead.
type Context struct {
	params *chaincfg.Params
}

// NewContext returns a Context for the given network parameters.
func NewContext(params *chaincfg.Params) *Context {
	return &Context{params: params}
}

// ChainParams returns the wrapped network parameters.
func (c *Context) ChainParams() *chaincfg.Params {
	return c.params
}

// BlocksPerRetarget returns TargetTimespan / TargetTimePerBlock, the number
// of blocks in one BTC-style retarget window.
func (c *Context) BlocksPerRetarget() int64 {
	return int64(c.params.TargetTimespan / c.params.TargetTimePerBlock)
}

// MinRetargetTimespan returns the smallest actual timespan a BTC-style
// retarget window may be clamped to: one quarter of TargetTimespan.
func (c *Context) MinRetargetTimespan() int64 {
	return int64(c.params.TargetTimespan/time.Second) / 4
}

// MaxRetargetTimespan returns the largest actual timespan a BTC-style
// retarget window may be clamped to: four times TargetTimespan.
func (c *Context) MaxRetargetTimespan() int64 {
	return int64(c.params.TargetTimespan/time.Second) * 4
}
