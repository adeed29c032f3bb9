// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the chain parameters consumed by the retarget
// core: pow limits, the BTC/LWMA/ASERT tunables, and the activation
// boundaries between them.
package chaincfg

import (
	"errors"
	"time"

	"github.com/bitnet-project/bntd/math/uint256"
)

// These variables are the proof-of-work limits for each default network.
var (
	// mainPowLimit is the highest proof of work value a bntd block can have
	// for the main network.
	mainPowLimit = uint256.MustFromHex("0fffff000000000000000000000000000000000000000000000000000000")

	// regressionPowLimit is the highest proof of work value a bntd block can
	// have for the regression test network. It is the value 2^255 - 1.
	regressionPowLimit = new(uint256.Uint256).Sub(
		new(uint256.Uint256).Lsh(uint256.NewFromUint64(1), 255),
		uint256.NewFromUint64(1),
	)

	// testNetPowLimit is the highest proof of work value a bntd block can
	// have for the test network.
	testNetPowLimit = uint256.MustFromHex("ffff0000000000000000000000000000000000000000000000000000")
)

// Net represents which bntd network a message belongs to.
type Net uint32

// Constants that define the message start bytes for each network.
const (
	MainNet Net = 0xb17e57a1
	TestNet Net = 0xb17e57a2
	RegTest Net = 0xb17e57a3
)

// Params defines the chain parameters the retarget core reads. It carries
// only the fields enumerated by the core's data model plus the minimal
// ambient identification fields (Name, Net, DefaultPort) every network
// parameter record in this codebase's lineage carries; wallet, address, and
// P2P-layer fields (genesis contents, HD key IDs, bech32 prefixes, BIP9
// deployments) belong to those other layers and are not part of this
// record.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net Net

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *uint256.Uint256

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// NoRetargeting defines whether the network should retarget at all;
	// when true, GetNextWork always returns the tip's own bits.
	NoRetargeting bool

	// AllowMinDifficultyBlocks defines whether the network allows minimum
	// difficulty blocks once too much time has elapsed since the last
	// block, the testnet exception to BTC-style periodic retargeting.
	AllowMinDifficultyBlocks bool

	// TargetTimespan is the desired amount of time that should elapse
	// before the BTC-style difficulty is retargeted.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// LWMAHeight is the block height at which the LWMA v1 difficulty
	// algorithm activates.
	LWMAHeight int32

	// LWMAFixHeight is the block height at which the stabilized LWMA v2
	// algorithm activates.
	LWMAFixHeight int32

	// LWMAWindow is the number of parent-child pairs in the LWMA averaging
	// window.
	LWMAWindow int64

	// ASERTHeight is the anchor block height; heights strictly greater than
	// it use ASERT.
	ASERTHeight int32

	// ASERTHalfLife is the number of seconds of schedule deviation over
	// which ASERT doubles or halves the difficulty.
	ASERTHalfLife int64

	// ASERTAnchorBits is the compact target fixed at the ASERT anchor
	// block.
	ASERTAnchorBits uint32
}

// MainNetParams defines the network parameters for the main bntd network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         MainNet,
	DefaultPort: "8768",

	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,

	NoRetargeting:            false,
	AllowMinDifficultyBlocks: false,

	TargetTimespan:     time.Hour*24*3 + time.Hour*12,
	TargetTimePerBlock: time.Minute * 10,

	LWMAHeight:    478558,
	LWMAFixHeight: 478600,
	LWMAWindow:    90,

	ASERTHeight:     480000,
	ASERTHalfLife:   3600,
	ASERTAnchorBits: 0x1b04864c,
}

// TestNetParams defines the network parameters for the test bntd network.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         TestNet,
	DefaultPort: "18768",

	PowLimit:     testNetPowLimit,
	PowLimitBits: 0x1d00ffff,

	NoRetargeting:            false,
	AllowMinDifficultyBlocks: true,

	TargetTimespan:     time.Hour * 24 * 14,
	TargetTimePerBlock: time.Minute * 10,

	LWMAHeight:    21111,
	LWMAFixHeight: 21200,
	LWMAWindow:    90,

	ASERTHeight:     25000,
	ASERTHalfLife:   3600,
	ASERTAnchorBits: 0x1d00ffff,
}

// RegressionNetParams defines the network parameters for the regression
// test bntd network.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         RegTest,
	DefaultPort: "18444",

	PowLimit:     regressionPowLimit,
	PowLimitBits: 0x207fffff,

	NoRetargeting:            true,
	AllowMinDifficultyBlocks: true,

	TargetTimespan:     time.Hour * 24 * 14,
	TargetTimePerBlock: time.Minute * 10,

	LWMAHeight:    0,
	LWMAFixHeight: 0,
	LWMAWindow:    90,

	ASERTHeight:     0,
	ASERTHalfLife:   3600,
	ASERTAnchorBits: 0x207fffff,
}

var (
	// ErrDuplicateNet describes an error where the parameters for a bntd
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate bntd network")

	registeredNets = make(map[Net]struct{})
)

// Register registers the network parameters for a bntd network. This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// The registry records only each network's magic bytes; this package
// offers no lookup of networks or network parameters by those bytes.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error. This should only be called from package init
// functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegressionNetParams)
}
