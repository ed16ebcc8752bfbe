// Copyright (c) 2018-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/devcoin/dvcd/wire"
)

// RegNetParams returns the network parameters for the regression test network.
// This should not be confused with the public test network or the main
// network.
//
// The regression test network is local only.  Its genesis block is created by
// whoever runs it, merged mining is active from the start, and the merkle
// branches of every auxiliary proof of work are verified.
func RegNetParams() *Params {
	// regNetPowLimit is the highest proof of work value a block can have for
	// the regression test network.  It is the value 2^255 - 1.
	regNetPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	return &Params{
		Name:        "regnet",
		Net:         wire.RegNet,
		DefaultPort: "18555",
		DNSSeeds:    nil, // NOTE: There must NOT be any seeds.

		PowLimit:     regNetPowLimit,
		PowLimitBits: 0x207fffff,

		AuxPowChainID:         4,
		MergedMiningStartTime: time.Unix(0, 0),
		StrictAuxPowBranches:  true,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: nil,
	}
}
