// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/devcoin/dvcd/wire"
)

// MainNetParams returns the network parameters for the main Devcoin network.
func MainNetParams() *Params {
	// mainPowLimit is the highest proof of work value a Devcoin block can
	// have for the main network.  It is the value 2^224 - 1.
	mainPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	// mainPowLimitBits is the main network proof of work limit in its
	// compact representation.
	//
	// Note that due to the limited precision of the compact representation,
	// this is not exactly equal to the pow limit.  It is the value:
	//
	// 0x00000000ffff0000000000000000000000000000000000000000000000000000
	const mainPowLimitBits = 0x1d00ffff // 486604799

	return &Params{
		Name:        "mainnet",
		Net:         wire.MainNet,
		DefaultPort: "52333",
		DNSSeeds: []DNSSeed{
			{"dvc.public.txn.co.in"},
			{"dvc-seed.21stcenturymoneytalk.org"},
			{"dvcstable01.devtome.com"},
			{"dvcstable01.dvcnode.org"},
			{"dvcstable02.dvcnode.org"},
			{"dvcstable03.dvcnode.org"},
			{"dvcstable04.dvcnode.org"},
			{"dvcstable05.dvcnode.org"},
			{"dvcstable06.dvcnode.org"},
			{"dvcstable07.dvcnode.org"},
			{"node01.dvcnode.com"},
			{"node02.dvcnode.com"},
			{"node03.dvcnode.com"},
		},

		// Genesis block: version 1, time 1311305081, bits 0x1d00ffff,
		// nonce 3085127155.
		GenesisHash: *newHashFromStr("0000000062558fec003bcbf29e915cddfc34fa257dc87573f28e4520d1c7c11e"),

		PowLimit:     mainPowLimit,
		PowLimitBits: mainPowLimitBits,

		AuxPowChainID:         4,
		MergedMiningStartTime: time.Unix(1325974424, 0), // Sat, 07 Jan 2012 22:13:44 GMT
		StrictAuxPowBranches:  false,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{2500, newHashFromStr("000000001871a2314936d39b85174cc911bf6fd58d3877412ee7b69a48e7e29e")},
			{4500, newHashFromStr("000000000967cc95711f66f804e3f431298686d681d2d5760f61856954d08faf")},
			{5250, newHashFromStr("00000000085702bfbf27daffb638be65aceb78a5f464b12539b51c1b9c548421")},
			{8900, newHashFromStr("00000000001bb8090630fcabb82ad0ab75df3eb5b008956b3ae2a352a4324f19")},
			{23500, newHashFromStr("000000000b83c3c9753d2440b91121cb0ff220bb23c136c6d09a539207e292fb")},
			{54800, newHashFromStr("04e8dcc91ff2aa0f1197f88551b4cb24ccef02ea51081b4d05ab4e3a38554137")},
			{67720, newHashFromStr("0a111b265d89f77b4c86fa6f44e3e2ad876547b1eccf19319cde922b42c1161e")},
		},
	}
}
