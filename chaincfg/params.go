// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/devcoin/dvcd/wire"
)

// bigOne is 1 represented as a big.Int.  It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int64
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a Devcoin network by its parameters.  These parameters are
// passed explicitly to every function that decodes or validates merge-mined
// headers so that data intended for one network is never checked against the
// rules of another.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.CurrencyNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// GenesisHash is the starting block hash.  It is the zero hash for
	// networks that create their genesis block locally.
	GenesisHash chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// AuxPowChainID is the chain ID merge-mined blocks of this network
	// must carry in the upper bits of their version.  Parent blocks must
	// carry a different chain ID.
	AuxPowChainID uint32

	// MergedMiningStartTime is the time from which blocks are allowed to
	// carry an auxiliary proof of work.
	MergedMiningStartTime time.Time

	// StrictAuxPowBranches enables verification of the coinbase and chain
	// merkle branches carried by an auxiliary proof of work in addition to
	// the structural checks that are always performed.
	StrictAuxPowBranches bool

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint
}

// LatestCheckpoint returns the most recent checkpoint, or nil when the
// network does not define any.
func (p *Params) LatestCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	return &p.Checkpoints[len(p.Checkpoints)-1]
}

// CheckpointHash returns the checkpointed block hash for the provided height
// and whether or not the height is checkpointed.
func (p *Params) CheckpointHash(height int64) (*chainhash.Hash, bool) {
	for i := range p.Checkpoints {
		if p.Checkpoints[i].Height == height {
			return p.Checkpoints[i].Hash, true
		}
	}
	return nil, false
}

// IsMergedMiningActive returns whether or not a block with the provided
// timestamp may carry an auxiliary proof of work.
func (p *Params) IsMergedMiningActive(timestamp time.Time) bool {
	return !timestamp.Before(p.MergedMiningStartTime)
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}
