// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auxpow

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/container/lru"
	"github.com/devcoin/dvcd/chaincfg"
)

// DefaultVerifierCacheSize is the default number of successfully verified
// auxiliary proofs of work a HeaderVerifier remembers.
const DefaultVerifierCacheSize = 4096

// verifiedKey identifies an auxiliary proof of work that passed verification.
// The block hash does not commit to the payload, so the key also holds the
// hash of the serialized payload, which covers every field the checks read.
type verifiedKey struct {
	block   chainhash.Hash
	payload chainhash.Hash
}

// VerifyResult is the outcome of verifying a single header.
type VerifyResult struct {
	// Hash is the hash of the verified block header.
	Hash chainhash.Hash

	// MergeMined indicates whether or not the header signals an auxiliary
	// proof of work.  Plain headers are not subject to any check.
	MergeMined bool

	// ParentWork is the work represented by the difficulty target of the
	// parent block.  It is only set for merge-mined headers that pass
	// verification.
	ParentWork *big.Int

	// Cached indicates the verdict was taken from the cache.
	Cached bool

	// Err is the reason the header was rejected, if any.
	Err error
}

// HeaderVerifier runs the auxiliary proof of work checks for merge-mined
// headers and remembers the ones that passed so that overlapping headers sent
// by several peers are only checked once.  It is safe for concurrent access.
//
// Failures are never cached since a failed payload says nothing about another
// payload that proves work for the same header.
type HeaderVerifier struct {
	params   *chaincfg.Params
	verified *lru.Map[verifiedKey, *big.Int]
}

// NewHeaderVerifier returns a header verifier for the provided network that
// remembers up to cacheSize verified auxiliary proofs of work.
func NewHeaderVerifier(params *chaincfg.Params, cacheSize uint32) *HeaderVerifier {
	return &HeaderVerifier{
		params:   params,
		verified: lru.NewMap[verifiedKey, *big.Int](cacheSize),
	}
}

// Verify parses the auxiliary proof of work of the header when that has not
// happened yet and checks it against the rules of the network.
func (v *HeaderVerifier) Verify(h *MergeMinedHeader) VerifyResult {
	result := VerifyResult{Hash: h.BlockHash(), MergeMined: h.IsAuxPow()}
	if !result.MergeMined {
		return result
	}

	if !v.params.IsMergedMiningActive(h.Timestamp()) {
		str := fmt.Sprintf("block %v at %v carries an auxiliary proof of "+
			"work before merged mining started at %v", result.Hash,
			h.Timestamp().UTC(), v.params.MergedMiningStartTime.UTC())
		result.Err = ruleError(ErrMergedMiningNotActive, str)
		return result
	}

	if err := h.MaybeParseHeader(); err != nil {
		result.Err = err
		return result
	}

	key := verifiedKey{block: result.Hash, payload: h.AuxPow().Hash()}
	if work, ok := v.verified.Get(key); ok {
		log.Tracef("Using cached verification of block %v", result.Hash)
		result.ParentWork = work
		result.Cached = true
		return result
	}

	if err := h.CheckProofOfWork(); err != nil {
		log.Debugf("Rejected auxiliary proof of work of block %v: %v",
			result.Hash, err)
		result.Err = err
		return result
	}

	result.ParentWork = h.ParentBlockWork()
	v.verified.Put(key, result.ParentWork)
	return result
}

// VerifyBatch verifies every header of the batch and returns the results in the
// order of the headers.
func (v *HeaderVerifier) VerifyBatch(batch *HeaderBatch) []VerifyResult {
	headers := batch.BlockHeaders()
	results := make([]VerifyResult, 0, len(headers))
	for _, h := range headers {
		results = append(results, v.Verify(h))
	}
	return results
}

// HitRatio returns the percentage of lookups that were answered by the cache.
func (v *HeaderVerifier) HitRatio() float64 {
	return v.verified.HitRatio()
}
