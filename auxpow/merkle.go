// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auxpow

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MaxChainBranchHashes is the maximum depth of the merged mining tree a chain
// branch may describe.
const MaxChainBranchHashes = 30

// hashMerkleBranches returns the double sha256 of the concatenation of the
// provided left and right hashes.
func hashMerkleBranches(left, right *chainhash.Hash) chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return chainhash.DoubleHashH(buf[:])
}

// CalcMerkleBranchRoot returns the merkle root that results from combining the
// leaf with every hash of the branch.  Each bit of index, starting from the
// least significant, describes whether the running hash is the right (set) or
// left (unset) child at that level of the tree.
func CalcMerkleBranchRoot(leaf *chainhash.Hash, branch []chainhash.Hash, index uint32) chainhash.Hash {
	hash := *leaf
	for i := range branch {
		if index&1 != 0 {
			hash = hashMerkleBranches(&branch[i], &hash)
		} else {
			hash = hashMerkleBranches(&hash, &branch[i])
		}
		index >>= 1
	}
	return hash
}

// ExpectedChainIndex returns the slot of the merged mining tree with the
// provided height that a chain with the given chain ID must occupy for the
// nonce committed to by a parent coinbase.  Heights of 32 and above do not
// limit the slot.
//
// The slot is derived with a linear congruential generator so that every
// chain can locate its slot from the nonce alone.
func ExpectedChainIndex(nonce, chainID uint32, height uint) uint32 {
	rand := nonce
	rand = rand*1103515245 + 12345
	rand += chainID
	rand = rand*1103515245 + 12345
	if height >= 32 {
		return rand
	}
	return rand % (1 << height)
}
