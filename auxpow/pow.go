// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auxpow

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/devcoin/dvcd/wire"
)

// MergedMiningHeader is the marker that precedes the merged mining root in the
// signature script of a parent coinbase transaction.
var MergedMiningHeader = []byte{0xfa, 0xbe, 'm', 'm'}

// maxChainRootOffset is the maximum offset of the merged mining root in the
// parent coinbase signature script when the merged mining header is absent.
const maxChainRootOffset = 20

// isCoinbaseInput returns whether or not the transaction input spends the null
// outpoint, which is only the case for the input of a coinbase transaction.
func isCoinbaseInput(txIn *btcwire.TxIn) bool {
	prevOut := &txIn.PreviousOutPoint
	return prevOut.Index == math.MaxUint32 && prevOut.Hash == chainhash.Hash{}
}

// CheckProofOfWork ensures the auxiliary proof of work of the header commits
// to this network.  The header must have been parsed successfully.
//
// The checks performed are:
//   - the header carries the chain ID of the network
//   - the parent block does not carry the chain ID of the network
//   - the parent coinbase transaction has an input
//   - a merged mining header in the parent coinbase signature script only
//     appears once and only in an actual coinbase input
//
// A merged mining header at the very start of the script is held to the same
// coinbase requirement.  A parent coinbase without a merged mining header is
// accepted with a warning.
// When the network enables StrictAuxPowBranches, the merkle branches are
// verified as well.  See checkBranches for details.
//
// The proof of work of the parent block is not compared against any target.
func (h *MergeMinedHeader) CheckProofOfWork() error {
	payload := h.payload()
	if payload == nil {
		str := fmt.Sprintf("auxiliary proof of work of block %v has not "+
			"been parsed", h.BlockHash())
		return ruleError(ErrAuxPowNotParsed, str)
	}

	wantChainID := h.params.AuxPowChainID
	if chainID := h.ChainID(); chainID != wantChainID {
		str := fmt.Sprintf("merge-mined block does not have the chain ID "+
			"required for %s blocks -- got %d, want %d", h.params.Name,
			chainID, wantChainID)
		return ruleError(ErrBadChainID, str)
	}
	if ChainID(payload.ParentHeader.Version) == wantChainID {
		str := fmt.Sprintf("parent block %v of merge-mined block has our "+
			"chain ID %d", payload.ParentHash, wantChainID)
		return ruleError(ErrParentChainID, str)
	}

	tx := payload.CoinbaseTx
	if len(tx.TxIn) == 0 {
		str := fmt.Sprintf("parent coinbase transaction %v has no inputs",
			tx.TxHash())
		return ruleError(ErrNoCoinbaseInput, str)
	}
	coinbaseIn := tx.TxIn[0]
	script := coinbaseIn.SignatureScript

	headerIdx := bytes.Index(script, MergedMiningHeader)
	if headerIdx >= 0 {
		rest := script[headerIdx+len(MergedMiningHeader):]
		if bytes.Contains(rest, MergedMiningHeader) {
			str := fmt.Sprintf("multiple merged mining headers in parent "+
				"coinbase transaction %v", tx.TxHash())
			return ruleError(ErrMultipleMergedMiningHeaders, str)
		}
		if !isCoinbaseInput(coinbaseIn) {
			str := fmt.Sprintf("parent coinbase transaction %v is not an "+
				"actual coinbase transaction", tx.TxHash())
			return ruleError(ErrNotCoinbase, str)
		}
	} else {
		log.Warnf("Parent coinbase transaction %v of block %v does not "+
			"contain a merged mining header", tx.TxHash(), h.BlockHash())
	}

	if h.params.StrictAuxPowBranches {
		return h.checkBranches(payload, headerIdx)
	}
	return nil
}

// checkBranches ensures the merkle branches of the auxiliary proof of work
// prove that the parent block commits to the header.  headerIdx is the index
// of the merged mining header in the parent coinbase signature script or -1
// when it is absent.
//
// The coinbase branch must link the parent coinbase transaction, as the first
// transaction of the parent block, to the merkle root of the parent block.
// The chain branch must link the header to a merged mining root that the
// parent coinbase signature script contains in reverse byte order, directly
// after the merged mining header when there is one and within the first 20
// bytes otherwise.  The root is followed by the little-endian size of the
// merged mining tree and the nonce that determines the slot of this chain in
// the tree.
func (h *MergeMinedHeader) checkBranches(payload *wire.AuxPow, headerIdx int) error {
	if payload.CoinbaseBranch.SideMask != 0 {
		str := fmt.Sprintf("coinbase branch side mask %#x does not describe "+
			"the first transaction of the parent block",
			payload.CoinbaseBranch.SideMask)
		return ruleError(ErrCoinbaseBranchSideMask, str)
	}

	chainBranch := &payload.ChainBranch
	if len(chainBranch.Hashes) > MaxChainBranchHashes {
		str := fmt.Sprintf("chain branch is too long -- got %d hashes, max %d",
			len(chainBranch.Hashes), MaxChainBranchHashes)
		return ruleError(ErrChainBranchTooLong, str)
	}

	coinbaseHash := payload.CoinbaseTx.TxHash()
	parentRoot := CalcMerkleBranchRoot(&coinbaseHash,
		payload.CoinbaseBranch.Hashes, 0)
	if parentRoot != payload.ParentHeader.MerkleRoot {
		str := fmt.Sprintf("coinbase branch root %v does not match the "+
			"merkle root %v of the parent block", parentRoot,
			payload.ParentHeader.MerkleRoot)
		return ruleError(ErrBadCoinbaseBranch, str)
	}

	blockHash := h.BlockHash()
	chainRoot := CalcMerkleBranchRoot(&blockHash, chainBranch.Hashes,
		chainBranch.SideMask)
	var rootBytes [chainhash.HashSize]byte
	for i := range rootBytes {
		rootBytes[i] = chainRoot[chainhash.HashSize-1-i]
	}

	script := payload.CoinbaseTx.TxIn[0].SignatureScript
	rootIdx := bytes.Index(script, rootBytes[:])
	if rootIdx < 0 {
		str := fmt.Sprintf("parent coinbase does not contain the merged "+
			"mining root %v", chainRoot)
		return ruleError(ErrMissingChainRoot, str)
	}
	if headerIdx >= 0 {
		if headerIdx+len(MergedMiningHeader) != rootIdx {
			str := fmt.Sprintf("merged mining header at offset %d is not "+
				"directly before the merged mining root at offset %d",
				headerIdx, rootIdx)
			return ruleError(ErrMisplacedChainRoot, str)
		}
	} else if rootIdx > maxChainRootOffset {
		str := fmt.Sprintf("merged mining root at offset %d must start in "+
			"the first %d bytes of the parent coinbase", rootIdx,
			maxChainRootOffset)
		return ruleError(ErrMisplacedChainRoot, str)
	}

	info := script[rootIdx+chainhash.HashSize:]
	if len(info) < 8 {
		str := "parent coinbase is missing the merged mining tree size " +
			"and nonce"
		return ruleError(ErrMissingChainTreeInfo, str)
	}
	treeSize := binary.LittleEndian.Uint32(info[0:4])
	height := uint(len(chainBranch.Hashes))
	if treeSize != 1<<height {
		str := fmt.Sprintf("merged mining tree size %d does not match the "+
			"chain branch with %d hashes", treeSize, height)
		return ruleError(ErrBadChainTreeSize, str)
	}
	nonce := binary.LittleEndian.Uint32(info[4:8])
	wantIndex := ExpectedChainIndex(nonce, h.params.AuxPowChainID, height)
	if chainBranch.SideMask != wantIndex {
		str := fmt.Sprintf("block occupies slot %d of the merged mining "+
			"tree instead of slot %d", chainBranch.SideMask, wantIndex)
		return ruleError(ErrBadChainIndex, str)
	}

	return nil
}
