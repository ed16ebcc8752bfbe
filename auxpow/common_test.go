// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auxpow

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"math"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/devcoin/dvcd/wire"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected. It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// repeatHash returns a hash with every byte set to the provided value.
func repeatHash(b byte) chainhash.Hash {
	var hash chainhash.Hash
	for i := range hash {
		hash[i] = b
	}
	return hash
}

// testHashes returns n distinct hashes starting from the provided seed.
func testHashes(n int, seed byte) []chainhash.Hash {
	hashes := make([]chainhash.Hash, n)
	for i := range hashes {
		hashes[i] = repeatHash(seed + byte(i))
	}
	return hashes
}

// treeInfo returns the little-endian merged mining tree size and nonce that
// follow the merged mining root in a parent coinbase.
func treeInfo(size, nonce uint32) []byte {
	var info [8]byte
	binary.LittleEndian.PutUint32(info[0:4], size)
	binary.LittleEndian.PutUint32(info[4:8], nonce)
	return info[:]
}

// concat returns the concatenation of the provided byte slices.
func concat(parts ...[]byte) []byte {
	var buf []byte
	for _, part := range parts {
		buf = append(buf, part...)
	}
	return buf
}

// mmOpts describes a merge-mined header to build with buildMergeMined.  The
// zero value builds a header with chain ID 4 whose auxiliary proof of work
// passes every check, including the merkle branch checks.
type mmOpts struct {
	parentVersion uint32
	timestamp     time.Time

	// coinbaseBranch and chainBranch are the number of hashes in each
	// branch.  chainNonce determines the slot of the chain.
	coinbaseBranch int
	chainBranch    int
	chainNonce     uint32

	// notCoinbase makes the first input of the parent coinbase spend a
	// regular outpoint.
	notCoinbase bool

	// noInputs removes all inputs from the parent coinbase.
	noInputs bool

	// script builds the parent coinbase signature script from the reversed
	// merged mining root and the tree info.  The default places the merged
	// mining header at offset 5 followed by the root and the tree info.
	script func(root, info []byte) []byte
}

// defaultScript is the parent coinbase signature script used when no script
// builder is provided.
func defaultScript(root, info []byte) []byte {
	return concat(hexToBytes("0401020304"), MergedMiningHeader, root, info)
}

// buildMergeMined returns a merge-mined header, its auxiliary proof of work,
// and the wire encoding of the auxiliary proof of work built according to the
// provided options.
func buildMergeMined(t *testing.T, opts mmOpts) (*wire.BlockHeader, *wire.AuxPow, []byte) {
	t.Helper()

	if opts.parentVersion == 0 {
		opts.parentVersion = 1
	}
	if opts.timestamp.IsZero() {
		opts.timestamp = time.Unix(1400000000, 0)
	}
	if opts.script == nil {
		opts.script = defaultScript
	}

	header := &wire.BlockHeader{
		Version:    0x00040101,
		PrevBlock:  repeatHash(0x01),
		MerkleRoot: repeatHash(0x02),
		Timestamp:  opts.timestamp,
		Bits:       0x1c0fffff,
		Nonce:      7,
	}

	// Commit to the header in the merged mining tree.
	height := uint(opts.chainBranch)
	chainIndex := ExpectedChainIndex(opts.chainNonce, 4, height)
	chainHashes := testHashes(opts.chainBranch, 0x40)
	blockHash := header.BlockHash()
	chainRoot := CalcMerkleBranchRoot(&blockHash, chainHashes, chainIndex)
	var reversedRoot [chainhash.HashSize]byte
	for i := range reversedRoot {
		reversedRoot[i] = chainRoot[chainhash.HashSize-1-i]
	}
	info := treeInfo(uint32(1)<<height, opts.chainNonce)
	script := opts.script(reversedRoot[:], info)

	// Build the parent coinbase and commit to it in the parent block.
	coinbaseTx := btcwire.NewMsgTx(1)
	if !opts.noInputs {
		prevOut := btcwire.NewOutPoint(&chainhash.Hash{}, math.MaxUint32)
		if opts.notCoinbase {
			prevHash := repeatHash(0x99)
			prevOut = btcwire.NewOutPoint(&prevHash, 0)
		}
		coinbaseTx.AddTxIn(btcwire.NewTxIn(prevOut, script, nil))
	}
	coinbaseTx.AddTxOut(btcwire.NewTxOut(5000000000, []byte{0x51}))
	coinbaseHashes := testHashes(opts.coinbaseBranch, 0x80)
	coinbaseHash := coinbaseTx.TxHash()
	parentRoot := CalcMerkleBranchRoot(&coinbaseHash, coinbaseHashes, 0)

	parent := &wire.BlockHeader{
		Version:    opts.parentVersion,
		PrevBlock:  repeatHash(0x03),
		MerkleRoot: parentRoot,
		Timestamp:  opts.timestamp,
		Bits:       0x1b0404cb,
		Nonce:      42,
	}

	ap := wire.NewAuxPow(coinbaseTx,
		wire.MerkleBranch{Hashes: coinbaseHashes, SideMask: 0},
		wire.MerkleBranch{Hashes: chainHashes, SideMask: chainIndex},
		parent)

	var buf bytes.Buffer
	if err := ap.BtcEncode(&buf, wire.ProtocolVersion); err != nil {
		t.Fatalf("unable to encode auxiliary proof of work: %v", err)
	}
	return header, ap, buf.Bytes()
}
