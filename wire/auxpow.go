// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
)

// MaxMerkleBranchHashes is the maximum number of hashes a single merkle branch
// of an auxiliary proof of work may declare.  It is far beyond the depth of any
// merkle tree that fits in a block and only exists to prevent memory
// exhaustion from a malicious count.
const MaxMerkleBranchHashes = 4096

// MerkleBranch houses the sibling hashes that link a leaf to a merkle root
// along with the bit mask that describes on which side each sibling lies.
type MerkleBranch struct {
	Hashes   []chainhash.Hash
	SideMask uint32
}

// SerializeSize returns the number of bytes it would take to serialize the
// merkle branch.
func (b *MerkleBranch) SerializeSize() int {
	n := uint64(len(b.Hashes))
	return VarIntSerializeSize(n) + len(b.Hashes)*chainhash.HashSize + 4
}

// copy returns a deep copy of the merkle branch.
func (b *MerkleBranch) copy() MerkleBranch {
	var hashes []chainhash.Hash
	if b.Hashes != nil {
		hashes = make([]chainhash.Hash, len(b.Hashes))
		copy(hashes, b.Hashes)
	}
	return MerkleBranch{Hashes: hashes, SideMask: b.SideMask}
}

// AuxPow is the auxiliary proof of work that follows the header of a
// merge-mined block.  It proves that the work of a block on a separate parent
// chain commits to the merge-mined block by embedding the parent chain
// coinbase transaction, the merkle branches that link it to the parent block
// and to the merge-mined block, and the parent block header itself.
type AuxPow struct {
	// CoinbaseTx is the coinbase transaction of the parent block.
	CoinbaseTx *btcwire.MsgTx

	// ParentHash is the hash of the parent block header.  It is normalized
	// during decoding so that it always equals ParentHeader.BlockHash().
	ParentHash chainhash.Hash

	// CoinbaseBranch links the coinbase transaction to the merkle root of
	// the parent block.
	CoinbaseBranch MerkleBranch

	// ChainBranch links the merge-mined block to the merged mining root
	// committed to by the coinbase transaction.
	ChainBranch MerkleBranch

	// ParentHeader is the header of the parent block.
	ParentHeader BlockHeader

	// Length is the number of bytes the auxiliary proof of work occupied
	// when it was decoded.
	Length int
}

// reverseHash returns a copy of the hash with the byte order reversed.
func reverseHash(hash *chainhash.Hash) chainhash.Hash {
	var reversed chainhash.Hash
	for i := 0; i < chainhash.HashSize; i++ {
		reversed[i] = hash[chainhash.HashSize-1-i]
	}
	return reversed
}

// coinbaseError converts an error returned while decoding the parent coinbase
// transaction into a MessageError.
func coinbaseError(fn string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return readError(fn, "parent coinbase transaction", err)
	}
	str := fmt.Sprintf("malformed parent coinbase transaction: %v", err)
	return messageError(fn, ErrMalformedCoinbase, str)
}

// readMerkleBranch reads a merkle branch, which consists of a variable length
// integer count, that many hashes, and a side mask, from r.
func readMerkleBranch(r io.Reader, pver uint32, b *MerkleBranch, name string) error {
	const op = "readMerkleBranch"
	count, err := ReadVarInt(r, pver)
	if err != nil {
		return readError(op, name+" length", err)
	}

	// Limit to max hashes per branch to prevent memory exhaustion through
	// a malicious count.
	if count > MaxMerkleBranchHashes {
		str := fmt.Sprintf("%s declares too many hashes [count %d, max %d]",
			name, count, MaxMerkleBranchHashes)
		return messageError(op, ErrBranchTooLong, str)
	}

	hashes := make([]chainhash.Hash, count)
	for i := range hashes {
		err := readElement(r, &hashes[i])
		if err != nil {
			return readError(op, name+" hash", err)
		}
	}

	var sideMask uint32
	if err := readElement(r, &sideMask); err != nil {
		return readError(op, name+" side mask", err)
	}

	b.Hashes = hashes
	b.SideMask = sideMask
	return nil
}

// writeMerkleBranch writes a merkle branch to w.
func writeMerkleBranch(w io.Writer, pver uint32, b *MerkleBranch) error {
	err := WriteVarInt(w, pver, uint64(len(b.Hashes)))
	if err != nil {
		return err
	}
	for i := range b.Hashes {
		if err := writeElement(w, &b.Hashes[i]); err != nil {
			return err
		}
	}
	return writeElement(w, &b.SideMask)
}

// BtcDecode decodes r using the protocol encoding into the receiver.  The
// receiver is only modified when the entire auxiliary proof of work decodes
// successfully.
//
// The parent block hash is accepted in either byte order since both have been
// observed on the network.  It is normalized to the order of the hash of the
// embedded parent block header and an error is returned when neither order
// matches.
func (a *AuxPow) BtcDecode(r io.Reader, pver uint32) error {
	const op = "AuxPow.BtcDecode"
	cr := &byteCounter{r: r}

	var ap AuxPow
	tx := new(btcwire.MsgTx)
	if err := tx.DeserializeNoWitness(cr); err != nil {
		return coinbaseError(op, err)
	}
	ap.CoinbaseTx = tx

	if err := readElement(cr, &ap.ParentHash); err != nil {
		return readError(op, "parent block hash", err)
	}
	err := readMerkleBranch(cr, pver, &ap.CoinbaseBranch, "coinbase branch")
	if err != nil {
		return err
	}
	err = readMerkleBranch(cr, pver, &ap.ChainBranch, "chain branch")
	if err != nil {
		return err
	}
	if err := readBlockHeader(cr, pver, &ap.ParentHeader); err != nil {
		return err
	}

	calculated := ap.ParentHeader.BlockHash()
	if ap.ParentHash != calculated {
		reversed := reverseHash(&ap.ParentHash)
		if reversed != calculated {
			str := fmt.Sprintf("parent block hash %s does not match the "+
				"calculated hash %s of the parent block header",
				ap.ParentHash, calculated)
			return messageError(op, ErrParentHashMismatch, str)
		}
		ap.ParentHash = reversed
	}

	ap.Length = cr.n
	*a = ap
	return nil
}

// BtcEncode encodes the receiver to w using the protocol encoding.
func (a *AuxPow) BtcEncode(w io.Writer, pver uint32) error {
	if a.CoinbaseTx == nil {
		const str = "auxiliary proof of work has no parent coinbase transaction"
		return messageError("AuxPow.BtcEncode", ErrMalformedCoinbase, str)
	}
	if err := a.CoinbaseTx.SerializeNoWitness(w); err != nil {
		return err
	}
	if err := writeElement(w, &a.ParentHash); err != nil {
		return err
	}
	if err := writeMerkleBranch(w, pver, &a.CoinbaseBranch); err != nil {
		return err
	}
	if err := writeMerkleBranch(w, pver, &a.ChainBranch); err != nil {
		return err
	}
	return writeBlockHeader(w, pver, &a.ParentHeader)
}

// Deserialize decodes an auxiliary proof of work from r into the receiver
// using a format that is suitable for long-term storage such as a database.
func (a *AuxPow) Deserialize(r io.Reader) error {
	// At the current time, there is no difference between the wire encoding
	// and the stable long-term storage format.
	return a.BtcDecode(r, 0)
}

// Serialize encodes the auxiliary proof of work to w using a format that is
// suitable for long-term storage such as a database.
func (a *AuxPow) Serialize(w io.Writer) error {
	return a.BtcEncode(w, 0)
}

// SerializeSize returns the number of bytes it would take to serialize the
// auxiliary proof of work.
func (a *AuxPow) SerializeSize() int {
	n := chainhash.HashSize + a.CoinbaseBranch.SerializeSize() +
		a.ChainBranch.SerializeSize() + MaxBlockHeaderPayload
	if a.CoinbaseTx != nil {
		n += a.CoinbaseTx.SerializeSizeStripped()
	}
	return n
}

// CheckParentHash returns whether or not the stored parent block hash is the
// hash of the embedded parent block header.
func (a *AuxPow) CheckParentHash() bool {
	return a.ParentHash == a.ParentHeader.BlockHash()
}

// Hash returns the double sha256 of the serialized auxiliary proof of work.
func (a *AuxPow) Hash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, a.SerializeSize()))
	_ = a.Serialize(buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Copy returns a deep copy of the auxiliary proof of work that shares no
// memory with the receiver.
func (a *AuxPow) Copy() *AuxPow {
	var tx *btcwire.MsgTx
	if a.CoinbaseTx != nil {
		tx = a.CoinbaseTx.Copy()
	}
	return &AuxPow{
		CoinbaseTx:     tx,
		ParentHash:     a.ParentHash,
		CoinbaseBranch: a.CoinbaseBranch.copy(),
		ChainBranch:    a.ChainBranch.copy(),
		ParentHeader:   a.ParentHeader,
		Length:         a.Length,
	}
}

// String returns a multi-line human-readable description of the auxiliary
// proof of work.  It is intended for debugging.
func (a *AuxPow) String() string {
	var txHash chainhash.Hash
	if a.CoinbaseTx != nil {
		txHash = a.CoinbaseTx.TxHash()
	}
	return fmt.Sprintf(" parent coinbase transaction: %s\n"+
		" coinbase branch: %d hashes, side mask %#x\n"+
		" chain branch: %d hashes, side mask %#x\n"+
		" parent block hash: %s\n"+
		" parent block header: %s", txHash, len(a.CoinbaseBranch.Hashes),
		a.CoinbaseBranch.SideMask, len(a.ChainBranch.Hashes),
		a.ChainBranch.SideMask, a.ParentHash, &a.ParentHeader)
}

// NewAuxPow returns a new auxiliary proof of work built from the provided
// parent chain data.  The parent block hash is calculated from the parent
// header.
func NewAuxPow(coinbaseTx *btcwire.MsgTx, coinbaseBranch, chainBranch MerkleBranch,
	parentHeader *BlockHeader) *AuxPow {

	a := &AuxPow{
		CoinbaseTx:     coinbaseTx,
		ParentHash:     parentHeader.BlockHash(),
		CoinbaseBranch: coinbaseBranch,
		ChainBranch:    chainBranch,
		ParentHeader:   *parentHeader,
	}
	a.Length = a.SerializeSize()
	return a
}

// ParseAuxPow decodes the auxiliary proof of work that starts at the given
// offset of buf.  Any read beyond the end of buf results in an error and no
// partially decoded value is returned.
func ParseAuxPow(buf []byte, offset int) (*AuxPow, error) {
	data, err := sliceAt("ParseAuxPow", buf, offset)
	if err != nil {
		return nil, err
	}

	var a AuxPow
	if err := a.BtcDecode(bytes.NewReader(data), ProtocolVersion); err != nil {
		return nil, err
	}
	return &a, nil
}
