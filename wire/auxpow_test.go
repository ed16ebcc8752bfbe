// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/crypto/rand"
)

// testCoinbaseTx returns a parent chain coinbase transaction with the provided
// signature script.
func testCoinbaseTx(sigScript []byte) *btcwire.MsgTx {
	tx := btcwire.NewMsgTx(1)
	prevOut := btcwire.NewOutPoint(&chainhash.Hash{}, math.MaxUint32)
	tx.AddTxIn(btcwire.NewTxIn(prevOut, sigScript, nil))
	tx.AddTxOut(btcwire.NewTxOut(5000000000, []byte{0x51}))
	return tx
}

// testMerkleBranch returns a merkle branch with n distinct hashes.
func testMerkleBranch(n int, seed byte, sideMask uint32) MerkleBranch {
	hashes := make([]chainhash.Hash, n)
	for i := range hashes {
		hashes[i] = repeatHash(seed + byte(i))
	}
	return MerkleBranch{Hashes: hashes, SideMask: sideMask}
}

// testParentHeader returns a parent chain header that does not carry a chain
// ID.
func testParentHeader() *BlockHeader {
	return &BlockHeader{
		Version:    1,
		PrevBlock:  repeatHash(0x33),
		MerkleRoot: repeatHash(0x44),
		Timestamp:  time.Unix(1325974424, 0),
		Bits:       0x1d00ffff,
		Nonce:      12345,
	}
}

// testAuxPow returns an auxiliary proof of work with the provided number of
// hashes in each branch along with its wire encoding.
func testAuxPow(t *testing.T, n1, n2 int) (*AuxPow, []byte) {
	t.Helper()

	script := hexToBytes("0401020304" + "fabe6d6d" + strings.Repeat("55", 32) +
		"01000000" + "00000000")
	ap := NewAuxPow(testCoinbaseTx(script), testMerkleBranch(n1, 0x60, 0),
		testMerkleBranch(n2, 0x80, 0), testParentHeader())

	var buf bytes.Buffer
	if err := ap.BtcEncode(&buf, ProtocolVersion); err != nil {
		t.Fatalf("BtcEncode error %v", err)
	}
	return ap, buf.Bytes()
}

// assertAuxPowEqual ensures the decoded auxiliary proof of work matches the
// expected one.
func assertAuxPowEqual(t *testing.T, got, want *AuxPow) {
	t.Helper()

	if got.CoinbaseTx.TxHash() != want.CoinbaseTx.TxHash() {
		t.Fatalf("mismatched coinbase tx\n got: %s want: %s",
			spew.Sdump(got.CoinbaseTx), spew.Sdump(want.CoinbaseTx))
	}
	if got.ParentHash != want.ParentHash {
		t.Fatalf("mismatched parent hash: got %v, want %v", got.ParentHash,
			want.ParentHash)
	}
	branches := []struct {
		name      string
		got, want *MerkleBranch
	}{
		{"coinbase", &got.CoinbaseBranch, &want.CoinbaseBranch},
		{"chain", &got.ChainBranch, &want.ChainBranch},
	}
	for _, b := range branches {
		if len(b.got.Hashes) != len(b.want.Hashes) {
			t.Fatalf("mismatched %s branch length: got %d, want %d", b.name,
				len(b.got.Hashes), len(b.want.Hashes))
		}
		for i := range b.got.Hashes {
			if b.got.Hashes[i] != b.want.Hashes[i] {
				t.Fatalf("mismatched %s branch hash %d: got %v, want %v",
					b.name, i, b.got.Hashes[i], b.want.Hashes[i])
			}
		}
		if b.got.SideMask != b.want.SideMask {
			t.Fatalf("mismatched %s side mask: got %x, want %x", b.name,
				b.got.SideMask, b.want.SideMask)
		}
	}
	if got.ParentHeader.BlockHash() != want.ParentHeader.BlockHash() {
		t.Fatalf("mismatched parent header\n got: %s want: %s",
			spew.Sdump(&got.ParentHeader), spew.Sdump(&want.ParentHeader))
	}
	if got.Length != want.Length {
		t.Fatalf("mismatched length: got %d, want %d", got.Length,
			want.Length)
	}
}

// TestAuxPowWire tests the AuxPow wire encode and decode for various branch
// lengths.
func TestAuxPowWire(t *testing.T) {
	tests := []struct {
		name   string
		n1, n2 int
	}{
		{"empty branches", 0, 0},
		{"coinbase branch only", 3, 0},
		{"chain branch only", 0, 5},
		{"both branches", 11, 2},
		{"multi-byte branch count", 0xfd, 1},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		ap, encoded := testAuxPow(t, test.n1, test.n2)
		if ap.Length != len(encoded) {
			t.Errorf("%q: mismatched length -- got %d, want %d", test.name,
				ap.Length, len(encoded))
			continue
		}
		if ap.SerializeSize() != len(encoded) {
			t.Errorf("%q: mismatched serialize size -- got %d, want %d",
				test.name, ap.SerializeSize(), len(encoded))
			continue
		}

		var decoded AuxPow
		err := decoded.BtcDecode(bytes.NewReader(encoded), ProtocolVersion)
		if err != nil {
			t.Errorf("%q: BtcDecode error %v", test.name, err)
			continue
		}
		assertAuxPowEqual(t, &decoded, ap)
		if !decoded.CheckParentHash() {
			t.Errorf("%q: parent hash does not match parent header",
				test.name)
		}

		// Re-encoding the decoded value must produce the same bytes.
		var buf bytes.Buffer
		if err := decoded.Serialize(&buf); err != nil {
			t.Errorf("%q: Serialize error %v", test.name, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), encoded) {
			t.Errorf("%q: Serialize\n got: %s want: %s", test.name,
				spew.Sdump(buf.Bytes()), spew.Sdump(encoded))
		}
	}
}

// TestAuxPowLength ensures the decoded length always equals the number of bytes
// the auxiliary proof of work occupied regardless of the offset it starts at
// and any data that follows it.
func TestAuxPowLength(t *testing.T) {
	for i := 0; i < 25; i++ {
		n1, n2 := rand.IntN(40), rand.IntN(40)
		ap, encoded := testAuxPow(t, n1, n2)

		wantLen := len(encoded)
		if wantLen != 232+32*(n1+n2) {
			t.Fatalf("unexpected encoding size for branches %d/%d: got %d, "+
				"want %d", n1, n2, wantLen, 232+32*(n1+n2))
		}

		prefix := make([]byte, rand.IntN(64))
		rand.Read(prefix)
		suffix := make([]byte, rand.IntN(64))
		rand.Read(suffix)
		buf := append(append(append([]byte{}, prefix...), encoded...), suffix...)

		decoded, err := ParseAuxPow(buf, len(prefix))
		if err != nil {
			t.Fatalf("ParseAuxPow (branches %d/%d) error %v", n1, n2, err)
		}
		if decoded.Length != wantLen {
			t.Fatalf("ParseAuxPow (branches %d/%d): length got %d, want %d",
				n1, n2, decoded.Length, wantLen)
		}
		assertAuxPowEqual(t, decoded, ap)
	}
}

// TestAuxPowReversedParentHash ensures a parent hash stored in the reverse byte
// order is accepted and normalized.
func TestAuxPowReversedParentHash(t *testing.T) {
	ap, encoded := testAuxPow(t, 2, 1)

	// The parent hash immediately follows the coinbase transaction.
	hashOffset := ap.CoinbaseTx.SerializeSizeStripped()
	reversed := reverseHash(&ap.ParentHash)
	modified := append([]byte{}, encoded...)
	copy(modified[hashOffset:], reversed[:])

	decoded, err := ParseAuxPow(modified, 0)
	if err != nil {
		t.Fatalf("ParseAuxPow error %v", err)
	}
	if decoded.ParentHash != ap.ParentHeader.BlockHash() {
		t.Fatalf("parent hash not normalized: got %v, want %v",
			decoded.ParentHash, ap.ParentHeader.BlockHash())
	}
	if !decoded.CheckParentHash() {
		t.Fatal("parent hash does not match parent header")
	}

	// A parent hash that matches in neither order must be rejected.
	garbage := repeatHash(0xee)
	copy(modified[hashOffset:], garbage[:])
	_, err = ParseAuxPow(modified, 0)
	if !errors.Is(err, ErrParentHashMismatch) {
		t.Fatalf("ParseAuxPow: wrong error got: %v, want: %v", err,
			ErrParentHashMismatch)
	}
}

// TestAuxPowWireErrors performs negative tests against wire decode of AuxPow to
// confirm error paths work correctly.
func TestAuxPowWireErrors(t *testing.T) {
	ap, encoded := testAuxPow(t, 3, 2)

	// Every truncation of the encoding must be reported as truncated data
	// and must never leave a partially decoded value behind.
	for n := 0; n < len(encoded); n++ {
		decoded, err := ParseAuxPow(encoded[:n], 0)
		if !errors.Is(err, ErrTruncatedData) {
			t.Fatalf("ParseAuxPow truncated to %d bytes: wrong error got: "+
				"%v, want: %v", n, err, ErrTruncatedData)
		}
		if decoded != nil {
			t.Fatalf("ParseAuxPow truncated to %d bytes: returned value "+
				"with error", n)
		}
	}

	// A failed decode does not modify the receiver.
	before := *ap
	err := ap.BtcDecode(bytes.NewReader(encoded[:len(encoded)-1]), ProtocolVersion)
	if err == nil {
		t.Fatal("BtcDecode of truncated data did not fail")
	}
	if ap.Length != before.Length || ap.CoinbaseTx != before.CoinbaseTx {
		t.Fatal("failed BtcDecode modified the receiver")
	}

	// Write errors are passed through.
	for max := 0; max < len(encoded); max += 7 {
		w := newFixedWriter(max)
		if err := ap.BtcEncode(w, ProtocolVersion); err == nil {
			t.Fatalf("BtcEncode max %d: did not fail", max)
		}
	}

	// Encoding without a coinbase transaction is an error.
	noTx := *ap
	noTx.CoinbaseTx = nil
	err = noTx.BtcEncode(&bytes.Buffer{}, ProtocolVersion)
	if !errors.Is(err, ErrMalformedCoinbase) {
		t.Fatalf("BtcEncode without coinbase: wrong error got: %v, want: %v",
			err, ErrMalformedCoinbase)
	}
}

// TestAuxPowMalformed ensures structurally invalid auxiliary proofs of work are
// rejected with the expected error kinds.
func TestAuxPowMalformed(t *testing.T) {
	ap, _ := testAuxPow(t, 0, 0)
	var txBuf bytes.Buffer
	if err := ap.CoinbaseTx.SerializeNoWitness(&txBuf); err != nil {
		t.Fatalf("SerializeNoWitness error %v", err)
	}
	txBytes := txBuf.Bytes()

	tooLong := append([]byte{}, txBytes...)
	tooLong = append(tooLong, ap.ParentHash[:]...)
	tooLong = append(tooLong, 0xfd, 0x01, 0x10) // 4097 hashes

	chainTooLong := append([]byte{}, txBytes...)
	chainTooLong = append(chainTooLong, ap.ParentHash[:]...)
	chainTooLong = append(chainTooLong, 0x00, 0x00, 0x00, 0x00, 0x00)
	chainTooLong = append(chainTooLong, 0xfe, 0x00, 0x00, 0x01, 0x00)

	nonCanonical := append([]byte{}, txBytes...)
	nonCanonical = append(nonCanonical, ap.ParentHash[:]...)
	nonCanonical = append(nonCanonical, 0xfd, 0x01, 0x00)

	// Version followed by an absurd number of inputs.
	badTx := hexToBytes("01000000" + "feffffff00")

	tests := []struct {
		name   string
		buf    []byte
		offset int
		err    error
	}{
		{"coinbase branch too long", tooLong, 0, ErrBranchTooLong},
		{"chain branch too long", chainTooLong, 0, ErrBranchTooLong},
		{"non-canonical branch count", nonCanonical, 0, ErrNonCanonicalVarInt},
		{"malformed coinbase", badTx, 0, ErrMalformedCoinbase},
		{"negative offset", txBytes, -1, ErrInvalidOffset},
		{"offset past end", txBytes, len(txBytes) + 1, ErrInvalidOffset},
		{"offset at end", txBytes, len(txBytes), ErrTruncatedData},
	}

	for _, test := range tests {
		_, err := ParseAuxPow(test.buf, test.offset)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: wrong error got: %v, want: %v", test.name, err,
				test.err)
			continue
		}
		if !IsFormatError(err) {
			t.Errorf("%q: error %v is not a format error", test.name, err)
		}
	}
}

// TestAuxPowCopy ensures a copied auxiliary proof of work shares no memory with
// the original.
func TestAuxPowCopy(t *testing.T) {
	ap, encoded := testAuxPow(t, 2, 2)
	cp := ap.Copy()
	assertAuxPowEqual(t, cp, ap)

	cp.CoinbaseBranch.Hashes[0] = repeatHash(0xff)
	cp.ChainBranch.Hashes[1] = repeatHash(0xff)
	cp.CoinbaseTx.TxIn[0].SignatureScript[0] = 0xff
	cp.ParentHeader.Nonce++

	var buf bytes.Buffer
	if err := ap.BtcEncode(&buf, ProtocolVersion); err != nil {
		t.Fatalf("BtcEncode error %v", err)
	}
	if !bytes.Equal(buf.Bytes(), encoded) {
		t.Fatal("modifying the copy modified the original")
	}
}

// TestAuxPowHash ensures the hash of an auxiliary proof of work is the double
// sha256 of its encoding and changes with every encoded field.
func TestAuxPowHash(t *testing.T) {
	ap, encoded := testAuxPow(t, 2, 2)
	if got, want := ap.Hash(), chainhash.DoubleHashH(encoded); got != want {
		t.Fatalf("Hash: got %v, want %v", got, want)
	}
	if got, want := ap.Copy().Hash(), ap.Hash(); got != want {
		t.Fatalf("Hash of copy: got %v, want %v", got, want)
	}

	tests := []struct {
		name   string
		mutate func(*AuxPow)
	}{
		{"coinbase branch side mask", func(a *AuxPow) { a.CoinbaseBranch.SideMask ^= 1 }},
		{"chain branch side mask", func(a *AuxPow) { a.ChainBranch.SideMask ^= 1 }},
		{"coinbase branch hash", func(a *AuxPow) { a.CoinbaseBranch.Hashes[0][0] ^= 1 }},
		{"chain branch hash", func(a *AuxPow) { a.ChainBranch.Hashes[1][0] ^= 1 }},
		{"parent header nonce", func(a *AuxPow) { a.ParentHeader.Nonce++ }},
		{"coinbase script", func(a *AuxPow) { a.CoinbaseTx.TxIn[0].SignatureScript[0] ^= 1 }},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		cp := ap.Copy()
		test.mutate(cp)
		if cp.Hash() == ap.Hash() {
			t.Errorf("%s: hash did not change", test.name)
		}
	}
}
