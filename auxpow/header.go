// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auxpow

import (
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/blockchain/standalone/v2"
	"github.com/devcoin/dvcd/chaincfg"
	"github.com/devcoin/dvcd/wire"
)

// errNoPayload is the parse result of a header that was constructed without an
// auxiliary proof of work.
var errNoPayload = ruleError(ErrAuxPowNotParsed, "no auxiliary proof of "+
	"work provided")

// parseResult is the outcome of parsing the auxiliary proof of work of a
// merge-mined header.  Exactly one of payload and err is set.
type parseResult struct {
	payload *wire.AuxPow
	err     error
}

// MergeMinedHeader houses a block header along with the auxiliary proof of work
// that follows it.  The proof may either be parsed when the header is created
// or deferred until it is first needed.
//
// A header moves from unparsed to either valid or invalid exactly once.  Both
// outcomes are terminal, so a header that failed to parse is never parsed
// again.  All methods are safe for concurrent access once the header has been
// returned by one of the constructors.
type MergeMinedHeader struct {
	params *chaincfg.Params
	header wire.BlockHeader

	// buf and offset locate the serialized auxiliary proof of work of a
	// lazily parsed header.  They are not modified after construction.
	buf    []byte
	offset int

	// result is nil until the auxiliary proof of work has been parsed and
	// is never replaced once set.
	result atomic.Pointer[parseResult]
}

// newResolvedHeader returns a merge-mined header that has already been
// resolved to the provided parse result.
func newResolvedHeader(params *chaincfg.Params, header *wire.BlockHeader, result *parseResult) *MergeMinedHeader {
	h := &MergeMinedHeader{params: params, header: *header}
	h.result.Store(result)
	return h
}

// NewMergeMinedHeader returns a merge-mined header with the auxiliary proof of
// work that starts at the given offset of buf parsed immediately.  Any error
// encountered while parsing is returned to the caller and no header is
// created.
//
// The returned header does not retain buf.
func NewMergeMinedHeader(params *chaincfg.Params, buf []byte, offset int, header *wire.BlockHeader) (*MergeMinedHeader, error) {
	payload, err := wire.ParseAuxPow(buf, offset)
	if err != nil {
		return nil, err
	}
	return newResolvedHeader(params, header, &parseResult{payload: payload}), nil
}

// NewMergeMinedHeaderFromPayload returns a merge-mined header that holds a deep
// copy of the provided auxiliary proof of work.  The returned header shares no
// memory with the payload, the header, or any buffer the payload was decoded
// from.
//
// A nil payload results in a header that is not valid.
func NewMergeMinedHeaderFromPayload(params *chaincfg.Params, payload *wire.AuxPow, header *wire.BlockHeader) *MergeMinedHeader {
	if payload == nil {
		return newResolvedHeader(params, header, &parseResult{err: errNoPayload})
	}
	return newResolvedHeader(params, header, &parseResult{payload: payload.Copy()})
}

// NewLazyMergeMinedHeader returns a merge-mined header whose auxiliary proof of
// work starts at the given offset of buf and is only parsed by the first call
// to MaybeParseHeader.  The caller must not modify buf until then.
func NewLazyMergeMinedHeader(params *chaincfg.Params, buf []byte, offset int, header *wire.BlockHeader) *MergeMinedHeader {
	return &MergeMinedHeader{
		params: params,
		header: *header,
		buf:    buf,
		offset: offset,
	}
}

// MaybeParseHeader parses the auxiliary proof of work of the header when that
// has not happened yet and returns the result of the parse.  It does nothing
// but return the existing result once the header has been resolved, which
// means a header that failed to parse stays invalid.
//
// Callers should check IsValid after calling this function rather than rely
// on the returned error for control flow.
func (h *MergeMinedHeader) MaybeParseHeader() error {
	if r := h.result.Load(); r != nil {
		return r.err
	}

	payload, err := wire.ParseAuxPow(h.buf, h.offset)
	result := &parseResult{payload: payload, err: err}
	if err != nil {
		result.payload = nil
	}
	if !h.result.CompareAndSwap(nil, result) {
		// Another caller resolved the header first.
		return h.result.Load().err
	}

	if err != nil {
		log.Warnf("Unable to parse auxiliary proof of work of block %v: %v",
			h.header.BlockHash(), err)
	}
	return err
}

// payload returns the parsed auxiliary proof of work or nil when the header is
// not valid.
func (h *MergeMinedHeader) payload() *wire.AuxPow {
	r := h.result.Load()
	if r == nil || r.err != nil || r.payload == nil {
		return nil
	}
	if !r.payload.CheckParentHash() {
		return nil
	}
	return r.payload
}

// IsValid returns whether or not the auxiliary proof of work of the header has
// been parsed successfully and is self consistent.  It never triggers a parse.
func (h *MergeMinedHeader) IsValid() bool {
	return h.payload() != nil
}

// Params returns the network parameters the header is checked against.
func (h *MergeMinedHeader) Params() *chaincfg.Params {
	return h.params
}

// Header returns a copy of the block header.
func (h *MergeMinedHeader) Header() wire.BlockHeader {
	return h.header
}

// AuxPow returns the parsed auxiliary proof of work or nil when the header is
// not valid.  The returned value is shared and must not be modified.
func (h *MergeMinedHeader) AuxPow() *wire.AuxPow {
	return h.payload()
}

// BlockHash returns the hash of the block header.
func (h *MergeMinedHeader) BlockHash() chainhash.Hash {
	return h.header.BlockHash()
}

// Version returns the version of the block header.
func (h *MergeMinedHeader) Version() uint32 {
	return h.header.Version
}

// Nonce returns the nonce of the block header.
func (h *MergeMinedHeader) Nonce() uint32 {
	return h.header.Nonce
}

// Timestamp returns the time the block was created.
func (h *MergeMinedHeader) Timestamp() time.Time {
	return h.header.Timestamp
}

// Bits returns the compact difficulty target of the block header.
func (h *MergeMinedHeader) Bits() uint32 {
	return h.header.Bits
}

// IsAuxPow returns whether or not the version of the block header signals an
// auxiliary proof of work.
func (h *MergeMinedHeader) IsAuxPow() bool {
	return h.header.IsAuxPow()
}

// ChainID returns the chain ID encoded in the version of a block.
func ChainID(version uint32) uint32 {
	return version / wire.VersionChainStart
}

// ChainID returns the chain ID encoded in the version of the block header.
func (h *MergeMinedHeader) ChainID() uint32 {
	return ChainID(h.header.Version)
}

// ParentBlockHash returns the hash of the parent block or the zero hash when
// the header is not valid.
func (h *MergeMinedHeader) ParentBlockHash() chainhash.Hash {
	payload := h.payload()
	if payload == nil {
		return chainhash.Hash{}
	}
	return payload.ParentHash
}

// ParentBlockBits returns the compact difficulty target of the parent block or
// zero when the header is not valid.
func (h *MergeMinedHeader) ParentBlockBits() uint32 {
	payload := h.payload()
	if payload == nil {
		return 0
	}
	return payload.ParentHeader.Bits
}

// ParentBlockTarget returns the difficulty target of the parent block as a big
// integer or nil when the header is not valid.
func (h *MergeMinedHeader) ParentBlockTarget() *big.Int {
	payload := h.payload()
	if payload == nil {
		return nil
	}
	return standalone.CompactToBig(payload.ParentHeader.Bits)
}

// ParentBlockWork returns the work represented by the difficulty target of the
// parent block or nil when the header is not valid.
func (h *MergeMinedHeader) ParentBlockWork() *big.Int {
	payload := h.payload()
	if payload == nil {
		return nil
	}
	return standalone.CalcWork(payload.ParentHeader.Bits)
}

// PayloadLength returns the number of bytes the auxiliary proof of work
// occupied on the wire or zero when the header is not valid.
func (h *MergeMinedHeader) PayloadLength() int {
	payload := h.payload()
	if payload == nil {
		return 0
	}
	return payload.Length
}

// Offset returns the offset of the auxiliary proof of work in the buffer the
// header was lazily created from.
func (h *MergeMinedHeader) Offset() int {
	return h.offset
}

// CloneAsHeader returns an independent copy of the header that holds its own
// copy of the auxiliary proof of work and no reference to the buffer it was
// parsed from.  It returns nil when the header is not valid.
func (h *MergeMinedHeader) CloneAsHeader() *MergeMinedHeader {
	payload := h.payload()
	if payload == nil {
		return nil
	}
	return NewMergeMinedHeaderFromPayload(h.params, payload, &h.header)
}

// Equal returns whether or not both headers were created at the same time.
// Only the timestamps, in seconds, are compared.
func (h *MergeMinedHeader) Equal(other *MergeMinedHeader) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.header.Timestamp.Unix() == other.header.Timestamp.Unix()
}

// String returns a multi-line human-readable description of the header.  It
// is intended for debugging.
func (h *MergeMinedHeader) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, " version: %#08x (chain %d)\n", h.header.Version, h.ChainID())
	fmt.Fprintf(&s, " time: %d (%s)\n", h.header.Timestamp.Unix(),
		h.header.Timestamp.UTC())
	fmt.Fprintf(&s, " difficulty target (bits): %#08x\n", h.header.Bits)
	fmt.Fprintf(&s, " nonce: %d", h.header.Nonce)
	if payload := h.payload(); payload != nil {
		s.WriteString("\n")
		s.WriteString(payload.String())
	}
	return s.String()
}
