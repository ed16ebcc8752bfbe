// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auxpow

import (
	"bytes"

	"github.com/devcoin/dvcd/chaincfg"
	"github.com/devcoin/dvcd/wire"
)

// HeaderBatch is an ordered set of block headers decoded from a single headers
// message.
type HeaderBatch struct {
	headers []*MergeMinedHeader
}

// ParseHeaderBatch decodes the payload of a headers message.  The headers are
// kept in the order they appear on the wire.  Any malformed entry fails the
// entire batch, in which case no headers are returned.
//
// Headers that signal an auxiliary proof of work are returned already parsed.
// Plain headers are returned without one and are never valid merge-mined
// headers.
func ParseHeaderBatch(params *chaincfg.Params, buf []byte) (*HeaderBatch, error) {
	var msg wire.MsgHeaders
	err := msg.BtcDecode(bytes.NewReader(buf), wire.ProtocolVersion)
	if err != nil {
		return nil, err
	}

	headers := make([]*MergeMinedHeader, 0, len(msg.Headers))
	for _, entry := range msg.Headers {
		// The decoded message is not shared, so the payload does not
		// need to be copied.
		result := &parseResult{payload: entry.AuxPow}
		if entry.AuxPow == nil {
			result = &parseResult{err: errNoPayload}
		}
		headers = append(headers, newResolvedHeader(params, &entry.Header,
			result))
	}

	log.Debugf("Decoded %d headers from %d byte message", len(headers),
		len(buf))
	return &HeaderBatch{headers: headers}, nil
}

// Len returns the number of headers in the batch.
func (b *HeaderBatch) Len() int {
	return len(b.headers)
}

// BlockHeaders returns all headers of the batch in wire order.  The caller must
// not modify the returned slice.
func (b *HeaderBatch) BlockHeaders() []*MergeMinedHeader {
	return b.headers
}

// MergeMined returns the headers of the batch that carry a valid auxiliary
// proof of work in wire order.
func (b *HeaderBatch) MergeMined() []*MergeMinedHeader {
	var headers []*MergeMinedHeader
	for _, h := range b.headers {
		if h.IsValid() {
			headers = append(headers, h)
		}
	}
	return headers
}
