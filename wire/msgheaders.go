// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
)

// MaxBlockHeadersPerMsg is the maximum number of block headers that can be in
// a single headers message.
const MaxBlockHeadersPerMsg = 2000

// HeaderEntry is a single block header carried by a headers message along with
// the auxiliary proof of work that follows it on the wire when the version of
// the header signals one.
type HeaderEntry struct {
	Header BlockHeader

	// AuxPow is nil for headers that are not merge-mined.
	AuxPow *AuxPow
}

// MsgHeaders implements the Message interface and represents a headers
// message.  It is used to deliver block header information in response
// to a getheaders message.  The maximum number of block headers per message is
// currently 2000.
//
// Each header is encoded as the 80 byte header, the auxiliary proof of work
// when the header version has the VersionAuxPow bit set, and a transaction
// count which must always be zero.
type MsgHeaders struct {
	Headers []*HeaderEntry
}

// AddBlockHeader adds a new block header and optional auxiliary proof of work
// to the message.
func (msg *MsgHeaders) AddBlockHeader(bh *BlockHeader, auxPow *AuxPow) error {
	if len(msg.Headers)+1 > MaxBlockHeadersPerMsg {
		str := fmt.Sprintf("too many block headers in message [max %v]",
			MaxBlockHeadersPerMsg)
		return messageError("MsgHeaders.AddBlockHeader", ErrTooManyHeaders, str)
	}

	msg.Headers = append(msg.Headers, &HeaderEntry{Header: *bh, AuxPow: auxPow})
	return nil
}

// BtcDecode decodes r using the protocol encoding into the receiver.
// This is part of the Message interface implementation.
//
// The headers are only stored in the receiver when every header in the message
// decodes successfully.  A single malformed entry fails the entire message.
func (msg *MsgHeaders) BtcDecode(r io.Reader, pver uint32) error {
	const op = "MsgHeaders.BtcDecode"
	msg.Headers = nil

	count, err := ReadVarInt(r, pver)
	if err != nil {
		return readError(op, "header count", err)
	}

	// Limit to max block headers per message.
	if count > MaxBlockHeadersPerMsg {
		str := fmt.Sprintf("too many block headers for message "+
			"[count %v, max %v]", count, MaxBlockHeadersPerMsg)
		return messageError(op, ErrTooManyHeaders, str)
	}

	headers := make([]*HeaderEntry, 0, count)
	for i := uint64(0); i < count; i++ {
		entry := new(HeaderEntry)
		err := readBlockHeader(r, pver, &entry.Header)
		if err != nil {
			return err
		}

		if entry.Header.IsAuxPow() {
			auxPow := new(AuxPow)
			if err := auxPow.BtcDecode(r, pver); err != nil {
				return err
			}
			entry.AuxPow = auxPow
		}

		var txCount uint8
		if err := readElement(r, &txCount); err != nil {
			return readError(op, "transaction count", err)
		}

		// Ensure the transaction count is zero for headers.
		if txCount > 0 {
			str := fmt.Sprintf("block headers may not contain "+
				"transactions [header %d, count %v]", i, txCount)
			return messageError(op, ErrHeaderContainsTxs, str)
		}
		headers = append(headers, entry)
	}

	msg.Headers = headers
	return nil
}

// BtcEncode encodes the receiver to w using the protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgHeaders) BtcEncode(w io.Writer, pver uint32) error {
	const op = "MsgHeaders.BtcEncode"
	// Limit to max block headers per message.
	count := len(msg.Headers)
	if count > MaxBlockHeadersPerMsg {
		str := fmt.Sprintf("too many block headers for message "+
			"[count %v, max %v]", count, MaxBlockHeadersPerMsg)
		return messageError(op, ErrTooManyHeaders, str)
	}

	err := WriteVarInt(w, pver, uint64(count))
	if err != nil {
		return err
	}

	for _, entry := range msg.Headers {
		err := writeBlockHeader(w, pver, &entry.Header)
		if err != nil {
			return err
		}

		if entry.Header.IsAuxPow() {
			if entry.AuxPow == nil {
				str := fmt.Sprintf("header %s signals an auxiliary proof "+
					"of work but none is attached", entry.Header.BlockHash())
				return messageError(op, ErrMissingAuxPow, str)
			}
			if err := entry.AuxPow.BtcEncode(w, pver); err != nil {
				return err
			}
		}

		// The wire protocol encoding always includes a 0 for the number
		// of transactions on header messages.  This is really just an
		// artifact of the way the reference implementation serializes
		// block headers, but it is required.
		if err := writeUint8(w, 0); err != nil {
			return err
		}
	}

	return nil
}

// Command returns the protocol command string for the message.  This is part
// of the Message interface implementation.
func (msg *MsgHeaders) Command() string {
	return CmdHeaders
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgHeaders) MaxPayloadLength(pver uint32) uint32 {
	// Auxiliary proofs of work are variable length, so the only hard limit
	// is the maximum message payload.
	return MaxMessagePayload
}

// NewMsgHeaders returns a new headers message that conforms to the
// Message interface.  See MsgHeaders for details.
func NewMsgHeaders() *MsgHeaders {
	return &MsgHeaders{
		Headers: make([]*HeaderEntry, 0, MaxBlockHeadersPerMsg),
	}
}
