// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
)

const (
	// ProtocolVersion is the latest protocol version this package supports.
	ProtocolVersion uint32 = 60001

	// MaxMessagePayload is the maximum bytes a message can be regardless of
	// other individual limits imposed by messages themselves.
	MaxMessagePayload = (1024 * 1024 * 32) // 32MB
)

// Commands used in message headers which describe the type of message.
const (
	CmdHeaders = "headers"
)

// CurrencyNet represents which network a message belongs to.
type CurrencyNet uint32

// Constants used to indicate the message network.  They can also be used to
// seek to the next message when a stream's state is unknown, but this package
// does not provide that functionality since it's generally a better idea to
// simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main network.
	MainNet CurrencyNet = 0x4445563a

	// RegNet represents the regression test network.
	RegNet CurrencyNet = 0x52454721
)

// cnStrings is a map of currency networks back to their constant names for
// pretty printing.
var cnStrings = map[CurrencyNet]string{
	MainNet: "MainNet",
	RegNet:  "RegNet",
}

// String returns the CurrencyNet in human-readable form.
func (n CurrencyNet) String() string {
	if s, ok := cnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown CurrencyNet (%d)", uint32(n))
}

// Message is an interface that describes a message.  This package only
// implements the messages needed to carry merge-mined block headers.
type Message interface {
	BtcDecode(io.Reader, uint32) error
	BtcEncode(io.Writer, uint32) error
	Command() string
	MaxPayloadLength(uint32) uint32
}
