// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the Devcoin wire encoding of block headers and their
auxiliary proofs of work.

Devcoin blocks are merge-mined with a parent chain.  A block header whose
version has the VersionAuxPow bit set is followed on the wire by an auxiliary
proof of work (AuxPow) that carries the parent chain coinbase transaction, the
merkle branches that link the coinbase to the parent block and the Devcoin
block to the merged mining root, and the parent block header itself.  The
parent chain coinbase transaction uses the Bitcoin transaction format and is
decoded with the btcd wire package.

# Message Overview

Only the headers message is implemented.  Every entry of a headers message is
an 80 byte block header, the auxiliary proof of work when the header signals
one, and a transaction count that must be zero.  A single malformed entry fails
the entire message.

# Errors

Errors returned by this package are either the raw errors provided by
underlying calls to write to an io.Writer or a MessageError.  A MessageError
wraps an ErrorKind, such as ErrTruncatedData, which may be checked with
errors.Is.  IsFormatError reports whether an error describes malformed data.
*/
package wire
