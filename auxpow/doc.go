// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package auxpow implements the merged mining rules for Devcoin block headers.

A merge-mined block does not carry proof of work of its own.  Instead, the
header is followed by an auxiliary proof of work which shows that a block of a
separate parent chain, typically Bitcoin, commits to the hash of the header via
the signature script of its coinbase transaction.

# Merge-Mined Headers

MergeMinedHeader wraps a block header together with its auxiliary proof of
work.  The proof is either parsed when the header is created, via
NewMergeMinedHeader, or deferred until MaybeParseHeader is first called, via
NewLazyMergeMinedHeader.  A header resolves exactly once and a header that
failed to parse never becomes valid.

# Proof of Work Checks

CheckProofOfWork ensures the header carries the chain ID of the network, that
the parent block is from a different chain, and that the merged mining header
in the parent coinbase is unique and located in an actual coinbase input.
Networks that set StrictAuxPowBranches additionally verify both merkle branches
and the merged mining tree parameters.

# Header Batches

ParseHeaderBatch decodes a headers message of up to 2000 headers and
HeaderVerifier verifies them while remembering the auxiliary proofs of work
that passed.

# Errors

Errors returned by this package are of type RuleError and wrap an ErrorKind so
that callers can use errors.Is to determine the specific rule that was
violated.  Malformed data results in the errors of the wire package.
*/
package auxpow
