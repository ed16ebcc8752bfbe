// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auxpow

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific RuleError.
const (
	// ErrAuxPowNotParsed indicates a merge-mined header was checked before
	// its auxiliary proof of work was successfully parsed.
	ErrAuxPowNotParsed = ErrorKind("ErrAuxPowNotParsed")

	// ErrBadChainID indicates the chain ID encoded in the version of a
	// merge-mined header is not the chain ID of the network.
	ErrBadChainID = ErrorKind("ErrBadChainID")

	// ErrParentChainID indicates the parent block of an auxiliary proof of
	// work claims the chain ID of the network it is proving work for.
	ErrParentChainID = ErrorKind("ErrParentChainID")

	// ErrNoCoinbaseInput indicates the parent coinbase transaction of an
	// auxiliary proof of work does not have any inputs.
	ErrNoCoinbaseInput = ErrorKind("ErrNoCoinbaseInput")

	// ErrNotCoinbase indicates the parent coinbase transaction carries the
	// merged mining header but its first input is not a coinbase input.
	ErrNotCoinbase = ErrorKind("ErrNotCoinbase")

	// ErrMultipleMergedMiningHeaders indicates the merged mining header
	// appears more than once in the parent coinbase signature script.
	ErrMultipleMergedMiningHeaders = ErrorKind("ErrMultipleMergedMiningHeaders")

	// ErrCoinbaseBranchSideMask indicates the coinbase branch does not
	// describe the first transaction of the parent block.
	ErrCoinbaseBranchSideMask = ErrorKind("ErrCoinbaseBranchSideMask")

	// ErrBadCoinbaseBranch indicates the coinbase branch does not link the
	// parent coinbase transaction to the merkle root of the parent block.
	ErrBadCoinbaseBranch = ErrorKind("ErrBadCoinbaseBranch")

	// ErrChainBranchTooLong indicates the chain branch is deeper than the
	// maximum allowed merged mining tree.
	ErrChainBranchTooLong = ErrorKind("ErrChainBranchTooLong")

	// ErrMissingChainRoot indicates the parent coinbase signature script
	// does not commit to the merged mining root of the chain branch.
	ErrMissingChainRoot = ErrorKind("ErrMissingChainRoot")

	// ErrMisplacedChainRoot indicates the merged mining root is not located
	// where it is required to be in the parent coinbase signature script.
	ErrMisplacedChainRoot = ErrorKind("ErrMisplacedChainRoot")

	// ErrMissingChainTreeInfo indicates the merged mining root is not
	// followed by the merged mining tree size and nonce.
	ErrMissingChainTreeInfo = ErrorKind("ErrMissingChainTreeInfo")

	// ErrBadChainTreeSize indicates the merged mining tree size committed
	// to by the parent coinbase does not match the chain branch.
	ErrBadChainTreeSize = ErrorKind("ErrBadChainTreeSize")

	// ErrBadChainIndex indicates the position of the block in the merged
	// mining tree is not the one derived from the committed nonce and the
	// chain ID.
	ErrBadChainIndex = ErrorKind("ErrBadChainIndex")

	// ErrMergedMiningNotActive indicates a header carries an auxiliary
	// proof of work before merged mining started on the network.
	ErrMergedMiningNotActive = ErrorKind("ErrMergedMiningNotActive")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// RuleError identifies a rule violation.  It has full support for errors.Is
// and errors.As, so the caller can ascertain the specific reason for the
// error by checking the underlying error.
type RuleError struct {
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e RuleError) Unwrap() error {
	return e.Err
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(kind ErrorKind, desc string) RuleError {
	return RuleError{Err: kind, Description: desc}
}
