// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrInvalidSince indicates the packed since field on a transaction
	// input is structurally malformed: a reserved bit is set or the
	// metric flag carries the reserved value.  Such a transaction is
	// invalid regardless of the chain tip and should be dropped rather
	// than retried.
	ErrInvalidSince ErrorCode = iota

	// ErrImmature indicates a well-formed since lock whose time condition
	// is not yet met by the current chain tip.  The transaction may become
	// valid once the chain advances.
	ErrImmature

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidSince: "ErrInvalidSince",
	ErrImmature:     "ErrImmature",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation.  It is used to indicate that
// processing of a transaction failed due to one of the consensus rules.  The
// caller can use type assertions to determine if a failure was specifically
// due to a rule violation and access the ErrorCode field to ascertain the
// specific reason for the rule violation.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human-readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// NewRuleError creates a RuleError given a set of arguments.
func NewRuleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// IsRuleErrorCode returns whether err is a RuleError carrying the provided
// code.
func IsRuleErrorCode(err error, c ErrorCode) bool {
	rerr, ok := err.(RuleError)
	return ok && rerr.ErrorCode == c
}
