/*
 * Copyright (c) 2023 The CellChain developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaindata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorCodeStringer ensures every error code has a string entry.
func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrInvalidSince, "ErrInvalidSince"},
		{ErrImmature, "ErrImmature"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	assert.Equal(t, int(numErrorCodes), len(errorCodeStrings),
		"it appears an error code was added without adding an associated stringer entry")

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}

func TestIsRuleErrorCode(t *testing.T) {
	err := NewRuleError(ErrImmature, "input 0 locked until block 10, tip is 5")

	assert.EqualError(t, err, "input 0 locked until block 10, tip is 5")
	assert.True(t, IsRuleErrorCode(err, ErrImmature))
	assert.False(t, IsRuleErrorCode(err, ErrInvalidSince))
	assert.False(t, IsRuleErrorCode(assert.AnError, ErrImmature))
}
