// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"errors"
	"fmt"

	b58 "github.com/mr-tron/base58"
)

// ErrInvalidAlphabet indicates that the input text contains a character which
// is not part of the modified base58 alphabet.
var ErrInvalidAlphabet = errors.New("invalid base58 character")

// Encode encodes the passed bytes into a base58 string using the modified
// base58 alphabet.  No checksum is involved.
func Encode(b []byte) string {
	return b58.Encode(b)
}

// Decode decodes the passed base58 string into bytes.  It returns an error
// which wraps ErrInvalidAlphabet when the string contains a character outside
// the modified base58 alphabet.
func Decode(s string) ([]byte, error) {
	// The empty string is the encoding of the empty byte sequence.
	if len(s) == 0 {
		return nil, nil
	}
	decoded, err := b58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlphabet, err)
	}
	return decoded, nil
}
