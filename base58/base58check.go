// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"crypto/sha256"
	"errors"
)

var (
	// ErrChecksum indicates that the checksum of a check-encoded string does
	// not verify against the checksum.
	ErrChecksum = errors.New("checksum error")

	// ErrInvalidFormat indicates that the check-encoded string has an invalid
	// format, meaning it decodes to fewer bytes than a version byte and a
	// checksum require.
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
)

// checksum returns the first four bytes of SHA256(SHA256(input)).
func checksum(input []byte) (cksum [4]byte) {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	copy(cksum[:], h2[:4])
	return
}

// CheckEncode prepends the version byte, appends a four byte checksum, and
// returns the base58 encoding of the result.
func CheckEncode(input []byte, version byte) string {
	b := make([]byte, 0, 1+len(input)+4)
	b = append(b, version)
	b = append(b, input...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode and verifies
// the checksum.  On success it returns the payload with the leading version
// byte and the trailing checksum stripped, along with the version byte.
func CheckDecode(input string) ([]byte, byte, error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, 0, err
	}
	if len(decoded) < 5 {
		return nil, 0, ErrInvalidFormat
	}
	version := decoded[0]
	var cksum [4]byte
	copy(cksum[:], decoded[len(decoded)-4:])
	if checksum(decoded[:len(decoded)-4]) != cksum {
		return nil, 0, ErrChecksum
	}
	payload := decoded[1 : len(decoded)-4]
	return payload, version, nil
}
