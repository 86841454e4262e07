// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package koinutil

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrMalformedAddress is returned when a hash or serialized address does
	// not have the length required by the address variant.
	ErrMalformedAddress = ErrorKind("ErrMalformedAddress")

	// ErrUnrecognizedPrefix is returned when the prefix byte of a serialized
	// address matches neither the pay-to-pubkey-hash nor the
	// pay-to-script-hash prefix of the given network.
	ErrUnrecognizedPrefix = ErrorKind("ErrUnrecognizedPrefix")

	// ErrInvalidAddress is returned by DecodeAddress when the provided text
	// is not a valid address for the given network for any reason, such as
	// a checksum mismatch or an unrecognized prefix byte.  Callers which
	// need to tell those reasons apart should use the staged primitives
	// base58.CheckDecode and ParseAddress directly.
	ErrInvalidAddress = ErrorKind("ErrInvalidAddress")

	// ErrWrongNetwork is returned when a WIF string is well formed, but
	// encoded for a different network than the one provided.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")

	// ErrMalformedPrivateKey is returned when a WIF payload is of an
	// impossible length.
	ErrMalformedPrivateKey = ErrorKind("ErrMalformedPrivateKey")

	// ErrInvalidCompressionFlag is returned when a WIF payload has the
	// length of a compressed key, but its trailing byte is not the
	// compressed pubkey marker.
	ErrInvalidCompressionFlag = ErrorKind("ErrInvalidCompressionFlag")

	// ErrInvalidPrivateKey is returned when decoded key material is not a
	// valid scalar for the secp256k1 curve.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address or private key serialization error.
//
// It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
