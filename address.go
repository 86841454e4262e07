// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package koinutil

import (
	"fmt"

	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/koinsuite/koinutil/base58"
)

// AddressParams defines an interface that is used to provide the parameters
// required when encoding and decoding addresses.  These values are typically
// well-defined and unique per network.
type AddressParams interface {
	// AddrIDPubKeyHash returns the magic prefix byte for pay-to-pubkey-hash
	// addresses.
	AddrIDPubKeyHash() byte

	// AddrIDScriptHash returns the magic prefix byte for pay-to-script-hash
	// addresses.
	AddrIDScriptHash() byte
}

// AddressKind identifies the variant of an address.
type AddressKind uint8

// These constants define the supported address variants.  The set is closed:
// decoding fails on any prefix byte which does not map to one of them.
const (
	// KindPubKeyHash is an address which commits to the hash160 of a
	// serialized public key (P2PKH).
	KindPubKeyHash AddressKind = iota

	// KindScriptHash is an address which commits to the hash160 of a
	// serialized redeem script (P2SH).
	KindScriptHash
)

// String returns the name of the address variant.
func (k AddressKind) String() string {
	switch k {
	case KindPubKeyHash:
		return "pubkeyhash"
	case KindScriptHash:
		return "scripthash"
	}
	return fmt.Sprintf("unknown address kind (%d)", uint8(k))
}

// serializedAddrLen is the length of the binary serialization of an address:
// a single prefix byte followed by the 20-byte hash.
const serializedAddrLen = 1 + ripemd160.Size

// Address is a payment address.  It pairs one of the two supported address
// variants with the 20-byte hash the variant commits to.  The network an
// address is rendered for is intentionally not part of the value; every
// encoding and decoding operation takes the network parameters explicitly.
//
// Address values are immutable and comparable, so they may be compared with
// == and used directly as map keys.
type Address struct {
	kind AddressKind
	hash [ripemd160.Size]byte
}

// NewAddressPubKeyHash returns a pay-to-pubkey-hash address for the passed
// hash.  pkHash must be 20 bytes.
func NewAddressPubKeyHash(pkHash []byte) (Address, error) {
	if len(pkHash) != ripemd160.Size {
		str := fmt.Sprintf("pubkey hash is %d bytes, must be %d bytes",
			len(pkHash), ripemd160.Size)
		return Address{}, makeError(ErrMalformedAddress, str)
	}
	addr := Address{kind: KindPubKeyHash}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// NewAddressPubKeyHashFromKey returns the pay-to-pubkey-hash address for the
// passed public key.  The compressed flag selects which serialization of the
// public key is hashed and therefore changes the resulting address.
func NewAddressPubKeyHashFromKey(pubKey *secp256k1.PublicKey, compressed bool) Address {
	serialized := pubKey.SerializeUncompressed()
	if compressed {
		serialized = pubKey.SerializeCompressed()
	}
	addr := Address{kind: KindPubKeyHash}
	copy(addr.hash[:], Hash160(serialized))
	return addr
}

// NewAddressScriptHash returns the pay-to-script-hash address for the passed
// serialized redeem script.
func NewAddressScriptHash(serializedScript []byte) Address {
	addr := Address{kind: KindScriptHash}
	copy(addr.hash[:], Hash160(serializedScript))
	return addr
}

// NewAddressScriptHashFromHash returns a pay-to-script-hash address for the
// passed script hash.  scriptHash must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte) (Address, error) {
	if len(scriptHash) != ripemd160.Size {
		str := fmt.Sprintf("script hash is %d bytes, must be %d bytes",
			len(scriptHash), ripemd160.Size)
		return Address{}, makeError(ErrMalformedAddress, str)
	}
	addr := Address{kind: KindScriptHash}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// Kind returns the variant of the address.
func (a Address) Kind() AddressKind {
	return a.kind
}

// Hash160 returns the underlying array of the address hash.  This can be
// useful when an array is more appropriate than a slice (for example, when
// used as map keys).
func (a Address) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// ScriptAddress returns the raw bytes of the address to be used when
// inserting the address into a txout's script.
func (a Address) ScriptAddress() []byte {
	return a.hash[:]
}

// netID returns the prefix byte of the address variant for the given
// network.
func (a Address) netID(net AddressParams) byte {
	if a.kind == KindScriptHash {
		return net.AddrIDScriptHash()
	}
	return net.AddrIDPubKeyHash()
}

// Serialize returns the binary serialization of the address for the given
// network: the variant's prefix byte followed by the 20-byte hash.  The
// result is always exactly 21 bytes.
func (a Address) Serialize(net AddressParams) []byte {
	serialized := make([]byte, 0, serializedAddrLen)
	serialized = append(serialized, a.netID(net))
	return append(serialized, a.hash[:]...)
}

// ParseAddress deserializes an address from its binary serialization for the
// given network.  The first byte selects the address variant via the
// network's prefix bytes and the following 20 bytes are the hash.  Bytes
// beyond the hash are not consumed.
//
// ErrUnrecognizedPrefix is returned when the prefix byte matches neither
// configured prefix, and ErrMalformedAddress when too few bytes are present.
func ParseAddress(serialized []byte, net AddressParams) (Address, error) {
	if len(serialized) < serializedAddrLen {
		str := fmt.Sprintf("serialized address is %d bytes, need at least %d",
			len(serialized), serializedAddrLen)
		return Address{}, makeError(ErrMalformedAddress, str)
	}
	hash := serialized[1 : 1+ripemd160.Size]
	switch serialized[0] {
	case net.AddrIDPubKeyHash():
		return NewAddressPubKeyHash(hash)
	case net.AddrIDScriptHash():
		return NewAddressScriptHashFromHash(hash)
	}
	str := fmt.Sprintf("address prefix %#02x is not recognized for the "+
		"given network", serialized[0])
	return Address{}, makeError(ErrUnrecognizedPrefix, str)
}

// Encode returns the human-readable payment address for the given network.
// It is the base58 check encoding of the variant's prefix byte followed by
// the 20-byte hash.
func (a Address) Encode(net AddressParams) string {
	return base58.CheckEncode(a.hash[:], a.netID(net))
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if it is a valid encoding for the provided network.
//
// Every failure is reported as ErrInvalidAddress, regardless of whether it
// was caused by a character outside the base58 alphabet, a checksum
// mismatch, a payload of the wrong length, or an unrecognized prefix byte.
// Callers which need the distinction should use base58.CheckDecode and
// ParseAddress directly.
func DecodeAddress(addr string, net AddressParams) (Address, error) {
	payload, netID, err := base58.CheckDecode(addr)
	if err != nil {
		str := fmt.Sprintf("failed to decode address %q: %v", addr, err)
		return Address{}, makeError(ErrInvalidAddress, str)
	}
	if len(payload) != ripemd160.Size {
		str := fmt.Sprintf("decoded address %q payload is %d bytes, want %d",
			addr, len(payload), ripemd160.Size)
		return Address{}, makeError(ErrInvalidAddress, str)
	}

	serialized := make([]byte, 0, serializedAddrLen)
	serialized = append(serialized, netID)
	serialized = append(serialized, payload...)
	a, err := ParseAddress(serialized, net)
	if err != nil {
		str := fmt.Sprintf("failed to decode address %q: %v", addr, err)
		return Address{}, makeError(ErrInvalidAddress, str)
	}
	return a, nil
}
