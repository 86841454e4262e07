// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package koinutil

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/koinsuite/koinutil/base58"
)

// compressMagic is the magic byte appended to the serialized private key of
// a WIF string to indicate the associated public key should be serialized in
// the compressed format.
const compressMagic byte = 0x01

// SecretKeyParams defines an interface that is used to provide the network
// prefix byte required when encoding and decoding private keys in the
// wallet import format (WIF).
type SecretKeyParams interface {
	// PrivKeyID returns the magic prefix byte for a WIF private key.
	PrivKeyID() byte
}

// WIF contains the individual components described by the wallet import
// format (WIF).  A WIF string is typically used to represent a private key
// in a way that may be easily copied and imported into or exported from
// wallet software.  WIF strings may be decoded into this structure by
// calling DecodeWIF or created with a user-provided private key by calling
// NewWIF.
type WIF struct {
	// PrivKey is the private key being imported or exported.
	PrivKey *secp256k1.PrivateKey

	// CompressPubKey specifies whether the address controlled by the
	// imported or exported private key was created by hashing a compressed
	// serialization of the public key.  The flag is preserved bit-exactly
	// through encode and decode since it changes the derived address.
	CompressPubKey bool
}

// NewWIF creates a new WIF structure to export a private key as a string
// encoded in the wallet import format.  The compress argument specifies
// whether the address intended to be used with the key was created by
// hashing a compressed serialization of the public key.
func NewWIF(privKey *secp256k1.PrivateKey, compress bool) *WIF {
	return &WIF{PrivKey: privKey, CompressPubKey: compress}
}

// DecodeWIF creates a new WIF structure by decoding the string encoding of
// the wallet import format which is required to be for the provided
// network.
//
// The WIF string must be the base58 check encoding of the following byte
// sequence:
//
//   - 1 byte to identify the network
//   - 32 bytes of a binary-encoded, big-endian, zero-padded private key
//   - optional 1 byte (equal to 0x01) when the address being imported or
//     exported was created by hashing a compressed serialization of the
//     public key
//
// Errors from the base58 check decoding stage are returned as is.  Past
// that stage, ErrWrongNetwork is returned when the WIF is encoded for a
// different network, ErrInvalidCompressionFlag when a payload of the
// compressed length carries a trailing byte other than 0x01,
// ErrMalformedPrivateKey when the payload is of an impossible length, and
// ErrInvalidPrivateKey when the key material is not a valid scalar for the
// secp256k1 curve.
func DecodeWIF(wif string, net SecretKeyParams) (*WIF, error) {
	decoded, netID, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, err
	}
	if netID != net.PrivKeyID() {
		str := fmt.Sprintf("WIF network prefix %#02x does not match "+
			"required prefix %#02x", netID, net.PrivKeyID())
		return nil, makeError(ErrWrongNetwork, str)
	}

	var compress bool
	switch len(decoded) {
	case secp256k1.PrivKeyBytesLen:
	case secp256k1.PrivKeyBytesLen + 1:
		if decoded[secp256k1.PrivKeyBytesLen] != compressMagic {
			str := fmt.Sprintf("compressed WIF carries marker byte %#02x, "+
				"want %#02x", decoded[secp256k1.PrivKeyBytesLen],
				compressMagic)
			return nil, makeError(ErrInvalidCompressionFlag, str)
		}
		compress = true
	default:
		str := fmt.Sprintf("WIF payload is %d bytes which is not a valid "+
			"length", len(decoded))
		return nil, makeError(ErrMalformedPrivateKey, str)
	}

	var privKeyScalar secp256k1.ModNScalar
	overflow := privKeyScalar.SetByteSlice(decoded[:secp256k1.PrivKeyBytesLen])
	if overflow || privKeyScalar.IsZero() {
		str := "private key is not a valid scalar for the secp256k1 curve"
		return nil, makeError(ErrInvalidPrivateKey, str)
	}
	privKey := secp256k1.NewPrivateKey(&privKeyScalar)
	return &WIF{PrivKey: privKey, CompressPubKey: compress}, nil
}

// Encode creates the wallet import format string encoding of a WIF
// structure for the given network.  See DecodeWIF for a detailed breakdown
// of the format and requirements of a valid WIF string.
func (w *WIF) Encode(net SecretKeyParams) string {
	encodeLen := secp256k1.PrivKeyBytesLen
	if w.CompressPubKey {
		encodeLen++
	}

	a := make([]byte, 0, encodeLen)
	a = append(a, w.PrivKey.Serialize()...)
	if w.CompressPubKey {
		a = append(a, compressMagic)
	}
	return base58.CheckEncode(a, net.PrivKeyID())
}

// SerializePubKey serializes the associated public key of the imported or
// exported private key in either a compressed or uncompressed format
// depending on the state of the CompressPubKey field.
func (w *WIF) SerializePubKey() []byte {
	pk := w.PrivKey.PubKey()
	if w.CompressPubKey {
		return pk.SerializeCompressed()
	}
	return pk.SerializeUncompressed()
}

// PubKeyHashAddress returns the pay-to-pubkey-hash address controlled by
// the imported or exported private key, honoring the CompressPubKey field.
func (w *WIF) PubKeyHashAddress() Address {
	return NewAddressPubKeyHashFromKey(w.PrivKey.PubKey(), w.CompressPubKey)
}
