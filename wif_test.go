// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package koinutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/koinsuite/koinutil/base58"
	"github.com/koinsuite/koinutil/chaincfg"
)

// TestEncodeDecodeWIF ensures private keys encode to their pinned WIF
// strings and the strings decode back to the same key and compression
// preference.
func TestEncodeDecodeWIF(t *testing.T) {
	// The generator point scalar 1 and an arbitrary key.
	k1 := hexToBytes("0000000000000000000000000000000000000000000000000000000000000001")
	k2 := hexToBytes("dda35a1488fb97b6eb3fe6e9ef2a25814e396fb5dc295fe994b96789b21a0398")

	tests := []struct {
		name     string
		priv     []byte
		compress bool
		net      SecretKeyParams
		encoded  string
	}{{
		name:     "mainnet uncompressed scalar 1",
		priv:     k1,
		compress: false,
		net:      &chaincfg.MainNetParams,
		encoded:  "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf",
	}, {
		name:     "mainnet compressed scalar 1",
		priv:     k1,
		compress: true,
		net:      &chaincfg.MainNetParams,
		encoded:  "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn",
	}, {
		name:     "testnet uncompressed scalar 1",
		priv:     k1,
		compress: false,
		net:      &chaincfg.TestNet3Params,
		encoded:  "91avARGdfge8E4tZfYLoxeJ5sGBdNJQH4kvjJoQFacbgwmaKkrx",
	}, {
		name:     "testnet compressed scalar 1",
		priv:     k1,
		compress: true,
		net:      &chaincfg.TestNet3Params,
		encoded:  "cMahea7zqjxrtgAbB7LSGbcQUr1uX1ojuat9jZodMN87JcbXMTcA",
	}, {
		name:     "mainnet compressed",
		priv:     k2,
		compress: true,
		net:      &chaincfg.MainNetParams,
		encoded:  "L4eYeFRdR5rgwjwohNeWR6cVu91R37nW8K2z88io8u3XdHiq8bJx",
	}, {
		name:     "testnet uncompressed",
		priv:     k2,
		compress: false,
		net:      &chaincfg.TestNet3Params,
		encoded:  "93GXcP5BqkAxXrV7N2EjmjAeGwfvrX7ALLXTnfZExxtn4QXMjjs",
	}}

	for _, test := range tests {
		priv := secp256k1.PrivKeyFromBytes(test.priv)
		wif := NewWIF(priv, test.compress)

		if got := wif.Encode(test.net); got != test.encoded {
			t.Errorf("%s: Encode: got %q, want %q", test.name, got,
				test.encoded)
			continue
		}

		decoded, err := DecodeWIF(test.encoded, test.net)
		if err != nil {
			t.Errorf("%s: DecodeWIF: unexpected error: %v", test.name, err)
			continue
		}
		if !bytes.Equal(decoded.PrivKey.Serialize(), test.priv) {
			t.Errorf("%s: DecodeWIF: got key %x, want %x", test.name,
				decoded.PrivKey.Serialize(), test.priv)
		}
		if decoded.CompressPubKey != test.compress {
			t.Errorf("%s: DecodeWIF: got compress %v, want %v", test.name,
				decoded.CompressPubKey, test.compress)
		}
	}
}

// TestWIFPubKey ensures the public key serialization honors the recorded
// compression preference and that the derived pubkey hash address matches
// the pinned encodings for both serialized forms of the same key.
func TestWIFPubKey(t *testing.T) {
	k1 := hexToBytes("0000000000000000000000000000000000000000000000000000000000000001")
	priv := secp256k1.PrivKeyFromBytes(k1)

	compressed := NewWIF(priv, true)
	serialized := compressed.SerializePubKey()
	wantPub := hexToBytes("0279be667ef9dcbbac55a06295ce870b07029bfc" +
		"db2dce28d959f2815b16f81798")
	if !bytes.Equal(serialized, wantPub) {
		t.Fatalf("SerializePubKey compressed: got %x, want %x", serialized,
			wantPub)
	}
	const wantCompressedAddr = "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	addr := compressed.PubKeyHashAddress()
	if got := addr.Encode(&chaincfg.MainNetParams); got != wantCompressedAddr {
		t.Fatalf("PubKeyHashAddress compressed: got %q, want %q", got,
			wantCompressedAddr)
	}

	uncompressed := NewWIF(priv, false)
	serialized = uncompressed.SerializePubKey()
	if len(serialized) != 65 || serialized[0] != 0x04 {
		t.Fatalf("SerializePubKey uncompressed: got %d bytes with leading "+
			"byte %#02x", len(serialized), serialized[0])
	}
	const wantUncompressedAddr = "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm"
	addr = uncompressed.PubKeyHashAddress()
	if got := addr.Encode(&chaincfg.MainNetParams); got != wantUncompressedAddr {
		t.Fatalf("PubKeyHashAddress uncompressed: got %q, want %q", got,
			wantUncompressedAddr)
	}
}

// TestDecodeWIFErrors ensures each WIF decoding failure is reported with
// its own independently detectable error.
func TestDecodeWIFErrors(t *testing.T) {
	k1 := hexToBytes("0000000000000000000000000000000000000000000000000000000000000001")

	// Payload of the correct shape under the wrong prefix byte.
	wrongNet := NewWIF(secp256k1.PrivKeyFromBytes(k1), true).
		Encode(&chaincfg.MainNetParams)

	// 32-byte scalar followed by a byte other than the compressed pubkey
	// marker.
	badMarker := base58.CheckEncode(append(append([]byte{}, k1...), 0x02),
		chaincfg.MainNetParams.PrivateKeyID)

	// Bad checksum, built without CheckEncode so the failure is guaranteed:
	// prefix, 32-byte scalar, and four zero checksum bytes.
	badChecksum := make([]byte, 0, 37)
	badChecksum = append(badChecksum, chaincfg.MainNetParams.PrivateKeyID)
	badChecksum = append(badChecksum, k1...)
	badChecksum = append(badChecksum, 0, 0, 0, 0)

	tests := []struct {
		name string
		wif  string
		net  SecretKeyParams
		err  error
	}{{
		name: "wrong network",
		wif:  wrongNet,
		net:  &chaincfg.TestNet3Params,
		err:  ErrWrongNetwork,
	}, {
		name: "payload too short",
		wif: base58.CheckEncode(make([]byte, 31),
			chaincfg.MainNetParams.PrivateKeyID),
		err: ErrMalformedPrivateKey,
	}, {
		name: "payload too long",
		wif: base58.CheckEncode(make([]byte, 34),
			chaincfg.MainNetParams.PrivateKeyID),
		err: ErrMalformedPrivateKey,
	}, {
		name: "bad compression marker",
		wif:  badMarker,
		err:  ErrInvalidCompressionFlag,
	}, {
		name: "zero scalar",
		wif: base58.CheckEncode(make([]byte, 32),
			chaincfg.MainNetParams.PrivateKeyID),
		err: ErrInvalidPrivateKey,
	}, {
		name: "scalar exceeds the group order",
		wif: base58.CheckEncode(bytes.Repeat([]byte{0xff}, 32),
			chaincfg.MainNetParams.PrivateKeyID),
		err: ErrInvalidPrivateKey,
	}, {
		name: "bad checksum",
		wif:  base58.Encode(badChecksum),
		err:  base58.ErrChecksum,
	}, {
		name: "character outside the alphabet",
		wif:  "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuD0",
		err:  base58.ErrInvalidAlphabet,
	}}

	for _, test := range tests {
		net := test.net
		if net == nil {
			net = &chaincfg.MainNetParams
		}
		_, err := DecodeWIF(test.wif, net)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: DecodeWIF(%q): got error %v, want %v", test.name,
				test.wif, err, test.err)
		}
	}
}
