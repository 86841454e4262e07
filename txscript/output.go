// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/decred/dcrd/crypto/ripemd160"
)

// ScriptOutput describes one of the standard output script forms.  The set
// of implementations is closed; scripts which match none of them are
// reported as nonstandard by ParseScriptOutput.
type ScriptOutput interface {
	// Script returns the binary serialization of the output script.
	Script() []byte

	// standardOutput restricts the set of implementations to this package.
	standardOutput()
}

// PubKeyScript is a bare pay-to-pubkey output script.  It embeds the
// serialized public key, in either the compressed or uncompressed format.
type PubKeyScript struct {
	SerializedPubKey []byte
}

// Script returns the binary serialization of the output script:
//
//	<serialized pubkey> OP_CHECKSIG
func (s PubKeyScript) Script() []byte {
	script := make([]byte, 0, len(s.SerializedPubKey)+2)
	script = addData(script, s.SerializedPubKey)
	return append(script, OP_CHECKSIG)
}

func (PubKeyScript) standardOutput() {}

// PubKeyHashScript is a pay-to-pubkey-hash output script committing to the
// hash160 of a serialized public key.
type PubKeyHashScript struct {
	Hash [ripemd160.Size]byte
}

// Script returns the binary serialization of the output script:
//
//	OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
func (s PubKeyHashScript) Script() []byte {
	script := make([]byte, 0, 25)
	script = append(script, OP_DUP, OP_HASH160, OP_DATA_20)
	script = append(script, s.Hash[:]...)
	return append(script, OP_EQUALVERIFY, OP_CHECKSIG)
}

func (PubKeyHashScript) standardOutput() {}

// ScriptHashScript is a pay-to-script-hash output script committing to the
// hash160 of a serialized redeem script.
type ScriptHashScript struct {
	Hash [ripemd160.Size]byte
}

// Script returns the binary serialization of the output script:
//
//	OP_HASH160 <20-byte hash> OP_EQUAL
func (s ScriptHashScript) Script() []byte {
	script := make([]byte, 0, 23)
	script = append(script, OP_HASH160, OP_DATA_20)
	script = append(script, s.Hash[:]...)
	return append(script, OP_EQUAL)
}

func (ScriptHashScript) standardOutput() {}

// extractPubKeyHash extracts the pubkey hash from the passed script if it
// is a standard pay-to-pubkey-hash script.  It will return nil otherwise.
func extractPubKeyHash(script []byte) []byte {
	// A pay-to-pubkey-hash script is of the form:
	//  OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
	if len(script) == 25 &&
		script[0] == OP_DUP &&
		script[1] == OP_HASH160 &&
		script[2] == OP_DATA_20 &&
		script[23] == OP_EQUALVERIFY &&
		script[24] == OP_CHECKSIG {

		return script[3:23]
	}

	return nil
}

// extractScriptHash extracts the script hash from the passed script if it
// is a standard pay-to-script-hash script.  It will return nil otherwise.
func extractScriptHash(script []byte) []byte {
	// A pay-to-script-hash script is of the form:
	//  OP_HASH160 <20-byte hash> OP_EQUAL
	if len(script) == 23 &&
		script[0] == OP_HASH160 &&
		script[1] == OP_DATA_20 &&
		script[22] == OP_EQUAL {

		return script[2:22]
	}

	return nil
}

// extractPubKey extracts the serialized public key from the passed script
// if it is a standard pay-to-pubkey script.  It will return nil otherwise.
func extractPubKey(script []byte) []byte {
	// A pay-to-pubkey script is of one of the forms:
	//  OP_DATA_33 <33-byte compressed pubkey> OP_CHECKSIG
	//  OP_DATA_65 <65-byte uncompressed pubkey> OP_CHECKSIG
	if len(script) == 35 &&
		script[0] == OP_DATA_33 &&
		script[34] == OP_CHECKSIG &&
		(script[1] == 0x02 || script[1] == 0x03) {

		return script[1:34]
	}

	if len(script) == 67 &&
		script[0] == OP_DATA_65 &&
		script[66] == OP_CHECKSIG &&
		script[1] == 0x04 {

		return script[1:66]
	}

	return nil
}

// dupBytes returns a copy of the passed byte slice so parsed scripts do not
// alias the buffer they were parsed from.
func dupBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}

// ParseScriptOutput parses the binary serialization of an output script
// into its standard form.  An error with kind ErrNonStandardScript is
// returned when the script matches none of the recognized templates.
func ParseScriptOutput(script []byte) (ScriptOutput, error) {
	if hash := extractPubKeyHash(script); hash != nil {
		var out PubKeyHashScript
		copy(out.Hash[:], hash)
		return out, nil
	}

	if hash := extractScriptHash(script); hash != nil {
		var out ScriptHashScript
		copy(out.Hash[:], hash)
		return out, nil
	}

	if pubKey := extractPubKey(script); pubKey != nil {
		return PubKeyScript{SerializedPubKey: dupBytes(pubKey)}, nil
	}

	return nil, scriptError(ErrNonStandardScript,
		"script does not match any standard output form")
}
