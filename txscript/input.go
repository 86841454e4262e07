// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// ScriptInput describes one of the standard input (signature) script forms.
// The set of implementations is closed; scripts which match none of them
// are reported as nonstandard by ParseScriptInput.
type ScriptInput interface {
	// Script returns the binary serialization of the input script.
	Script() []byte

	// standardInput restricts the set of implementations to this package.
	standardInput()
}

// PubKeyHashInput is an input script spending a pay-to-pubkey-hash output.
// It carries the signature and the serialized public key whose hash160
// matches the output being spent.
type PubKeyHashInput struct {
	Signature        []byte
	SerializedPubKey []byte
}

// Script returns the binary serialization of the input script:
//
//	<signature> <serialized pubkey>
func (s PubKeyHashInput) Script() []byte {
	script := addData(nil, s.Signature)
	return addData(script, s.SerializedPubKey)
}

func (PubKeyHashInput) standardInput() {}

// ScriptHashInput is an input script redeeming a pay-to-script-hash output.
// It carries the data pushes satisfying the redeem script followed by the
// redeem script itself.
type ScriptHashInput struct {
	Pushes [][]byte
	Redeem ScriptOutput
}

// Script returns the binary serialization of the input script: each leading
// push in order, followed by a push of the serialized redeem script.
func (s ScriptHashInput) Script() []byte {
	var script []byte
	for _, push := range s.Pushes {
		script = addData(script, push)
	}
	return addData(script, s.Redeem.Script())
}

func (ScriptHashInput) standardInput() {}

// isSerializedPubKey returns whether b has the shape of a serialized
// secp256k1 public key: 33 bytes starting with 0x02 or 0x03 for the
// compressed format, or 65 bytes starting with 0x04 for the uncompressed
// format.
func isSerializedPubKey(b []byte) bool {
	return (len(b) == 33 && (b[0] == 0x02 || b[0] == 0x03)) ||
		(len(b) == 65 && b[0] == 0x04)
}

// ParseScriptInput parses the binary serialization of a standard input
// script.
//
// A script of exactly two pushes where the second has the shape of a
// serialized public key is a pay-to-pubkey-hash spend.  Otherwise, a script
// of one or more pushes whose final push parses as a standard output script
// is a pay-to-script-hash redemption with that script as its redeem script.
// Anything else is reported with kind ErrNonStandardScript, or
// ErrMalformedScript when the pushes themselves cannot be parsed.
func ParseScriptInput(sigScript []byte) (ScriptInput, error) {
	pushes, err := extractPushes(sigScript)
	if err != nil {
		return nil, err
	}

	if len(pushes) == 2 && isSerializedPubKey(pushes[1]) {
		return PubKeyHashInput{
			Signature:        dupBytes(pushes[0]),
			SerializedPubKey: dupBytes(pushes[1]),
		}, nil
	}

	if len(pushes) > 0 {
		redeem, err := ParseScriptOutput(pushes[len(pushes)-1])
		if err == nil {
			in := ScriptHashInput{Redeem: redeem}
			for _, push := range pushes[:len(pushes)-1] {
				in.Pushes = append(in.Pushes, dupBytes(push))
			}
			return in, nil
		}
	}

	return nil, scriptError(ErrNonStandardScript, fmt.Sprintf("signature "+
		"script with %d pushes does not match any standard input form",
		len(pushes)))
}
