// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/koinsuite/koinutil"
)

// PayToAddrScript returns the standard output script which pays to the
// provided address: a pay-to-pubkey-hash script for a pubkey hash address
// and a pay-to-script-hash script for a script hash address.  The mapping
// is total and never fails.
func PayToAddrScript(addr koinutil.Address) ScriptOutput {
	if addr.Kind() == koinutil.KindScriptHash {
		return ScriptHashScript{Hash: *addr.Hash160()}
	}
	return PubKeyHashScript{Hash: *addr.Hash160()}
}

// OutputAddress returns the address an output script pays to, when it has
// one.
//
// Pay-to-pubkey-hash and pay-to-script-hash scripts map directly to their
// address variant.  A bare pay-to-pubkey script maps to the
// pay-to-pubkey-hash address derived by hashing the embedded serialized
// public key; the hash is recomputed since that script form does not store
// it.  Every other shape, including a pay-to-pubkey script whose embedded
// key is not a valid curve point, yields no address.  The absence of an
// address is reported through the boolean rather than an error since it is
// a normal outcome for nonstandard scripts.
func OutputAddress(out ScriptOutput) (koinutil.Address, bool) {
	switch out := out.(type) {
	case PubKeyHashScript:
		addr, err := koinutil.NewAddressPubKeyHash(out.Hash[:])
		if err != nil {
			return koinutil.Address{}, false
		}
		return addr, true

	case ScriptHashScript:
		addr, err := koinutil.NewAddressScriptHashFromHash(out.Hash[:])
		if err != nil {
			return koinutil.Address{}, false
		}
		return addr, true

	case PubKeyScript:
		if _, err := secp256k1.ParsePubKey(out.SerializedPubKey); err != nil {
			return koinutil.Address{}, false
		}
		hash := koinutil.Hash160(out.SerializedPubKey)
		addr, err := koinutil.NewAddressPubKeyHash(hash)
		if err != nil {
			return koinutil.Address{}, false
		}
		return addr, true
	}

	return koinutil.Address{}, false
}

// InputAddress returns the address of the output an input script spends,
// when it can be determined.
//
// A pay-to-pubkey-hash spend yields the signer's pubkey hash address,
// derived by hashing the pushed serialized public key.  A pay-to-script-hash
// redemption yields the script hash address computed from its embedded
// redeem script.  Every other shape yields no address.
func InputAddress(in ScriptInput) (koinutil.Address, bool) {
	switch in := in.(type) {
	case PubKeyHashInput:
		if _, err := secp256k1.ParsePubKey(in.SerializedPubKey); err != nil {
			return koinutil.Address{}, false
		}
		hash := koinutil.Hash160(in.SerializedPubKey)
		addr, err := koinutil.NewAddressPubKeyHash(hash)
		if err != nil {
			return koinutil.Address{}, false
		}
		return addr, true

	case ScriptHashInput:
		return koinutil.NewAddressScriptHash(in.Redeem.Script()), true
	}

	return koinutil.Address{}, false
}

// ExtractPkScriptAddr parses the binary serialization of an output script
// and returns the address it pays to.  A single kinded error reports both a
// script which cannot be parsed and one which parses but has no address
// mapping.
func ExtractPkScriptAddr(pkScript []byte) (koinutil.Address, error) {
	out, err := ParseScriptOutput(pkScript)
	if err != nil {
		return koinutil.Address{}, err
	}
	addr, ok := OutputAddress(out)
	if !ok {
		return koinutil.Address{}, scriptError(ErrNonStandardScript,
			"output script has no address mapping")
	}
	return addr, nil
}

// ExtractSigScriptAddr parses the binary serialization of an input script
// and returns the address of the output it spends.  A single kinded error
// reports both a script which cannot be parsed and one which parses but has
// no address mapping.
func ExtractSigScriptAddr(sigScript []byte) (koinutil.Address, error) {
	in, err := ParseScriptInput(sigScript)
	if err != nil {
		return koinutil.Address{}, err
	}
	addr, ok := InputAddress(in)
	if !ok {
		return koinutil.Address{}, scriptError(ErrNonStandardScript,
			"signature script has no address mapping")
	}
	return addr, nil
}
