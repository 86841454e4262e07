// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// CurrencyNet represents which network a message belongs to.
type CurrencyNet uint32

// Constants used to indicate the message network.
const (
	// MainNet represents the main network.
	MainNet CurrencyNet = 0xd9b4bef9

	// TestNet3 represents the test network (version 3).
	TestNet3 CurrencyNet = 0x0709110b

	// RegNet represents the regression test network.
	RegNet CurrencyNet = 0xdab5bffa

	// SimNet represents the simulation test network.
	SimNet CurrencyNet = 0x12141c16
)

// String returns the CurrencyNet in human-readable form.
func (n CurrencyNet) String() string {
	switch n {
	case MainNet:
		return "MainNet"
	case TestNet3:
		return "TestNet3"
	case RegNet:
		return "RegNet"
	case SimNet:
		return "SimNet"
	}
	return fmt.Sprintf("Unknown CurrencyNet (%d)", uint32(n))
}

// Params defines a network by its parameters.  These parameters may be used
// by applications to differentiate networks as well as addresses and keys
// for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net CurrencyNet

	// PubKeyHashAddrID is the magic prefix byte for pay-to-pubkey-hash
	// addresses.
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the magic prefix byte for pay-to-script-hash
	// addresses.
	ScriptHashAddrID byte

	// PrivateKeyID is the magic prefix byte for a WIF private key.
	PrivateKeyID byte
}

// AddrIDPubKeyHash returns the magic prefix byte for pay-to-pubkey-hash
// addresses.
//
// It is part of the koinutil.AddressParams interface.
func (p *Params) AddrIDPubKeyHash() byte {
	return p.PubKeyHashAddrID
}

// AddrIDScriptHash returns the magic prefix byte for pay-to-script-hash
// addresses.
//
// It is part of the koinutil.AddressParams interface.
func (p *Params) AddrIDScriptHash() byte {
	return p.ScriptHashAddrID
}

// PrivKeyID returns the magic prefix byte for a WIF private key.
//
// It is part of the koinutil.SecretKeyParams interface.
func (p *Params) PrivKeyID() byte {
	return p.PrivateKeyID
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name: "mainnet",
	Net:  MainNet,

	// Address encoding magics.
	PubKeyHashAddrID: 0x00, // starts with 1
	ScriptHashAddrID: 0x05, // starts with 3
	PrivateKeyID:     0x80, // starts with 5 (uncompressed) or K/L (compressed)
}

// TestNet3Params defines the network parameters for the test network
// (version 3).  Not to be confused with the regression test network, this
// network is sometimes simply called "testnet".
var TestNet3Params = Params{
	Name: "testnet3",
	Net:  TestNet3,

	// Address encoding magics.
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)
}

// RegNetParams defines the network parameters for the regression test
// network.  It shares the address encoding magics with the public test
// network, so keys and addresses are interchangeable between the two.
var RegNetParams = Params{
	Name: "regnet",
	Net:  RegNet,

	// Address encoding magics.
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)
}

// SimNetParams defines the network parameters for the simulation test
// network.  This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing.
var SimNetParams = Params{
	Name: "simnet",
	Net:  SimNet,

	// Address encoding magics.
	PubKeyHashAddrID: 0x3f, // starts with S
	ScriptHashAddrID: 0x7b, // starts with s
	PrivateKeyID:     0x64, // starts with 4 (uncompressed) or F (compressed)
}
