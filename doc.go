// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package koinutil provides convenience functions and types for working with
addresses, private keys, and amounts.

The package centers on the Address type, which pairs one of the two
supported address variants (pay-to-pubkey-hash and pay-to-script-hash) with
the 20-byte hash it commits to.  Addresses convert to and from their
human-readable base58-check text form and their 21-byte binary form, both of
which depend on per-network prefix bytes supplied through the AddressParams
interface.  The WIF type provides the analogous wallet import format
encoding for private keys.

All functions in this package are pure: they never perform I/O, retain no
state between calls, and are safe for concurrent use.
*/
package koinutil
