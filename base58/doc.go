// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides base58-check encoding and decoding.

The plain alphabet mapping is delegated to the widely-used modified base58
alphabet codec.  On top of it, CheckEncode and CheckDecode add a network
prefix byte and a 4-byte integrity checksum formed from the first four bytes
of the double SHA256 of the versioned payload.  This exact construction is
required for interoperability with existing chain data.
*/
package base58
