// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines network parameters.

Each supported network is described by a read-only Params instance carrying
the magic prefix bytes used to distinguish addresses and private keys for
one network from those intended for use on another.  The parameters are
always passed explicitly to the encoding and decoding functions which need
them; there is no process-wide current network.

Callers running against the main network will typically take the address of
MainNetParams.  Params values are never mutated after package init, so a
single instance may be shared freely across goroutines.
*/
package chaincfg
