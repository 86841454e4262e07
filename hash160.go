// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package koinutil

import (
	"crypto/sha256"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(b []byte) []byte {
	h := sha256.Sum256(b)
	hasher := ripemd160.New()
	hasher.Write(h[:])
	return hasher.Sum(nil)
}
