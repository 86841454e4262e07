// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript models the standard transaction scripts and their
relationship to payment addresses.

Rather than a general script interpreter, the package deals only with the
recognized standard forms.  Output scripts are represented by the closed
ScriptOutput set (pay-to-pubkey, pay-to-pubkey-hash, pay-to-script-hash) and
input scripts by the closed ScriptInput set (pay-to-pubkey-hash spends and
pay-to-script-hash redemptions).  Both sets serialize to and parse from
their binary script form.

The bridge functions relate scripts to addresses: PayToAddrScript builds the
output script paying to an address, while OutputAddress and InputAddress
recover the address a parsed script corresponds to when it has one.  Scripts
with no standard form have no address; this is a normal outcome, not an
error.
*/
package txscript
