// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines chain configuration parameters for the three
networks supported by a reference globd node: the main network, the
test network, and the regression test network.

Each network's immutable parameter set is produced by a factory
function (MainNetParams, TestNetParams, RegTestParams) rather than
built by hand, since several fields — most importantly the genesis
block hash and merkle root — are derived values that must match
literal, hard-coded constants. Library code that needs to remain
agnostic to which network it's operating on should accept a *Params
value as a function argument rather than reaching for package-level
globals; Select/Params in registry.go exist only for simple top-level
wiring in a main package, mirroring how the original node exposes a
single globally-selected chain via SelectParams/Params.

For more details on the difficulty retargeting rules that consume
these parameters, see the sibling pow package.
*/
package chaincfg
