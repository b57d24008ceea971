// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package pow implements proof-of-work target arithmetic and difficulty
retargeting for a globd node: the classical Bitcoin retarget used
before the BTG hard fork, the LWMA retarget used after it, and
CheckProofOfWork.

The engine is deliberately decoupled from any concrete block-index
type. NextRequiredBits takes the current chain tip as a HeaderCtx, a
minimal interface over height/time/bits plus ancestor lookup, so this
package never needs to know how a caller stores or indexes its chain.
*/
package pow
