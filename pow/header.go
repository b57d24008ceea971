// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

// HeaderCtx is the minimal view NextRequiredBits needs of a block
// header and its position in the chain. It is supplied by the caller
// rather than looked up internally, so this package never assumes a
// particular chain-index data structure and never retains a reference
// past the call that received it.
type HeaderCtx interface {
	// Height is this header's height, with the genesis block at 0.
	Height() int32

	// Time is this header's timestamp, in Unix seconds.
	Time() int64

	// Bits is this header's compact-encoded target.
	Bits() uint32

	// Ancestor returns the header at height on the chain this header
	// is part of, or nil if height is out of range. Calling Ancestor
	// with this header's own height returns this header.
	Ancestor(height int32) HeaderCtx
}
