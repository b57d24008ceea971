// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/holiman/uint256"
)

// BigTarget is a 256-bit unsigned proof-of-work target or cumulative
// work value. It wraps a fixed-width uint256.Int rather than
// math/big.Int, so every operation is constant-shape regardless of the
// host platform's arbitrary-precision library.
type BigTarget struct {
	v uint256.Int
}

// Zero is the zero BigTarget.
var Zero BigTarget

// FromUint256 wraps an existing uint256.Int value as a BigTarget,
// copying it so the result is independent of further mutation of v.
func FromUint256(v *uint256.Int) BigTarget {
	var t BigTarget
	t.v.Set(v)
	return t
}

// Uint256 returns a copy of t's value as a *uint256.Int, for storing
// into a ConsensusParams field or comparing against one.
func (t BigTarget) Uint256() *uint256.Int {
	v := t.v
	return &v
}

// FromHash interprets a block hash as the 256-bit magnitude used for
// proof-of-work comparisons: the hash's bytes, reversed into
// big-endian order, the same convention used to compare a block hash
// against its target.
func FromHash(h chainhash.Hash) BigTarget {
	var reversed [chainhash.HashSize]byte
	for i, b := range h {
		reversed[chainhash.HashSize-1-i] = b
	}
	var t BigTarget
	t.v.SetBytes(reversed[:])
	return t
}

// FromCompact decodes the compact ("nBits") representation used on
// the wire, following arith_uint256::SetCompact exactly: the top byte
// is an exponent, the low 23 bits are a mantissa, and bit 23 is a sign
// flag. negative reports whether that sign bit was set and the
// mantissa is still nonzero after the exponent's shift; overflow reports whether the encoded exponent/mantissa
// pair cannot be represented in 256 bits. Both flags exist purely so
// CheckProofOfWork can reject them; FromCompact itself never panics or
// errors on them.
func FromCompact(bits uint32) (target BigTarget, negative bool, overflow bool) {
	size := bits >> 24
	word := bits & 0x007fffff

	var v uint256.Int
	if size <= 3 {
		word >>= 8 * (3 - size)
		v.SetUint64(uint64(word))
	} else {
		v.SetUint64(uint64(word))
		v.Lsh(&v, uint(8*(size-3)))
	}

	negative = word != 0 && bits&0x00800000 != 0
	overflow = word != 0 && (size > 34 ||
		(word > 0xff && size > 33) ||
		(word > 0xffff && size > 32))

	return BigTarget{v: v}, negative, overflow
}

// ToCompact encodes t into the compact ("nBits") wire representation,
// following arith_uint256::GetCompact. t is assumed non-negative,
// which every BigTarget produced by this package always is; encoding
// the zero value returns 0.
func (t BigTarget) ToCompact() uint32 {
	if t.v.IsZero() {
		return 0
	}

	size := uint32((t.v.BitLen() + 7) / 8)

	var compact uint32
	if size <= 3 {
		compact = uint32(t.v.Uint64()) << (8 * (3 - size))
	} else {
		var shifted uint256.Int
		shifted.Rsh(&t.v, uint(8*(size-3)))
		compact = uint32(shifted.Uint64())
	}

	// If the mantissa's sign bit would be set, shift right a byte and
	// bump the exponent so the value still decodes as positive.
	if compact&0x00800000 != 0 {
		compact >>= 8
		size++
	}

	compact |= size << 24
	return compact
}

// Cmp compares t against other: -1, 0, or 1 as t is less than, equal
// to, or greater than other.
func (t BigTarget) Cmp(other BigTarget) int {
	return t.v.Cmp(&other.v)
}

// IsZero reports whether t is the zero target.
func (t BigTarget) IsZero() bool {
	return t.v.IsZero()
}

// MulInt64 returns t*n, saturating to the maximum representable
// uint256 value on overflow rather than wrapping, matching
// arith_uint256's operator*= semantics (256-bit fixed width, never
// silently truncated).
func (t BigTarget) MulInt64(n int64) BigTarget {
	if n <= 0 || t.v.IsZero() {
		return Zero
	}
	factor := new(uint256.Int).SetUint64(uint64(n))

	var result uint256.Int
	_, overflow := result.MulOverflow(&t.v, factor)
	if overflow {
		return BigTarget{v: *new(uint256.Int).Not(new(uint256.Int))}
	}
	return BigTarget{v: result}
}

// DivInt64 returns t/n using unsigned integer division. n must be
// positive; the difficulty retarget call sites that use DivInt64 never
// pass a non-positive divisor (timespans and LWMA denominators are
// always positive constants or clamped-positive accumulators).
func (t BigTarget) DivInt64(n int64) BigTarget {
	divisor := new(uint256.Int).SetUint64(uint64(n))
	var result uint256.Int
	result.Div(&t.v, divisor)
	return BigTarget{v: result}
}

// Add returns t+other.
func (t BigTarget) Add(other BigTarget) BigTarget {
	var result uint256.Int
	result.Add(&t.v, &other.v)
	return BigTarget{v: result}
}
