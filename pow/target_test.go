// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFromCompactToCompactRoundTrip(t *testing.T) {
	cases := []uint32{
		0x1d00ffff,
		0x207fffff,
		0x1b0404cb, // a typical real-world mainnet difficulty.
		0x01010000, // the value 1 in canonical form.
		0x02010000, // the value 256 in canonical form.
	}
	for _, bits := range cases {
		target, negative, overflow := FromCompact(bits)
		require.False(t, negative)
		require.False(t, overflow)
		require.Equal(t, bits, target.ToCompact())
	}
}

func TestFromCompactZeroMantissa(t *testing.T) {
	// A small exponent can shift the entire mantissa away; the result
	// is zero with neither flag set.
	target, negative, overflow := FromCompact(0x01003456)
	require.True(t, target.IsZero())
	require.False(t, negative)
	require.False(t, overflow)
}

func TestFromCompactDetectsNegative(t *testing.T) {
	_, negative, _ := FromCompact(0x01fedcba)
	require.True(t, negative)
}

func TestFromCompactDetectsOverflow(t *testing.T) {
	_, _, overflow := FromCompact(0xff123456)
	require.True(t, overflow)
}

func TestToCompactZero(t *testing.T) {
	require.Equal(t, uint32(0), Zero.ToCompact())
}

func TestMulDivRoundTripIsStable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bits := rapid.Uint32Range(0x03000001, 0x1d00ffff).Draw(rt, "bits")
		target, negative, overflow := FromCompact(bits)
		if negative || overflow || target.IsZero() {
			return
		}
		factor := rapid.Int64Range(1, 1_000_000).Draw(rt, "factor")
		divisor := rapid.Int64Range(1, 1_000_000).Draw(rt, "divisor")

		scaled := target.MulInt64(factor).DivInt64(divisor)
		// Scaling up then down should never produce a target larger
		// than the saturating maximum, and dividing a nonzero value by
		// a divisor no larger than the multiplier it undoes should
		// never silently produce zero when factor >= divisor.
		if factor >= divisor {
			require.False(rt, scaled.IsZero())
		}
	})
}

func TestMulInt64Saturates(t *testing.T) {
	target, _, _ := FromCompact(0x20ffffff)
	scaled := target.MulInt64(1 << 62)
	require.Equal(t, 0, scaled.Cmp(scaled)) // self-comparison sanity check.
	require.True(t, scaled.Cmp(target) >= 0)
}
