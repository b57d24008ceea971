// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"testing"

	"github.com/bitcoin-global/globd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// fakeHeader is a slice-backed HeaderCtx used to exercise
// NextRequiredBits without a real block index.
type fakeHeader struct {
	chain *fakeChain
	idx   int32
}

func (h fakeHeader) Height() int32 { return h.idx }
func (h fakeHeader) Time() int64   { return h.chain.headers[h.idx].time }
func (h fakeHeader) Bits() uint32  { return h.chain.headers[h.idx].bits }

func (h fakeHeader) Ancestor(height int32) HeaderCtx {
	if height < 0 || int(height) >= len(h.chain.headers) {
		return nil
	}
	return fakeHeader{chain: h.chain, idx: height}
}

type fakeChain struct {
	headers []struct {
		time int64
		bits uint32
	}
}

// newFakeChain builds a chain of n headers (heights 0..n-1) with a
// fixed spacing between timestamps and a constant starting bits value.
func newFakeChain(n int, spacing int64, bits uint32) *fakeChain {
	c := &fakeChain{}
	for i := 0; i < n; i++ {
		c.headers = append(c.headers, struct {
			time int64
			bits uint32
		}{time: int64(i) * spacing, bits: bits})
	}
	return c
}

func (c *fakeChain) tip() fakeHeader {
	return fakeHeader{chain: c, idx: int32(len(c.headers) - 1)}
}

func TestNextRequiredBitsNoRetargetingReturnsTipBits(t *testing.T) {
	params, err := chaincfg.RegTestParams()
	require.NoError(t, err)
	require.True(t, params.Consensus.NoRetargeting)

	chain := newFakeChain(10, params.Consensus.PowTargetSpacing, 0x207fffff)
	bits, err := NextRequiredBits(chain.tip(), chain.tip().Time()+int64(params.Consensus.PowTargetSpacing), params)
	require.NoError(t, err)
	require.Equal(t, uint32(0x207fffff), bits)
}

func TestNextRequiredBitsPreForkNonRetargetHeight(t *testing.T) {
	params := chaincfg.MainNetParams()
	spacing := params.Consensus.PowTargetSpacing

	// The next height, 2, is not a retarget boundary and
	// AllowMinDifficultyBlocks is false on mainnet, so the tip's own bits
	// carry forward.
	chain := newFakeChain(2, spacing, 0x1d00ffff)
	bits, err := NextRequiredBits(chain.tip(), chain.tip().Time()+spacing, params)
	require.NoError(t, err)
	require.Equal(t, uint32(0x1d00ffff), bits)
}

func TestNextRequiredBitsPreForkRetargetDispatchesToClassicalFormula(t *testing.T) {
	params := chaincfg.MainNetParams()
	spacing := params.Consensus.PowTargetSpacing
	interval := int(params.Consensus.PowTargetTimespan / spacing)

	// Build exactly `interval` blocks (0..interval-1) so the next
	// height (interval) lands on the classical retarget boundary.
	chain := newFakeChain(interval, spacing, 0x1d00ffff)
	tip := chain.tip()
	require.Equal(t, int32(interval-1), tip.Height())

	first := tip.Ancestor(tip.Height() - int32(interval-1))
	require.NotNil(t, first)
	want, err := bitcoinCalculateNextWorkRequired(tip, first.Time(), params)
	require.NoError(t, err)

	got, err := NextRequiredBits(tip, tip.Time()+spacing, params)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestNextRequiredBitsPremineWindowPinsToPowLimit(t *testing.T) {
	params, err := chaincfg.RegTestParams()
	require.NoError(t, err)
	// NoRetargeting is true by default on regtest. The premine-window
	// branch returns PowLimitBits without consulting it; it is forced off
	// here so the result does not depend on that flag.
	params.Consensus.NoRetargeting = false

	first := params.Consensus.BTGHeight
	chain := newFakeChain(int(first)+1, params.Consensus.PowTargetSpacing, 0x1e00ffff)
	tip := chain.tip()
	require.Equal(t, first, tip.Height())

	bits, err := NextRequiredBits(tip, tip.Time()+params.Consensus.PowTargetSpacing, params)
	require.NoError(t, err)
	require.Equal(t, params.Consensus.PowLimitBits, bits)
}

func TestLwmaCalculateNextWorkRequiredPanicsBelowWindow(t *testing.T) {
	params, err := chaincfg.RegTestParams()
	require.NoError(t, err)
	params.Consensus.NoRetargeting = false

	window := params.Consensus.LwmaAveragingWindow
	chain := newFakeChain(int(window), params.Consensus.PowTargetSpacing, 0x207fffff)

	require.Panics(t, func() {
		_, _ = lwmaCalculateNextWorkRequired(chain.tip(), params)
	})
}

func TestLwmaCalculateNextWorkRequiredStable(t *testing.T) {
	params, err := chaincfg.RegTestParams()
	require.NoError(t, err)
	params.Consensus.NoRetargeting = false

	window := params.Consensus.LwmaAveragingWindow
	n := int(window)*3 + 5
	chain := newFakeChain(n, params.Consensus.PowTargetSpacing, 0x1f00ffff)

	bits, err := lwmaCalculateNextWorkRequired(chain.tip(), params)
	require.NoError(t, err)

	target, negative, overflow := FromCompact(bits)
	require.False(t, negative)
	require.False(t, overflow)
	require.False(t, target.IsZero())

	powLimit := FromUint256(params.Consensus.PowLimit)
	require.True(t, target.Cmp(powLimit) <= 0)
}

func TestLwmaGetNextWorkRequiredMinDifficultyOnLongGap(t *testing.T) {
	params, err := chaincfg.RegTestParams()
	require.NoError(t, err)
	params.Consensus.NoRetargeting = false
	require.True(t, params.Consensus.AllowMinDifficultyBlocks)

	window := params.Consensus.LwmaAveragingWindow
	n := int(window) * 3
	chain := newFakeChain(n, params.Consensus.PowTargetSpacing, 0x1f00ffff)
	tip := chain.tip()

	farFuture := tip.Time() + params.Consensus.PowTargetSpacing*3
	bits, err := lwmaGetNextWorkRequired(tip, farFuture, params)
	require.NoError(t, err)
	require.Equal(t, params.Consensus.PowLimitBits, bits)
}

func TestCheckProofOfWorkValid(t *testing.T) {
	params := chaincfg.MainNetParams()
	require.True(t, CheckProofOfWork(params.GenesisHash, params.Consensus.PowLimitBits, params))
}

func TestCheckProofOfWorkRejectsOverflow(t *testing.T) {
	params := chaincfg.MainNetParams()
	require.False(t, CheckProofOfWork(params.GenesisHash, 0xff123456, params))
}

func TestCheckProofOfWorkRejectsLooserThanPowLimit(t *testing.T) {
	params := chaincfg.MainNetParams()
	// Encode a target looser than mainnet's PowLimit: a larger exponent
	// than the PowLimitBits encoding uses.
	require.False(t, CheckProofOfWork(params.GenesisHash, 0x2100ffff, params))
}

func TestCheckProofOfWorkRejectsHashAboveTarget(t *testing.T) {
	params := chaincfg.MainNetParams()
	var worstHash chainhash.Hash
	for i := range worstHash {
		worstHash[i] = 0xff
	}
	require.False(t, CheckProofOfWork(worstHash, params.Consensus.PowLimitBits, params))
}
