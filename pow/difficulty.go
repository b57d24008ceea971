// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"errors"

	"github.com/bitcoin-global/globd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrMissingAncestor is returned when a HeaderCtx's Ancestor method
// returns nil for a height NextRequiredBits expected to exist. A
// well-behaved HeaderCtx should never do this for heights within its
// own chain, so seeing this error means the caller's HeaderCtx
// implementation disagrees with the height it reported.
var ErrMissingAncestor = errors.New("pow: ancestor lookup returned nil for an expected height")

// difficultyAdjustmentInterval is the classical retarget's block
// interval: PowTargetTimespan / PowTargetSpacing.
func difficultyAdjustmentInterval(params *chaincfg.Params) int32 {
	return int32(params.Consensus.PowTargetTimespan / params.Consensus.PowTargetSpacing)
}

// NextRequiredBits returns the compact target the block at
// tip.Height()+1 must satisfy, given it will carry timestamp
// candidateTime. It dispatches exactly as the original
// GetNextWorkRequired does: classical Bitcoin retarget pre-fork,
// pinned-to-PowLimit minimum difficulty during the premine window, and
// LWMA once the premine window has elapsed.
func NextRequiredBits(tip HeaderCtx, candidateTime int64, params *chaincfg.Params) (uint32, error) {
	height := tip.Height() + 1
	postFork := height >= params.Consensus.BTGHeight

	if !postFork {
		return bitcoinGetNextWorkRequired(tip, candidateTime, params)
	}
	if height < params.Consensus.BTGHeight+params.Consensus.BTGPremineWindow {
		return params.Consensus.PowLimitBits, nil
	}
	return lwmaGetNextWorkRequired(tip, candidateTime, params)
}

func bitcoinGetNextWorkRequired(tip HeaderCtx, candidateTime int64, params *chaincfg.Params) (uint32, error) {
	interval := difficultyAdjustmentInterval(params)
	nextHeight := tip.Height() + 1

	if nextHeight%interval != 0 {
		if params.Consensus.AllowMinDifficultyBlocks {
			if candidateTime > tip.Time()+params.Consensus.PowTargetSpacing*2 {
				return params.Consensus.PowLimitBits, nil
			}

			cursor := tip
			for {
				prev := cursor.Ancestor(cursor.Height() - 1)
				if prev == nil || cursor.Height()%interval == 0 || cursor.Bits() != params.Consensus.PowLimitBits {
					break
				}
				cursor = prev
			}
			return cursor.Bits(), nil
		}
		return tip.Bits(), nil
	}

	firstHeight := tip.Height() - (interval - 1)
	if firstHeight < 0 {
		return 0, ErrMissingAncestor
	}
	first := tip.Ancestor(firstHeight)
	if first == nil {
		return 0, ErrMissingAncestor
	}

	return bitcoinCalculateNextWorkRequired(tip, first.Time(), params)
}

func bitcoinCalculateNextWorkRequired(tip HeaderCtx, firstBlockTime int64, params *chaincfg.Params) (uint32, error) {
	if params.Consensus.NoRetargeting {
		return tip.Bits(), nil
	}

	actualTimespan := tip.Time() - firstBlockTime
	targetTimespan := params.Consensus.PowTargetTimespan
	if actualTimespan < targetTimespan/4 {
		actualTimespan = targetTimespan / 4
	}
	if actualTimespan > targetTimespan*4 {
		actualTimespan = targetTimespan * 4
	}

	powLimit := FromUint256(params.Consensus.PowLimit)

	target, _, _ := FromCompact(tip.Bits())
	target = target.MulInt64(actualTimespan)
	target = target.DivInt64(targetTimespan)

	if target.Cmp(powLimit) > 0 {
		target = powLimit
	}
	return target.ToCompact(), nil
}

func lwmaGetNextWorkRequired(tip HeaderCtx, candidateTime int64, params *chaincfg.Params) (uint32, error) {
	if params.Consensus.AllowMinDifficultyBlocks &&
		candidateTime > tip.Time()+params.Consensus.PowTargetSpacing*2 {
		return params.Consensus.PowLimitBits, nil
	}
	return lwmaCalculateNextWorkRequired(tip, params)
}

func lwmaCalculateNextWorkRequired(tip HeaderCtx, params *chaincfg.Params) (uint32, error) {
	if params.Consensus.NoRetargeting {
		return tip.Bits(), nil
	}

	height := tip.Height() + 1
	consensus := &params.Consensus
	targetSpacing := consensus.PowTargetSpacing
	window := consensus.LwmaAveragingWindow
	if int64(height) <= window {
		panic("pow: lwmaCalculateNextWorkRequired called below the averaging window height")
	}
	weight := consensus.LwmaAdjustedWeight
	minDenominator := consensus.LwmaMinDenominator
	limitSolvetime := consensus.LwmaSolvetimeLimitation

	sumTarget := Zero
	var t, j int64

	for i := int64(height) - window; i < int64(height); i++ {
		block := tip.Ancestor(int32(i))
		if block == nil {
			return 0, ErrMissingAncestor
		}
		prev := tip.Ancestor(int32(i - 1))
		if prev == nil {
			return 0, ErrMissingAncestor
		}

		solvetime := block.Time() - prev.Time()
		if limitSolvetime && solvetime > 6*targetSpacing {
			solvetime = 6 * targetSpacing
		}

		j++
		t += solvetime * j

		target, _, _ := FromCompact(block.Bits())
		sumTarget = sumTarget.Add(target.DivInt64(weight * window * window))
	}

	if t < window*weight/minDenominator {
		t = window * weight / minDenominator
	}

	powLimit := FromUint256(consensus.PowLimit)
	nextTarget := sumTarget.MulInt64(t)
	if nextTarget.Cmp(powLimit) > 0 {
		nextTarget = powLimit
	}

	return nextTarget.ToCompact(), nil
}

// CheckProofOfWork reports whether hash satisfies the target encoded
// by bits, given params's PowLimit ceiling. A malformed bits value
// (negative, zero, overflowing, or looser than PowLimit) is rejected
// the same as a hash that simply doesn't meet the target: this
// function never errors, since any of these conditions just means the
// candidate block is invalid, not that the caller misused the API.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, params *chaincfg.Params) bool {
	target, negative, overflow := FromCompact(bits)
	if negative || overflow || target.IsZero() {
		return false
	}
	if target.Cmp(FromUint256(params.Consensus.PowLimit)) > 0 {
		return false
	}
	return FromHash(hash).Cmp(target) <= 0
}
