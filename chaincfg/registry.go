// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownNet is returned by Select for a network name other than
// "main", "test", or "regtest".
var ErrUnknownNet = errors.New("chaincfg: unknown network")

// ErrParamsNotSelected is the panic value used by Params when Select
// has not yet been called. Like the original node's
// assert(globalChainParams), this is a programmer error: a main
// package is expected to call Select exactly once during startup
// before any other code asks for the active network's parameters.
var ErrParamsNotSelected = errors.New("chaincfg: Params called before Select")

var selected *Params

// Select chooses the active network by name ("main", "test", or
// "regtest") and makes it available through Params. extraArgs is
// forwarded to RegTestParams and ignored for the other two networks.
// Select also registers the network's address prefixes and HD key IDs
// via Register, unless they were already registered by an earlier
// call; ErrDuplicateNet from a repeat Select of the same network is
// not an error here, since re-selecting the same network is harmless.
func Select(name string, extraArgs ...string) error {
	var params *Params
	switch name {
	case "main":
		params = MainNetParams()
	case "test":
		params = TestNetParams()
	case "regtest":
		regtestParams, err := RegTestParams(extraArgs...)
		if err != nil {
			return err
		}
		params = regtestParams
	default:
		return ErrUnknownNet
	}

	if err := Register(params); err != nil && !errors.Is(err, ErrDuplicateNet) {
		return err
	}
	selected = params
	return nil
}

// Params returns the network selected by the most recent call to
// Select. It panics if Select has not been called, mirroring the
// original node's assert(globalChainParams): asking for the active
// network before one has been chosen is always a programming mistake,
// never a recoverable runtime condition.
func Params() *Params {
	if selected == nil {
		panic(ErrParamsNotSelected)
	}
	return selected
}

// updateActivationParametersFromArgs applies cfg's -segwitheight and
// -vbparams overrides to consensus, translating
// CRegTestParams::UpdateActivationParametersFromArgs.
func updateActivationParametersFromArgs(consensus *ConsensusParams, cfg RegressionNetConfig) error {
	if cfg.SegwitHeight != nil {
		height := *cfg.SegwitHeight
		if height < -1 || height >= math.MaxInt32 {
			return fmt.Errorf("activation height %d for segwit is out of valid range; use -1 to disable segwit", height)
		}
		if height == -1 {
			log.Info("Segwit disabled for testing")
			height = math.MaxInt32
		}
		consensus.SegwitHeight = int32(height)
	}

	for _, deployment := range cfg.VersionBitsParams {
		parts := strings.Split(deployment, ":")
		if len(parts) != 3 {
			return errors.New("version bits parameters malformed, expecting deployment:start:end")
		}

		startTime, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid start time (%s)", parts[1])
		}
		timeout, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timeout (%s)", parts[2])
		}
		pos, ok := deploymentByName(parts[0])
		if !ok {
			return fmt.Errorf("invalid deployment (%s)", parts[0])
		}

		consensus.Deployments[pos].StartTime = startTime
		consensus.Deployments[pos].Timeout = timeout
		log.Infof("Setting version bits activation parameters for %s to start=%d, timeout=%d",
			parts[0], startTime, timeout)
	}
	return nil
}
