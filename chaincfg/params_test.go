// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMainNetGenesis(t *testing.T) {
	params := MainNetParams()
	require.Equal(t, "main", params.Name)
	require.Equal(t, int32(638592), params.Consensus.BTGHeight)
	require.Len(t, params.PreminePubkeys, 100)
	require.Equal(t, uint32(0x1d00ffff), params.Consensus.PowLimitBits)
	require.Equal(t, "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", params.GenesisHash.String())
}

func TestTestNetGenesis(t *testing.T) {
	params := TestNetParams()
	require.Equal(t, "test", params.Name)
	require.Len(t, params.PreminePubkeys, 40)
	require.True(t, params.Consensus.AllowMinDifficultyBlocks)
	require.Equal(t, "000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943", params.GenesisHash.String())
}

func TestRegTestGenesisDefault(t *testing.T) {
	params, err := RegTestParams()
	require.NoError(t, err)
	require.Equal(t, "regtest", params.Name)
	require.Len(t, params.PreminePubkeys, 5)
	require.True(t, params.Consensus.NoRetargeting)
	require.Equal(t, int32(0), params.Consensus.SegwitHeight)
	require.Equal(t, "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206", params.GenesisHash.String())
}

func TestRegTestSegwitHeightOverride(t *testing.T) {
	params, err := RegTestParams("--segwitheight=500")
	require.NoError(t, err)
	require.Equal(t, int32(500), params.Consensus.SegwitHeight)
}

func TestRegTestSegwitDisabled(t *testing.T) {
	params, err := RegTestParams("--segwitheight=-1")
	require.NoError(t, err)
	require.Equal(t, int32(math.MaxInt32), params.Consensus.SegwitHeight)
}

func TestRegTestSegwitHeightOutOfRange(t *testing.T) {
	_, err := RegTestParams("--segwitheight=99999999999")
	require.Error(t, err)
}

func TestRegTestVersionBitsOverride(t *testing.T) {
	params, err := RegTestParams("--vbparams=segwit:10:20")
	require.NoError(t, err)
	require.Equal(t, int64(10), params.Consensus.Deployments[DeploymentSegwit].StartTime)
	require.Equal(t, int64(20), params.Consensus.Deployments[DeploymentSegwit].Timeout)
}

func TestRegTestVersionBitsMalformed(t *testing.T) {
	_, err := RegTestParams("--vbparams=segwit:10")
	require.Error(t, err)
}

func TestRegTestVersionBitsUnknownDeployment(t *testing.T) {
	_, err := RegTestParams("--vbparams=notadeployment:10:20")
	require.Error(t, err)
}

func TestParamsMustBeSelectedBeforeUse(t *testing.T) {
	selected = nil
	require.Panics(t, func() { Params() })
}

func TestSelectUnknownNet(t *testing.T) {
	err := Select("doesnotexist")
	require.ErrorIs(t, err, ErrUnknownNet)
}

func TestSelectMain(t *testing.T) {
	require.NoError(t, Select("main"))
	require.Equal(t, "main", Params().Name)
}
