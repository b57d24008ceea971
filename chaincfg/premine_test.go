// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"
)

func TestIsPremineAddressScriptRoundRobin(t *testing.T) {
	params, err := RegTestParams()
	require.NoError(t, err)

	first := params.Consensus.BTGHeight
	for i, hexKey := range regTestPreminePubkeys {
		height := first + int32(i)
		raw, err := decodeHexPubkey(hexKey)
		require.NoError(t, err)

		builder := txscript.NewScriptBuilder()
		builder.AddData(raw)
		builder.AddOp(txscript.OP_CHECKSIG)
		script, err := builder.Script()
		require.NoError(t, err)

		require.True(t, params.IsPremineAddressScript(script, height))
	}
}

func TestIsPremineAddressScriptWraps(t *testing.T) {
	params, err := RegTestParams()
	require.NoError(t, err)

	first := params.Consensus.BTGHeight
	wrapHeight := first + int32(len(regTestPreminePubkeys))

	raw, err := decodeHexPubkey(regTestPreminePubkeys[0])
	require.NoError(t, err)
	builder := txscript.NewScriptBuilder()
	builder.AddData(raw)
	builder.AddOp(txscript.OP_CHECKSIG)
	script, err := builder.Script()
	require.NoError(t, err)

	require.True(t, params.IsPremineAddressScript(script, wrapHeight))
}

func TestIsPremineAddressScriptMismatch(t *testing.T) {
	params, err := RegTestParams()
	require.NoError(t, err)

	raw, err := decodeHexPubkey(regTestPreminePubkeys[1])
	require.NoError(t, err)
	builder := txscript.NewScriptBuilder()
	builder.AddData(raw)
	builder.AddOp(txscript.OP_CHECKSIG)
	script, err := builder.Script()
	require.NoError(t, err)

	require.False(t, params.IsPremineAddressScript(script, params.Consensus.BTGHeight))
}

func TestIsPremineAddressScriptOutsideWindowPanics(t *testing.T) {
	params, err := RegTestParams()
	require.NoError(t, err)

	require.Panics(t, func() {
		params.IsPremineAddressScript(nil, params.Consensus.BTGHeight-1)
	})
	require.Panics(t, func() {
		end := params.Consensus.BTGHeight + params.Consensus.BTGPremineWindow
		params.IsPremineAddressScript(nil, end)
	})
}
