// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// checkGenesis hashes the genesis block a network's factory function
// built and compares its hash and merkle root against literal values, so
// a mismatch dumps both sides with spew instead of just a hash string.
func checkGenesis(t *testing.T, params *Params, wantHash, wantMerkle string) {
	t.Helper()

	gotHash := params.GenesisBlock.BlockHash()
	wantHashVal := newHashFromStr(wantHash)
	if gotHash != wantHashVal {
		t.Fatalf("%s: genesis hash mismatch - got %s, want %s",
			params.Name, spew.Sdump(gotHash), spew.Sdump(wantHashVal))
	}

	gotMerkle := params.GenesisBlock.Header.MerkleRoot
	wantMerkleVal := newHashFromStr(wantMerkle)
	if gotMerkle != wantMerkleVal {
		t.Fatalf("%s: genesis merkle root mismatch - got %s, want %s",
			params.Name, spew.Sdump(gotMerkle), spew.Sdump(wantMerkleVal))
	}

	require.Equal(t, gotHash, params.GenesisHash)
	require.Len(t, params.GenesisBlock.Transactions, 1)
	require.Equal(t, wire.OutPoint{Index: 0xffffffff}, params.GenesisBlock.Transactions[0].TxIn[0].PreviousOutPoint)
}

func TestMainNetGenesisMatchesIndependentDerivation(t *testing.T) {
	checkGenesis(t, MainNetParams(),
		"000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f",
		"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
}

func TestTestNetGenesisMatchesIndependentDerivation(t *testing.T) {
	checkGenesis(t, TestNetParams(),
		"000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943",
		"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
}

func TestRegTestGenesisMatchesIndependentDerivation(t *testing.T) {
	params, err := RegTestParams()
	require.NoError(t, err)
	checkGenesis(t, params,
		"0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206",
		"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
}
