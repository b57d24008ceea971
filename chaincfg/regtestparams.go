// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/holiman/uint256"
	flags "github.com/jessevdk/go-flags"
)

// RegressionNetConfig is the regtest-only CLI surface this chain
// carries over from the original node: -segwitheight to move or
// disable segwit activation, and -vbparams to override a version-bits
// deployment's start/timeout window. Both flags are no-ops on
// main/test, matching the original, which only wires
// UpdateActivationParametersFromArgs into CRegTestParams.
type RegressionNetConfig struct {
	SegwitHeight      *int64   `long:"segwitheight" description:"Set the activation height of segwit; -1 to disable"`
	VersionBitsParams []string `long:"vbparams" description:"Override version bits (vbparams=deployment:start:end)"`
}

// RegTestParams returns the consensus and network parameters for the
// regression test network, applying any -segwitheight/-vbparams
// overrides found in args before the value is returned. This is the
// only point at which a Params value's consensus rules are mutated
// after being set by their factory function.
func RegTestParams(args ...string) (*Params, error) {
	mustParsePreminePubkeys(regTestPreminePubkeys)

	var cfg RegressionNetConfig
	parser := flags.NewParser(&cfg, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	consensus := ConsensusParams{
		SubsidyHalvingInterval:   150,
		BIP16Exception:           chainhash.Hash{},
		BIP34Height:              500,
		BIP34Hash:                chainhash.Hash{},
		BIP65Height:              1351,
		BIP66Height:              1251,
		CSVHeight:                432,
		SegwitHeight:             0,
		MinBIP9WarningHeight:     0,
		PowLimit:                 mustUint256FromHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowLimitBits:             0x207fffff,
		PowTargetTimespan:        14 * 24 * 60 * 60,
		PowTargetSpacing:         10 * 60,
		AllowMinDifficultyBlocks: true,
		NoRetargeting:            true,
		RuleChangeActivationThreshold: 108,
		MinerConfirmationWindow:       144,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber: 28,
				StartTime: 0,
				Timeout:   NoTimeout,
			},
		},
		BTGHeight:                  3000,
		BTGPremineWindow:           50,
		BTGPremineEnforceWhitelist: true,
		BTGPremineReward:           100,
		MinimumChainWork:           new(uint256.Int),
		DefaultAssumeValid:         chainhash.Hash{},
		LwmaAveragingWindow:        lwmaAveragingWindow,
		LwmaAdjustedWeight:         lwmaAdjustedWeight,
		LwmaMinDenominator:         lwmaMinDenominator,
		LwmaSolvetimeLimitation:    lwmaSolvetimeLimitation,
	}

	if err := updateActivationParametersFromArgs(&consensus, cfg); err != nil {
		return nil, err
	}

	genesis := newGenesisBlock(
		time.Unix(1296688602, 0),
		2,
		0x207fffff,
		1,
		50*btcutil.SatoshiPerBitcoin,
	)
	genesisHash := genesis.BlockHash()

	wantHash := newHashFromStr("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206")
	if genesisHash != wantHash {
		panic("chaincfg: regtest genesis hash mismatch, got " + genesisHash.String())
	}
	wantMerkle := newHashFromStr("4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
	if genesis.Header.MerkleRoot != wantMerkle {
		panic("chaincfg: regtest genesis merkle root mismatch, got " + genesis.Header.MerkleRoot.String())
	}

	params := &Params{
		Consensus: consensus,

		Name:        "regtest",
		Net:         regTestMagic,
		DefaultPort: "68222",
		DNSSeeds:    nil,
		FixedSeeds:  nil,

		GenesisBlock: genesis,
		GenesisHash:  genesisHash,

		AssumedBlockchainSize: 0,
		AssumedChainStateSize: 0,
		PruneAfterHeight:      1000,

		PubKeyHashAddrID: 111,
		ScriptHashAddrID: 196,
		PrivateKeyID:     239,
		HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xCF},
		HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},

		Bech32HRPSegwit: "globr",

		DefaultConsistencyChecks: true,
		RequireStandard:          true,
		IsTestChain:              true,

		Checkpoints: []Checkpoint{
			{Height: 0, Hash: hashPtr("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206")},
		},

		ChainTxData: ChainTxData{},

		PreminePubkeys: regTestPreminePubkeys,
	}

	return params, nil
}
