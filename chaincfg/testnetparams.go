// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// TestNetParams returns the consensus and network parameters for the
// bitcoin-global test network.
func TestNetParams() *Params {
	mustParsePreminePubkeys(testNetPreminePubkeys)

	genesis := newGenesisBlock(
		time.Unix(1296688602, 0),
		414098458,
		0x1d00ffff,
		1,
		50*btcutil.SatoshiPerBitcoin,
	)
	genesisHash := genesis.BlockHash()

	wantHash := newHashFromStr("000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943")
	if genesisHash != wantHash {
		panic("chaincfg: testnet genesis hash mismatch, got " + genesisHash.String())
	}
	wantMerkle := newHashFromStr("4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
	if genesis.Header.MerkleRoot != wantMerkle {
		panic("chaincfg: testnet genesis merkle root mismatch, got " + genesis.Header.MerkleRoot.String())
	}

	params := &Params{
		Consensus: ConsensusParams{
			SubsidyHalvingInterval:   210000,
			BIP16Exception:           newHashFromStr("00000000dd30457c001f4095d208cc1296b0eed002427aa599874af7a432b105"),
			BIP34Height:              21111,
			BIP34Hash:                newHashFromStr("0000000023b3a96d3484e5abb3755c413e7d41500f8e2a5c3f0dd01299cd8ef8"),
			BIP65Height:              581885,
			BIP66Height:              330776,
			CSVHeight:                770112,
			SegwitHeight:             834624,
			MinBIP9WarningHeight:     834624 + 2016,
			PowLimit:                 mustUint256FromHex("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
			PowLimitBits:             0x1d00ffff,
			PowTargetTimespan:        14 * 24 * 60 * 60,
			PowTargetSpacing:         10 * 60,
			AllowMinDifficultyBlocks: true,
			NoRetargeting:            false,
			RuleChangeActivationThreshold: 1512,
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber: 28,
					StartTime: 1199145601,
					Timeout:   1230767999,
				},
			},
			BTGHeight:                  1780318,
			BTGPremineWindow:           50,
			BTGPremineEnforceWhitelist: false,
			BTGPremineReward:           1000,
			MinimumChainWork:           mustUint256FromHex("0000000000000000000000000000000000000000000001495c1d5a01e2af8a23"),
			DefaultAssumeValid:         newHashFromStr("000000000000056c49030c174179b52a928c870e6e8a822c75973b7970cfbd01"),
			LwmaAveragingWindow:        lwmaAveragingWindow,
			LwmaAdjustedWeight:         lwmaAdjustedWeight,
			LwmaMinDenominator:         lwmaMinDenominator,
			LwmaSolvetimeLimitation:    lwmaSolvetimeLimitation,
		},

		Name:        "test",
		Net:         testNetMagic,
		DefaultPort: "18222",
		DNSSeeds: []DNSSeed{
			{Host: "test-dnsseed.bitcoin-global.io", HasFiltering: true},
			{Host: "test-dnsseed.bitcoin-global.co", HasFiltering: true},
			{Host: "globt-dnsseed.bitcoin-global.co", HasFiltering: true},
		},
		FixedSeeds: nil,

		GenesisBlock: genesis,
		GenesisHash:  genesisHash,

		AssumedBlockchainSize: 40,
		AssumedChainStateSize: 2,
		PruneAfterHeight:      1000,

		PubKeyHashAddrID: 111,
		ScriptHashAddrID: 196,
		PrivateKeyID:     239,
		HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xCF},
		HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},

		Bech32HRPSegwit: "globt",

		DefaultConsistencyChecks: false,
		RequireStandard:          false,
		IsTestChain:              true,

		Checkpoints: []Checkpoint{
			{Height: 546, Hash: hashPtr("000000002a936ca763904c3c35fce2f3556c559c0214345d31b1bcebf76acb70")},
		},

		ChainTxData: ChainTxData{
			Time:    1569741320,
			TxCount: 52318009,
			TxRate:  0.1517002392872353,
		},

		PreminePubkeys: testNetPreminePubkeys,
	}

	return params
}
