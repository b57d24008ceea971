// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MainNetParams returns the consensus and network parameters for the
// main bitcoin-global network. Every derived value (GenesisBlock,
// GenesisHash) is computed here and asserted against the literal
// values recorded in the original chain's source rather than simply
// hard-coded, so a mismatch surfaces immediately as a panic instead of
// silently diverging from consensus.
func MainNetParams() *Params {
	mustParsePreminePubkeys(mainNetPreminePubkeys)

	genesis := newGenesisBlock(
		time.Unix(1231006505, 0),
		2083236893,
		0x1d00ffff,
		1,
		50*btcutil.SatoshiPerBitcoin,
	)
	genesisHash := genesis.BlockHash()

	wantHash := newHashFromStr("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f")
	if genesisHash != wantHash {
		panic("chaincfg: mainnet genesis hash mismatch, got " + genesisHash.String())
	}
	wantMerkle := newHashFromStr("4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
	if genesis.Header.MerkleRoot != wantMerkle {
		panic("chaincfg: mainnet genesis merkle root mismatch, got " + genesis.Header.MerkleRoot.String())
	}

	params := &Params{
		Consensus: ConsensusParams{
			SubsidyHalvingInterval: 210000,
			BIP16Exception:         newHashFromStr("00000000000002dc756eebf4f49723ed8d30cc28a5f108eb94b1ba88ac4f9c22"),
			BIP34Height:            227931,
			BIP34Hash:              newHashFromStr("000000000000024b89b42a942fe0d9fea3bb44ab7bd1b19115dd6a759c0808b8"),
			BIP65Height:            388381,
			BIP66Height:            363725,
			CSVHeight:              419328,
			SegwitHeight:           481824,
			MinBIP9WarningHeight:   481824 + 2016,
			PowLimit:               mustUint256FromHex("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
			PowLimitBits:           0x1d00ffff,
			PowTargetTimespan:      14 * 24 * 60 * 60,
			PowTargetSpacing:       10 * 60,
			AllowMinDifficultyBlocks: false,
			NoRetargeting:            false,
			RuleChangeActivationThreshold: 1916,
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber: 28,
					StartTime: 1199145601,
					Timeout:   1230767999,
				},
			},
			BTGHeight:                  638592,
			BTGPremineWindow:           100,
			BTGPremineEnforceWhitelist: true,
			BTGPremineReward:           1000,
			MinimumChainWork:           mustUint256FromHex("00000000000000000000000000000000000000000e1ab5ec9348e9f4b8eb8154"),
			DefaultAssumeValid:         newHashFromStr("0000000000000000000f2adce67e49b0b6bdeb9de8b7c3d7e93b21e7fc1e819d"),
			LwmaAveragingWindow:        lwmaAveragingWindow,
			LwmaAdjustedWeight:         lwmaAdjustedWeight,
			LwmaMinDenominator:         lwmaMinDenominator,
			LwmaSolvetimeLimitation:    lwmaSolvetimeLimitation,
		},

		Name:        "main",
		Net:         mainNetMagic,
		DefaultPort: "8222",
		DNSSeeds: []DNSSeed{
			{Host: "seed.bitcoin-global.dev", HasFiltering: true},
			{Host: "dnsseed.bitcoin-global.io", HasFiltering: true},
			{Host: "dnsseed.bitcoin-global.co", HasFiltering: true},
		},
		FixedSeeds: nil,

		GenesisBlock: genesis,
		GenesisHash:  genesisHash,

		AssumedBlockchainSize: 320,
		AssumedChainStateSize: 4,
		PruneAfterHeight:      100000,

		PubKeyHashAddrID: 38,
		ScriptHashAddrID: 23,
		PrivateKeyID:     128,
		HDPublicKeyID:    [4]byte{0x04, 0x88, 0xB2, 0x1E},
		HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xAD, 0xE4},

		Bech32HRPSegwit: "glob",

		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		IsTestChain:              false,

		Checkpoints: []Checkpoint{
			{Height: 11111, Hash: hashPtr("0000000069e244f73d78e8fd29ba2fd2ed618bd6fa2ee92559f542fdb26e7c1d")},
			{Height: 33333, Hash: hashPtr("000000002dd5588a74784eaa7ab0507a18ad16a236e7b1ce69f00d7ddfb5d0a6")},
			{Height: 74000, Hash: hashPtr("0000000000573993a3c9e41ce34471c079dcf5f52a0e824a81e7f953b8661a20")},
			{Height: 105000, Hash: hashPtr("00000000000291ce28027faea320c8d2b054b2e0fe44a773f3eefb151d6bdc97")},
			{Height: 134444, Hash: hashPtr("00000000000005b12ffd4cd315cd34ffd4a594f430ac814c91184a0d42d2b0fe")},
			{Height: 168000, Hash: hashPtr("000000000000099e61ea72015e79632f216fe6cb33d7899acb35b75c8303b763")},
			{Height: 193000, Hash: hashPtr("000000000000059f452a5f7340de6682a977387c17010ff6e6c3bd83ca8b1317")},
			{Height: 210000, Hash: hashPtr("000000000000048b95347e83192f69cf0366076336c639f9b7228e9ba171342e")},
			{Height: 216116, Hash: hashPtr("00000000000001b4f4b433e81ee46494af945cf96014816a4e2370f11b23df4e")},
			{Height: 225430, Hash: hashPtr("00000000000001c108384350f74090433e7fcf79a606b8e797f065b130575932")},
			{Height: 250000, Hash: hashPtr("000000000000003887df1f29024b06fc2200b55f8af8f35453d7be294df2d214")},
			{Height: 279000, Hash: hashPtr("0000000000000001ae8c72a0b0c301f67e3afca10e819efa9041e458e9bd7e40")},
			{Height: 295000, Hash: hashPtr("00000000000000004d9b4ef50f0f9d686fd69db2e03af35a100370c64632a983")},
		},

		ChainTxData: ChainTxData{
			Time:    1585764811,
			TxCount: 517186863,
			TxRate:  3.305709665792344,
		},

		PreminePubkeys: mainNetPreminePubkeys,
	}

	return params
}

// hashPtr is a convenience wrapper around newHashFromStr for the
// *chainhash.Hash fields Checkpoint needs.
func hashPtr(hexStr string) *chainhash.Hash {
	h := newHashFromStr(hexStr)
	return &h
}
