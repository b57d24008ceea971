// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"math"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/holiman/uint256"
)

// NoTimeout is the sentinel timeout value which indicates a deployment
// never expires once started.
const NoTimeout = int64(math.MaxInt64)

// Network magic values, read little-endian from each network's 4-byte
// message-start prefix, exactly as every wire.BitcoinNet constant is
// derived from Bitcoin's own pchMessageStart arrays.
const (
	mainNetMagic wire.BitcoinNet = 0x8facf83b
	testNetMagic wire.BitcoinNet = 0x246ac950
	regTestMagic wire.BitcoinNet = 0x864d0cb6
)

// Zawy LWMA-1 tuning constants, applied uniformly across main, test,
// and regtest post-fork. The adjusted weight follows LWMA-1's
// (N+1)*T/2 rule for a 600-second target spacing.
const (
	lwmaAveragingWindow     int64 = 45
	lwmaAdjustedWeight      int64 = (lwmaAveragingWindow + 1) * 600 / 2
	lwmaMinDenominator      int64 = 10
	lwmaSolvetimeLimitation bool  = true
)

// Deployment positions in the Deployments array of a Params. Only
// DeploymentTestDummy is exercised by any default network; CSV and
// segwit activate at fixed heights on this chain rather than through
// the version-bits vote, but their slots exist so -vbparams can still
// name them on regtest.
const (
	DeploymentTestDummy = iota
	DeploymentCSV
	DeploymentSegwit

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentCSV:       "csv",
	DeploymentSegwit:    "segwit",
}

// deploymentByName returns the deployment position whose name matches
// name, and false if there is no such deployment.
func deploymentByName(name string) (int, bool) {
	for pos, n := range deploymentNames {
		if n == name {
			return pos, true
		}
	}
	return 0, false
}

// ConsensusDeployment defines the minimal BIP0009 version-bits
// deployment record this chain uses: a bit number plus a start/timeout
// pair in Unix seconds, with NoTimeout disabling expiry.
type ConsensusDeployment struct {
	// BitNumber is the version bit this deployment signals on.
	BitNumber uint8

	// StartTime is the median time past after which the deployment
	// becomes eligible to start.
	StartTime int64

	// Timeout is the median time past after which the deployment is
	// considered failed if it has not locked in. NoTimeout disables
	// this.
	Timeout int64
}

// Checkpoint identifies a known good point in the block chain. Using
// checkpoints allows a few optimizations for old blocks during initial
// download and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering by
	// service flags (wire.ServiceFlag).
	HasFiltering bool
}

// ChainTxData is minimal transaction-rate data for a given block,
// used only to advise initial-sync UI progress; it is not part of
// consensus.
type ChainTxData struct {
	Time    int64
	TxCount int64
	TxRate  float64
}

// ConsensusParams is the immutable bundle of per-network consensus
// constants. All fields are set once, by
// a network's factory function, and never mutated afterward (with the
// single exception of regtest's Deployments/SegwitHeight, which may be
// overridden by updateActivationParametersFromArgs while the factory
// is still constructing the value — see registry.go).
type ConsensusParams struct {
	// SubsidyHalvingInterval is the block height period between
	// coinbase-reward halvings.
	SubsidyHalvingInterval int32

	// BIP16Exception and BIP34Hash are block-hash constants used for
	// historical soft-fork exceptions.
	BIP16Exception chainhash.Hash
	BIP34Hash      chainhash.Hash

	// Activation heights for historical soft forks and this chain's
	// hard fork window.
	BIP34Height          int32
	BIP65Height          int32
	BIP66Height          int32
	CSVHeight            int32
	SegwitHeight         int32
	MinBIP9WarningHeight int32

	// PowLimit is the maximum (easiest) allowed target.
	PowLimit *uint256.Int

	// PowLimitBits is PowLimit's compact encoding, cached since every
	// network needs it as the premine-window and min-difficulty value.
	PowLimitBits uint32

	// PowTargetTimespan is the nominal retarget window in seconds.
	PowTargetTimespan int64

	// PowTargetSpacing is the desired number of seconds between
	// blocks.
	PowTargetSpacing int64

	// AllowMinDifficultyBlocks permits emergency min-difficulty blocks
	// under stall conditions.
	AllowMinDifficultyBlocks bool

	// NoRetargeting freezes difficulty to the tip's compact value when
	// true.
	NoRetargeting bool

	// RuleChangeActivationThreshold and MinerConfirmationWindow are
	// the BIP9 vote thresholds.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32

	// Deployments holds the version-bits deployment records, indexed
	// by the Deployment* constants above.
	Deployments [DefinedDeployments]ConsensusDeployment

	// BTGHeight is the hard-fork activation height.
	BTGHeight int32

	// BTGPremineWindow is the number of blocks, starting at BTGHeight,
	// during which difficulty is pinned to PowLimit and coinbase
	// outputs are checked against the premine pubkey rotation.
	BTGPremineWindow int32

	// BTGPremineEnforceWhitelist tells callers whether a premine
	// script mismatch during the premine window should be treated as
	// a fatal block-acceptance failure.
	BTGPremineEnforceWhitelist bool

	// BTGPremineReward is the coinbase reward, in whole coin units,
	// during the premine window.
	BTGPremineReward int64

	// MinimumChainWork is the minimum cumulative work the best chain
	// must have.
	MinimumChainWork *uint256.Int

	// DefaultAssumeValid is a block hash considered ancestor-valid by
	// default.
	DefaultAssumeValid chainhash.Hash

	// LWMA retarget constants, applied post-fork once the premine
	// window has elapsed. Uniform across networks.
	LwmaAveragingWindow     int64
	LwmaAdjustedWeight      int64
	LwmaMinDenominator      int64
	LwmaSolvetimeLimitation bool
}

// Params wraps ConsensusParams and adds everything that differs by
// network but is not itself a consensus rule: network identity, wire
// protocol magic, address encodings, seed peers, and checkpoints.
type Params struct {
	// Consensus holds the consensus rules proper; everything below is
	// network identity and policy.
	Consensus ConsensusParams

	// Name is a human-readable identifier for the network: "main",
	// "test", or "regtest".
	Name string

	// Net is the magic 4 bytes used to identify the network on the
	// wire.
	Net wire.BitcoinNet

	// DefaultPort is the default peer-to-peer TCP port.
	DefaultPort string

	// DNSSeeds is used to discover peers. Empty on regtest.
	DNSSeeds []DNSSeed

	// FixedSeeds is a fixed list of IPv6 seed addresses, used when DNS
	// seeding is unavailable. Left empty until a network layer exists
	// to consume it.
	FixedSeeds []string

	// GenesisBlock is the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is GenesisBlock's hash, asserted against a
	// hard-coded literal by each network's factory function.
	GenesisHash chainhash.Hash

	// AssumedBlockchainSize and AssumedChainStateSize are advisory,
	// non-consensus disk-size hints used only to size a progress bar
	// during initial sync.
	AssumedBlockchainSize uint32
	AssumedChainStateSize uint32

	// PruneAfterHeight is the height after which block files may be
	// pruned by a pruning node.
	PruneAfterHeight int32

	// Base58 address prefixes, keyed by role.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte
	HDPublicKeyID    [4]byte
	HDPrivateKeyID   [4]byte

	// Bech32HRPSegwit is the human-readable part for bech32-encoded
	// segwit addresses.
	Bech32HRPSegwit string

	// DefaultConsistencyChecks, RequireStandard, and IsTestChain are
	// policy flags carried straight from the original's CChainParams.
	DefaultConsistencyChecks bool
	RequireStandard          bool
	IsTestChain              bool

	// Checkpoints is an ordered, oldest-to-newest list of known-good
	// (height, hash) pairs.
	Checkpoints []Checkpoint

	// ChainTxData is advisory sync-progress data.
	ChainTxData ChainTxData

	// PreminePubkeys is the ordered, round-robin list of hex-encoded
	// secp256k1 public keys consulted by IsPremineAddressScript. Must
	// be non-empty; see premine.go.
	PreminePubkeys []string
}

var (
	// ErrDuplicateNet is returned by Register when params for a
	// network magic have already been registered.
	ErrDuplicateNet = errors.New("duplicate bitcoin-global network")

	// ErrUnknownHDKeyID is returned by HDPrivateKeyToPublicKeyID for
	// an id that was never registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrInvalidHDKeyID is returned by RegisterHDKeyID for malformed
	// version bytes.
	ErrInvalidHDKeyID = errors.New("invalid hd extended key version bytes")
)

var (
	registeredNets       = make(map[wire.BitcoinNet]struct{})
	pubKeyHashAddrIDs    = make(map[byte]struct{})
	scriptHashAddrIDs    = make(map[byte]struct{})
	bech32SegwitPrefixes = make(map[string]struct{})
	hdPrivToPubKeyIDs    = make(map[[4]byte][]byte)
)

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Register records params's address prefixes and HD key IDs so that
// IsPubKeyHashAddrID, IsScriptHashAddrID, and IsBech32SegwitPrefix can
// recognize them regardless of which network is currently selected.
// It returns ErrDuplicateNet if params.Net has already been
// registered.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}

	if err := RegisterHDKeyID(params.HDPublicKeyID[:], params.HDPrivateKeyID[:]); err != nil {
		return err
	}

	// A valid bech32-encoded segwit address always has as prefix the
	// human-readable part for the given net followed by '1'.
	bech32SegwitPrefixes[params.Bech32HRPSegwit+"1"] = struct{}{}
	return nil
}

// IsPubKeyHashAddrID returns whether id is a known P2PKH address
// prefix on any registered network.
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether id is a known P2SH address
// prefix on any registered network.
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// IsBech32SegwitPrefix returns whether prefix (including the trailing
// "1") is a known segwit bech32 prefix on any registered network.
func IsBech32SegwitPrefix(prefix string) bool {
	_, ok := bech32SegwitPrefixes[strings.ToLower(prefix)]
	return ok
}

// RegisterHDKeyID registers a public/private HD extended key ID pair so
// HDPrivateKeyToPublicKeyID can map one to the other.
func RegisterHDKeyID(hdPublicKeyID []byte, hdPrivateKeyID []byte) error {
	if len(hdPublicKeyID) != 4 || len(hdPrivateKeyID) != 4 {
		return ErrInvalidHDKeyID
	}

	var keyID [4]byte
	copy(keyID[:], hdPrivateKeyID)
	hdPrivToPubKeyIDs[keyID] = hdPublicKeyID
	return nil
}

// HDPrivateKeyToPublicKeyID returns the public key version bytes
// registered for the given private key version bytes id.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}
	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}
	return pubBytes, nil
}

// mustUint256FromHex converts a big-endian hex literal into a 256-bit
// unsigned magnitude. Parsing goes through math/big only because the
// literals below are hard-coded consensus constants of varying digit
// counts copied from the original node's source; the resulting value
// is stored and operated on as a fixed-width uint256.Int everywhere
// else. It panics on
// malformed input, since it is only ever called with known-good
// literals during factory-function initialization.
func mustUint256FromHex(hexStr string) *uint256.Int {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	bi, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("chaincfg: invalid uint256 hex literal " + hexStr)
	}
	if bi.Sign() < 0 || bi.BitLen() > 256 {
		panic("chaincfg: uint256 hex literal out of range " + hexStr)
	}
	var v uint256.Int
	v.SetBytes(bi.Bytes())
	return &v
}

// newHashFromStr converts a big-endian hex string into a
// chainhash.Hash. It panics on error, since it is only ever called
// with hard-coded, and therefore known-good, literal hashes during
// package-level or factory-function initialization.
func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return *hash
}
