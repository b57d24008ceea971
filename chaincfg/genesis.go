// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// genesisTimestamp is the canonical newspaper-headline timestamp
// embedded in the coinbase scriptSig of every network's genesis
// block, byte-for-byte identical to Bitcoin's own.
const genesisTimestamp = "The Times 03/Jan/2009 Chancellor on brink of second bailout for banks"

// genesisOutputPubKeyHex is the 65-byte uncompressed secp256k1 public
// key the unspendable genesis coinbase output pays to. It is the same
// literal Satoshi used and is never meant to be spendable; nothing
// ever built on top of this chain controls its private key.
const genesisOutputPubKeyHex = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f"

// genesisCoinbaseScriptSig builds push(486604799) || push(CScriptNum(4))
// || push(timestamp), matching the original CreateGenesisBlock's
// CScript() << 486604799 << CScriptNum(4) << timestamp.
func genesisCoinbaseScriptSig() []byte {
	b := txscript.NewScriptBuilder()
	b.AddInt64(486604799)
	// CScriptNum(4) serializes as a one-byte data push (0x01 0x04), not
	// the OP_4 small-integer opcode that AddInt64 and AddData emit.
	b.AddOp(txscript.OP_DATA_1)
	b.AddOp(0x04)
	b.AddData([]byte(genesisTimestamp))
	script, err := b.Script()
	if err != nil {
		panic(err)
	}
	return script
}

// genesisOutputScript builds push(genesisOutputPubKeyHex) || OP_CHECKSIG,
// the pay-to-pubkey script every genesis block's sole output carries.
func genesisOutputScript() []byte {
	pubKey, err := hex.DecodeString(genesisOutputPubKeyHex)
	if err != nil {
		panic(err)
	}
	b := txscript.NewScriptBuilder()
	b.AddData(pubKey)
	b.AddOp(txscript.OP_CHECKSIG)
	script, err := b.Script()
	if err != nil {
		panic(err)
	}
	return script
}

// newGenesisBlock deterministically produces a single-transaction
// block with one coinbase input and one P2PK-to-the-Satoshi-key output
// of reward. The merkle root is the coinbase transaction's own
// double-SHA256 hash, since a single-transaction merkle tree's root is
// just that transaction's hash.
func newGenesisBlock(blockTime time.Time, nonce uint32, bits uint32, version int32, reward btcutil.Amount) *wire.MsgBlock {
	coinbase := &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{
				Hash:  chainhash.Hash{},
				Index: 0xffffffff,
			},
			SignatureScript: genesisCoinbaseScriptSig(),
			Sequence:        0xffffffff,
		}},
		TxOut: []*wire.TxOut{{
			Value:    int64(reward),
			PkScript: genesisOutputScript(),
		}},
		LockTime: 0,
	}

	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: coinbase.TxHash(),
			Timestamp:  blockTime,
			Bits:       bits,
			Nonce:      nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
}
