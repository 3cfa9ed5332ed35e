package chaincfg

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

var (
	// ErrGenesisMismatch is returned when a constructed genesis block does
	// not hash to the hard-coded constants of its network. A node must not
	// start with such a genesis block.
	ErrGenesisMismatch = errors.New("genesis block mismatch")

	// ErrInvalidGenesis is returned when a genesis block cannot be built
	// from its description.
	ErrInvalidGenesis = errors.New("invalid genesis block description")
)

// GenesisSpec holds everything the genesis block of a network is built from,
// together with the hashes the result must reproduce.
type GenesisSpec struct {
	// Timestamp is the free form text embedded in the coinbase signature
	// script.
	Timestamp string

	// CoinbaseBits is the number pushed in front of the extra nonce in
	// the coinbase signature script.
	CoinbaseBits int64

	// ExtraNonce is pushed as a single byte of data, not as a small
	// integer opcode.
	ExtraNonce byte

	// OutputPubKey is the key the (zero value) coinbase output pays to.
	OutputPubKey []byte

	// Reward is the value of the coinbase output.
	Reward btcutil.Amount

	// Version, Time, Bits and Nonce are copied into the block header.
	Version int32
	Time    time.Time
	Bits    uint32
	Nonce   uint32

	// Hash is the expected block hash.
	Hash *chainhash.Hash

	// MerkleRoot is the expected merkle root of the transaction list.
	MerkleRoot *chainhash.Hash
}

// coinbaseTx builds the single transaction of the genesis block.
func (s *GenesisSpec) coinbaseTx() (*wire.MsgTx, error) {
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(s.CoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, s.ExtraNonce}).
		AddData([]byte(s.Timestamp)).
		Script()
	if err != nil {
		return nil, fmt.Errorf("%w: signature script: %v",
			ErrInvalidGenesis, err)
	}

	pkScript, err := txscript.NewScriptBuilder().
		AddData(s.OutputPubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, fmt.Errorf("%w: output script: %v",
			ErrInvalidGenesis, err)
	}

	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(int64(s.Reward), pkScript))

	return tx, nil
}

// BuildGenesisBlock assembles the genesis block described by spec. The merkle
// root is computed the same way as for every other block, the header hash is
// not checked.
func BuildGenesisBlock(spec *GenesisSpec) (*wire.MsgBlock, error) {
	if len(spec.OutputPubKey) == 0 {
		return nil, fmt.Errorf("%w: missing output key",
			ErrInvalidGenesis)
	}

	tx, err := spec.coinbaseTx()
	if err != nil {
		return nil, err
	}

	merkleRoot := calcMerkleRoot([]*wire.MsgTx{tx})

	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    spec.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: *merkleRoot,
			Timestamp:  spec.Time,
			Bits:       spec.Bits,
			Nonce:      spec.Nonce,
		},
		Transactions: []*wire.MsgTx{tx},
	}, nil
}

// calcMerkleRoot returns the merkle root of txns, or nil when there are none.
func calcMerkleRoot(txns []*wire.MsgTx) *chainhash.Hash {
	if len(txns) == 0 {
		return nil
	}

	utilTxns := make([]*btcutil.Tx, len(txns))
	for i, tx := range txns {
		utilTxns[i] = btcutil.NewTx(tx)
	}
	merkles := blockchain.BuildMerkleTreeStore(utilTxns, false)

	return merkles[len(merkles)-1]
}

// VerifyGenesis checks block against the expected constants of spec and
// returns the block hash when both match. The merkle root is recomputed from
// the transactions of block, so it must match the header as well as spec.
func VerifyGenesis(spec *GenesisSpec, block *wire.MsgBlock) (*chainhash.Hash,
	error) {

	if spec.Hash == nil || spec.MerkleRoot == nil {
		return nil, fmt.Errorf("%w: expected hashes not set",
			ErrGenesisMismatch)
	}

	merkleRoot := calcMerkleRoot(block.Transactions)
	if merkleRoot == nil {
		return nil, fmt.Errorf("%w: block has no transactions",
			ErrGenesisMismatch)
	}
	if !merkleRoot.IsEqual(spec.MerkleRoot) {
		return nil, fmt.Errorf("%w: merkle root %v, expected %v",
			ErrGenesisMismatch, merkleRoot, spec.MerkleRoot)
	}
	if !merkleRoot.IsEqual(&block.Header.MerkleRoot) {
		return nil, fmt.Errorf("%w: header merkle root %v, computed %v",
			ErrGenesisMismatch, block.Header.MerkleRoot, merkleRoot)
	}

	hash := BlockHeaderHash(&block.Header)
	if !hash.IsEqual(spec.Hash) {
		return nil, fmt.Errorf("%w: block hash %v, expected %v",
			ErrGenesisMismatch, hash, spec.Hash)
	}

	return &hash, nil
}

// buildVerifiedGenesis builds the genesis block of spec and verifies it.
func buildVerifiedGenesis(spec *GenesisSpec) (*wire.MsgBlock,
	*chainhash.Hash, error) {

	block, err := BuildGenesisBlock(spec)
	if err != nil {
		return nil, nil, err
	}

	hash, err := VerifyGenesis(spec, block)
	if err != nil {
		return nil, nil, err
	}

	return block, hash, nil
}
