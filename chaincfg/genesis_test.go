package chaincfg

import (
	"bytes"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// newTestRegistry constructs a registry and fails the test if any profile
// cannot be built.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	return reg
}

// TestGenesisBlocks checks the genesis block of every network against the
// hard-coded constants.
func TestGenesisBlocks(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	tests := []struct {
		network Network
		hash    string
		time    int64
		bits    uint32
		nonce   uint32
	}{
		{
			network: MainNet,
			hash: "00000650aaea7384d7c1576f59777f391f924195ae21fd23" +
				"e5348c921315226b",
			time:  1540339199,
			bits:  0x1e0ffff0,
			nonce: 21451067,
		},
		{
			network: TestNet,
			hash: "00000689c9f1fea0e11e39e1e72edc9d46aeac860c1f15ca" +
				"34cce12f4b529c04",
			time:  1538412980,
			bits:  0x1e0ffff0,
			nonce: 24429876,
		},
		{
			network: RegTest,
			hash: "313ff2fd8c889cc3838f1082b2de47593ff9e527a140c7c3" +
				"d0d0cce9111e1c17",
			time:  1536981815,
			bits:  0x207fffff,
			nonce: 20542302,
		},
		{
			network: UnitTest,
			hash: "00000650aaea7384d7c1576f59777f391f924195ae21fd23" +
				"e5348c921315226b",
			time:  1540339199,
			bits:  0x1e0ffff0,
			nonce: 21451067,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.network.String(), func(t *testing.T) {
			params, err := reg.ParamsFor(test.network)
			require.NoError(t, err)

			require.Equal(t, test.hash, params.GenesisHash.String())

			header := params.GenesisBlock.Header
			require.Equal(t, genesisMerkleRoot, header.MerkleRoot.String())
			require.Equal(t, int32(1), header.Version)
			require.Equal(t, chainhash.Hash{}, header.PrevBlock)
			require.Equal(t, test.time, header.Timestamp.Unix())
			require.Equal(t, test.bits, header.Bits)
			require.Equal(t, test.nonce, header.Nonce)

			hash := BlockHeaderHash(&header)
			require.True(t, hash.IsEqual(params.GenesisHash))

			require.Len(t, params.GenesisBlock.Transactions, 1)
			txHash := params.GenesisBlock.Transactions[0].TxHash()
			require.Equal(t, genesisMerkleRoot, txHash.String())
		})
	}
}

// TestGenesisCoinbase checks the layout of the genesis coinbase transaction.
func TestGenesisCoinbase(t *testing.T) {
	t.Parallel()

	params, err := newMainNetParams()
	require.NoError(t, err)

	tx := params.GenesisBlock.Transactions[0]
	require.Equal(t, int32(1), tx.Version)
	require.Zero(t, tx.LockTime)

	require.Len(t, tx.TxIn, 1)
	txIn := tx.TxIn[0]
	require.Equal(t, chainhash.Hash{}, txIn.PreviousOutPoint.Hash)
	require.Equal(t, uint32(wire.MaxPrevOutIndex), txIn.PreviousOutPoint.Index)
	require.Equal(t, uint32(wire.MaxTxInSequenceNum), txIn.Sequence)

	// 486604799 as a four byte push, the extra nonce as a one byte push and
	// the 81 byte timestamp behind OP_PUSHDATA1.
	wantPrefix := []byte{
		0x04, 0xff, 0xff, 0x00, 0x1d,
		0x01, 0x04,
		txscript.OP_PUSHDATA1, 0x51,
	}
	sigScript := txIn.SignatureScript
	require.True(t, bytes.HasPrefix(sigScript, wantPrefix))
	require.Equal(t, genesisTimestamp, string(sigScript[len(wantPrefix):]))

	require.Len(t, tx.TxOut, 1)
	txOut := tx.TxOut[0]
	require.Zero(t, txOut.Value)
	require.Len(t, txOut.PkScript, 67)
	require.Equal(t, byte(txscript.OP_DATA_65), txOut.PkScript[0])
	require.Equal(t, fromHex(genesisOutputPubKey), txOut.PkScript[1:66])
	require.Equal(t, byte(txscript.OP_CHECKSIG), txOut.PkScript[66])
}

// TestVerifyGenesisMismatch makes sure a genesis block that does not match its
// constants is rejected.
func TestVerifyGenesisMismatch(t *testing.T) {
	t.Parallel()

	params, err := newMainNetParams()
	require.NoError(t, err)

	tests := []struct {
		name   string
		tamper func(spec *GenesisSpec)
	}{
		{
			name: "nonce",
			tamper: func(spec *GenesisSpec) {
				spec.Nonce++
			},
		},
		{
			name: "time",
			tamper: func(spec *GenesisSpec) {
				spec.Time = spec.Time.Add(time.Second)
			},
		},
		{
			name: "timestamp text",
			tamper: func(spec *GenesisSpec) {
				spec.Timestamp += "."
			},
		},
		{
			name: "expected hash",
			tamper: func(spec *GenesisSpec) {
				hash := *spec.Hash
				hash[0] ^= 0x01
				spec.Hash = &hash
			},
		},
		{
			name: "missing expected hash",
			tamper: func(spec *GenesisSpec) {
				spec.Hash = nil
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			spec := params.clone().Genesis
			test.tamper(&spec)

			block, err := BuildGenesisBlock(&spec)
			require.NoError(t, err)

			_, err = VerifyGenesis(&spec, block)
			require.ErrorIs(t, err, ErrGenesisMismatch)

			_, _, err = buildVerifiedGenesis(&spec)
			require.ErrorIs(t, err, ErrGenesisMismatch)
		})
	}
}

// TestVerifyGenesisTamperedBlock makes sure a block whose transactions no
// longer match its header is rejected even though the header is untouched.
func TestVerifyGenesisTamperedBlock(t *testing.T) {
	t.Parallel()

	params, err := newMainNetParams()
	require.NoError(t, err)

	tests := []struct {
		name   string
		tamper func(block *wire.MsgBlock)
	}{
		{
			name: "output value",
			tamper: func(block *wire.MsgBlock) {
				block.Transactions[0].TxOut[0].Value = 50e8
			},
		},
		{
			name: "signature script",
			tamper: func(block *wire.MsgBlock) {
				block.Transactions[0].TxIn[0].SignatureScript = []byte{
					txscript.OP_TRUE,
				}
			},
		},
		{
			name: "extra transaction",
			tamper: func(block *wire.MsgBlock) {
				block.Transactions = append(
					block.Transactions,
					block.Transactions[0].Copy(),
				)
			},
		},
		{
			name: "no transactions",
			tamper: func(block *wire.MsgBlock) {
				block.Transactions = nil
			},
		},
		{
			name: "header merkle root",
			tamper: func(block *wire.MsgBlock) {
				block.Header.MerkleRoot[0] ^= 0x01
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			spec := params.clone().Genesis
			block, err := BuildGenesisBlock(&spec)
			require.NoError(t, err)

			_, err = VerifyGenesis(&spec, block)
			require.NoError(t, err)

			test.tamper(block)
			_, err = VerifyGenesis(&spec, block)
			require.ErrorIs(t, err, ErrGenesisMismatch)
		})
	}
}

// TestDeriveGenesisMismatch makes sure a profile whose genesis description
// changes without its expected hash is refused.
func TestDeriveGenesisMismatch(t *testing.T) {
	t.Parallel()

	mainNet, err := newMainNetParams()
	require.NoError(t, err)

	_, err = derive(mainNet, func(p *Params) {
		p.Genesis.Nonce = 0
	})
	require.ErrorIs(t, err, ErrGenesisMismatch)
}

// TestBuildGenesisInvalid checks that a description without an output key
// cannot be built.
func TestBuildGenesisInvalid(t *testing.T) {
	t.Parallel()

	_, err := BuildGenesisBlock(&GenesisSpec{Timestamp: "x"})
	require.ErrorIs(t, err, ErrInvalidGenesis)
}

// TestBlockHeaderHashVersions checks which hash identifies a header.
func TestBlockHeaderHashVersions(t *testing.T) {
	t.Parallel()

	header := wire.BlockHeader{
		Version:   quarkMaxHeaderVersion,
		Timestamp: time.Unix(1540339199, 0),
		Bits:      0x1e0ffff0,
		Nonce:     1,
	}

	var buf bytes.Buffer
	require.NoError(t, header.Serialize(&buf))
	require.Equal(t, QuarkHash(buf.Bytes()), BlockHeaderHash(&header))
	require.NotEqual(t, header.BlockHash(), BlockHeaderHash(&header))

	header.Version = quarkMaxHeaderVersion + 1
	require.Equal(t, header.BlockHash(), BlockHeaderHash(&header))
}

// TestQuarkHashDeterministic checks that the Quark hash only depends on its
// input.
func TestQuarkHashDeterministic(t *testing.T) {
	t.Parallel()

	data := []byte("ctsc")
	require.Equal(t, QuarkHash(data), QuarkHash(data))
	require.NotEqual(t, QuarkHash(data), QuarkHash([]byte("ctsd")))
	require.NotEqual(t, chainhash.DoubleHashH(data), QuarkHash(data))
}
