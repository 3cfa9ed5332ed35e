package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

const (
	// MainNetMagic is the magic of the main network. On the wire it reads
	// 89 b6 fa e1.
	MainNetMagic wire.BitcoinNet = 0xe1fab689

	// genesisCoinbaseBits is pushed in front of the extra nonce in every
	// genesis coinbase.
	genesisCoinbaseBits = 486604799

	// genesisExtraNonce is the extra nonce of every genesis coinbase.
	genesisExtraNonce = 4

	// maxMoneyOut is the largest amount a single output may carry.
	maxMoneyOut = 85000000 * btcutil.SatoshiPerBitcoin
)

const (
	mainAlertPubKey = "04ef8ffeb0991288956be66ab1dd9a1945460a006189f6f32" +
		"ed1749940232afe12e2986532ca772d94958b44828f912d8caede0f8f1730dc" +
		"de9f11cc057f77c8e5"

	genesisOutputPubKey = "04bfc42ab49f2a26e297988ece66a89cb655508481f0d4" +
		"f69333307418df88a80e4bfb309b7ccf8a02a2d3f1743e464c199295f04a03a" +
		"a450ba82fbe4b8a4eb13e"

	genesisTimestamp = "U.S. News & World Report 10/23/2018 America Owes " +
		"the Largest Share of Global Debt"

	genesisMerkleRoot = "470973e4e1c3b449cfa22ef74518dca2acca9a2f44089e7d" +
		"dec1a8b847cc87dc"

	mainSporkKeyOld = "04cc17389379a0e323f53ea504d38cd71f43dc22f597805fed" +
		"33a51b05ced1a3ae0db84089985f351b3737721736a82f58c8bd529f79c8ffe" +
		"57e922bda792146ab"

	sporkKey = "AAAAE2VjZHNhLXNoYTItbmlzdHAyNTYAAAAIbmlzdHAyNTYAAABBBLOR" +
		"qrN93IVkAwhGKtI5oe8SEfNbFkai5"
)

var (
	// enforceNewSporkKey is when sporks signed with the new key start to
	// be enforced.
	enforceNewSporkKey = time.Unix(1535807069, 0)

	// rejectOldSporkKey is when sporks signed with the old key start to be
	// rejected.
	rejectOldSporkKey = time.Unix(1535720669, 0)

	// startMasternodePayments lies far enough in the future that
	// masternode payments are not active.
	startMasternodePayments = time.Unix(4070908800, 0)
)

// mainDNSSeeds are the DNS seeds of the main network.
var mainDNSSeeds = []DNSSeed{
	{Name: "CTSCSeed1", Host: "seed1.ctscoin.net"},
	{Name: "CTSCSeed2", Host: "seed2.ctscoin.net"},
	{Name: "CTSCSeed3", Host: "explorer.ctscoin.net"},
}

// mainCheckpoints returns the checkpoint table of the main network.
func mainCheckpoints() *CheckpointData {
	return &CheckpointData{
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("00000650aaea7384d7c1576f59777f391f924195ae21fd23e5348c921315226b")},
			{350, newHashFromStr("0000022a395f7e7f9d5c0842144d85f7ec9cee0646be2afe82d9747d32fce8c6")},
			{775, newHashFromStr("74cac5790bfb5a0991a1e93233436358a2eab4f0fd8564d2af32397f38687340")},
			{1250, newHashFromStr("e3f27cf0eef836e8872521430a60b5a153d6639fdd09575847fee7a0d004541e")},
			{2025, newHashFromStr("d083d834a2180c4745742233d6f4e2281432bf5b84b78bc4c9009f589bb8c229")},
		},
		LastCheckpointTime:         time.Unix(1541264030, 0),
		TransactionsLastCheckpoint: 3615,
		TransactionsPerDay:         250,
	}
}

// newMainNetParams constructs the main network profile. Every other profile
// derives from it, directly or through test.
func newMainNetParams() (*Params, error) {
	p := &Params{
		ID:          MainNet,
		Name:        MainNet.String(),
		Net:         MainNetMagic,
		AlertPubKey: fromHex(mainAlertPubKey),
		DefaultPort: "51527",
		PowLimit:    defaultPowLimit,

		SubsidyHalvingInterval:      1050000,
		MaxReorganizationDepth:      100,
		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		ToCheckBlockUpgradeMajority: 1000,
		MinerThreads:                0,
		TargetTimespan:              time.Minute,
		TargetSpacing:               time.Minute,
		CoinbaseMaturity:            15,
		MasternodeCountDrift:        20,
		MaxMoneyOut:                 maxMoneyOut,
		LastPOWBlock:                500,
		ModifierUpdateBlock:         1,

		Genesis: GenesisSpec{
			Timestamp:    genesisTimestamp,
			CoinbaseBits: genesisCoinbaseBits,
			ExtraNonce:   genesisExtraNonce,
			OutputPubKey: fromHex(genesisOutputPubKey),
			Reward:       0,
			Version:      1,
			Time:         time.Unix(1540339199, 0),
			Bits:         0x1e0ffff0,
			Nonce:        21451067,
			Hash: newHashFromStr("00000650aaea7384d7c1576f59777f39" +
				"1f924195ae21fd23e5348c921315226b"),
			MerkleRoot: newHashFromStr(genesisMerkleRoot),
		},

		DNSSeeds: mainDNSSeeds,

		Prefixes: AddressPrefixes{
			PubKeyHashAddrID: 66,
			ScriptHashAddrID: 16,
			PrivateKeyID:     217,
			HDPublicKeyID:    [4]byte{0x02, 0x2d, 0xa5, 0x37},
			HDPrivateKeyID:   [4]byte{0x02, 0x21, 0x34, 0x1a},
			HDCoinTypeID:     [4]byte{0x80, 0x00, 0x1f, 0x55},
		},

		Checkpoints: mainCheckpoints(),

		MiningRequiresPeers:           true,
		AllowMinDifficultyBlocks:      false,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: false,
		HeadersFirstSyncingActive:     false,

		PoolMaxTransactions:        3,
		SporkKeyOld:                mainSporkKeyOld,
		SporkKey:                   sporkKey,
		EnforceNewSporkKey:         enforceNewSporkKey,
		RejectOldSporkKey:          rejectOldSporkKey,
		MasternodePoolDummyAddress: "TcyHQC8MusYAwGzEGaCdra7sZ3FZeChsKe",
		StartMasternodePayments:    startMasternodePayments,
		BudgetFeeConfirmations:     6,
	}

	// Seeds and the pow limit are package level values. The profile gets
	// its own copies.
	p = p.clone()
	if err := p.finalize(); err != nil {
		return nil, err
	}

	return p, nil
}
