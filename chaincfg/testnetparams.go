package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// TestNetMagic is the magic of the test network. On the wire it reads
// 46 a6 6b bb.
const TestNetMagic wire.BitcoinNet = 0xbb6ba646

const testSporkKeyOld = "04abb5e65280dda6a113fadfb9877f9c399532245fe1acb61d" +
	"e293ab298034d5084277fab3768774a3b68cbbe5021cc5049ec8c9997a13f64da1af" +
	"a0bcfb156db1"

// testCheckpoints returns the checkpoint table of the test network.
func testCheckpoints() *CheckpointData {
	return &CheckpointData{
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("00000689c9f1fea0e11e39e1e72edc9d46aeac860c1f15ca34cce12f4b529c04")},
		},
		LastCheckpointTime:         time.Unix(1538412980, 0),
		TransactionsLastCheckpoint: 0,
		TransactionsPerDay:         25,
	}
}

// testNetOverrides turns a copy of the main profile into the test profile.
// The pow limit is inherited from main.
func testNetOverrides(p *Params) {
	p.ID = TestNet
	p.Name = TestNet.String()
	p.Net = TestNetMagic
	p.DefaultPort = "41527"

	p.EnforceBlockUpgradeMajority = 51
	p.RejectBlockOutdatedMajority = 75
	p.ToCheckBlockUpgradeMajority = 100
	p.MinerThreads = 0
	p.TargetTimespan = time.Minute
	p.TargetSpacing = time.Minute
	p.LastPOWBlock = 500
	p.CoinbaseMaturity = 15
	p.MasternodeCountDrift = 4
	p.ModifierUpdateBlock = 1
	p.MaxMoneyOut = maxMoneyOut

	p.Genesis.Time = time.Unix(1538412980, 0)
	p.Genesis.Nonce = 24429876
	p.Genesis.Hash = newHashFromStr("00000689c9f1fea0e11e39e1e72edc9d" +
		"46aeac860c1f15ca34cce12f4b529c04")

	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.Prefixes = AddressPrefixes{
		PubKeyHashAddrID: 128,
		ScriptHashAddrID: 12,
		PrivateKeyID:     108,
		HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
		HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
		HDCoinTypeID:     [4]byte{0x80, 0x00, 0x00, 0x01},
	}

	p.Checkpoints = testCheckpoints()

	p.MiningRequiresPeers = true
	p.AllowMinDifficultyBlocks = false
	p.DefaultConsistencyChecks = false
	p.RequireStandard = false
	p.MineBlocksOnDemand = false
	p.TestnetToBeDeprecatedFieldRPC = true

	p.PoolMaxTransactions = 2
	p.SporkKeyOld = testSporkKeyOld
	p.SporkKey = sporkKey
	p.EnforceNewSporkKey = enforceNewSporkKey
	p.RejectOldSporkKey = rejectOldSporkKey
	p.MasternodePoolDummyAddress = "tcyHQC8MusYAwGzEGaCdra7sZ3FZeChsKe"
	p.StartMasternodePayments = startMasternodePayments
	p.BudgetFeeConfirmations = 3
}

// newTestNetParams derives the test network profile from main.
func newTestNetParams(mainNet *Params) (*Params, error) {
	return derive(mainNet, testNetOverrides)
}
