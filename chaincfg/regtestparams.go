package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// RegTestMagic is the magic of the regression test network. On the wire it
// reads a4 cc a7 a9.
const RegTestMagic wire.BitcoinNet = 0xa9a7cca4

// regTestCheckpoints returns the checkpoint table of the regression test
// network.
func regTestCheckpoints() *CheckpointData {
	return &CheckpointData{
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("313ff2fd8c889cc3838f1082b2de47593ff9e527a140c7c3d0d0cce9111e1c17")},
		},
		LastCheckpointTime: time.Unix(1536981815, 0),
	}
}

// regTestOverrides turns a copy of the test profile into the regression test
// profile.
func regTestOverrides(p *Params) {
	p.ID = RegTest
	p.Name = RegTest.String()
	p.Net = RegTestMagic
	p.DefaultPort = "31527"

	p.SubsidyHalvingInterval = 150
	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.ToCheckBlockUpgradeMajority = 1000
	p.MinerThreads = 1
	p.TargetTimespan = 24 * time.Hour
	p.TargetSpacing = time.Minute
	p.PowLimit = new(big.Int).Set(defaultPowLimit)

	p.Genesis.Time = time.Unix(1536981815, 0)
	p.Genesis.Bits = 0x207fffff
	p.Genesis.Nonce = 20542302
	p.Genesis.Hash = newHashFromStr("313ff2fd8c889cc3838f1082b2de4759" +
		"3ff9e527a140c7c3d0d0cce9111e1c17")

	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.Checkpoints = regTestCheckpoints()

	p.MiningRequiresPeers = false
	p.AllowMinDifficultyBlocks = true
	p.DefaultConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false
}

// newRegTestParams derives the regression test profile from test.
func newRegTestParams(test *Params) (*Params, error) {
	return derive(test, regTestOverrides)
}
