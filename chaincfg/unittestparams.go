package chaincfg

// unitTestOverrides turns a copy of the main profile into the unit test
// profile. It keeps main's magic, genesis block and checkpoints.
func unitTestOverrides(p *Params) {
	p.ID = UnitTest
	p.Name = UnitTest.String()
	p.DefaultPort = "51478"

	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.AllowMinDifficultyBlocks = false
	p.MineBlocksOnDemand = true
}

// newUnitTestParams derives the unit test profile from main.
func newUnitTestParams(mainNet *Params) (*Params, error) {
	return derive(mainNet, unitTestOverrides)
}
