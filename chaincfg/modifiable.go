package chaincfg

import (
	"github.com/chappjc/trylock"
)

// UnitTestParams is the only way to change parameters after construction and
// only exists for the unit test network. Changes are visible to every holder
// of the unit test profile, including Registry.Active.
//
// Setters must not race each other. A setter that finds another one in
// progress panics. Readers of the profile are not tracked by the lock, so a
// setter running while another goroutine reads the profile is not detected.
// Tests must finish changing the profile before the code under test reads
// it.
type UnitTestParams struct {
	mu trylock.Mutex

	params *Params
}

// newUnitTestParamsHandle wraps the unit test profile.
func newUnitTestParamsHandle(p *Params) *UnitTestParams {
	return &UnitTestParams{params: p}
}

// modify runs f on the unit test profile while holding the mutation lock.
func (u *UnitTestParams) modify(field string, f func(p *Params)) {
	if !u.mu.TryLock() {
		panic("chaincfg: concurrent modification of unit test params " +
			"while setting " + field)
	}
	defer u.mu.Unlock()

	f(u.params)

	log.Debugf("Unit test param %v changed", field)
}

// Params returns the profile the setters modify.
func (u *UnitTestParams) Params() *Params {
	return u.params
}

// SetSubsidyHalvingInterval changes the subsidy halving interval.
func (u *UnitTestParams) SetSubsidyHalvingInterval(interval int32) {
	u.modify("SubsidyHalvingInterval", func(p *Params) {
		p.SubsidyHalvingInterval = interval
	})
}

// SetEnforceBlockUpgradeMajority changes the block upgrade enforcement
// majority.
func (u *UnitTestParams) SetEnforceBlockUpgradeMajority(majority int32) {
	u.modify("EnforceBlockUpgradeMajority", func(p *Params) {
		p.EnforceBlockUpgradeMajority = majority
	})
}

// SetRejectBlockOutdatedMajority changes the outdated block rejection
// majority.
func (u *UnitTestParams) SetRejectBlockOutdatedMajority(majority int32) {
	u.modify("RejectBlockOutdatedMajority", func(p *Params) {
		p.RejectBlockOutdatedMajority = majority
	})
}

// SetToCheckBlockUpgradeMajority changes the window the upgrade majorities
// are counted over.
func (u *UnitTestParams) SetToCheckBlockUpgradeMajority(window int32) {
	u.modify("ToCheckBlockUpgradeMajority", func(p *Params) {
		p.ToCheckBlockUpgradeMajority = window
	})
}

// SetDefaultConsistencyChecks toggles the default consistency checks.
func (u *UnitTestParams) SetDefaultConsistencyChecks(enabled bool) {
	u.modify("DefaultConsistencyChecks", func(p *Params) {
		p.DefaultConsistencyChecks = enabled
	})
}

// SetAllowMinDifficultyBlocks toggles minimum difficulty blocks.
func (u *UnitTestParams) SetAllowMinDifficultyBlocks(allow bool) {
	u.modify("AllowMinDifficultyBlocks", func(p *Params) {
		p.AllowMinDifficultyBlocks = allow
	})
}

// SetSkipProofOfWorkCheck toggles proof of work checking.
func (u *UnitTestParams) SetSkipProofOfWorkCheck(skip bool) {
	u.modify("SkipProofOfWorkCheck", func(p *Params) {
		p.SkipProofOfWorkCheck = skip
	})
}
