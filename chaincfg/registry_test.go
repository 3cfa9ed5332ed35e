package chaincfg

import (
	"sync"
	"testing"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/require"
)

// TestSelectNetwork checks that every network can be selected and that the
// selection reports the expected profile.
func TestSelectNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		network Network
		name    string
		port    string
	}{
		{network: MainNet, name: "main", port: "51527"},
		{network: TestNet, name: "test", port: "41527"},
		{network: RegTest, name: "regtest", port: "31527"},
		{network: UnitTest, name: "unittest", port: "51478"},
	}

	reg := newTestRegistry(t)
	for _, test := range tests {
		require.NoError(t, reg.SelectNetwork(test.network))

		active := reg.Active()
		require.Equal(t, test.network, active.ID)
		require.Equal(t, test.name, active.Name)
		require.Equal(t, test.port, active.DefaultPort)

		params, err := reg.ParamsFor(test.network)
		require.NoError(t, err)
		require.Equal(t, params, active)
		if test.network == UnitTest {
			require.Same(t, params, active)
		} else {
			require.NotSame(t, params, active)
		}
	}
}

// TestActiveIsolated checks that a caller changing the profile it was handed
// does not change the registry.
func TestActiveIsolated(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	for _, network := range []Network{MainNet, TestNet, RegTest} {
		require.NoError(t, reg.SelectNetwork(network))

		before, err := reg.ParamsFor(network)
		require.NoError(t, err)
		checkpoint := before.Checkpoints.Checkpoints[0]
		genesisHash := *before.GenesisHash

		active := reg.Active()
		active.SubsidyHalvingInterval = 10
		active.Checkpoints.Checkpoints[0].Hash[0] ^= 0xff
		active.Checkpoints.Disabled = true
		active.GenesisHash[0] ^= 0xff
		active.GenesisBlock.Transactions[0].TxOut[0].Value = 50e8
		active.PowLimit.SetInt64(1)
		active.DNSSeeds = append(active.DNSSeeds, DNSSeed{Host: "x"})
		active.Prefixes.PubKeyHashAddrID ^= 0xff

		lookup, err := reg.ParamsFor(network)
		require.NoError(t, err)
		require.Equal(t, before, lookup, network)
		require.Equal(t, genesisHash, *reg.Active().GenesisHash)
		require.True(t, reg.Active().Checkpoints.CheckBlock(
			checkpoint.Height, checkpoint.Hash,
		))

		// Lookups of the same network are independent of each other.
		lookup.Checkpoints.Checkpoints[0].Hash[0] ^= 0xff
		require.True(t, reg.Active().Checkpoints.CheckBlock(
			checkpoint.Height, checkpoint.Hash,
		))
	}
}

// TestSelectUnknownNetwork checks that a failed selection leaves the current
// one in place.
func TestSelectUnknownNetwork(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	require.False(t, reg.IsSelected())

	err := reg.SelectNetwork(InvalidNetwork)
	require.ErrorIs(t, err, ErrUnknownNetwork)
	require.False(t, reg.IsSelected())

	require.NoError(t, reg.SelectNetwork(TestNet))

	err = reg.SelectNetwork(Network(200))
	require.ErrorIs(t, err, ErrUnknownNetwork)
	require.Equal(t, TestNet, reg.Active().ID)

	_, err = reg.ParamsFor(InvalidNetwork)
	require.ErrorIs(t, err, ErrUnknownNetwork)
}

// TestActiveBeforeSelect checks that reading the active profile before a
// selection is treated as a programming error.
func TestActiveBeforeSelect(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	require.PanicsWithValue(t, ErrNoActiveNetwork, func() {
		reg.Active()
	})
}

// TestParamsForKeepsSelection checks that looking up a profile does not change
// the selection.
func TestParamsForKeepsSelection(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	require.NoError(t, reg.SelectNetwork(RegTest))

	test, err := reg.ParamsFor(TestNet)
	require.NoError(t, err)
	require.Equal(t, TestNet, test.ID)
	require.Equal(t, RegTest, reg.Active().ID)
}

// TestModifiableParams checks that only the unit test profile can be changed
// and that changes are visible through the registry.
func TestModifiableParams(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	_, err := reg.ModifiableParams()
	require.ErrorIs(t, err, ErrNotUnitTest)

	for _, network := range []Network{MainNet, TestNet, RegTest} {
		require.NoError(t, reg.SelectNetwork(network))

		_, err := reg.ModifiableParams()
		require.ErrorIs(t, err, ErrNotUnitTest, network)
	}

	require.NoError(t, reg.SelectNetwork(UnitTest))
	modifiable, err := reg.ModifiableParams()
	require.NoError(t, err)

	modifiable.SetSubsidyHalvingInterval(10)
	modifiable.SetEnforceBlockUpgradeMajority(1)
	modifiable.SetRejectBlockOutdatedMajority(2)
	modifiable.SetToCheckBlockUpgradeMajority(3)
	modifiable.SetDefaultConsistencyChecks(false)
	modifiable.SetAllowMinDifficultyBlocks(true)
	modifiable.SetSkipProofOfWorkCheck(true)

	active := reg.Active()
	require.Same(t, modifiable.Params(), active)
	require.Equal(t, int32(10), active.SubsidyHalvingInterval)
	require.Equal(t, int32(1), active.EnforceBlockUpgradeMajority)
	require.Equal(t, int32(2), active.RejectBlockOutdatedMajority)
	require.Equal(t, int32(3), active.ToCheckBlockUpgradeMajority)
	require.False(t, active.DefaultConsistencyChecks)
	require.True(t, active.AllowMinDifficultyBlocks)
	require.True(t, active.SkipProofOfWorkCheck)

	// The network the unit test profile derives from is unaffected.
	mainNet, err := reg.ParamsFor(MainNet)
	require.NoError(t, err)
	require.Equal(t, int32(1050000), mainNet.SubsidyHalvingInterval)
	require.Equal(t, int32(750), mainNet.EnforceBlockUpgradeMajority)
	require.False(t, mainNet.SkipProofOfWorkCheck)

	// Switching away again removes access.
	require.NoError(t, reg.SelectNetwork(MainNet))
	_, err = reg.ModifiableParams()
	require.ErrorIs(t, err, ErrNotUnitTest)
}

// TestModifiableParamsContention checks that a setter running while another
// one holds the mutation lock panics.
func TestModifiableParamsContention(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	require.NoError(t, reg.SelectNetwork(UnitTest))

	modifiable, err := reg.ModifiableParams()
	require.NoError(t, err)

	var (
		entered = make(chan struct{})
		release = make(chan struct{})
		wg      sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()

		modifiable.modify("test", func(*Params) {
			close(entered)
			<-release
		})
	}()

	<-entered
	require.Panics(t, func() {
		modifiable.SetSubsidyHalvingInterval(20)
	})
	close(release)
	wg.Wait()

	// With the lock released the setter works again.
	modifiable.SetSubsidyHalvingInterval(20)
	require.Equal(t, int32(20), reg.Active().SubsidyHalvingInterval)
}

// TestVerificationProgress checks that the registry estimates progress with
// its own clock.
func TestVerificationProgress(t *testing.T) {
	t.Parallel()

	mainNet, err := newMainNetParams()
	require.NoError(t, err)
	checkpointTime := mainNet.Checkpoints.LastCheckpointTime

	testClock := clock.NewTestClock(checkpointTime.Add(24 * time.Hour))
	reg, err := NewRegistry(&RegistryConfig{Clock: testClock})
	require.NoError(t, err)
	require.NoError(t, reg.SelectNetwork(MainNet))

	tip := &TipStats{ChainTx: 3615, BlockTime: checkpointTime}
	require.InDelta(t, 3615.0/(3615.0+250*5),
		reg.VerificationProgress(tip, true), 1e-9)

	testClock.SetTime(checkpointTime)
	require.Equal(t, 1.0, reg.VerificationProgress(tip, true))
}
