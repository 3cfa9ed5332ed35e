package chaincfg

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/lightningnetwork/lnd/clock"
)

var (
	// ErrUnknownNetwork is returned when a network identifier does not
	// name one of the known networks.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNoActiveNetwork is the panic value of Active when no network has
	// been selected yet.
	ErrNoActiveNetwork = errors.New("no network selected")

	// ErrNotUnitTest is returned when the parameters of a network other
	// than the unit test network are requested for modification.
	ErrNotUnitTest = errors.New("parameters are only modifiable on the " +
		"unit test network")
)

// RegistryConfig holds the dependencies of a Registry.
type RegistryConfig struct {
	// Clock is the time source used for verification progress estimates.
	// The system clock is used when nil.
	Clock clock.Clock
}

// Registry holds the parameters of every known network and which of them is
// active. All profiles are built and verified once, when the registry is
// created. A Registry is safe for concurrent readers.
//
// The main, test and regtest profiles are handed out as deep copies, so
// nothing a caller does to a returned Params reaches the registry. The unit
// test profile is shared and only changes through UnitTestParams.
type Registry struct {
	cfg RegistryConfig

	profiles [InvalidNetwork]*Params

	active atomic.Pointer[Params]

	unitTest *UnitTestParams
}

// NewRegistry constructs the parameters of every network. An error, most
// notably ErrGenesisMismatch, means the constants compiled into the binary are
// inconsistent and the caller must not continue.
func NewRegistry(cfg *RegistryConfig) (*Registry, error) {
	r := &Registry{}
	if cfg != nil {
		r.cfg = *cfg
	}
	if r.cfg.Clock == nil {
		r.cfg.Clock = clock.NewDefaultClock()
	}

	mainNet, err := newMainNetParams()
	if err != nil {
		return nil, fmt.Errorf("unable to construct params: %w", err)
	}
	testNet, err := newTestNetParams(mainNet)
	if err != nil {
		return nil, fmt.Errorf("unable to construct params: %w", err)
	}
	regTest, err := newRegTestParams(testNet)
	if err != nil {
		return nil, fmt.Errorf("unable to construct params: %w", err)
	}
	unitTest, err := newUnitTestParams(mainNet)
	if err != nil {
		return nil, fmt.Errorf("unable to construct params: %w", err)
	}

	r.profiles[MainNet] = mainNet
	r.profiles[TestNet] = testNet
	r.profiles[RegTest] = regTest
	r.profiles[UnitTest] = unitTest
	r.unitTest = newUnitTestParamsHandle(unitTest)

	log.Infof("Network params constructed: main=%v, test=%v, regtest=%v",
		mainNet.GenesisHash, testNet.GenesisHash, regTest.GenesisHash)

	return r, nil
}

// SelectNetwork makes the parameters of id the active ones. An unknown id
// leaves the current selection in place. Selecting again replaces the
// previous selection.
func (r *Registry) SelectNetwork(id Network) error {
	p, err := r.ParamsFor(id)
	if err != nil {
		return err
	}

	prev := r.active.Swap(p)
	if prev != nil && prev != p {
		log.Warnf("Active network changed from %v to %v", prev.Name,
			p.Name)
	} else {
		log.Infof("Active network: %v", p.Name)
	}
	log.Tracef("Active params: %v", spewClosure(p))

	return nil
}

// Active returns the parameters of the selected network. Calling it before a
// successful SelectNetwork is a programming error and panics with
// ErrNoActiveNetwork.
func (r *Registry) Active() *Params {
	return r.view(r.activeProfile())
}

// activeProfile returns the registry's own copy of the selected profile.
func (r *Registry) activeProfile() *Params {
	p := r.active.Load()
	if p == nil {
		panic(ErrNoActiveNetwork)
	}

	return p
}

// view returns what a caller gets to see of p.
func (r *Registry) view(p *Params) *Params {
	if p.ID == UnitTest {
		return p
	}

	return p.clone()
}

// IsSelected returns true once a network has been selected.
func (r *Registry) IsSelected() bool {
	return r.active.Load() != nil
}

// ParamsFor returns the parameters of id without changing the selection.
func (r *Registry) ParamsFor(id Network) (*Params, error) {
	if !id.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNetwork, uint8(id))
	}

	return r.view(r.profiles[id]), nil
}

// ModifiableParams returns the mutation handle of the unit test parameters.
// It fails with ErrNotUnitTest unless the unit test network is the active one.
func (r *Registry) ModifiableParams() (*UnitTestParams, error) {
	p := r.active.Load()
	if p == nil || p.ID != UnitTest {
		return nil, ErrNotUnitTest
	}

	return r.unitTest, nil
}

// VerificationProgress estimates the fraction of the active chain that has
// been verified once tip is reached, using the registry clock as the current
// time.
func (r *Registry) VerificationProgress(tip *TipStats, sigchecks bool) float64 {
	return r.activeProfile().Checkpoints.GuessVerificationProgress(
		tip, r.cfg.Clock.Now(), sigchecks,
	)
}
