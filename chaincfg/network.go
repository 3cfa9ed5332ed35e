package chaincfg

import "strings"

// Network identifies one of the networks the registry knows parameters for.
type Network uint8

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the regression test network, blocks are produced on
	// demand.
	RegTest

	// UnitTest is the network used by unit tests. It is the only network
	// whose parameters may be changed after construction.
	UnitTest

	// InvalidNetwork is returned when a network could not be determined,
	// for example from conflicting command line flags. It must always come
	// last.
	InvalidNetwork
)

// String returns the network name used in logs and on the command line.
func (n Network) String() string {
	switch n {
	case MainNet:
		return "main"
	case TestNet:
		return "test"
	case RegTest:
		return "regtest"
	case UnitTest:
		return "unittest"
	default:
		return "invalid"
	}
}

// IsValid returns true if n names one of the known networks.
func (n Network) IsValid() bool {
	return n < InvalidNetwork
}

// ParseNetwork maps a network name onto its identifier. Unknown names result
// in InvalidNetwork.
func ParseNetwork(name string) Network {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "main", "mainnet":
		return MainNet
	case "test", "testnet":
		return TestNet
	case "regtest":
		return RegTest
	case "unittest":
		return UnitTest
	default:
		return InvalidNetwork
	}
}

// NetworkFromFlags selects a network from the boolean network switches a
// command line exposes. No switch selects MainNet, more than one switch is
// contradictory and yields InvalidNetwork.
func NetworkFromFlags(testNet, regTest, unitTest bool) Network {
	var (
		selected = MainNet
		count    int
	)
	if testNet {
		selected = TestNet
		count++
	}
	if regTest {
		selected = RegTest
		count++
	}
	if unitTest {
		selected = UnitTest
		count++
	}

	if count > 1 {
		return InvalidNetwork
	}

	return selected
}
