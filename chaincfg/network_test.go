package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNetworkFromFlags checks the mapping of the network switches.
func TestNetworkFromFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		testNet  bool
		regTest  bool
		unitTest bool
		expected Network
	}{
		{name: "none", expected: MainNet},
		{name: "testnet", testNet: true, expected: TestNet},
		{name: "regtest", regTest: true, expected: RegTest},
		{name: "unittest", unitTest: true, expected: UnitTest},
		{
			name:     "testnet and regtest",
			testNet:  true,
			regTest:  true,
			expected: InvalidNetwork,
		},
		{
			name:     "all",
			testNet:  true,
			regTest:  true,
			unitTest: true,
			expected: InvalidNetwork,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			network := NetworkFromFlags(
				test.testNet, test.regTest, test.unitTest,
			)
			require.Equal(t, test.expected, network)
		})
	}
}

// TestParseNetwork checks that every network name round trips.
func TestParseNetwork(t *testing.T) {
	t.Parallel()

	for network := MainNet; network < InvalidNetwork; network++ {
		require.True(t, network.IsValid())
		require.Equal(t, network, ParseNetwork(network.String()))
	}

	require.Equal(t, MainNet, ParseNetwork("mainnet"))
	require.Equal(t, TestNet, ParseNetwork(" TestNet "))
	require.Equal(t, InvalidNetwork, ParseNetwork("simnet"))
	require.Equal(t, InvalidNetwork, ParseNetwork(""))
	require.False(t, InvalidNetwork.IsValid())
	require.Equal(t, "invalid", Network(42).String())
}
