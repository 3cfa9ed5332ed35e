// Package chaincfg defines the parameters of the CTSC networks.
//
// Every network is described by a Params value: its magic, ports, consensus
// constants, genesis block, checkpoints, base58 prefixes, DNS seeds and
// governance keys. The parameters of all networks are built once by
// NewRegistry, which verifies that every genesis block hashes to the constant
// compiled into the binary. A caller then selects the network it runs on:
//
//	reg, err := chaincfg.NewRegistry(nil)
//	if err != nil {
//		// The binary is broken, do not start.
//	}
//	if err := reg.SelectNetwork(chaincfg.TestNet); err != nil {
//		...
//	}
//	port := reg.Active().DefaultPort
//
// Parameters are read-only once constructed. The single exception is the unit
// test network whose parameters can be changed through
// Registry.ModifiableParams while it is the active network.
//
// The test network derives from the main network, the regression test network
// from the test network and the unit test network from the main network. A
// derived profile is a copy of its base with a set of overrides applied, so
// changing a derived profile never affects its base.
package chaincfg
