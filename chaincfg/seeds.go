package chaincfg

import (
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/clock"
)

// seedLastSeenWindow is the width of the window hard-coded seeds are dated
// into, and also how far before now that window ends.
const seedLastSeenWindow = 7 * 24 * time.Hour

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the label the seed is listed under.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// SeedSpec is a hard-coded peer. IPv4 peers are stored IPv4-mapped.
type SeedSpec struct {
	Addr [net.IPv6len]byte
	Port uint16
}

// ConvertSeeds turns hard-coded seeds into peer addresses. Each address is
// given a last seen time between one and two weeks before the current time of
// clk so addresses learned from the network are preferred over them. rng only
// spreads those times and carries no security weight.
func ConvertSeeds(seeds []SeedSpec, clk clock.Clock,
	rng *rand.Rand) []*wire.NetAddress {

	now := clk.Now()
	windowSecs := int64(seedLastSeenWindow / time.Second)

	addrs := make([]*wire.NetAddress, 0, len(seeds))
	for _, seed := range seeds {
		ip := make(net.IP, net.IPv6len)
		copy(ip, seed.Addr[:])

		jitter := time.Duration(rng.Int63n(windowSecs)) * time.Second
		lastSeen := now.Add(-seedLastSeenWindow - jitter)

		addrs = append(addrs, wire.NewNetAddressTimestamp(
			lastSeen, wire.SFNodeNetwork, ip, seed.Port,
		))
	}

	return addrs
}
