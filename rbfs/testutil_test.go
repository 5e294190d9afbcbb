package rbfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/geo"
	"github.com/stretchr/testify/require"
)

// buildSouthIndia constructs the ten-city reference road network shared by
// the route tests: real coordinates, road distances in kilometers.
//
//	Panji──457──Raichur──100──Kurnool──325──Nellore
//	  │            │                          │
//	 365          453                        175
//	  │            │                          │
//	Mangalore   Tirupati──153──────────────Chennai
//	  │  \         │                        /
//	 233  352     379                    346
//	  │     \      │                      /
//	Kozhikode──356──Bangalore──153──Bellari
func buildSouthIndia(t testing.TB) *core.Network {
	t.Helper()

	n := core.NewNetwork()

	cities := []struct {
		id string
		at geo.Coord
	}{
		{"Panji", geo.Coord{Lat: 15.4909, Lon: 73.8278}},
		{"Raichur", geo.Coord{Lat: 16.2076, Lon: 77.3463}},
		{"Mangalore", geo.Coord{Lat: 12.9141, Lon: 74.8560}},
		{"Bellari", geo.Coord{Lat: 15.1394, Lon: 76.9214}},
		{"Tirupati", geo.Coord{Lat: 13.6288, Lon: 79.4192}},
		{"Kurnool", geo.Coord{Lat: 15.8281, Lon: 78.0373}},
		{"Kozhikode", geo.Coord{Lat: 11.2588, Lon: 75.7804}},
		{"Bangalore", geo.Coord{Lat: 12.9716, Lon: 77.5946}},
		{"Nellore", geo.Coord{Lat: 14.4426, Lon: 79.9865}},
		{"Chennai", geo.Coord{Lat: 13.0827, Lon: 80.2707}},
	}
	for _, c := range cities {
		require.NoError(t, n.AddLocation(c.id, c.at))
	}

	roads := []struct {
		a, b string
		km   float64
	}{
		{"Panji", "Raichur", 457},
		{"Panji", "Mangalore", 365},
		{"Raichur", "Tirupati", 453},
		{"Raichur", "Kurnool", 100},
		{"Mangalore", "Kozhikode", 233},
		{"Mangalore", "Bangalore", 352},
		{"Tirupati", "Bellari", 379},
		{"Tirupati", "Chennai", 153},
		{"Bellari", "Bangalore", 153},
		{"Kurnool", "Nellore", 325},
		{"Kozhikode", "Bangalore", 356},
		{"Bangalore", "Chennai", 346},
		{"Nellore", "Chennai", 175},
	}
	for _, r := range roads {
		require.NoError(t, n.Connect(r.a, r.b, r.km))
	}

	return n
}

// roadKm resolves the road distance between two directly connected
// locations, failing the test if no such road exists.
func roadKm(t testing.TB, n *core.Network, from, to string) float64 {
	t.Helper()

	roads, err := n.Roads(from)
	require.NoError(t, err)
	for _, r := range roads {
		if r.To == to {
			return r.Km
		}
	}
	t.Fatalf("no road %s→%s in network", from, to)

	return 0
}

// buildChain constructs a straight chain of hops locations along a
// meridian, each pair connected by a 12 km road. Used by benchmarks.
func buildChain(t testing.TB, hops int) (*core.Network, string, string) {
	t.Helper()

	n := core.NewNetwork()
	for i := 0; i <= hops; i++ {
		id := fmt.Sprintf("L%03d", i)
		require.NoError(t, n.AddLocation(id, geo.Coord{Lat: 0.1 * float64(i), Lon: 0}))
	}
	for i := 0; i < hops; i++ {
		require.NoError(t, n.Connect(fmt.Sprintf("L%03d", i), fmt.Sprintf("L%03d", i+1), 12))
	}

	return n, "L000", fmt.Sprintf("L%03d", hops)
}
