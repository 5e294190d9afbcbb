// Package core defines the central Network and Road types: a registry of
// named locations with geographic coordinates, joined to a weighted
// adjacency of direct road connections.
//
// Network uses a single sync.RWMutex internally, so you can safely build
// and query a network across goroutines. Enumeration is deterministic:
// Locations() reports registration order and Roads(id) reports the order
// roads were connected, which is what makes search expansion reproducible.
//
// This file declares Road, Network, the sentinel errors, and the
// NewNetwork constructor.
//
// Errors:
//
//	ErrEmptyLocationID   - location ID is the empty string.
//	ErrDuplicateLocation - location ID is already registered.
//	ErrLocationNotFound  - referenced location does not exist.
//	ErrBadDistance       - road distance is zero or negative.
//	ErrSelfRoad          - road endpoints are the same location.
//	ErrDuplicateRoad     - a road between the endpoints already exists.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/lvlroute/geo"
)

// Sentinel errors for network construction and lookup.
var (
	// ErrEmptyLocationID indicates that a provided location ID is empty.
	ErrEmptyLocationID = errors.New("core: location ID is empty")

	// ErrDuplicateLocation indicates that AddLocation was called twice
	// with the same ID.
	ErrDuplicateLocation = errors.New("core: location already registered")

	// ErrLocationNotFound indicates an operation referenced an unregistered location.
	ErrLocationNotFound = errors.New("core: location not found")

	// ErrBadDistance indicates a road with a non-positive distance.
	ErrBadDistance = errors.New("core: road distance must be positive")

	// ErrSelfRoad indicates a road from a location to itself.
	ErrSelfRoad = errors.New("core: self-road not allowed")

	// ErrDuplicateRoad indicates a second road between the same endpoints.
	ErrDuplicateRoad = errors.New("core: road already exists")
)

// Road is one directed hop out of a location: the neighbor it reaches and
// the road distance in kilometers. Connect registers a Road in each
// direction; ConnectOneWay registers a single Road.
type Road struct {
	// To is the ID of the location this road leads to.
	To string

	// Km is the road distance in kilometers. Always > 0.
	Km float64
}

// Network is the in-memory road network: locations with coordinates plus
// their outgoing roads.
//
// Both maps are guarded by mu. Neighbor enumeration order is the order in
// which roads were connected; location enumeration order is the order in
// which locations were added.
type Network struct {
	mu sync.RWMutex // guards all fields below

	coords map[string]geo.Coord // location ID → coordinate
	order  []string             // location IDs in registration order
	roads  map[string][]Road    // location ID → outgoing roads, insertion order
}

// NewNetwork creates an empty Network.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{
		coords: make(map[string]geo.Coord),
		roads:  make(map[string][]Road),
	}
}
