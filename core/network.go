package core

import (
	"fmt"

	"github.com/katalvlaran/lvlroute/geo"
)

// AddLocation registers a new location under id at the given coordinate.
//
// Returns ErrEmptyLocationID if id is empty, ErrDuplicateLocation if id is
// already registered.
// Complexity: O(1)
func (n *Network) AddLocation(id string, at geo.Coord) error {
	// 1) Validate the ID before touching state.
	if id == "" {
		return ErrEmptyLocationID
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	// 2) Reject duplicates; a location's coordinate is immutable once set.
	if _, exists := n.coords[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateLocation, id)
	}

	// 3) Register the coordinate and remember registration order.
	n.coords[id] = at
	n.order = append(n.order, id)

	return nil
}

// Connect adds a two-way road of km kilometers between a and b, appending
// one Road to each endpoint's adjacency in call order.
//
// Returns ErrLocationNotFound if either endpoint is unregistered,
// ErrSelfRoad if a == b, ErrBadDistance if km ≤ 0, and ErrDuplicateRoad if
// a road between the endpoints (either direction) already exists.
// Complexity: O(deg(a) + deg(b)) for the duplicate check.
func (n *Network) Connect(a, b string, km float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	// 1) Shared validation with the one-way variant.
	if err := n.validateRoad(a, b, km); err != nil {
		return err
	}

	// 2) Two-way roads may not duplicate an existing road in either direction.
	if n.hasRoad(a, b) || n.hasRoad(b, a) {
		return fmt.Errorf("%w: %s—%s", ErrDuplicateRoad, a, b)
	}

	// 3) Append both directions; each endpoint sees the road in call order.
	n.roads[a] = append(n.roads[a], Road{To: b, Km: km})
	n.roads[b] = append(n.roads[b], Road{To: a, Km: km})

	return nil
}

// ConnectOneWay adds a single directed road a → b of km kilometers.
// Validation matches Connect, except only the a → b direction is checked
// for duplicates — a one-way pair a→b plus b→a is legal.
// Complexity: O(deg(a))
func (n *Network) ConnectOneWay(a, b string, km float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.validateRoad(a, b, km); err != nil {
		return err
	}
	if n.hasRoad(a, b) {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateRoad, a, b)
	}

	n.roads[a] = append(n.roads[a], Road{To: b, Km: km})

	return nil
}

// validateRoad checks endpoint registration, self-roads and the distance.
// Caller must hold mu.
func (n *Network) validateRoad(a, b string, km float64) error {
	if a == "" || b == "" {
		return ErrEmptyLocationID
	}
	if _, ok := n.coords[a]; !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, a)
	}
	if _, ok := n.coords[b]; !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, b)
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfRoad, a)
	}
	if km <= 0 {
		return fmt.Errorf("%w: %s→%s km=%v", ErrBadDistance, a, b, km)
	}

	return nil
}

// hasRoad reports whether a road a → b is already registered.
// Caller must hold mu (read or write).
func (n *Network) hasRoad(a, b string) bool {
	for _, r := range n.roads[a] {
		if r.To == b {
			return true
		}
	}

	return false
}

// HasLocation reports whether id is registered.
// Complexity: O(1)
func (n *Network) HasLocation(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.coords[id]

	return ok
}

// Coord returns the coordinate registered for id.
// Returns ErrLocationNotFound for unknown IDs.
// Complexity: O(1)
func (n *Network) Coord(id string) (geo.Coord, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	at, ok := n.coords[id]
	if !ok {
		return geo.Coord{}, fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}

	return at, nil
}

// Roads returns a copy of the outgoing roads of id, in connection order.
// A registered location with no roads yields an empty (nil) slice, never
// an error; unknown IDs yield ErrLocationNotFound.
// Complexity: O(deg(id))
func (n *Network) Roads(id string) ([]Road, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.coords[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}

	src := n.roads[id]
	if len(src) == 0 {
		return nil, nil
	}

	// Copy so callers can never mutate internal adjacency.
	out := make([]Road, len(src))
	copy(out, src)

	return out, nil
}

// Locations returns a copy of all registered location IDs in registration order.
// Complexity: O(V)
func (n *Network) Locations() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, len(n.order))
	copy(out, n.order)

	return out
}

// LocationCount returns the number of registered locations.
// Complexity: O(1)
func (n *Network) LocationCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.coords)
}

// RoadCount returns the number of directed Road entries in the network.
// A two-way Connect contributes 2; a ConnectOneWay contributes 1.
// Complexity: O(V)
func (n *Network) RoadCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	total := 0
	for _, rs := range n.roads {
		total += len(rs)
	}

	return total
}
