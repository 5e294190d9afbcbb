// Package geo provides the coordinate value type and the great-circle
// distance used as the admissible heuristic by the rbfs package.
//
// Haversine computes the spherical great-circle distance between two
// coordinates with the Earth radius fixed at 6371 km. It is a lower bound
// on any road distance between the same two points (roads cannot be
// shorter than the geodesic), which is exactly the admissibility property
// best-first search needs.
//
// Complexity:
//
//	– Time:  O(1) — a handful of trigonometric calls.
//	– Space: O(1) — no allocations.
//
// Both Coord and Haversine are pure values / pure functions: no locks,
// no side effects, safe for concurrent use.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius, in kilometers, used by Haversine.
const EarthRadiusKm = 6371.0

// Coord is an immutable geographic coordinate (WGS 84), in degrees.
type Coord struct {
	// Lat is the latitude in degrees, positive north.
	Lat float64

	// Lon is the longitude in degrees, positive east.
	Lon float64
}

// Haversine returns the great-circle distance between a and b in kilometers.
//
// The result is always ≥ 0, and 0 iff a == b. Symmetric in its arguments.
func Haversine(a, b Coord) float64 {
	// 1) Convert the coordinate deltas to radians.
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	// 2) Haversine of the central angle.
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// 3) Central angle via atan2 (numerically stable near antipodes).
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// toRad converts degrees to radians.
func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
