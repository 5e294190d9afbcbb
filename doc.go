// Package lvlroute is a small, pure-Go route-planning library: build a
// geographic road network in memory, then compute a least-cost route
// between two named locations with Recursive Best-First Search (RBFS)
// guided by a great-circle heuristic.
//
// 🚀 What is lvlroute?
//
//	A compact, thread-safe library that brings together:
//		• core — the Network type: named locations with coordinates and
//		  insertion-ordered, weighted roads (two-way or one-way)
//		• geo  — Coord and the haversine great-circle distance (R = 6371 km)
//		• rbfs — the RBFS engine: linear-memory best-first search with
//		  f-bound propagation, backtracking and cost revision
//
// ✨ Why RBFS?
//
//   - Linear memory – only the current best path and its siblings are held,
//     unlike A* which keeps the whole frontier
//   - Optimal with an admissible heuristic – haversine never overestimates
//     road distance
//   - Observable – hooks (OnNodeCreated, OnExpand, OnBoundRevised, OnPrune)
//     expose every decision without touching the engine
//
// Quick ASCII example:
//
//	    [Kozhikode]───356───[Bangalore]───346───[Chennai]
//	         \                   /
//	         233             352
//	           \               /
//	            ──[Mangalore]──
//
//	rbfs.FindRoute walks Kozhikode → Bangalore → Chennai (702 km).
//
// Dive into the rbfs package docs for the algorithm contract, and the
// examples/ directory for a runnable demo over a ten-city road map.
//
//	go get github.com/katalvlaran/lvlroute
package lvlroute
