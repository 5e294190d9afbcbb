// Package rbfs defines types and configuration options for Recursive
// Best-First Search over a core.Network.
//
// RBFS is a linear-memory variant of best-first search: it commits to the
// most promising successor, passes down an f-cost limit derived from the
// best alternative sibling, and on backtrack revises the abandoned
// subtree's f upward to the tightest bound proven so far. The f value of a
// search node is therefore a mutable bound, not a fixed estimate.
//
// Options:
//
//	– WithContext(ctx)        cancellation/timeout; checked at the top of every
//	                          recursive call.
//	– WithOnNodeCreated(fn)   hook fired once per search node constructed.
//	– WithOnExpand(fn)        hook fired when a node is expanded (each recursive call).
//	– WithOnBoundRevised(fn)  hook fired whenever a node's f bound is raised.
//	– WithOnPrune(fn)         hook fired when the best successor exceeds the limit
//	                          and the branch is abandoned.
//
// Hooks are pure observability: they cannot abort the search and default to nil.
//
// Errors (sentinel):
//
//	– ErrEmptyStart    if the start location ID is empty.
//	– ErrEmptyGoal     if the goal location ID is empty.
//	– ErrNilNetwork    if the provided network pointer is nil.
//	– ErrStartNotFound if the start location is not registered.
//	– ErrGoalNotFound  if the goal location is not registered.
//	– ErrNoRoute       if no route exists between start and goal. This is a
//	                   normal outcome for disconnected inputs, not a crash.
package rbfs

import (
	"context"
	"errors"
)

// Sentinel errors returned by FindRoute.
var (
	// ErrEmptyStart indicates that the provided start location ID is empty.
	ErrEmptyStart = errors.New("rbfs: start location ID is empty")

	// ErrEmptyGoal indicates that the provided goal location ID is empty.
	ErrEmptyGoal = errors.New("rbfs: goal location ID is empty")

	// ErrNilNetwork indicates that a nil *core.Network was passed to FindRoute.
	ErrNilNetwork = errors.New("rbfs: network is nil")

	// ErrStartNotFound indicates that the start location is not registered
	// in the provided network.
	ErrStartNotFound = errors.New("rbfs: start location not found in network")

	// ErrGoalNotFound indicates that the goal location is not registered
	// in the provided network.
	ErrGoalNotFound = errors.New("rbfs: goal location not found in network")

	// ErrNoRoute indicates that the goal is unreachable from the start.
	// Expected for disconnected networks; check with errors.Is.
	ErrNoRoute = errors.New("rbfs: no route between start and goal")
)

// Step is a read-only snapshot of one search node, handed to trace hooks.
//
// F is the node's bound at the moment the hook fires; for OnBoundRevised
// the old and new bounds are passed alongside.
type Step struct {
	// Location is the location ID at this node.
	Location string

	// G is the accumulated road distance from the start, in kilometers.
	G float64

	// H is the haversine estimate from this location to the goal, computed
	// once at node creation.
	H float64

	// F is the node's current total-cost bound. Starts at G+H and only
	// ever increases.
	F float64

	// Depth is the number of hops from the start node.
	Depth int
}

// Options holds configurable parameters for one FindRoute invocation.
// The zero value of each hook disables it; complexity is unchanged when
// hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search with ctx.Err().
	Ctx context.Context

	// OnNodeCreated, if non-nil, fires for every search node constructed,
	// including the start node.
	OnNodeCreated func(s Step)

	// OnExpand, if non-nil, fires at the top of every recursive call with
	// the node being expanded and the f-limit in force.
	OnExpand func(s Step, fLimit float64)

	// OnBoundRevised, if non-nil, fires whenever a node's f bound is raised,
	// either by inheriting the parent's bound at expansion or by a returning
	// recursive call.
	OnBoundRevised func(s Step, old, revised float64)

	// OnPrune, if non-nil, fires when the best successor's bound exceeds the
	// f-limit and its whole subtree is abandoned.
	OnPrune func(s Step, fLimit float64)
}

// Option represents a functional option for configuring FindRoute.
type Option func(*Options)

// DefaultOptions returns an Options struct with a background context and
// no hooks installed.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnNodeCreated installs fn as the node-creation hook.
func WithOnNodeCreated(fn func(s Step)) Option {
	return func(o *Options) {
		o.OnNodeCreated = fn
	}
}

// WithOnExpand installs fn as the expansion hook.
func WithOnExpand(fn func(s Step, fLimit float64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithOnBoundRevised installs fn as the bound-revision hook.
func WithOnBoundRevised(fn func(s Step, old, revised float64)) Option {
	return func(o *Options) {
		o.OnBoundRevised = fn
	}
}

// WithOnPrune installs fn as the branch-pruning hook.
func WithOnPrune(fn func(s Step, fLimit float64)) Option {
	return func(o *Options) {
		o.OnPrune = fn
	}
}

// Route is the result of a successful search: the ordered location IDs
// from start to goal (inclusive) and the total road distance.
type Route struct {
	// Locations lists the route's location IDs, start first, goal last.
	Locations []string

	// TotalKm is the sum of road distances along consecutive pairs of
	// Locations. Zero iff start equals goal.
	TotalKm float64
}
