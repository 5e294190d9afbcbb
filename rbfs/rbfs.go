// Package rbfs implements Recursive Best-First Search over a core.Network,
// guided by the haversine great-circle heuristic.
//
// The engine explores one path at a time. At each node it generates the
// successors in adjacency insertion order, lifts each successor's f to at
// least the parent's f (bound propagation), and then loops: stable-sort the
// successors ascending by f, descend into the best one with the limit
// min(fLimit, second-best f), and on return overwrite the best successor's
// f with the bound the subtree reported. A branch whose best f exceeds the
// limit is abandoned and its revised bound handed to the caller, which may
// then promote a sibling.
//
// Complexity (b = max branching factor, d = solution depth):
//
//   - Time:  O(b^d) worst case — abandoned subtrees may be re-expanded under
//     looser limits; in practice bounded tightly by the heuristic quality.
//   - Space: O(b·d) — only the current path and the sibling lists along it
//     are alive; this linear memory is the point of RBFS versus A*.
//
// Notes on implementation choices:
//
//   - f values are strictly bounds: f ≥ g always, and f never decreases along
//     an explored chain (ties in the sort are broken by generation order via
//     a stable sort, so equal-f siblings keep adjacency order).
//   - The engine does not exclude a successor that revisits an ancestor
//     location. Revisits accumulate g, so their bounds grow and monotone
//     pruning discards them; this matches the reference exploration exactly
//     but makes an unreachable goal inside a cyclic component loop forever.
//     FindRoute therefore runs an O(V+E) reachability sweep first and
//     reports ErrNoRoute without starting the recursion.
//   - The returned TotalKm is the goal node's g (the edge sum). The goal
//     node's f may sit above g after bound lifting and is only meaningful
//     as a bound.
package rbfs

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/geo"
)

// FindRoute computes a least-cost route from start to goal on net using
// Recursive Best-First Search. It accepts functional options for
// cancellation and tracing.
//
// Returns:
//
//   - Route: ordered location IDs (start … goal) plus the total kilometers.
//   - err:   a sentinel for invalid inputs, ErrNoRoute if the goal is
//     unreachable, or ctx.Err() if the context was cancelled mid-search.
//
// Preconditions and validation (in order):
//  1. start must be non-empty (ErrEmptyStart).
//  2. goal must be non-empty (ErrEmptyGoal).
//  3. net must be non-nil (ErrNilNetwork).
//  4. net must contain start (ErrStartNotFound).
//  5. net must contain goal (ErrGoalNotFound).
//
// Determinism: identical inputs yield identical routes and identical hook
// sequences; every invocation builds its own private node graph, so
// concurrent calls on the same Network are safe.
func FindRoute(net *core.Network, start, goal string, opts ...Option) (Route, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate identifiers before touching the network.
	if start == "" {
		return Route{}, ErrEmptyStart
	}
	if goal == "" {
		return Route{}, ErrEmptyGoal
	}

	// 3) Validate the network itself.
	if net == nil {
		return Route{}, ErrNilNetwork
	}
	if !net.HasLocation(start) {
		return Route{}, ErrStartNotFound
	}
	if !net.HasLocation(goal) {
		return Route{}, ErrGoalNotFound
	}

	// 4) Reachability sweep: an unreachable goal must surface as ErrNoRoute,
	//    not as unbounded recursion (see package notes).
	if !reachable(net, start, goal) {
		return Route{}, ErrNoRoute
	}

	// 5) Both locations are registered, so coordinate lookups cannot fail.
	goalAt, _ := net.Coord(goal)
	startAt, _ := net.Coord(start)

	s := &searcher{
		net:    net,
		goal:   goal,
		goalAt: goalAt,
		opts:   cfg,
	}

	// 6) Construct the start node: g=0, h=haversine(start, goal), no parent.
	root := s.newNode(start, 0, geo.Haversine(startAt, goalAt), nil)

	// 7) Run the recursion with an infinite initial limit.
	result, _, err := s.search(root, math.Inf(1))
	if err != nil {
		return Route{}, err
	}
	if result == nil {
		// Unreachable after a positive sweep would mean a network invariant
		// broke mid-search; surface it as the no-route outcome.
		return Route{}, ErrNoRoute
	}

	// 8) Reconstruct the route by walking parent links back to the root.
	return Route{
		Locations: reconstruct(result),
		TotalKm:   result.g,
	}, nil
}

// node is one frontier point of a candidate path.
//
// f is the node's current best-known total-cost bound: initialized to g+h
// and only ever revised upward. parent is shared between siblings and
// immutable after construction; the garbage collector keeps the chain alive
// for path reconstruction.
type node struct {
	loc    string  // location ID at this step
	g      float64 // accumulated road distance from the start
	h      float64 // haversine estimate to the goal, fixed at creation
	f      float64 // mutable total-cost bound, f ≥ g
	depth  int     // hops from the start
	parent *node   // predecessor on the candidate path; nil at the root
}

// step snapshots the node for trace hooks.
func (n *node) step() Step {
	return Step{Location: n.loc, G: n.g, H: n.h, F: n.f, Depth: n.depth}
}

// searcher holds the immutable per-invocation state of one FindRoute call.
type searcher struct {
	net    *core.Network // the road network; read-only during the search
	goal   string        // goal location ID
	goalAt geo.Coord     // goal coordinate, resolved once
	opts   Options       // context and hooks
}

// newNode constructs a search node and fires the creation hook.
func (s *searcher) newNode(loc string, g, h float64, parent *node) *node {
	depth := 0
	if parent != nil {
		depth = parent.depth + 1
	}
	n := &node{loc: loc, g: g, h: h, f: g + h, depth: depth, parent: parent}
	if s.opts.OnNodeCreated != nil {
		s.opts.OnNodeCreated(n.step())
	}

	return n
}

// search is one recursive RBFS frame: expand n under the bound fLimit.
//
// Returns (goal node, revised f, nil) on success, (nil, revised f, nil)
// when the subtree is exhausted or pruned — the revised f is the tightest
// lower bound proven for n's subtree — or (nil, _, err) on cancellation.
func (s *searcher) search(n *node, fLimit float64) (*node, float64, error) {
	// 1) Cancellation check at the top of every recursive call.
	select {
	case <-s.opts.Ctx.Done():
		return nil, n.f, s.opts.Ctx.Err()
	default:
	}

	if s.opts.OnExpand != nil {
		s.opts.OnExpand(n.step(), fLimit)
	}

	// 2) Goal test before expansion: success terminates the whole chain.
	if n.loc == s.goal {
		return n, n.f, nil
	}

	// 3) Generate successors in adjacency insertion order.
	succs := s.successors(n)
	if len(succs) == 0 {
		// Dead end: nothing below n, report an infinite bound.
		return nil, math.Inf(1), nil
	}

	// 4) Bound propagation: a child's bound can never undercut the bound
	//    already proven for its parent.
	for _, c := range succs {
		if n.f > c.f {
			s.reviseBound(c, n.f)
		}
	}

	// 5) Best-first loop over the sibling list.
	for {
		// a) Stable sort keeps generation order among equal-f siblings.
		sort.SliceStable(succs, func(i, j int) bool { return succs[i].f < succs[j].f })

		best := succs[0]

		// b) Prune: even the best successor cannot beat the limit, so hand
		//    the tightened bound up to the caller.
		if best.f > fLimit {
			if s.opts.OnPrune != nil {
				s.opts.OnPrune(best.step(), fLimit)
			}

			return nil, best.f, nil
		}

		// c) The best alternative sibling caps how deep we may commit.
		alternative := math.Inf(1)
		if len(succs) > 1 {
			alternative = succs[1].f
		}

		// d) Descend; on return, best.f carries the subtree's revised bound
		//    and the next loop iteration re-sorts with it.
		result, revised, err := s.search(best, math.Min(fLimit, alternative))
		if revised > best.f {
			s.reviseBound(best, revised)
		}
		if err != nil {
			return nil, best.f, err
		}

		// e) Success propagates immediately up the call chain.
		if result != nil {
			return result, best.f, nil
		}
	}
}

// successors expands n into one child per outgoing road, in road insertion
// order. An empty result means a dead end, never an error: both lookups
// below touch only locations that Connect has registered.
func (s *searcher) successors(n *node) []*node {
	roads, _ := s.net.Roads(n.loc)
	if len(roads) == 0 {
		return nil
	}

	out := make([]*node, 0, len(roads))
	for _, r := range roads {
		at, _ := s.net.Coord(r.To)
		out = append(out, s.newNode(r.To, n.g+r.Km, geo.Haversine(at, s.goalAt), n))
	}

	return out
}

// reviseBound raises n.f to revised and fires the revision hook.
func (s *searcher) reviseBound(n *node, revised float64) {
	old := n.f
	n.f = revised
	if s.opts.OnBoundRevised != nil {
		s.opts.OnBoundRevised(n.step(), old, revised)
	}
}

// reconstruct walks parent links from the goal node back to the root and
// reverses the chain into start-to-goal order. O(path length), no mutation.
func reconstruct(n *node) []string {
	path := make([]string, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.loc)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// reachable reports whether goal can be reached from start by following
// roads. Plain iterative breadth-first sweep, O(V+E).
func reachable(net *core.Network, start, goal string) bool {
	if start == goal {
		return true
	}

	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		roads, _ := net.Roads(cur)
		for _, r := range roads {
			if r.To == goal {
				return true
			}
			if !seen[r.To] {
				seen[r.To] = true
				queue = append(queue, r.To)
			}
		}
	}

	return false
}
