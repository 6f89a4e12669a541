// Package astar runs a weighted A* search over a grid, using a jps.Generator
// as its children function so the frontier only ever expands jump points
// instead of every unit cell. The search loop's shape — a container/heap
// priority queue, a runner struct holding the loop's mutable state, lazy
// decrease-key relaxation — is generalized from dijkstra/dijkstra.go's
// integer-distance search to JPS's float64 depth+heuristic ordering.
package astar

import (
	"container/heap"
	"log/slog"
	"time"

	"github.com/katalvlaran/jpsmaze/event"
	"github.com/katalvlaran/jpsmaze/heuristic"
	"github.com/katalvlaran/jpsmaze/jps"
	"github.com/katalvlaran/jpsmaze/position"
)

// Search finds the lowest-cost route from start to goal on the grid gen is
// bound to, using h to steer the frontier and gen to generate successors.
// It emits event.Enqueued on sender for every relaxed successor and exactly
// one event.End carrying the returned Info when it finishes, then closes
// sender if it implements event.Closer.
//
// Search never returns an error for "no path found" — that is a valid Info
// with a nil Path. It returns an error only for invalid arguments or a
// degenerate start == goal request.
func Search(start, goal position.Position, h heuristic.Heuristic, gen *jps.Generator, sender event.Sender) (*Info, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if sender == nil {
		return nil, ErrNilSender
	}
	if start == goal {
		return nil, ErrStartEqualsGoal
	}

	startedAt := time.Now()
	slog.Debug("astar: search start", "start", start, "goal", goal)

	r := &runner{
		gen:     gen,
		h:       h,
		sender:  sender,
		parents: make(map[position.Position]position.Position),
		depth:   map[position.Position]float64{start: 0},
		visited: make(map[position.Position]struct{}),
	}
	r.pq.arena = append(r.pq.arena, queueNode{node: start, heuristic: h.Compute(start), depth: 0})
	heap.Push(&r.pq, 0)

	info := r.run(start, goal)
	info.Time = time.Since(startedAt)

	sender.Send(event.End{Payload: *info})
	if closer, ok := sender.(event.Closer); ok {
		closer.Close()
	}

	if info.Path != nil {
		slog.Debug("astar: search end", "nodes", info.Nodes, "cost", info.Path.Cost)
	} else {
		slog.Debug("astar: search end, no path", "nodes", info.Nodes)
	}

	return info, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	gen     *jps.Generator
	h       heuristic.Heuristic
	sender  event.Sender
	pq      frontierPQ
	parents map[position.Position]position.Position
	depth   map[position.Position]float64
	visited map[position.Position]struct{}
}

// run drives the main pop/expand/relax loop and returns the accumulated
// Info, with Path set only on success.
func (r *runner) run(start, goal position.Position) *Info {
	info := &Info{}

	for r.pq.Len() > 0 {
		if l := r.pq.Len(); l > info.MaxLength {
			info.MaxLength = l
		}

		idx := heap.Pop(&r.pq).(int)
		current := r.pq.arena[idx].node

		if _, seen := r.visited[current]; seen {
			continue
		}
		r.visited[current] = struct{}{}
		info.Nodes++

		if current == goal {
			info.Path = r.reconstruct(start, goal)
			return info
		}

		if !r.expand(current) {
			// The event channel reported closed: the consumer is gone, so
			// abort with no path rather than keep expanding into the void.
			return info
		}
	}

	return info
}

// expand generates current's children, relaxes each one that offers a
// strictly shorter depth, and reports whether the event channel is still
// open (false means the search must abort).
func (r *runner) expand(current position.Position) bool {
	var parentPtr *position.Position
	if p, ok := r.parents[current]; ok {
		parentPtr = &p
	}

	for _, child := range r.gen.GenerateChildren(current, parentPtr) {
		if _, seen := r.visited[child.Node]; seen {
			continue
		}

		newDepth := r.depth[current] + child.Weight
		if existing, ok := r.depth[child.Node]; ok && newDepth >= existing {
			continue
		}

		r.parents[child.Node] = current
		r.depth[child.Node] = newDepth

		idx := len(r.pq.arena)
		r.pq.arena = append(r.pq.arena, queueNode{
			node:      child.Node,
			heuristic: r.h.Compute(child.Node),
			depth:     newDepth,
		})
		heap.Push(&r.pq, idx)

		if !r.sender.Send(event.Enqueued{Node: child.Node, Depth: newDepth}) {
			return false
		}
	}

	return true
}

// reconstruct walks parents back from goal to start, reverses the
// compressed jump-point path, and expands it into a dense Path via the
// generator's ReconstructPath.
func (r *runner) reconstruct(start, goal position.Position) *Path {
	compressed := []position.Position{goal}
	for cur := goal; cur != start; {
		parent := r.parents[cur]
		compressed = append(compressed, parent)
		cur = parent
	}

	for i, j := 0, len(compressed)-1; i < j; i, j = i+1, j-1 {
		compressed[i], compressed[j] = compressed[j], compressed[i]
	}

	dense, cost := r.gen.ReconstructPath(compressed)

	return &Path{Positions: dense, Cost: cost}
}
