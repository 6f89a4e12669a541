// Package jpsmaze is the module root for a Jump Point Search pathfinding
// engine over bounded 2D grids.
//
// jpsmaze finds shortest paths from a start cell to a goal cell on a
// 4-/8-connected grid with impassable walls, using Jump Point Search as the
// children generator inside a weighted A* search. The engine streams
// search-progress events to an external observer concurrently with the
// search, and returns a dense, unit-step path plus search statistics.
//
// Everything lives under seven subpackages:
//
//	position/    — 2D integer coordinate algebra
//	grid/        — immutable bounded grid, wall set, start/goal
//	gridbuilder/ — accumulating, validating grid constructor
//	heuristic/   — admissible diagonal-distance heuristic
//	event/       — unbounded/bounded/no-op event channel back-ends
//	jps/         — pruned + jumped successor generator (Jump Point Search)
//	astar/       — priority-driven A* search loop and path reconstruction
//
// Typical usage:
//
//	b := gridbuilder.New()
//	b.SetWidth(10).SetHeight(10).SetStart(position.New(0, 0)).SetGoal(position.New(9, 9))
//	g, err := b.Build()
//
//	h := heuristic.NewDiagonal(g.Goal())
//	gen := jps.NewGenerator(g)
//	sender, events := event.NewUnbounded()
//
//	go func() {
//	    for msg := range events {
//	        _ = msg // observe Enqueued/End messages
//	    }
//	}()
//
//	result, err := astar.Search(g.Start(), g.Goal(), h, gen, sender)
//
// Loading grids from images or packed binary files, rendering, and
// command-line argument parsing are explicit Non-goals of this module; they
// are external collaborators that plug into the interfaces above.
package jpsmaze
