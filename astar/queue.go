package astar

// frontierPQ is a min-heap of indices into a arena of queueNode values,
// ordered by queueNode.priority() ascending — the float64 generalization of
// dijkstra/dijkstra.go's nodePQ, which orders integer distances the same way.
//
// Lazy-decrease-key applies here too: relaxing an already-queued successor
// pushes a fresh index rather than mutating the existing heap entry; stale
// indices are skipped on pop once their node is in the visited set.
type frontierPQ struct {
	arena   []queueNode
	indices []int
}

func (pq frontierPQ) Len() int { return len(pq.indices) }

func (pq frontierPQ) Less(i, j int) bool {
	return pq.arena[pq.indices[i]].priority() < pq.arena[pq.indices[j]].priority()
}

func (pq frontierPQ) Swap(i, j int) {
	pq.indices[i], pq.indices[j] = pq.indices[j], pq.indices[i]
}

func (pq *frontierPQ) Push(x any) {
	pq.indices = append(pq.indices, x.(int))
}

func (pq *frontierPQ) Pop() any {
	old := pq.indices
	n := len(old)
	idx := old[n-1]
	pq.indices = old[:n-1]

	return idx
}
