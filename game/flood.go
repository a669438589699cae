// Adapted from: https://github.com/hinshun/floodfill

package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/spoilersweep/util/collections"
)

type NeighborGetter func(*Cell) []*Cell
type Visitor func(*Cell)

// flood visits start and each of its neighbours. When recurse is set, every
// neighbour without surrounding mines is then flooded the same way. Each cell
// is expanded at most once.
func flood(start *Cell, recurse bool, visit Visitor, getNeighbors NeighborGetter) {
	expanded := make(collections.Set[Coord])
	visitQueue := deque.New[*Cell]()

	expanded.Add(start.Coord())
	visitQueue.PushBack(start)

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront()
		visit(cell)

		for _, neighbor := range getNeighbors(cell) {
			visit(neighbor)

			if !recurse || !neighbor.IsZero() || expanded.Contains(neighbor.Coord()) {
				continue
			}

			expanded.Add(neighbor.Coord())
			visitQueue.PushBack(neighbor)
		}
	}
}
