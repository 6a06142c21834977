package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/gosnake/util/collections"
)

type Passable func(Cell) bool
type Visitor func(Cell)

// Flood visits every cell reachable from start through passable cells,
// breadth first. start itself is visited without being checked.
func Flood(start Cell, passable Passable, visit Visitor) {
	visited := collections.NewSet(start)
	var visitQueue deque.Deque[Cell]
	visitQueue.PushBack(start)

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront()
		visit(cell)

		for _, neighbor := range cell.Neighbors() {
			// Don't visit, if already visited
			if visited.Contains(neighbor) || !passable(neighbor) {
				continue
			}
			visited.Add(neighbor)
			visitQueue.PushBack(neighbor)
		}
	}
}

// ReachableArea counts the free cells reachable from start, start included,
// with occupied cells treated as walls
func ReachableArea(start Cell, occupied collections.Set[Cell]) int {
	area := 0
	Flood(
		start,
		func(cell Cell) bool {
			return !occupied.Contains(cell)
		},
		func(Cell) {
			area++
		},
	)
	return area
}
