package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Cell is a position on the board. It carries no identity beyond its
// coordinates, so it can be compared with == and used as a map key.
type Cell struct {
	X, Y int
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.X, cell.Y)
}

// Add returns the cell offset by (dx, dy)
func (cell Cell) Add(dx, dy int) Cell {
	return Cell{X: cell.X + dx, Y: cell.Y + dy}
}

// Step returns the neighbouring cell in the given direction
func (cell Cell) Step(direction Direction) Cell {
	dx, dy := direction.Offset()
	return cell.Add(dx, dy)
}

// InBounds reports whether the cell lies on the board
func (cell Cell) InBounds() bool {
	return cell.X >= 0 && cell.Y >= 0 && cell.X < BoardSize && cell.Y < BoardSize
}

// IsAdjacent reports whether other is exactly one orthogonal step away
func (cell Cell) IsAdjacent(other Cell) bool {
	dx, dy := abs(cell.X-other.X), abs(cell.Y-other.Y)
	return dx+dy == 1
}

// Neighbors returns the in-bounds orthogonal neighbours of the cell
func (cell Cell) Neighbors() []Cell {
	neighbors := make([]Cell, 0, len(Directions))
	for _, direction := range Directions {
		neighbor := cell.Step(direction)
		if neighbor.InBounds() {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (cell Cell) index() int {
	return cell.Y*BoardSize + cell.X
}

func cellAt(idx int) Cell {
	return Cell{X: idx % BoardSize, Y: idx / BoardSize}
}

// Cells are written as a flow pair [x, y]
func (cell Cell) MarshalYAML() (interface{}, error) {
	return []int{cell.X, cell.Y}, nil
}

func (cell *Cell) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var pair []int
	if err := unmarshal(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.Errorf("cell must have exactly 2 coordinates, got %d", len(pair))
	}
	cell.X, cell.Y = pair[0], pair[1]
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
