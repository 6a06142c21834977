package game

import (
	"github.com/gammazero/deque"
	"github.com/pkg/errors"
	"github.com/they4kman/gosnake/util/collections"
)

// Snake is the ordered body, head first. The occupancy set mirrors the deque
// so membership checks don't walk the body.
type Snake struct {
	body     deque.Deque[Cell]
	occupied collections.Set[Cell]
}

func newSnake(cells []Cell) *Snake {
	snake := &Snake{occupied: make(collections.Set[Cell], len(cells))}
	for _, cell := range cells {
		snake.body.PushBack(cell)
		snake.occupied.Add(cell)
	}
	return snake
}

// NewSnake builds a snake from cells ordered head first, checking that they
// form a valid body
func NewSnake(cells []Cell) (*Snake, error) {
	if err := validateBody(cells); err != nil {
		return nil, err
	}
	return newSnake(cells), nil
}

func validateBody(cells []Cell) error {
	if len(cells) == 0 {
		return errors.New("snake must have at least one cell")
	}

	seen := make(collections.Set[Cell], len(cells))
	for i, cell := range cells {
		if !cell.InBounds() {
			return errors.Errorf("snake cell %d %v is out of bounds", i, cell)
		}
		if seen.Contains(cell) {
			return errors.Errorf("snake cell %d %v is duplicated", i, cell)
		}
		seen.Add(cell)

		if i > 0 && !cells[i-1].IsAdjacent(cell) {
			return errors.Errorf("snake cells %d %v and %d %v are not adjacent", i-1, cells[i-1], i, cell)
		}
	}
	return nil
}

func (snake *Snake) Head() Cell {
	return snake.body.Front()
}

func (snake *Snake) Tail() Cell {
	return snake.body.Back()
}

func (snake *Snake) Len() int {
	return snake.body.Len()
}

func (snake *Snake) Contains(cell Cell) bool {
	return snake.occupied.Contains(cell)
}

// Cells returns a copy of the body, head first
func (snake *Snake) Cells() []Cell {
	cells := make([]Cell, snake.body.Len())
	for i := range cells {
		cells[i] = snake.body.At(i)
	}
	return cells
}

func (snake *Snake) pushHead(cell Cell) {
	snake.body.PushFront(cell)
	snake.occupied.Add(cell)
}

func (snake *Snake) popTail() Cell {
	tail := snake.body.PopBack()
	snake.occupied.Remove(tail)
	return tail
}
