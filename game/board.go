package game

import (
	"strings"

	"github.com/they4kman/gosnake/util/collections"
)

// Characters used when drawing a board as text
const (
	boardEmpty = '.'
	boardHead  = '@'
	boardBody  = 'o'
	boardFood  = '*'
)

// freeCells lists every cell not covered by the snake, in row order
func freeCells(snake *Snake) []Cell {
	free := make([]Cell, 0, NumCells-snake.Len())
	for idx := 0; idx < NumCells; idx++ {
		cell := cellAt(idx)
		if !snake.Contains(cell) {
			free = append(free, cell)
		}
	}
	return free
}

// IsBlocked reports whether moving onto cell would end the game, given the
// snake cells in occupied
func IsBlocked(cell Cell, occupied collections.Set[Cell]) bool {
	return !cell.InBounds() || occupied.Contains(cell)
}

// DrawBoard renders a snapshot as BoardSize lines of text
func DrawBoard(snapshot Snapshot) string {
	rows := make([][]byte, BoardSize)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(string(boardEmpty), BoardSize))
	}

	put := func(cell Cell, c byte) {
		if cell.InBounds() {
			rows[cell.Y][cell.X] = c
		}
	}

	put(snapshot.Food, boardFood)
	for i, cell := range snapshot.Snake {
		if i == 0 {
			put(cell, boardHead)
		} else {
			put(cell, boardBody)
		}
	}

	lines := make([]string, BoardSize)
	for y, row := range rows {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}
