package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/input"
)

// Each board cell is two columns wide so the grid looks square
const cellColumns = 2

const frameInterval = 33 * time.Millisecond

// Rows above the board
const headerRows = 1

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	bodyStyle   = tcell.StyleDefault.Background(tcell.ColorGreen)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var keyIntents = map[tcell.Key]game.Intent{
	tcell.KeyUp:    game.IntentUp,
	tcell.KeyDown:  game.IntentDown,
	tcell.KeyLeft:  game.IntentLeft,
	tcell.KeyRight: game.IntentRight,
	tcell.KeyEnter: game.IntentStartOrRestart,
}

// Run draws the session on the terminal until the player quits or ctx ends
func Run(ctx context.Context, session *game.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return run(ctx, screen, session)
}

func run(ctx context.Context, screen tcell.Screen, session *game.Session) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil once the screen is finalized
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !HandleEvent(ev, session) {
				return nil
			}

		case <-ticker.C:
			Draw(screen, session.Snapshot())
			screen.Show()
		}
	}
}

// HandleEvent forwards a terminal event to the session. It returns false when
// the player asked to quit.
func HandleEvent(ev tcell.Event, session *game.Session) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

		if intent, ok := keyIntents[ev.Key()]; ok {
			session.Send(intent)
		} else if ev.Key() == tcell.KeyRune {
			if intent, ok := input.RuneIntent(ev.Rune()); ok {
				session.Send(intent)
			}
		}

	case *tcell.EventResize:
		// Picked up by the next Draw
	}

	return true
}

// Draw renders a snapshot: a header line, then the bordered board
func Draw(screen tcell.Screen, snapshot game.Snapshot) {
	screen.Clear()

	header := fmt.Sprintf("score %d  level %d  length %d", snapshot.Score, snapshot.SpeedLevel, snapshot.Len())
	drawText(screen, 0, 0, header, textStyle)
	if hint := snapshot.Status.Hint(); hint != "" {
		style := textStyle
		if snapshot.Status == game.GameOver {
			style = overStyle
		}
		drawText(screen, len(header)+3, 0, hint, style)
	}

	width := game.BoardSize*cellColumns + 2
	top := headerRows
	bottom := top + game.BoardSize + 1
	for x := 0; x < width; x++ {
		screen.SetContent(x, top, '─', nil, borderStyle)
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := top; y <= bottom; y++ {
		screen.SetContent(0, y, '│', nil, borderStyle)
		screen.SetContent(width-1, y, '│', nil, borderStyle)
	}

	drawCell(screen, snapshot.Food, '●', foodStyle)
	for i, cell := range snapshot.Snake {
		if i == 0 {
			drawCell(screen, cell, ' ', headStyle)
		} else {
			drawCell(screen, cell, ' ', bodyStyle)
		}
	}
}

// CellOrigin returns the screen position of the left column of a board cell
func CellOrigin(cell game.Cell) (x, y int) {
	return 1 + cell.X*cellColumns, headerRows + 1 + cell.Y
}

func drawCell(screen tcell.Screen, cell game.Cell, r rune, style tcell.Style) {
	x, y := CellOrigin(cell)
	screen.SetContent(x, y, r, nil, style)
	screen.SetContent(x+1, y, ' ', nil, style)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
