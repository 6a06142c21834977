package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/input"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	cellWidth    = 24
	headerHeight = 50
)

var (
	bgColor    = colornames.Gainsboro
	boardColor = colornames.Whitesmoke
	foodColor  = colornames.Crimson
	headColor  = colornames.Darkgreen
	bodyColor  = colornames.Seagreen
)

var arrowIntents = map[pixelgl.Button]game.Intent{
	pixelgl.KeyUp:    game.IntentUp,
	pixelgl.KeyDown:  game.IntentDown,
	pixelgl.KeyLeft:  game.IntentLeft,
	pixelgl.KeyRight: game.IntentRight,
	pixelgl.KeyEnter: game.IntentStartOrRestart,
}

// Run opens the game window and renders session snapshots until the window
// is closed. It must be called from within pixelgl.Run.
func Run(session *game.Session) error {
	cfg := pixelgl.WindowConfig{
		Title: "gosnake",
		Bounds: pixel.R(
			0, 0,
			float64(game.BoardSize*cellWidth),
			float64(game.BoardSize*cellWidth+headerHeight),
		),
		VSync: true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	topLeft := win.Bounds().Vertices()[1]
	boardTopLeft := topLeft.Sub(pixel.V(0, headerHeight))

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	scoreText := text.New(topLeft.Add(pixel.V(20, -30)), basicAtlas)
	statusText := text.New(topLeft.Add(pixel.V(float64(game.BoardSize*cellWidth)/2, -30)), basicAtlas)

	imd := imdraw.New(nil)

	var (
		frames     = 0
		second     = time.Tick(time.Second)
		dragStart  pixel.Vec
		isDragging bool
	)

	for !win.Closed() {
		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
			continue
		}

		for button, intent := range arrowIntents {
			if win.JustPressed(button) {
				session.Send(intent)
			}
		}
		for _, r := range win.Typed() {
			if intent, ok := input.RuneIntent(r); ok {
				session.Send(intent)
			}
		}

		// A mouse drag stands in for a touch swipe
		if win.JustPressed(pixelgl.MouseButtonLeft) {
			dragStart = win.MousePosition()
			isDragging = true
		}
		if isDragging && win.JustReleased(pixelgl.MouseButtonLeft) {
			isDragging = false
			delta := win.MousePosition().Sub(dragStart)
			// pixel's y axis points up, the board's points down
			if direction, ok := input.Swipe(delta.X, -delta.Y, input.DefaultSwipeThreshold); ok {
				session.Send(game.DirectionIntent(direction))
			} else {
				session.Send(game.IntentStartOrRestart)
			}
		}

		snapshot := session.Snapshot()

		win.Clear(bgColor)

		scoreText.Clear()
		scoreText.Color = colornames.Black
		fmt.Fprintf(scoreText, "%04d  lvl %d", snapshot.Score, snapshot.SpeedLevel)
		scoreText.Draw(win, pixel.IM)

		statusText.Clear()
		statusText.Color = statusColor(snapshot.Status)
		fmt.Fprint(statusText, snapshot.Status.Hint())
		statusText.Draw(win, pixel.IM)

		imd.Clear()
		drawBoard(imd, boardTopLeft, snapshot)
		imd.Draw(win)

		win.Update()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}
	}

	return nil
}

func statusColor(status game.GameStatus) color.Color {
	switch status {
	case game.GameOver:
		return colornames.Red
	case game.Idle:
		return colornames.Darkcyan
	default:
		return colornames.Black
	}
}

func drawBoard(imd *imdraw.IMDraw, boardTopLeft pixel.Vec, snapshot game.Snapshot) {
	fillRect(imd, boardColor,
		boardTopLeft.Sub(pixel.V(0, float64(game.BoardSize*cellWidth))),
		boardTopLeft.Add(pixel.V(float64(game.BoardSize*cellWidth), 0)),
	)

	fillCell(imd, boardTopLeft, snapshot.Food, foodColor)
	for i := len(snapshot.Snake) - 1; i >= 0; i-- {
		c := bodyColor
		if i == 0 {
			c = headColor
		}
		fillCell(imd, boardTopLeft, snapshot.Snake[i], c)
	}
}

func fillCell(imd *imdraw.IMDraw, boardTopLeft pixel.Vec, cell game.Cell, c color.Color) {
	start := boardTopLeft.Add(
		pixel.V(
			float64(cellWidth*cell.X),
			-float64(cellWidth*(cell.Y+1)),
		),
	)
	end := start.Add(pixel.V(cellWidth, cellWidth))
	// 1px gap so neighbouring cells stay distinguishable
	fillRect(imd, c, start.Add(pixel.V(1, 1)), end.Sub(pixel.V(1, 1)))
}

func fillRect(imd *imdraw.IMDraw, c color.Color, min, max pixel.Vec) {
	imd.Color = c
	imd.Push(min, max)
	imd.Rectangle(0) // 0 = filled
}
