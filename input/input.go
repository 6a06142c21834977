// Package input turns raw key presses and drag gestures into game intents.
// Frontends map their own arrow/enter keys; letters and swipes are shared.
package input

import (
	"math"
	"unicode"

	"github.com/they4kman/gosnake/game"
)

// Minimum drag length, in pixels, for a gesture to count as a swipe
const DefaultSwipeThreshold = 24.0

var runeIntents = map[rune]game.Intent{
	'w': game.IntentUp,
	'a': game.IntentLeft,
	's': game.IntentDown,
	'd': game.IntentRight,
	'r': game.IntentRestart,
	' ': game.IntentStartOrRestart,
}

// RuneIntent maps a typed character to an intent: WASD steer, r restarts,
// space starts or restarts
func RuneIntent(r rune) (game.Intent, bool) {
	intent, ok := runeIntents[unicode.ToLower(r)]
	return intent, ok
}

// Swipe maps a drag of (dx, dy) to a direction along its dominant axis. dy
// grows downwards, as in screen coordinates. Drags shorter than threshold, or
// exactly diagonal, are not swipes.
func Swipe(dx, dy, threshold float64) (game.Direction, bool) {
	if math.Hypot(dx, dy) < threshold {
		return game.Up, false
	}

	absX, absY := math.Abs(dx), math.Abs(dy)
	switch {
	case absX > absY && dx > 0:
		return game.Right, true
	case absX > absY:
		return game.Left, true
	case absY > absX && dy > 0:
		return game.Down, true
	case absY > absX:
		return game.Up, true
	}
	return game.Up, false
}
