package game

// Intent is a discrete input event, from a key press or a gesture
type Intent int

const (
	IntentUp Intent = iota
	IntentDown
	IntentLeft
	IntentRight
	IntentStart
	IntentRestart
	// Start when idle, restart when over, nothing while playing
	IntentStartOrRestart
)

var intentNames = map[Intent]string{
	IntentUp:             "up",
	IntentDown:           "down",
	IntentLeft:           "left",
	IntentRight:          "right",
	IntentStart:          "start",
	IntentRestart:        "restart",
	IntentStartOrRestart: "start-or-restart",
}

func (intent Intent) String() string {
	if name, ok := intentNames[intent]; ok {
		return name
	}
	return "unknown"
}

func DirectionIntent(direction Direction) Intent {
	switch direction {
	case Down:
		return IntentDown
	case Left:
		return IntentLeft
	case Right:
		return IntentRight
	default:
		return IntentUp
	}
}

// Direction returns the direction a directional intent asks for
func (intent Intent) Direction() (Direction, bool) {
	switch intent {
	case IntentUp:
		return Up, true
	case IntentDown:
		return Down, true
	case IntentLeft:
		return Left, true
	case IntentRight:
		return Right, true
	}
	return Up, false
}
