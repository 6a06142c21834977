package game

// Director steers the snake in place of a player. It only ever proposes a
// direction; the engine applies the same rules as for keyboard input.
type Director interface {
	/**
	 * Called whenever a new game begins
	 */
	Start(Snapshot)

	/**
	 * Choose the direction for the coming tick, if any
	 */
	Act(Snapshot) (Direction, bool)

	/**
	 * Called once the game is over
	 */
	End()
}
