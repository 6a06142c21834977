package random

import (
	"math/rand"

	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/util/collections"
)

// Director turns at random, avoiding moves that crash on the next tick
type Director struct {
	rand *rand.Rand
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Start(game.Snapshot) {}

func (director *Director) Act(snapshot game.Snapshot) (game.Direction, bool) {
	occupied := collections.NewSet(snapshot.Snake...)
	head := snapshot.Head()

	directions := make([]game.Direction, len(game.Directions))
	copy(directions, game.Directions)
	director.rand.Shuffle(len(directions), func(i, j int) {
		directions[i], directions[j] = directions[j], directions[i]
	})

	for _, direction := range directions {
		if direction.IsReverse(snapshot.Direction) {
			continue
		}
		if !game.IsBlocked(head.Step(direction), occupied) {
			return direction, true
		}
	}
	return snapshot.Direction, false
}

func (director *Director) End() {}
