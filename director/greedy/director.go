package greedy

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/util/collections"
)

// Director follows the shortest path to the food. When the food can't be
// reached it picks the safe move with the most room behind it.
type Director struct {
	log logrus.FieldLogger

	games      int
	bestScore  int
	lastScore  int
	pathMisses int
}

func New(log logrus.FieldLogger) *Director {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Director{log: log}
}

func (director *Director) Start(game.Snapshot) {
	director.games++
	director.lastScore = 0
	director.pathMisses = 0
}

func (director *Director) Act(snapshot game.Snapshot) (game.Direction, bool) {
	director.lastScore = snapshot.Score
	occupied := collections.NewSet(snapshot.Snake...)

	if direction, found := firstStepTowards(snapshot.Head(), snapshot.Food, snapshot.Direction, occupied); found {
		return direction, true
	}

	director.pathMisses++
	return roomiestMove(snapshot.Head(), snapshot.Direction, occupied)
}

func (director *Director) End() {
	if director.lastScore > director.bestScore {
		director.bestScore = director.lastScore
	}
	director.log.WithFields(logrus.Fields{
		"game":        director.games,
		"score":       director.lastScore,
		"best":        director.bestScore,
		"path_misses": director.pathMisses,
	}).Info("Director finished game")
}

// firstStepTowards runs a breadth-first search from head to target and
// returns the first move of a shortest path
func firstStepTowards(head, target game.Cell, current game.Direction, occupied collections.Set[game.Cell]) (game.Direction, bool) {
	firstStep := make(map[game.Cell]game.Direction)
	var queue deque.Deque[game.Cell]

	for _, direction := range game.Directions {
		if direction.IsReverse(current) {
			continue
		}
		next := head.Step(direction)
		if game.IsBlocked(next, occupied) {
			continue
		}
		if _, seen := firstStep[next]; seen {
			continue
		}
		firstStep[next] = direction
		queue.PushBack(next)
	}

	for queue.Len() > 0 {
		cell := queue.PopFront()
		if cell == target {
			return firstStep[cell], true
		}

		for _, neighbor := range cell.Neighbors() {
			if _, seen := firstStep[neighbor]; seen || occupied.Contains(neighbor) {
				continue
			}
			firstStep[neighbor] = firstStep[cell]
			queue.PushBack(neighbor)
		}
	}

	return current, false
}

// roomiestMove picks the non-crashing move leading into the largest open area
func roomiestMove(head game.Cell, current game.Direction, occupied collections.Set[game.Cell]) (game.Direction, bool) {
	best, bestArea := current, 0
	for _, direction := range game.Directions {
		if direction.IsReverse(current) {
			continue
		}
		next := head.Step(direction)
		if game.IsBlocked(next, occupied) {
			continue
		}
		if area := game.ReachableArea(next, occupied); area > bestArea {
			best, bestArea = direction, area
		}
	}
	return best, bestArea > 0
}
