package game

import (
	"strings"

	"github.com/pkg/errors"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var Directions = []Direction{Up, Down, Left, Right}

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (direction Direction) String() string {
	if name, ok := directionNames[direction]; ok {
		return name
	}
	return "unknown"
}

// Offset returns the unit step of the direction. y grows downwards.
func (direction Direction) Offset() (dx, dy int) {
	switch direction {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (direction Direction) Reverse() Direction {
	switch direction {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (direction Direction) IsReverse(other Direction) bool {
	return direction.Reverse() == other
}

func ParseDirection(name string) (Direction, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for direction, directionName := range directionNames {
		if directionName == name {
			return direction, nil
		}
	}
	return Up, errors.Errorf("invalid direction %q", name)
}

func (direction Direction) MarshalYAML() (interface{}, error) {
	return direction.String(), nil
}

func (direction *Direction) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseDirection(name)
	if err != nil {
		return err
	}
	*direction = parsed
	return nil
}
