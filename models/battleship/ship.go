package battleship

import (
	"fmt"
	"strings"
)

const (
	MinShipLength int = 1
	MaxShipLength int = 3
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "v"
	}
	return "h"
}

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return OrientationHorizontal, nil
	case "v", "vertical":
		return OrientationVertical, nil
	default:
		return OrientationHorizontal, fmt.Errorf("direction must be h or v, got %q", s)
	}
}

// Ship is a straight line of cells starting at its prow. The length is not
// validated here; Board.AddShip rejects lengths outside [1,3].
type Ship struct {
	length      int
	prow        Coordinates
	orientation Orientation
	health      int
	dots        []Coordinates
}

func NewShip(length int, prow Coordinates, orientation Orientation) *Ship {
	sh := &Ship{
		length:      length,
		prow:        prow,
		orientation: orientation,
		health:      length,
	}
	sh.dots = sh.computeDots()
	return sh
}

func (sh *Ship) computeDots() []Coordinates {
	if sh.length <= 0 {
		return nil
	}

	dots := make([]Coordinates, 0, sh.length)
	x, y := sh.prow.X, sh.prow.Y
	for i := 0; i < sh.length; i++ {
		dots = append(dots, NewCoordinates(x, y))
		if sh.orientation == OrientationHorizontal {
			x++
		} else {
			y++
		}
	}
	return dots
}

// Dots returns the occupied cells, prow first.
func (sh *Ship) Dots() []Coordinates {
	return append([]Coordinates(nil), sh.dots...)
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Health() int {
	return sh.health
}

func (sh *Ship) GotHit() {
	if sh.health > 0 {
		sh.health--
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.health == 0
}
