package battleship

import "fmt"

const (
	GridSize        int = 6
	ValidLowerBound int = 1
	ValidUpperBound int = GridSize
)

// Coordinates are 1-indexed: X is the column, Y is the row.
type Coordinates struct {
	X int
	Y int
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// OutOfGrid reports whether either component falls outside the board.
func OutOfGrid(c Coordinates) bool {
	return c.X < ValidLowerBound || c.X > ValidUpperBound || c.Y < ValidLowerBound || c.Y > ValidUpperBound
}

// neighbourOffsets covers all eight surrounding cells.
var neighbourOffsets = [8]Coordinates{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbours returns the in-grid cells adjacent to c, diagonals included.
func (c Coordinates) Neighbours() []Coordinates {
	neighbours := make([]Coordinates, 0, len(neighbourOffsets))
	for _, off := range neighbourOffsets {
		n := NewCoordinates(c.X+off.X, c.Y+off.Y)
		if OutOfGrid(n) {
			continue
		}
		neighbours = append(neighbours, n)
	}
	return neighbours
}

// AllCoordinates lists every cell of the grid in row-major order.
func AllCoordinates() []Coordinates {
	all := make([]Coordinates, 0, GridSize*GridSize)
	for y := ValidLowerBound; y <= ValidUpperBound; y++ {
		for x := ValidLowerBound; x <= ValidUpperBound; x++ {
			all = append(all, NewCoordinates(x, y))
		}
	}
	return all
}
