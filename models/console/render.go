package console

import (
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

const (
	MarkerHit   = "X"
	MarkerMiss  = "T"
	MarkerShip  = "■"
	MarkerEmpty = "O"
)

func marker(state mb.CellState) string {
	switch state {
	case mb.CellHit:
		return MarkerHit
	case mb.CellMiss:
		return MarkerMiss
	case mb.CellShip:
		return MarkerShip
	default:
		return MarkerEmpty
	}
}

// RenderBoard draws the grid with column headers and row labels:
//
//	  | 1 | 2 | 3 | 4 | 5 | 6 |
//	1 | O | O | ...
func RenderBoard(title string, b *mb.Board) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(title)
		sb.WriteString("\n")
	}

	sb.WriteString("  |")
	for col := mb.ValidLowerBound; col <= mb.ValidUpperBound; col++ {
		sb.WriteString(" " + strconv.Itoa(col) + " |")
	}
	sb.WriteString("\n")

	for row := mb.ValidLowerBound; row <= mb.ValidUpperBound; row++ {
		sb.WriteString(strconv.Itoa(row) + " |")
		for col := mb.ValidLowerBound; col <= mb.ValidUpperBound; col++ {
			sb.WriteString(" " + marker(b.CellAt(mb.NewCoordinates(col, row))) + " |")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
