package console

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

// ReqAttack is a parsed "column row" line.
type ReqAttack struct {
	X int
	Y int
}

func (r ReqAttack) Coordinates() mb.Coordinates {
	return mb.NewCoordinates(r.X, r.Y)
}

// ReqPlaceShip is a parsed "column row direction" line. Random is set when
// the player asks for the rest of the fleet to be placed for them.
type ReqPlaceShip struct {
	X           int
	Y           int
	Orientation mb.Orientation
	Random      bool
}

func (r ReqPlaceShip) Ship(length int) *mb.Ship {
	return mb.NewShip(length, mb.NewCoordinates(r.X, r.Y), r.Orientation)
}

func parseColumnRow(line string, col, row string) (int, int, error) {
	x, err := strconv.Atoi(col)
	if err != nil {
		return 0, 0, cerr.ErrMalformedInput(line, "column must be a number")
	}
	y, err := strconv.Atoi(row)
	if err != nil {
		return 0, 0, cerr.ErrMalformedInput(line, "row must be a number")
	}
	return x, y, nil
}

// ParseAttack does not range-check; the board reports out-of-bounds shots.
func ParseAttack(line string) (ReqAttack, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return ReqAttack{}, cerr.ErrMalformedInput(line, "expected two numbers: column row")
	}

	x, y, err := parseColumnRow(line, fields[0], fields[1])
	if err != nil {
		return ReqAttack{}, err
	}
	return ReqAttack{X: x, Y: y}, nil
}

// ParsePlaceShip reads "column row direction". The direction may be left
// out for single-cell ships.
func ParsePlaceShip(line string, length int) (ReqPlaceShip, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 && strings.EqualFold(fields[0], "random") {
		return ReqPlaceShip{Random: true}, nil
	}

	switch {
	case len(fields) == 2 && length == 1:
		fields = append(fields, mb.OrientationHorizontal.String())
	case len(fields) == 2:
		return ReqPlaceShip{}, cerr.ErrMalformedInput(line, "direction (h or v) is required for ships longer than 1")
	case len(fields) != 3:
		return ReqPlaceShip{}, cerr.ErrMalformedInput(line, "expected: column row direction")
	}

	x, y, err := parseColumnRow(line, fields[0], fields[1])
	if err != nil {
		return ReqPlaceShip{}, err
	}

	orientation, err := mb.ParseOrientation(fields[2])
	if err != nil {
		return ReqPlaceShip{}, cerr.ErrMalformedInput(line, err.Error())
	}
	return ReqPlaceShip{X: x, Y: y, Orientation: orientation}, nil
}

// ParseConfirmation treats y/yes as consent and anything else as refusal.
func ParseConfirmation(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
