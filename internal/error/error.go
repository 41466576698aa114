package error

import (
	"errors"
	"fmt"
)

const (
	CodeOutOfBounds uint8 = iota
	CodeOverlap
	CodeAdjacentPlacement
	CodeInvalidShipSize
	CodePlacementExhausted
	CodeMalformedInput
	CodeNoTargetsLeft
)

// BoardErr is returned by board placement, shooting and the input parsers.
// Every variant is recoverable except CodePlacementExhausted, which ends
// the current game setup.
type BoardErr struct {
	code   uint8
	desc   string
	x, y   int
	length int
}

func newBoardErr(code uint8, desc string) BoardErr {
	return BoardErr{code: code, desc: desc}
}

func (b BoardErr) Error() string {
	return b.desc
}

func (b BoardErr) Code() uint8 {
	return b.code
}

// Coordinates returns the offending position, if the error names one.
func (b BoardErr) Coordinates() (int, int) {
	return b.x, b.y
}

func (b BoardErr) Length() int {
	return b.length
}

// HasCode reports whether any error in err's chain is a BoardErr with code.
func HasCode(err error, code uint8) bool {
	var boardErr BoardErr
	if !errors.As(err, &boardErr) {
		return false
	}
	return boardErr.code == code
}

func ErrCoordinatesOutOfBound(x, y int) error {
	e := newBoardErr(CodeOutOfBounds, fmt.Sprintf("incorrect coordinates: (%d, %d)", x, y))
	e.x, e.y = x, y
	return e
}

func ErrShipOverlap(x, y int) error {
	e := newBoardErr(CodeOverlap, fmt.Sprintf("cannot add ship, overlap detected at (%d, %d)", x, y))
	e.x, e.y = x, y
	return e
}

func ErrPositionAlreadyTargeted(x, y int) error {
	e := newBoardErr(CodeOverlap, fmt.Sprintf("you have already selected this cell: (%d, %d)", x, y))
	e.x, e.y = x, y
	return e
}

func ErrAdjacentPlacement(x, y int) error {
	e := newBoardErr(CodeAdjacentPlacement, fmt.Sprintf("cannot place a ship adjacent to another ship at (%d, %d)", x, y))
	e.x, e.y = x, y
	return e
}

func ErrInvalidShipSize(length int) error {
	e := newBoardErr(CodeInvalidShipSize, fmt.Sprintf("incorrect ship length: %d", length))
	e.length = length
	return e
}

func ErrPlacementExhausted(length, attempts int) error {
	e := newBoardErr(CodePlacementExhausted, fmt.Sprintf("failed to place ship of length %d after %d attempts", length, attempts))
	e.length = length
	return e
}

func ErrMalformedInput(input, reason string) error {
	return newBoardErr(CodeMalformedInput, fmt.Sprintf("invalid input %q: %s", input, reason))
}

func ErrNoTargetsLeft() error {
	return newBoardErr(CodeNoTargetsLeft, "every cell of the enemy board has already been targeted")
}
