package battleship

import (
	"slices"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

const (
	DefaultMaxAttempts  int = 10000
	DefaultFleetRetries int = 100
)

// DefaultFleet is the manifest every player places, largest ship first.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

// RandSource is satisfied by *math/rand/v2.Rand.
type RandSource interface {
	IntN(n int) int
}

type PlacementGenerator struct {
	rnd          RandSource
	fleet        []int
	maxAttempts  int
	fleetRetries int
}

type PlacementOption func(*PlacementGenerator) error

func NewPlacementGenerator(rnd RandSource, optFuncs ...PlacementOption) (*PlacementGenerator, error) {
	pg := PlacementGenerator{
		rnd:          rnd,
		fleet:        DefaultFleet,
		maxAttempts:  DefaultMaxAttempts,
		fleetRetries: 0,
	}
	for _, opt := range optFuncs {
		if err := opt(&pg); err != nil {
			return nil, err
		}
	}

	// Longer ships have fewer legal spots, so they go first.
	pg.fleet = slices.Clone(pg.fleet)
	slices.SortStableFunc(pg.fleet, func(a, b int) int { return b - a })

	return &pg, nil
}

func WithFleet(fleet []int) PlacementOption {
	return func(pg *PlacementGenerator) error {
		for _, length := range fleet {
			if length < MinShipLength || length > MaxShipLength {
				return cerr.ErrInvalidShipSize(length)
			}
		}
		pg.fleet = fleet
		return nil
	}
}

func WithMaxAttempts(attempts int) PlacementOption {
	return func(pg *PlacementGenerator) error {
		if attempts < 1 {
			attempts = 1
		}
		pg.maxAttempts = attempts
		return nil
	}
}

// WithFleetRetries sets how many times a whole fleet is re-rolled after a
// ship runs out of attempts. Zero hands PlacementExhausted straight back.
func WithFleetRetries(retries int) PlacementOption {
	return func(pg *PlacementGenerator) error {
		if retries < 0 {
			retries = 0
		}
		pg.fleetRetries = retries
		return nil
	}
}

func (pg *PlacementGenerator) Fleet() []int {
	return slices.Clone(pg.fleet)
}

// Place fills an empty board with the fleet. On failure the board is left
// reset and the last PlacementExhausted error is returned.
func (pg *PlacementGenerator) Place(b *Board) error {
	var err error
	for round := 0; round <= pg.fleetRetries; round++ {
		if err = pg.placeFleet(b); err == nil {
			return nil
		}
	}
	return err
}

func (pg *PlacementGenerator) placeFleet(b *Board) error {
	b.Reset()

	for _, length := range pg.fleet {
		placed := false
		for attempt := 0; attempt < pg.maxAttempts; attempt++ {
			if err := b.AddShip(pg.RandomShip(length)); err == nil {
				placed = true
				break
			}
		}

		if !placed {
			b.Reset()
			return cerr.ErrPlacementExhausted(length, pg.maxAttempts)
		}
	}
	return nil
}

// RandomShip samples an orientation and a prow such that a ship of the
// given length fits inside the grid.
func (pg *PlacementGenerator) RandomShip(length int) *Ship {
	orientation := Orientation(pg.rnd.IntN(2))

	span := GridSize - length + 1
	if span < 1 {
		span = 1
	}

	var x, y int
	if orientation == OrientationHorizontal {
		x = ValidLowerBound + pg.rnd.IntN(span)
		y = ValidLowerBound + pg.rnd.IntN(GridSize)
	} else {
		x = ValidLowerBound + pg.rnd.IntN(GridSize)
		y = ValidLowerBound + pg.rnd.IntN(span)
	}

	return NewShip(length, NewCoordinates(x, y), orientation)
}
