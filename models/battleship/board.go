package battleship

import (
	"github.com/dolthub/swiss"
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

type Phase uint8

const (
	PhaseEmpty Phase = iota
	PhasePlacing
	PhaseBattling
)

func (p Phase) String() string {
	switch p {
	case PhasePlacing:
		return "placing"
	case PhaseBattling:
		return "battling"
	default:
		return "empty"
	}
}

type CellState uint8

const (
	CellEmpty CellState = iota
	CellMiss
	CellHit
	CellShip
)

// Board is one player's 6x6 defence grid.
//
// Lifecycle: Empty -> Placing (AddShip*) -> Battling (Shot*) -> Empty (Reset).
// AddShip must not be called once the first Shot has been taken; the board
// does not guard against it.
type Board struct {
	ships     []*Ship
	fleet     *swiss.Map[Coordinates, *Ship]
	hits      CoordSet
	misses    CoordSet
	contour   CoordSet
	liveShips int
	hidden    bool
	phase     Phase
}

func NewBoard() *Board {
	return &Board{
		ships:   make([]*Ship, 0, len(DefaultFleet)),
		fleet:   swiss.NewMap[Coordinates, *Ship](uint32(GridSize * GridSize)),
		hits:    NewCoordSet(),
		misses:  NewCoordSet(),
		contour: NewCoordSet(),
	}
}

func (b *Board) Out(c Coordinates) bool {
	return OutOfGrid(c)
}

// AddShip validates size, bounds, overlap and spacing, in that order, and
// only mutates the board when every check passes.
func (b *Board) AddShip(ship *Ship) error {
	if ship.Length() < MinShipLength || ship.Length() > MaxShipLength {
		return cerr.ErrInvalidShipSize(ship.Length())
	}

	dots := ship.Dots()
	for _, dot := range dots {
		if b.Out(dot) {
			return cerr.ErrCoordinatesOutOfBound(dot.X, dot.Y)
		}
	}
	for _, dot := range dots {
		if b.fleet.Has(dot) {
			return cerr.ErrShipOverlap(dot.X, dot.Y)
		}
	}
	for _, dot := range dots {
		if b.contour.Contains(dot) {
			return cerr.ErrAdjacentPlacement(dot.X, dot.Y)
		}
	}

	b.liveShips++
	b.ships = append(b.ships, ship)
	for _, dot := range dots {
		b.fleet.Put(dot, ship)
	}
	b.addContour(ship)
	b.phase = PhasePlacing
	return nil
}

func (b *Board) addContour(ship *Ship) {
	for _, dot := range ship.Dots() {
		for _, n := range dot.Neighbours() {
			b.contour.Insert(n)
		}
	}
}

// Shot resolves an attack on c and reports whether it hit a live ship.
// Whether a hit grants another move is up to the caller.
func (b *Board) Shot(c Coordinates) (bool, error) {
	if b.Out(c) {
		return false, cerr.ErrCoordinatesOutOfBound(c.X, c.Y)
	}
	if b.IsTargeted(c) {
		return false, cerr.ErrPositionAlreadyTargeted(c.X, c.Y)
	}
	b.phase = PhaseBattling

	ship, prs := b.fleet.Get(c)
	if prs && !ship.IsSunk() {
		b.hits.Insert(c)
		ship.GotHit()
		if ship.IsSunk() {
			b.liveShips--
		}
		return true, nil
	}

	b.misses.Insert(c)
	return false, nil
}

// Reset returns the board to the empty state. The hidden flag is kept.
func (b *Board) Reset() {
	b.ships = b.ships[:0]
	b.fleet.Clear()
	b.hits.Clear()
	b.misses.Clear()
	b.contour.Clear()
	b.liveShips = 0
	b.phase = PhaseEmpty
}

func (b *Board) IsTargeted(c Coordinates) bool {
	return b.hits.Contains(c) || b.misses.Contains(c)
}

// Untargeted lists, in row-major order, every cell not yet shot at.
func (b *Board) Untargeted() []Coordinates {
	all := AllCoordinates()
	out := make([]Coordinates, 0, len(all))
	for _, c := range all {
		if !b.IsTargeted(c) {
			out = append(out, c)
		}
	}
	return out
}

// ShipAt returns the ship occupying c, or nil.
func (b *Board) ShipAt(c Coordinates) *Ship {
	ship, _ := b.fleet.Get(c)
	return ship
}

// CellAt is the presentation view of c. In hidden mode unhit ship cells
// read as empty.
func (b *Board) CellAt(c Coordinates) CellState {
	switch {
	case b.hits.Contains(c):
		return CellHit
	case b.misses.Contains(c):
		return CellMiss
	case !b.hidden && b.fleet.Has(c):
		return CellShip
	default:
		return CellEmpty
	}
}

func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

func (b *Board) IsHidden() bool {
	return b.hidden
}

func (b *Board) LiveShips() int {
	return b.liveShips
}

func (b *Board) Ships() []*Ship {
	return append([]*Ship(nil), b.ships...)
}

func (b *Board) Hits() []Coordinates {
	return b.hits.Slice()
}

func (b *Board) Misses() []Coordinates {
	return b.misses.Slice()
}

func (b *Board) Contour() []Coordinates {
	return b.contour.Slice()
}

func (b *Board) Phase() Phase {
	return b.phase
}
