package battleship

import (
	"slices"

	"github.com/dolthub/swiss"
)

type CoordSet struct {
	m *swiss.Map[Coordinates, struct{}]
}

func NewCoordSet() CoordSet {
	return CoordSet{
		m: swiss.NewMap[Coordinates, struct{}](uint32(GridSize * GridSize)),
	}
}

func (set CoordSet) Insert(c Coordinates) {
	set.m.Put(c, struct{}{})
}

func (set CoordSet) Contains(c Coordinates) bool {
	return set.m.Has(c)
}

func (set CoordSet) Len() int {
	return set.m.Count()
}

func (set CoordSet) Clear() {
	set.m.Clear()
}

// Slice returns the members in row-major order.
func (set CoordSet) Slice() []Coordinates {
	out := make([]Coordinates, 0, set.m.Count())
	set.m.Iter(func(c Coordinates, _ struct{}) bool {
		out = append(out, c)
		return false
	})

	slices.SortFunc(out, func(a, b Coordinates) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}
