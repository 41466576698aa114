package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipDots(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		prow        Coordinates
		orientation Orientation
		expected    []Coordinates
	}{
		{
			name:        "horizontal length 3",
			length:      3,
			prow:        NewCoordinates(3, 4),
			orientation: OrientationHorizontal,
			expected:    []Coordinates{{3, 4}, {4, 4}, {5, 4}},
		},
		{
			name:        "vertical length 3",
			length:      3,
			prow:        NewCoordinates(3, 4),
			orientation: OrientationVertical,
			expected:    []Coordinates{{3, 4}, {3, 5}, {3, 6}},
		},
		{
			name:        "single cell",
			length:      1,
			prow:        NewCoordinates(6, 6),
			orientation: OrientationVertical,
			expected:    []Coordinates{{6, 6}},
		},
		{
			name:        "zero length has no dots",
			length:      0,
			prow:        NewCoordinates(1, 1),
			orientation: OrientationHorizontal,
			expected:    nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ship := NewShip(test.length, test.prow, test.orientation)
			assert.Equal(t, test.expected, ship.Dots())
			// deterministic across calls
			assert.Equal(t, ship.Dots(), ship.Dots())
		})
	}
}

func TestShipDotsAreCopied(t *testing.T) {
	ship := NewShip(2, NewCoordinates(1, 1), OrientationHorizontal)
	dots := ship.Dots()
	dots[0] = NewCoordinates(6, 6)
	assert.Equal(t, NewCoordinates(1, 1), ship.Dots()[0])
}

func TestShipHealth(t *testing.T) {
	ship := NewShip(2, NewCoordinates(1, 1), OrientationVertical)
	assert.Equal(t, 2, ship.Health())
	assert.False(t, ship.IsSunk())

	ship.GotHit()
	assert.Equal(t, 1, ship.Health())
	assert.False(t, ship.IsSunk())

	ship.GotHit()
	assert.True(t, ship.IsSunk())

	ship.GotHit()
	assert.Equal(t, 0, ship.Health(), "health never drops below zero")
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		input    string
		expected Orientation
		wantErr  bool
	}{
		{input: "h", expected: OrientationHorizontal},
		{input: "V", expected: OrientationVertical},
		{input: " vertical ", expected: OrientationVertical},
		{input: "horizontal", expected: OrientationHorizontal},
		{input: "x", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			o, err := ParseOrientation(test.input)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, o)
		})
	}
}
