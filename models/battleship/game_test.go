package battleship

import (
	"io"
	"testing"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedTargeter struct {
	targets []Coordinates
	i       int
}

func (st *scriptedTargeter) Target(_ *Board) (Coordinates, error) {
	if st.i >= len(st.targets) {
		return Coordinates{}, io.EOF
	}
	c := st.targets[st.i]
	st.i++
	return c, nil
}

func newScriptedGame(t *testing.T, first, second []Coordinates) (*Game, *Player, *Player) {
	t.Helper()

	p1 := NewPlayer("host", false, &scriptedTargeter{targets: first})
	p2 := NewPlayer("ai", true, &scriptedTargeter{targets: second})
	require.NoError(t, p1.Board().AddShip(NewShip(1, NewCoordinates(1, 1), OrientationHorizontal)))
	require.NoError(t, p2.Board().AddShip(NewShip(2, NewCoordinates(5, 6), OrientationHorizontal)))

	return NewGame(p1, p2), p1, p2
}

func TestPlayTurnMissPassesTurn(t *testing.T) {
	game, p1, p2 := newScriptedGame(t, []Coordinates{{3, 3}}, nil)

	var reports []ShotReport
	require.NoError(t, game.PlayTurn(func(r ShotReport) { reports = append(reports, r) }))

	require.Len(t, reports, 1)
	assert.Equal(t, p1, reports[0].Attacker)
	assert.Equal(t, p2, reports[0].Defender)
	assert.False(t, reports[0].Hit)
	assert.NoError(t, reports[0].Err)
	assert.Equal(t, p2, game.ActivePlayer())
	assert.False(t, game.IsFinished())
}

func TestPlayTurnHitKeepsTurn(t *testing.T) {
	targets := []Coordinates{{7, 7}, {5, 6}, {5, 6}, {6, 6}}
	game, p1, p2 := newScriptedGame(t, targets, nil)

	var reports []ShotReport
	require.NoError(t, game.PlayTurn(func(r ShotReport) { reports = append(reports, r) }))

	require.Len(t, reports, 4)
	assert.True(t, cerr.HasCode(reports[0].Err, cerr.CodeOutOfBounds))
	assert.True(t, reports[1].Hit)
	assert.False(t, reports[1].Sunk)
	assert.True(t, cerr.HasCode(reports[2].Err, cerr.CodeOverlap))
	assert.True(t, reports[3].Hit)
	assert.True(t, reports[3].Sunk)

	assert.True(t, game.IsFinished())
	assert.Equal(t, p1, game.Winner())
	assert.True(t, p2.IsLoser())
	assert.False(t, p1.IsLoser())
}

func TestPlayAlternatesUntilWin(t *testing.T) {
	game, _, p2 := newScriptedGame(t,
		[]Coordinates{{1, 6}, {2, 6}},
		[]Coordinates{{4, 4}, {1, 1}},
	)

	var attackers []string
	winner, err := game.Play(func(r ShotReport) { attackers = append(attackers, r.Attacker.Name()) })
	require.NoError(t, err)

	assert.Equal(t, p2, winner)
	assert.Equal(t, []string{"host", "ai", "host", "ai"}, attackers)
}

func TestPlayStopsOnTargeterError(t *testing.T) {
	game, _, _ := newScriptedGame(t, []Coordinates{{2, 2}}, nil)

	winner, err := game.Play(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
	assert.Nil(t, winner)
}

func TestRandomGameTerminates(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		rnd := seeded(seed)
		pg, err := NewPlacementGenerator(rnd, WithFleetRetries(DefaultFleetRetries))
		require.NoError(t, err)

		p1 := NewPlayer("one", true, NewRandomTargeter(rnd))
		p2 := NewPlayer("two", true, NewRandomTargeter(rnd))
		require.NoError(t, pg.Place(p1.Board()))
		require.NoError(t, pg.Place(p2.Board()))

		game := NewGame(p1, p2)
		shots := 0
		winner, err := game.Play(func(r ShotReport) {
			require.NoError(t, r.Err, "random targeter never repeats a cell")
			shots++
		})
		require.NoError(t, err)
		require.NotNil(t, winner)

		loser := game.OtherPlayer(winner)
		assert.Equal(t, 0, loser.Board().LiveShips())
		assert.Positive(t, winner.Board().LiveShips())
		assert.LessOrEqual(t, shots, 2*GridSize*GridSize)
	}
}

func TestRandomTargeterExhaustedBoard(t *testing.T) {
	b := NewBoard()
	for _, c := range AllCoordinates() {
		_, err := b.Shot(c)
		require.NoError(t, err)
	}

	_, err := NewRandomTargeter(seeded(1)).Target(b)
	require.Error(t, err)
	assert.True(t, cerr.HasCode(err, cerr.CodeNoTargetsLeft))
}

func TestGameReset(t *testing.T) {
	game, p1, p2 := newScriptedGame(t, []Coordinates{{5, 6}, {6, 6}}, nil)
	_, err := game.Play(nil)
	require.NoError(t, err)
	require.True(t, game.IsFinished())

	game.Reset()
	assert.False(t, game.IsFinished())
	assert.Nil(t, game.Winner())
	assert.Equal(t, p1, game.ActivePlayer())
	for _, p := range []*Player{p1, p2} {
		assert.Equal(t, PhaseEmpty, p.Board().Phase())
		assert.Equal(t, 0, p.Board().LiveShips())
	}
	assert.Len(t, game.Uuid(), 6)
	assert.Len(t, p1.Uuid(), 10)
}
