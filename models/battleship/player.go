package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

// Targeter picks the next cell to shoot on the enemy board. Returning an
// error aborts the game (e.g. the human's input stream closed).
type Targeter interface {
	Target(enemy *Board) (Coordinates, error)
}

type Player struct {
	uuid     string
	name     string
	isAI     bool
	board    *Board
	targeter Targeter
}

func NewPlayer(name string, isAI bool, targeter Targeter) *Player {
	return &Player{
		uuid:     uuid.NewString()[:10],
		name:     name,
		isAI:     isAI,
		board:    NewBoard(),
		targeter: targeter,
	}
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsAI() bool {
	return p.isAI
}

// Board is the grid this player defends.
func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) IsLoser() bool {
	return p.board.Phase() != PhaseEmpty && p.board.LiveShips() == 0
}

// RandomTargeter shoots uniformly among the cells not yet targeted.
type RandomTargeter struct {
	rnd RandSource
}

func NewRandomTargeter(rnd RandSource) RandomTargeter {
	return RandomTargeter{rnd: rnd}
}

func (rt RandomTargeter) Target(enemy *Board) (Coordinates, error) {
	candidates := enemy.Untargeted()
	if len(candidates) == 0 {
		return Coordinates{}, cerr.ErrNoTargetsLeft()
	}
	return candidates[rt.rnd.IntN(len(candidates))], nil
}
