package battleship

import (
	"fmt"

	"github.com/google/uuid"
)

// ShotReport describes a single resolved (or rejected) shot.
type ShotReport struct {
	Attacker *Player
	Defender *Player
	Target   Coordinates
	Hit      bool
	Sunk     bool
	Err      error
}

type Game struct {
	uuid    string
	players [2]*Player
	active  int
	winner  *Player
}

// NewGame pairs two players; first moves first.
func NewGame(first, second *Player) *Game {
	return &Game{
		uuid:    uuid.NewString()[:6],
		players: [2]*Player{first, second},
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) ActivePlayer() *Player {
	return g.players[g.active]
}

func (g *Game) OtherPlayer(p *Player) *Player {
	if g.players[0] == p {
		return g.players[1]
	}
	return g.players[0]
}

func (g *Game) Winner() *Player {
	return g.winner
}

func (g *Game) IsFinished() bool {
	return g.winner != nil
}

func (g *Game) switchTurn() {
	g.active = 1 - g.active
}

// PlayTurn lets the active player shoot until they miss or win. Board errors
// are reported and the same player tries again without losing the turn.
func (g *Game) PlayTurn(report func(ShotReport)) error {
	if g.IsFinished() {
		return nil
	}

	attacker := g.ActivePlayer()
	defender := g.OtherPlayer(attacker)

	for {
		target, err := attacker.targeter.Target(defender.board)
		if err != nil {
			return fmt.Errorf("player %s could not pick a target: %w", attacker.name, err)
		}

		liveBefore := defender.board.LiveShips()
		hit, err := defender.board.Shot(target)
		r := ShotReport{
			Attacker: attacker,
			Defender: defender,
			Target:   target,
			Hit:      hit,
			Sunk:     defender.board.LiveShips() < liveBefore,
			Err:      err,
		}
		if report != nil {
			report(r)
		}

		if err != nil {
			continue
		}
		if !hit {
			g.switchTurn()
			return nil
		}
		if defender.board.LiveShips() == 0 {
			g.winner = attacker
			return nil
		}
	}
}

// Play alternates turns until one fleet is destroyed and returns the winner.
func (g *Game) Play(report func(ShotReport)) (*Player, error) {
	for !g.IsFinished() {
		if err := g.PlayTurn(report); err != nil {
			return nil, err
		}
	}
	return g.winner, nil
}

// Reset clears both boards for a rematch; the first player moves first again.
func (g *Game) Reset() {
	for _, p := range g.players {
		p.board.Reset()
	}
	g.active = 0
	g.winner = nil
}
