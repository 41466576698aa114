package api

import (
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
	mc "github.com/saeidalz13/battleship-terminal/models/console"
)

// humanTargeter asks the terminal player for each shot, showing both
// boards first.
type humanTargeter struct {
	session *mc.Session
	own     *mb.Board
}

func (ht *humanTargeter) Target(enemy *mb.Board) (mb.Coordinates, error) {
	if err := ht.session.Write(mc.RenderBoard("Enemy board", enemy)); err != nil {
		return mb.Coordinates{}, err
	}
	if err := ht.session.Write(mc.RenderBoard("Your board", ht.own)); err != nil {
		return mb.Coordinates{}, err
	}

	req, err := mc.ReadRequest(ht.session, mc.MsgPromptAttack, mc.ParseAttack)
	if err != nil {
		return mb.Coordinates{}, err
	}
	return req.Coordinates(), nil
}
