package api

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-terminal/internal/config"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
	mc "github.com/saeidalz13/battleship-terminal/models/console"
)

type RequestProcessor struct {
	session       *mc.Session
	generator     *mb.PlacementGenerator
	game          *mb.Game
	human         *mb.Player
	ai            *mb.Player
	placementMode string
	revealAI      bool
	logger        zerolog.Logger
	// first output failure seen while reporting shots
	reportErr error
}

func (s *Server) newRequestProcessor(session *mc.Session) (*RequestProcessor, error) {
	generator, err := mb.NewPlacementGenerator(
		s.rnd,
		mb.WithMaxAttempts(s.maxAttempts),
		mb.WithFleetRetries(s.fleetRetries),
	)
	if err != nil {
		return nil, err
	}

	ht := &humanTargeter{session: session}
	human := mb.NewPlayer("You", false, ht)
	ht.own = human.Board()
	ai := mb.NewPlayer("Computer", true, mb.NewRandomTargeter(s.rnd))

	game := mb.NewGame(human, ai)
	return &RequestProcessor{
		session:       session,
		generator:     generator,
		game:          game,
		human:         human,
		ai:            ai,
		placementMode: s.placementMode,
		revealAI:      s.revealAI && s.stage == config.StageDev,
		logger: s.logger.With().
			Str("session", session.Id()).
			Str("game", game.Uuid()).
			Logger(),
	}, nil
}

// processSession runs setup, battle and rematch rounds. A closed input is a
// normal way to leave and is not reported as an error.
func (rp *RequestProcessor) processSession() error {
	rp.logger.Info().Str("human", rp.human.Uuid()).Str("ai", rp.ai.Uuid()).Msg("session started")
	defer func() {
		rp.logger.Info().Msg("session closed")
	}()

	if err := rp.session.Write(mc.MsgGreeting); err != nil {
		return err
	}

	round := 1
sessionLoop:
	for {
		roundLogger := rp.logger.With().Int("round", round).Logger()

		if err := rp.setupBoards(); err != nil {
			if errors.Is(err, io.EOF) {
				break sessionLoop
			}
			roundLogger.Error().Err(err).Msg("game setup failed")
			return err
		}
		roundLogger.Info().Msg("fleets placed, battle begins")

		winner, err := rp.game.Play(rp.reportShot)
		if rp.reportErr != nil {
			roundLogger.Error().Err(rp.reportErr).Msg("failed to report shot")
			return rp.reportErr
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break sessionLoop
			}
			return err
		}
		roundLogger.Info().Str("winner", winner.Uuid()).Bool("ai_won", winner.IsAI()).Msg("game over")

		if err := rp.announceWinner(winner); err != nil {
			return err
		}

		line, err := rp.session.Prompt(mc.MsgPromptRematch)
		if err != nil || !mc.ParseConfirmation(line) {
			break sessionLoop
		}

		rp.game.Reset()
		round++
	}

	return rp.session.Write(mc.MsgGoodbye)
}

func (rp *RequestProcessor) setupBoards() error {
	if rp.placementMode == config.PlacementModeRandom {
		if err := rp.placeRandom(rp.human.Board()); err != nil {
			return err
		}
		if err := rp.session.Write(mc.MsgRandomFleet); err != nil {
			return err
		}
	} else if err := rp.placeManually(rp.human.Board()); err != nil {
		return err
	}

	if err := rp.placeRandom(rp.ai.Board()); err != nil {
		return err
	}
	rp.ai.Board().SetHidden(!rp.revealAI)
	return nil
}

func (rp *RequestProcessor) placeRandom(b *mb.Board) error {
	if err := rp.generator.Place(b); err != nil {
		return fmt.Errorf("random fleet placement: %w", err)
	}
	return nil
}

// placeManually asks for every ship of the manifest in turn. Board errors
// are shown and the same ship is asked for again.
func (rp *RequestProcessor) placeManually(b *mb.Board) error {
	b.Reset()

	for _, length := range rp.generator.Fleet() {
		prompt := fmt.Sprintf(mc.MsgPromptPlaceShip, length)
		parse := func(line string) (mc.ReqPlaceShip, error) {
			return mc.ParsePlaceShip(line, length)
		}

		for {
			if err := rp.session.Write(mc.RenderBoard("Your board", b)); err != nil {
				return err
			}

			req, err := mc.ReadRequest(rp.session, prompt, parse)
			if err != nil {
				return err
			}

			if req.Random {
				if err := rp.placeRandom(b); err != nil {
					return err
				}
				return rp.session.Write(mc.MsgRandomFleet)
			}

			err = b.AddShip(req.Ship(length))
			if err == nil {
				break
			}
			rp.logger.Debug().Err(err).Int("length", length).Msg("ship placement rejected")
			if err := rp.session.Writef(mc.MsgErrorTryAgain, err); err != nil {
				return err
			}
		}
	}

	return rp.session.Write(mc.RenderBoard("Your board", b))
}

func (rp *RequestProcessor) reportShot(r mb.ShotReport) {
	event := rp.logger.Debug().
		Str("attacker", r.Attacker.Uuid()).
		Stringer("target", r.Target)

	if r.Err != nil {
		event.Err(r.Err).Msg("shot rejected")
		// the AI never picks a targeted cell, so only the human needs telling
		if !r.Attacker.IsAI() {
			rp.writeReport(mc.MsgErrorTryAgain, r.Err)
		}
		return
	}
	event.Bool("hit", r.Hit).Bool("sunk", r.Sunk).Int("defender_live_ships", r.Defender.Board().LiveShips()).Msg("shot resolved")

	msg := mc.MsgMiss
	if r.Hit {
		msg = mc.MsgHit
	}
	rp.writeReport(msg, r.Attacker.Name(), r.Target)

	if r.Sunk {
		rp.writeReport(mc.MsgShipDestroyed, r.Defender.Name())
	}
}

// writeReport keeps the first write error so processSession can return it.
func (rp *RequestProcessor) writeReport(format string, args ...any) {
	if err := rp.session.Writef(format, args...); err != nil && rp.reportErr == nil {
		rp.reportErr = err
	}
}

func (rp *RequestProcessor) announceWinner(winner *mb.Player) error {
	rp.ai.Board().SetHidden(false)
	if err := rp.session.Write(mc.RenderBoard("Computer board", rp.ai.Board())); err != nil {
		return err
	}
	if err := rp.session.Write(mc.RenderBoard("Your board", rp.human.Board())); err != nil {
		return err
	}
	return rp.session.Writef(mc.MsgWinner, winner.Name())
}
