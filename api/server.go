package api

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-terminal/internal/config"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
	mc "github.com/saeidalz13/battleship-terminal/models/console"
)

type Server struct {
	stage         string
	in            io.Reader
	out           io.Writer
	rnd           mb.RandSource
	logger        zerolog.Logger
	placementMode string
	maxAttempts   int
	fleetRetries  int
	revealAI      bool
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) *Server {
	seed := uint64(time.Now().UnixNano())
	server := Server{
		stage:         config.StageDev,
		in:            os.Stdin,
		out:           os.Stdout,
		rnd:           rand.New(rand.NewPCG(seed, seed>>1)),
		logger:        zerolog.Nop(),
		placementMode: config.PlacementModeManual,
		maxAttempts:   mb.DefaultMaxAttempts,
		fleetRetries:  mb.DefaultFleetRetries,
	}

	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	return &server
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if !config.ValidStage(stage) {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Server) error {
		s.in = in
		s.out = out
		return nil
	}
}

func WithRand(rnd mb.RandSource) Option {
	return func(s *Server) error {
		if rnd == nil {
			return fmt.Errorf("random source cannot be nil")
		}
		s.rnd = rnd
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

func WithPlacementMode(mode string) Option {
	return func(s *Server) error {
		if !config.ValidPlacementMode(mode) {
			return fmt.Errorf("invalid placement mode: %s", mode)
		}
		s.placementMode = mode
		return nil
	}
}

func WithMaxAttempts(attempts int) Option {
	return func(s *Server) error {
		s.maxAttempts = attempts
		return nil
	}
}

func WithFleetRetries(retries int) Option {
	return func(s *Server) error {
		s.fleetRetries = retries
		return nil
	}
}

// WithRevealAI shows the computer's fleet during play. Ignored in prod.
func WithRevealAI(reveal bool) Option {
	return func(s *Server) error {
		s.revealAI = reveal
		return nil
	}
}

// Run plays games on the configured terminal until the player declines a
// rematch or the input closes.
func (s *Server) Run() error {
	rp, err := s.newRequestProcessor(mc.NewSession(s.in, s.out))
	if err != nil {
		return err
	}
	return rp.processSession()
}
