package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/saeidalz13/battleship-terminal/api"
	"github.com/saeidalz13/battleship-terminal/internal/config"
	"github.com/saeidalz13/battleship-terminal/internal/logging"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	// logs go to stderr so they never interleave with the board on stdout
	logger := logging.New(os.Stderr, cfg.Stage, cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug().Uint64("seed", seed).Str("placement_mode", cfg.PlacementMode).Msg("configuration loaded")

	server := api.NewServer(
		api.WithStage(cfg.Stage),
		api.WithIO(os.Stdin, os.Stdout),
		api.WithRand(rand.New(rand.NewPCG(seed, seed>>1))),
		api.WithLogger(logger),
		api.WithPlacementMode(cfg.PlacementMode),
		api.WithMaxAttempts(cfg.MaxAttempts),
		api.WithFleetRetries(cfg.FleetRetries),
		api.WithRevealAI(cfg.RevealAI),
	)

	if err := server.Run(); err != nil {
		logger.Fatal().Err(err).Msg("game ended with an error")
	}
}
