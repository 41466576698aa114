package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	PlacementModeManual = "manual"
	PlacementModeRandom = "random"

	DefaultLogLevel = "warn"
)

type Config struct {
	Stage         string
	LogLevel      string
	PlacementMode string
	MaxAttempts   int
	FleetRetries  int
	RevealAI      bool
	// Seed of zero means seed from the clock.
	Seed uint64
}

// Load reads the environment, pulling in envFile first unless STAGE is prod.
// A missing env file is not an error.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("stage", StageDev)
	// info would interleave session logs with the board on a terminal
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("placement_mode", PlacementModeManual)
	v.SetDefault("placement_max_attempts", 10000)
	v.SetDefault("placement_fleet_retries", 100)
	v.SetDefault("reveal_ai", false)
	v.SetDefault("seed", 0)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Config{
		Stage:         strings.ToLower(v.GetString("stage")),
		LogLevel:      strings.ToLower(v.GetString("log_level")),
		PlacementMode: strings.ToLower(v.GetString("placement_mode")),
		MaxAttempts:   v.GetInt("placement_max_attempts"),
		FleetRetries:  v.GetInt("placement_fleet_retries"),
		RevealAI:      v.GetBool("reveal_ai"),
		Seed:          v.GetUint64("seed"),
	}
	return cfg, cfg.Validate()
}

func ValidStage(stage string) bool {
	return stage == StageDev || stage == StageProd
}

func ValidPlacementMode(mode string) bool {
	return mode == PlacementModeManual || mode == PlacementModeRandom
}

func (c Config) Validate() error {
	if !ValidStage(c.Stage) {
		return fmt.Errorf("stage must be either dev or prod, got %q", c.Stage)
	}
	if !ValidPlacementMode(c.PlacementMode) {
		return fmt.Errorf("placement mode must be either manual or random, got %q", c.PlacementMode)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("placement max attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.FleetRetries < 0 {
		return fmt.Errorf("placement fleet retries cannot be negative, got %d", c.FleetRetries)
	}
	return nil
}
