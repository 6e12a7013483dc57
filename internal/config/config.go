package config

import (
	"errors"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"goldenflower/internal/rng"
	"goldenflower/internal/util"
	"goldenflower/pkg/playable/goldenflower"
)

// Config provides configuration for a Golden Flower table
type Config struct {
	loaded bool
	Game   GameConfig `yaml:"game"`
	Log    LogConfig  `yaml:"log"`
}

// GameConfig are the table settings
type GameConfig struct {
	Players        int `yaml:"players" envconfig:"players"`
	InitialBalance int `yaml:"initialBalance" envconfig:"initial_balance"`
	EntranceFee    int `yaml:"entranceFee" envconfig:"entrance_fee"`
	// Seed replays a table when non-zero
	Seed int64 `yaml:"seed" envconfig:"seed"`
}

// LogConfig are the logger settings
type LogConfig struct {
	Level        string `yaml:"level" envconfig:"level"`
	DisableColor bool   `yaml:"disableColor" envconfig:"disable_color"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	opts := goldenflower.DefaultOptions()

	return Config{
		Game: GameConfig{
			Players:        opts.Players,
			InitialBalance: opts.InitialBalance,
			EntranceFee:    opts.EntranceFee,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Defaults are overridden by the YAML file in GF_CONFIG_FILE, then by GF_* environment
// variables, which may come from a .env file.
func Load() error {
	if err := godotenv.Load(util.Getenv("GF_ENV_FILE", ".env")); err != nil && !os.IsNotExist(err) {
		return err
	}

	cfg := DefaultConfig()

	file, err := os.Open(util.Getenv("GF_CONFIG_FILE", "config.yaml"))
	switch {
	case err == nil:
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	case !os.IsNotExist(err):
		return err
	}

	if err := envconfig.Process("gf", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// GameOptions returns the options for a new game
func (c Config) GameOptions() goldenflower.Options {
	return goldenflower.Options{
		Players:        c.Game.Players,
		InitialBalance: c.Game.InitialBalance,
		EntranceFee:    c.Game.EntranceFee,
	}
}

// Generator returns the random source for shuffling and choosing dealers
func (c Config) Generator() rng.Generator {
	if c.Game.Seed != 0 {
		return rng.NewSeeded(c.Game.Seed)
	}

	return rng.Crypto{}
}
