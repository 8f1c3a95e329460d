// Package config provides configuration for the assistant.
//
// Resolution order: built-in defaults, then an optional YAML file (with
// ${VAR} expansion), then environment variables. A `.env` file is loaded by
// main before Load runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle-assist/internal/solver"
)

// Config is the full runtime configuration.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Solver   SolverConfig `yaml:"solver"`
	Server   ServerConfig `yaml:"server"`
}

// SolverConfig controls dictionary, ranking and the opening draw.
type SolverConfig struct {
	WordsFile     string `yaml:"words_file"`
	FreqDB        string `yaml:"freq_db"`
	Language      string `yaml:"language"`
	OpeningPool   int    `yaml:"opening_pool"`
	Seed          uint64 `yaml:"seed"`
	DailySalt     string `yaml:"daily_salt"`
	FeedbackOrder string `yaml:"feedback_order"`
}

// ServerConfig contains HTTP API settings.
type ServerConfig struct {
	Port         string        `yaml:"port"`
	JWTSecret    string        `yaml:"jwt_secret"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
	APIKeyHash   string        `yaml:"api_key_hash"`
	ClientOrigin string        `yaml:"client_origin"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Solver: SolverConfig{
			Language:      solver.DefaultLanguage,
			OpeningPool:   solver.OpeningPoolSize,
			DailySalt:     "local_dev_salt",
			FeedbackOrder: solver.OrderSnapshot.String(),
		},
		Server: ServerConfig{
			Port:         "5175",
			JWTSecret:    "dev_secret_change_me",
			TokenTTL:     24 * time.Hour,
			ClientOrigin: "http://localhost:5173",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (if any) and the environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.Solver.WordsFile = getEnv("WORDS_FILE", c.Solver.WordsFile)
	c.Solver.FreqDB = getEnv("FREQ_DB", c.Solver.FreqDB)
	c.Solver.Language = getEnv("FREQ_LANG", c.Solver.Language)
	c.Solver.DailySalt = getEnv("DAILY_SALT", c.Solver.DailySalt)
	c.Solver.FeedbackOrder = getEnv("FEEDBACK_ORDER", c.Solver.FeedbackOrder)
	if v := os.Getenv("OPENING_POOL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("OPENING_POOL: %w", err)
		}
		c.Solver.OpeningPool = n
	}
	if v := os.Getenv("SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SEED: %w", err)
		}
		c.Solver.Seed = n
	}

	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.JWTSecret = getEnv("JWT_SECRET", c.Server.JWTSecret)
	c.Server.APIKeyHash = getEnv("API_KEY_HASH", c.Server.APIKeyHash)
	c.Server.ClientOrigin = getEnv("CLIENT_ORIGIN", c.Server.ClientOrigin)
	if v := os.Getenv("JWT_EXPIRES_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRES_HOURS: %w", err)
		}
		c.Server.TokenTTL = time.Duration(n) * time.Hour
	}
	return nil
}

// Validate rejects settings the solver or server cannot run with.
func (c *Config) Validate() error {
	if c.Solver.OpeningPool < 1 {
		return fmt.Errorf("opening_pool must be positive, got %d", c.Solver.OpeningPool)
	}
	if _, err := solver.ParseFeedbackOrder(c.Solver.FeedbackOrder); err != nil {
		return err
	}
	if c.Solver.Language == "" {
		return errors.New("language must not be empty")
	}
	if c.Server.TokenTTL <= 0 {
		return errors.New("token_ttl must be positive")
	}
	return nil
}

// Order returns the parsed feedback order. Validate guarantees it parses.
func (c *Config) Order() solver.FeedbackOrder {
	o, _ := solver.ParseFeedbackOrder(c.Solver.FeedbackOrder)
	return o
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
