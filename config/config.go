package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys
const (
	EnvDrawMode  = "KLONDIKE_DRAW_MODE"
	EnvSeed      = "KLONDIKE_SEED"
	EnvSound     = "KLONDIKE_SOUND"
	EnvDebug     = "KLONDIKE_DEBUG"
	EnvLogDir    = "KLONDIKE_LOG_DIR"
	EnvRulesPath = "KLONDIKE_RULES_PATH"
	EnvJournalDB = "KLONDIKE_JOURNAL_DB"

	EnvSearchURL      = "KLONDIKE_ES_URL"
	EnvSearchIndex    = "KLONDIKE_ES_INDEX"
	EnvSearchUser     = "KLONDIKE_ES_USERNAME"
	EnvSearchPassword = "KLONDIKE_ES_PASSWORD"
)

// ErrInvalidDrawMode is returned when the draw mode is neither 1 nor 3
var ErrInvalidDrawMode = errors.New("draw mode must be 1 or 3")

// ErrMissingSearchIndex is returned when the Elasticsearch mirror has no index name
var ErrMissingSearchIndex = errors.New("elasticsearch index name required")

// Config holds the process settings
type Config struct {
	DrawMode  int   // Cards revealed per stock click
	Seed      int64 // Shuffle seed; 0 seeds from the clock
	Sound     bool
	Debug     bool // Enables file logging
	LogDir    string
	RulesPath string
	JournalDB string // sqlite path; empty keeps the journal in memory

	// Elasticsearch mirror of the journal; disabled while SearchURL is empty
	SearchURL      string
	SearchIndex    string
	SearchUser     string
	SearchPassword string
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		DrawMode:    3,
		Sound:       true,
		LogDir:      "logs",
		RulesPath:   "rules.txt",
		SearchIndex: "klondike_deals",
	}
}

// Load reads .env (if present) and the environment over the defaults
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a config from a lookup function, falling back to defaults for unset keys
func FromEnv(getenv func(string) string) (*Config, error) {
	def := Default()
	cfg := &Config{
		LogDir:    getEnvWithDefault(getenv, EnvLogDir, def.LogDir),
		RulesPath: getEnvWithDefault(getenv, EnvRulesPath, def.RulesPath),
		JournalDB: getenv(EnvJournalDB),

		SearchURL:      getenv(EnvSearchURL),
		SearchIndex:    getEnvWithDefault(getenv, EnvSearchIndex, def.SearchIndex),
		SearchUser:     getenv(EnvSearchUser),
		SearchPassword: getenv(EnvSearchPassword),
	}

	var err error
	if cfg.DrawMode, err = strconv.Atoi(getEnvWithDefault(getenv, EnvDrawMode, strconv.Itoa(def.DrawMode))); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvDrawMode, err)
	}
	if cfg.Seed, err = strconv.ParseInt(getEnvWithDefault(getenv, EnvSeed, "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvSeed, err)
	}
	if cfg.Sound, err = strconv.ParseBool(getEnvWithDefault(getenv, EnvSound, strconv.FormatBool(def.Sound))); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvSound, err)
	}
	if cfg.Debug, err = strconv.ParseBool(getEnvWithDefault(getenv, EnvDebug, "false")); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvDebug, err)
	}

	return cfg, nil
}

// RegisterFlags binds command-line flags to the config; values already loaded become the flag defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.DrawMode, "draw", c.DrawMode, "Cards per stock click: 1 or 3")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Shuffle seed (0 = time based)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "Enable sound effects")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write debug logs")
	fs.StringVar(&c.LogDir, "logdir", c.LogDir, "Log directory")
	fs.StringVar(&c.RulesPath, "rules", c.RulesPath, "Rules text file")
	fs.StringVar(&c.JournalDB, "journal", c.JournalDB, "sqlite journal path (empty = in memory)")
	fs.StringVar(&c.SearchURL, "es", c.SearchURL, "Elasticsearch URL mirroring the journal (empty = off)")
	fs.StringVar(&c.SearchIndex, "es-index", c.SearchIndex, "Elasticsearch index for finished deals")
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.DrawMode != 1 && c.DrawMode != 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidDrawMode, c.DrawMode)
	}
	if c.SearchURL != "" && c.SearchIndex == "" {
		return ErrMissingSearchIndex
	}
	return nil
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}
