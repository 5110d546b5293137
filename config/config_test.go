package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// TestFromEnvDefaults verifies unset keys fall back to the defaults
func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

// TestFromEnvValues verifies every key is read
func TestFromEnvValues(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		EnvDrawMode:  "1",
		EnvSeed:      "42",
		EnvSound:     "false",
		EnvDebug:     "true",
		EnvLogDir:    "/tmp/k",
		EnvRulesPath: "help.txt",
		EnvJournalDB: "games.db",

		EnvSearchURL:      "http://search:9200",
		EnvSearchIndex:    "deals",
		EnvSearchUser:     "elastic",
		EnvSearchPassword: "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		DrawMode:  1,
		Seed:      42,
		Sound:     false,
		Debug:     true,
		LogDir:    "/tmp/k",
		RulesPath: "help.txt",
		JournalDB: "games.db",

		SearchURL:      "http://search:9200",
		SearchIndex:    "deals",
		SearchUser:     "elastic",
		SearchPassword: "secret",
	}, cfg)
}

// TestFromEnvMalformed verifies parse errors name the key
func TestFromEnvMalformed(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvDrawMode, "three"},
		{EnvSeed, "1.5"},
		{EnvSound, "loud"},
		{EnvDebug, "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := FromEnv(envMap(map[string]string{tt.key: tt.value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

// TestFlagsOverrideEnv verifies flags win over loaded values
func TestFlagsOverrideEnv(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{EnvDrawMode: "1", EnvSeed: "7"}))
	require.NoError(t, err)

	fs := flag.NewFlagSet("klondike", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-draw", "3", "-sound=false", "-es", "http://localhost:9200"}))

	assert.Equal(t, 3, cfg.DrawMode)
	assert.Equal(t, "http://localhost:9200", cfg.SearchURL)
	assert.Equal(t, "klondike_deals", cfg.SearchIndex)
	assert.Equal(t, int64(7), cfg.Seed, "unset flag keeps the env value")
	assert.False(t, cfg.Sound)
}

// TestValidateDrawMode verifies only one and three are accepted
func TestValidateDrawMode(t *testing.T) {
	for _, mode := range []int{0, 2, 4, -1} {
		cfg := Default()
		cfg.DrawMode = mode
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidDrawMode, "mode %d", mode)
	}
}

// TestValidateSearchIndex verifies the mirror needs an index name
func TestValidateSearchIndex(t *testing.T) {
	cfg := Default()
	cfg.SearchIndex = ""
	assert.NoError(t, cfg.Validate(), "no mirror configured")

	cfg.SearchURL = "http://localhost:9200"
	assert.ErrorIs(t, cfg.Validate(), ErrMissingSearchIndex)
}
