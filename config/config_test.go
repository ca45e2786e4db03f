package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/mastermind/game"
)

func TestDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Load(nil))
	assert.Equal(t, game.DefaultRules(), c.Rules())
	assert.Equal(t, int64(0), c.GetInt64(ConfigSeed))
	assert.False(t, c.GetBool(ConfigDebug))
	assert.NotEmpty(t, c.GetString(ConfigHistoryFile))

	assert.Equal(t, game.DefaultRules(), DefaultConfig().Rules())
}

func TestFlags(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Load([]string{"--code-length", "2", "--max-digit=3", "--seed", "77", "--debug"}))
	assert.Equal(t, game.Rules{CodeLength: 2, MaxDigit: 3, MaxAttempts: 10}, c.Rules())
	assert.Equal(t, int64(77), c.GetInt64(ConfigSeed))
	assert.True(t, c.GetBool(ConfigDebug))
}

func TestBadFlag(t *testing.T) {
	c := &Config{}
	assert.Error(t, c.Load([]string{"--code-length", "four"}))
	assert.Error(t, c.Load([]string{"--no-such-flag"}))
}

func TestEnvironment(t *testing.T) {
	t.Setenv("MASTERMIND_MAX_ATTEMPTS", "12")
	c := &Config{}
	require.NoError(t, c.Load(nil))
	assert.Equal(t, 12, c.Rules().MaxAttempts)

	// Flags win over the environment.
	require.NoError(t, c.Load([]string{"--max-attempts", "3"}))
	assert.Equal(t, 3, c.Rules().MaxAttempts)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mastermind.yaml")
	require.NoError(t, os.WriteFile(path, []byte("code-length: 5\nmax-digit: 7\n"), 0o644))

	c := &Config{}
	require.NoError(t, c.Load([]string{"--config", path}))
	assert.Equal(t, game.Rules{CodeLength: 5, MaxDigit: 7, MaxAttempts: 10}, c.Rules())

	assert.Error(t, c.Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}))
}

func TestToDisplayText(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Load([]string{"--seed", "5"}))
	text := c.ToDisplayText()
	assert.Contains(t, text, "code-length: 4\n")
	assert.Contains(t, text, "max-digit: 5\n")
	assert.Contains(t, text, "max-attempts: 10\n")
	assert.Contains(t, text, "seed: 5\n")
	assert.Contains(t, text, "debug: false\n")
}

func TestPositionalArgs(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Load([]string{"--seed", "3", "set", "code-length", "5"}))
	assert.Equal(t, []string{"set", "code-length", "5"}, c.Args())
}
