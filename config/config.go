package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/domino14/mastermind/game"
)

const (
	ConfigCodeLength  = "code-length"
	ConfigMaxDigit    = "max-digit"
	ConfigMaxAttempts = "max-attempts"
	ConfigSeed        = "seed"
	ConfigDebug       = "debug"
	ConfigTrace       = "trace"
	ConfigHistoryFile = "history-file"
	ConfigConfigFile  = "config"
)

// Config wraps a viper instance. Settings come, in order of precedence,
// from command-line flags, MASTERMIND_* environment variables, an optional
// YAML config file, and finally the defaults below.
type Config struct {
	*viper.Viper

	args []string
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigCodeLength, game.DefaultCodeLength)
	c.SetDefault(ConfigMaxDigit, game.DefaultMaxDigit)
	c.SetDefault(ConfigMaxAttempts, game.DefaultMaxAttempts)
	c.SetDefault(ConfigSeed, 0)
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigTrace, false)
	c.SetDefault(ConfigHistoryFile, filepath.Join(os.TempDir(), "mastermind_readline.tmp"))
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("mastermind", pflag.ContinueOnError)
	fs.Int(ConfigCodeLength, game.DefaultCodeLength, "number of digits in a code")
	fs.Int(ConfigMaxDigit, game.DefaultMaxDigit, "largest digit that may appear in a code (at most 9)")
	fs.Int(ConfigMaxAttempts, game.DefaultMaxAttempts, "number of guesses per game")
	fs.Int64(ConfigSeed, 0, "seed for the secret generator; 0 picks a random seed")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Bool(ConfigTrace, false, "trace logging on; logs which digits each score consumed")
	fs.String(ConfigHistoryFile, c.GetString(ConfigHistoryFile), "readline history file")
	fs.String(ConfigConfigFile, "", "optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("mastermind")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile := c.GetString(ConfigConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		c.SetConfigType("yaml")
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Args returns the positional arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// Rules returns the game rules described by the config.
func (c *Config) Rules() game.Rules {
	return game.Rules{
		CodeLength:  c.GetInt(ConfigCodeLength),
		MaxDigit:    c.GetInt(ConfigMaxDigit),
		MaxAttempts: c.GetInt(ConfigMaxAttempts),
	}
}

func (c *Config) settings() map[string]any {
	return map[string]any{
		ConfigCodeLength:  c.GetInt(ConfigCodeLength),
		ConfigMaxDigit:    c.GetInt(ConfigMaxDigit),
		ConfigMaxAttempts: c.GetInt(ConfigMaxAttempts),
		ConfigSeed:        c.GetInt64(ConfigSeed),
		ConfigDebug:       c.GetBool(ConfigDebug),
		ConfigTrace:       c.GetBool(ConfigTrace),
		ConfigHistoryFile: c.GetString(ConfigHistoryFile),
	}
}

// ToDisplayText renders the effective settings as YAML.
func (c *Config) ToDisplayText() string {
	out, err := yaml.Marshal(c.settings())
	if err != nil {
		return "error: " + err.Error()
	}
	return string(out)
}
