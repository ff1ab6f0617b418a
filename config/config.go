// Package config holds the runtime settings for the letterbox binaries.
// Settings come from defaults, LETTERBOX_* environment variables, and
// command-line flags, in increasing order of precedence.
package config

import (
	"flag"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	v    *viper.Viper
	args []string
}

// DefaultConfig returns a config with defaults and environment binding
// in place.
func DefaultConfig() *Config {
	v := viper.New()
	v.SetDefault("dictionary-path", "./data/words_alpha.txt")
	v.SetDefault("max-words", 6)
	v.SetDefault("strategy", "astar")
	v.SetDefault("edge-weight", 0)
	v.SetDefault("debug", false)
	v.SetEnvPrefix("letterbox")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// Load parses command-line flags into the config. Non-flag arguments
// remain available through Args.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("letterbox", flag.ContinueOnError)
	dictPath := fs.String("dictionary-path", c.GetString("dictionary-path"),
		"path to the newline-delimited word list")
	maxWords := fs.Int("max-words", c.GetInt("max-words"),
		"maximum number of words allowed in a solution")
	strategy := fs.String("strategy", c.GetString("strategy"),
		"solving strategy: astar, predict or brute")
	edgeWeight := fs.Int("edge-weight", c.GetInt("edge-weight"),
		"A* edge weight; 0 means the full board size (optimal)")
	debug := fs.Bool("debug", c.GetBool("debug"), "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.v.Set("dictionary-path", *dictPath)
	c.v.Set("max-words", *maxWords)
	c.v.Set("strategy", *strategy)
	c.v.Set("edge-weight", *edgeWeight)
	c.v.Set("debug", *debug)
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left over after Load.
func (c *Config) Args() []string { return c.args }

// Set overrides a single setting.
func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }
