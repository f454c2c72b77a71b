// Package config loads runtime settings from command-line flags and the
// environment. Every key can be set as a flag (--nats-url) or as an
// environment variable with the ULTIMAX_ prefix (ULTIMAX_NATS_URL).
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jpihl/ultimax/negamax"
)

const envPrefix = "ultimax"

// Config wraps a viper instance holding the process settings.
type Config struct {
	v *viper.Viper
}

// DefaultConfig returns a config with every key at its default, without
// reading flags or the environment.
func DefaultConfig() *Config {
	c := &Config{v: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.v.SetDefault("debug", false)
	c.v.SetDefault("max-analysis-depth", negamax.MaxPly)
	c.v.SetDefault("nats-url", "nats://localhost:4222")
	c.v.SetDefault("nats-subject", "ultimax.analysis")
	c.v.SetDefault("autoplay-games", 100)
	c.v.SetDefault("autoplay-depth-1", 3)
	c.v.SetDefault("autoplay-depth-2", 0)
	c.v.SetDefault("autoplay-log-file", "")
}

// Load populates the config from args and the environment.
func (c *Config) Load(args []string) error {
	c.v = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet(envPrefix, pflag.ContinueOnError)
	fs.Bool("debug", false, "debug logging")
	fs.Int("max-analysis-depth", negamax.MaxPly, "deepest search the analyzer will accept")
	fs.String("nats-url", "nats://localhost:4222", "url of the NATS server")
	fs.String("nats-subject", "ultimax.analysis", "subject the analysis bot listens on")
	fs.Int("autoplay-games", 100, "number of self-play games")
	fs.Int("autoplay-depth-1", 3, "search depth for the first player; 0 plays randomly")
	fs.Int("autoplay-depth-2", 0, "search depth for the second player; 0 plays randomly")
	fs.String("autoplay-log-file", "", "write per-game autoplay results to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return nil
}

func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }
func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }

// Set overrides a single key, mostly for tests.
func (c *Config) Set(key string, value interface{}) { c.v.Set(key, value) }
