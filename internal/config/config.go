package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"gopkg.in/ini.v1"

	"hostfmt/pkg/hosts"
)

// Config holds all hostfmt configuration
type Config struct {
	// File paths
	HostsFile string

	// Feature flags
	Debug bool
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		HostsFile: hosts.DefaultPath,
		Debug:     false,
	}
}

// LoadFromFile loads configuration from INI file
func (c *Config) LoadFromFile(filename string) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, filename)
	if err != nil {
		log.Debug().Err(err).Str("file", filename).Msg("skipping config file")
		return err
	}

	section := cfg.Section("")
	c.HostsFile = section.Key("hostsfile").MustString(c.HostsFile)
	c.Debug = section.Key("debug").MustBool(c.Debug)

	return nil
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("HOSTSFILE"); v != "" {
		c.HostsFile = v
	}
	if v := os.Getenv("HOSTFMT_DEBUG"); v != "" {
		c.Debug, _ = strconv.ParseBool(v)
	}
}

// New creates a new configuration instance
func New(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	// Load from file first, then override with environment variables
	if configFile != "" {
		cfg.LoadFromFile(configFile)
	}
	cfg.LoadFromEnv()

	return cfg, nil
}
