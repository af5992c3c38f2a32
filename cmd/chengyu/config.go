package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
)

const defaultConfigFile = "chengyu.toml"

// Config holds settings from the configuration file. Command line flags
// override them.
//
//	data = ["idioms.json"]
//	listen = ":8080"
//	cors_origins = ["https://example.org"]
type Config struct {
	Data        []string `toml:"data"`
	Listen      string   `toml:"listen"`
	CORSOrigins []string `toml:"cors_origins"`
}

func defaultConfig() *Config {
	return &Config{
		Data:   []string{"idioms.json"},
		Listen: ":8080",
	}
}

// loadConfig reads a TOML configuration file. A missing default file is not
// an error.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if path == defaultConfigFile && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// loadConfigWithOverrides loads the configuration and applies flag overrides.
func loadConfigWithOverrides(c *cli.Context) (*Config, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if data := c.StringSlice("data"); len(data) > 0 {
		cfg.Data = data
	}
	if c.IsSet("listen") {
		cfg.Listen = c.String("listen")
	}
	if origins := c.StringSlice("cors-origin"); len(origins) > 0 {
		cfg.CORSOrigins = origins
	}
	return cfg, nil
}
