// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config holds the settings of the domain pass and its debug output.
//
// Settings are resolved with priority: environment > file > defaults.
//
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file settings.
const (
	EnvTag            = "HWSCHED_TAG"
	EnvDumpDir        = "HWSCHED_DUMP_DIR"
	EnvDumpLevel      = "HWSCHED_DUMP_LEVEL"
	EnvDumpGraphLevel = "HWSCHED_DUMP_GRAPH_LEVEL"
	EnvLogLevel       = "HWSCHED_LOG_LEVEL"
)

// Config configures a domain pass run.
//
type Config struct {
	// Tag is prepended to the names of debug files.
	Tag string `yaml:"tag" validate:"required,excludesall=/\\"`
	// DumpDir is the directory debug files are written to.
	DumpDir string `yaml:"dump_dir" validate:"required"`
	// DumpLevel enables the signal/domain report when > 0.
	DumpLevel int `yaml:"dump_level" validate:"gte=0,lte=9"`
	// DumpGraphLevel enables the Graphviz dump of the ordering graph when > 0.
	DumpGraphLevel int `yaml:"dump_graph_level" validate:"gte=0,lte=9"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Default returns the default configuration.
//
func Default() Config {
	return Config{
		Tag:      "sched",
		DumpDir:  ".",
		LogLevel: "info",
	}
}

// Load loads the configuration file at path, if any, applies environment
// overrides and validates the result. A missing file is not an error.
//
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		if err := c.loadFile(path); err != nil {
			return c, errors.Wrap(err, "load config file")
		}
	}
	if err := c.loadEnv(); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvTag); v != "" {
		c.Tag = v
	}
	if v := os.Getenv(EnvDumpDir); v != "" {
		c.DumpDir = v
	}
	if err := envInt(EnvDumpLevel, &c.DumpLevel); err != nil {
		return err
	}
	if err := envInt(EnvDumpGraphLevel, &c.DumpGraphLevel); err != nil {
		return err
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrapf(err, "invalid %s", name)
	}
	*dst = i
	return nil
}

// Validate checks that all settings are within range.
//
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// SlogLevel returns the slog level for c.LogLevel.
//
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
