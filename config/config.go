// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the teammatch server configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/someonegg/teammatch/kmeans"
	"github.com/someonegg/teammatch/observe"
)

type Config struct {
	Server     Server     `yaml:"server"`
	Log        Log        `yaml:"log"`
	Metrics    Metrics    `yaml:"metrics"`
	CORS       CORS       `yaml:"cors"`
	Clustering Clustering `yaml:"clustering"`
}

type Server struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Clustering struct {
	MaxIterations int `yaml:"max_iterations"`
}

func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: observe.FormatJSON,
		},
		Metrics: Metrics{
			Enabled: true,
			Path:    "/metrics",
		},
		CORS: CORS{
			AllowedOrigins: []string{"*"},
		},
		Clustering: Clustering{
			MaxIterations: kmeans.DefaultMaxIterations,
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := cfg.decode(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("config: server.addr is required")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case observe.FormatJSON, observe.FormatConsole:
	default:
		return fmt.Errorf("config: log.format must be %q or %q", observe.FormatJSON, observe.FormatConsole)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("config: metrics.path must start with /")
	}
	if c.Clustering.MaxIterations <= 0 {
		return errors.New("config: clustering.max_iterations must be positive")
	}
	return nil
}
