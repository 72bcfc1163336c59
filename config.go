// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Default connection parameters. The Pathway Tools Python/Lisp server listens
// on port 5008 when started with the -python option.
const (
	DefaultHost       = "localhost"
	DefaultPort       = 5008
	DefaultTimeout    = 360 * time.Second
	DefaultQuiescence = 2 * time.Second
)

// Config carries every parameter the transport reads on each exchange. It is
// an explicit value threaded through calls rather than package-level mutable
// state, so two PGDB handles can point at different servers.
type Config struct {
	Host string
	Port int

	// Timeout bounds one whole request/response round trip. Queries can run
	// for minutes on large PGDBs, hence the generous default.
	Timeout time.Duration

	// Quiescence is the idle window after which an unbounded ('A'-framed)
	// response is considered complete.
	Quiescence time.Duration

	// Debug turns on tracing of every query and response on the standard
	// logger.
	Debug bool
}

// DefaultConfig returns a Config pointing at a local Pathway Tools server.
func DefaultConfig() Config {
	return Config{
		Host:       DefaultHost,
		Port:       DefaultPort,
		Timeout:    DefaultTimeout,
		Quiescence: DefaultQuiescence,
	}
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithHost sets the server host name.
func WithHost(host string) Option {
	return func(c *Config) { c.Host = host }
}

// WithPort sets the server port.
func WithPort(port int) Option {
	return func(c *Config) { c.Port = port }
}

// WithTimeout sets the per-exchange round-trip ceiling.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithDebug toggles query/response tracing.
func WithDebug(on bool) Option {
	return func(c *Config) { c.Debug = on }
}

// NewConfig builds a Config from the defaults plus the given options.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// fileConfig is the on-disk YAML shape. Durations are plain seconds so config
// files stay trivial to write by hand.
type fileConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Debug          bool   `yaml:"debug"`
}

// LoadConfig reads a YAML config file and overlays it on the defaults. Absent
// fields keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	c := DefaultConfig()
	if fc.Host != "" {
		c.Host = fc.Host
	}
	if fc.Port != 0 {
		c.Port = fc.Port
	}
	if fc.TimeoutSeconds != 0 {
		c.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	c.Debug = fc.Debug
	return c, nil
}
