package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/acadctl/internal/transport"
)

// clientConfig is the resolved runtime configuration for one client
// process.
type clientConfig struct {
	Addr            string
	DialTimeout     time.Duration
	ExchangeTimeout time.Duration
	ClearScreen     bool
}

// fileConfig is the on-disk TOML shape.
type fileConfig struct {
	Addr            string `toml:"addr"`
	DialTimeout     string `toml:"dial_timeout"`
	ExchangeTimeout string `toml:"exchange_timeout"`
	ClearScreen     bool   `toml:"clear_screen"`
}

// defaultClientConfig targets the portal server's fixed local
// endpoint.
func defaultClientConfig() clientConfig {
	cfg := transport.DefaultConfig()
	return clientConfig{
		Addr:            "127.0.0.1:8080",
		DialTimeout:     cfg.DialTimeout,
		ExchangeTimeout: cfg.ExchangeTimeout,
		ClearScreen:     true,
	}
}

// loadClientConfig reads path over the defaults. A missing file is not
// an error: the defaults stand.
func loadClientConfig(path string) (clientConfig, error) {
	cfg := defaultClientConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return clientConfig{}, fmt.Errorf("load client config: %w", err)
	}

	if meta.IsDefined("addr") {
		addr := strings.TrimSpace(raw.Addr)
		if addr != "" {
			cfg.Addr = addr
		}
	}

	if meta.IsDefined("dial_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.DialTimeout))
		if err != nil {
			return clientConfig{}, fmt.Errorf("parse dial_timeout: %w", err)
		}
		cfg.DialTimeout = d
	}

	if meta.IsDefined("exchange_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ExchangeTimeout))
		if err != nil {
			return clientConfig{}, fmt.Errorf("parse exchange_timeout: %w", err)
		}
		cfg.ExchangeTimeout = d
	}

	if meta.IsDefined("clear_screen") {
		cfg.ClearScreen = raw.ClearScreen
	}

	return cfg, nil
}

func (c clientConfig) transport() transport.Config {
	return transport.Config{
		DialTimeout:     c.DialTimeout,
		ExchangeTimeout: c.ExchangeTimeout,
	}
}
