// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvtensor/csr"
	"github.com/katalvlaran/lvtensor/tensor"
	"gopkg.in/yaml.v3"
)

// ErrConfig reports an invalid configuration value.
var ErrConfig = errors.New("lvtensor: invalid config")

// Config is the YAML configuration of the lvtensor command.
//
//	log:
//	  level: info     # debug | info | warn | error
//	  format: text    # text | json
//	csr:
//	  codec: zstd     # none | lz4 | zstd
//	  workers: 4
type Config struct {
	Log LogConfig `yaml:"log"`
	Csr CsrConfig `yaml:"csr"`
}

// LogConfig selects the diagnostics handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CsrConfig holds defaults for the csr subcommands.
type CsrConfig struct {
	Codec   string `yaml:"codec"`
	Workers int    `yaml:"workers"`
}

// DefaultConfig is used for every field a config file leaves out.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Csr: CsrConfig{Codec: csr.DefaultCodec.String(), Workers: csr.DefaultWorkers},
	}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrConfig)
	}
	if _, err := csr.ParseCodec(c.Csr.Codec); err != nil {
		return fmt.Errorf("csr.codec %q: %w", c.Csr.Codec, ErrConfig)
	}
	if c.Csr.Workers < 1 {
		return fmt.Errorf("csr.workers %d: %w", c.Csr.Workers, ErrConfig)
	}

	return nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", c.Log.Level, ErrConfig)
	}

	return l, nil
}

// Logger builds the configured logger writing to w.
func (c Config) Logger(w io.Writer) (*tensor.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(c.Log.Format, "json") {
		return tensor.NewJSONLogger(w, level), nil
	}

	return tensor.NewTextLogger(w, level), nil
}

// CsrOptions translates the csr section into csr options.
func (c Config) CsrOptions(log *tensor.Logger) ([]csr.Option, error) {
	codec, err := csr.ParseCodec(c.Csr.Codec)
	if err != nil {
		return nil, fmt.Errorf("csr.codec %q: %w", c.Csr.Codec, ErrConfig)
	}
	if c.Csr.Workers < 1 {
		return nil, fmt.Errorf("csr.workers %d: %w", c.Csr.Workers, ErrConfig)
	}

	return []csr.Option{csr.WithCodec(codec), csr.WithWorkers(c.Csr.Workers), csr.WithLogger(log)}, nil
}
