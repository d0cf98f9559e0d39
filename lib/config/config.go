// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the
// settings file location.
const EnvConfigPath = "DEEPL_CONFIG"

const (
	// DefaultServerURL is the DeepL API Free endpoint.
	DefaultServerURL = "https://api-free.deepl.com"

	// DefaultTimeout bounds each API call.
	DefaultTimeout = 30 * time.Second

	// DefaultSourceLang and DefaultTargetLang are used by translate and
	// create-glossary when neither the flag nor the file sets them.
	DefaultSourceLang = "en"
	DefaultTargetLang = "ja"
)

// Config is the deepl settings file.
type Config struct {
	// ServerURL is the API base URL. Must use HTTPS.
	// Default: https://api-free.deepl.com
	ServerURL string `yaml:"server_url"`

	// Timeout bounds each API call, as a Go duration string.
	// Default: 30s
	Timeout string `yaml:"timeout"`

	// SourceLang is the default source language.
	// Default: en
	SourceLang string `yaml:"source_lang"`

	// TargetLang is the default target language.
	// Default: ja
	TargetLang string `yaml:"target_lang"`

	// Path is the file the settings were loaded from, or "" when every
	// value is a default.
	Path string `yaml:"-"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		ServerURL:  DefaultServerURL,
		Timeout:    DefaultTimeout.String(),
		SourceLang: DefaultSourceLang,
		TargetLang: DefaultTargetLang,
	}
}

// DefaultPath returns the settings file path under the given home
// directory.
func DefaultPath(home string) string {
	return filepath.Join(home, ".deepl", "config.yaml")
}

// Load resolves the settings file location from getenv and home and
// loads it. A missing file at the default location yields Default().
func Load(home string, getenv func(string) string) (*Config, error) {
	if getenv != nil {
		if path := getenv(EnvConfigPath); path != "" {
			return LoadFile(path, getenv)
		}
	}

	if home == "" {
		return Default(), nil
	}

	cfg, err := LoadFile(DefaultPath(home), getenv)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile loads settings from path, applying defaults for anything the
// file leaves unset. Unknown keys are rejected so typos surface instead
// of silently falling back to defaults. getenv resolves ${VAR}
// references; nil treats every variable as unset.
func LoadFile(path string, getenv func(string) string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.Path = path

	cfg.expandVariables(getenv)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults restores defaults for keys the file set to empty values.
func (c *Config) applyDefaults() {
	defaults := Default()
	if c.ServerURL == "" {
		c.ServerURL = defaults.ServerURL
	}
	if c.Timeout == "" {
		c.Timeout = defaults.Timeout
	}
	if c.SourceLang == "" {
		c.SourceLang = defaults.SourceLang
	}
	if c.TargetLang == "" {
		c.TargetLang = defaults.TargetLang
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} in ServerURL.
func (c *Config) expandVariables(getenv func(string) string) {
	c.ServerURL = expandVars(c.ServerURL, getenv)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, getenv func(string) string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if getenv != nil {
			if value := getenv(name); value != "" {
				return value
			}
		}
		return defaultValue
	})
}

// TimeoutDuration parses Timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.Timeout)
}

// Validate checks the settings for errors.
func (c *Config) Validate() error {
	var errs []error

	if !strings.HasPrefix(c.ServerURL, "https://") {
		errs = append(errs, fmt.Errorf("server_url must use https (got %q)", c.ServerURL))
	}

	timeout, err := c.TimeoutDuration()
	if err != nil {
		errs = append(errs, fmt.Errorf("timeout: %w", err))
	} else if timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive (got %s)", c.Timeout))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
