// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes content to ~/.deepl/config.yaml under a fresh
// temporary home and returns the home directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	path := DefaultPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return home
}

func noEnv(string) string { return "" }

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ServerURL != "https://api-free.deepl.com" {
		t.Errorf("expected free endpoint, got %s", cfg.ServerURL)
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil || timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v (%v)", timeout, err)
	}
	if cfg.SourceLang != "en" || cfg.TargetLang != "ja" {
		t.Errorf("expected en→ja, got %s→%s", cfg.SourceLang, cfg.TargetLang)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	cfg, err := Load(t.TempDir(), noEnv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != DefaultServerURL || cfg.Path != "" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_DefaultFile(t *testing.T) {
	home := writeConfig(t, `
server_url: https://api.deepl.com
timeout: 45s
source_lang: de
`)

	cfg, err := Load(home, noEnv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "https://api.deepl.com" {
		t.Errorf("server_url = %s", cfg.ServerURL)
	}
	if timeout, _ := cfg.TimeoutDuration(); timeout != 45*time.Second {
		t.Errorf("timeout = %s", cfg.Timeout)
	}
	if cfg.SourceLang != "de" {
		t.Errorf("source_lang = %s", cfg.SourceLang)
	}
	if cfg.TargetLang != "ja" {
		t.Errorf("target_lang should keep its default, got %s", cfg.TargetLang)
	}
	if cfg.Path != DefaultPath(home) {
		t.Errorf("Path = %s", cfg.Path)
	}
}

func TestLoad_EnvironmentPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("target_lang: fr\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	getenv := func(name string) string {
		if name == EnvConfigPath {
			return path
		}
		return ""
	}

	cfg, err := Load(t.TempDir(), getenv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TargetLang != "fr" {
		t.Errorf("target_lang = %s", cfg.TargetLang)
	}
}

func TestLoad_EnvironmentPathMustExist(t *testing.T) {
	getenv := func(name string) string {
		if name == EnvConfigPath {
			return filepath.Join(t.TempDir(), "missing.yaml")
		}
		return ""
	}

	if _, err := Load(t.TempDir(), getenv); err == nil {
		t.Fatal("expected error for missing DEEPL_CONFIG file")
	}
}

func TestLoadFile_EmptyFile(t *testing.T) {
	home := writeConfig(t, "")
	cfg, err := LoadFile(DefaultPath(home), noEnv)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("server_url = %s", cfg.ServerURL)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	home := writeConfig(t, "server_ulr: https://api.deepl.com\n")
	_, err := LoadFile(DefaultPath(home), noEnv)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "server_ulr") {
		t.Errorf("error should name the unknown key, got %v", err)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain http", "server_url: http://api.deepl.com\n", "https"},
		{"bad timeout", "timeout: soon\n", "timeout"},
		{"negative timeout", "timeout: -5s\n", "positive"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			home := writeConfig(t, test.content)
			_, err := LoadFile(DefaultPath(home), noEnv)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q should mention %q", err, test.want)
			}
		})
	}
}

func TestLoadFile_ExpandsServerURL(t *testing.T) {
	getenv := func(name string) string {
		if name == "DEEPL_TEST_SERVER" {
			return "https://api.deepl.com"
		}
		return ""
	}

	home := writeConfig(t, "server_url: ${DEEPL_TEST_SERVER}\n")
	cfg, err := LoadFile(DefaultPath(home), getenv)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ServerURL != "https://api.deepl.com" {
		t.Errorf("server_url = %s", cfg.ServerURL)
	}

	home = writeConfig(t, "server_url: ${DEEPL_TEST_UNSET:-https://fallback.example.com}\n")
	cfg, err = LoadFile(DefaultPath(home), getenv)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ServerURL != "https://fallback.example.com" {
		t.Errorf("server_url = %s", cfg.ServerURL)
	}
}

func TestLoad_ExpandsFromInjectedEnvironment(t *testing.T) {
	t.Setenv("DEEPL_TEST_SERVER", "https://process.example.com")

	home := writeConfig(t, "server_url: ${DEEPL_TEST_SERVER:-https://fallback.example.com}\n")
	cfg, err := Load(home, func(name string) string {
		if name == "DEEPL_TEST_SERVER" {
			return "https://injected.example.com"
		}
		return ""
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "https://injected.example.com" {
		t.Errorf("server_url = %s, want the injected value", cfg.ServerURL)
	}

	cfg, err = Load(home, noEnv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "https://fallback.example.com" {
		t.Errorf("server_url = %s, want the default (process environment must not leak)", cfg.ServerURL)
	}
}
