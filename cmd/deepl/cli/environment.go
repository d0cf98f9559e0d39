// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/deeplcli/deepl/lib/config"
	"github.com/deeplcli/deepl/lib/credential"
	"github.com/deeplcli/deepl/lib/deepl"
)

// Environment is the process state commands read: output streams, the
// home directory holding ~/.deepl, and environment variables. Tests
// substitute buffers, a temporary home and a fake getenv.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	// HomeDir locates ~/.deepl/credentials and ~/.deepl/config.yaml.
	// Empty skips both files.
	HomeDir string

	// Getenv looks up environment variables.
	Getenv func(string) string

	// HTTPClient is passed to the API client. Nil uses
	// http.DefaultClient.
	HTTPClient *http.Client
}

// ProcessEnvironment returns the Environment of the running process. An
// unresolvable home directory leaves HomeDir empty.
func ProcessEnvironment() *Environment {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		HomeDir: home,
		Getenv:  os.Getenv,
	}
}

// CredentialPath returns the credentials file path, or "" without a
// home directory.
func (env *Environment) CredentialPath() string {
	if env.HomeDir == "" {
		return ""
	}
	return credential.DefaultPath(env.HomeDir)
}

// Settings loads the settings file.
func (env *Environment) Settings() (*config.Config, error) {
	return config.Load(env.HomeDir, env.Getenv)
}

// Open prepares an API command: it validates --color, loads the
// settings and builds a client whose key resolves from --key, then
// $DEEPL_AUTH_KEY, then the credentials file. The key itself is
// resolved lazily, when the first API call is made.
func (env *Environment) Open(flags *APIFlags, logger *slog.Logger) (*Session, error) {
	resultColor, err := flags.ColorOutput.Enabled(env.Stdout, env.Getenv)
	if err != nil {
		return nil, err
	}
	diagnosticColor, err := flags.ColorOutput.Enabled(env.Stderr, env.Getenv)
	if err != nil {
		return nil, err
	}
	printer := NewPrinter(env.Stdout, env.Stderr, resultColor, diagnosticColor)

	settings, err := env.Settings()
	if err != nil {
		return nil, err
	}
	timeout, err := settings.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	resolver := credential.Resolver{
		Explicit: flags.AuthConfig.Key,
		Path:     env.CredentialPath(),
		Getenv:   env.Getenv,
	}

	client, err := deepl.NewClient(deepl.Config{
		ServerURL:  settings.ServerURL,
		Keys:       resolver,
		HTTPClient: env.HTTPClient,
		Timeout:    timeout,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("session opened",
		"server_url", settings.ServerURL,
		"timeout", timeout,
		"settings_file", settings.Path,
	)

	return &Session{
		Settings:       settings,
		Client:         client,
		Printer:        printer,
		credentialPath: resolver.Path,
	}, nil
}
