// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/deeplcli/deepl/cmd/deepl/cli"
	"github.com/deeplcli/deepl/cmd/deepl/commands"
)

// harness is a temporary home plus a TLS API server for end-to-end runs.
type harness struct {
	env    *cli.Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	calls  *atomic.Int32
	vars   map[string]string
}

func newHarness(t *testing.T, handler http.HandlerFunc) *harness {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		calls.Add(1)
		handler(writer, request)
	}))
	t.Cleanup(server.Close)

	home := t.TempDir()
	if err := os.MkdirAll(filepath.Join(home, ".deepl"), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".deepl", "config.yaml"), []byte("server_url: "+server.URL+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := &harness{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		calls:  &calls,
		vars:   map[string]string{},
	}
	h.env = &cli.Environment{
		Stdout:     h.stdout,
		Stderr:     h.stderr,
		HomeDir:    home,
		Getenv:     func(name string) string { return h.vars[name] },
		HTTPClient: server.Client(),
	}
	return h
}

func (h *harness) writeCredentials(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(h.env.HomeDir, ".deepl", "credentials"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func (h *harness) run(args ...string) int {
	return run(context.Background(), args, h.env)
}

func TestRun_NoArgsPrintsHelp(t *testing.T) {
	h := newHarness(t, func(http.ResponseWriter, *http.Request) {})

	if code := h.run(); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	help := h.stdout.String()
	for _, want := range []string{"Usage:", "translate", "create-glossary", "retrieve-glossary-entries", "version"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q", want)
		}
	}
	if h.stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", h.stderr.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	h := newHarness(t, func(http.ResponseWriter, *http.Request) {})

	if code := h.run("list-glossary"); code != cli.ExitUsage {
		t.Errorf("exit code = %d, want %d", code, cli.ExitUsage)
	}
	if !strings.Contains(h.stderr.String(), `did you mean "list-glossaries"?`) {
		t.Errorf("stderr = %q, want suggestion", h.stderr.String())
	}
}

func TestRun_TranslateWithFileCredential(t *testing.T) {
	var auth string
	h := newHarness(t, func(writer http.ResponseWriter, request *http.Request) {
		auth = request.Header.Get("Authorization")
		writer.Write([]byte(`{"translations":[{"text":"Bonjour"}]}`))
	})
	h.writeCredentials(t, "[default]\nauth_key = file-key:fx\n")

	if code := h.run("translate", "--target", "fr", "--text", "Hello"); code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, h.stderr.String())
	}
	if h.stdout.String() != "Bonjour\n" {
		t.Errorf("stdout = %q", h.stdout.String())
	}
	if auth != "DeepL-Auth-Key file-key:fx" {
		t.Errorf("Authorization = %q", auth)
	}
}

func TestRun_ExplicitKeyWins(t *testing.T) {
	var auth string
	h := newHarness(t, func(writer http.ResponseWriter, request *http.Request) {
		auth = request.Header.Get("Authorization")
		writer.Write([]byte(`{"glossaries":[]}`))
	})
	h.writeCredentials(t, "[default]\nauth_key = file-key\n")
	h.vars["DEEPL_AUTH_KEY"] = "env-key"

	if code := h.run("list-glossaries", "-k", "flag-key"); code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, h.stderr.String())
	}
	if auth != "DeepL-Auth-Key flag-key" {
		t.Errorf("Authorization = %q, want the explicit key", auth)
	}
}

func TestRun_MissingKey(t *testing.T) {
	h := newHarness(t, func(http.ResponseWriter, *http.Request) {})

	if code := h.run("list-glossaries"); code != cli.ExitFailure {
		t.Errorf("exit code = %d, want %d", code, cli.ExitFailure)
	}
	if h.calls.Load() != 0 {
		t.Errorf("server received %d requests, want 0", h.calls.Load())
	}
	if h.stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", h.stdout.String())
	}
	if !strings.Contains(h.stderr.String(), "no auth key found") {
		t.Errorf("stderr = %q, want hint", h.stderr.String())
	}
	if strings.Contains(h.stderr.String(), "error:") {
		t.Errorf("stderr = %q, hint should not be followed by an error line", h.stderr.String())
	}
}

func TestRun_APIError(t *testing.T) {
	h := newHarness(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusForbidden)
		writer.Write([]byte("Forbidden"))
	})
	h.vars["DEEPL_AUTH_KEY"] = "bad-key"

	if code := h.run("translate", "--text", "Hello"); code != cli.ExitFailure {
		t.Errorf("exit code = %d, want %d", code, cli.ExitFailure)
	}
	if h.stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", h.stdout.String())
	}
	if got := h.stderr.String(); got != "Error: 403 Forbidden\n" {
		t.Errorf("stderr = %q, want %q", got, "Error: 403 Forbidden\n")
	}
}

func TestRun_CreateGlossaryWithoutEntries(t *testing.T) {
	h := newHarness(t, func(http.ResponseWriter, *http.Request) {})
	h.vars["DEEPL_AUTH_KEY"] = "k"

	if code := h.run("create-glossary", "--name", "n"); code != cli.ExitUsage {
		t.Errorf("exit code = %d, want %d", code, cli.ExitUsage)
	}
	if h.calls.Load() != 0 {
		t.Errorf("server received %d requests, want 0", h.calls.Load())
	}
	if !strings.Contains(h.stderr.String(), "error: one of --entries or --glossary_files is required") {
		t.Errorf("stderr = %q", h.stderr.String())
	}
}

func TestRun_BrokenSettingsFile(t *testing.T) {
	h := newHarness(t, func(http.ResponseWriter, *http.Request) {})
	h.vars["DEEPL_CONFIG"] = filepath.Join(t.TempDir(), "absent.yaml")

	if code := h.run("list-glossaries", "-k", "k"); code != cli.ExitFailure {
		t.Errorf("exit code = %d, want %d", code, cli.ExitFailure)
	}
	if !strings.Contains(h.stderr.String(), "error: config:") {
		t.Errorf("stderr = %q", h.stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	h := newHarness(t, func(http.ResponseWriter, *http.Request) {})

	if code := h.run("version"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(h.stdout.String(), "deepl ") {
		t.Errorf("stdout = %q", h.stdout.String())
	}
}

// TestCommandTree walks the production command tree and checks that
// every command is documented and that every flag set binds cleanly.
func TestCommandTree(t *testing.T) {
	root := commands.Root(&cli.Environment{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	seen := map[string]bool{}

	for _, command := range root.Subcommands {
		if seen[command.Name] {
			t.Errorf("duplicate command %q", command.Name)
		}
		seen[command.Name] = true

		if command.Summary == "" {
			t.Errorf("%s: missing Summary", command.Name)
		}
		if command.Run == nil {
			t.Errorf("%s: missing Run", command.Name)
		}
		if command.Params != nil {
			flagSet := cli.FlagsFromParams(command.Name, command.Params())
			if command.Name != "version" && flagSet.Lookup("key") == nil {
				t.Errorf("%s: API command missing --key", command.Name)
			}
			if flagSet.Lookup("color") == nil {
				t.Errorf("%s: API command missing --color", command.Name)
			}
		}
	}

	for _, name := range []string{
		"translate",
		"glossary-language-pairs",
		"create-glossary",
		"list-glossaries",
		"retrieve-glossary",
		"delete-glossary",
		"retrieve-glossary-entries",
		"version",
	} {
		if !seen[name] {
			t.Errorf("command tree missing %q", name)
		}
	}
}
