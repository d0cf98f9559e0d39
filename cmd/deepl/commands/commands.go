// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete deepl CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/deeplcli/deepl/cmd/deepl/cli"
	"github.com/deeplcli/deepl/cmd/deepl/glossary"
	"github.com/deeplcli/deepl/cmd/deepl/translate"
	"github.com/deeplcli/deepl/lib/version"
)

// Root builds and returns the complete deepl CLI command tree. Help and
// results go to env.Stdout, diagnostics to env.Stderr.
func Root(env *cli.Environment) *cli.Command {
	subcommands := []*cli.Command{translate.Command(env)}
	subcommands = append(subcommands, glossary.Commands(env)...)
	subcommands = append(subcommands, &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			_, err := fmt.Fprintf(env.Stdout, "deepl %s\n", version.Full())
			return err
		},
	})

	return &cli.Command{
		Name: "deepl",
		Description: `deepl: a command-line client for the DeepL translation API.

The auth key is taken from -k/--key, then $DEEPL_AUTH_KEY, then auth_key
in the [default] section of ~/.deepl/credentials. Optional settings
(server_url, timeout, source_lang, target_lang) are read from
~/.deepl/config.yaml, or from the file named by $DEEPL_CONFIG.`,
		Output:      env.Stdout,
		Subcommands: subcommands,
		Examples: []cli.Example{
			{
				Description: "Translate English to Japanese",
				Command:     `deepl translate --text "Good morning"`,
			},
			{
				Description: "Create a glossary from a TSV file and list glossaries",
				Command:     "deepl create-glossary --source en --target ja --name terms --glossary_files terms.tsv && deepl list-glossaries",
			},
		},
	}
}
