// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package glossary

import (
	"context"
	"log/slog"

	"github.com/deeplcli/deepl/cmd/deepl/cli"
	"github.com/deeplcli/deepl/lib/deepl"
)

// createParams holds the parameters for create-glossary.
type createParams struct {
	cli.APIFlags
	Source        string   `json:"source"         flag:"source"         desc:"source language code (default: source_lang from config.yaml, else en)"`
	Target        string   `json:"target"         flag:"target"         desc:"target language code (default: target_lang from config.yaml, else ja)"`
	Name          string   `json:"name"           flag:"name"           desc:"glossary name (required)"`
	Entries       string   `json:"entries"        flag:"entries"        desc:"glossary entries in --entries_format (exclusive with --glossary_files)"`
	Files         []string `json:"glossary_files" flag:"glossary_files" desc:"tab-separated glossary file; repeatable (exclusive with --entries)"`
	EntriesFormat string   `json:"entries_format" flag:"entries_format" desc:"format of --entries: csv or tsv" default:"csv"`
}

func createCommand(env *cli.Environment) *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create-glossary",
		Summary: "Create a glossary",
		Description: `Create a glossary from literal entries or from glossary files.

Exactly one of --entries and --glossary_files is required. Glossary files
are tab-separated: on each row, every field but the last is a source term
mapping to the last field, and fields starting with "#" are skipped.
Rows from all files are sent as CSV entries.`,
		Usage: "deepl create-glossary --name <name> (--entries <entries> | --glossary_files <file>...) [flags]",
		Examples: []cli.Example{
			{
				Description: "Create a glossary from literal CSV entries",
				Command:     `deepl create-glossary --source en --target de --name "My Glossary" --entries "Hello,Hallo"`,
			},
			{
				Description: "Create a glossary from two TSV files",
				Command:     "deepl create-glossary --source en --target ja --name terms --glossary_files a.tsv --glossary_files b.tsv",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := noArgs(args); err != nil {
				return err
			}
			if params.Name == "" {
				return cli.Validation("--name is required")
			}
			switch {
			case params.Entries == "" && len(params.Files) == 0:
				return cli.Validation("one of --entries or --glossary_files is required")
			case params.Entries != "" && len(params.Files) > 0:
				return cli.Validation("--entries and --glossary_files are mutually exclusive")
			}

			session, err := env.Open(&params.APIFlags, logger)
			if err != nil {
				return err
			}

			return session.Finish(session.Client.CreateGlossary(ctx, deepl.GlossaryRequest{
				SourceLang:    session.SourceLang(params.Source),
				TargetLang:    session.TargetLang(params.Target),
				Name:          params.Name,
				Entries:       params.Entries,
				Files:         params.Files,
				EntriesFormat: params.EntriesFormat,
			}))
		},
	}
}
