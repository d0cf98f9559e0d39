// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package translate implements the "deepl translate" command.
package translate

import (
	"context"
	"log/slog"

	"github.com/deeplcli/deepl/cmd/deepl/cli"
	"github.com/deeplcli/deepl/lib/deepl"
)

// translateParams holds the parameters for translate.
type translateParams struct {
	cli.APIFlags
	cli.JSONOutput
	Source     string `json:"source"      flag:"source"      desc:"source language code (default: source_lang from config.yaml, else en)"`
	Target     string `json:"target"      flag:"target"      desc:"target language code (default: target_lang from config.yaml, else ja)"`
	GlossaryID string `json:"glossary_id" flag:"glossary_id" desc:"glossary to apply (requires a source language)"`
	Text       string `json:"text"        flag:"text"        desc:"text to translate (required)"`
}

// Command returns the "translate" command.
func Command(env *cli.Environment) *cli.Command {
	var params translateParams

	return &cli.Command{
		Name:    "translate",
		Summary: "Translate text",
		Description: `Translate a piece of text and print the first translation.

With --json the full response is printed instead, including the
detected source language.`,
		Usage: "deepl translate --text <text> [flags]",
		Examples: []cli.Example{
			{
				Description: "Translate English to Japanese (the defaults)",
				Command:     `deepl translate --text "Hello, world"`,
			},
			{
				Description: "Translate with a glossary",
				Command:     `deepl translate --source en --target de --glossary_id def3a26b-3e84-45b3-84ae-0c0aaf3525f7 --text "Hello"`,
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q (pass the text with --text)", args[0])
			}
			if params.Text == "" {
				return cli.Validation("--text is required")
			}

			session, err := env.Open(&params.APIFlags, logger)
			if err != nil {
				return err
			}

			request := deepl.TranslateRequest{
				SourceLang: session.SourceLang(params.Source),
				TargetLang: session.TargetLang(params.Target),
				Text:       params.Text,
				GlossaryID: params.GlossaryID,
			}

			if params.OutputJSON {
				response, err := session.Client.TranslateDetailed(ctx, request)
				if err != nil {
					return session.Fail(err)
				}
				_, err = params.EmitJSON(session.Printer, response)
				return err
			}

			return session.Finish(session.Client.Translate(ctx, request))
		},
	}
}
