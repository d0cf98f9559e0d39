// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package glossary

import (
	"context"
	"log/slog"

	"github.com/deeplcli/deepl/cmd/deepl/cli"
)

func languagePairsCommand(env *cli.Environment) *cli.Command {
	var params cli.APIFlags

	return &cli.Command{
		Name:    "glossary-language-pairs",
		Summary: "List language pairs supported by glossaries",
		Usage:   "deepl glossary-language-pairs [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := noArgs(args); err != nil {
				return err
			}
			session, err := env.Open(&params, logger)
			if err != nil {
				return err
			}
			return session.Finish(session.Client.GlossaryLanguagePairs(ctx))
		},
	}
}
