// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package glossary

import (
	"context"
	"log/slog"

	"github.com/deeplcli/deepl/cmd/deepl/cli"
)

func listCommand(env *cli.Environment) *cli.Command {
	var params cli.APIFlags

	return &cli.Command{
		Name:    "list-glossaries",
		Summary: "List all glossaries",
		Usage:   "deepl list-glossaries [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := noArgs(args); err != nil {
				return err
			}
			session, err := env.Open(&params, logger)
			if err != nil {
				return err
			}
			return session.Finish(session.Client.ListGlossaries(ctx))
		},
	}
}

func retrieveCommand(env *cli.Environment) *cli.Command {
	var params idParams

	return &cli.Command{
		Name:    "retrieve-glossary",
		Summary: "Show a glossary's metadata",
		Usage:   "deepl retrieve-glossary --glossary_id <id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := params.requireID(args); err != nil {
				return err
			}
			session, err := env.Open(&params.APIFlags, logger)
			if err != nil {
				return err
			}
			return session.Finish(session.Client.RetrieveGlossary(ctx, params.GlossaryID))
		},
	}
}

func deleteCommand(env *cli.Environment) *cli.Command {
	var params idParams

	return &cli.Command{
		Name:    "delete-glossary",
		Summary: "Delete a glossary",
		Description: `Delete a glossary. The API answers with an empty body, so nothing
is printed on success.`,
		Usage:  "deepl delete-glossary --glossary_id <id> [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := params.requireID(args); err != nil {
				return err
			}
			session, err := env.Open(&params.APIFlags, logger)
			if err != nil {
				return err
			}
			return session.Finish(session.Client.DeleteGlossary(ctx, params.GlossaryID))
		},
	}
}

func entriesCommand(env *cli.Environment) *cli.Command {
	var params idParams

	return &cli.Command{
		Name:    "retrieve-glossary-entries",
		Summary: "Print a glossary's entries as tab-separated values",
		Usage:   "deepl retrieve-glossary-entries --glossary_id <id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := params.requireID(args); err != nil {
				return err
			}
			session, err := env.Open(&params.APIFlags, logger)
			if err != nil {
				return err
			}
			entries, err := session.Client.RetrieveGlossaryEntries(ctx, params.GlossaryID)
			if err != nil {
				return session.Fail(err)
			}
			return session.Printer.Raw(entries)
		},
	}
}
