// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package glossary

import (
	"github.com/deeplcli/deepl/cmd/deepl/cli"
)

// Commands returns the glossary commands in help-listing order.
func Commands(env *cli.Environment) []*cli.Command {
	return []*cli.Command{
		languagePairsCommand(env),
		createCommand(env),
		listCommand(env),
		retrieveCommand(env),
		deleteCommand(env),
		entriesCommand(env),
	}
}

// idParams holds the parameters shared by the commands that address a
// single glossary.
type idParams struct {
	cli.APIFlags
	GlossaryID string `json:"glossary_id" flag:"glossary_id" desc:"glossary id (required)"`
}

// requireID validates the glossary id and rejects positional arguments.
func (p *idParams) requireID(args []string) error {
	if len(args) > 0 {
		return cli.Validation("unexpected argument %q (pass the id with --glossary_id)", args[0])
	}
	if p.GlossaryID == "" {
		return cli.Validation("--glossary_id is required")
	}
	return nil
}

// noArgs rejects positional arguments for commands that take none.
func noArgs(args []string) error {
	if len(args) > 0 {
		return cli.Validation("unexpected argument %q", args[0])
	}
	return nil
}
