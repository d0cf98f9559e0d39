// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the deepl CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a parameter struct whose tagged
// fields become flags (see [BindFlags]), and a Run function. Commands are
// assembled into a tree in cmd/deepl/commands and dispatched via
// [Command.Execute], which handles flag parsing, subcommand routing, and
// structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// API commands share one setup path: embed [APIFlags] in the parameter
// struct for -k/--key and --color, then call [Environment.Open] to get a
// [Session] holding the settings, the API client and a [Printer].
// [Session.Finish] turns an API call's result or error into output and
// an exit status:
//
//   - success: the result on stdout
//   - API error: "Error: <status> <body>" on stderr, exit 1
//   - missing auth key: a hint on stderr, exit 1
//   - bad input: a [ToolError] in [CategoryValidation], exit 2
//
// Handled non-zero exits are signalled with [ExitError]; everything else
// is printed by main as "error: ..." with the code from [ExitCodeFor].
package cli
