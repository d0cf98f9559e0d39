// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Command deepl is a command-line client for the DeepL translation API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/deeplcli/deepl/cmd/deepl/cli"
	"github.com/deeplcli/deepl/cmd/deepl/commands"
)

func main() {
	// .env never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], cli.ProcessEnvironment())
	stop()
	os.Exit(code)
}

// run executes the command tree and returns the process exit code.
func run(ctx context.Context, args []string, env *cli.Environment) int {
	logger := cli.NewCommandLogger(env.Stderr, cli.LogLevel(env.Getenv))

	err := commands.Root(env).Execute(ctx, args, logger)
	if err == nil {
		return 0
	}

	// Commands that print their own diagnostic (API errors, missing
	// key) return an ExitError. Don't print a redundant "error:" line
	// for those.
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return cli.ExitCodeFor(err)
}
