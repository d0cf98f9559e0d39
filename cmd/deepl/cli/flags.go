// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// AuthConfig holds the -k/--key flag. Embed it (or [APIFlags]) in a
// parameter struct; [BindFlags] calls AddFlags.
type AuthConfig struct {
	Key string
}

// AddFlags registers -k/--key.
func (a *AuthConfig) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&a.Key, "key", "k", "",
		"DeepL auth key (default: $DEEPL_AUTH_KEY, then auth_key in ~/.deepl/credentials)")
}

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorOutput holds the --color flag.
type ColorOutput struct {
	Mode string
}

// AddFlags registers --color.
func (c *ColorOutput) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.Mode, "color", ColorAuto, "colorize output: auto, always, or never")
}

// Enabled reports whether output to w should be colorized. In auto mode
// color is on when w is a terminal and NO_COLOR is unset.
func (c *ColorOutput) Enabled(w io.Writer, getenv func(string) string) (bool, error) {
	switch strings.ToLower(c.Mode) {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto, "":
		if getenv != nil && getenv("NO_COLOR") != "" {
			return false, nil
		}
		return isTerminal(w), nil
	default:
		return false, Validation("--color must be auto, always, or never (got %q)", c.Mode)
	}
}

// APIFlags bundles the flags every API command accepts.
type APIFlags struct {
	AuthConfig
	ColorOutput
}
