// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes command results to stdout and diagnostics to stderr.
// Each stream decides color on its own: highlighted JSON results on
// stdout, styled labels on stderr.
type Printer struct {
	stdout io.Writer
	stderr io.Writer

	resultColor     bool
	diagnosticColor bool

	errorLabel lipgloss.Style
	hintLabel  lipgloss.Style
}

// NewPrinter creates a Printer. resultColor enables highlighting on
// stdout; diagnosticColor enables the ANSI256 profile for stderr labels.
func NewPrinter(stdout, stderr io.Writer, resultColor, diagnosticColor bool) *Printer {
	profile := termenv.Ascii
	if diagnosticColor {
		profile = termenv.ANSI256
	}
	// SetColorProfile pins the profile; otherwise lipgloss re-detects it
	// from the environment.
	renderer := lipgloss.NewRenderer(stderr, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return &Printer{
		stdout:          stdout,
		stderr:          stderr,
		resultColor:     resultColor,
		diagnosticColor: diagnosticColor,
		errorLabel:      renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		hintLabel:       renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	}
}

// Result prints text on stdout followed by a newline. Empty text prints
// nothing. Valid JSON is highlighted when color is enabled.
func (p *Printer) Result(text string) error {
	if text == "" {
		return nil
	}
	if p.resultColor && json.Valid([]byte(text)) {
		var highlighted strings.Builder
		if err := quick.Highlight(&highlighted, text, "json", "terminal256", "monokai"); err == nil {
			text = highlighted.String()
		}
	}
	_, err := fmt.Fprintln(p.stdout, strings.TrimRight(text, "\n"))
	return err
}

// Raw prints text on stdout followed by a newline, without trimming or
// highlighting. Used for bodies that must reach the user unchanged.
func (p *Printer) Raw(text string) error {
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(p.stdout, text)
	return err
}

// JSON prints value as indented JSON on stdout.
func (p *Printer) JSON(value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return Internal("encoding JSON output: %w", err)
	}
	return p.Result(string(data))
}

// APIError prints "Error: <status> <body>" on stderr.
func (p *Printer) APIError(statusCode int, body string) {
	fmt.Fprintf(p.stderr, "%s %d %s\n", p.label(p.errorLabel, "Error:"), statusCode, strings.TrimRight(body, "\n"))
}

// Hint prints a "hint:"-labelled message on stderr.
func (p *Printer) Hint(format string, args ...any) {
	fmt.Fprintf(p.stderr, "%s %s\n", p.label(p.hintLabel, "hint:"), fmt.Sprintf(format, args...))
}

func (p *Printer) label(style lipgloss.Style, text string) string {
	if !p.diagnosticColor {
		return text
	}
	return style.Render(text)
}
