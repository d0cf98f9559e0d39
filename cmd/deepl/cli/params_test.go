// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Name     string   `flag:"name" desc:"glossary name"`
		Verbose  bool     `flag:"verbose,v" desc:"enable verbose output"`
		Files    []string `flag:"glossary_files" desc:"glossary files"`
		Untagged string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--name", "my glossary",
		"-v",
		"--glossary_files", "a.tsv",
		"--glossary_files", "b.tsv",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Name != "my glossary" {
		t.Errorf("Name = %q, want %q", p.Name, "my glossary")
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if len(p.Files) != 2 || p.Files[0] != "a.tsv" || p.Files[1] != "b.tsv" {
		t.Errorf("Files = %v, want [a.tsv b.tsv]", p.Files)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty (should be skipped)", p.Untagged)
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Format string   `flag:"entries_format" desc:"entries format" default:"csv"`
		Debug  bool     `flag:"debug" desc:"debug mode" default:"true"`
		Tags   []string `flag:"tags" desc:"tags" default:"x,y"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Format != "csv" {
		t.Errorf("Format = %q, want csv", p.Format)
	}
	if !p.Debug {
		t.Error("Debug = false, want true")
	}
	if len(p.Tags) != 2 || p.Tags[0] != "x" || p.Tags[1] != "y" {
		t.Errorf("Tags = %v, want [x y]", p.Tags)
	}
}

func TestBindFlags_FlagBinderAndEmbedding(t *testing.T) {
	type params struct {
		APIFlags
		JSONOutput
		Text string `flag:"text" desc:"text"`
	}

	var p params
	flagSet := FlagsFromParams("translate", &p)
	if err := flagSet.Parse([]string{"-k", "secret", "--color", "never", "--json", "--text", "hi"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Key != "secret" {
		t.Errorf("Key = %q, want secret", p.Key)
	}
	if p.Mode != ColorNever {
		t.Errorf("Mode = %q, want never", p.Mode)
	}
	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if p.Text != "hi" {
		t.Errorf("Text = %q, want hi", p.Text)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)

	if err := BindFlags(struct{}{}, flagSet); err == nil {
		t.Error("expected error for non-pointer params")
	}

	var unsupported struct {
		Count int `flag:"count"`
	}
	err := BindFlags(&unsupported, flagSet)
	if err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("error = %v, want unsupported type", err)
	}

	var badDefault struct {
		Debug bool `flag:"debug" default:"maybe"`
	}
	err = BindFlags(&badDefault, pflag.NewFlagSet("test", pflag.ContinueOnError))
	if err == nil || !strings.Contains(err.Error(), "default for --debug") {
		t.Errorf("error = %v, want bad default", err)
	}
}

func TestFlagsFromParams_PanicsOnInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	FlagsFromParams("bad", "not a struct")
}
