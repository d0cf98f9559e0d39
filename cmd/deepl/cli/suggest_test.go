// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"translate", "translate", 0},
		{"translte", "translate", 1},
		{"tarnslate", "translate", 2},
		{"kitten", "sitting", 3},
		{"glossary_id", "glossary-id", 1},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "translate"},
		{Name: "list-glossaries"},
		{Name: "retrieve-glossary"},
		{Name: "delete-glossary"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"translat", "translate"},
		{"list-glossary", "list-glossaries"},
		{"delete-glosary", "delete-glossary"},
		{"completely-different", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.StringP("key", "k", "", "")
	flagSet.String("glossary_id", "", "")
	flagSet.String("entries_format", "", "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"dash for underscore", []string{"--glossary-id", "g1"}, "--glossary_id"},
		{"with value", []string{"--entries-format=tsv"}, "--entries_format"},
		{"defined flag skipped", []string{"--key", "k", "--glossry_id"}, "--glossary_id"},
		{"too distant", []string{"--zzzzzzzzzz"}, ""},
		{"after terminator", []string{"--", "--glossary-id"}, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := suggestFlag(test.args, flagSet); got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
