// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package glossaryfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// commentPrefix marks a source field that contributes no entry.
const commentPrefix = "#"

// Entry is a single source-to-target term pair.
type Entry struct {
	Source string
	Target string
}

// String formats the entry as a "source,target" line.
func (e Entry) String() string {
	return e.Source + "," + e.Target
}

// Read parses the files at paths in order and returns their entries as
// newline-joined "source,target" lines. Returns "" when no row yields
// an entry (including when paths is empty).
func Read(paths ...string) (string, error) {
	entries, err := ReadEntries(paths...)
	if err != nil {
		return "", err
	}
	return Format(entries), nil
}

// ReadEntries parses the files at paths in order and returns every
// entry they yield. The first unreadable file aborts the read.
func ReadEntries(paths ...string) ([]Entry, error) {
	var entries []Entry
	for _, path := range paths {
		fileEntries, err := readFile(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
	}
	return entries, nil
}

// Parse reads tab-separated rows from reader and returns their entries.
func Parse(reader io.Reader) ([]Entry, error) {
	decoded := transform.NewReader(reader, unicode.BOMOverride(encoding.UTF8Validator))

	rows := newRowReader(decoded)
	var entries []Entry
	for {
		row, err := rows.Read()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}

		target := row[len(row)-1]
		for _, source := range row[:len(row)-1] {
			if strings.HasPrefix(source, commentPrefix) {
				continue
			}
			entries = append(entries, Entry{Source: source, Target: target})
		}
	}
}

// Format joins entries into the newline-separated "source,target" form.
func Format(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = entry.String()
	}
	return strings.Join(lines, "\n")
}

func readFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("glossaryfile: %w", err)
	}
	defer file.Close()

	entries, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("glossaryfile: %s: %w", path, err)
	}
	return entries, nil
}
