// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	// EnvAuthKey is the environment variable consulted after the
	// explicit key.
	EnvAuthKey = "DEEPL_AUTH_KEY"

	// DefaultSection is the credentials file section holding the key.
	DefaultSection = "default"

	// AuthKeyName is the key name inside DefaultSection.
	AuthKeyName = "auth_key"
)

// Source identifies where a resolved auth key came from.
type Source string

const (
	SourceNone     Source = ""
	SourceExplicit Source = "explicit"
	SourceEnv      Source = "environment"
	SourceFile     Source = "file"
)

// DefaultPath returns the credentials file path under the given home
// directory.
func DefaultPath(home string) string {
	return filepath.Join(home, ".deepl", "credentials")
}

// ReadAuthKey reads auth_key from the [default] section of the INI file
// at path. Returns "" with a nil error when the file, the section, or
// the key does not exist. Key names are matched case-insensitively and
// inline comments are kept as part of the value.
func ReadAuthKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("credential: reading %s: %w", path, err)
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		return "", fmt.Errorf("credential: parsing %s: %w", path, err)
	}

	section, err := file.GetSection(DefaultSection)
	if err != nil {
		return "", nil
	}
	if !section.HasKey(AuthKeyName) {
		return "", nil
	}
	return strings.TrimSpace(section.Key(AuthKeyName).String()), nil
}

// Resolver resolves the auth key from an explicit value, the
// environment, and a credentials file, in that order.
type Resolver struct {
	// Explicit is the key supplied on the command line. When non-empty
	// it wins over every other source.
	Explicit string

	// Path is the credentials file. Empty skips the file lookup.
	Path string

	// Getenv looks up environment variables. Nil skips the environment
	// lookup.
	Getenv func(string) string
}

// AuthKey returns the resolved key, or "" when no source has one.
func (r Resolver) AuthKey() (string, error) {
	key, _, err := r.Resolve()
	return key, err
}

// Resolve returns the resolved key together with the source it came
// from. The file is only read when the explicit value and the
// environment are both empty.
func (r Resolver) Resolve() (string, Source, error) {
	if key := strings.TrimSpace(r.Explicit); key != "" {
		return key, SourceExplicit, nil
	}

	if r.Getenv != nil {
		if key := strings.TrimSpace(r.Getenv(EnvAuthKey)); key != "" {
			return key, SourceEnv, nil
		}
	}

	if r.Path == "" {
		return "", SourceNone, nil
	}
	key, err := ReadAuthKey(r.Path)
	if err != nil {
		return "", SourceNone, err
	}
	if key == "" {
		return "", SourceNone, nil
	}
	return key, SourceFile, nil
}
