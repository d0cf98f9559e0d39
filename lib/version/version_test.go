// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	original := GitCommit
	defer func() { GitCommit = original }()

	GitCommit = "abc1234"
	if got := Info(); !strings.Contains(got, "abc1234") || !strings.HasPrefix(got, Version) {
		t.Errorf("Info() = %q", got)
	}
}

func TestFull(t *testing.T) {
	got := Full()
	if !strings.Contains(got, "Go: go") {
		t.Errorf("Full() missing Go version: %q", got)
	}
}

func TestUserAgent(t *testing.T) {
	if got := UserAgent(); got != "deepl-cli/"+Version {
		t.Errorf("UserAgent() = %q", got)
	}
}
