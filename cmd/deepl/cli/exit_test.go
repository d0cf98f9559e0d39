// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("--text is required"), ExitUsage},
		{"wrapped validation", fmt.Errorf("translate: %w", Validation("bad")), ExitUsage},
		{"transient", Transient("timed out"), ExitFailure},
		{"internal", Internal("disk"), ExitFailure},
		{"plain", errors.New("plain"), ExitFailure},
	}
	for _, test := range tests {
		if got := ExitCodeFor(test.err); got != test.want {
			t.Errorf("%s: ExitCodeFor = %d, want %d", test.name, got, test.want)
		}
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 1}

	coder, ok := err.(interface{ ExitCode() int })
	if !ok {
		t.Fatal("ExitError should implement ExitCode()")
	}
	if coder.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", coder.ExitCode())
	}
	if err.Error() != "exit code 1" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestToolError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &ToolError{Category: CategoryInternal, Err: fmt.Errorf("outer: %w", inner)}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should see through ToolError")
	}
	if err.Error() != "outer: inner" {
		t.Errorf("Error() = %q", err.Error())
	}
}
