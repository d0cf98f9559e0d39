// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	// ExitFailure covers API errors, a missing auth key, and I/O or
	// network failures.
	ExitFailure = 1

	// ExitUsage covers invalid invocations: unknown commands or flags,
	// missing required flags, and conflicting inputs.
	ExitUsage = 2
)

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have already written its
// own diagnostic (for example "Error: 403 ..." for an API error).
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this interface on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitCodeFor returns the exit code for an error that main prints
// itself: ExitUsage for validation errors, ExitFailure otherwise.
func ExitCodeFor(err error) int {
	var toolError *ToolError
	if errors.As(err, &toolError) && toolError.Category == CategoryValidation {
		return ExitUsage
	}
	return ExitFailure
}
