// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"net"

	"github.com/deeplcli/deepl/lib/config"
	"github.com/deeplcli/deepl/lib/credential"
	"github.com/deeplcli/deepl/lib/deepl"
)

// Session is what an API command works with after [Environment.Open].
type Session struct {
	Settings *config.Config
	Client   *deepl.Client
	Printer  *Printer

	credentialPath string
}

// SourceLang returns flagValue, or the configured default when empty.
func (s *Session) SourceLang(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return s.Settings.SourceLang
}

// TargetLang returns flagValue, or the configured default when empty.
func (s *Session) TargetLang(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return s.Settings.TargetLang
}

// Finish prints result on success and maps err to the CLI's exit
// behavior otherwise. Nothing is written to stdout when err is non-nil.
func (s *Session) Finish(result string, err error) error {
	if err == nil {
		return s.Printer.Result(result)
	}
	return s.Fail(err)
}

// Fail reports err:
//
//   - *deepl.APIError: "Error: <status> <body>" on stderr, exit 1, with
//     a hint when the quota is spent or requests are throttled
//   - deepl.ErrNoAuthKey: a hint naming the key sources, exit 1
//   - input errors (no entries, conflicting entries, missing id): validation
//   - network failures and timeouts: transient
//   - anything else: internal
func (s *Session) Fail(err error) error {
	var apiError *deepl.APIError
	switch {
	case errors.As(err, &apiError):
		s.Printer.APIError(apiError.StatusCode, apiError.Body)
		switch {
		case deepl.IsQuotaExceeded(err):
			s.Printer.Hint("the character quota for this billing period is used up")
		case deepl.IsRateLimited(err):
			s.Printer.Hint("too many requests; wait a moment and try again")
		}
		return &ExitError{Code: ExitFailure}

	case errors.Is(err, deepl.ErrNoAuthKey):
		s.Printer.Hint("no auth key found: pass -k/--key, set $%s, or add auth_key to the [%s] section of %s",
			credential.EnvAuthKey, credential.DefaultSection, s.credentialDisplayPath())
		return &ExitError{Code: ExitFailure}

	case errors.Is(err, deepl.ErrNoEntries),
		errors.Is(err, deepl.ErrConflictingEntries),
		errors.Is(err, deepl.ErrMissingGlossaryID):
		return Validation("%w", err)

	case isTransient(err):
		return Transient("%w", err)

	default:
		return Internal("%w", err)
	}
}

func (s *Session) credentialDisplayPath() string {
	if s.credentialPath == "" {
		return credential.DefaultPath("~")
	}
	return s.credentialPath
}

// isTransient reports whether err is a timeout or network failure.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netError net.Error
	return errors.As(err, &netError)
}
