// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package deepl

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Outcomes that produce no result without making a request.
var (
	// ErrNoAuthKey is returned when the KeySource has no key.
	ErrNoAuthKey = errors.New("deepl: no auth key configured")

	// ErrNoEntries is returned by CreateGlossary when neither entries
	// nor glossary files are given, or when the files yield no entries.
	ErrNoEntries = errors.New("deepl: glossary has no entries")

	// ErrConflictingEntries is returned by CreateGlossary when both
	// entries and glossary files are given.
	ErrConflictingEntries = errors.New("deepl: glossary entries and glossary files are mutually exclusive")

	// ErrMissingGlossaryID is returned by the glossary-id operations
	// when the id is empty.
	ErrMissingGlossaryID = errors.New("deepl: glossary id is required")
)

// ErrNoTranslations is returned by Translate when a 2xx response holds
// an empty translations list.
var ErrNoTranslations = errors.New("deepl: response contains no translations")

// StatusQuotaExceeded is DeepL's non-standard status for an exhausted
// character quota.
const StatusQuotaExceeded = 456

// APIError represents a non-2xx response from the DeepL API.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Body is the raw response body.
	Body string

	// Message is the "message" field of a JSON error body, with the
	// "detail" field appended when present. Empty for non-JSON bodies.
	Message string
}

func (err *APIError) Error() string {
	if err.Message != "" {
		return fmt.Sprintf("deepl: HTTP %d: %s", err.StatusCode, err.Message)
	}
	if err.Body != "" {
		return fmt.Sprintf("deepl: HTTP %d: %s", err.StatusCode, err.Body)
	}
	return fmt.Sprintf("deepl: HTTP %d %s", err.StatusCode, http.StatusText(err.StatusCode))
}

// parseAPIError builds an APIError from a status code and body.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode, Body: string(body)}

	var wireError struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
		if wireError.Detail != "" {
			apiError.Message += ": " + wireError.Detail
		}
	}
	return apiError
}

// IsNotFound reports whether err is a 404 Not Found response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsForbidden reports whether err is a 403 response, which DeepL
// returns for an invalid auth key or a key used against the wrong
// endpoint.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsQuotaExceeded reports whether err is DeepL's 456 quota response.
func IsQuotaExceeded(err error) bool {
	return hasStatus(err, StatusQuotaExceeded)
}

// IsRateLimited reports whether err is a 429 Too Many Requests response.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, statusCode int) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == statusCode
}
