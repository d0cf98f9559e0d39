// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP response helpers for the DeepL API client.
//
// Every helper bounds the body read at MaxResponseSize so a misbehaving
// server cannot exhaust memory. Glossary entry listings and JSON metadata
// are both read through these helpers; the client never streams.
package netutil

import "io"

// MaxResponseSize is the bound on API response body reads: 64 MB. DeepL
// caps a glossary at 10 MB of entries, so legitimate responses stay well
// below this.
const MaxResponseSize int64 = 64 << 20

// ReadResponse reads a response body up to MaxResponseSize bytes.
// Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// ErrorBody reads an HTTP error response body and returns it as a string
// for diagnostics. Read errors are ignored: a partial or empty body is
// still useful in an error message.
func ErrorBody(body io.Reader) string {
	data, _ := ReadResponse(body)
	return string(data)
}
