// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package deepl provides a client for the DeepL translation API (v2).
//
// The client covers text translation and glossary management:
// translate, glossary language pairs, and create/list/retrieve/delete
// a glossary plus retrieving its entries. Each operation is exactly one
// HTTP round trip: no retries, no backoff, no caching. Every call is
// bounded by the configured timeout.
//
// Authentication uses the "DeepL-Auth-Key" Authorization scheme. The
// key is pulled from a [KeySource] at call time; when the source has no
// key, the operation returns [ErrNoAuthKey] without touching the
// network.
//
// Results are returned as the raw response body, except for
// [Client.Translate], which extracts the first translation's text.
// Non-2xx responses surface as *[APIError] carrying the status code and
// body, so callers can print a diagnostic separately from the result.
//
// All requests are made over HTTPS. The client refuses non-HTTPS base
// URLs.
package deepl
