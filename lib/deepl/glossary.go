// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package deepl

import (
	"context"
	"net/http"
	"net/url"

	"github.com/deeplcli/deepl/lib/glossaryfile"
)

// DefaultEntriesFormat is the entries encoding used when
// GlossaryRequest.EntriesFormat is empty. Entries read from glossary
// files are always in this format.
const DefaultEntriesFormat = "csv"

// tsvMediaType is the Accept value for glossary entry listings.
const tsvMediaType = "text/tab-separated-values"

// GlossaryRequest is the input to CreateGlossary. Exactly one of Entries
// and Files must be set.
type GlossaryRequest struct {
	SourceLang string
	TargetLang string
	Name       string

	// Entries is the literal entry list in EntriesFormat.
	Entries string

	// Files are tab-separated glossary files converted to CSV entries
	// by package glossaryfile.
	Files []string

	// EntriesFormat is "csv" or "tsv". Defaults to DefaultEntriesFormat.
	EntriesFormat string
}

// GlossaryLanguagePairs lists the language pairs glossaries support and
// returns the raw JSON body.
func (client *Client) GlossaryLanguagePairs(ctx context.Context) (string, error) {
	return client.get(ctx, "/v2/glossary-language-pairs", "")
}

// CreateGlossary creates a glossary and returns the raw JSON body
// describing it.
//
// Input problems are reported before the auth key is resolved and
// before any file is read: neither Entries nor Files yields
// ErrNoEntries, both yields ErrConflictingEntries. Files are read after
// the key resolves; an unreadable file is returned as an error and
// files with no entries yield ErrNoEntries. None of these cases makes a
// request.
func (client *Client) CreateGlossary(ctx context.Context, request GlossaryRequest) (string, error) {
	if request.Entries == "" && len(request.Files) == 0 {
		return "", ErrNoEntries
	}
	if request.Entries != "" && len(request.Files) > 0 {
		return "", ErrConflictingEntries
	}

	key, err := client.authKey()
	if err != nil {
		return "", err
	}

	entries := request.Entries
	if len(request.Files) > 0 {
		entries, err = glossaryfile.Read(request.Files...)
		if err != nil {
			return "", err
		}
		if entries == "" {
			return "", ErrNoEntries
		}
	}

	entriesFormat := request.EntriesFormat
	if entriesFormat == "" {
		entriesFormat = DefaultEntriesFormat
	}

	form := url.Values{
		"source_lang":    {request.SourceLang},
		"target_lang":    {request.TargetLang},
		"name":           {request.Name},
		"entries":        {entries},
		"entries_format": {entriesFormat},
	}
	body, err := client.send(ctx, key, requestFor(http.MethodPost, "/v2/glossaries", form))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ListGlossaries lists all glossaries and returns the raw JSON body.
func (client *Client) ListGlossaries(ctx context.Context) (string, error) {
	return client.get(ctx, "/v2/glossaries", "")
}

// RetrieveGlossary returns the raw JSON metadata of one glossary.
func (client *Client) RetrieveGlossary(ctx context.Context, glossaryID string) (string, error) {
	path, err := glossaryPath(glossaryID, "")
	if err != nil {
		return "", err
	}
	return client.get(ctx, path, "")
}

// DeleteGlossary deletes one glossary and returns the raw response body,
// which DeepL leaves empty on success.
func (client *Client) DeleteGlossary(ctx context.Context, glossaryID string) (string, error) {
	path, err := glossaryPath(glossaryID, "")
	if err != nil {
		return "", err
	}
	body, err := client.do(ctx, requestFor(http.MethodDelete, path, nil))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// RetrieveGlossaryEntries returns the entries of one glossary as
// tab-separated values, exactly as the server sent them.
func (client *Client) RetrieveGlossaryEntries(ctx context.Context, glossaryID string) (string, error) {
	path, err := glossaryPath(glossaryID, "/entries")
	if err != nil {
		return "", err
	}
	return client.get(ctx, path, tsvMediaType)
}

// get performs a GET and returns the raw body.
func (client *Client) get(ctx context.Context, path, accept string) (string, error) {
	body, err := client.do(ctx, request{method: http.MethodGet, path: path, accept: accept})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// glossaryPath builds /v2/glossaries/{id}{suffix} with the id escaped.
func glossaryPath(glossaryID, suffix string) (string, error) {
	if glossaryID == "" {
		return "", ErrMissingGlossaryID
	}
	return "/v2/glossaries/" + url.PathEscape(glossaryID) + suffix, nil
}
