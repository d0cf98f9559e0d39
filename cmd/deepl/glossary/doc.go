// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package glossary implements the glossary commands:
// glossary-language-pairs, create-glossary, list-glossaries,
// retrieve-glossary, delete-glossary and retrieve-glossary-entries.
//
// Each command makes one API call and prints the raw response body. The
// commands sit directly under the root rather than under a "glossary"
// parent, so existing scripts keep working.
package glossary
