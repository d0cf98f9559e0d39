// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package glossaryfile converts tab-separated glossary files into the
// comma-separated entry list the DeepL glossary API accepts.
//
// Each row holds one or more source terms followed by the target term.
// Every source term maps to the row's last field, so a row
//
//	colour	color	カラー
//
// yields the two entries "colour,カラー" and "color,カラー". Source
// fields beginning with "#" are skipped, which makes a leading "#"
// column a comment. Rows are emitted in file order and files in
// argument order; nothing is deduplicated or validated.
//
// Files may be UTF-8 with or without a byte-order mark, or UTF-16 with
// one. UTF-8 content without a BOM must be valid.
package glossaryfile
