// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package glossaryfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	fieldDelimiter = '\t'
	quoteChar      = '"'
)

// ErrUnterminatedQuote is returned when a quoted field is still open at
// the end of the input.
var ErrUnterminatedQuote = errors.New("unterminated quoted field")

type rowState int

const (
	startRecord rowState = iota
	startField
	inField
	inQuotedField
	quoteInQuotedField
)

// rowReader splits tab-separated text into rows.
//
// A quote opens a quoted field only as the first character of a field.
// Inside a quoted field, tabs and line breaks are literal and "" is a
// literal quote. After the closing quote, characters up to the next
// delimiter are appended as-is. Quotes anywhere else are literal. \n, \r
// and \r\n each end a row. Rows with no fields (blank lines) are
// skipped.
type rowReader struct {
	in    *bufio.Reader
	line  int
	field strings.Builder
	row   []string
}

func newRowReader(reader io.Reader) *rowReader {
	return &rowReader{in: bufio.NewReader(reader), line: 1}
}

// Read returns the next non-empty row, or io.EOF once the input is
// exhausted. The returned slice is reused by the next call.
func (r *rowReader) Read() ([]string, error) {
	r.row = r.row[:0]
	r.field.Reset()
	state := startRecord
	quoteLine := 0

	for {
		c, _, err := r.in.ReadRune()
		if errors.Is(err, io.EOF) {
			switch state {
			case startRecord:
				return nil, io.EOF
			case inQuotedField:
				return nil, fmt.Errorf("line %d: %w", quoteLine, ErrUnterminatedQuote)
			}
			r.saveField()
			return r.row, nil
		}
		if err != nil {
			return nil, err
		}

		if c == '\r' || c == '\n' {
			if state != inQuotedField {
				if c == '\r' {
					r.skipLineFeed()
				}
				r.line++
				if state == startRecord {
					continue
				}
				r.saveField()
				return r.row, nil
			}
			if c == '\n' || !r.peekLineFeed() {
				r.line++
			}
		}

		switch state {
		case startRecord, startField:
			switch c {
			case quoteChar:
				state = inQuotedField
				quoteLine = r.line
			case fieldDelimiter:
				r.saveField()
				state = startField
			default:
				r.field.WriteRune(c)
				state = inField
			}

		case inField:
			if c == fieldDelimiter {
				r.saveField()
				state = startField
			} else {
				r.field.WriteRune(c)
			}

		case inQuotedField:
			if c == quoteChar {
				state = quoteInQuotedField
			} else {
				r.field.WriteRune(c)
			}

		case quoteInQuotedField:
			switch c {
			case quoteChar:
				r.field.WriteRune(c)
				state = inQuotedField
			case fieldDelimiter:
				r.saveField()
				state = startField
			default:
				r.field.WriteRune(c)
				state = inField
			}
		}
	}
}

func (r *rowReader) saveField() {
	r.row = append(r.row, r.field.String())
	r.field.Reset()
}

// skipLineFeed consumes the \n of a \r\n pair.
func (r *rowReader) skipLineFeed() {
	if r.peekLineFeed() {
		r.in.ReadByte()
	}
}

func (r *rowReader) peekLineFeed() bool {
	next, err := r.in.Peek(1)
	return err == nil && next[0] == '\n'
}
