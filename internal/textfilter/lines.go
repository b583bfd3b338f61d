package textfilter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMaxLineBytes bounds a single decoded line when callers pass no limit.
const DefaultMaxLineBytes = 64 << 20

const initialLineBuffer = 64 << 10

// NewDecoder wraps r with a best-effort UTF-8 decoder. A UTF-8 or UTF-16 byte
// order mark switches decoding accordingly and is stripped. Invalid sequences
// decode to U+FFFD instead of failing the read.
func NewDecoder(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// Lines yields decoded lines without their terminators. "\n", "\r\n" and a
// lone "\r" all end a line. A read failure, or a line longer than
// maxLineBytes, is yielded once as an error and ends the sequence.
func Lines(r io.Reader, maxLineBytes int) iter.Seq2[string, error] {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, min(initialLineBuffer, maxLineBytes)), maxLineBytes)
		scanner.Split(scanLines)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				err = fmt.Errorf("line exceeds %d bytes: %w", maxLineBytes, err)
			}
			yield("", err)
		}
	}
}

// scanLines is bufio.ScanLines with a lone carriage return also ending a line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need one more byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Filter maps lines through FilterLine, skipping suppressed lines. Errors from
// the source are passed through and end the sequence.
func Filter(lines iter.Seq2[string, error]) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for line, err := range lines {
			if err != nil {
				yield("", err)
				return
			}
			if cleaned, ok := FilterLine(line); ok {
				if !yield(cleaned, nil) {
					return
				}
			}
		}
	}
}
