package seed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 is returned when the document is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("seed document is not valid UTF-8")
	// ErrTrailingData is returned when anything follows the top-level JSON value.
	ErrTrailingData = errors.New("unexpected data after seed document")
)

// DateLayout is the UTC layout accepted for filter start and end dates.
const DateLayout = "2006-01-02 15:04:05"

// Decode reads all of r and parses it as a single JSON document.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed document: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON document held in memory. Unknown fields are ignored;
// invalid UTF-8 and data after the document are rejected.
func Parse(data []byte) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode seed document: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w at offset %d", ErrTrailingData, dec.InputOffset())
	}
	return &doc, nil
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed document: %w", err)
	}
	return Parse(data)
}

// ParseDate converts a filter date into Unix seconds, interpreting it as UTC.
func ParseDate(value string) (int64, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
