package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// Parse decodes a serialized JSON array of films, preserving source order.
func Parse(data []byte) ([]Film, error) {
	if !json.Valid(data) {
		return nil, ErrMalformed
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	films := make([]Film, 0, len(raw))
	for i, elem := range raw {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			return nil, fmt.Errorf("record %d: %w: expected object", i, ErrInvalidRecord)
		}
		var f Film
		if err := json.Unmarshal(elem, &f); err != nil {
			return nil, fmt.Errorf("record %d: %w: %v", i, ErrInvalidRecord, err)
		}
		films = append(films, f)
	}
	return films, nil
}

// Load reads a JSON dataset from r and builds a Catalog from it.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	films, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return New(films), nil
}

// LoadFile reads the JSON dataset at path and builds a Catalog from it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	films, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return New(films), nil
}
