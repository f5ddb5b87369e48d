package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyPath indicates Import was given no file name.
	ErrEmptyPath = errors.New("input: empty path")
	// ErrInvalidEncoding indicates the content is not UTF-8.
	ErrInvalidEncoding = errors.New("input: content is not valid UTF-8")
)

// Import reads the file at path and returns its lines.
func Import(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: Import: %w", err)
	}
	defer f.Close()

	lines, err := Lines(f)
	if err != nil {
		return nil, fmt.Errorf("input: Import %s: %w", path, err)
	}
	return lines, nil
}

// Lines reads r to EOF and splits it into lines.
func Lines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	if len(data) == 0 {
		return []string{}, nil
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}
