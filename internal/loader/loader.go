// Package loader reads batch input files of birth moments.
//
// Two formats are supported: a YAML sequence and a CSV table with a header.
// Problems with a single entry are attached to that entry so the rest of the
// file can still be processed; only unreadable files fail as a whole.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/saju/pkg/core"
)

// Format is an input file format.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ErrUnknownFormat is returned for files whose extension is not .yaml, .yml
// or .csv.
var ErrUnknownFormat = errors.New("unknown input format")

// Entry is one birth moment read from an input file.
type Entry struct {
	// Line is the 1-based source line of the entry.
	Line   int
	Moment core.BirthMoment
	// Err is set when the entry could not be parsed; Moment is then zero.
	Err error
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Load reads the file at path, picking the format from its extension.
func Load(path string) ([]Entry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return LoadAs(path, format)
}

// LoadAs reads the file at path in the given format.
func LoadAs(path string, format Format) ([]Entry, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided input file
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := Read(f, format)
	if err != nil {
		return nil, withFile(err, path)
	}
	for i := range entries {
		entries[i].Err = withFile(entries[i].Err, path)
	}
	return entries, nil
}

// Read parses r in the given format.
func Read(r io.Reader, format Format) ([]Entry, error) {
	switch format {
	case FormatYAML:
		return readYAML(r)
	case FormatCSV:
		return readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// Moments returns the moments of all entries that parsed successfully.
func Moments(entries []Entry) []core.BirthMoment {
	out := make([]core.BirthMoment, 0, len(entries))
	for _, e := range entries {
		if e.Err == nil {
			out = append(out, e.Moment)
		}
	}
	return out
}

// =============================================================================
// Errors
// =============================================================================

// ParseError reports input that could not be parsed.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		if e.Line > 0 {
			return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// UnknownFieldError reports a YAML key or CSV column the loader does not
// recognise.
type UnknownFieldError struct {
	File  string
	Line  int
	Field string
}

func (e *UnknownFieldError) Error() string {
	msg := fmt.Sprintf("unknown field %q", e.Field)
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func withFile(err error, path string) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.File == "" {
		parseErr.File = path
	}
	var fieldErr *UnknownFieldError
	if errors.As(err, &fieldErr) && fieldErr.File == "" {
		fieldErr.File = path
	}
	return err
}
