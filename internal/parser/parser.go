package parser

import (
	"strings"
)

// Parser segments apt.dat text into airport records.
//
// apt.dat files have no explicit record delimiters or lengths: record
// boundaries, record type (airport vs. seaport vs. heliport), and derived
// facts are all inferred from row codes scattered across the lines. The
// parser owns that inference; it never performs I/O — callers hand it fully
// materialized text.
//
// Reference: X-Plane apt.dat 1100 specification, "File structure" section
// (two-line preamble, airport blocks, 99 terminator).
type Parser interface {
	// Parse segments apt.dat text read from the named source.
	//
	// The source label is opaque to the engine and is attached to every
	// record for provenance; callers typically pass a file path.
	Parse(text, source string) (*File, error)

	// ParseWithOptions parses with custom options.
	ParseWithOptions(text, source string, opts ParseOptions) (*File, error)
}

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// DefaultVersion is the apt.dat spec version assumed when the file
	// preamble is missing or carries no usable version. Default: 1100.
	DefaultVersion int

	// Strict promotes the first malformed-input condition to a returned
	// error instead of an accumulated warning.
	// Default: false — the parser never aborts mid-stream; it returns every
	// record it could close plus the warning list.
	Strict bool
}

// DefaultParseOptions returns parse options with defaults.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		DefaultVersion: 1100,
		Strict:         false,
	}
}

// defaultParser implements the Parser interface.
type defaultParser struct {
}

// NewParser creates a new apt.dat parser.
func NewParser() Parser {
	return &defaultParser{}
}

// Parse segments apt.dat text with default options.
func (p *defaultParser) Parse(text, source string) (*File, error) {
	return p.ParseWithOptions(text, source, DefaultParseOptions())
}

// ParseWithOptions segments apt.dat text into a File.
//
// Algorithm: skip the fixed two-line file preamble (capturing the spec
// version from the second line); scan forward; each airport-header line
// closes the open record accumulator and opens a new one; every other line
// is appended verbatim to the open accumulator; the 99 terminator closes the
// final record and stops the scan. Lines after the terminator are ignored.
func (p *defaultParser) ParseWithOptions(text, source string, opts ParseOptions) (*File, error) {
	if opts.DefaultVersion == 0 {
		opts.DefaultVersion = 1100
	}

	file := &File{
		Source:   source,
		Version:  opts.DefaultVersion,
		Ordering: OrderingFile,
	}

	// 1. Tokenize every line up front. Line numbers are 1-based.
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, len(rawLines))
	for i, raw := range rawLines {
		lines[i] = NewLine(raw)
	}

	// 2. Capture the two-line preamble. The preamble is recognized by
	// position, guarded by the I/A byte-order magic so that header-less
	// fragments don't lose their first record.
	body := lines
	if len(lines) >= 2 && lines[0].IsFileHeaderMagic() {
		file.HeaderLines = lines[:2]
		if code, ok := lines[1].RowCode(); ok && code > 0 && code < 9999 {
			file.Version = int(code)
		}
		body = lines[2:]
	}

	// 3. Scan for airport headers and the terminator.
	var acc []Line
	accLineNo := 0 // source line number of the open record's header
	terminated := false

	warn := func(w error) error {
		if opts.Strict {
			return w
		}
		file.Warnings = append(file.Warnings, w)
		return nil
	}

	closeAcc := func() error {
		if acc == nil {
			return nil
		}
		apt, err := airportFromHeader(acc[0], source, file.Version, accLineNo)
		if err != nil {
			acc = nil
			return warn(err)
		}
		apt.Lines = acc
		apt.Metadata = parseMetadata(acc)
		file.Airports = append(file.Airports, apt)
		acc = nil
		return nil
	}

	offset := len(lines) - len(body) // first body line's 0-based index
	for i, line := range body {
		lineNo := offset + i + 1

		switch line.Kind() {
		case KindAirportHeader:
			if err := closeAcc(); err != nil {
				return file, err
			}
			acc = []Line{line}
			accLineNo = lineNo

		case KindTerminator:
			if err := closeAcc(); err != nil {
				return file, err
			}
			terminated = true

		default:
			if acc != nil {
				acc = append(acc, line)
				break
			}
			// Content before the first airport header. Blank and comment
			// lines are preamble padding; anything else is malformed.
			if !line.IsIgnorable() {
				if err := warn(&ErrOrphanLine{LineNo: lineNo, Raw: line.Raw()}); err != nil {
					return file, err
				}
			}
		}

		if terminated {
			break
		}
	}

	// 4. An unterminated file still yields whatever records were closed.
	if !terminated {
		if err := closeAcc(); err != nil {
			return file, err
		}
		if err := warn(&ErrMissingTerminator{}); err != nil {
			return file, err
		}
	}

	return file, nil
}
