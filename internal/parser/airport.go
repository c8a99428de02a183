package parser

import (
	"strconv"
	"strings"
)

// Positional fields of an airport header line:
//
//	<row code> <elevation ft AMSL> <has ATC 0|1> <deprecated> <id> <name...>
//
// The identifier at index 4 is the last required token; the name may be
// empty. Reference: apt.dat 1100 specification, "Land airports, seaplane
// bases and heliports" row.
const headerMinTokens = 5

// Airport is one facility record from an apt.dat file: the parsed header
// fields plus the contiguous, verbatim line sequence belonging to it.
//
// The line sequence always begins with exactly one header line. Lines are
// immutable; the record itself is only mutated through AppendLine and
// collection-level operations.
type Airport struct {
	// ID is the X-Plane identifier for the airport, which may or may not
	// correspond to its real-world ICAO code.
	ID string

	// Name is the display name, like "Seattle Tacoma Intl".
	Name string

	// Source labels the apt.dat source this airport was read from. The
	// label is opaque to the engine; callers typically use a file path.
	Source string

	// HasATC is true when the header line's tower flag indicates the
	// airport has air traffic control.
	HasATC bool

	// ElevationFtAMSL is the header elevation in feet above mean sea level.
	ElevationFtAMSL float64

	// Kind distinguishes land airports, seaplane bases, and heliports,
	// taken from the header row code.
	Kind AirportKind

	// Metadata holds the airport's 1302 metadata rows.
	Metadata map[MetadataKey]string

	// Version is the apt.dat spec version (1050, 1100, 1130, ...) of the
	// file this airport came from, used when writing the record standalone.
	Version int

	// Lines is the complete text of the portion of the apt.dat file
	// pertaining to this airport, header line first.
	Lines []Line
}

// AirportFromLines builds one airport record from an already-segmented line
// sequence. The sequence must contain exactly one airport header line.
func AirportFromLines(lines []Line, source string, version int) (*Airport, error) {
	var header *Line
	headers := 0
	for i := range lines {
		if lines[i].IsAirportHeader() {
			headers++
			if header == nil {
				header = &lines[i]
			}
		}
	}
	if headers != 1 {
		return nil, &ErrNotAnAirport{Headers: headers, Source: source}
	}

	apt, err := airportFromHeader(*header, source, version, 0)
	if err != nil {
		return nil, err
	}
	apt.Lines = lines
	apt.Metadata = parseMetadata(lines)
	return apt, nil
}

// AirportFromString builds one airport record from the slab of apt.dat text
// pertaining to it (header line first, no file preamble or terminator).
func AirportFromString(text, source string, version int) (*Airport, error) {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		lines = append(lines, NewLine(raw))
	}
	return AirportFromLines(lines, source, version)
}

// airportFromHeader extracts the positional header fields. lineNo is the
// 1-based source line number for error reporting; pass 0 when unknown.
func airportFromHeader(header Line, source string, version, lineNo int) (*Airport, error) {
	tokens := header.Tokens()
	if len(tokens) < headerMinTokens {
		return nil, &ErrMalformedHeader{LineNo: lineNo, Raw: header.Raw()}
	}

	code, _ := header.RowCode()

	// Numeric field parse failures are treated as malformed input, same as
	// a short header: the record cannot be trusted.
	elevation, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return nil, &ErrMalformedHeader{LineNo: lineNo, Raw: header.Raw()}
	}
	atc, err := strconv.Atoi(tokens[2])
	if err != nil {
		return nil, &ErrMalformedHeader{LineNo: lineNo, Raw: header.Raw()}
	}

	return &Airport{
		ID:              tokens[4],
		Name:            strings.Join(tokens[5:], " "),
		Source:          source,
		HasATC:          atc != 0,
		ElevationFtAMSL: elevation,
		Kind:            HeaderKind(code),
		Metadata:        map[MetadataKey]string{},
		Version:         version,
	}, nil
}

// AppendLine tokenizes text and appends it to the airport's line sequence.
// Existing lines are never mutated. A 1302 row with a known key also updates
// the Metadata map.
func (a *Airport) AppendLine(text string) {
	line := NewLine(text)
	a.Lines = append(a.Lines, line)

	if code, ok := line.RowCode(); ok && code == RowMetadata {
		for k, v := range parseMetadata([]Line{line}) {
			a.Metadata[k] = v
		}
	}
}

// Head returns the first n raw lines of the airport's apt.dat text, joined
// with newlines. Useful for logging and quick inspection.
func (a *Airport) Head(n int) string {
	if n > len(a.Lines) {
		n = len(a.Lines)
	}
	raws := make([]string, 0, n)
	for _, line := range a.Lines[:n] {
		raws = append(raws, line.Raw())
	}
	return strings.Join(raws, "\n")
}
