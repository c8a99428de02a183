package parser

import (
	"fmt"
)

// ErrMalformedHeader indicates an airport header line with fewer tokens than
// the positional header format requires.
type ErrMalformedHeader struct {
	LineNo int // 1-based line number in the source text
	Raw    string
}

func (e *ErrMalformedHeader) Error() string {
	return fmt.Sprintf("line %d: malformed airport header (need at least %d tokens): %q",
		e.LineNo, headerMinTokens, e.Raw)
}

// ErrOrphanLine indicates non-header content before the first airport header
// (after the fixed file preamble). The line belongs to no record.
type ErrOrphanLine struct {
	LineNo int
	Raw    string
}

func (e *ErrOrphanLine) Error() string {
	return fmt.Sprintf("line %d: content before first airport header: %q", e.LineNo, e.Raw)
}

// ErrMissingTerminator indicates the source ended without a 99 record.
// All records closed before end-of-input are still returned.
type ErrMissingTerminator struct{}

func (e *ErrMissingTerminator) Error() string {
	return "missing file terminator (99) record"
}

// ErrUnknownSortKey indicates a Sort call with a key outside the declared
// set. This is a caller programming error and fails loudly.
type ErrUnknownSortKey struct {
	Key string
}

func (e *ErrUnknownSortKey) Error() string {
	return fmt.Sprintf("unknown sort key %q (declared keys: %s)", e.Key, sortKeyList)
}

// ErrNotAnAirport indicates text handed to AirportFromString that does not
// contain exactly one airport header line.
type ErrNotAnAirport struct {
	Headers int
	Source  string
}

func (e *ErrNotAnAirport) Error() string {
	if e.Headers == 0 {
		return fmt.Sprintf("no airport header line in airport text from %q", e.Source)
	}
	return fmt.Sprintf("expected one airport header line in airport text from %q, found %d",
		e.Source, e.Headers)
}
