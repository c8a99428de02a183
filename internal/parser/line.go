package parser

import (
	"strconv"
	"strings"
)

// Line is a single tokenized line from an apt.dat file.
//
// Lines are immutable values: the raw text, token list, and row code are
// derived once at construction and never re-parsed. The raw text is the
// input line with leading/trailing whitespace (including any CR from CRLF
// input) stripped; everything between the edges is preserved verbatim so
// serialization can reproduce it.
type Line struct {
	raw     string
	tokens  []string
	code    RowCode
	hasCode bool
}

// NewLine tokenizes one line of apt.dat text.
//
// Tokenization splits on runs of whitespace. The first token, when it parses
// as an integer, becomes the row code. A blank line, a comment line, or a
// line whose first token is not numeric has no row code and is never treated
// as a header, terminator, or runway. Tokenization cannot fail.
func NewLine(text string) Line {
	raw := strings.TrimSpace(text)
	tokens := strings.Fields(raw)

	l := Line{raw: raw, tokens: tokens}
	if len(tokens) > 0 {
		if code, err := strconv.Atoi(tokens[0]); err == nil {
			l.code = RowCode(code)
			l.hasCode = true
		}
	}
	return l
}

// Raw returns the normalized raw text of the line.
func (l Line) Raw() string { return l.raw }

// Tokens returns the whitespace-split tokens of the line.
//
// The returned slice is shared; callers must not modify it.
func (l Line) Tokens() []string { return l.tokens }

// RowCode returns the line's row code. ok is false for blank lines, comment
// lines, and lines whose first token is not an integer.
func (l Line) RowCode() (code RowCode, ok bool) {
	return l.code, l.hasCode
}

// Kind returns the structural classification of the line.
func (l Line) Kind() Kind {
	if !l.hasCode {
		return KindIgnorable
	}
	return Classify(l.code)
}

// IsAirportHeader reports whether the line begins a new airport, seaport,
// or heliport record.
func (l Line) IsAirportHeader() bool {
	return l.Kind() == KindAirportHeader
}

// IsRunway reports whether the line represents a land runway, water runway,
// or helipad.
func (l Line) IsRunway() bool {
	return l.Kind() == KindRunway
}

// IsTerminator reports whether the line is the end-of-data record (99).
func (l Line) IsTerminator() bool {
	return l.Kind() == KindTerminator
}

// IsIgnorable reports whether the line carries no semantic payload for the
// containing airport: blank lines, comment lines, and the terminator.
// Ignorable lines are still retained verbatim for round-trip output.
func (l Line) IsIgnorable() bool {
	switch l.Kind() {
	case KindIgnorable, KindTerminator:
		return true
	default:
		return false
	}
}

// IsFileHeaderMagic reports whether the line looks like the first line of
// the fixed two-line file preamble ("I" or "A" byte-order marker).
//
// The preamble is recognized by position, not row code; this helper exists
// for the segmenter and for writer defaults only.
func (l Line) IsFileHeaderMagic() bool {
	return l.raw == "I" || l.raw == "A"
}

// String returns the line's raw text with internal whitespace runs collapsed
// to single spaces. Use Raw for verbatim output.
func (l Line) String() string {
	return strings.Join(l.tokens, " ")
}
