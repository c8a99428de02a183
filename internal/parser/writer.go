package parser

import (
	"fmt"
	"strings"
)

// Serialization back to apt.dat text.
//
// Lines are emitted as their stored raw text, never rebuilt from tokens, so
// interior whitespace survives the round trip. The chosen normalization
// policy (per-line edge whitespace and line endings are normalized at
// tokenization) means write(parse(T)) is byte-identical to T for canonical
// input and structurally equivalent otherwise.

// WriteCollection renders a complete apt.dat file: the file preamble, every
// record's line sequence in current order, and the 99 terminator.
func WriteCollection(f *File) string {
	var b strings.Builder
	writePreamble(&b, f.HeaderLines, f.Version)
	for _, apt := range f.Airports {
		writeAirportLines(&b, apt)
	}
	b.WriteString("99\n")
	return b.String()
}

// WriteAirport renders a single record as a complete, independently
// parseable apt.dat file: a generated preamble, the record's lines, and the
// 99 terminator.
func WriteAirport(apt *Airport) string {
	var b strings.Builder
	writePreamble(&b, nil, apt.Version)
	writeAirportLines(&b, apt)
	b.WriteString("99\n")
	return b.String()
}

// writePreamble emits the captured preamble lines verbatim, or generates
// the stock WorldEditor preamble when none were captured, followed by the
// blank separator line the format carries after its header.
func writePreamble(b *strings.Builder, headerLines []Line, version int) {
	if len(headerLines) > 0 {
		for _, line := range headerLines {
			b.WriteString(line.Raw())
			b.WriteString("\n")
		}
	} else {
		if version == 0 {
			version = 1100
		}
		fmt.Fprintf(b, "I\n%d Generated by WorldEditor\n", version)
	}
	b.WriteString("\n")
}

// writeAirportLines emits the record's raw lines. Metadata rows with no
// value are dropped: X-Plane fails to parse a 1302 row whose key has no
// value, so they must not reach the output.
func writeAirportLines(b *strings.Builder, apt *Airport) {
	for _, line := range apt.Lines {
		if code, ok := line.RowCode(); ok && code == RowMetadata && len(line.Tokens()) <= 2 {
			continue
		}
		b.WriteString(line.Raw())
		b.WriteString("\n")
	}
}
