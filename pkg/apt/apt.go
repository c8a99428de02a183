package apt

import (
	"iter"

	"github.com/beetlebugorg/aptdat/internal/parser"
)

// Parser parses apt.dat airport data files.
//
// Create a parser with NewParser and use Parse or ParseWithOptions to
// segment raw apt.dat text into a Collection. The parser performs no I/O;
// callers supply fully materialized text and an opaque source label.
type Parser interface {
	// Parse segments apt.dat text read from the named source.
	//
	// Malformed input (short header lines, content before the first
	// airport header, a missing 99 terminator) does not abort parsing:
	// every record that could be closed is returned, and the conditions
	// are reported through Collection.Warnings.
	Parse(text, source string) (*Collection, error)

	// ParseWithOptions parses apt.dat text with custom options.
	ParseWithOptions(text, source string, opts ParseOptions) (*Collection, error)
}

// NewParser creates a new apt.dat parser with default settings.
//
// Example:
//
//	parser := apt.NewParser()
//	collection, err := parser.Parse(text, "ICAO.dat")
func NewParser() Parser {
	return &parserWrapper{
		internal: parser.NewParser(),
	}
}

// parserWrapper wraps the internal parser and converts types.
type parserWrapper struct {
	internal parser.Parser
}

func (p *parserWrapper) Parse(text, source string) (*Collection, error) {
	file, err := p.internal.Parse(text, source)
	if err != nil {
		return nil, err
	}
	return &Collection{file: file}, nil
}

func (p *parserWrapper) ParseWithOptions(text, source string, opts ParseOptions) (*Collection, error) {
	internalOpts := parser.ParseOptions{
		DefaultVersion: opts.DefaultVersion,
		Strict:         opts.Strict,
	}
	file, err := p.internal.ParseWithOptions(text, source, internalOpts)
	if err != nil {
		return nil, err
	}
	return &Collection{file: file}, nil
}

// Collection is an ordered set of airport records parsed from one apt.dat
// source.
//
// Order is file order until an explicit Sort. A Collection is not safe for
// concurrent mutation (Sort, Append, RemoveByID), but read-only queries may
// run concurrently over an otherwise-static Collection: no query mutates
// internal state or caches.
type Collection struct {
	file *parser.File
}

// Source returns the label of the text this collection was parsed from.
func (c *Collection) Source() string { return c.file.Source }

// Version returns the apt.dat spec version (1050, 1100, 1130, ...) from the
// file preamble, or the parser default when no preamble was present.
func (c *Collection) Version() int { return c.file.Version }

// Warnings returns the malformed-input conditions encountered while
// parsing. A non-empty list does not invalidate the parsed records.
func (c *Collection) Warnings() []error { return c.file.Warnings }

// Ordering returns the current record ordering: OrderingFile, or the key of
// the last successful Sort.
func (c *Collection) Ordering() string { return c.file.Ordering }

// Len returns the number of airports in the collection.
func (c *Collection) Len() int { return c.file.Len() }

// At returns the airport at index i in current order.
func (c *Collection) At(i int) *Airport {
	return &Airport{rec: c.file.At(i)}
}

// SearchByID returns the first airport in current order whose identifier
// equals id, case-sensitive. ok is false when no airport matches; a miss is
// an absent value, not an error.
func (c *Collection) SearchByID(id string) (apt *Airport, ok bool) {
	rec, ok := c.file.SearchByID(id)
	if !ok {
		return nil, false
	}
	return &Airport{rec: rec}, true
}

// SearchByName returns all airports whose name matches case-insensitively,
// preserving current order. Empty when nothing matches.
func (c *Collection) SearchByName(name string) []*Airport {
	return wrapAll(c.file.SearchByName(name))
}

// SearchByPredicate returns all airports for which pred returns true,
// preserving current order. pred is called exactly once per record.
func (c *Collection) SearchByPredicate(pred func(*Airport) bool) []*Airport {
	return wrapAll(c.file.SearchByPredicate(func(rec *parser.Airport) bool {
		return pred(&Airport{rec: rec})
	}))
}

// Contains reports whether the collection holds an airport with the given
// identifier (case-sensitive).
func (c *Collection) Contains(id string) bool { return c.file.Contains(id) }

// Sort reorders the collection in place by a declared key: SortByName,
// SortByID, or SortByElevation. The sort is stable. An unknown key returns
// a configuration error and leaves the order untouched.
func (c *Collection) Sort(key string) error { return c.file.Sort(key) }

// IDs returns a lazy, restartable sequence over airport identifiers in
// current order. Each iteration re-derives from current state, so it
// reflects sorts and edits made between passes.
func (c *Collection) IDs() iter.Seq[string] { return c.file.IDs() }

// Names returns a lazy, restartable sequence over airport names in current
// order.
func (c *Collection) Names() iter.Seq[string] { return c.file.Names() }

// Append adds an airport record to the end of the collection. No
// de-duplication occurs.
func (c *Collection) Append(a *Airport) { c.file.Append(a.rec) }

// Extend appends all of other's records, preserving both orders. No
// de-duplication occurs; keeping the inputs disjoint is the caller's job.
func (c *Collection) Extend(other *Collection) { c.file.Extend(other.file) }

// RemoveByID removes every airport whose identifier equals id. Returns the
// number removed.
func (c *Collection) RemoveByID(id string) int { return c.file.RemoveByID(id) }

// WriteText renders the complete apt.dat file: preamble, every record's
// line sequence in current order, and the 99 terminator. The output parses
// back to a structurally identical collection.
func (c *Collection) WriteText() string { return parser.WriteCollection(c.file) }

// Ordering values reported by Collection.Ordering and accepted by Sort.
const (
	OrderingFile    = parser.OrderingFile
	SortByName      = parser.SortKeyName
	SortByID        = parser.SortKeyID
	SortByElevation = parser.SortKeyElevation
)

func wrapAll(recs []*parser.Airport) []*Airport {
	out := make([]*Airport, len(recs))
	for i, rec := range recs {
		out[i] = &Airport{rec: rec}
	}
	return out
}
