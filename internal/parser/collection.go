package parser

import (
	"iter"
	"sort"
	"strings"
)

// Ordering values for File.Ordering. File order is the default; a
// successful Sort records the applied key here.
const (
	OrderingFile     = "file"
	SortKeyName      = "name"
	SortKeyID        = "id"
	SortKeyElevation = "elevation"
)

// sortKeyList names the declared sort keys, for error messages.
const sortKeyList = "name, id, elevation"

// File is an ordered collection of airport records parsed from one apt.dat
// source.
//
// Order is insertion (file) order until an explicit Sort. Identifiers need
// not be unique in input data; lookups return the first match in current
// order. A File is not safe for concurrent mutation, but read-only queries
// may run concurrently — nothing here caches or mutates internally.
type File struct {
	// Source is the label of the text this collection was parsed from.
	Source string

	// Version is the apt.dat spec version from the file preamble (1050,
	// 1100, 1130, ...), or the parser's default when no preamble exists.
	Version int

	// HeaderLines holds the two-line file preamble verbatim, when present.
	HeaderLines []Line

	// Airports holds the records in current order.
	Airports []*Airport

	// Warnings accumulates malformed-input conditions encountered while
	// parsing. A non-empty list does not invalidate the records.
	Warnings []error

	// Ordering records the current ordering: OrderingFile or the last
	// applied sort key.
	Ordering string
}

// Len returns the number of airports in the collection.
func (f *File) Len() int { return len(f.Airports) }

// At returns the airport at index i in current order.
func (f *File) At(i int) *Airport { return f.Airports[i] }

// SearchByID returns the first airport (in current order) whose identifier
// equals id, case-sensitive. ok is false when no airport matches; a miss is
// not an error.
func (f *File) SearchByID(id string) (apt *Airport, ok bool) {
	for _, a := range f.Airports {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// SearchByName returns all airports whose name matches case-insensitively.
// The result preserves current order and is empty when nothing matches.
func (f *File) SearchByName(name string) []*Airport {
	return f.SearchByPredicate(func(a *Airport) bool {
		return strings.EqualFold(a.Name, name)
	})
}

// SearchByPredicate returns all airports for which pred returns true,
// preserving current order. pred is called exactly once per airport.
func (f *File) SearchByPredicate(pred func(*Airport) bool) []*Airport {
	var out []*Airport
	for _, a := range f.Airports {
		if pred(a) {
			out = append(out, a)
		}
	}
	return out
}

// Contains reports whether any airport in the collection has the given
// identifier (case-sensitive).
func (f *File) Contains(id string) bool {
	_, ok := f.SearchByID(id)
	return ok
}

// Sort reorders the collection in place by a declared key: SortKeyName,
// SortKeyID, or SortKeyElevation. The sort is stable, so airports equal
// under the key keep their relative order. An unknown key is a
// configuration error and leaves the collection untouched.
func (f *File) Sort(key string) error {
	var less func(a, b *Airport) bool
	switch key {
	case SortKeyName:
		less = func(a, b *Airport) bool { return a.Name < b.Name }
	case SortKeyID:
		less = func(a, b *Airport) bool { return a.ID < b.ID }
	case SortKeyElevation:
		less = func(a, b *Airport) bool { return a.ElevationFtAMSL < b.ElevationFtAMSL }
	default:
		return &ErrUnknownSortKey{Key: key}
	}

	sort.SliceStable(f.Airports, func(i, j int) bool {
		return less(f.Airports[i], f.Airports[j])
	})
	f.Ordering = key
	return nil
}

// IDs returns a lazy sequence over the identifiers of all airports in
// current order. The sequence is restartable and re-derives from current
// state on each iteration, so it reflects later sorts and edits.
func (f *File) IDs() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, a := range f.Airports {
			if !yield(a.ID) {
				return
			}
		}
	}
}

// Names returns a lazy sequence over the airport names in current order.
// Restartable, like IDs.
func (f *File) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, a := range f.Airports {
			if !yield(a.Name) {
				return
			}
		}
	}
}

// Append adds an airport to the end of the collection. No de-duplication
// occurs; keeping identifiers disjoint is the caller's job.
func (f *File) Append(apt *Airport) {
	f.Airports = append(f.Airports, apt)
}

// Extend appends all of other's airports to this collection, preserving
// both collections' current orders. No de-duplication occurs.
func (f *File) Extend(other *File) {
	f.Airports = append(f.Airports, other.Airports...)
}

// RemoveByID removes every airport whose identifier equals id
// (case-sensitive). Returns the number removed.
func (f *File) RemoveByID(id string) int {
	kept := f.Airports[:0]
	removed := 0
	for _, a := range f.Airports {
		if a.ID == id {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	f.Airports = kept
	return removed
}
