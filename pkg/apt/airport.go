package apt

import (
	"github.com/beetlebugorg/aptdat/internal/parser"
)

// Airport is a single airport, seaplane base, or heliport record: the
// parsed header fields plus the contiguous, verbatim apt.dat line range
// belonging to it.
//
// Derived properties (coordinates, feature flags) are computed from the
// line sequence on every call; lines are immutable, so results are always
// consistent and safe to read concurrently.
type Airport struct {
	rec *parser.Airport
}

// AirportKind distinguishes the three facility types a header row can open.
type AirportKind int

const (
	AirportKindUnknown AirportKind = iota
	AirportKindLand
	AirportKindSeaplaneBase
	AirportKindHeliport
)

// String returns the human-readable name of the airport kind.
func (k AirportKind) String() string {
	switch k {
	case AirportKindLand:
		return "Airport"
	case AirportKindSeaplaneBase:
		return "Seaplane Base"
	case AirportKindHeliport:
		return "Heliport"
	default:
		return "Unknown"
	}
}

// LatLon is a geographic coordinate in WGS-84 decimal degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

// AirportFromString builds one record from the slab of apt.dat text
// pertaining to a single airport (header line first, no file preamble or
// terminator). version is the apt.dat spec version to assume; pass 0 for
// the default.
func AirportFromString(text, source string, version int) (*Airport, error) {
	if version == 0 {
		version = 1100
	}
	rec, err := parser.AirportFromString(text, source, version)
	if err != nil {
		return nil, err
	}
	return &Airport{rec: rec}, nil
}

// ID returns the X-Plane identifier for the airport, which may or may not
// correspond to its real-world ICAO code.
func (a *Airport) ID() string { return a.rec.ID }

// Name returns the display name, like "Seattle Tacoma Intl".
func (a *Airport) Name() string { return a.rec.Name }

// Source returns the label of the apt.dat source this record came from.
func (a *Airport) Source() string { return a.rec.Source }

// HasATC reports whether the header indicates the airport has air traffic
// control.
func (a *Airport) HasATC() bool { return a.rec.HasATC }

// ElevationFtAMSL returns the header elevation in feet above mean sea
// level.
func (a *Airport) ElevationFtAMSL() float64 { return a.rec.ElevationFtAMSL }

// Kind returns the facility type from the header row code.
func (a *Airport) Kind() AirportKind {
	switch a.rec.Kind {
	case parser.AirportKindLand:
		return AirportKindLand
	case parser.AirportKindSeaplaneBase:
		return AirportKindSeaplaneBase
	case parser.AirportKindHeliport:
		return AirportKindHeliport
	default:
		return AirportKindUnknown
	}
}

// Metadata returns the airport's 1302 metadata rows as a key/value map
// (keys like "city", "country", "icao_code"). The map is a copy; mutating
// it does not touch the record.
func (a *Airport) Metadata() map[string]string {
	out := make(map[string]string, len(a.rec.Metadata))
	for k, v := range a.rec.Metadata {
		out[string(k)] = v
	}
	return out
}

// Line is a read-only view of one tokenized apt.dat line.
type Line struct {
	line parser.Line
}

// Raw returns the line text after edge-whitespace normalization, exactly
// as it will be written back out.
func (l Line) Raw() string { return l.line.Raw() }

// Tokens returns the line's whitespace-split tokens.
func (l Line) Tokens() []string { return l.line.Tokens() }

// RowCode returns the line's numeric row code. ok is false for blank lines
// and lines whose first token is not an integer.
func (l Line) RowCode() (code int, ok bool) {
	c, ok := l.line.RowCode()
	return int(c), ok
}

// Lines returns the record's complete line sequence, header first.
func (a *Airport) Lines() []Line {
	out := make([]Line, len(a.rec.Lines))
	for i, line := range a.rec.Lines {
		out[i] = Line{line: line}
	}
	return out
}

// RawLines returns the record's complete apt.dat text as raw lines, header
// first.
func (a *Airport) RawLines() []string {
	out := make([]string, len(a.rec.Lines))
	for i, line := range a.rec.Lines {
		out[i] = line.Raw()
	}
	return out
}

// LineCount returns the number of lines in the record's range.
func (a *Airport) LineCount() int { return len(a.rec.Lines) }

// Head returns the first n raw lines joined with newlines, for logging and
// quick inspection.
func (a *Airport) Head(n int) string { return a.rec.Head(n) }

// AppendLine tokenizes text and appends it to the record's line sequence.
// Existing lines are never mutated.
func (a *Airport) AppendLine(text string) { a.rec.AppendLine(text) }

// HasRowCode reports whether any line in the record's text begins with one
// of the given row codes (e.g. 100 for a land runway, 1302 for metadata).
func (a *Airport) HasRowCode(codes ...int) bool {
	internal := make([]parser.RowCode, len(codes))
	for i, c := range codes {
		internal[i] = parser.RowCode(c)
	}
	return a.rec.HasRowCode(internal...)
}

// HasTaxiway reports whether the airport defines any taxiway geometry.
func (a *Airport) HasTaxiway() bool { return a.rec.HasTaxiway() }

// HasTaxiRoute reports whether the airport defines routing rules for ATC's
// use of its taxiways.
func (a *Airport) HasTaxiRoute() bool { return a.rec.HasTaxiRoute() }

// HasTrafficFlow reports whether the airport defines rules for when and
// under what conditions certain runways should be used by ATC.
func (a *Airport) HasTrafficFlow() bool { return a.rec.HasTrafficFlow() }

// HasGroundRoutes reports whether the airport defines ground-vehicle
// destinations, truck parking locations, or taxi routes.
func (a *Airport) HasGroundRoutes() bool { return a.rec.HasGroundRoutes() }

// HasTaxiwaySign reports whether the airport defines any taxi signs.
func (a *Airport) HasTaxiwaySign() bool { return a.rec.HasTaxiwaySign() }

// HasCommFreq reports whether the airport defines communication radio
// frequencies for interacting with ATC.
func (a *Airport) HasCommFreq() bool { return a.rec.HasCommFreq() }

// Coordinates derives the airport's position: the center of the first
// runway, waterway, or helipad in the record, matching how X-Plane locates
// an airport. ok is false when the record carries no decodable runway-like
// line; absent geometry is a data condition, never an error.
func (a *Airport) Coordinates() (pos LatLon, ok bool) {
	p, ok := a.rec.Coordinates()
	if !ok {
		return LatLon{}, false
	}
	return LatLon{Lat: p.Lat, Lon: p.Lon}, true
}

// Latitude derives the airport's latitude. See Coordinates.
func (a *Airport) Latitude() (float64, bool) { return a.rec.Latitude() }

// Longitude derives the airport's longitude. See Coordinates.
func (a *Airport) Longitude() (float64, bool) { return a.rec.Longitude() }

// WriteText renders this record as a complete, independently parseable
// apt.dat file: generated preamble, the record's lines, and the 99
// terminator.
func (a *Airport) WriteText() string { return parser.WriteAirport(a.rec) }
