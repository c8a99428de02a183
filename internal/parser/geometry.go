package parser

import (
	"strconv"
)

// LatLon is a geographic coordinate in WGS-84 decimal degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

// Token offsets of the coordinate fields in each runway-type sub-format.
//
// Land runways (100) carry two runway ends; the airport coordinate is the
// center of the first runway, so latitude is the mean of the two end
// latitudes (tokens 9 and 18) and longitude the mean of tokens 10 and 19.
// Water runways (101) carry their ends at tokens 4/7 (lat) and 5/8 (lon).
// Helipads (102) are a single point at tokens 2 (lat) and 3 (lon).
//
// Reference: apt.dat 1100 specification, rows 100/101/102.
var runwayCoordOffsets = map[RunwayKind]struct {
	latStart, latEnd int
	lonStart, lonEnd int
}{
	RunwayKindLand:    {9, 18, 10, 19},
	RunwayKindWater:   {4, 7, 5, 8},
	RunwayKindHelipad: {2, 2, 3, 3},
}

// Coordinates derives the airport's latitude and longitude: the center of
// the first runway-like line in the record, matching how X-Plane itself
// locates an airport.
//
// ok is false when the record has no runway-like line, or when the first one
// is too short or carries unparsable coordinate fields. Absent geometry is a
// data condition, never an error.
func (a *Airport) Coordinates() (pos LatLon, ok bool) {
	for _, line := range a.Lines {
		if !line.IsRunway() {
			continue
		}
		code, _ := line.RowCode()
		offsets, found := runwayCoordOffsets[RunwayKindOf(code)]
		if !found {
			return LatLon{}, false
		}

		lat, latOK := tokenMean(line, offsets.latStart, offsets.latEnd)
		lon, lonOK := tokenMean(line, offsets.lonStart, offsets.lonEnd)
		if !latOK || !lonOK || !validCoordinate(lat, lon) {
			return LatLon{}, false
		}
		return LatLon{Lat: lat, Lon: lon}, true
	}
	return LatLon{}, false
}

// Latitude derives the airport's latitude. See Coordinates.
func (a *Airport) Latitude() (float64, bool) {
	pos, ok := a.Coordinates()
	return pos.Lat, ok
}

// Longitude derives the airport's longitude. See Coordinates.
func (a *Airport) Longitude() (float64, bool) {
	pos, ok := a.Coordinates()
	return pos.Lon, ok
}

// tokenMean returns the mean of the float values at token indexes i and j.
// When i == j the token's value is returned as-is.
func tokenMean(line Line, i, j int) (float64, bool) {
	tokens := line.Tokens()
	if i >= len(tokens) || j >= len(tokens) {
		return 0, false
	}
	a, err := strconv.ParseFloat(tokens[i], 64)
	if err != nil {
		return 0, false
	}
	b, err := strconv.ParseFloat(tokens[j], 64)
	if err != nil {
		return 0, false
	}
	return 0.5 * (a + b), true
}

// validCoordinate checks geographic bounds: lat must be within ±90, lon
// within ±180.
func validCoordinate(lat, lon float64) bool {
	return lat >= -90.0 && lat <= 90.0 && lon >= -180.0 && lon <= 180.0
}
