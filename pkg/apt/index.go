package apt

import (
	"github.com/dhconnelly/rtreego"
)

// AirportIndex provides fast spatial queries over a collection of airports.
//
// The index stores one entry per airport with derived coordinates and
// supports efficient viewport filtering using an R-tree spatial index.
// Airports with no decodable runway, waterway, or helipad line have no
// position and are excluded from the index.
//
// Spatial queries are O(log N) with the R-tree, compared to O(N) with
// linear scan.
//
// Example:
//
//	idx := apt.BuildAirportIndex(collection)
//
//	// Query for airports around Puget Sound
//	hits := idx.Query(apt.Bounds{
//	    MinLon: -123.0, MaxLon: -121.5,
//	    MinLat: 47.0, MaxLat: 48.5,
//	})
//
//	fmt.Printf("Found %d airports\n", len(hits))
type AirportIndex struct {
	entries []AirportEntry
	rtree   *rtreego.Rtree // Spatial index for fast queries
}

// AirportEntry contains indexed metadata for a single airport.
type AirportEntry struct {
	Airport  *Airport
	Position LatLon // Derived coordinates
}

// Bounds method for rtreego.Spatial interface.
// Converts the airport's point position to an R-tree rectangle.
func (e AirportEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.Position.Lon, e.Position.Lat}

	// Airports are point features (zero-area); the R-tree requires
	// non-zero dimensions, so use a small epsilon (~11 meters at equator)
	const epsilon = 0.0001
	lengths := []float64{epsilon, epsilon}

	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// BuildAirportIndex creates a spatial index over a parsed collection.
//
// Records without derivable coordinates are skipped; how many made it in
// is reported by Count versus the collection's Len. The index holds
// references to the collection's records, so it stays cheap to build even
// for the full global apt.dat.
func BuildAirportIndex(c *Collection) *AirportIndex {
	var entries []AirportEntry

	// Create R-tree (2D, min=25 children, max=50 children)
	rtree := rtreego.NewTree(2, 25, 50)

	for i := 0; i < c.Len(); i++ {
		airport := c.At(i)
		pos, ok := airport.Coordinates()
		if !ok {
			continue // no runway-like line to derive a position from
		}

		entry := AirportEntry{
			Airport:  airport,
			Position: pos,
		}
		entries = append(entries, entry)
		rtree.Insert(entry)
	}

	return &AirportIndex{
		entries: entries,
		rtree:   rtree,
	}
}

// Query returns the airports whose derived position falls inside bounds.
//
// Uses the R-tree spatial index for efficient O(log N) queries instead of
// O(N) linear scan. Order of results is not specified.
func (idx *AirportIndex) Query(bounds Bounds) []*Airport {
	var result []*Airport

	point := rtreego.Point{bounds.MinLon, bounds.MinLat}
	lengths := []float64{
		bounds.MaxLon - bounds.MinLon,
		bounds.MaxLat - bounds.MinLat,
	}
	queryRect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return nil
	}

	spatials := idx.rtree.SearchIntersect(queryRect)
	for _, spatial := range spatials {
		entry := spatial.(AirportEntry)

		// The epsilon padding on point rects can produce edge hits just
		// outside the viewport; confirm against the exact position.
		if !bounds.Contains(entry.Position.Lon, entry.Position.Lat) {
			continue
		}

		result = append(result, entry.Airport)
	}

	return result
}

// Count returns the number of airports in the index. Airports without
// derivable coordinates are not counted.
func (idx *AirportIndex) Count() int {
	return len(idx.entries)
}

// CoverageBounds returns the union of all indexed airport positions.
func (idx *AirportIndex) CoverageBounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}

	first := idx.entries[0].Position
	bounds := Bounds{
		MinLon: first.Lon,
		MaxLon: first.Lon,
		MinLat: first.Lat,
		MaxLat: first.Lat,
	}
	for i := 1; i < len(idx.entries); i++ {
		pos := idx.entries[i].Position
		bounds = bounds.Union(Bounds{
			MinLon: pos.Lon,
			MaxLon: pos.Lon,
			MinLat: pos.Lat,
			MaxLat: pos.Lat,
		})
	}

	return bounds
}

// All returns all indexed entries.
func (idx *AirportIndex) All() []AirportEntry {
	return idx.entries
}
