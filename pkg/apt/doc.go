// Package apt provides a parser for X-Plane airport data (apt.dat) files.
//
// apt.dat is a line-oriented, numerically-keyed text format describing
// airport facilities: runways, taxiways, radio frequencies, ground routes,
// and signage. Files have no explicit record delimiters — airport boundaries
// and record types are inferred from row codes, the leading integer token of
// each line. This package segments a file into airport records, derives
// per-airport facts (coordinates, feature flags), answers lookup queries,
// and serializes records back to valid apt.dat text.
//
// # Basic Usage
//
//	parser := apt.NewParser()
//	collection, err := parser.Parse(datText, "apt.dat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%d airports from %s\n", collection.Len(), collection.Source())
//
//	if ksea, ok := collection.SearchByID("KSEA"); ok {
//	    pos, _ := ksea.Coordinates()
//	    fmt.Printf("%s at %.4f, %.4f\n", ksea.Name(), pos.Lat, pos.Lon)
//	}
//
// # Derived Properties
//
// Feature flags and coordinates are computed on demand from a record's line
// sequence and are never cached or stored:
//
//	if airport.HasTaxiRoute() {
//	    // airport defines ATC taxi routing
//	}
//
// # Spatial Queries
//
// BuildAirportIndex builds an R-tree over airports with derived
// coordinates, for viewport-style queries:
//
//	idx := apt.BuildAirportIndex(collection)
//	nearby := idx.Query(apt.Bounds{
//	    MinLon: -71.5, MaxLon: -70.5,
//	    MinLat: 42.0, MaxLat: 42.7,
//	})
//
// # Round Trips
//
// WriteText renders a collection (or a single record) back to apt.dat text.
// Per-line leading/trailing whitespace and line endings are normalized at
// parse time; everything else is preserved verbatim, so reparsing written
// output always yields a structurally identical collection.
//
// The package never performs I/O: callers read and write files, and any
// scenery-gateway client stays outside this boundary (see SceneryPack).
package apt
