package parser

import "strings"

// MetadataKey identifies one of the per-airport metadata rows (row code
// 1302) WorldEditor writes into apt.dat.
//
// The key set has to match the key names in WED_MetaDataKeys.cpp; rows with
// keys outside this set are preserved in the record text but not surfaced
// through the Metadata map.
type MetadataKey string

const (
	MetadataCity            MetadataKey = "city"
	MetadataCountry         MetadataKey = "country"
	MetadataDatumLat        MetadataKey = "datum_lat"
	MetadataDatumLon        MetadataKey = "datum_lon"
	MetadataFAACode         MetadataKey = "faa_code"
	MetadataLabel3DOr2D     MetadataKey = "gui_label"
	MetadataIATACode        MetadataKey = "iata_code"
	MetadataICAOCode        MetadataKey = "icao_code"
	MetadataLocalCode       MetadataKey = "local_code"
	MetadataLocalAuthority  MetadataKey = "local_authority"
	MetadataRegionCode      MetadataKey = "region_code"
	MetadataState           MetadataKey = "state"
	MetadataTransitionAlt   MetadataKey = "transition_alt"
	MetadataTransitionLevel MetadataKey = "transition_level"
)

var knownMetadataKeys = map[MetadataKey]struct{}{
	MetadataCity:            {},
	MetadataCountry:         {},
	MetadataDatumLat:        {},
	MetadataDatumLon:        {},
	MetadataFAACode:         {},
	MetadataLabel3DOr2D:     {},
	MetadataIATACode:        {},
	MetadataICAOCode:        {},
	MetadataLocalCode:       {},
	MetadataLocalAuthority:  {},
	MetadataRegionCode:      {},
	MetadataState:           {},
	MetadataTransitionAlt:   {},
	MetadataTransitionLevel: {},
}

// parseMetadata collects 1302 rows into a key/value map.
//
// The value is the remaining tokens joined with single spaces. Rows with an
// unknown key or no value are skipped; they stay in the record's line
// sequence either way.
func parseMetadata(lines []Line) map[MetadataKey]string {
	out := make(map[MetadataKey]string)
	for _, line := range lines {
		code, ok := line.RowCode()
		if !ok || code != RowMetadata {
			continue
		}
		tokens := line.Tokens()
		if len(tokens) < 3 {
			continue // no value
		}
		key := MetadataKey(tokens[1])
		if _, known := knownMetadataKeys[key]; !known {
			continue
		}
		out[key] = strings.Join(tokens[2:], " ")
	}
	return out
}
