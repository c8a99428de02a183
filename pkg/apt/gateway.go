package apt

// SceneryPack bundles everything that arrives with one downloaded scenery
// pack: the parsed apt.dat record plus the sidecar files and service
// metadata that ride along.
//
// The metadata maps are opaque pass-through payloads. They arrive as
// arbitrary JSON from the scenery service and are stored and returned
// as-is; nothing in this module inspects or depends on their keys. Callers
// who need a particular field assert it out themselves.
type SceneryPack struct {
	// Airport is the parsed contents of the pack's apt.dat file.
	Airport *Airport

	// DSFText is the contents of the DSF .txt file. Packs with no 3D
	// scenery do not include one, in which case this is empty.
	DSFText string

	// Readme is the contents of the pack's README.
	Readme string

	// Copying is the contents of the pack's COPYING instructions.
	Copying string

	// PackMetadata is the service's metadata object for this particular
	// scenery pack (uploader, dates, status, artist comments, ...).
	PackMetadata map[string]any

	// AirportMetadata is the service's metadata object for the airport
	// this pack represents. Nil when it has not been fetched.
	AirportMetadata map[string]any
}

// ID returns the pack's airport identifier, preferring the parsed record
// and falling back to the service metadata when the apt.dat could not be
// parsed.
func (p *SceneryPack) ID() string {
	if p.Airport != nil {
		return p.Airport.ID()
	}
	if id, ok := p.AirportMetadata["icao"].(string); ok {
		return id
	}
	return ""
}

// Has3D reports whether the pack ships 3D scenery (a DSF text sidecar).
func (p *SceneryPack) Has3D() bool {
	return p.DSFText != ""
}
