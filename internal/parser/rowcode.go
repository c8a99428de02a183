package parser

// RowCode is the leading integer token of an apt.dat line, identifying the
// line's semantic kind.
//
// Reference: X-Plane apt.dat 1100 specification (APT1100Spec.pdf), "Record
// types" table. Codes below 100 date back to apt.dat 8.10; 1000+ codes were
// introduced with X-Plane 10.
type RowCode int

const (
	RowAirportHeader  RowCode = 1
	RowRunwayOld      RowCode = 10 // Legacy runway/taxiway record, apt.dat 8.10 and earlier
	RowTowerLocation  RowCode = 14
	RowStartupLoc     RowCode = 15
	RowSeaportHeader  RowCode = 16
	RowHeliportHeader RowCode = 17
	RowBeacon         RowCode = 18
	RowWindsock       RowCode = 19
	RowTaxiSign       RowCode = 20
	RowPAPILights     RowCode = 21

	RowFreqAWOS     RowCode = 50
	RowFreqCTAF     RowCode = 51
	RowFreqDelivery RowCode = 52
	RowFreqGround   RowCode = 53
	RowFreqTower    RowCode = 54
	RowFreqApproach RowCode = 55
	RowFreqCenter   RowCode = 56
	RowFreqUnicom   RowCode = 57

	RowFileEnd RowCode = 99

	RowLandRunway  RowCode = 100
	RowWaterRunway RowCode = 101
	RowHelipad     RowCode = 102

	RowTaxiway   RowCode = 110
	RowFreeChain RowCode = 120
	RowBoundary  RowCode = 130

	RowLineSegment RowCode = 111
	RowLineCurve   RowCode = 112
	RowRingSegment RowCode = 113
	RowRingCurve   RowCode = 114
	RowEndSegment  RowCode = 115
	RowEndCurve    RowCode = 116

	RowFlowDefinition RowCode = 1000
	RowFlowWind       RowCode = 1001
	RowFlowCeiling    RowCode = 1002
	RowFlowVisibility RowCode = 1003
	RowFlowTime       RowCode = 1004

	// 8.33kHz 6-digit COM channels replacing the 50..57 records
	RowChannelAWOS     RowCode = 1050
	RowChannelCTAF     RowCode = 1051
	RowChannelDelivery RowCode = 1052
	RowChannelGround   RowCode = 1053
	RowChannelTower    RowCode = 1054
	RowChannelApproach RowCode = 1055
	RowChannelCenter   RowCode = 1056
	RowChannelUnicom   RowCode = 1057

	RowFlowRunwayRule        RowCode = 1100
	RowFlowPattern           RowCode = 1101
	RowFlowRunwayRuleChannel RowCode = 1110

	RowTaxiRouteHeader RowCode = 1200
	RowTaxiRouteNode   RowCode = 1201
	RowTaxiRouteEdge   RowCode = 1202
	RowTaxiRouteShape  RowCode = 1203
	RowTaxiRouteHold   RowCode = 1204
	RowTaxiRouteRoad   RowCode = 1206

	RowStartLocationNew RowCode = 1300 // Replaces the 15 record
	RowStartLocationExt RowCode = 1301
	RowMetadata         RowCode = 1302

	RowTruckParking     RowCode = 1400
	RowTruckDestination RowCode = 1401
)

// Kind is the closed structural classification of a row code. Every decision
// the segmenter or the derived-property engine makes is switched on a Kind,
// never on scattered integer comparisons.
type Kind int

const (
	// KindOther covers row codes that carry payload for the containing
	// airport but play no structural role in segmentation.
	KindOther Kind = iota

	// KindAirportHeader starts a new airport, seaport, or heliport record.
	KindAirportHeader

	// KindTerminator is the designated end-of-data row code (99).
	KindTerminator

	// KindRunway marks a line carrying runway/helipad geometry.
	KindRunway

	// KindIgnorable marks blank and comment lines: retained verbatim for
	// round-trip output, skipped when deriving facts.
	KindIgnorable
)

// AirportKind distinguishes the three header row codes.
type AirportKind int

const (
	AirportKindNone AirportKind = iota
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

// RunwayKind distinguishes the three runway-like row codes, which carry
// their coordinates at different token offsets.
type RunwayKind int

const (
	RunwayKindNone RunwayKind = iota
	RunwayKindLand
	RunwayKindWater
	RunwayKindHelipad
)

// Classify maps a row code to its structural Kind.
//
// Blank and comment lines never reach this function; they have no row code
// and are classified KindIgnorable by the tokenizer directly.
func Classify(code RowCode) Kind {
	switch code {
	case RowAirportHeader, RowSeaportHeader, RowHeliportHeader:
		return KindAirportHeader
	case RowFileEnd:
		return KindTerminator
	case RowLandRunway, RowWaterRunway, RowHelipad:
		return KindRunway
	default:
		return KindOther
	}
}

// HeaderKind maps a header row code to the kind of facility it opens.
// Returns AirportKindNone for non-header codes.
func HeaderKind(code RowCode) AirportKind {
	switch code {
	case RowAirportHeader:
		return AirportKindLand
	case RowSeaportHeader:
		return AirportKindSeaplaneBase
	case RowHeliportHeader:
		return AirportKindHeliport
	default:
		return AirportKindNone
	}
}

// RunwayKindOf maps a runway-like row code to its RunwayKind.
// Returns RunwayKindNone for non-runway codes.
func RunwayKindOf(code RowCode) RunwayKind {
	switch code {
	case RowLandRunway:
		return RunwayKindLand
	case RowWaterRunway:
		return RunwayKindWater
	case RowHelipad:
		return RunwayKindHelipad
	default:
		return RunwayKindNone
	}
}

// Row code lookup table, used for diagnostics and the CLI summary output.
// Source: X-Plane apt.dat 1100 specification record-type table.
var rowCodeNames = map[RowCode]string{
	RowAirportHeader:         "AIRPORT_HEADER",
	RowRunwayOld:             "RUNWAY_OLD",
	RowTowerLocation:         "TOWER_LOCATION",
	RowStartupLoc:            "STARTUP_LOCATION",
	RowSeaportHeader:         "SEAPORT_HEADER",
	RowHeliportHeader:        "HELIPORT_HEADER",
	RowBeacon:                "BEACON",
	RowWindsock:              "WINDSOCK",
	RowTaxiSign:              "TAXI_SIGN",
	RowPAPILights:            "PAPI_LIGHTS",
	RowFreqAWOS:              "FREQUENCY_AWOS",
	RowFreqCTAF:              "FREQUENCY_CTAF",
	RowFreqDelivery:          "FREQUENCY_DELIVERY",
	RowFreqGround:            "FREQUENCY_GROUND",
	RowFreqTower:             "FREQUENCY_TOWER",
	RowFreqApproach:          "FREQUENCY_APPROACH",
	RowFreqCenter:            "FREQUENCY_CENTER",
	RowFreqUnicom:            "FREQUENCY_UNICOM",
	RowFileEnd:               "FILE_END",
	RowLandRunway:            "LAND_RUNWAY",
	RowWaterRunway:           "WATER_RUNWAY",
	RowHelipad:               "HELIPAD",
	RowTaxiway:               "TAXIWAY",
	RowLineSegment:           "LINE_SEGMENT",
	RowLineCurve:             "LINE_CURVE",
	RowRingSegment:           "RING_SEGMENT",
	RowRingCurve:             "RING_CURVE",
	RowEndSegment:            "END_SEGMENT",
	RowEndCurve:              "END_CURVE",
	RowFreeChain:             "FREE_CHAIN",
	RowBoundary:              "BOUNDARY",
	RowFlowDefinition:        "FLOW_DEFINITION",
	RowFlowWind:              "FLOW_WIND",
	RowFlowCeiling:           "FLOW_CEILING",
	RowFlowVisibility:        "FLOW_VISIBILITY",
	RowFlowTime:              "FLOW_TIME",
	RowChannelAWOS:           "CHANNEL_AWOS",
	RowChannelCTAF:           "CHANNEL_CTAF",
	RowChannelDelivery:       "CHANNEL_DELIVERY",
	RowChannelGround:         "CHANNEL_GROUND",
	RowChannelTower:          "CHANNEL_TOWER",
	RowChannelApproach:       "CHANNEL_APPROACH",
	RowChannelCenter:         "CHANNEL_CENTER",
	RowChannelUnicom:         "CHANNEL_UNICOM",
	RowFlowRunwayRule:        "FLOW_RUNWAY_RULE",
	RowFlowPattern:           "FLOW_PATTERN",
	RowFlowRunwayRuleChannel: "FLOW_RUNWAY_RULE_CHANNEL",
	RowTaxiRouteHeader:       "TAXI_ROUTE_HEADER",
	RowTaxiRouteNode:         "TAXI_ROUTE_NODE",
	RowTaxiRouteEdge:         "TAXI_ROUTE_EDGE",
	RowTaxiRouteShape:        "TAXI_ROUTE_SHAPE",
	RowTaxiRouteHold:         "TAXI_ROUTE_HOLD",
	RowTaxiRouteRoad:         "TAXI_ROUTE_ROAD",
	RowStartLocationNew:      "START_LOCATION",
	RowStartLocationExt:      "START_LOCATION_EXT",
	RowMetadata:              "METADATA",
	RowTruckParking:          "TRUCK_PARKING",
	RowTruckDestination:      "TRUCK_DESTINATION",
}

// Name returns the symbolic name of a row code, or "UNKNOWN" for codes not
// in the catalogue.
func (c RowCode) Name() string {
	if name, ok := rowCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
