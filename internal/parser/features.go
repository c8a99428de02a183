package parser

// Feature predicates derived from an airport's line sequence.
//
// Each predicate is a pure O(n) scan over the record's lines against a fixed
// row-code set. Nothing is cached: Lines are immutable, so re-evaluation is
// always consistent, and these scans are cheap even for large airports.

// HasRowCode reports whether any line in the airport's text begins with one
// of the given row codes.
func (a *Airport) HasRowCode(codes ...RowCode) bool {
	for _, line := range a.Lines {
		code, ok := line.RowCode()
		if !ok {
			continue
		}
		for _, want := range codes {
			if code == want {
				return true
			}
		}
	}
	return false
}

// HasTaxiway reports whether the airport defines any taxiway geometry.
func (a *Airport) HasTaxiway() bool {
	return a.HasRowCode(RowRingSegment, RowRingCurve)
}

// HasTaxiRoute reports whether the airport defines routing rules for ATC's
// use of its taxiways.
func (a *Airport) HasTaxiRoute() bool {
	return a.HasRowCode(RowTaxiRouteHeader)
}

// HasTrafficFlow reports whether the airport defines rules for when and
// under what conditions certain runways should be used by ATC.
func (a *Airport) HasTrafficFlow() bool {
	return a.HasRowCode(RowFlowDefinition)
}

// HasGroundRoutes reports whether the airport defines destinations for
// ground vehicles (baggage carts, fuel trucks), truck parking locations, or
// taxi routes.
func (a *Airport) HasGroundRoutes() bool {
	return a.HasRowCode(RowTruckParking, RowTruckDestination, RowTaxiRouteHeader)
}

// HasTaxiwaySign reports whether the airport defines any taxi signs.
func (a *Airport) HasTaxiwaySign() bool {
	return a.HasRowCode(RowTaxiSign)
}

// HasCommFreq reports whether the airport defines communication radio
// frequencies for interacting with ATC.
func (a *Airport) HasCommFreq() bool {
	return a.HasRowCode(RowFreqAWOS, RowFreqCTAF, RowFreqDelivery, RowFreqGround,
		RowFreqTower, RowFreqApproach, RowFreqCenter)
}
