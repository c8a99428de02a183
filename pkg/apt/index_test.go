package apt

import (
	"testing"
)

func buildSampleIndex(t *testing.T) (*Collection, *AirportIndex) {
	t.Helper()
	collection := parseSample(t)
	idx := BuildAirportIndex(collection)
	return collection, idx
}

func TestBuildAirportIndex(t *testing.T) {
	collection, idx := buildSampleIndex(t)

	// The heliport has no runway-like line and cannot be positioned.
	if idx.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", idx.Count())
	}
	if idx.Count() >= collection.Len() {
		t.Errorf("index should hold fewer entries than the collection (%d vs %d)",
			idx.Count(), collection.Len())
	}

	if len(idx.All()) != idx.Count() {
		t.Errorf("All() returned %d entries, want %d", len(idx.All()), idx.Count())
	}
}

func TestIndexQuery(t *testing.T) {
	_, idx := buildSampleIndex(t)

	tests := []struct {
		name   string
		bounds Bounds
		want   []string
	}{
		{
			name:   "new england viewport hits KBOS",
			bounds: Bounds{MinLon: -72.0, MaxLon: -70.0, MinLat: 41.0, MaxLat: 43.0},
			want:   []string{"KBOS"},
		},
		{
			name:   "new mexico viewport hits the seaplane base",
			bounds: Bounds{MinLon: -107.0, MaxLon: -106.0, MinLat: 34.5, MaxLat: 35.5},
			want:   []string{"SEAP"},
		},
		{
			name:   "continental viewport hits both",
			bounds: Bounds{MinLon: -125.0, MaxLon: -65.0, MinLat: 24.0, MaxLat: 50.0},
			want:   []string{"KBOS", "SEAP"},
		},
		{
			name:   "mid-atlantic viewport hits nothing",
			bounds: Bounds{MinLon: -40.0, MaxLon: -30.0, MinLat: 30.0, MaxLat: 40.0},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := idx.Query(tt.bounds)

			got := make(map[string]bool, len(hits))
			for _, a := range hits {
				got[a.ID()] = true
			}
			if len(hits) != len(tt.want) {
				t.Fatalf("Query returned %d airports, want %d", len(hits), len(tt.want))
			}
			for _, id := range tt.want {
				if !got[id] {
					t.Errorf("Query missing %s", id)
				}
			}
		})
	}
}

func TestIndexCoverageBounds(t *testing.T) {
	_, idx := buildSampleIndex(t)

	bounds := idx.CoverageBounds()

	// Coverage spans from the seaplane base (west) to KBOS (east).
	if !bounds.Contains(-70.9992525, 42.362753) {
		t.Error("coverage excludes KBOS position")
	}
	if !bounds.Contains(-106.594599, 35.048011) {
		t.Error("coverage excludes seaplane base position")
	}
	if bounds.Contains(0, 0) {
		t.Error("coverage includes null island")
	}
}

func TestIndexEmptyCollection(t *testing.T) {
	collection, err := NewParser().Parse("I\n1100 Generated by WorldEditor\n\n99\n", "empty.dat")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	idx := BuildAirportIndex(collection)
	if idx.Count() != 0 {
		t.Errorf("Count() = %d, want 0", idx.Count())
	}
	if got := idx.Query(Bounds{MinLon: -180, MaxLon: 180, MinLat: -90, MaxLat: 90}); len(got) != 0 {
		t.Errorf("Query over empty index returned %d airports", len(got))
	}
	if b := idx.CoverageBounds(); b != (Bounds{}) {
		t.Errorf("CoverageBounds() = %+v, want zero", b)
	}
}

func TestBoundsOps(t *testing.T) {
	a := Bounds{MinLon: -10, MaxLon: 0, MinLat: -5, MaxLat: 5}
	b := Bounds{MinLon: -2, MaxLon: 8, MinLat: 3, MaxLat: 12}

	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("overlapping bounds do not intersect")
	}

	c := Bounds{MinLon: 20, MaxLon: 30, MinLat: 20, MaxLat: 30}
	if a.Intersects(c) {
		t.Error("disjoint bounds intersect")
	}

	u := a.Union(b)
	want := Bounds{MinLon: -10, MaxLon: 8, MinLat: -5, MaxLat: 12}
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}

	e := a.Expand(1)
	if e.MinLon != -11 || e.MaxLon != 1 || e.MinLat != -6 || e.MaxLat != 6 {
		t.Errorf("Expand = %+v", e)
	}
}
