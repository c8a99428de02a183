package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/aptdat/pkg/apt"
)

func main() {
	data, err := os.ReadFile("apt.dat")
	if err != nil {
		log.Fatal(err)
	}

	collection, err := apt.NewParser().Parse(string(data), "apt.dat")
	if err != nil {
		log.Fatal(err)
	}

	// Build a spatial index over every airport with derivable coordinates
	idx := apt.BuildAirportIndex(collection)
	fmt.Printf("Indexed %d of %d airports\n", idx.Count(), collection.Len())

	// Query for airports around Puget Sound
	viewport := apt.Bounds{
		MinLon: -123.0, MaxLon: -121.5,
		MinLat: 47.0, MaxLat: 48.5,
	}
	hits := idx.Query(viewport)

	fmt.Printf("Found %d airports in viewport\n", len(hits))
	for _, a := range hits {
		pos, _ := a.Coordinates()
		fmt.Printf("  %-8s %-30s %.6f, %.6f\n", a.ID(), a.Name(), pos.Lat, pos.Lon)
	}

	// Total coverage of the indexed data
	bounds := idx.CoverageBounds()
	fmt.Printf("Coverage: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinLon, bounds.MinLat,
		bounds.MaxLon, bounds.MaxLat)
}
