package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/aptdat/pkg/apt"
)

func main() {
	// Read the file; the parser only ever sees text
	data, err := os.ReadFile("apt.dat")
	if err != nil {
		log.Fatal(err)
	}

	// Create parser and segment the file into airports
	parser := apt.NewParser()
	collection, err := parser.Parse(string(data), "apt.dat")
	if err != nil {
		log.Fatal(err)
	}

	// Print collection info
	fmt.Printf("Source: %s\n", collection.Source())
	fmt.Printf("Version: %d\n", collection.Version())
	fmt.Printf("Airports: %d\n", collection.Len())

	// Look up a single airport by identifier
	if ksea, ok := collection.SearchByID("KSEA"); ok {
		fmt.Printf("%s: %s (%.0f ft)\n", ksea.ID(), ksea.Name(), ksea.ElevationFtAMSL())
		if pos, ok := ksea.Coordinates(); ok {
			fmt.Printf("Position: %.6f, %.6f\n", pos.Lat, pos.Lon)
		}
	}
}
