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

	// Airports with full ATC interaction: tower plus radio frequencies
	towered := collection.SearchByPredicate(func(a *apt.Airport) bool {
		return a.HasATC() && a.HasCommFreq()
	})
	fmt.Printf("%d airports with ATC and comm frequencies\n", len(towered))

	// Airports with routed ground traffic
	routed := collection.SearchByPredicate(func(a *apt.Airport) bool {
		return a.HasGroundRoutes()
	})
	fmt.Printf("%d airports with ground routes\n", len(routed))

	// Heliports only, via the header kind
	heliports := collection.SearchByPredicate(func(a *apt.Airport) bool {
		return a.Kind() == apt.AirportKindHeliport
	})
	fmt.Printf("%d heliports\n", len(heliports))

	// Arbitrary row codes work too: 102 is a standalone helipad
	withHelipads := collection.SearchByPredicate(func(a *apt.Airport) bool {
		return a.HasRowCode(102)
	})
	for _, a := range withHelipads {
		fmt.Printf("  %-8s %s\n", a.ID(), a.Name())
	}
}
