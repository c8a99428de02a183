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

	// Drop deprecated test airports, then sort by identifier
	removed := collection.RemoveByID("XTST")
	fmt.Printf("Removed %d records\n", removed)

	if err := collection.Sort(apt.SortByID); err != nil {
		log.Fatal(err)
	}

	// Serialize the edited collection back to apt.dat text
	if err := os.WriteFile("apt-sorted.dat", []byte(collection.WriteText()), 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %d airports to apt-sorted.dat\n", collection.Len())

	// A single record also writes as a standalone, parseable file
	if ksea, ok := collection.SearchByID("KSEA"); ok {
		if err := os.WriteFile("KSEA.dat", []byte(ksea.WriteText()), 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Wrote KSEA.dat")
	}
}
