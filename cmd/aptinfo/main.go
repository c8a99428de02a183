// Command aptinfo parses an X-Plane apt.dat file and prints a per-airport
// summary: identifier, name, kind, elevation, derived coordinates, and
// which ATC-related features each airport carries. It can also sort the
// collection and rewrite the file.
//
// Usage:
//
//	aptinfo -input apt.dat [-sort id] [-output sorted.dat]
//	aptinfo -config aptinfo.yml
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/beetlebugorg/aptdat/pkg/apt"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	fs := flag.NewFlagSet("aptinfo", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file; flags below override it")
	inputPath := fs.String("input", "", "apt.dat file to inspect")
	sortKey := fs.String("sort", "", "sort records by key: name, id, or elevation")
	outputPath := fs.String("output", "", "rewrite the parsed file here")
	strict := fs.Bool("strict", false, "treat malformed input as fatal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := &AppConfig{}
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *sortKey != "" {
		cfg.Output.Sort = *sortKey
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}
	if *strict {
		cfg.Input.Strict = true
	}
	if cfg.Input.Path == "" {
		return fmt.Errorf("no input file: pass -input or a config with input.path")
	}
	if err := ValidateConfig(cfg); err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	// All I/O happens here; the parser only ever sees text.
	data, err := os.ReadFile(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	opts := apt.DefaultParseOptions()
	opts.DefaultVersion = cfg.Input.DefaultVersion
	opts.Strict = cfg.Input.Strict

	collection, err := apt.NewParser().ParseWithOptions(string(data), cfg.Input.Path, opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.Input.Path, err)
	}

	slog.Info("parsed apt.dat",
		"source", collection.Source(),
		"version", collection.Version(),
		"airports", collection.Len())
	for _, warn := range collection.Warnings() {
		slog.Warn("malformed input", "detail", warn)
	}

	if cfg.Output.Sort != "" {
		if err := collection.Sort(cfg.Output.Sort); err != nil {
			return err
		}
		slog.Info("sorted collection", "key", cfg.Output.Sort)
	}

	if err := printSummary(outW, collection, cfg.Viewport); err != nil {
		return err
	}

	if cfg.Output.Path != "" {
		if err := os.WriteFile(cfg.Output.Path, []byte(collection.WriteText()), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		slog.Info("rewrote file", "path", cfg.Output.Path)
	}

	return nil
}

// printSummary writes one line per airport, optionally restricted to a
// viewport via the spatial index.
func printSummary(w io.Writer, collection *apt.Collection, viewport *ViewportConfig) error {
	airports := make([]*apt.Airport, 0, collection.Len())
	if viewport != nil {
		idx := apt.BuildAirportIndex(collection)
		airports = idx.Query(apt.Bounds{
			MinLon: viewport.MinLon,
			MaxLon: viewport.MaxLon,
			MinLat: viewport.MinLat,
			MaxLat: viewport.MaxLat,
		})
		slog.Info("viewport query", "indexed", idx.Count(), "matched", len(airports))
	} else {
		for i := 0; i < collection.Len(); i++ {
			airports = append(airports, collection.At(i))
		}
	}

	for _, a := range airports {
		position := "no position"
		if pos, ok := a.Coordinates(); ok {
			position = fmt.Sprintf("%.6f, %.6f", pos.Lat, pos.Lon)
		}
		if _, err := fmt.Fprintf(w, "%-8s %-13s %6.0fft  %-22s %s  [%s]\n",
			a.ID(), a.Kind(), a.ElevationFtAMSL(), position, a.Name(), featureTags(a)); err != nil {
			return err
		}
	}
	return nil
}

// featureTags renders the airport's feature predicates as a short tag list.
func featureTags(a *apt.Airport) string {
	var tags []string
	if a.HasATC() {
		tags = append(tags, "atc")
	}
	if a.HasCommFreq() {
		tags = append(tags, "freq")
	}
	if a.HasTaxiway() {
		tags = append(tags, "taxiway")
	}
	if a.HasTaxiRoute() {
		tags = append(tags, "taxi-route")
	}
	if a.HasTrafficFlow() {
		tags = append(tags, "flow")
	}
	if a.HasGroundRoutes() {
		tags = append(tags, "ground-routes")
	}
	if a.HasTaxiwaySign() {
		tags = append(tags, "signs")
	}
	if len(tags) == 0 {
		return "none"
	}
	return strings.Join(tags, " ")
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
