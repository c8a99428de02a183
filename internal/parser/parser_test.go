package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sampleAptDat is a canonical three-airport file: a land airport with
// metadata and a runway, a seaplane base, and a heliport without any
// runway-like line.
const sampleAptDat = `I
1100 Generated by WorldEditor

1 19 1 0 KBOS Gen Edward Lawrence Logan Intl
1302 city Boston
1302 country United States
1302 icao_code KBOS
100 46.02 1 0 0.25 1 3 2 04R 42.354462 -71.006000 355.0 0.0 2 3 1 2 22L 42.371044 -70.992505 0.0 0.0 2 3 1 2
20 42.357 -71.001 270.0 1 3 {@Y}04R-22L
53 12190 GND
54 12870 TWR
1000 Northeast flow
1200

16 0 0 0 SEAP Lakeview Seaplane Base
101 49 1 08 35.044209 -106.598557 26 35.051813 -106.590641

17 12 0 0 HELI Mercy Hospital Heliport
99
`

func parseSample(t *testing.T) *File {
	t.Helper()
	file, err := NewParser().Parse(sampleAptDat, "sample.dat")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return file
}

func TestParseSample(t *testing.T) {
	file := parseSample(t)

	if file.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", file.Len())
	}
	if file.Version != 1100 {
		t.Errorf("Version = %d, want 1100", file.Version)
	}
	if file.Source != "sample.dat" {
		t.Errorf("Source = %q", file.Source)
	}
	if file.Ordering != OrderingFile {
		t.Errorf("Ordering = %q, want %q", file.Ordering, OrderingFile)
	}
	if len(file.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", file.Warnings)
	}
	if len(file.HeaderLines) != 2 {
		t.Fatalf("len(HeaderLines) = %d, want 2", len(file.HeaderLines))
	}

	wantIDs := []string{"KBOS", "SEAP", "HELI"}
	var gotIDs []string
	for id := range file.IDs() {
		gotIDs = append(gotIDs, id)
	}
	if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHeaderFields(t *testing.T) {
	file := parseSample(t)
	apt := file.At(0)

	if apt.Name != "Gen Edward Lawrence Logan Intl" {
		t.Errorf("Name = %q", apt.Name)
	}
	if apt.ID != "KBOS" {
		t.Errorf("ID = %q", apt.ID)
	}
	if !apt.HasATC {
		t.Error("HasATC should be true for tower flag 1")
	}
	if apt.ElevationFtAMSL != 19 {
		t.Errorf("ElevationFtAMSL = %f, want 19", apt.ElevationFtAMSL)
	}
	if apt.Kind != AirportKindLand {
		t.Errorf("Kind = %v, want land airport", apt.Kind)
	}
	if apt.Version != 1100 {
		t.Errorf("Version = %d, want 1100", apt.Version)
	}

	sea := file.At(1)
	if sea.Kind != AirportKindSeaplaneBase || sea.HasATC {
		t.Errorf("seaplane base parsed wrong: kind=%v atc=%v", sea.Kind, sea.HasATC)
	}
	heli := file.At(2)
	if heli.Kind != AirportKindHeliport || heli.ElevationFtAMSL != 12 {
		t.Errorf("heliport parsed wrong: kind=%v elev=%f", heli.Kind, heli.ElevationFtAMSL)
	}
}

func TestParseLineRanges(t *testing.T) {
	file := parseSample(t)

	// Every record starts with its own header line; blank separator lines
	// belong to the preceding record.
	for i, apt := range file.Airports {
		if len(apt.Lines) == 0 || !apt.Lines[0].IsAirportHeader() {
			t.Fatalf("record %d does not start with a header line", i)
		}
		for _, line := range apt.Lines[1:] {
			if line.IsAirportHeader() {
				t.Fatalf("record %d contains a second header line", i)
			}
		}
	}

	// KBOS: header + 3 metadata + runway + sign + 2 freq + flow + taxi
	// route header + trailing blank separator.
	if got := len(file.At(0).Lines); got != 11 {
		t.Errorf("KBOS line count = %d, want 11", got)
	}
	// Heliport: header only (the terminator belongs to no record).
	if got := len(file.At(2).Lines); got != 1 {
		t.Errorf("HELI line count = %d, want 1", got)
	}
}

func TestParseMetadataRows(t *testing.T) {
	apt := parseSample(t).At(0)

	want := map[MetadataKey]string{
		MetadataCity:     "Boston",
		MetadataCountry:  "United States",
		MetadataICAOCode: "KBOS",
	}
	if diff := cmp.Diff(want, apt.Metadata); diff != "" {
		t.Errorf("Metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConsecutiveHeaders(t *testing.T) {
	text := "I\n1100 Generated by WorldEditor\n\n" +
		"1 10 0 0 AAAA First\n" +
		"1 20 0 0 BBBB Second\n" +
		"100 46.02 1 0 0.25 1 3 2 04 1.0 2.0 0 0 2 3 1 2 22 1.0 2.0 0 0 2 3 1 2\n" +
		"99\n"

	file, err := NewParser().Parse(text, "pair.dat")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if file.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", file.Len())
	}
	if got := len(file.At(0).Lines); got != 1 {
		t.Errorf("first record should hold only its header line, got %d lines", got)
	}
	if got := len(file.At(1).Lines); got != 2 {
		t.Errorf("second record line count = %d, want 2", got)
	}
}

func TestParseNoAirports(t *testing.T) {
	file, err := NewParser().Parse("I\n1100 Generated by WorldEditor\n\n99\n", "empty.dat")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if file.Len() != 0 {
		t.Errorf("Len() = %d, want 0", file.Len())
	}
	if len(file.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", file.Warnings)
	}
}

func TestParsePostTerminatorIgnored(t *testing.T) {
	text := "I\n1100 Generated by WorldEditor\n\n" +
		"1 10 0 0 AAAA First\n" +
		"99\n" +
		"1 20 0 0 BBBB Ghost\n"

	file, err := NewParser().Parse(text, "trailing.dat")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if file.Len() != 1 {
		t.Fatalf("Len() = %d, want 1: lines after 99 must be dropped", file.Len())
	}
	if _, ok := file.SearchByID("BBBB"); ok {
		t.Error("record after terminator should not exist")
	}
}

func TestParseWarnings(t *testing.T) {
	t.Run("orphan line", func(t *testing.T) {
		text := "I\n1100 Generated by WorldEditor\n\n" +
			"100 46.02 1 0 0.25 1 3 2 04 1.0 2.0 0 0 2 3 1 2 22 1.0 2.0 0 0 2 3 1 2\n" +
			"1 10 0 0 AAAA First\n99\n"
		file, err := NewParser().Parse(text, "orphan.dat")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if file.Len() != 1 {
			t.Errorf("Len() = %d, want 1", file.Len())
		}
		var orphan *ErrOrphanLine
		if !findWarning(file, &orphan) {
			t.Fatalf("want ErrOrphanLine in warnings, got %v", file.Warnings)
		}
		if orphan.LineNo != 4 {
			t.Errorf("orphan LineNo = %d, want 4", orphan.LineNo)
		}
	})

	t.Run("missing terminator", func(t *testing.T) {
		text := "I\n1100 Generated by WorldEditor\n\n1 10 0 0 AAAA First\n"
		file, err := NewParser().Parse(text, "unterminated.dat")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if file.Len() != 1 {
			t.Errorf("unterminated file should still yield its record, got %d", file.Len())
		}
		var missing *ErrMissingTerminator
		if !findWarning(file, &missing) {
			t.Fatalf("want ErrMissingTerminator in warnings, got %v", file.Warnings)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		text := "I\n1100 Generated by WorldEditor\n\n1 10 0\n1 20 0 0 BBBB Second\n99\n"
		file, err := NewParser().Parse(text, "short.dat")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if file.Len() != 1 {
			t.Errorf("Len() = %d, want 1: malformed record dropped, later record kept", file.Len())
		}
		var malformed *ErrMalformedHeader
		if !findWarning(file, &malformed) {
			t.Fatalf("want ErrMalformedHeader in warnings, got %v", file.Warnings)
		}
	})
}

func TestParseStrict(t *testing.T) {
	opts := ParseOptions{DefaultVersion: 1100, Strict: true}
	text := "I\n1100 Generated by WorldEditor\n\n1 10 0\n99\n"

	_, err := NewParser().ParseWithOptions(text, "short.dat", opts)
	var malformed *ErrMalformedHeader
	if !errors.As(err, &malformed) {
		t.Fatalf("Strict parse error = %v, want ErrMalformedHeader", err)
	}
}

func TestParseWithoutPreamble(t *testing.T) {
	text := "1 10 0 0 AAAA First\n99\n"
	file, err := NewParser().Parse(text, "bare.dat")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if file.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", file.Len())
	}
	if file.Version != 1100 {
		t.Errorf("Version = %d, want default 1100", file.Version)
	}
	if len(file.HeaderLines) != 0 {
		t.Errorf("HeaderLines should be empty without preamble magic")
	}
}

func TestParseCRLFInput(t *testing.T) {
	crlf := strings.ReplaceAll(sampleAptDat, "\n", "\r\n")
	file, err := NewParser().Parse(crlf, "crlf.dat")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if file.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", file.Len())
	}
	if got := file.At(0).Name; got != "Gen Edward Lawrence Logan Intl" {
		t.Errorf("Name = %q: CR residue should be normalized away", got)
	}
}

func TestAirportFromString(t *testing.T) {
	apt, err := AirportFromString("1 19 1 0 KBOS Logan Intl\n53 12190 GND", "slab.dat", 1100)
	if err != nil {
		t.Fatalf("AirportFromString failed: %v", err)
	}
	if apt.ID != "KBOS" || len(apt.Lines) != 2 {
		t.Errorf("got id=%q lines=%d", apt.ID, len(apt.Lines))
	}

	_, err = AirportFromString("53 12190 GND", "slab.dat", 1100)
	var notAirport *ErrNotAnAirport
	if !errors.As(err, &notAirport) {
		t.Fatalf("headerless slab error = %v, want ErrNotAnAirport", err)
	}

	twoHeaders := "1 10 0 0 AAAA First\n1 20 0 0 BBBB Second"
	if _, err := AirportFromString(twoHeaders, "slab.dat", 1100); err == nil {
		t.Error("two headers in one slab should be rejected")
	}
}

func TestAppendLine(t *testing.T) {
	apt, err := AirportFromString("1 19 1 0 KBOS Logan Intl", "slab.dat", 1100)
	if err != nil {
		t.Fatalf("AirportFromString failed: %v", err)
	}

	apt.AppendLine("1302 city Boston")
	apt.AppendLine("53 12190 GND")

	if len(apt.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(apt.Lines))
	}
	if apt.Metadata[MetadataCity] != "Boston" {
		t.Errorf("appended metadata row not reflected: %v", apt.Metadata)
	}
	if !apt.HasCommFreq() {
		t.Error("appended frequency row not visible to feature scan")
	}
}

// findWarning scans the parse warnings for one matching target's type,
// errors.As style.
func findWarning(file *File, target any) bool {
	for _, w := range file.Warnings {
		if errors.As(w, target) {
			return true
		}
	}
	return false
}
