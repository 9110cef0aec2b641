package tle

import (
	"errors"
	"testing"
	"time"
)

const (
	vanguard1Line1 = "1 00005U 58002B   00179.78495062  .00000023  00000-0  28098-4 0  4753"
	vanguard1Line2 = "2 00005  34.2682 348.7242 1859667 331.7664  19.3264 10.82419157413667"
)

func TestDecodeVanguard1(t *testing.T) {
	rec, err := Decode("VANGUARD 1", vanguard1Line1, vanguard1Line2)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if rec.CatalogNumber != 5 {
		t.Errorf("CatalogNumber = %d, want 5", rec.CatalogNumber)
	}
	if rec.Classification != 'U' {
		t.Errorf("Classification = %q, want 'U'", rec.Classification)
	}
	if rec.InternationalDesignator != "58002B" {
		t.Errorf("InternationalDesignator = %q, want %q", rec.InternationalDesignator, "58002B")
	}
	if got, want := rec.Eccentricity, 0.1859667; got != want {
		t.Errorf("Eccentricity = %v, want %v", got, want)
	}
	if got, want := rec.MeanMotion, 10.82419157; got != want {
		t.Errorf("MeanMotion = %v, want %v", got, want)
	}
	if got, want := rec.InclinationDeg, 34.2682; got != want {
		t.Errorf("InclinationDeg = %v, want %v", got, want)
	}
	if rec.RevolutionNumber != 41366 {
		t.Errorf("RevolutionNumber = %d, want 41366", rec.RevolutionNumber)
	}
}

func TestDecodeEpochYearRollover(t *testing.T) {
	// 00179 -> year 2000 (yy < 57 means 20YY), day-of-year 179 -> June 27.
	rec, err := Decode("", vanguard1Line1, vanguard1Line2)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	want := time.Date(2000, time.June, 27, 0, 0, 0, 0, time.UTC)
	if !rec.Epoch.Truncate(24 * time.Hour).Equal(want) {
		t.Errorf("Epoch date = %v, want %v", rec.Epoch, want)
	}

	// A two-digit year of 57 or above belongs to the 20th century.
	line1 := "1 00005U 58002B   58179.78495062  .00000023  00000-0  28098-4 0  4750"
	rec2, err := Decode("", line1, vanguard1Line2)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if rec2.Epoch.Year() != 1958 {
		t.Errorf("Epoch year = %d, want 1958", rec2.Epoch.Year())
	}
}

func TestDecodeRejectsWrongLineLength(t *testing.T) {
	_, err := Decode("", vanguard1Line1[:68], vanguard1Line2)
	if err == nil {
		t.Fatal("expected error for short line 1")
	}
	var target *BadLineLengthError
	if !errors.As(err, &target) {
		t.Fatalf("error = %v, want *BadLineLengthError", err)
	}
	if target.Line != 1 {
		t.Errorf("Line = %d, want 1", target.Line)
	}
}

func TestDecodeRejectsLinePrefixMismatch(t *testing.T) {
	bad := "2" + vanguard1Line1[1:]
	_, err := Decode("", bad, vanguard1Line2)
	if err == nil {
		t.Fatal("expected error for wrong line 1 prefix")
	}
}

func TestDecodeRejectsCatalogMismatch(t *testing.T) {
	// Swap the catalog number on line 2 only.
	badLine2 := "2 00006  34.2682 348.7242 1859667 331.7664  19.3264 10.82419157413667"
	_, err := Decode("", vanguard1Line1, badLine2)
	if err == nil {
		t.Fatal("expected error for catalog mismatch")
	}
}

func TestDecodeRejectsNonPositiveMeanMotion(t *testing.T) {
	badLine2 := "2 00005  34.2682 348.7242 1859667 331.7664  19.3264  0.00000000413667"
	_, err := Decode("", vanguard1Line1, badLine2)
	if err == nil {
		t.Fatal("expected error for non-positive mean motion")
	}
}

func TestDecodeIgnoresChecksumByDefault(t *testing.T) {
	// Corrupt the trailing checksum digit on line 1; default Decode must
	// not care.
	corrupted := vanguard1Line1[:68] + "9"
	if _, err := Decode("", corrupted, vanguard1Line2); err != nil {
		t.Fatalf("Decode with bad checksum should succeed by default: %v", err)
	}
}

func TestDecodeStrictChecksumRejectsCorruption(t *testing.T) {
	corrupted := vanguard1Line1[:68] + "9"
	_, err := Decode("", corrupted, vanguard1Line2, WithStrictChecksum())
	if err == nil {
		t.Fatal("expected checksum error under WithStrictChecksum")
	}
}

func TestDecodeAlpha5CatalogNumber(t *testing.T) {
	// Alpha-5 encodes catalog numbers above 99999 as a letter followed by
	// four digits; 'A' maps to 10, so "A0005" is catalog 100005.
	line1 := "1 A0005U 58002B   00179.78495062  .00000023  00000-0  28098-4 0  4753"
	line2 := "2 A0005  34.2682 348.7242 1859667 331.7664  19.3264 10.82419157413667"
	rec, err := Decode("", line1, line2)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if rec.CatalogNumber != 100005 {
		t.Errorf("CatalogNumber = %d, want 100005", rec.CatalogNumber)
	}
}
