// Package tle decodes NORAD/CelesTrak Two-Line Element sets into a
// validated TLE record.
//
// A TLE is a fixed-column, implicit-decimal text format: every numeric
// field lives at an exact byte offset, several fields omit their decimal
// point, and the second derivative of mean motion and the BSTAR drag term
// are packed as "implied decimal, scientific notation" (see
// ParseImplicitMantissa in package scalar). Misreading any of these quirks
// silently corrupts every downstream propagated position, so decoding is
// kept in one place and validated strictly on line shape before any field
// is touched.
//
// Decode does not validate the trailing modulo-10 checksum by default: the
// reference implementations this package tracks do not enforce it either,
// and real-world TLE feeds do contain checksum-incorrect-but-otherwise-valid
// lines. Pass WithStrictChecksum to opt in.
package tle

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/anupshinde/sgp4/scalar"
)

// LineLength is the required length, in bytes, of a TLE data line.
const LineLength = 69

// alpha5Letters maps the CelesTrak Alpha-5 NORAD ID letter prefix to its
// numeric value. Alpha-5 extends the classic 5-digit catalog number to
// satellites above 99999; I and O are skipped to avoid confusion with 1
// and 0.
var alpha5Letters = map[byte]int{
	'A': 10, 'B': 11, 'C': 12, 'D': 13, 'E': 14, 'F': 15, 'G': 16, 'H': 17,
	'J': 18, 'K': 19, 'L': 20, 'M': 21, 'N': 22,
	'P': 23, 'Q': 24, 'R': 25, 'S': 26, 'T': 27, 'U': 28, 'V': 29, 'W': 30,
	'X': 31, 'Y': 32, 'Z': 33,
}

// TLE is a decoded, validated Two-Line Element set. It is immutable after
// construction by Decode.
type TLE struct {
	Name                 string
	CatalogNumber        int
	Classification       byte // 'U', 'C', or 'S'; stored verbatim, never validated
	InternationalDesignator string
	Epoch                time.Time

	MeanMotionDotOver2   float64 // rev/day^2
	MeanMotionDdotOver6  float64 // rev/day^3
	Bstar                float64 // dimensionless

	EphemerisType   int
	ElementSetNo    int

	InclinationDeg       float64
	RAANDeg              float64
	Eccentricity         float64
	ArgumentOfPerigeeDeg float64
	MeanAnomalyDeg       float64
	MeanMotion           float64 // rev/day
	RevolutionNumber     int

	Checksum1, Checksum2 int

	Line1, Line2 string
}

// Options configures Decode.
type Options struct {
	// StrictChecksum, when true, requires both lines' modulo-10 checksums
	// to validate. Off by default; see package doc.
	StrictChecksum bool
}

// DecodeOption mutates Options.
type DecodeOption func(*Options)

// WithStrictChecksum enables modulo-10 checksum validation.
func WithStrictChecksum() DecodeOption {
	return func(o *Options) { o.StrictChecksum = true }
}

// Decode parses a TLE from its optional name line and two 69-character data
// lines. Column positions are 0-based and fixed, per the NORAD/CelesTrak TLE
// format.
func Decode(name, line1, line2 string, opts ...DecodeOption) (*TLE, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if len(line1) != LineLength {
		return nil, errors.WithStack(&BadLineLengthError{Line: 1, Got: len(line1)})
	}
	if len(line2) != LineLength {
		return nil, errors.WithStack(&BadLineLengthError{Line: 2, Got: len(line2)})
	}
	if line1[0] != '1' {
		return nil, errors.WithStack(&BadLinePrefixError{Line: 1, Got: line1[0]})
	}
	if line2[0] != '2' {
		return nil, errors.WithStack(&BadLinePrefixError{Line: 2, Got: line2[0]})
	}

	if o.StrictChecksum {
		if c := checksum(line1); c != int(line1[LineLength-1]-'0') {
			return nil, errors.WithStack(&ChecksumError{Line: 1, Want: int(line1[LineLength-1] - '0'), Computed: c})
		}
		if c := checksum(line2); c != int(line2[LineLength-1]-'0') {
			return nil, errors.WithStack(&ChecksumError{Line: 2, Want: int(line2[LineLength-1] - '0'), Computed: c})
		}
	}

	t := &TLE{Name: name, Line1: line1, Line2: line2}

	cat1, err := parseCatalogNumber(scalar.FixedField(line1, 2, 5))
	if err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "catalog_number(line1)", Raw: line1[2:7], Cause: err})
	}
	cat2, err := parseCatalogNumber(scalar.FixedField(line2, 2, 5))
	if err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "catalog_number(line2)", Raw: line2[2:7], Cause: err})
	}
	if cat1 != cat2 {
		return nil, errors.WithStack(&CatalogMismatchError{Line1Catalog: cat1, Line2Catalog: cat2})
	}
	t.CatalogNumber = cat1

	t.Classification = line1[7]
	t.InternationalDesignator = scalar.FixedField(line1, 9, 8)

	epoch, err := parseEpoch(scalar.FixedField(line1, 18, 14))
	if err != nil {
		return nil, errors.WithStack(&BadEpochError{Raw: scalar.FixedField(line1, 18, 14), Cause: err})
	}
	t.Epoch = epoch

	if t.MeanMotionDotOver2, err = strconv.ParseFloat(scalar.FixedField(line1, 33, 10), 64); err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "mean_motion_dot_over_2", Raw: line1[33:43], Cause: err})
	}
	if t.MeanMotionDdotOver6, err = scalar.ParseImplicitMantissa(scalar.FixedField(line1, 44, 8)); err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "mean_motion_ddot_over_6", Raw: line1[44:52], Cause: err})
	}
	if t.Bstar, err = scalar.ParseImplicitMantissa(scalar.FixedField(line1, 53, 8)); err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "bstar", Raw: line1[53:61], Cause: err})
	}

	if eph := scalar.FixedField(line1, 62, 1); eph != "" {
		t.EphemerisType, _ = strconv.Atoi(eph)
	}
	if es := scalar.FixedField(line1, 64, 4); es != "" {
		t.ElementSetNo, _ = strconv.Atoi(es)
	}
	t.Checksum1 = int(line1[LineLength-1] - '0')

	if t.InclinationDeg, err = strconv.ParseFloat(scalar.FixedField(line2, 8, 8), 64); err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "inclination", Raw: line2[8:16], Cause: err})
	}
	if t.RAANDeg, err = strconv.ParseFloat(scalar.FixedField(line2, 17, 8), 64); err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "raan", Raw: line2[17:25], Cause: err})
	}
	eccField := scalar.FixedField(line2, 26, 7)
	eccDigits, err := strconv.ParseFloat("0."+eccField, 64)
	if err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "eccentricity", Raw: line2[26:33], Cause: err})
	}
	t.Eccentricity = eccDigits
	if t.ArgumentOfPerigeeDeg, err = strconv.ParseFloat(scalar.FixedField(line2, 34, 8), 64); err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "argument_of_perigee", Raw: line2[34:42], Cause: err})
	}
	if t.MeanAnomalyDeg, err = strconv.ParseFloat(scalar.FixedField(line2, 43, 8), 64); err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "mean_anomaly", Raw: line2[43:51], Cause: err})
	}
	if t.MeanMotion, err = strconv.ParseFloat(scalar.FixedField(line2, 52, 11), 64); err != nil {
		return nil, errors.WithStack(&BadNumericError{Field: "mean_motion", Raw: line2[52:63], Cause: err})
	}
	if rv := scalar.FixedField(line2, 63, 5); rv != "" {
		t.RevolutionNumber, _ = strconv.Atoi(rv)
	}
	t.Checksum2 = int(line2[LineLength-1] - '0')

	if t.Eccentricity < 0 || t.Eccentricity >= 1 {
		return nil, errors.WithStack(&BadNumericError{Field: "eccentricity", Raw: line2[26:33], Cause: errors.Errorf("eccentricity %v out of range [0,1)", t.Eccentricity)})
	}
	if t.MeanMotion <= 0 {
		return nil, errors.WithStack(&BadNumericError{Field: "mean_motion", Raw: line2[52:63], Cause: errors.Errorf("mean motion %v must be positive", t.MeanMotion)})
	}

	return t, nil
}

// parseCatalogNumber parses a NORAD catalog number in either classic
// 5-digit form or Alpha-5 (letter + 4 digits) form.
func parseCatalogNumber(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty catalog number")
	}
	first := s[0]
	if first >= 'A' && first <= 'Z' {
		prefix, ok := alpha5Letters[first]
		if !ok {
			return 0, errors.Errorf("invalid Alpha-5 letter %q", string(first))
		}
		if len(s) != 5 {
			return 0, errors.Errorf("Alpha-5 catalog number %q must be 5 characters", s)
		}
		rest, err := strconv.Atoi(s[1:])
		if err != nil {
			return 0, err
		}
		return prefix*10000 + rest, nil
	}
	return strconv.Atoi(s)
}

// checksum computes the TLE modulo-10 checksum of the first 68 characters
// of a line: sum of digits, plus one for every '-', mod 10.
func checksum(line string) int {
	sum := 0
	for i := 0; i < LineLength-1; i++ {
		c := line[i]
		switch {
		case c >= '0' && c <= '9':
			sum += int(c - '0')
		case c == '-':
			sum++
		}
	}
	return sum % 10
}

// parseEpoch reconstructs a calendar instant from a TLE epoch field of the
// form YYDDD.DDDDDDDD: a two-digit year and a 1-based, fractional
// day-of-year. Years before 57 are 20YY; 57 and above are 19YY.
func parseEpoch(field string) (time.Time, error) {
	if len(field) < 3 {
		return time.Time{}, errors.Errorf("epoch field %q too short", field)
	}
	yy, err := strconv.Atoi(field[:2])
	if err != nil {
		return time.Time{}, err
	}
	year := yy + 1900
	if yy < 57 {
		year = yy + 2000
	}

	dayOfYear, err := strconv.ParseFloat(field[2:], 64)
	if err != nil {
		return time.Time{}, err
	}
	if dayOfYear < 1 || dayOfYear >= 367 {
		return time.Time{}, errors.Errorf("day of year %v out of range", dayOfYear)
	}

	base := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := time.Duration((dayOfYear - 1) * 24 * float64(time.Hour))
	return base.Add(offset), nil
}
