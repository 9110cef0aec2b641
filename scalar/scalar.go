// Package scalar provides the low-level numeric primitives shared by the
// TLE decoder and the propagator: angle normalization, fixed-column field
// extraction, and TLE's implicit-decimal scientific notation.
package scalar

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const twoPi = 2 * math.Pi

// NormalizeTwoPi reduces x into [0, 2*pi) by a single floating-point modulo.
// It is idempotent: NormalizeTwoPi(NormalizeTwoPi(x)) == NormalizeTwoPi(x).
func NormalizeTwoPi(x float64) float64 {
	y := math.Mod(x, twoPi)
	if y < 0 {
		y += twoPi
	}
	return y
}

// FixedField extracts the substring of line starting at the 0-based byte
// column for length bytes, trimming surrounding whitespace. It panics if
// the requested range runs past the end of line, since TLE line length is
// validated by the caller before any field is extracted.
func FixedField(line string, column, length int) string {
	end := column + length
	return strings.TrimSpace(line[column:end])
}

// ParseImplicitMantissa decodes a TLE-packed scientific number of the form
// "sDDDDDsE": a mantissa with an implicit leading decimal point followed by
// a single signed exponent digit. For example " 81062-5" decodes to
// 0.81062e-5, and "-11606-4" decodes to -0.11606e-4. The field may be
// space-padded; a sign is recognized only at position 0 of the trimmed
// field; parsing stops at the exponent's sign character.
func ParseImplicitMantissa(field string) (float64, error) {
	s := strings.TrimSpace(field)
	if s == "" {
		return 0, nil
	}

	mantissaSign := 1.0
	i := 0
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			mantissaSign = -1.0
		}
		i = 1
	}

	// The exponent sign is the last '+' or '-' in the field.
	expIdx := -1
	for j := len(s) - 1; j >= i; j-- {
		if s[j] == '+' || s[j] == '-' {
			expIdx = j
			break
		}
	}
	if expIdx == -1 || expIdx == i {
		return 0, &strconv.NumError{Func: "ParseImplicitMantissa", Num: field, Err: strconv.ErrSyntax}
	}

	digits := s[i:expIdx]
	expStr := s[expIdx:]

	mantissa, err := strconv.ParseFloat("0."+digits, 64)
	if err != nil {
		return 0, err
	}
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		return 0, err
	}

	return mantissaSign * mantissa * math.Pow(10, float64(exp)), nil
}

// JulianDate converts a UTC instant to a Julian date, via Meeus's
// Gregorian-calendar formula for the day number plus a fractional part
// for the time of day.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	y, m, d := t.Date()
	year, month, day := y, int(m), d
	if month <= 2 {
		year--
		month += 12
	}
	a := year / 100
	b := 2 - a + a/4
	jd := math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + float64(b) - 1524.5

	dayFrac := (float64(t.Hour()) + float64(t.Minute())/60.0 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600.0) / 24.0
	return jd + dayFrac
}
