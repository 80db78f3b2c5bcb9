package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for quantity parsing.
var (
	// ErrQuantityEmpty indicates an empty (or all-blank) quantity string.
	ErrQuantityEmpty = errors.New("units: empty quantity")

	// ErrQuantitySyntax indicates the numeric part of a quantity cannot be parsed.
	ErrQuantitySyntax = errors.New("units: malformed quantity")

	// ErrUnknownSuffix indicates a trailing suffix that is neither a known
	// SI prefix nor a known unit word.
	ErrUnknownSuffix = errors.New("units: unrecognized suffix")
)

// unitWords are stripped from the end of a quantity before prefix handling,
// first match wins, so longer words must come first ("Ohms" before "s").
// mil converts to the inch length base used by the device models.
var unitWords = []struct {
	word  string
	scale float64
}{
	{"Ohms", 1},
	{"Ohm", 1},
	{"ohms", 1},
	{"ohm", 1},
	{"mil", 1e-3},
	{"Hz", 1},
	{"in", 1},
	{"F", 1},
	{"H", 1},
	{"V", 1},
	{"A", 1},
	{"s", 1},
}

// siPrefixes maps a single-letter SI magnitude prefix to its scale.
var siPrefixes = map[byte]float64{
	'p': 1e-12,
	'n': 1e-9,
	'u': 1e-6,
	'm': 1e-3,
	'k': 1e3,
	'M': 1e6,
	'G': 1e9,
}

// Parse converts a quantity string into a float64.
//
// The unit word (if any) is stripped first, then a single SI prefix letter,
// and the remaining text must parse as a floating-point number:
//
//	Parse("100nF")  // 1e-7, nil
//	Parse("10mil")  // 0.01, nil
//	Parse("89.8")   // 89.8, nil
//
// Errors: ErrQuantityEmpty, ErrUnknownSuffix, ErrQuantitySyntax.
func Parse(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, ErrQuantityEmpty
	}

	scale := 1.0
	for _, u := range unitWords {
		// Require a non-empty numeric head so "Ohm" alone stays malformed.
		if strings.HasSuffix(t, u.word) && len(t) > len(u.word) {
			t = t[:len(t)-len(u.word)]
			scale = u.scale
			break
		}
	}
	if len(t) > 1 {
		if mult, ok := siPrefixes[t[len(t)-1]]; ok {
			t = t[:len(t)-1]
			scale *= mult
		}
	}

	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		if i := trailingLetters(t); i < len(t) {
			if _, numErr := strconv.ParseFloat(t[:i], 64); numErr == nil {
				return 0, fmt.Errorf("%w: %q", ErrUnknownSuffix, s)
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrQuantitySyntax, s)
	}

	return v * scale, nil
}

// MustParse is Parse for literals: it panics on malformed input.
func MustParse(s string) float64 {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// trailingLetters returns the index where the trailing run of ASCII letters
// begins, or len(s) if there is none.
func trailingLetters(s string) int {
	i := len(s)
	for i > 0 && isLetter(s[i-1]) {
		i--
	}
	return i
}

// isLetter reports whether b is an ASCII letter.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
