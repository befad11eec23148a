// Package roman converts between Arabic integers and canonical Roman numerals.
//
// Encoding is a greedy descent over a fixed symbol table that includes the
// subtractive pairs (IV, IX, XL, XC, CD, CM), so the concatenation it produces
// is always the canonical form. Decoding scans left to right with a two-glyph
// lookahead and then validates well-formedness by re-encoding the sum and
// comparing it to the input: any non-canonical string (IIII, VX, out-of-order
// runs) fails to reproduce itself.
//
// All functions are pure and safe for concurrent use.
package roman

import (
	"fmt"
	"strings"
)

// Max is the largest encodable value. Strictly, 3999 is the ceiling under the
// one-symbol-repeat convention, but the reference accepts 4000 ("MMMM") and
// the round-trip property still holds for it, so we keep the bound.
const Max = 4000

type symbol struct {
	value int
	glyph string
}

// symbols is the fixed table, strictly descending by value. Greedy
// decomposition against it yields the canonical form for every value in
// [1, Max].
var symbols = [13]symbol{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// glyphValues maps every table entry (single glyphs and subtractive pairs) to
// its value, replacing the original's linear scans.
var glyphValues = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for _, s := range symbols {
		m[s.glyph] = s.value
	}
	return m
}()

// ToRoman encodes n as a canonical Roman numeral.
// It returns ErrOutOfRange when n is outside (0, Max].
func ToRoman(n int) (string, error) {
	if n <= 0 || n > Max {
		return "", fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, n, Max)
	}

	var b strings.Builder
	for _, s := range symbols {
		for s.value <= n {
			n -= s.value
			b.WriteString(s.glyph)
		}
	}
	return b.String(), nil
}

// FromRoman decodes a Roman numeral into its integer value. Input is
// uppercased before parsing. It returns ErrEmptyInput for the empty string and
// ErrInvalidNumeral for illegal characters or non-canonical forms.
func FromRoman(s string) (int, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}

	s = strings.ToUpper(s)

	if !IsRoman(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumeral, s)
	}

	sum := 0
	for i := 0; i < len(s); i++ {
		value := glyphValues[s[i:i+1]]

		// Prefer the subtractive pair when the next glyph forms one.
		if i+1 < len(s) {
			if pair, ok := glyphValues[s[i:i+2]]; ok {
				value = pair
				i++
			}
		}
		sum += value
	}

	// Round-trip validation: the greedy encoder only ever produces canonical
	// forms, so a mismatch means the input was not one.
	encoded, err := ToRoman(sum)
	if err != nil || encoded != s {
		return 0, fmt.Errorf("%w: %q is not canonical", ErrInvalidNumeral, s)
	}

	return sum, nil
}

// IsRoman reports whether s consists entirely of Roman glyphs (IVXLCDM,
// case-insensitive). The empty string is trivially valid.
func IsRoman(s string) bool {
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'I', 'V', 'X', 'L', 'C', 'D', 'M':
		default:
			return false
		}
	}
	return true
}

// IsArabicDigits reports whether s consists entirely of ASCII digits. The
// empty string is trivially valid.
func IsArabicDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
