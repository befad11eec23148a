package roman_test

import (
	"errors"
	"testing"

	"github.com/aretw0/abacus/pkg/roman"
)

func TestToRoman(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{90, "XC"},
		{400, "CD"},
		{900, "CM"},
		{1994, "MCMXCIV"},
		{2024, "MMXXIV"},
		{3999, "MMMCMXCIX"},
		{4000, "MMMM"},
	}

	for _, tc := range cases {
		got, err := roman.ToRoman(tc.in)
		if err != nil {
			t.Fatalf("ToRoman(%d) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ToRoman(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToRomanOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 4001, 100000} {
		_, err := roman.ToRoman(n)
		if !errors.Is(err, roman.ErrOutOfRange) {
			t.Errorf("ToRoman(%d) = %v, want ErrOutOfRange", n, err)
		}
	}
}

func TestFromRoman(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"I", 1},
		{"IV", 4},
		{"MCMXCIV", 1994},
		{"mcmxciv", 1994}, // lowercase is normalized
		{"MMMCMXCIX", 3999},
		{"MMMM", 4000},
	}

	for _, tc := range cases {
		got, err := roman.FromRoman(tc.in)
		if err != nil {
			t.Fatalf("FromRoman(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("FromRoman(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFromRomanEmpty(t *testing.T) {
	_, err := roman.FromRoman("")
	if !errors.Is(err, roman.ErrEmptyInput) {
		t.Errorf("FromRoman(\"\") = %v, want ErrEmptyInput", err)
	}
}

func TestFromRomanInvalid(t *testing.T) {
	// Illegal characters and non-canonical forms are the same error kind.
	for _, in := range []string{"abc", "XYZ", "IIII", "VX", "IC", "IM", "XM", "VV", "LL", "DD", "IXIX"} {
		_, err := roman.FromRoman(in)
		if !errors.Is(err, roman.ErrInvalidNumeral) {
			t.Errorf("FromRoman(%q) = %v, want ErrInvalidNumeral", in, err)
		}
	}
}

// Round-trip identity over the full encodable range.
func TestRoundTrip(t *testing.T) {
	for n := 1; n <= roman.Max; n++ {
		s, err := roman.ToRoman(n)
		if err != nil {
			t.Fatalf("ToRoman(%d) failed: %v", n, err)
		}
		back, err := roman.FromRoman(s)
		if err != nil {
			t.Fatalf("FromRoman(%q) failed: %v", s, err)
		}
		if back != n {
			t.Fatalf("round trip %d -> %q -> %d", n, s, back)
		}
	}
}

func TestIsRoman(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"MCMXCIV", true},
		{"iv", true},
		{"", true}, // vacuously valid, matches the reference
		{"XYZ", false},
		{"12", false},
		{"M M", false},
	}

	for _, tc := range cases {
		if got := roman.IsRoman(tc.in); got != tc.want {
			t.Errorf("IsRoman(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsArabicDigits(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"12", true},
		{"0", true},
		{"", true}, // vacuously valid, matches the reference
		{"12a", false},
		{"-1", false},
		{"1.5", false},
	}

	for _, tc := range cases {
		if got := roman.IsArabicDigits(tc.in); got != tc.want {
			t.Errorf("IsArabicDigits(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
