package figures_test

import (
	"errors"
	"math"
	"testing"

	"github.com/aretw0/abacus/pkg/figures"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCircle(t *testing.T) {
	c := figures.NewCircle(2)
	if !almostEqual(c.Area(), 3.1415*4) {
		t.Errorf("Area() = %f", c.Area())
	}
	if !almostEqual(c.Perimeter(), 2*3.1415*2) {
		t.Errorf("Perimeter() = %f", c.Perimeter())
	}
}

func TestHexagon(t *testing.T) {
	h := figures.NewHexagon(1)
	if !almostEqual(h.Area(), 3*math.Sqrt(3)/2) {
		t.Errorf("Area() = %f", h.Area())
	}
	if !almostEqual(h.Perimeter(), 6) {
		t.Errorf("Perimeter() = %f", h.Perimeter())
	}
}

func TestQuadrilaterals(t *testing.T) {
	sq := figures.NewSquare(3)
	if !almostEqual(sq.Area(), 9) || !almostEqual(sq.Perimeter(), 12) {
		t.Errorf("square: area %f perimeter %f", sq.Area(), sq.Perimeter())
	}

	re := figures.NewRectangle(3, 4)
	if !almostEqual(re.Area(), 12) || !almostEqual(re.Perimeter(), 14) {
		t.Errorf("rectangle: area %f perimeter %f", re.Area(), re.Perimeter())
	}

	rh := figures.NewRhombus(2, math.Pi/6) // 30 degrees
	if !almostEqual(rh.Area(), 2) || !almostEqual(rh.Perimeter(), 8) {
		t.Errorf("rhombus: area %f perimeter %f", rh.Area(), rh.Perimeter())
	}
}

func TestParse(t *testing.T) {
	figs, err := figures.Parse([]string{"o", "1", "c", "2", "2", "2", "2", "90", "s", "5"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(figs) != 3 {
		t.Fatalf("expected 3 figures, got %d", len(figs))
	}
	if figs[0].Name() != "circle" || figs[1].Name() != "square" || figs[2].Name() != "hexagon" {
		t.Errorf("unexpected figures: %s, %s, %s", figs[0].Name(), figs[1].Name(), figs[2].Name())
	}
}

func TestParseQuadrilateralForms(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"c", "2", "3", "2", "3", "90"}, "rectangle"},
		{[]string{"c", "2", "2", "2", "2", "60"}, "rhombus"},
		{[]string{"c", "4", "90"}, "square"},
		{[]string{"c", "4", "45"}, "rhombus"},
	}

	for _, tc := range cases {
		figs, err := figures.Parse(tc.args)
		if err != nil {
			t.Fatalf("Parse(%v) failed: %v", tc.args, err)
		}
		if figs[0].Name() != tc.want {
			t.Errorf("Parse(%v) = %s, want %s", tc.args, figs[0].Name(), tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		args []string
		want error
	}{
		{[]string{"x", "1"}, figures.ErrUnknownFigure},
		{[]string{"o"}, figures.ErrMissingParameter},
		{[]string{"o", "abc"}, figures.ErrMissingParameter},
		{[]string{"c", "1"}, figures.ErrMissingParameter},
		{[]string{"c", "1", "2", "3", "4", "45"}, figures.ErrUnrecognizedQuadrilateral},
	}

	for _, tc := range cases {
		_, err := figures.Parse(tc.args)
		if !errors.Is(err, tc.want) {
			t.Errorf("Parse(%v) = %v, want %v", tc.args, err, tc.want)
		}
	}
}
