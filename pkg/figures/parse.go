package figures

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrUnknownFigure is returned for an unrecognized figure tag.
var ErrUnknownFigure = errors.New("unknown figure type")

// ErrMissingParameter is returned when a figure description runs out of
// numeric parameters.
var ErrMissingParameter = errors.New("missing parameter")

// ErrUnrecognizedQuadrilateral is returned when five parameters describe
// neither a square, a rectangle nor a rhombus.
var ErrUnrecognizedQuadrilateral = errors.New("unrecognized quadrilateral")

// Parse reads a stream of figure descriptions:
//
//	o <radius>                circle
//	p <side>                  pentagon
//	s <side>                  hexagon
//	c <s1> <s2> <s3> <s4> <angle>  quadrilateral (full form)
//	c <side> <angle>          quadrilateral (shorthand)
//
// The full quadrilateral form is recognized as a square (all sides equal,
// angle 90), a rectangle (opposite sides equal, angle 90) or a rhombus (all
// sides equal); the shorthand yields a square for angle 90 and a rhombus
// otherwise. Angles are given in degrees.
func Parse(args []string) ([]Figure, error) {
	var out []Figure

	i := 0
	for i < len(args) {
		tag := args[i]

		switch tag {
		case "o":
			radius, err := param(args, i+1)
			if err != nil {
				return nil, err
			}
			out = append(out, NewCircle(radius))
			i += 2
		case "p":
			side, err := param(args, i+1)
			if err != nil {
				return nil, err
			}
			out = append(out, NewPentagon(side))
			i += 2
		case "s":
			side, err := param(args, i+1)
			if err != nil {
				return nil, err
			}
			out = append(out, NewHexagon(side))
			i += 2
		case "c":
			fig, consumed, err := parseQuadrilateral(args, i)
			if err != nil {
				return nil, err
			}
			out = append(out, fig)
			i += consumed
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFigure, tag)
		}
	}

	return out, nil
}

func parseQuadrilateral(args []string, i int) (Figure, int, error) {
	remaining := len(args) - i - 1

	if remaining >= 5 && allNumeric(args[i+1:i+6]) {
		fig, err := fullQuadrilateral(args, i)
		return fig, 6, err
	}

	if remaining >= 2 && allNumeric(args[i+1:i+3]) {
		fig, err := shortQuadrilateral(args, i)
		return fig, 3, err
	}

	return nil, 0, fmt.Errorf("%w: quadrilateral takes 2 or 5 parameters", ErrMissingParameter)
}

func fullQuadrilateral(args []string, i int) (Figure, error) {
	b1, _ := param(args, i+1)
	b2, _ := param(args, i+2)
	b3, _ := param(args, i+3)
	b4, _ := param(args, i+4)
	angle, _ := param(args, i+5)

	switch {
	case b1 == b2 && b1 == b3 && b1 == b4 && angle == 90:
		return NewSquare(b1), nil
	case b1 == b3 && b2 == b4 && angle == 90:
		return NewRectangle(b1, b2), nil
	case b1 == b2 && b1 == b3 && b1 == b4:
		return NewRhombus(b1, angle*math.Pi/180), nil
	}

	return nil, ErrUnrecognizedQuadrilateral
}

func shortQuadrilateral(args []string, i int) (Figure, error) {
	side, _ := param(args, i+1)
	angle, _ := param(args, i+2)

	if angle == 90 {
		return NewSquare(side), nil
	}
	return NewRhombus(side, angle*math.Pi/180), nil
}

func param(args []string, index int) (float64, error) {
	if index >= len(args) {
		return 0, ErrMissingParameter
	}
	v, err := strconv.ParseFloat(args[index], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMissingParameter, args[index])
	}
	return v, nil
}

func allNumeric(args []string) bool {
	for _, a := range args {
		if _, err := strconv.ParseFloat(a, 64); err != nil {
			return false
		}
	}
	return true
}
