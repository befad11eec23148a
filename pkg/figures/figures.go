// Package figures computes areas and perimeters of simple plane figures.
//
// The formulas intentionally reproduce the reference behavior, including its
// approximations (π taken as 3.1415 for circles, the pentagon area written
// exactly as in the source). Behavioral compatibility beats mathematical
// polish here.
package figures

import "math"

// pi matches the reference's constant rather than math.Pi.
const pi = 3.1415

// Figure is any plane figure that can report its area and perimeter.
type Figure interface {
	Name() string
	Area() float64
	Perimeter() float64
}

// Circle is described by its radius.
type Circle struct {
	Radius float64
}

func NewCircle(radius float64) Circle { return Circle{Radius: radius} }

func (c Circle) Name() string       { return "circle" }
func (c Circle) Area() float64      { return pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * pi * c.Radius }

// Pentagon is a regular pentagon with the given side.
type Pentagon struct {
	Side float64
}

func NewPentagon(side float64) Pentagon { return Pentagon{Side: side} }

func (p Pentagon) Name() string { return "pentagon" }

func (p Pentagon) Area() float64 {
	return math.Sqrt(5*(5+2*math.Sqrt(2))*p.Side*p.Side) / 4
}

func (p Pentagon) Perimeter() float64 { return 5 * p.Side }

// Hexagon is a regular hexagon with the given side.
type Hexagon struct {
	Side float64
}

func NewHexagon(side float64) Hexagon { return Hexagon{Side: side} }

func (h Hexagon) Name() string       { return "hexagon" }
func (h Hexagon) Area() float64      { return 3 * math.Sqrt(3) * h.Side * h.Side / 2 }
func (h Hexagon) Perimeter() float64 { return 6 * h.Side }

// quadrilateral carries the four sides shared by all quadrilateral figures;
// the perimeter is always their sum.
type quadrilateral struct {
	a, b, c, d float64
}

func (q quadrilateral) Perimeter() float64 { return q.a + q.b + q.c + q.d }

// Square has four equal sides and right angles.
type Square struct {
	quadrilateral
	Side float64
}

func NewSquare(side float64) Square {
	return Square{
		quadrilateral: quadrilateral{side, side, side, side},
		Side:          side,
	}
}

func (s Square) Name() string  { return "square" }
func (s Square) Area() float64 { return s.Side * s.Side }

// Rectangle has two pairs of equal sides and right angles.
type Rectangle struct {
	quadrilateral
	SideA, SideB float64
}

func NewRectangle(a, b float64) Rectangle {
	return Rectangle{
		quadrilateral: quadrilateral{a, b, a, b},
		SideA:         a,
		SideB:         b,
	}
}

func (r Rectangle) Name() string  { return "rectangle" }
func (r Rectangle) Area() float64 { return r.SideA * r.SideB }

// Rhombus has four equal sides and an interior angle in radians.
type Rhombus struct {
	quadrilateral
	Side  float64
	Angle float64
}

func NewRhombus(side, angle float64) Rhombus {
	return Rhombus{
		quadrilateral: quadrilateral{side, side, side, side},
		Side:          side,
		Angle:         angle,
	}
}

func (r Rhombus) Name() string  { return "rhombus" }
func (r Rhombus) Area() float64 { return r.Side * r.Side * math.Sin(r.Angle) }
