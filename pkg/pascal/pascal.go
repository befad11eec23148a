// Package pascal computes single rows of Pascal's triangle.
//
// A row is built recursively from the row above it, mirroring the definition:
// every element is the sum of the two neighbours one row up, with ones on the
// edges.
package pascal

import (
	"errors"
	"fmt"
)

// ErrNegativeRow is returned when a row index below zero is requested.
var ErrNegativeRow = errors.New("negative row number")

// ErrIndexOutOfRange is returned when an element outside the row is requested.
var ErrIndexOutOfRange = errors.New("index out of range")

// Row is the n-th row of Pascal's triangle (row 0 is [1]).
type Row struct {
	n      int
	values []int
}

// NewRow computes the n-th row.
func NewRow(n int) (*Row, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRow, n)
	}

	r := &Row{n: n, values: make([]int, n+1)}
	r.compute(n)
	return r, nil
}

func (r *Row) compute(n int) {
	if n == 0 {
		r.values[0] = 1
		return
	}
	if n == 1 {
		r.values[0] = 1
		r.values[1] = 1
		return
	}

	// n is non-negative here, NewRow cannot fail.
	previous, _ := NewRow(n - 1)

	for i := 0; i <= n; i++ {
		if i == 0 || i == n {
			r.values[i] = 1
		} else {
			r.values[i] = previous.values[i-1] + previous.values[i]
		}
	}
}

// N returns the row number.
func (r *Row) N() int {
	return r.n
}

// Element returns the m-th element of the row.
// It returns ErrIndexOutOfRange when m is outside [0, N()].
func (r *Row) Element(m int) (int, error) {
	if m < 0 || m >= len(r.values) {
		return 0, fmt.Errorf("%w: %d not in 0..%d", ErrIndexOutOfRange, m, r.n)
	}
	return r.values[m], nil
}

// Values returns a copy of the row's elements.
func (r *Row) Values() []int {
	out := make([]int, len(r.values))
	copy(out, r.values)
	return out
}
