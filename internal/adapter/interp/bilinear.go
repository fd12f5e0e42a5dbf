// Package interp provides bilinear interpolation over regular lat/lon grids.
package interp

import (
	"fmt"
	"math"
	"sort"
)

// Grid2D is a regular 2D grid sampled on strictly increasing axes.
// Values[i][j] is the sample at (X[j], Y[i]).
type Grid2D struct {
	X      []float64 // X coordinates (e.g., longitudes).
	Y      []float64 // Y coordinates (e.g., latitudes).
	Values [][]float64
}

// Validate checks axis lengths, ordering and the value matrix shape.
func (g *Grid2D) Validate() error {
	if len(g.X) < 2 {
		return fmt.Errorf("grid must have at least 2 X coordinates")
	}
	if len(g.Y) < 2 {
		return fmt.Errorf("grid must have at least 2 Y coordinates")
	}
	if len(g.Values) != len(g.Y) {
		return fmt.Errorf("number of value rows (%d) must match Y coordinates (%d)", len(g.Values), len(g.Y))
	}
	for i, row := range g.Values {
		if len(row) != len(g.X) {
			return fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(g.X))
		}
	}
	for i := 1; i < len(g.X); i++ {
		if g.X[i] <= g.X[i-1] {
			return fmt.Errorf("X coordinates must be strictly increasing")
		}
	}
	for i := 1; i < len(g.Y); i++ {
		if g.Y[i] <= g.Y[i-1] {
			return fmt.Errorf("Y coordinates must be strictly increasing")
		}
	}
	return nil
}

// cellIndex locates the interval [axis[i], axis[i+1]] containing v.
func cellIndex(axis []float64, v float64) (int, error) {
	if v < axis[0] || v > axis[len(axis)-1] {
		return 0, fmt.Errorf("coordinate %.6f is outside grid range [%.6f, %.6f]", v, axis[0], axis[len(axis)-1])
	}
	i := sort.SearchFloat64s(axis, v)
	if i > 0 {
		i--
	}
	if i > len(axis)-2 {
		i = len(axis) - 2
	}
	return i, nil
}

// InterpolateAt performs bilinear interpolation at (x, y). The point must
// lie within the grid's bounding box.
func (g *Grid2D) InterpolateAt(x, y float64) (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, fmt.Errorf("invalid grid: %w", err)
	}

	xi, err := cellIndex(g.X, x)
	if err != nil {
		return 0, fmt.Errorf("x: %w", err)
	}
	yi, err := cellIndex(g.Y, y)
	if err != nil {
		return 0, fmt.Errorf("y: %w", err)
	}

	t := (x - g.X[xi]) / (g.X[xi+1] - g.X[xi])
	u := (y - g.Y[yi]) / (g.Y[yi+1] - g.Y[yi])
	// Clamp against floating point drift at cell edges.
	t = math.Max(0, math.Min(1, t))
	u = math.Max(0, math.Min(1, u))

	return (1-t)*(1-u)*g.Values[yi][xi] +
		t*(1-u)*g.Values[yi][xi+1] +
		(1-t)*u*g.Values[yi+1][xi] +
		t*u*g.Values[yi+1][xi+1], nil
}
