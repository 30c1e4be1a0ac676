package contourplot

import (
	"gonum.org/v1/gonum/mat"
)

// Linspace returns n evenly spaced values over [min,max]. The first and last values are exactly min and max.
func Linspace(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	} else if n == 1 {
		return []float64{min}
	}

	vs := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range vs {
		vs[i] = min + float64(i)*step
	}
	vs[n-1] = max
	return vs
}

// Grid holds the coordinate sequences along the X and Y axes.
type Grid struct {
	X, Y []float64
}

// NewGrid returns a grid with n samples over [xmin,xmax] along X and n samples over [ymin,ymax] along Y.
func NewGrid(xmin, xmax, ymin, ymax float64, n int) Grid {
	return Grid{
		X: Linspace(xmin, xmax, n),
		Y: Linspace(ymin, ymax, n),
	}
}

// DefaultGrid returns the grid of 1000 by 1000 samples over [-10,10] x [-10,10].
func DefaultGrid() Grid {
	o := DefaultOptions
	return NewGrid(o.XMin, o.XMax, o.YMin, o.YMax, o.Samples)
}

// Dims returns the number of columns (X samples) and rows (Y samples).
func (g Grid) Dims() (int, int) {
	return len(g.X), len(g.Y)
}

// Mesh returns the coordinate matrices of the grid. Both have len(Y) rows and len(X) columns, X varies along a row and Y along a column.
func (g Grid) Mesh() (*mat.Dense, *mat.Dense) {
	cols, rows := g.Dims()
	if cols == 0 || rows == 0 {
		return &mat.Dense{}, &mat.Dense{}
	}

	xs := make([]float64, 0, rows*cols)
	ys := make([]float64, 0, rows*cols)
	for _, y := range g.Y {
		xs = append(xs, g.X...)
		for range g.X {
			ys = append(ys, y)
		}
	}
	return mat.NewDense(rows, cols, xs), mat.NewDense(rows, cols, ys)
}

// Step returns the spacing between samples along X and Y.
func (g Grid) Step() (float64, float64) {
	var dx, dy float64
	if 1 < len(g.X) {
		dx = (g.X[len(g.X)-1] - g.X[0]) / float64(len(g.X)-1)
	}
	if 1 < len(g.Y) {
		dy = (g.Y[len(g.Y)-1] - g.Y[0]) / float64(len(g.Y)-1)
	}
	return dx, dy
}
