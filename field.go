package contourplot

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrShape          = errors.New("field shape does not match grid")
	ErrNoFiniteValues = errors.New("field has no finite values")
)

// Func evaluates a scalar function over a mesh. X and Y have equal shape and the returned matrix must have that shape as well.
type Func func(X, Y *mat.Dense) (*mat.Dense, error)

// Pointwise returns a Func that applies f to every point of the mesh.
func Pointwise(f func(x, y float64) float64) Func {
	return func(X, Y *mat.Dense) (*mat.Dense, error) {
		Z := &mat.Dense{}
		Z.Apply(func(r, c int, x float64) float64 {
			return f(x, Y.At(r, c))
		}, X)
		return Z, nil
	}
}

// Field is the scalar field of a function evaluated over a grid. It implements plotter.GridXYZ.
type Field struct {
	grid     Grid
	z        *mat.Dense
	min, max float64
}

// Evaluate evaluates f over the mesh of g. Errors returned by f are returned as is.
func Evaluate(f Func, g Grid) (*Field, error) {
	X, Y := g.Mesh()
	Z, err := f(X, Y)
	if err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	if Z == nil {
		return nil, fmt.Errorf("%w: function returned no matrix", ErrShape)
	} else if r, c := Z.Dims(); r != rows || c != cols {
		return nil, fmt.Errorf("%w: got %dx%d, expected %dx%d", ErrShape, r, c, rows, cols)
	}

	Z = mat.DenseCopyOf(Z)
	min, max := math.Inf(1), math.Inf(-1)
	for _, z := range Z.RawMatrix().Data {
		if math.IsNaN(z) || math.IsInf(z, 0) {
			continue
		}
		min = math.Min(min, z)
		max = math.Max(max, z)
	}
	if max < min {
		return nil, ErrNoFiniteValues
	}
	return &Field{
		grid: g,
		z:    Z,
		min:  min,
		max:  max,
	}, nil
}

// Grid returns the grid the field was evaluated on.
func (f *Field) Grid() Grid {
	return f.grid
}

// Dims returns the number of columns and rows of the field.
func (f *Field) Dims() (int, int) {
	return f.grid.Dims()
}

// Z returns the value at column c and row r.
func (f *Field) Z(c, r int) float64 {
	return f.z.At(r, c)
}

// X returns the X coordinate of column c.
func (f *Field) X(c int) float64 {
	return f.grid.X[c]
}

// Y returns the Y coordinate of row r.
func (f *Field) Y(r int) float64 {
	return f.grid.Y[r]
}

// At returns the value at the i-th X sample and the j-th Y sample.
func (f *Field) At(i, j int) (float64, error) {
	cols, rows := f.Dims()
	if i < 0 || cols <= i {
		return 0.0, fmt.Errorf("x index (%d) out of range, must be between 0 and %d", i, cols-1)
	} else if j < 0 || rows <= j {
		return 0.0, fmt.Errorf("y index (%d) out of range, must be between 0 and %d", j, rows-1)
	}
	return f.z.At(j, i), nil
}

// Range returns the minimum and maximum finite values of the field.
func (f *Field) Range() (float64, float64) {
	return f.min, f.max
}

// ArgMin returns the coordinates of the smallest finite value.
func (f *Field) ArgMin() (float64, float64) {
	rows, cols := f.z.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if f.z.At(r, c) == f.min {
				return f.grid.X[c], f.grid.Y[r]
			}
		}
	}
	return math.NaN(), math.NaN()
}

// Matrix returns a copy of the field values, with len(Y) rows and len(X) columns.
func (f *Field) Matrix() *mat.Dense {
	return mat.DenseCopyOf(f.z)
}
