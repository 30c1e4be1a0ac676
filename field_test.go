package contourplot

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"gonum.org/v1/gonum/mat"
)

func TestEvaluateConstant(t *testing.T) {
	field, err := Evaluate(Pointwise(func(x, y float64) float64 { return 3.5 }), DefaultGrid())
	test.Error(t, err)

	cols, rows := field.Dims()
	test.T(t, cols, 1000)
	test.T(t, rows, 1000)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if field.Z(c, r) != 3.5 {
				test.Fail(t, "non-uniform field at", c, r, field.Z(c, r))
			}
		}
	}
	min, max := field.Range()
	test.Float(t, min, 3.5)
	test.Float(t, max, 3.5)
}

func TestEvaluateX(t *testing.T) {
	field, err := Evaluate(Functions["x"], DefaultGrid())
	test.Error(t, err)

	cols, rows := field.Dims()
	for c := 0; c < cols; c++ {
		test.Float(t, field.Z(c, 0), field.X(c))
		for r := 1; r < rows; r++ {
			if field.Z(c, r) != field.Z(c, 0) {
				test.Fail(t, "field varies along Y at", c, r)
			}
		}
	}
	test.That(t, field.Z(0, 0) < field.Z(1, 0))

	min, max := field.Range()
	test.Float(t, min, -10.0)
	test.Float(t, max, 10.0)
}

func TestEvaluateVectorized(t *testing.T) {
	sum := func(X, Y *mat.Dense) (*mat.Dense, error) {
		Z := &mat.Dense{}
		Z.Add(X, Y)
		return Z, nil
	}
	field, err := Evaluate(sum, NewGrid(0.0, 1.0, 0.0, 2.0, 3))
	test.Error(t, err)
	test.Float(t, field.Z(2, 1), 2.0)
	test.Float(t, field.Z(1, 2), 2.5)

	v, err := field.At(2, 1)
	test.Error(t, err)
	test.Float(t, v, 2.0)
	_, err = field.At(3, 0)
	test.That(t, err != nil)
	_, err = field.At(0, -1)
	test.That(t, err != nil)

	// the field does not alias the returned matrix
	m := field.Matrix()
	m.Set(0, 0, 100.0)
	test.Float(t, field.Z(0, 0), 0.0)
}

func TestEvaluateErrors(t *testing.T) {
	errBoom := errors.New("boom")
	field, err := Evaluate(func(X, Y *mat.Dense) (*mat.Dense, error) { return nil, errBoom }, DefaultGrid())
	test.T(t, err, errBoom)
	test.That(t, field == nil)

	_, err = Evaluate(func(X, Y *mat.Dense) (*mat.Dense, error) { return mat.NewDense(2, 2, nil), nil }, DefaultGrid())
	test.That(t, errors.Is(err, ErrShape), err)

	_, err = Evaluate(func(X, Y *mat.Dense) (*mat.Dense, error) { return nil, nil }, DefaultGrid())
	test.That(t, errors.Is(err, ErrShape), err)

	_, err = Evaluate(Pointwise(func(x, y float64) float64 { return math.NaN() }), NewGrid(0.0, 1.0, 0.0, 1.0, 4))
	test.T(t, err, ErrNoFiniteValues)
}

func TestEvaluateNaN(t *testing.T) {
	f := Pointwise(func(x, y float64) float64 {
		if x < 0.0 {
			return math.NaN()
		}
		return x + y
	})
	field, err := Evaluate(f, NewGrid(-1.0, 1.0, 0.0, 1.0, 3))
	test.Error(t, err)
	min, max := field.Range()
	test.Float(t, min, 0.0)
	test.Float(t, max, 2.0)
	test.That(t, math.IsNaN(field.Z(0, 0)))
}

func TestDemoMinimum(t *testing.T) {
	field, err := Evaluate(Demo, DefaultGrid())
	test.Error(t, err)

	dx, dy := field.Grid().Step()
	x, y := field.ArgMin()
	test.That(t, math.Abs(x-DefaultOptions.MarkerX) <= 1.5*dx, "x", x)
	test.That(t, math.Abs(y-DefaultOptions.MarkerY) <= 1.5*dy, "y", y)
}
