// Package expr compiles JavaScript arithmetic expressions in x and y into Go functions.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

var ErrUnsupported = errors.New("unsupported expression")

// Func is a compiled expression.
type Func func(x, y float64) float64

var constants = map[string]float64{
	"PI":      math.Pi,
	"pi":      math.Pi,
	"E":       math.E,
	"SQRT2":   math.Sqrt2,
	"SQRT1_2": 1.0 / math.Sqrt2,
	"LN2":     math.Ln2,
	"LN10":    math.Ln10,
	"LOG2E":   math.Log2E,
	"LOG10E":  math.Log10E,

	"Infinity": math.Inf(1),
	"NaN":      math.NaN(),
}

var funcs1 = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"log":   math.Log,
	"log2":  math.Log2,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"round": jsRound,
	"sign":  sign,
}

var funcs2 = map[string]func(float64, float64) float64{
	"atan2": math.Atan2,
	"pow":   math.Pow,
	"hypot": math.Hypot,
}

// Compile parses src as a single JavaScript expression over the variables x and y. Math functions and constants may be used with or without the Math prefix.
func Compile(src string) (Func, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrUnsupported)
	}

	ast, err := js.Parse(parse.NewInputString(src), js.Options{})
	if err != nil {
		return nil, err
	}
	if len(ast.BlockStmt.List) != 1 {
		return nil, fmt.Errorf("%w: expected one expression, got %d statements", ErrUnsupported, len(ast.BlockStmt.List))
	}
	stmt, ok := ast.BlockStmt.List[0].(*js.ExprStmt)
	if !ok {
		return nil, fmt.Errorf("%w: not an expression", ErrUnsupported)
	}

	f, err := compile(stmt.Value)
	if err != nil {
		return nil, err
	}
	return Func(f), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) Func {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

func compile(e js.IExpr) (func(x, y float64) float64, error) {
	switch e := e.(type) {
	case *js.GroupExpr:
		return compile(e.X)
	case *js.LiteralExpr:
		v, err := literal(string(e.Data))
		if err != nil {
			return nil, err
		}
		return func(x, y float64) float64 { return v }, nil
	case *js.Var:
		switch name := string(e.Data); name {
		case "x":
			return func(x, y float64) float64 { return x }, nil
		case "y":
			return func(x, y float64) float64 { return y }, nil
		default:
			if v, ok := constants[name]; ok {
				return func(x, y float64) float64 { return v }, nil
			}
			return nil, fmt.Errorf("%w: unknown identifier %q", ErrUnsupported, name)
		}
	case *js.DotExpr:
		name, err := member(e)
		if err != nil {
			return nil, err
		} else if v, ok := constants[name]; ok {
			return func(x, y float64) float64 { return v }, nil
		}
		return nil, fmt.Errorf("%w: unknown constant Math.%s", ErrUnsupported, name)
	case *js.UnaryExpr:
		a, err := compile(e.X)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case js.NegToken:
			return func(x, y float64) float64 { return -a(x, y) }, nil
		case js.PosToken:
			return a, nil
		case js.NotToken:
			return func(x, y float64) float64 { return boolean(a(x, y) == 0.0) }, nil
		}
		return nil, fmt.Errorf("%w: unary operator %v", ErrUnsupported, e.Op)
	case *js.BinaryExpr:
		return binary(e)
	case *js.CondExpr:
		cond, err := compile(e.Cond)
		if err != nil {
			return nil, err
		}
		a, err := compile(e.X)
		if err != nil {
			return nil, err
		}
		b, err := compile(e.Y)
		if err != nil {
			return nil, err
		}
		return func(x, y float64) float64 {
			if c := cond(x, y); c != 0.0 && !math.IsNaN(c) {
				return a(x, y)
			}
			return b(x, y)
		}, nil
	case *js.CallExpr:
		return call(e)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, e)
}

func binary(e *js.BinaryExpr) (func(x, y float64) float64, error) {
	a, err := compile(e.X)
	if err != nil {
		return nil, err
	}
	b, err := compile(e.Y)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case js.AddToken:
		return func(x, y float64) float64 { return a(x, y) + b(x, y) }, nil
	case js.SubToken:
		return func(x, y float64) float64 { return a(x, y) - b(x, y) }, nil
	case js.MulToken:
		return func(x, y float64) float64 { return a(x, y) * b(x, y) }, nil
	case js.DivToken:
		return func(x, y float64) float64 { return a(x, y) / b(x, y) }, nil
	case js.ModToken:
		return func(x, y float64) float64 { return math.Mod(a(x, y), b(x, y)) }, nil
	case js.ExpToken:
		return func(x, y float64) float64 { return math.Pow(a(x, y), b(x, y)) }, nil
	case js.LtToken:
		return func(x, y float64) float64 { return boolean(a(x, y) < b(x, y)) }, nil
	case js.LtEqToken:
		return func(x, y float64) float64 { return boolean(a(x, y) <= b(x, y)) }, nil
	case js.GtToken:
		return func(x, y float64) float64 { return boolean(a(x, y) > b(x, y)) }, nil
	case js.GtEqToken:
		return func(x, y float64) float64 { return boolean(a(x, y) >= b(x, y)) }, nil
	case js.EqEqToken, js.EqEqEqToken:
		return func(x, y float64) float64 { return boolean(a(x, y) == b(x, y)) }, nil
	case js.NotEqToken, js.NotEqEqToken:
		return func(x, y float64) float64 { return boolean(a(x, y) != b(x, y)) }, nil
	case js.AndToken:
		return func(x, y float64) float64 {
			if v := a(x, y); v == 0.0 || math.IsNaN(v) {
				return v
			}
			return b(x, y)
		}, nil
	case js.OrToken:
		return func(x, y float64) float64 {
			if v := a(x, y); v != 0.0 && !math.IsNaN(v) {
				return v
			}
			return b(x, y)
		}, nil
	}
	return nil, fmt.Errorf("%w: binary operator %v", ErrUnsupported, e.Op)
}

func call(e *js.CallExpr) (func(x, y float64) float64, error) {
	var name string
	switch callee := e.X.(type) {
	case *js.Var:
		name = string(callee.Data)
	case *js.DotExpr:
		var err error
		if name, err = member(callee); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: call of %T", ErrUnsupported, e.X)
	}

	args := make([]func(x, y float64) float64, 0, len(e.Args.List))
	for _, arg := range e.Args.List {
		if arg.Rest {
			return nil, fmt.Errorf("%w: spread argument in %s", ErrUnsupported, name)
		}
		a, err := compile(arg.Value)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}

	if f, ok := funcs1[name]; ok {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s takes one argument, got %d", ErrUnsupported, name, len(args))
		}
		a := args[0]
		return func(x, y float64) float64 { return f(a(x, y)) }, nil
	} else if f, ok := funcs2[name]; ok {
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: %s takes two arguments, got %d", ErrUnsupported, name, len(args))
		}
		a, b := args[0], args[1]
		return func(x, y float64) float64 { return f(a(x, y), b(x, y)) }, nil
	} else if name == "min" || name == "max" {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: %s needs at least one argument", ErrUnsupported, name)
		}
		pick := math.Min
		if name == "max" {
			pick = math.Max
		}
		return func(x, y float64) float64 {
			v := args[0](x, y)
			for _, a := range args[1:] {
				v = pick(v, a(x, y))
			}
			return v
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown function %q", ErrUnsupported, name)
}

// member returns the property name of Math.<name>.
func member(e *js.DotExpr) (string, error) {
	obj, ok := e.X.(*js.Var)
	if !ok || string(obj.Data) != "Math" {
		return "", fmt.Errorf("%w: member access on %v", ErrUnsupported, e.X)
	}
	return fmt.Sprint(e.Y), nil
}

func literal(s string) (float64, error) {
	switch s {
	case "true":
		return 1.0, nil
	case "false":
		return 0.0, nil
	}
	s = strings.ReplaceAll(s, "_", "")
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	} else if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return float64(i), nil
	}
	return 0.0, fmt.Errorf("%w: literal %s", ErrUnsupported, s)
}

func boolean(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

func sign(v float64) float64 {
	if v < 0.0 {
		return -1.0
	} else if 0.0 < v {
		return 1.0
	}
	return v
}

// jsRound rounds half up like Math.round.
func jsRound(v float64) float64 {
	return math.Floor(v + 0.5)
}
