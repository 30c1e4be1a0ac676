package contourplot

import (
	"math"
	"sort"
)

// Demo is a bowl with a well at (8.33,-6.47) and a ripple that vanishes there, so that its minimum lies at the default marker.
var Demo = Pointwise(func(x, y float64) float64 {
	dx, dy := x-8.33, y+6.47
	r2 := dx*dx + dy*dy
	return 0.05*r2 - 2.0*math.Exp(-r2/4.0) + 0.5*math.Sin(dx)*math.Sin(dy)
})

// Functions are the builtin example functions by name.
var Functions = map[string]Func{
	"demo":     Demo,
	"constant": Pointwise(func(x, y float64) float64 { return 1.0 }),
	"x":        Pointwise(func(x, y float64) float64 { return x }),
	"y":        Pointwise(func(x, y float64) float64 { return y }),
	"saddle":   Pointwise(func(x, y float64) float64 { return x*x - y*y }),
	"ripple": Pointwise(func(x, y float64) float64 {
		r := math.Hypot(x, y)
		if r == 0.0 {
			return 1.0
		}
		return math.Sin(r) / r
	}),
	"himmelblau": Pointwise(func(x, y float64) float64 {
		a, b := x*x+y-11.0, x+y*y-7.0
		return a*a + b*b
	}),
	"rastrigin": Pointwise(func(x, y float64) float64 {
		return 20.0 + x*x - 10.0*math.Cos(2.0*math.Pi*x) + y*y - 10.0*math.Cos(2.0*math.Pi*y)
	}),
}

// FunctionNames returns the names of the builtin functions in sorted order.
func FunctionNames() []string {
	names := make([]string, 0, len(Functions))
	for name := range Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
