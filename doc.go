/*
Package contourplot draws contour plots of scalar functions of two variables.

A function is evaluated over a uniform grid, 1000 by 1000 samples over [-10,10] x [-10,10] by default, and composed into a figure with filled contour bands, contour lines, a colorbar and a marker at (8.33,-6.47):

	fig, err := contourplot.New(contourplot.Pointwise(func(x, y float64) float64 {
		return x*x - y*y
	}), nil)
	if err != nil {
		panic(err)
	}
	fig.Axes.Add(plotter.NewGrid())
	if err := fig.Save("saddle.svg", nil); err != nil {
		panic(err)
	}

Figures are gonum.org/v1/plot plots and are rendered with either github.com/tdewolff/canvas or the gonum vg backends.
*/
package contourplot
