package contourplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a contour plot of a scalar field with a colorbar and a marker. It is not drawn until Draw, Save or Encode is called.
type Figure struct {
	Options Options
	Field   *Field

	Axes     *plot.Plot // filled contours, contour lines and marker
	Colorbar *plot.Plot

	Bands  *plotter.HeatMap
	Lines  *plotter.Contour
	Marker *plotter.Scatter

	Min, Max float64 // colour range
}

// New evaluates f over the grid of the options and composes a new figure. If opts is nil the DefaultOptions are used. Errors returned by f are returned as is and no figure is returned.
func New(f Func, opts *Options) (*Figure, error) {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	field, err := Evaluate(f, opts.Grid())
	if err != nil {
		return nil, err
	}

	cmap, err := ColorMap(opts.ColorMap)
	if err != nil {
		return nil, err
	}
	min, max := field.Range()
	if min == max {
		min, max = min-0.5, max+0.5
	}
	if cmap.Max() < min {
		cmap.SetMax(max)
		cmap.SetMin(min)
	} else {
		cmap.SetMin(min)
		cmap.SetMax(max)
	}

	lineColor, _ := ParseColor(opts.LineColor)
	markerColor, _ := ParseColor(opts.MarkerColor)

	// HeatMap rounds to the nearest palette index, shift its range by half a band so that
	// band i covers [min+i*w,min+(i+1)*w) like the colorbar
	pal := bandPalette(cmap, opts.Bands)
	bands := plotter.NewHeatMap(field, pal)
	if 1 < opts.Bands {
		w := (max - min) / float64(opts.Bands)
		bands.Min, bands.Max = min+w/2.0, max-w/2.0
	} else {
		bands.Min, bands.Max = min, max
	}
	cs := pal.Colors()
	bands.Underflow = cs[0]
	bands.Overflow = cs[len(cs)-1]
	bands.Rasterized = true
	bands.NaN = color.Transparent

	var lines *plotter.Contour
	if levels := Levels(min, max, opts.Lines); 0 < len(levels) {
		lines = plotter.NewContour(field, levels, solid{lineColor})
		lines.LineStyles = []draw.LineStyle{{
			Color: lineColor,
			Width: opts.LineWidth,
		}}
	}

	marker, err := plotter.NewScatter(plotter.XYs{{X: opts.MarkerX, Y: opts.MarkerY}})
	if err != nil {
		return nil, err
	}
	marker.GlyphStyle = draw.GlyphStyle{
		Color:  markerColor,
		Radius: opts.MarkerRadius,
		Shape:  draw.CrossGlyph{},
	}

	axes := plot.New()
	axes.Title.Text = opts.Title
	axes.X.Label.Text = opts.XLabel
	axes.Y.Label.Text = opts.YLabel
	axes.Add(bands)
	if lines != nil {
		axes.Add(lines)
	}
	axes.Add(marker)
	axes.X.Min, axes.X.Max = opts.XMin, opts.XMax
	axes.Y.Min, axes.Y.Max = opts.YMin, opts.YMax

	colorbar := plot.New()
	colorbar.HideX()
	colorbar.Y.Label.Text = opts.ColorbarLabel
	colorbar.Add(&plotter.ColorBar{
		ColorMap: cmap,
		Vertical: true,
		Colors:   opts.Bands,
	})

	return &Figure{
		Options:  *opts,
		Field:    field,
		Axes:     axes,
		Colorbar: colorbar,
		Bands:    bands,
		Lines:    lines,
		Marker:   marker,
		Min:      min,
		Max:      max,
	}, nil
}

// Levels returns n evenly spaced contour levels strictly between min and max.
func Levels(min, max float64, n int) []float64 {
	if n <= 0 || !(min < max) {
		return nil
	}
	levels := make([]float64, n)
	for i := range levels {
		levels[i] = min + float64(i+1)*(max-min)/float64(n+1)
	}
	return levels
}

// MarkerXY returns the position of the marker.
func (f *Figure) MarkerXY() plotter.XY {
	return f.Marker.XYs[0]
}

// Draw draws the axes and the colorbar to its right onto c.
func (f *Figure) Draw(c draw.Canvas) {
	w := c.Max.X - c.Min.X
	bar := vg.Length(f.Options.ColorbarWidth) * w
	axes := draw.Crop(c, 0, -bar, 0, 0)
	f.Axes.Draw(axes)

	// align the colorbar with the data area of the axes
	da := f.Axes.DataCanvas(axes)
	side := draw.Crop(c, w-bar, 0, da.Min.Y-c.Min.Y, da.Max.Y-c.Max.Y)
	f.Colorbar.Draw(side)
}

type solid struct {
	color.Color
}

func (s solid) Colors() []color.Color {
	return []color.Color{s.Color}
}

var _ palette.Palette = solid{}
