package contourplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

var ErrUnknownColorMap = errors.New("unknown colour map")

var colorMaps = map[string]func() palette.ColorMap{
	"coolwarm":          func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"bluetan":           func() palette.ColorMap { return moreland.SmoothBlueTan() },
	"greenpurple":       func() palette.ColorMap { return moreland.SmoothGreenPurple() },
	"greenred":          func() palette.ColorMap { return moreland.SmoothGreenRed() },
	"purpleorange":      func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	"blackbody":         moreland.BlackBody,
	"extendedblackbody": moreland.ExtendedBlackBody,
	"kindlmann":         moreland.Kindlmann,
	"extendedkindlmann": moreland.ExtendedKindlmann,
}

// ColorMaps returns the names of the builtin colour maps.
func ColorMaps() []string {
	names := make([]string, 0, len(colorMaps))
	for name := range colorMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColorMap returns a new colour map over [0,1] by name. Besides the builtin names it accepts brewer:<Name> for ColorBrewer palettes and a comma separated list of hex colours that are interpolated in CIE L*a*b*.
func ColorMap(name string) (palette.ColorMap, error) {
	name = strings.TrimSpace(name)
	if f, ok := colorMaps[strings.ToLower(name)]; ok {
		cmap := f()
		cmap.SetMin(0.0)
		cmap.SetMax(1.0)
		return cmap, nil
	} else if strings.HasPrefix(name, "brewer:") {
		return brewerColorMap(name[len("brewer:"):])
	} else if strings.HasPrefix(name, "#") || strings.Contains(name, ",") {
		var cols []color.Color
		for _, hex := range strings.Split(name, ",") {
			col, err := colorful.Hex(strings.TrimSpace(hex))
			if err != nil {
				return nil, fmt.Errorf("%w: bad colour %q in %q", ErrUnknownColorMap, hex, name)
			}
			cols = append(cols, col)
		}
		return NewStopColorMap(cols...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColorMap, name)
}

func brewerColorMap(name string) (palette.ColorMap, error) {
	// palettes differ in their maximum number of colours
	for n := 11; 3 <= n; n-- {
		if p, err := brewer.GetPalette(brewer.TypeAny, name, n); err == nil {
			return NewStopColorMap(p.Colors()...)
		}
	}
	return nil, fmt.Errorf("%w: brewer palette %q", ErrUnknownColorMap, name)
}

// StopColorMap is a colour map that interpolates evenly spaced colour stops in CIE L*a*b*.
type StopColorMap struct {
	stops    []colorful.Color
	alpha    float64
	min, max float64
}

// NewStopColorMap returns a colour map over [0,1] through the given colours, at least two are required.
func NewStopColorMap(cols ...color.Color) (*StopColorMap, error) {
	if len(cols) < 2 {
		return nil, fmt.Errorf("%w: need at least two colours, got %d", ErrUnknownColorMap, len(cols))
	}

	stops := make([]colorful.Color, len(cols))
	for i, col := range cols {
		c, ok := colorful.MakeColor(col)
		if !ok {
			return nil, fmt.Errorf("%w: transparent colour stop", ErrUnknownColorMap)
		}
		stops[i] = c
	}
	return &StopColorMap{
		stops: stops,
		alpha: 1.0,
		min:   0.0,
		max:   1.0,
	}, nil
}

// At returns the colour for v.
func (m *StopColorMap) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	} else if v < m.min {
		return nil, palette.ErrUnderflow
	} else if m.max < v {
		return nil, palette.ErrOverflow
	}

	t := 0.0
	if m.min < m.max {
		t = (v - m.min) / (m.max - m.min)
	}
	t *= float64(len(m.stops) - 1)
	i := int(t)
	if len(m.stops)-1 <= i {
		i = len(m.stops) - 2
	}
	c := m.stops[i].BlendLab(m.stops[i+1], t-float64(i)).Clamped()
	r, g, b := c.RGB255()
	a := uint8(m.alpha*255.0 + 0.5)
	return color.NRGBA{r, g, b, a}, nil
}

// Max returns the maximum value.
func (m *StopColorMap) Max() float64 {
	return m.max
}

// SetMax sets the maximum value.
func (m *StopColorMap) SetMax(v float64) {
	m.max = v
}

// Min returns the minimum value.
func (m *StopColorMap) Min() float64 {
	return m.min
}

// SetMin sets the minimum value.
func (m *StopColorMap) SetMin(v float64) {
	m.min = v
}

// Alpha returns the opacity.
func (m *StopColorMap) Alpha() float64 {
	return m.alpha
}

// SetAlpha sets the opacity, between 0 and 1.
func (m *StopColorMap) SetAlpha(alpha float64) {
	m.alpha = math.Max(0.0, math.Min(1.0, alpha))
}

// Palette returns n colours evenly spaced over the colour map, including both ends.
func (m *StopColorMap) Palette(n int) palette.Palette {
	cs := make(colors, n)
	for i := range cs {
		v := m.min
		if 1 < n {
			v += float64(i) / float64(n-1) * (m.max - m.min)
		}
		col, err := m.At(v)
		if err != nil {
			col = color.Transparent
		}
		cs[i] = col
	}
	return cs
}

type colors []color.Color

func (cs colors) Colors() []color.Color {
	return cs
}

// bandPalette samples n colours from cmap at the lower edges of n equal bands over its range, the same values plotter.ColorBar samples.
func bandPalette(cmap palette.ColorMap, n int) palette.Palette {
	min, max := cmap.Min(), cmap.Max()
	cs := make(colors, n)
	for i := range cs {
		col, err := cmap.At(min + float64(i)*(max-min)/float64(n))
		if err != nil {
			col = color.Transparent
		}
		cs[i] = col
	}
	return cs
}
