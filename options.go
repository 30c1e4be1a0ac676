package contourplot

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
)

// Options are the figure options. Length are in points unless noted otherwise.
type Options struct {
	XMin    float64 `toml:"xmin"`
	XMax    float64 `toml:"xmax"`
	YMin    float64 `toml:"ymin"`
	YMax    float64 `toml:"ymax"`
	Samples int     `toml:"samples"` // per axis

	Bands     int       `toml:"bands"` // filled contour colour bands
	Lines     int       `toml:"lines"` // line contour levels
	ColorMap  string    `toml:"colormap"`
	LineColor string    `toml:"line_color"`
	LineWidth vg.Length `toml:"line_width"`

	Title         string  `toml:"title"`
	XLabel        string  `toml:"xlabel"`
	YLabel        string  `toml:"ylabel"`
	ColorbarLabel string  `toml:"colorbar_label"`
	ColorbarWidth float64 `toml:"colorbar_width"` // fraction of the figure width

	MarkerX      float64   `toml:"marker_x"`
	MarkerY      float64   `toml:"marker_y"`
	MarkerColor  string    `toml:"marker_color"`
	MarkerRadius vg.Length `toml:"marker_radius"`

	Width  vg.Length `toml:"width"`
	Height vg.Length `toml:"height"`
}

var DefaultOptions = Options{
	XMin:    -10.0,
	XMax:    10.0,
	YMin:    -10.0,
	YMax:    10.0,
	Samples: 1000,

	Bands:     50,
	Lines:     10,
	ColorMap:  "coolwarm",
	LineColor: "black",
	LineWidth: 0.5,

	Title:         "2D Contour Plot with Local Minimum",
	XLabel:        "X",
	YLabel:        "Y",
	ColorbarLabel: "Function Value",
	ColorbarWidth: 0.18,

	MarkerX:      8.33,
	MarkerY:      -6.47,
	MarkerColor:  "red",
	MarkerRadius: 4.0,

	Width:  8 * vg.Inch,
	Height: 6 * vg.Inch,
}

// Validate returns an error for options that cannot produce a figure.
func (o *Options) Validate() error {
	if !(o.XMin < o.XMax) {
		return fmt.Errorf("invalid X domain [%v,%v]", o.XMin, o.XMax)
	} else if !(o.YMin < o.YMax) {
		return fmt.Errorf("invalid Y domain [%v,%v]", o.YMin, o.YMax)
	} else if o.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", o.Samples)
	} else if o.Bands < 1 {
		return fmt.Errorf("bands must be at least 1, got %d", o.Bands)
	} else if o.Lines < 0 {
		return fmt.Errorf("lines must be positive, got %d", o.Lines)
	} else if o.LineWidth < 0 || o.MarkerRadius < 0 {
		return fmt.Errorf("line width and marker radius must be positive")
	} else if o.ColorbarWidth <= 0.0 || 1.0 <= o.ColorbarWidth {
		return fmt.Errorf("colorbar width must be in (0,1), got %v", o.ColorbarWidth)
	} else if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid figure size %vx%v", o.Width, o.Height)
	}
	if _, err := ParseColor(o.LineColor); err != nil {
		return err
	} else if _, err := ParseColor(o.MarkerColor); err != nil {
		return err
	}
	return nil
}

// Grid returns the sampling grid of the options.
func (o *Options) Grid() Grid {
	return NewGrid(o.XMin, o.XMax, o.YMin, o.YMax, o.Samples)
}

// ParseColor parses a CSS colour name or a hexadecimal colour such as #ff8000.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.Transparent, nil
	} else if col, ok := colornames.Map[s]; ok {
		return col, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	return col, nil
}
