package contourplot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
	"github.com/tdewolff/canvas/renderers/tex"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

const mmPerPt = 25.4 / 72.0

var ErrFormat = errors.New("unsupported format")

// Backend is the renderer used to write figures.
type Backend int

const (
	CanvasBackend Backend = iota // github.com/tdewolff/canvas
	GonumBackend                 // gonum.org/v1/plot/vg
)

// ParseBackend parses a backend name, either canvas or gonum.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "", "canvas":
		return CanvasBackend, nil
	case "gonum":
		return GonumBackend, nil
	}
	return 0, fmt.Errorf("%w: unknown backend %q", ErrFormat, s)
}

func (b Backend) String() string {
	switch b {
	case CanvasBackend:
		return "canvas"
	case GonumBackend:
		return "gonum"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// WriteOptions are the options for Save and Encode.
type WriteOptions struct {
	Backend    Backend
	Resolution float64 // dots per mm for raster formats
	Minify     bool    // minify SVG output
}

var DefaultWriteOptions = WriteOptions{
	Backend:    CanvasBackend,
	Resolution: 4.0,
}

// Formats returns the output formats supported by the backend. The gonum EPS and TeX canvases cannot draw the rasterized bands.
func (b Backend) Formats() []string {
	if b == GonumBackend {
		return []string{"jpg", "pdf", "png", "svg", "tif"}
	}
	return []string{"gif", "jpg", "pdf", "png", "svg", "tex", "tif"}
}

func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	switch format {
	case "jpeg":
		return "jpg"
	case "tiff":
		return "tif"
	case "pgf":
		return "tex"
	}
	return format
}

func (opts *WriteOptions) validate(format string) error {
	if !supports(opts.Backend, format) {
		return fmt.Errorf("%w: %q for %v backend", ErrFormat, format, opts.Backend)
	} else if !(0.0 < opts.Resolution) {
		return fmt.Errorf("resolution must be positive, got %v", opts.Resolution)
	}
	return nil
}

// Save writes the figure to filename, the format follows from its extension. If opts is nil the DefaultWriteOptions are used. A failed write removes the file.
func (f *Figure) Save(filename string, opts *WriteOptions) error {
	if opts == nil {
		opts = &DefaultWriteOptions
	}
	format := normalizeFormat(filepath.Ext(filename))
	if err := opts.validate(format); err != nil {
		return err
	}

	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := f.Encode(w, format, opts); err != nil {
		w.Close()
		os.Remove(filename)
		return err
	} else if err := w.Close(); err != nil {
		os.Remove(filename)
		return err
	}
	return nil
}

// Encode writes the figure in the given format to w. If opts is nil the DefaultWriteOptions are used.
func (f *Figure) Encode(w io.Writer, format string, opts *WriteOptions) error {
	if opts == nil {
		opts = &DefaultWriteOptions
	}
	format = normalizeFormat(format)
	if err := opts.validate(format); err != nil {
		return err
	}

	if opts.Minify && format == "svg" {
		mw := MinifySVG(w)
		if err := f.encode(mw, format, opts); err != nil {
			mw.Close()
			return err
		}
		return mw.Close()
	}
	return f.encode(w, format, opts)
}

func (f *Figure) encode(w io.Writer, format string, opts *WriteOptions) error {
	if f.Options.Width <= 0 || f.Options.Height <= 0 {
		return fmt.Errorf("invalid figure size %vx%v", f.Options.Width, f.Options.Height)
	}
	switch format {
	case "png", "jpg", "gif", "tif":
		px := float64(f.Options.Width) * mmPerPt * opts.Resolution
		py := float64(f.Options.Height) * mmPerPt * opts.Resolution
		if px < 1.0 || py < 1.0 {
			return fmt.Errorf("resolution %v too small for a %vx%v figure", opts.Resolution, f.Options.Width, f.Options.Height)
		}
	}

	if opts.Backend == GonumBackend {
		c, err := f.vgCanvas(format, opts.Resolution)
		if err != nil {
			return err
		}
		f.Draw(draw.New(c))
		_, err = c.WriteTo(w)
		return err
	}

	c := f.canvas()
	resolution := canvas.DPMM(opts.Resolution)
	switch format {
	case "png":
		return rasterizer.PNGWriter(resolution)(w, c)
	case "jpg":
		return rasterizer.JPGWriter(resolution, nil)(w, c)
	case "gif":
		return rasterizer.GIFWriter(resolution, nil)(w, c)
	case "tif":
		return rasterizer.TIFFWriter(resolution, nil)(w, c)
	case "svg":
		r := svg.New(w, c.W, c.H, nil)
		c.Render(r)
		return r.Close()
	case "pdf":
		r := pdf.New(w, c.W, c.H, nil)
		c.Render(r)
		return r.Close()
	case "tex":
		return tex.Writer(w, c)
	}
	return fmt.Errorf("%w: %q for %v backend", ErrFormat, format, opts.Backend)
}

// canvas draws the figure onto a new canvas with dimensions in millimeters.
func (f *Figure) canvas() *canvas.Canvas {
	width := float64(f.Options.Width) * mmPerPt
	height := float64(f.Options.Height) * mmPerPt
	c := canvas.New(width, height)
	f.Draw(renderers.NewGonumPlot(c))
	return c
}

func (f *Figure) vgCanvas(format string, resolution float64) (vg.CanvasWriterTo, error) {
	width, height := f.Options.Width, f.Options.Height
	switch format {
	case "png", "jpg", "tif":
		dpi := int(resolution*25.4 + 0.5)
		if dpi < 1 {
			dpi = 1
		}
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: c}, nil
		case "jpg":
			return vgimg.JpegCanvas{Canvas: c}, nil
		default:
			return vgimg.TiffCanvas{Canvas: c}, nil
		}
	}
	return draw.NewFormattedCanvas(width, height, format)
}

func supports(b Backend, format string) bool {
	for _, f := range b.Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// MinifySVG returns a writer that minifies the SVG written to it before writing to w. It must be closed to flush.
func MinifySVG(w io.Writer) io.WriteCloser {
	m := minify.New()
	m.AddFunc("image/svg+xml", minifySVG.Minify)
	return m.Writer("image/svg+xml", w)
}
