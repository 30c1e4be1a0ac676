package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/contourplot"
	"github.com/tdewolff/contourplot/internal/expr"
)

var Info = log.New(os.Stderr, "", 0)

type Plot struct {
	Function   string  `short:"f" default:"demo" desc:"Builtin function name or expression in x and y, such as 'x*x - y*y'"`
	Output     string  `short:"o" default:"contour.png" desc:"Output file, or - for stdout"`
	Format     string  `desc:"Output format, defaults to the output file extension"`
	Backend    string  `short:"b" default:"canvas" desc:"Renderer, canvas or gonum"`
	Resolution float64 `short:"r" default:"4" desc:"Dots per millimeter for raster formats"`
	Config     string  `short:"c" desc:"TOML file with figure options"`
	Colormap   string  `desc:"Colour map name, brewer:<Name>, or comma separated hex colours"`
	Bands      int     `desc:"Number of filled contour bands"`
	Lines      int     `default:"-1" desc:"Number of contour lines"`
	Samples    int     `desc:"Samples per axis"`
	Title      string  `desc:"Figure title"`
	Minify     bool    `desc:"Minify SVG output"`
	Open       bool    `desc:"Open the output file after writing"`
	Quiet      bool    `short:"q" desc:"Suppress progress messages"`
	List       bool    `short:"l" desc:"List builtin functions and colour maps"`
}

func main() {
	root := argp.NewCmd(&Plot{}, "Contour plots of scalar functions over a grid")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Plot) Run() error {
	if cmd.Quiet {
		Info.SetOutput(io.Discard)
	}
	if cmd.List {
		fmt.Println("Functions:", strings.Join(contourplot.FunctionNames(), ", "))
		fmt.Println("Colour maps:", strings.Join(contourplot.ColorMaps(), ", "))
		return nil
	}

	return cmd.plot()
}

func (cmd *Plot) plot() error {
	f, err := resolveFunction(cmd.Function)
	if err != nil {
		return err
	}
	opts, err := cmd.options()
	if err != nil {
		return err
	}
	backend, err := contourplot.ParseBackend(cmd.Backend)
	if err != nil {
		return err
	}

	Info.Printf("Evaluating %s over %dx%d samples", cmd.Function, opts.Samples, opts.Samples)
	fig, err := contourplot.New(f, opts)
	if err != nil {
		return err
	}
	min, max := fig.Field.Range()
	Info.Printf("Field range [%g,%g]", min, max)

	wopts := &contourplot.WriteOptions{
		Backend:    backend,
		Resolution: cmd.Resolution,
		Minify:     cmd.Minify,
	}
	if cmd.Output == "-" || cmd.Output == "" {
		if cmd.Format == "" {
			return fmt.Errorf("must specify --format when writing to stdout")
		}
		return fig.Encode(os.Stdout, cmd.Format, wopts)
	}

	filename := cmd.Output
	if cmd.Format != "" && filepath.Ext(filename) == "" {
		filename += "." + cmd.Format
	}
	if err := fig.Save(filename, wopts); err != nil {
		return err
	}
	Info.Printf("Written %s using the %v backend", filename, backend)

	if cmd.Open {
		if err := browser.OpenFile(filename); err != nil {
			return fmt.Errorf("could not open %s: %w", filename, err)
		}
	}
	return nil
}

// options returns the default options, overridden by the config file and then by the flags.
func (cmd *Plot) options() (*contourplot.Options, error) {
	opts := contourplot.DefaultOptions
	if cmd.Config != "" {
		if err := loadConfig(cmd.Config, &opts); err != nil {
			return nil, err
		}
	}
	if cmd.Colormap != "" {
		opts.ColorMap = cmd.Colormap
	}
	if cmd.Bands != 0 {
		opts.Bands = cmd.Bands
	}
	if 0 <= cmd.Lines {
		opts.Lines = cmd.Lines
	}
	if cmd.Samples != 0 {
		opts.Samples = cmd.Samples
	}
	if cmd.Title != "" {
		opts.Title = cmd.Title
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func loadConfig(filename string, opts *contourplot.Options) error {
	md, err := toml.DecodeFile(filename, opts)
	if err != nil {
		return fmt.Errorf("config %s: %w", filename, err)
	}
	for _, key := range md.Undecoded() {
		Info.Printf("WARNING: unknown config key %s in %s", key, filename)
	}
	return nil
}

// resolveFunction returns the builtin function by name or compiles the expression.
func resolveFunction(s string) (contourplot.Func, error) {
	if f, ok := contourplot.Functions[s]; ok {
		return f, nil
	}
	f, err := expr.Compile(s)
	if err != nil {
		return nil, fmt.Errorf("function %q: %w", s, err)
	}
	return contourplot.Pointwise(f), nil
}
