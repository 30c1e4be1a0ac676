package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/contourplot"
	"github.com/tdewolff/test"
)

func TestResolveFunction(t *testing.T) {
	for _, name := range contourplot.FunctionNames() {
		f, err := resolveFunction(name)
		test.Error(t, err)
		test.That(t, f != nil, name)
	}

	f, err := resolveFunction("x * y + 1")
	test.Error(t, err)
	field, err := contourplot.Evaluate(f, contourplot.NewGrid(0.0, 2.0, 0.0, 2.0, 3))
	test.Error(t, err)
	test.Float(t, field.Z(2, 1), 3.0)

	_, err = resolveFunction("bogus(x)")
	test.That(t, err != nil)
}

func TestOptions(t *testing.T) {
	cmd := &Plot{Lines: -1}
	opts, err := cmd.options()
	test.Error(t, err)
	test.T(t, *opts, contourplot.DefaultOptions)

	cmd = &Plot{Bands: 20, Lines: 0, Samples: 100, Title: "Saddle", Colormap: "blackbody"}
	opts, err = cmd.options()
	test.Error(t, err)
	test.T(t, opts.Bands, 20)
	test.T(t, opts.Lines, 0)
	test.T(t, opts.Samples, 100)
	test.T(t, opts.Title, "Saddle")
	test.T(t, opts.ColorMap, "blackbody")

	cmd = &Plot{Lines: -1, Samples: 1}
	_, err = cmd.options()
	test.That(t, err != nil)
}

func TestConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "figure.toml")
	config := `
bands = 30
title = "From config"
marker_x = 1.5
marker_y = -2.0
colormap = "brewer:RdBu"
`
	test.Error(t, os.WriteFile(filename, []byte(config), 0644))

	cmd := &Plot{Config: filename, Lines: -1, Bands: 40}
	opts, err := cmd.options()
	test.Error(t, err)
	test.T(t, opts.Bands, 40)
	test.T(t, opts.Title, "From config")
	test.Float(t, opts.MarkerX, 1.5)
	test.Float(t, opts.MarkerY, -2.0)
	test.T(t, opts.ColorMap, "brewer:RdBu")
	test.T(t, opts.Samples, 1000)

	test.Error(t, os.WriteFile(filename, []byte("bands = \"many\""), 0644))
	_, err = cmd.options()
	test.That(t, err != nil)
}

func TestPlot(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "saddle.svg")
	cmd := &Plot{
		Function:   "saddle",
		Output:     filename,
		Backend:    "gonum",
		Resolution: 1.0,
		Samples:    30,
		Lines:      -1,
		Quiet:      true,
	}
	test.Error(t, cmd.plot())
	info, err := os.Stat(filename)
	test.Error(t, err)
	test.That(t, 0 < info.Size())

	cmd.Output = "-"
	test.That(t, cmd.plot() != nil)

	cmd.Output = filepath.Join(t.TempDir(), "saddle.png")
	cmd.Resolution = 0.0
	test.That(t, cmd.Run() != nil)
	_, err = os.Stat(cmd.Output)
	test.That(t, os.IsNotExist(err), err)
}
