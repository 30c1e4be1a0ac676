package contourplot

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseBackend(t *testing.T) {
	var tts = []struct {
		s       string
		backend Backend
		err     bool
	}{
		{"", CanvasBackend, false},
		{"canvas", CanvasBackend, false},
		{"Gonum", GonumBackend, false},
		{"cairo", 0, true},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			backend, err := ParseBackend(tt.s)
			test.T(t, err != nil, tt.err)
			test.T(t, backend, tt.backend)
		})
	}
	test.String(t, GonumBackend.String(), "gonum")
	test.String(t, Backend(5).String(), "Backend(5)")
}

func TestEncode(t *testing.T) {
	fig, err := New(Demo, smallOptions())
	test.Error(t, err)

	for _, backend := range []Backend{GonumBackend, CanvasBackend} {
		t.Run(fmt.Sprint(backend), func(t *testing.T) {
			opts := &WriteOptions{Backend: backend, Resolution: 1.0}

			buf := &bytes.Buffer{}
			test.Error(t, fig.Encode(buf, "svg", opts))
			test.That(t, strings.Contains(buf.String(), "<svg"))

			buf.Reset()
			test.Error(t, fig.Encode(buf, "png", opts))
			test.That(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

			buf.Reset()
			test.Error(t, fig.Encode(buf, ".PDF", opts))
			test.That(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

			err := fig.Encode(buf, "bmp", opts)
			test.That(t, errors.Is(err, ErrFormat), err)
		})
	}
}

func TestEncodeMinify(t *testing.T) {
	fig, err := New(Functions["saddle"], smallOptions())
	test.Error(t, err)

	opts := &WriteOptions{Backend: GonumBackend, Resolution: 1.0}
	plain := &bytes.Buffer{}
	test.Error(t, fig.Encode(plain, "svg", opts))

	opts.Minify = true
	minified := &bytes.Buffer{}
	test.Error(t, fig.Encode(minified, "svg", opts))
	test.That(t, strings.Contains(minified.String(), "<svg"))
	test.That(t, minified.Len() < plain.Len(), minified.Len(), plain.Len())
}

func TestSave(t *testing.T) {
	fig, err := New(Functions["ripple"], smallOptions())
	test.Error(t, err)

	dir := t.TempDir()
	for _, name := range []string{"canvas.png", "canvas.svg", "gonum.png", "gonum.tif"} {
		t.Run(name, func(t *testing.T) {
			opts := &WriteOptions{Resolution: 1.0}
			if strings.HasPrefix(name, "gonum") {
				opts.Backend = GonumBackend
			}
			filename := filepath.Join(dir, name)
			test.Error(t, fig.Save(filename, opts))

			info, err := os.Stat(filename)
			test.Error(t, err)
			test.That(t, 0 < info.Size())
		})
	}

	filename := filepath.Join(dir, "figure.eps")
	err = fig.Save(filename, &WriteOptions{Backend: CanvasBackend, Minify: true})
	test.That(t, errors.Is(err, ErrFormat), err)
	_, err = os.Stat(filename)
	test.That(t, os.IsNotExist(err))
}

func TestSaveCleanup(t *testing.T) {
	fig, err := New(Functions["x"], smallOptions())
	test.Error(t, err)

	dir := t.TempDir()
	for _, backend := range []Backend{CanvasBackend, GonumBackend} {
		t.Run(fmt.Sprint(backend), func(t *testing.T) {
			broken := *fig
			broken.Options.Width = 0

			filename := filepath.Join(dir, "broken-"+backend.String()+".png")
			err := broken.Save(filename, &WriteOptions{Backend: backend, Resolution: 1.0})
			test.That(t, err != nil)
			_, err = os.Stat(filename)
			test.That(t, os.IsNotExist(err), err)
		})
	}
}

func TestEncodeResolution(t *testing.T) {
	fig, err := New(Functions["x"], smallOptions())
	test.Error(t, err)

	for _, backend := range []Backend{CanvasBackend, GonumBackend} {
		t.Run(fmt.Sprint(backend), func(t *testing.T) {
			buf := &bytes.Buffer{}
			test.That(t, fig.Encode(buf, "png", &WriteOptions{Backend: backend}) != nil)
			test.That(t, fig.Encode(buf, "png", &WriteOptions{Backend: backend, Resolution: -1.0}) != nil)
			test.T(t, buf.Len(), 0)

			filename := filepath.Join(t.TempDir(), "zero.png")
			test.That(t, fig.Save(filename, &WriteOptions{Backend: backend}) != nil)
			_, err := os.Stat(filename)
			test.That(t, os.IsNotExist(err), err)
		})
	}
}
