// SPDX-License-Identifier: MIT

// ringmaze generates a circular perfect maze and writes it as SVG or PNG,
// prints its borders, or previews it in the terminal.
//
// Usage:
//
//	ringmaze [-rings 5] [-slices 10] [-min-dist 0.3] [-seed 0] [-out maze.svg]
//	         [-ring-width 20] [-line-width 2] [-preview] [-verify] [-v]
//
// -rings counts every ring including the boundary; -seed 0 picks a seed from
// the clock and logs it so the maze can be reproduced.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/ringmaze/maze"
	"github.com/katalvlaran/ringmaze/render"
	"github.com/katalvlaran/ringmaze/verify"
)

// errFormat indicates an output path with an unsupported extension.
var errFormat = errors.New("ringmaze: output must end in .svg or .png")

type options struct {
	rings     int
	slices    int
	minDist   float64
	seed      int64
	out       string
	ringWidth float64
	lineWidth float64
	preview   bool
	verify    bool
	verbose   bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	maze.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout, logger); err != nil {
		logger.Error("ringmaze failed", "err", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("ringmaze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.rings, "rings", 5, "number of rings including the boundary (≥ 2)")
	fs.IntVar(&o.slices, "slices", 10, "slices on the centre ring")
	fs.Float64Var(&o.minDist, "min-dist", 0.3, "minimum gap between subdivision points, in slice widths")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.StringVar(&o.out, "out", "", "output file, .svg or .png (default: print borders)")
	fs.Float64Var(&o.ringWidth, "ring-width", render.DefaultRingWidth, "distance between ring walls in output units")
	fs.Float64Var(&o.lineWidth, "line-width", 2, "PNG stroke width in pixels")
	fs.BoolVar(&o.preview, "preview", false, "show the maze in the terminal")
	fs.BoolVar(&o.verify, "verify", false, "check the perfect-maze properties before writing")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(stderr, err)
		return o, err
	}
	return o, nil
}

func run(ctx context.Context, o options, stdout io.Writer, logger *slog.Logger) error {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("generating", "rings", o.rings, "slices", o.slices, "min-dist", o.minDist, "seed", seed)

	m, err := maze.Generate(ctx, o.rings-1, o.slices, o.minDist, maze.WithSeed(seed))
	if err != nil {
		return err
	}
	from, to := m.Entrance()
	logger.Info("maze ready", "coordinates", m.Grid.Len(), "borders", len(m.Borders), "paths", m.Paths,
		"entrance", fmt.Sprintf("%s→%s", from, to))

	if o.verify {
		rep, err := verify.Check(m.Grid, m.Borders)
		if err != nil {
			return err
		}
		logger.Info("verified", "report", rep.String())
	}

	layout := render.NewLayout(m.Grid.Rings())
	layout.RingWidth = o.ringWidth
	if err := layout.Validate(); err != nil {
		return err
	}

	switch {
	case o.out != "":
		if err := writeFile(o.out, layout, m.Borders, o.lineWidth); err != nil {
			return err
		}
		logger.Info("written", "path", o.out)
	case !o.preview:
		for _, b := range m.Borders {
			fmt.Fprintln(stdout, b)
		}
	}

	if o.preview {
		return preview(layout, m, seed)
	}
	return nil
}

func writeFile(path string, l render.Layout, borders []maze.Border, lineWidth float64) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("%q: %w", path, errFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if ext == ".svg" {
		c := render.NewSVGCanvas(l)
		render.Trace(l, borders, c)
		_, err = c.WriteTo(f)
		return err
	}

	c := render.NewPNGCanvas(l, lineWidth)
	defer c.Close()
	render.Trace(l, borders, c)
	return c.Encode(f)
}

// preview draws the maze on the terminal and waits for a key.
func preview(l render.Layout, m *maze.Maze, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	w, h := screen.Size()
	cols := w
	if rows := 2 * (h - 1); rows < cols {
		cols = rows // a square maze needs half as many rows as columns
	}
	c := render.NewTermCanvas(l, cols)
	render.Trace(l, m.Borders, c)

	screen.Clear()
	c.Draw(screen, 0, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	caption := fmt.Sprintf("seed %d · %d cells · any key quits", seed, m.Grid.Len())
	render.Caption(screen, 0, c.Rows(), caption, tcell.StyleDefault.Foreground(tcell.ColorGray))
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
