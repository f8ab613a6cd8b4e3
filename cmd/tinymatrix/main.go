// SPDX-License-Identifier: MIT

// Command tinymatrix prints a tour of the matrix package: two 3×3 samples,
// the diagonal partition of the first, an upper-triangular check, and the
// sum, difference, product, identity and column join of two 2×2 samples.
//
// Usage:
//
//	tinymatrix [-precision n] [-heatmap out.png] [-store out.tmx]
//	tinymatrix -watch m.tmx [-interval 1s] [-precision n]
//
// With -heatmap the product is rendered as a heat map (format from the file
// extension). With -store the first sample is written to a mapped file, reopened
// and multiplied by the second sample straight from the mapping.
//
// With -watch the tour is skipped: the given store file is mapped read-only
// and redrawn in place on every tick until interrupted, so writes made by
// another process through store.OpenRW show up live.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"
	"github.com/katalvlaran/tinymatrix/matrix"
	"github.com/katalvlaran/tinymatrix/render"
	"github.com/katalvlaran/tinymatrix/store"
)

type config struct {
	precision int
	heatmap   string
	store     string
	watch     string
	interval  time.Duration
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var cfg config
	flag.IntVar(&cfg.precision, "precision", matrix.DefaultPrecision, "fixed decimals in printed matrices")
	flag.StringVar(&cfg.heatmap, "heatmap", "", "write a heat map of the 2x2 product to this path (.png, .svg, .pdf)")
	flag.StringVar(&cfg.store, "store", "", "save the first 3x3 sample to this path and multiply from the mapping")
	flag.StringVar(&cfg.watch, "watch", "", "map this store file read-only and redraw it on every tick")
	flag.DurationVar(&cfg.interval, "interval", time.Second, "refresh interval for -watch")
	flag.Parse()

	if cfg.precision < 0 {
		logger.Error("invalid flag", "precision", cfg.precision)
		os.Exit(2)
	}
	if cfg.interval <= 0 {
		logger.Error("invalid flag", "interval", cfg.interval)
		os.Exit(2)
	}

	if cfg.watch != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := watch(ctx, os.Stdout, cfg, 0, logger); err != nil {
			logger.Error("watch failed", "path", cfg.watch, "err", err)
			stop()
			os.Exit(1)
		}

		return
	}

	if err := run(os.Stdout, cfg, logger); err != nil {
		logger.Error("tinymatrix failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg config, logger *slog.Logger) error {
	opt := matrix.WithPrecision(cfg.precision)
	show := func(m matrix.Matrix) error { return matrix.Fprint(w, m, opt) }

	m1, err := matrix.NewDenseFrom(3, 3, []float64{
		1, 2, 3,
		-2, -1, 10,
		5, 6, -1.5,
	})
	if err != nil {
		return err
	}
	m2, err := matrix.NewDenseFrom(3, 3, []float64{
		4, 1, 0,
		-2, -5, 1,
		-1, 3.2, 0,
	})
	if err != nil {
		return err
	}
	if err = show(m1); err != nil {
		return err
	}
	if err = show(m2); err != nil {
		return err
	}

	diag, above, below, err := m1.MainDiagonal()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, diag)
	fmt.Fprintln(w, above)
	fmt.Fprintln(w, below)

	upper, err := matrix.NewDenseFrom(3, 3, []float64{
		1, 2, 3,
		0, -1, 10,
		0, 0, 0,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, upper.IsUpperTriangular())

	a, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 4, 5})
	if err != nil {
		return err
	}
	b, err := matrix.NewDenseFrom(2, 2, []float64{5, 6, 8, 9})
	if err != nil {
		return err
	}

	steps := []struct {
		name string
		op   func() (*matrix.Dense, error)
	}{
		{"sum", func() (*matrix.Dense, error) { return matrix.Add(a, b) }},
		{"difference", func() (*matrix.Dense, error) { return matrix.Sub(a, b) }},
		{"product", func() (*matrix.Dense, error) { return matrix.Mul(a, b) }},
		{"identity", func() (*matrix.Dense, error) { return matrix.Identity(a) }},
		{"concat cols", func() (*matrix.Dense, error) { return matrix.ConcatCols(a, b) }},
	}
	var product *matrix.Dense
	for _, s := range steps {
		res, err := s.op()
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if s.name == "product" {
			product = res
		}
		if err = show(res); err != nil {
			return err
		}
	}

	if cfg.heatmap != "" {
		if err = render.SaveHeatmap(cfg.heatmap, product, render.WithTitle("a × b")); err != nil {
			return err
		}
		logger.Info("heat map written", "path", cfg.heatmap)
	}

	if cfg.store != "" {
		if err = roundTrip(w, cfg.store, m1, m2, show, logger); err != nil {
			return err
		}
	}

	return nil
}

// roundTrip saves m1, maps it back and multiplies by m2 through the mapping.
func roundTrip(w io.Writer, path string, m1, m2 *matrix.Dense, show func(matrix.Matrix) error, logger *slog.Logger) error {
	if err := store.Save(path, m1); err != nil {
		return err
	}
	mapped, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := mapped.Close(); cerr != nil {
			logger.Warn("close mapping", "path", path, "err", cerr)
		}
	}()
	logger.Info("matrix mapped", "path", path, "rows", mapped.Rows(), "cols", mapped.Cols())

	p, err := matrix.Mul(mapped, m2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "mapped product:")

	return show(p)
}

// watch redraws the mapped matrix at cfg.watch every cfg.interval until ctx
// is done. A positive frames stops after that many redraws.
func watch(ctx context.Context, out io.Writer, cfg config, frames int, logger *slog.Logger) error {
	mapped, err := store.Open(cfg.watch)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := mapped.Close(); cerr != nil {
			logger.Warn("close mapping", "path", cfg.watch, "err", cerr)
		}
	}()
	logger.Info("watching", "path", cfg.watch, "rows", mapped.Rows(), "cols", mapped.Cols(), "interval", cfg.interval)

	writer := uilive.New()
	writer.Out = out
	writer.RefreshInterval = cfg.interval

	writer.Start()
	defer writer.Stop()

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	// a frame goes to the live writer in one Write so a background refresh
	// never shows half of it
	var frame bytes.Buffer
	opt := matrix.WithPrecision(cfg.precision)
	for n := 1; ; n++ {
		frame.Reset()
		fmt.Fprintf(&frame, "%s %d×%d frame %d\n", cfg.watch, mapped.Rows(), mapped.Cols(), n)
		if err = matrix.Fprint(&frame, mapped, opt); err != nil {
			return err
		}
		if _, err = writer.Write(frame.Bytes()); err != nil {
			return err
		}
		if err = writer.Flush(); err != nil {
			return err
		}
		if frames > 0 && n >= frames {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
