// SPDX-License-Identifier: MIT

// Package render draws matrices as heat maps with gonum.org/v1/plot.
//
// Row 0 is drawn at the top and column 0 at the left, so the picture reads
// like the printed matrix. Any matrix.Matrix works, including a store.Mapped.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/tinymatrix/matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// DefaultWidth is the default image width.
	DefaultWidth = 4 * vg.Inch
	// DefaultHeight is the default image height.
	DefaultHeight = 4 * vg.Inch
	// DefaultColors is the default number of palette colors.
	DefaultColors = 12
	// MinColors is the smallest palette the heat palette can build.
	MinColors = 8
)

const panicColorsInvalid = "render: WithColors: colors must be >= 8"

// Option configures heat-map rendering.
type Option func(*options)

type options struct {
	title  string
	width  vg.Length
	height vg.Length
	colors int
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSize sets the image size used by WriteHeatmap and SaveHeatmap.
func WithSize(width, height vg.Length) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithColors sets the palette size. Panics if n < MinColors.
func WithColors(n int) Option {
	if n < MinColors {
		panic(panicColorsInvalid)
	}

	return func(o *options) { o.colors = n }
}

func gatherOptions(opts ...Option) options {
	o := options{width: DefaultWidth, height: DefaultHeight, colors: DefaultColors}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// grid is a snapshot of a matrix laid out as a plotter.GridXYZ.
// plotter counts rows from the bottom, so grid row r is matrix row rows-1-r.
type grid struct {
	rows, cols int
	z          []float64
	min, max   float64
}

var _ plotter.GridXYZ = (*grid)(nil)

func newGrid(m matrix.Matrix) (*grid, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("render: %dx%d: %w", rows, cols, matrix.ErrBadShape)
	}

	g := &grid{rows: rows, cols: cols, z: make([]float64, rows*cols), min: math.Inf(1), max: math.Inf(-1)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			g.z[i*cols+j] = v
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			g.min, g.max = math.Min(g.min, v), math.Max(g.max, v)
		}
	}

	switch {
	case g.min > g.max: // no finite value
		g.min, g.max = 0, 1
	case g.min == g.max:
		g.min, g.max = g.min-0.5, g.max+0.5
	}

	return g, nil
}

func (g *grid) Dims() (c, r int) { return g.cols, g.rows }
func (g *grid) Z(c, r int) float64 { return g.z[(g.rows-1-r)*g.cols+c] }
func (g *grid) X(c int) float64 { return float64(c) }
func (g *grid) Y(r int) float64 { return float64(r) }
func (g *grid) Min() float64 { return g.min }
func (g *grid) Max() float64 { return g.max }

// indexTicks marks every integer cell centre. With flip > 0 the labels count
// down from flip-1 so row 0 reads at the top.
type indexTicks struct {
	flip int
}

func (t indexTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := math.Ceil(min); v <= max; v++ {
		n := int(v)
		if t.flip > 0 {
			n = t.flip - 1 - n
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(n)})
	}

	return ticks
}

// Heatmap builds a plot of m. The colour range spans the finite values;
// +Inf and -Inf cells take the hottest and coldest palette colours and NaN
// cells are left blank.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape (zero rows or columns),
//     or the first At error of m.
func Heatmap(m matrix.Matrix, opts ...Option) (*plot.Plot, error) {
	o := gatherOptions(opts...)
	g, err := newGrid(m)
	if err != nil {
		return nil, fmt.Errorf("render: Heatmap: %w", err)
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.X.Tick.Marker = indexTicks{}
	p.Y.Tick.Marker = indexTicks{flip: g.rows}
	pal := palette.Heat(o.colors, 1)
	hm := plotter.NewHeatMap(g, pal)
	// ±Inf cells lie outside [Min, Max] and take the palette ends.
	colors := pal.Colors()
	hm.Underflow, hm.Overflow = colors[0], colors[len(colors)-1]
	p.Add(hm)

	return p, nil
}

// WriteHeatmap renders m to w; format is one of "png", "svg", "pdf", "eps",
// "jpg", "tif".
func WriteHeatmap(w io.Writer, m matrix.Matrix, format string, opts ...Option) error {
	o := gatherOptions(opts...)
	p, err := Heatmap(m, opts...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return fmt.Errorf("render: WriteHeatmap: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: WriteHeatmap: %w", err)
	}

	return nil
}

// SaveHeatmap renders m to the file at path; the extension picks the format.
func SaveHeatmap(path string, m matrix.Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	p, err := Heatmap(m, opts...)
	if err != nil {
		return err
	}
	if err = p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("render: SaveHeatmap %s: %w", path, err)
	}

	return nil
}
