package chart

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/coachgo/coachgo/recorder"
)

// PNG renders series into a PNG file via gonum/plot. NaN fillers split a
// series into separate line segments so gaps stay visible, matching how
// matplotlib leaves holes for NaN samples.
type PNG struct {
	path string

	width, height float64
	p             *plot.Plot
	count         int
	legend        bool
	entries       []pngLegendEntry
}

type pngLegendEntry struct {
	label string
	line  *plotter.Line
}

// NewPNG returns a PNG chart that writes to path on Show.
func NewPNG(path string) *PNG {
	return &PNG{path: path}
}

func (c *PNG) Begin(width, height float64) {
	c.width = width
	c.height = height
	c.p = plot.New()
	c.count = 0
	c.legend = false
	c.entries = nil
}

func (c *PNG) Line(xs, ys []float64, style recorder.LineStyle, label string) {
	color := plotutil.Color(c.count)
	width := vg.Points(1.5)
	if w, ok := style.Extra["width"]; ok {
		if f, err := strconv.ParseFloat(w, 64); err == nil && f > 0 {
			width = vg.Points(f)
		}
	}

	var first *plotter.Line
	for _, seg := range splitSegments(xs, ys) {
		pts := make(plotter.XYs, len(seg.xs))
		for i := range seg.xs {
			pts[i].X = seg.xs[i]
			pts[i].Y = seg.ys[i]
		}
		ln, err := plotter.NewLine(pts)
		if err != nil {
			continue
		}
		ln.LineStyle.Color = color
		ln.LineStyle.Width = width
		ln.LineStyle.Dashes = dashPattern(style.Dashes)
		c.p.Add(ln)
		if first == nil {
			first = ln
		}
	}
	if first != nil {
		c.entries = append(c.entries, pngLegendEntry{label: label, line: first})
	}
	c.count++
}

func (c *PNG) XLabel(text string) { c.p.X.Label.Text = text }
func (c *PNG) YLabel(text string) { c.p.Y.Label.Text = text }
func (c *PNG) Title(text string)  { c.p.Title.Text = text }
func (c *PNG) Legend()            { c.legend = true }

func (c *PNG) Grid() {
	c.p.Add(plotter.NewGrid())
}

func (c *PNG) Finish() {
	if !c.legend {
		return
	}
	for _, e := range c.entries {
		c.p.Legend.Add(e.label, e.line)
	}
	c.p.Legend.Top = true
}

// Show saves the figure. A file has no window to dismiss, so block is
// accepted and ignored.
func (c *PNG) Show(block bool) error {
	w := vg.Length(c.width) * vg.Inch
	h := vg.Length(c.height) * vg.Inch
	if err := c.p.Save(w, h, c.path); err != nil {
		return fmt.Errorf("chart: save %s: %w", c.path, err)
	}
	return nil
}

// dashPattern maps the matplotlib-flavoured style codes onto vg dash
// sequences. Unknown codes fall back to a solid line.
func dashPattern(style string) []vg.Length {
	switch style {
	case "--":
		return []vg.Length{vg.Points(6), vg.Points(4)}
	case ":":
		return []vg.Length{vg.Points(1.5), vg.Points(3)}
	case "-.":
		return []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1.5), vg.Points(3)}
	default:
		return nil
	}
}
