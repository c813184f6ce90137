package chart

import (
	"fmt"
	"os"
	"strings"

	"github.com/coachgo/coachgo/internal/braille"
	"github.com/coachgo/coachgo/recorder"
)

// svgPalette cycles per series, on the dark background the terminal
// charts use.
var svgPalette = []string{
	"#00ff00", "#00ccff", "#ff00ff", "#ffaa00", "#ff4444", "#ffffff",
}

// dotScale is the rendered size of one braille dot in SVG pixels.
const dotScale = 4.0

type svgSeries struct {
	xs, ys []float64
	label  string
}

// SVG renders series as braille-style dot traces in an SVG file. Series
// are buffered until Show because the dot canvas needs global bounds
// before anything can be scaled.
type SVG struct {
	path string

	width, height float64
	series        []svgSeries
	xlabel        string
	ylabel        string
	title         string
	legend        bool
}

// NewSVG returns an SVG chart that writes to path on Show.
func NewSVG(path string) *SVG {
	return &SVG{path: path}
}

func (c *SVG) Begin(width, height float64) {
	c.width = width
	c.height = height
	c.series = nil
	c.legend = false
}

func (c *SVG) Line(xs, ys []float64, _ recorder.LineStyle, label string) {
	c.series = append(c.series, svgSeries{xs: xs, ys: ys, label: label})
}

func (c *SVG) XLabel(text string) { c.xlabel = text }
func (c *SVG) YLabel(text string) { c.ylabel = text }
func (c *SVG) Title(text string)  { c.title = text }
func (c *SVG) Legend()            { c.legend = true }

// Grid is a no-op; the dot traces carry no gridlines.
func (c *SVG) Grid() {}

func (c *SVG) Finish() {}

// Show renders and writes the file. Block is ignored for file output.
func (c *SVG) Show(block bool) error {
	doc := c.render()
	if err := os.WriteFile(c.path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("chart: write %s: %w", c.path, err)
	}
	return nil
}

func (c *SVG) render() string {
	cols := int(c.width * 8)
	rows := int(c.height * 4)

	// Shared bounds across every series, padded 10% so traces keep off
	// the canvas edge.
	minX, maxX, minY, maxY := c.bounds()
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	pxW := float64(cols) * 2 * dotScale
	pxH := float64(rows) * 4 * dotScale
	margin := 30.0

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, pxW+2*margin, pxH+2*margin, pxW+2*margin, pxH+2*margin)

	fmt.Fprintf(&sb, `<text x="%.0f" y="20" fill="#cccccc" font-family="monospace" font-size="14" text-anchor="middle">%s</text>
`, margin+pxW/2, svgEscape(c.title))

	for i, s := range c.series {
		canvas := braille.NewCanvas(cols, rows)
		dotW := float64(canvas.DotWidth() - 1)
		dotH := float64(canvas.DotHeight() - 1)

		for _, seg := range splitSegments(s.xs, s.ys) {
			px, py := -1, -1
			for j := range seg.xs {
				x := int((seg.xs[j] - minX) / rangeX * dotW)
				y := int(dotH - (seg.ys[j]-minY)/rangeY*dotH)
				if px >= 0 {
					canvas.Line(px, py, x, y)
				} else {
					canvas.Set(x, y)
				}
				px, py = x, y
			}
		}

		color := svgPalette[i%len(svgPalette)]
		fmt.Fprintf(&sb, "<g fill=\"%s\">\n", color)
		canvas.Dots(func(x, y int) {
			cx := margin + (float64(x)+0.5)*dotScale
			cy := margin + (float64(y)+0.5)*dotScale
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotScale*0.4)
		})
		sb.WriteString("</g>\n")

		if c.legend {
			fmt.Fprintf(&sb, `<text x="%.0f" y="%.0f" fill="%s" font-family="monospace" font-size="11" text-anchor="end">%s</text>
`, margin+pxW, margin+14*float64(i+1), color, svgEscape(s.label))
		}
	}

	fmt.Fprintf(&sb, `<text x="%.0f" y="%.0f" fill="#888888" font-family="monospace" font-size="12" text-anchor="middle">%s</text>
`, margin+pxW/2, pxH+2*margin-8, svgEscape(c.xlabel))
	if c.ylabel != "" {
		fmt.Fprintf(&sb, `<text x="14" y="%.0f" fill="#888888" font-family="monospace" font-size="12" text-anchor="middle" transform="rotate(-90 14 %.0f)">%s</text>
`, margin+pxH/2, margin+pxH/2, svgEscape(c.ylabel))
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (c *SVG) bounds() (minX, maxX, minY, maxY float64) {
	minX, maxX = 0, 1
	minY, maxY = 0, 1
	first := true
	for _, s := range c.series {
		xlo, xhi, xok := seriesRange(s.xs)
		ylo, yhi, yok := seriesRange(s.ys)
		if !xok || !yok {
			continue
		}
		if first {
			minX, maxX, minY, maxY = xlo, xhi, ylo, yhi
			first = false
			continue
		}
		minX = min(minX, xlo)
		maxX = max(maxX, xhi)
		minY = min(minY, ylo)
		maxY = max(maxY, yhi)
	}
	return minX, maxX, minY, maxY
}

func svgEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
