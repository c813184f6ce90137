package chart

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coachgo/coachgo/recorder"
)

func TestSVGRender(t *testing.T) {
	c := NewSVG("unused.svg")

	c.Begin(10, 6)
	style := recorder.LineStyle{Dashes: "-"}
	c.Line([]float64{0, 1, 2, 3}, []float64{0, 1, math.NaN(), 3}, style, "a & b")
	c.Line([]float64{0, 1, 2, 3}, []float64{3, 2, 1, 0}, style, "down")
	c.XLabel("time (s)")
	c.YLabel("height (m)")
	c.Title("demo <chart>")
	c.Legend()
	c.Finish()

	doc := c.render()

	if !strings.HasPrefix(doc, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, "</svg>") {
		t.Error("not a complete svg document")
	}
	if !strings.Contains(doc, "<circle") {
		t.Error("expected dot circles for the traces")
	}
	if !strings.Contains(doc, "demo &lt;chart&gt;") {
		t.Error("title must be escaped")
	}
	if !strings.Contains(doc, "a &amp; b") || !strings.Contains(doc, "down") {
		t.Error("legend should carry every series label")
	}
	if !strings.Contains(doc, "time (s)") || !strings.Contains(doc, "height (m)") {
		t.Error("axis labels missing")
	}
}

func TestSVGNoLegendWhenNotRequested(t *testing.T) {
	c := NewSVG("unused.svg")
	c.Begin(10, 6)
	c.Line([]float64{0, 1}, []float64{0, 1}, recorder.LineStyle{}, "solo")
	c.XLabel("x")
	c.Title("t")
	c.Finish()

	if strings.Contains(c.render(), "solo") {
		t.Error("label must not appear without Legend()")
	}
}

func TestSVGShowWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	c := NewSVG(path)

	c.Begin(10, 6)
	c.Line([]float64{0, 1, 2}, []float64{0, 1, 4}, recorder.LineStyle{}, "y")
	c.XLabel("x")
	c.Title("t")
	c.Finish()

	if err := c.Show(true); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected svg file: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("file is not a complete svg document")
	}
}

func TestSVGConstantSeries(t *testing.T) {
	// A flat series has zero y-range; rendering must not divide by zero.
	c := NewSVG("unused.svg")
	c.Begin(10, 6)
	c.Line([]float64{0, 1, 2}, []float64{5, 5, 5}, recorder.LineStyle{}, "flat")
	c.XLabel("x")
	c.Title("flat")
	c.Finish()

	doc := c.render()
	if !strings.Contains(doc, "<circle") {
		t.Error("flat series should still produce dots")
	}
}
