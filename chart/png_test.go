package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/coachgo/coachgo/recorder"
)

func TestDashPattern(t *testing.T) {
	tests := []struct {
		style string
		solid bool
	}{
		{"-", true},
		{"--", false},
		{":", false},
		{"-.", false},
		{"", true},
		{"bogus", true},
	}

	for _, tt := range tests {
		dashes := dashPattern(tt.style)
		if tt.solid && dashes != nil {
			t.Errorf("%q: expected solid line, got %v", tt.style, dashes)
		}
		if !tt.solid && len(dashes) == 0 {
			t.Errorf("%q: expected dash pattern", tt.style)
		}
	}
}

func TestDashPatternLengths(t *testing.T) {
	// Dash and gap lengths must be positive or vg refuses to stroke.
	for _, style := range []string{"--", ":", "-."} {
		for i, l := range dashPattern(style) {
			if l <= vg.Length(0) {
				t.Errorf("%q: dash element %d is %v", style, i, l)
			}
		}
	}
}

func TestPNGSavesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	c := NewPNG(path)

	c.Begin(4, 3)
	style := recorder.LineStyle{Dashes: "-"}
	c.Line([]float64{1, 2, 3, 4}, []float64{1, math.NaN(), 3, 4}, style, "a")
	c.Line([]float64{1, 2, 3, 4}, []float64{4, 3, 2, 1}, recorder.LineStyle{Dashes: "--"}, "b")
	c.XLabel("x")
	c.YLabel("y")
	c.Title("nan gaps")
	c.Legend()
	c.Grid()
	c.Finish()

	if err := c.Show(true); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected png file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("png file is empty")
	}
}

func TestPNGAllNaNSeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	c := NewPNG(path)

	c.Begin(4, 3)
	c.Line([]float64{1, 2}, []float64{math.NaN(), math.NaN()}, recorder.LineStyle{}, "ghost")
	c.Line([]float64{1, 2}, []float64{1, 2}, recorder.LineStyle{}, "real")
	c.XLabel("x")
	c.Title("ghost series")
	c.Finish()

	if err := c.Show(false); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected png file: %v", err)
	}
}
