package recorder

import (
	"errors"
	"testing"
)

// stubChart records the call sequence Plot drives.
type stubChart struct {
	begun          bool
	width, height  float64
	lines          []stubLine
	xlabel, ylabel string
	title          string
	legend         bool
	grid           bool
	finished       bool
	shown          bool
	block          bool
}

type stubLine struct {
	xs, ys []float64
	style  LineStyle
	label  string
}

func (s *stubChart) Begin(w, h float64) {
	s.begun = true
	s.width, s.height = w, h
}

func (s *stubChart) Line(xs, ys []float64, style LineStyle, label string) {
	s.lines = append(s.lines, stubLine{xs: xs, ys: ys, style: style, label: label})
}

func (s *stubChart) XLabel(t string) { s.xlabel = t }
func (s *stubChart) YLabel(t string) { s.ylabel = t }
func (s *stubChart) Title(t string)  { s.title = t }
func (s *stubChart) Legend()         { s.legend = true }
func (s *stubChart) Grid()           { s.grid = true }
func (s *stubChart) Finish()         { s.finished = true }

func (s *stubChart) Show(block bool) error {
	s.shown = true
	s.block = block
	return nil
}

func trackedRecorder(t *testing.T) *Recorder {
	t.Helper()
	rec := New("demo")
	rec.SetMetadata("t", "s", "time")
	rec.SetMetadata("y", "m", "height")
	for i := 1; i <= 3; i++ {
		if err := rec.Track(V("t", float64(i)*0.1), V("y", float64(10-i)), V("v", float64(-i))); err != nil {
			t.Fatalf("track failed: %v", err)
		}
	}
	return rec
}

func TestPlotEmptyData(t *testing.T) {
	rec := New("empty")
	err := rec.Plot(&stubChart{}, DefaultPlotOptions(), "y")
	if !errors.Is(err, ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestPlotUnknownVariable(t *testing.T) {
	rec := trackedRecorder(t)

	err := rec.Plot(&stubChart{}, DefaultPlotOptions(), "z")
	if !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("expected ErrUnknownVariable for series, got %v", err)
	}

	opts := DefaultPlotOptions()
	opts.Against = "missing"
	err = rec.Plot(&stubChart{}, opts, "y")
	if !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("expected ErrUnknownVariable for x-axis, got %v", err)
	}
}

func TestPlotSingleSeries(t *testing.T) {
	rec := trackedRecorder(t)
	c := &stubChart{}

	opts := DefaultPlotOptions()
	opts.Against = "t"
	if err := rec.Plot(c, opts, "y"); err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	if !c.begun || !c.finished || !c.shown {
		t.Fatal("plot must drive Begin, Finish and Show")
	}
	if len(c.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.lines))
	}
	if c.lines[0].label != "height (m)" {
		t.Errorf("expected metadata-derived label, got %q", c.lines[0].label)
	}
	if c.lines[0].xs[0] != 0.1 {
		t.Errorf("expected x from 'against' series, got %v", c.lines[0].xs)
	}
	if c.xlabel != "time (s)" {
		t.Errorf("expected x-label from metadata, got %q", c.xlabel)
	}
	if c.ylabel != "height (m)" {
		t.Errorf("single series should set y-label, got %q", c.ylabel)
	}
	if c.title != "demo" {
		t.Errorf("title should default to recorder name, got %q", c.title)
	}
	if c.legend {
		t.Error("single series must not show a legend")
	}
	if !c.grid {
		t.Error("grid defaults on")
	}
	if !c.block {
		t.Error("show defaults to blocking")
	}
}

func TestPlotDefaultsToAllSeries(t *testing.T) {
	rec := trackedRecorder(t)
	c := &stubChart{}

	opts := DefaultPlotOptions()
	opts.Against = "t"
	if err := rec.Plot(c, opts); err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	// Everything except the x-axis, in insertion order: step, y, v.
	want := []string{"step", "height (m)", "v"}
	if len(c.lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(c.lines))
	}
	for i, label := range want {
		if c.lines[i].label != label {
			t.Errorf("line %d: expected label %q, got %q", i, label, c.lines[i].label)
		}
	}
	if !c.legend {
		t.Error("multiple series must show a legend")
	}
	if c.ylabel != "" {
		t.Errorf("multi-series plot must not guess a y-label, got %q", c.ylabel)
	}
}

func TestPlotOptionOverrides(t *testing.T) {
	rec := trackedRecorder(t)
	c := &stubChart{}

	opts := DefaultPlotOptions()
	opts.Against = "t"
	opts.Title = "My Title"
	opts.XLabel = "X"
	opts.YLabel = "Y"
	opts.Grid = false
	opts.Block = false
	opts.Width = 4
	opts.Height = 3
	opts.Style = "--"

	if err := rec.Plot(c, opts, "y"); err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	if c.title != "My Title" || c.xlabel != "X" || c.ylabel != "Y" {
		t.Errorf("overrides not applied: title=%q xlabel=%q ylabel=%q", c.title, c.xlabel, c.ylabel)
	}
	if c.grid {
		t.Error("grid should be off")
	}
	if c.block {
		t.Error("show should be non-blocking")
	}
	if c.width != 4 || c.height != 3 {
		t.Errorf("expected 4x3 figure, got %vx%v", c.width, c.height)
	}
	if c.lines[0].style.Dashes != "--" {
		t.Errorf("expected dashed style, got %q", c.lines[0].style.Dashes)
	}
}
