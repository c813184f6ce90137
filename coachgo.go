// Package coachgo is a teaching aid for recording variable values across
// simulation steps and rendering them as line charts.
//
// Simple scripts use the package-level convenience functions, which share
// one process-wide recorder:
//
//	coachgo.SetMetadata("t", "s", "time")
//	for t < 2 {
//	    // the integration loop is the student's code
//	    coachgo.Track(coachgo.V("t", t), coachgo.V("y", y))
//	}
//	coachgo.Plot("y")
//
// Anything beyond a single simulation per process should construct its own
// recorder.Recorder instances instead; they are fully independent.
package coachgo

import (
	"sync"

	"github.com/coachgo/coachgo/chart"
	"github.com/coachgo/coachgo/recorder"
)

// V constructs a sample for Track. Alias of recorder.V.
var V = recorder.V

var (
	defaultOnce sync.Once
	defaultRec  *recorder.Recorder
	defaultCh   recorder.Chart
)

// Default returns the process-wide recorder, constructing it on first use.
// It is never reset automatically.
func Default() *recorder.Recorder {
	defaultOnce.Do(func() {
		defaultRec = recorder.New("Simulation")
		defaultCh = chart.NewTerminal()
	})
	return defaultRec
}

// SetChart replaces the chart backend the convenience Plot renders into.
// The default is a terminal chart on stdout.
func SetChart(c recorder.Chart) {
	Default()
	defaultCh = c
}

// Track records one step on the default recorder.
func Track(samples ...recorder.Sample) error {
	return Default().Track(samples...)
}

// SetMetadata stores display metadata on the default recorder.
func SetMetadata(variable, unit, label string) {
	Default().SetMetadata(variable, unit, label)
}

// Data returns a copy of a variable's series from the default recorder.
func Data(variable string) ([]float64, error) {
	return Default().Data(variable)
}

// Reset clears the default recorder's data and metadata.
func Reset() {
	Default().Reset()
}

// Plot renders the named series from the default recorder with default
// options.
func Plot(variables ...string) error {
	return PlotWith(recorder.DefaultPlotOptions(), variables...)
}

// PlotWith renders the named series from the default recorder with the
// given options.
func PlotWith(opts recorder.PlotOptions, variables ...string) error {
	return Default().Plot(defaultCh, opts, variables...)
}
