// Package recorder implements an in-memory time-series recorder for
// teaching simulations.
//
// A [Recorder] owns a named collection of float64 series, one entry per
// [Recorder.Track] call. Variables may be tracked inconsistently across
// steps; the recorder keeps every series length-aligned by back-filling
// and padding with NaN, so any series can be plotted against any other.
//
//	rec := recorder.New("Free fall")
//	rec.SetMetadata("t", "s", "time")
//	rec.SetMetadata("y", "m", "height")
//	for y > 0 {
//	    // integration loop lives in the caller
//	    rec.Track(recorder.V("t", t), recorder.V("y", y))
//	}
//	rec.Plot(chart.NewTerminal(), recorder.DefaultPlotOptions(), "y")
//
// Rendering is delegated to a [Chart] implementation; the recorder only
// prepares aligned (x, y) sequences and display labels.
package recorder
