// Package chart provides implementations of the recorder.Chart interface:
// an asciigraph terminal chart, a gonum/plot PNG writer and a braille-dot
// SVG writer. All three accept NaN fillers in the incoming series and
// render them as gaps.
package chart

import "math"

// segment is a contiguous run of samples with no NaN in either coordinate.
type segment struct {
	xs, ys []float64
}

// splitSegments cuts a paired (x, y) sequence at every NaN so each returned
// segment can be drawn as an unbroken line. Points where either coordinate
// is NaN belong to no segment; single-point segments are kept so isolated
// samples between gaps still render.
func splitSegments(xs, ys []float64) []segment {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	var segs []segment
	start := -1
	for i := 0; i < n; i++ {
		ok := !math.IsNaN(xs[i]) && !math.IsNaN(ys[i])
		switch {
		case ok && start < 0:
			start = i
		case !ok && start >= 0:
			segs = append(segs, segment{xs: xs[start:i], ys: ys[start:i]})
			start = -1
		}
	}
	if start >= 0 {
		segs = append(segs, segment{xs: xs[start:n], ys: ys[start:n]})
	}
	return segs
}

// seriesRange reports the min and max over every non-NaN value of vs.
// ok is false when no finite value exists.
func seriesRange(vs []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		ok = true
	}
	return lo, hi, ok
}
