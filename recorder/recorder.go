package recorder

import (
	"fmt"
	"math"
)

// StepVar is the implicit series holding the recording-call counter. It is
// seeded at construction and after Reset, and grows by one on every Track
// call, so every other series stays position-aligned with it.
const StepVar = "step"

// Sample is one (name, value) pair supplied to Track. Value may be any Go
// numeric type; anything else fails the call with ErrInvalidValue.
type Sample struct {
	Name  string
	Value any
}

// V constructs a Sample. It exists so call sites read like the variables
// they record:
//
//	rec.Track(recorder.V("t", t), recorder.V("y", y))
func V(name string, value any) Sample {
	return Sample{Name: name, Value: value}
}

type metadata struct {
	unit  string
	label string
}

// Recorder accumulates named series of float64 samples, one entry per Track
// call. Series that are not supplied on a given call are padded with NaN so
// all series keep equal length and stay plottable against a common x-axis.
//
// A Recorder is not safe for concurrent use; the intended caller is a
// single-threaded student script.
type Recorder struct {
	name   string
	order  []string
	series map[string][]float64
	meta   map[string]metadata
	steps  int
}

// New creates a Recorder with the given display name. The name becomes the
// default chart title and never changes afterwards.
func New(name string) *Recorder {
	r := &Recorder{name: name}
	r.seed()
	return r
}

func (r *Recorder) seed() {
	r.order = []string{StepVar}
	r.series = map[string][]float64{StepVar: {}}
	r.meta = map[string]metadata{StepVar: {label: "step"}}
	r.steps = 0
}

// Name returns the display name given at construction.
func (r *Recorder) Name() string { return r.name }

// Steps returns the number of Track calls recorded so far.
func (r *Recorder) Steps() int { return r.steps }

// Vars returns every tracked variable name in first-seen order, starting
// with the implicit step series.
func (r *Recorder) Vars() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Track records one simulation step. Each sample's value is converted to
// float64; a variable seen for the first time is back-filled with NaN for
// all prior steps, and a variable omitted this call receives one NaN
// filler. After Track returns, every series has exactly Steps() entries.
//
// A non-numeric value fails the whole call with ErrInvalidValue and leaves
// the recorder unchanged.
func (r *Recorder) Track(samples ...Sample) error {
	vals := make([]float64, len(samples))
	for i, s := range samples {
		v, ok := toFloat(s.Value)
		if !ok {
			return fmt.Errorf("%w: %q holds %T", ErrInvalidValue, s.Name, s.Value)
		}
		vals[i] = v
	}

	r.steps++
	r.series[StepVar] = append(r.series[StepVar], float64(r.steps))

	for i, s := range samples {
		seq, known := r.series[s.Name]
		if !known {
			seq = nanFill(r.steps - 1)
			r.order = append(r.order, s.Name)
		}
		if len(seq) == r.steps {
			// Same name twice in one call: last value wins.
			seq[r.steps-1] = vals[i]
		} else {
			seq = append(seq, vals[i])
		}
		r.series[s.Name] = seq
	}

	for name, seq := range r.series {
		if len(seq) < r.steps {
			r.series[name] = append(seq, math.NaN())
		}
	}
	return nil
}

// SetMetadata stores a display unit and label for a variable. An empty
// string leaves the corresponding field untouched, so units and labels can
// be set independently. The variable need not be tracked yet.
func (r *Recorder) SetMetadata(variable, unit, label string) {
	m := r.meta[variable]
	if unit != "" {
		m.unit = unit
	}
	if label != "" {
		m.label = label
	}
	r.meta[variable] = m
}

// Label derives the display string for a variable: the raw name when no
// metadata exists, the label alone when no unit is set, otherwise
// "label (unit)".
func (r *Recorder) Label(variable string) string {
	m, ok := r.meta[variable]
	if !ok {
		return variable
	}
	name := m.label
	if name == "" {
		name = variable
	}
	if m.unit == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, m.unit)
}

// Data returns a copy of the full recorded sequence for a variable,
// including NaN fillers. It fails with ErrNotFound for names that were
// never tracked.
func (r *Recorder) Data(variable string) ([]float64, error) {
	seq, ok := r.series[variable]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, variable)
	}
	out := make([]float64, len(seq))
	copy(out, seq)
	return out, nil
}

// Reset discards all recorded series and metadata and reseeds the step
// series, returning the Recorder to its post-construction state. The
// display name is kept. Calling Reset twice is the same as calling it once.
func (r *Recorder) Reset() {
	r.seed()
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

func nanFill(n int) []float64 {
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = math.NaN()
	}
	return seq
}
