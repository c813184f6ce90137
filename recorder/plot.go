package recorder

import "fmt"

// Chart is the drawing surface Plot renders into. Implementations live in
// the chart package; the Recorder only prepares aligned sequences and label
// strings and drives the calls in a fixed order: Begin, one Line per
// series, axis labels and title, Legend and Grid when requested, Finish,
// Show.
//
// Line receives x and y slices of equal length that may contain NaN
// fillers; gap rendering is the chart's responsibility.
type Chart interface {
	Begin(width, height float64)
	Line(xs, ys []float64, style LineStyle, label string)
	XLabel(text string)
	YLabel(text string)
	Title(text string)
	Legend()
	Grid()
	Finish()
	Show(block bool) error
}

// LineStyle carries per-series drawing hints. Dashes uses the short
// matplotlib-flavoured codes students know: "-" solid, "--" dashed,
// ":" dotted, "-." dash-dot. Extra is passed through to the chart
// implementation untouched (color, width, ...).
type LineStyle struct {
	Dashes string
	Extra  map[string]string
}

// PlotOptions are the cosmetic knobs of a Plot call. The zero value is not
// useful; start from DefaultPlotOptions and override fields.
type PlotOptions struct {
	// Against names the x-axis variable. Default StepVar.
	Against string
	// Title overrides the recorder name as chart title.
	Title string
	// XLabel and YLabel override the metadata-derived axis labels.
	XLabel string
	YLabel string
	// Grid draws gridlines.
	Grid bool
	// Width and Height give the figure size in inches.
	Width  float64
	Height float64
	// Style is the line style applied to every plotted series.
	Style string
	// Extra is passed through to the chart per series.
	Extra map[string]string
	// Block makes Show wait until the chart is dismissed.
	Block bool
}

// DefaultPlotOptions mirrors the defaults students get when they call plot
// with no arguments: step on the x-axis, gridlines on, a 10x6 inch figure,
// solid lines, blocking display.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Against: StepVar,
		Grid:    true,
		Width:   10,
		Height:  6,
		Style:   "-",
		Block:   true,
	}
}

// Plot renders the named series against opts.Against on the given chart.
// With no names it plots every tracked series except the x-axis one, in
// first-seen order. It fails with ErrEmptyData before the first Track call
// and with ErrUnknownVariable when the x-axis or any named series was never
// tracked. Plot mutates nothing; its only effect is driving the chart.
func (r *Recorder) Plot(c Chart, opts PlotOptions, variables ...string) error {
	if r.steps == 0 {
		return fmt.Errorf("%w: call Track before Plot", ErrEmptyData)
	}

	against := opts.Against
	if against == "" {
		against = StepVar
	}
	xs, ok := r.series[against]
	if !ok {
		return fmt.Errorf("%w: x-axis %q", ErrUnknownVariable, against)
	}
	for _, v := range variables {
		if _, ok := r.series[v]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownVariable, v)
		}
	}

	if len(variables) == 0 {
		for _, v := range r.order {
			if v != against {
				variables = append(variables, v)
			}
		}
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 10
	}
	if height <= 0 {
		height = 6
	}

	c.Begin(width, height)
	style := LineStyle{Dashes: opts.Style, Extra: opts.Extra}
	for _, v := range variables {
		c.Line(xs, r.series[v], style, r.Label(v))
	}

	xlabel := opts.XLabel
	if xlabel == "" {
		xlabel = r.Label(against)
	}
	c.XLabel(xlabel)

	ylabel := opts.YLabel
	if ylabel == "" && len(variables) == 1 {
		ylabel = r.Label(variables[0])
	}
	if ylabel != "" {
		c.YLabel(ylabel)
	}

	title := opts.Title
	if title == "" {
		title = r.name
	}
	c.Title(title)

	if len(variables) > 1 {
		c.Legend()
	}
	if opts.Grid {
		c.Grid()
	}
	c.Finish()
	return c.Show(opts.Block)
}
