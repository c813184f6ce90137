package chart

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/coachgo/coachgo/recorder"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Terminal renders series as an asciigraph line chart. The x-axis variable
// cannot shift column positions (asciigraph plots by sample index), so its
// label and range are shown as the chart caption instead; samples are drawn
// in record order.
type Terminal struct {
	out io.Writer

	cols, rows int
	series     [][]float64
	labels     []string
	xs         []float64
	xlabel     string
	ylabel     string
	title      string
	legend     bool
	content    string
}

// NewTerminal returns a Terminal chart writing to stdout.
func NewTerminal() *Terminal {
	return &Terminal{out: os.Stdout}
}

// SetOutput redirects non-blocking Show output, mainly for tests.
func (t *Terminal) SetOutput(w io.Writer) { t.out = w }

// Begin sizes the chart. Width and height arrive in inches; the terminal
// maps an inch to 8 columns and 2 graph rows, so the default 10x6 figure
// becomes an 80-column, 12-row graph.
func (t *Terminal) Begin(width, height float64) {
	t.cols = int(width * 8)
	t.rows = int(height * 2)
	t.series = nil
	t.labels = nil
	t.xs = nil
	t.legend = false
	t.content = ""
}

func (t *Terminal) Line(xs, ys []float64, _ recorder.LineStyle, label string) {
	if t.xs == nil {
		t.xs = xs
	}
	t.series = append(t.series, ys)
	t.labels = append(t.labels, label)
}

func (t *Terminal) XLabel(text string) { t.xlabel = text }
func (t *Terminal) YLabel(text string) { t.ylabel = text }
func (t *Terminal) Title(text string)  { t.title = text }
func (t *Terminal) Legend()            { t.legend = true }

// Grid is a no-op; asciigraph draws its own axis.
func (t *Terminal) Grid() {}

// Finish assembles the chart text.
func (t *Terminal) Finish() {
	caption := t.xlabel
	if lo, hi, ok := seriesRange(t.xs); ok {
		caption = fmt.Sprintf("%s  [%.4g .. %.4g]", t.xlabel, lo, hi)
	}

	graph := asciigraph.PlotMany(t.series,
		asciigraph.Height(t.rows),
		asciigraph.Width(t.cols),
		asciigraph.Caption(caption),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render(t.title))
	b.WriteString("\n")
	if t.ylabel != "" {
		b.WriteString(axisStyle.Render(t.ylabel))
		b.WriteString("\n")
	}
	b.WriteString(graph)
	if t.legend {
		b.WriteString("\n")
		b.WriteString(legendStyle.Render("series: " + strings.Join(t.labels, ", ")))
	}
	t.content = b.String()
}

// Show prints the chart. With block set it holds the chart on screen in a
// minimal bubbletea program until any key is pressed.
func (t *Terminal) Show(block bool) error {
	if !block {
		_, err := fmt.Fprintln(t.out, t.content)
		return err
	}
	p := tea.NewProgram(termModel{content: t.content}, tea.WithOutput(t.out))
	_, err := p.Run()
	return err
}

type termModel struct {
	content string
}

func (m termModel) Init() tea.Cmd { return nil }

func (m termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m termModel) View() string {
	return m.content + helpStyle.Render("press any key to close")
}
