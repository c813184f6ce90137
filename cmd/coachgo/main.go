package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coachgo/coachgo/chart"
	"github.com/coachgo/coachgo/constants"
	"github.com/coachgo/coachgo/internal/config"
	"github.com/coachgo/coachgo/internal/scenario"
	"github.com/coachgo/coachgo/recorder"
)

var (
	configFile string
	dt         float64
	duration   float64
	height     float64
	velocity   float64
	chartKind  string
	outPath    string
	against    string
	plotVars   []string
	style      string
	title      string
	figWidth   float64
	figHeight  float64
	noGrid     bool
	noBlock    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coachgo",
		Short: "record and plot simulation variables",
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a bundled demo scenario and plot the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().Float64Var(&height, "height", 0, "initial height / displacement / temperature")
	runCmd.Flags().Float64Var(&velocity, "velocity", 0, "initial velocity")
	runCmd.Flags().StringVar(&chartKind, "chart", config.DefaultChart, "chart backend (term, png, svg)")
	runCmd.Flags().StringVar(&outPath, "out", "", "output file for png/svg charts")
	runCmd.Flags().StringVar(&against, "against", recorder.StepVar, "x-axis variable")
	runCmd.Flags().StringSliceVar(&plotVars, "vars", nil, "variables to plot (default: all)")
	runCmd.Flags().StringVar(&style, "style", config.DefaultStyle, "line style (-, --, :, -.)")
	runCmd.Flags().StringVar(&title, "title", "", "chart title")
	runCmd.Flags().Float64Var(&figWidth, "width", config.DefaultWidth, "figure width (inches)")
	runCmd.Flags().Float64Var(&figHeight, "height-in", config.DefaultHeight, "figure height (inches)")
	runCmd.Flags().BoolVar(&noGrid, "no-grid", false, "disable gridlines")
	runCmd.Flags().BoolVar(&noBlock, "no-block", false, "do not wait for the chart to be dismissed")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list bundled scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, name := range scenario.Names() {
				s, _ := scenario.Get(name)
				fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
			}
			w.Flush()
		},
	}

	constantsCmd := &cobra.Command{
		Use:   "constants",
		Short: "list the bundled physical constants",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVALUE\tUNIT")
			for _, e := range constants.Table() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Unit)
			}
			w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "coachgo.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, scenariosCmd, constantsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(cmd, cfg)

	if len(args) == 1 {
		cfg.Scenario = args[0]
	}
	sc, err := scenario.Get(cfg.Scenario)
	if err != nil {
		return err
	}

	rec := recorder.New(sc.Name)
	if err := sc.Run(rec, scenario.Params{
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Height:   cfg.Height,
		Velocity: cfg.Velocity,
	}); err != nil {
		return err
	}

	c, err := newChart(cfg.Plot)
	if err != nil {
		return err
	}

	opts := recorder.DefaultPlotOptions()
	opts.Against = cfg.Plot.Against
	opts.Title = cfg.Plot.Title
	opts.XLabel = cfg.Plot.XLabel
	opts.YLabel = cfg.Plot.YLabel
	opts.Style = cfg.Plot.Style
	opts.Grid = !cfg.Plot.NoGrid
	opts.Block = !cfg.Plot.NoBlock
	opts.Width = cfg.Plot.Width
	opts.Height = cfg.Plot.Height

	return rec.Plot(c, opts, cfg.Plot.Vars...)
}

// applyFlags copies every flag the user set explicitly over the config
// file values, so the precedence is flags > config file > defaults.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("dt") {
		cfg.Dt = dt
	}
	if f.Changed("time") {
		cfg.Duration = duration
	}
	if f.Changed("height") {
		cfg.Height = height
	}
	if f.Changed("velocity") {
		cfg.Velocity = velocity
	}
	if f.Changed("chart") {
		cfg.Plot.Chart = chartKind
	}
	if f.Changed("out") {
		cfg.Plot.Out = outPath
	}
	if f.Changed("against") {
		cfg.Plot.Against = against
	}
	if f.Changed("vars") {
		cfg.Plot.Vars = plotVars
	}
	if f.Changed("style") {
		cfg.Plot.Style = style
	}
	if f.Changed("title") {
		cfg.Plot.Title = title
	}
	if f.Changed("width") {
		cfg.Plot.Width = figWidth
	}
	if f.Changed("height-in") {
		cfg.Plot.Height = figHeight
	}
	if f.Changed("no-grid") {
		cfg.Plot.NoGrid = noGrid
	}
	if f.Changed("no-block") {
		cfg.Plot.NoBlock = noBlock
	}
}

func newChart(p config.PlotConfig) (recorder.Chart, error) {
	switch p.Chart {
	case "", "term":
		return chart.NewTerminal(), nil
	case "png":
		out := p.Out
		if out == "" {
			out = "coachgo.png"
		}
		return chart.NewPNG(out), nil
	case "svg":
		out := p.Out
		if out == "" {
			out = "coachgo.svg"
		}
		return chart.NewSVG(out), nil
	default:
		return nil, fmt.Errorf("unknown chart backend %q (want term, png or svg)", p.Chart)
	}
}
