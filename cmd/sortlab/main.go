package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/logging"
	"github.com/san-kum/sortlab/internal/sorting"
	"github.com/san-kum/sortlab/internal/tui"
	"github.com/san-kum/sortlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	configFile   string
	preset       string
	bars         int
	interval     int
	shape        string
	seed         int64
	rainbow      bool
	runOffScreen bool
	theme        string
	logLevel     string
	logFile      string

	// bench, sweep and scenario
	runs      int
	save      bool
	label     string
	sizes     []int
	shapes    []string
	maxIters  int
	frameRate int

	// svg
	steps     int
	outPath   string
	tracePath string
	svgW      int
	svgH      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "sortlab",
		Short:        "sorting algorithm visualizer and benchmark lab",
		SilenceUsage: true,
		RunE:         runPicker,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".sortlab", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&bars, "bars", config.DefaultBars, "number of bars")
	pf.IntVar(&interval, "interval", config.DefaultInterval, "step interval in milliseconds")
	pf.StringVar(&shape, "shape", "random", "dataset shape (random, reversed, mostly-ordered)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.BoolVar(&rainbow, "rainbow", false, "colour bars by value")
	pf.BoolVar(&runOffScreen, "run-off-screen", false, "keep stepping charts that are scrolled out of view")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "log file for interactive commands")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "pick algorithms and settings, then visualize",
		Args:  cobra.NoArgs,
		RunE:  runPicker,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithms...]",
		Short: "visualize algorithms side by side",
		RunE:  runInteractive,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [algorithms...]",
		Short: "plain terminal animation until every algorithm finishes",
		RunE:  runWatch,
	}
	watchCmd.Flags().IntVar(&frameRate, "fps", 30, "maximum frames per second")

	benchCmd := &cobra.Command{
		Use:   "bench [algorithms...]",
		Short: "benchmark algorithms over several seeds",
		RunE:  benchAlgorithms,
	}
	benchCmd.Flags().IntVar(&runs, "runs", 10, "runs per algorithm")
	benchCmd.Flags().BoolVar(&save, "save", false, "store results under --data")
	benchCmd.Flags().StringVar(&label, "label", "", "label for stored results")
	benchCmd.Flags().IntVar(&maxIters, "max-iterations", 0, "iteration cap per run (0 for default)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [algorithms...]",
		Short: "run every algorithm across sizes and shapes",
		RunE:  sweepAlgorithms,
	}
	sweepCmd.Flags().IntSliceVar(&sizes, "sizes", []int{8, 16, 32, 64, 128}, "bar counts")
	sweepCmd.Flags().StringSliceVar(&shapes, "shapes", []string{"random", "reversed", "mostly-ordered"}, "dataset shapes")
	sweepCmd.Flags().BoolVar(&save, "save", false, "store results under --data")
	sweepCmd.Flags().IntVar(&maxIters, "max-iterations", 0, "iteration cap per run (0 for default)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&save, "save", false, "store results under --data")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "summarize a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [algorithm]",
		Short: "write an svg frame of an algorithm after some steps",
		Args:  cobra.ExactArgs(1),
		RunE:  writeSVG,
	}
	svgCmd.Flags().IntVar(&steps, "steps", -1, "iterations before the frame (negative runs to completion)")
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <algorithm>.svg)")
	svgCmd.Flags().StringVar(&tracePath, "trace", "", "also write the inversion trace as svg")
	svgCmd.Flags().IntVar(&svgW, "width", 640, "svg width")
	svgCmd.Flags().IntVar(&svgH, "height", 240, "svg height")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, runCmd, watchCmd, benchCmd, sweepCmd, scenarioCmd,
		listCmd, showCmd, exportJSONCmd, exportCSVCmd, svgCmd, algorithmsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, preset, config file, changed flags and
// positional algorithm names, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, []string, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("bars") {
		cfg.Bars = bars
	}
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("shape") {
		cfg.Shape = shape
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("rainbow") {
		cfg.RainbowColors = rainbow
	}
	if flags.Changed("run-off-screen") {
		cfg.RunOffScreen = runOffScreen
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if len(args) > 0 {
		cfg.Algorithms = args
	}

	warnings := cfg.Normalize()
	return cfg, warnings, nil
}

// headless returns the resolved config and a stderr logger.
func headless(cmd *cobra.Command, args []string) (*config.Config, *log.Logger, error) {
	cfg, warnings, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	for _, w := range warnings {
		logger.Warn(w)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Debug("seed chosen", "seed", cfg.Seed)
	}
	return cfg, logger, nil
}

// interactiveLogger writes to --log-file when given. The terminal belongs
// to the UI, so without one logs are dropped.
func interactiveLogger(level string) (*log.Logger, io.Closer, error) {
	if logFile == "" {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, level), f, nil
}

func runPicker(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	chosen, started, err := tui.RunPicker(cfg)
	if err != nil || !started {
		return err
	}
	return launch(chosen, nil)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, warnings, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	return launch(cfg, warnings)
}

func launch(cfg *config.Config, warnings []string) error {
	logger, closer, err := interactiveLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()
	for _, w := range warnings {
		logger.Warn(w)
	}
	logger.Info("starting", "algorithms", strings.Join(cfg.Algorithms, ","), "bars", cfg.Bars)
	return viz.Run(cfg, viz.Options{Logger: logger, ExportDir: dataDir})
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := sorting.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range reg.Names() {
		fmt.Fprintf(w, "%s\t%s\n", name, sorting.Describe(name))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBARS\tINTERVAL\tSHAPE\tALGORITHMS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		algos := "all"
		if len(config.Presets[name].Algorithms) > 0 {
			algos = strings.Join(p.Algorithms, ",")
		}
		fmt.Fprintf(w, "%s\t%d\t%dms\t%s\t%s\n", name, p.Bars, p.Interval, p.Shape, algos)
	}
	return w.Flush()
}
