package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortlab/internal/chart"
	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/export"
	"github.com/san-kum/sortlab/internal/scheduler"
	"github.com/san-kum/sortlab/internal/sorting"
	"github.com/san-kum/sortlab/internal/storage"
	"github.com/san-kum/sortlab/internal/tui"
	"github.com/san-kum/sortlab/internal/viz"
	"github.com/spf13/cobra"
)

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := headless(cmd, args)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	sched := scheduler.New(cfg.IntervalDuration(), logger)
	sched.RunOffScreen = true
	chartOpts := chart.Options{Width: cfg.Chart.Width, Height: cfg.Chart.Height, FPS: chart.DefaultFPS}
	if err := sched.AddAlgorithms(sorting.NewRegistry(), cfg.Algorithms, rng, chartOpts); err != nil {
		return err
	}
	sched.Replace(dataset.Generate(cfg.Bars, dataset.Shape(cfg.Shape), rng))

	palette := viz.GetTheme(cfg.Theme).Palette(cfg.RainbowColors, cfg.Bars)
	live := tui.NewLiveRenderer(os.Stdout, cfg.Chart.Width, cfg.Chart.Height, frameRate, palette)

	ctx, stop := signalContext()
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	live.Start()
	defer live.Stop()
	live.OnFrame(sched)

	err = sched.Run(ctx, nil, func(s *scheduler.Scheduler) {
		live.OnFrame(s)
		if s.Done() {
			cancel()
		}
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	for _, sl := range sched.Slots() {
		snap := sl.Snapshot()
		logger.Info("finished", "algorithm", sl.Name, "iterations", snap["iterations"], "writes", snap["writes"])
	}
	return err
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, logger, err := headless(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	reg := sorting.NewRegistry()
	var all []*experiment.Result
	for _, algo := range cfg.Algorithms {
		base := experiment.Config{
			Algorithm:     algo,
			Bars:          cfg.Bars,
			Shape:         dataset.Shape(cfg.Shape),
			MaxIterations: maxIters,
		}
		logger.Debug("benchmarking", "algorithm", algo, "runs", runs)
		results, err := experiment.NewEnsemble(base, reg, runs, cfg.Seed).Run(ctx)
		if err != nil {
			var runErr *experiment.RunError
			if !errors.As(err, &runErr) {
				return err
			}
			logger.Warn("run failed", "algorithm", runErr.Algorithm, "iteration", runErr.Iteration, "err", runErr.Wrapped)
		}
		all = append(all, results...)
	}

	fmt.Printf("%d bars, %s, %d runs per algorithm\n\n", cfg.Bars, cfg.Shape, runs)
	if err := printSummaries(experiment.Summarize(all)); err != nil {
		return err
	}

	if save {
		return saveResults("bench", label, all)
	}
	return nil
}

func printSummaries(summaries []experiment.Summary) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tRUNS\tSORTED\tMIN ITER\tMAX ITER\tMEAN ITER\tMEAN WRITES")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.1f\t%.1f\n",
			s.Algorithm, s.Runs, s.Sorted, s.MinIterations, s.MaxIterations, s.MeanIterations, s.MeanWrites)
	}
	return w.Flush()
}

func saveResults(kind, lbl string, results []*experiment.Result) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(kind, lbl, results)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved: %s\n", id)
	return nil
}

func sweepAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, logger, err := headless(cmd, args)
	if err != nil {
		return err
	}

	var parsed []dataset.Shape
	for _, s := range shapes {
		sh, err := dataset.ParseShape(s)
		if err != nil {
			return err
		}
		parsed = append(parsed, sh)
	}
	if len(parsed) == 0 {
		parsed = []dataset.Shape{dataset.Random}
	}

	ctx, stop := signalContext()
	defer stop()

	sw := &experiment.Sweep{
		Algorithms:    cfg.Algorithms,
		Bars:          sizes,
		Shapes:        parsed,
		Seed:          cfg.Seed,
		MaxIterations: maxIters,
	}
	start := time.Now()
	points, err := sw.Run(ctx)
	if err != nil {
		return err
	}
	logger.Debug("sweep finished", "points", len(points), "elapsed", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tBARS\tSHAPE\tITERATIONS\tWRITES\tSORTED")
	var results []*experiment.Result
	for _, p := range points {
		if p.Err != nil {
			fmt.Fprintf(w, "%s\t%d\t%s\t-\t-\t%v\n", p.Algorithm, p.Bars, p.Shape, p.Err)
			continue
		}
		results = append(results, p.Result)
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%.0f\t%v\n",
			p.Algorithm, p.Bars, p.Shape, p.Result.Iterations, p.Result.Metrics["writes"], p.Result.Sorted)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	if len(sizes) > 1 {
		for _, algo := range cfg.Algorithms {
			series := experiment.Series(points, algo, parsed[0], "iterations")
			if len(series) < 2 {
				continue
			}
			fmt.Println(asciigraph.Plot(series,
				asciigraph.Height(8),
				asciigraph.Width(60),
				asciigraph.Caption(fmt.Sprintf("%s iterations by size (%s)", algo, parsed[0])),
			))
			fmt.Println()
		}
	}

	if best, ok := experiment.Best(points, "iterations"); ok {
		fmt.Printf("fewest iterations: %s (%d bars, %s)\n", best.Algorithm, best.Bars, best.Shape)
	}
	if worst, ok := experiment.Worst(points, "iterations"); ok {
		fmt.Printf("most iterations:   %s (%d bars, %s)\n", worst.Algorithm, worst.Bars, worst.Shape)
	}

	if save {
		return saveResults("sweep", "", results)
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	_, logger, err := headless(cmd, nil)
	if err != nil {
		return err
	}

	sc, err := experiment.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	stepResults, err := experiment.RunScenario(ctx, sc, sorting.NewRegistry(), logger)
	for i, step := range stepResults {
		fmt.Printf("step %d: %s\n", i+1, step.Step.Algorithm)
		if perr := printSummaries(experiment.Summarize(step.Results)); perr != nil {
			return perr
		}
		fmt.Println()
		// steps with save_as are always stored; --save stores the rest too
		if step.Step.SaveAs != "" || save {
			serr := saveResults("scenario", step.Step.SaveAs, step.Results)
			if serr != nil && !errors.Is(serr, storage.ErrNoResults) {
				return serr
			}
		}
	}
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tLABEL\tTIME\tRUNS\tALGORITHMS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Kind,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Runs,
			strings.Join(run.Algorithms, ","),
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	results, err := st.LoadResults(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kind: %s\n", meta.Kind)
	if meta.Label != "" {
		fmt.Printf("label: %s\n", meta.Label)
	}
	fmt.Printf("results: %d\n\n", len(results))

	if err := printSummaries(meta.Summaries); err != nil {
		return err
	}
	fmt.Println()

	for _, algo := range meta.Algorithms {
		var series []float64
		for _, r := range results {
			if r.Algorithm == algo {
				series = append(series, float64(r.Iterations))
			}
		}
		if len(series) < 2 {
			continue
		}
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption(algo+" iterations per run"),
		))
		fmt.Println()
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportCSV(os.Stdout, args[0])
}

func writeSVG(cmd *cobra.Command, args []string) error {
	cfg, logger, err := headless(cmd, args)
	if err != nil {
		return err
	}
	algo := args[0]
	if len(cfg.Algorithms) != 1 || cfg.Algorithms[0] != algo {
		return fmt.Errorf("%w: %s", sorting.ErrUnknownAlgorithm, algo)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	st, err := sorting.NewRegistry().New(algo, rng)
	if err != nil {
		return err
	}
	data := dataset.Generate(cfg.Bars, dataset.Shape(cfg.Shape), rng)
	input := dataset.Clone(data)
	st.Reset(data)

	limit := steps
	if limit < 0 {
		limit = experiment.DefaultMaxIterations
	}
	stepped := 0
	for stepped < limit {
		stepped++
		if st.Iterate(data) {
			break
		}
	}

	palette := viz.GetTheme(cfg.Theme).Palette(cfg.RainbowColors, cfg.Bars)
	c := export.Snapshot(algo, st, data, svgW, svgH)
	if outPath == "" {
		outPath = algo + ".svg"
	}
	if err := os.WriteFile(outPath, []byte(export.ChartSVG(c.Name, c.Bars, svgW, svgH, palette)), 0644); err != nil {
		return err
	}
	logger.Info("wrote frame", "path", outPath, "iterations", stepped, "sorted", dataset.IsSorted(data))

	if tracePath == "" {
		return nil
	}
	res, err := experiment.Run(context.Background(), experiment.Config{
		Algorithm: algo,
		Data:      input,
		Seed:      cfg.Seed,
		Trace:     true,
	})
	if err != nil {
		return err
	}
	svg := export.TraceSVG(res.Trace, svgW, svgH, string(palette.Active))
	if err := os.WriteFile(tracePath, []byte(svg), 0644); err != nil {
		return err
	}
	logger.Info("wrote trace", "path", tracePath, "points", len(res.Trace))
	return nil
}
