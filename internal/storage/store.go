// Package storage keeps benchmark runs on disk, one directory per run with
// a metadata.json and a results.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/sortlab/internal/experiment"
)

var ErrNoResults = errors.New("storage: nothing to save")

var csvHeader = []string{
	"algorithm", "bars", "shape", "seed", "iterations",
	"writes", "inversions", "sorted", "elapsed_us",
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string               `json:"id"`
	Kind       string               `json:"kind"`
	Label      string               `json:"label,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
	Algorithms []string             `json:"algorithms"`
	Runs       int                  `json:"runs"`
	Summaries  []experiment.Summary `json:"summaries"`
}

// Save writes one run. kind names the command that produced it.
func (s *Store) Save(kind, label string, results []*experiment.Result) (string, error) {
	summaries := experiment.Summarize(results)
	if len(summaries) == 0 {
		return "", ErrNoResults
	}

	now := time.Now()
	runID := fmt.Sprintf("%s_%s", kind, now.Format("20060102-150405"))
	runDir := filepath.Join(s.baseDir, runID)
	for n := 2; ; n++ {
		if _, err := os.Stat(runDir); os.IsNotExist(err) {
			break
		}
		runID = fmt.Sprintf("%s_%s-%d", kind, now.Format("20060102-150405"), n)
		runDir = filepath.Join(s.baseDir, runID)
	}
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      kind,
		Label:     label,
		Timestamp: now,
		Summaries: summaries,
	}
	for _, sum := range summaries {
		meta.Algorithms = append(meta.Algorithms, sum.Algorithm)
		meta.Runs += sum.Runs
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(runDir, "results.csv"), results); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, results []*experiment.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		row := []string{
			r.Algorithm,
			strconv.Itoa(r.Bars),
			r.Shape,
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Iterations),
			strconv.FormatFloat(r.Metrics["writes"], 'f', 0, 64),
			strconv.FormatFloat(r.Metrics["inversions"], 'f', 0, 64),
			strconv.FormatBool(r.Sorted),
			strconv.FormatInt(r.Elapsed.Microseconds(), 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns stored runs, newest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadResults(runID string) ([]*experiment.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "results.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []*experiment.Result{}, nil
	}

	results := make([]*experiment.Result, 0, len(records)-1)
	for i, rec := range records[1:] {
		res, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("results.csv row %d: %w", i+2, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func parseRow(rec []string) (*experiment.Result, error) {
	bars, err := strconv.Atoi(rec[1])
	if err != nil {
		return nil, err
	}
	seed, err := strconv.ParseInt(rec[3], 10, 64)
	if err != nil {
		return nil, err
	}
	iterations, err := strconv.Atoi(rec[4])
	if err != nil {
		return nil, err
	}
	writes, err := strconv.ParseFloat(rec[5], 64)
	if err != nil {
		return nil, err
	}
	inversions, err := strconv.ParseFloat(rec[6], 64)
	if err != nil {
		return nil, err
	}
	sorted, err := strconv.ParseBool(rec[7])
	if err != nil {
		return nil, err
	}
	elapsed, err := strconv.ParseInt(rec[8], 10, 64)
	if err != nil {
		return nil, err
	}

	return &experiment.Result{
		Algorithm:  rec[0],
		Bars:       bars,
		Shape:      rec[2],
		Seed:       seed,
		Iterations: iterations,
		Metrics: map[string]float64{
			"iterations": float64(iterations),
			"writes":     writes,
			"inversions": inversions,
		},
		Sorted:  sorted,
		Elapsed: time.Duration(elapsed) * time.Microsecond,
	}, nil
}

type ExportData struct {
	Run     RunMetadata          `json:"run"`
	Results []*experiment.Result `json:"results"`
}

// ExportJSON writes a run's metadata and every result as one document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	results, err := s.LoadResults(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: *meta, Results: results})
}

// ExportCSV copies a run's results.csv to w.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "results.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}
