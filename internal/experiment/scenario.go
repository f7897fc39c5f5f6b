package experiment

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/sorting"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

type ScenarioStep struct {
	Algorithm     string `yaml:"algorithm"`
	Bars          int    `yaml:"bars"`
	Shape         string `yaml:"shape"`
	Seed          int64  `yaml:"seed"`
	Runs          int    `yaml:"runs"`
	MaxIterations int    `yaml:"max_iterations"`
	Data          []int  `yaml:"data"`
	SaveAs        string `yaml:"save_as"`
}

type StepResult struct {
	Step    ScenarioStep
	Results []*Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// RunScenario executes the steps in order and stops at the first failure,
// returning what completed before it.
func RunScenario(ctx context.Context, scenario *Scenario, reg *sorting.Registry, logger *log.Logger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		logger.Info("running step", "step", fmt.Sprintf("%d/%d", i+1, len(scenario.Steps)), "algorithm", step.Algorithm)

		shape, err := dataset.ParseShape(step.Shape)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		cfg := Config{
			Algorithm:     step.Algorithm,
			Bars:          step.Bars,
			Shape:         shape,
			Seed:          step.Seed,
			Data:          step.Data,
			MaxIterations: step.MaxIterations,
		}

		runs := max(step.Runs, 1)
		out, err := NewEnsemble(cfg, reg, runs, step.Seed).Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Results: out})
	}

	return results, nil
}
