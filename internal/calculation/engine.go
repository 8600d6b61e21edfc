package calculation

import (
	"fmt"

	"github.com/rpgo/compound-interest/internal/domain"
)

// DefaultMaxYears bounds the projection term accepted by ValidateInput.
const DefaultMaxYears = 1000

// ProjectionEngine orchestrates projection calculations
type ProjectionEngine struct {
	MaxYears int // upper bound for Years during validation
	Logger   Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		MaxYears: DefaultMaxYears,
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Calculate validates the input and runs the projection. Nothing is computed when
// validation fails.
func (pe *ProjectionEngine) Calculate(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if err := pe.ValidateInput(input); err != nil {
		pe.Logger.Debugf("rejected projection input: %v", err)
		return nil, err
	}
	return pe.Project(input)
}

// RunScenarios runs all scenarios and returns a comparison
func (pe *ProjectionEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		result, err := pe.Calculate(scenario.Input)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		scenarios[i] = domain.ScenarioSummary{
			Name:   scenario.Name,
			Input:  scenario.Input,
			Result: *result,
		}
		pe.Logger.Infof("scenario %q: ending balance %s over %d years", scenario.Name, result.EndingBalance.String(), scenario.Input.Years)
	}

	return &domain.ScenarioComparison{
		Scenarios:   scenarios,
		Assumptions: GenerateAssumptions(config),
	}, nil
}

// GenerateAssumptions describes the modelling choices applied to each scenario.
func GenerateAssumptions(config *domain.Configuration) []string {
	assumptions := []string{
		"Annual contribution is added once per year, right after the first compounding step",
		"Reported amounts are rounded to whole units (ties away from zero); the running balance is not rounded",
	}
	for _, sc := range config.Scenarios {
		assumptions = append(assumptions, fmt.Sprintf("%s: %.2f%% nominal annual rate, compounded %s, for %d years",
			sc.Name, sc.Input.AnnualRatePercent, sc.Input.CompoundingFrequency, sc.Input.Years))
	}
	return assumptions
}

var defaultEngine = NewProjectionEngine()

// Project runs an unvalidated projection with the default engine.
func Project(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	return defaultEngine.Project(input)
}

// Calculate validates and projects with the default engine.
func Calculate(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	return defaultEngine.Calculate(input)
}
