package domain

// Scenario is a named parameter set inside a configuration file.
type Scenario struct {
	Name  string          `yaml:"name" json:"name"`
	Input ProjectionInput `yaml:"input" json:"input"`
}

// Configuration represents the complete input configuration
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// DefaultConfiguration returns a single-scenario configuration built from the form defaults.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Scenarios: []Scenario{
			{Name: "Default", Input: DefaultProjectionInput()},
		},
	}
}

// ScenarioSummary pairs a scenario's input with its projection.
type ScenarioSummary struct {
	Name   string           `yaml:"name" json:"name"`
	Input  ProjectionInput  `yaml:"input" json:"input"`
	Result ProjectionResult `yaml:"result" json:"result"`
}

// ScenarioComparison provides a comparison of all scenarios
type ScenarioComparison struct {
	Scenarios   []ScenarioSummary `yaml:"scenarios" json:"scenarios"`
	Assumptions []string          `yaml:"assumptions" json:"assumptions"`
}
