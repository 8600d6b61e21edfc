package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/compound-interest/internal/calculation"
	"github.com/rpgo/compound-interest/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration marks structural configuration problems (no scenarios,
// missing or duplicate names). Input validation failures keep their own kinds.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InputParser handles parsing of scenario configuration files
type InputParser struct {
	// Validate checks each scenario input; defaults to calculation.ValidateInput.
	Validate func(domain.ProjectionInput) error
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Validate: calculation.ValidateInput}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes. JSON is accepted as a YAML subset.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios provided", ErrInvalidConfiguration)
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		key := strings.ToLower(strings.TrimSpace(scenario.Name))
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%w: scenario %d: name %q duplicates scenario %d", ErrInvalidConfiguration, i, scenario.Name, prev)
		}
		seen[key] = i
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("%w: scenario name is required", ErrInvalidConfiguration)
	}

	validate := ip.Validate
	if validate == nil {
		validate = calculation.ValidateInput
	}
	if err := validate(scenario.Input); err != nil {
		return fmt.Errorf("%s: %w", scenario.Name, err)
	}
	return nil
}
