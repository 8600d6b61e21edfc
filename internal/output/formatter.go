package output

import (
	"sort"
	"strings"

	"github.com/rpgo/compound-interest/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// Extensioner is implemented by formatters whose files need a specific extension.
type Extensioner interface {
	Extension() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	JSONFormatter{},
	YAMLFormatter{},
	ChartSeriesFormatter{},
}

// GetFormatterByName fetches a registered formatter by canonical name or alias.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":         "console",
	"table":        "console",
	"csv-summary":  "csv",
	"csv-detailed": "detailed-csv",
	"yearly-csv":   "detailed-csv",
	"json-pretty":  "json",
	"yml":          "yaml",
	"chart":        "chart-json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// extensionFor picks the file extension for a formatter's output.
func extensionFor(f Formatter) string {
	if e, ok := f.(Extensioner); ok {
		return e.Extension()
	}
	return f.Name()
}

// sortedScenarios returns a copy of the scenarios ordered by name.
func sortedScenarios(results *domain.ScenarioComparison) []domain.ScenarioSummary {
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios
}
