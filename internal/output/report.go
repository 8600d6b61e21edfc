package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpgo/compound-interest/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for format names that match no formatter or alias.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Render formats results with the named formatter.
func Render(results *domain.ScenarioComparison, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(results)
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("compound_report_%s_%s.%s", nowFunc().Format("20060102_150405"), f.Name(), extensionFor(f)))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateReport writes the named format (or "all") into dir and returns the files written.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range AvailableFormatterNames() {
			file, err := WriteFormatted(GetFormatterByName(name), results, dir)
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	file, err := WriteFormatted(f, results, dir)
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes a scenario configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
