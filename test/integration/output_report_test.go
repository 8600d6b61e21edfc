package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	stddec "github.com/shopspring/decimal"

	"github.com/rpgo/compound-interest/internal/calculation"
	"github.com/rpgo/compound-interest/internal/config"
	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/rpgo/compound-interest/internal/output"
)

func TestFormatters(t *testing.T) {
	d1 := stddec.NewFromFloat(1234567.5)
	if got := output.FormatCurrency(d1); got != "$1,234,568" {
		t.Fatalf("FormatCurrency got %s", got)
	}
	// FormatPercentage expects the value already in percentage units (not a 0-1 fraction)
	d2 := stddec.NewFromFloat(12.34)
	if got := output.FormatPercentage(d2); got != "12.34%" {
		t.Fatalf("FormatPercentage got %s", got)
	}
}

func TestSaveConfiguration_WritesFile(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	tmp := t.TempDir()
	out := filepath.Join(tmp, "config.yaml")
	if err := output.SaveConfiguration(cfg, out); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected file exists, err: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatalf("expected non-empty file")
	}
}

func TestOutputGeneration_AllFormats(t *testing.T) {
	output.SetNowFunc(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) })
	defer output.SetNowFunc(time.Now)

	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	results, err := calculation.NewProjectionEngine().RunScenarios(cfg)
	if err != nil {
		t.Fatalf("run scenarios: %v", err)
	}

	dir := t.TempDir()
	files, err := output.GenerateReport(results, "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	if len(files) != 6 {
		t.Fatalf("expected 6 report files, got %d", len(files))
	}
	for _, f := range files {
		if !strings.HasPrefix(filepath.Base(f), "compound_report_20250601_120000_") {
			t.Fatalf("unexpected report name %s", f)
		}
		data, err := os.ReadFile(f)
		if err != nil || len(data) == 0 {
			t.Fatalf("empty report %s (err %v)", f, err)
		}
		if !strings.Contains(string(data), "No contributions") {
			t.Fatalf("report %s missing scenario", f)
		}
	}
}
