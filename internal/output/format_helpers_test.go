package output

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromFloat(1234.567), "$1,235"},
		{decimal.NewFromFloat(1234.5), "$1,235"},
		{decimal.NewFromInt(25000), "$25,000"},
		{decimal.NewFromInt(0), "$0"},
		{decimal.NewFromInt(-1250), "$-1,250"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestDecimalFromFloat(t *testing.T) {
	if got := decimalFromFloat(2.5); !got.Equal(decimal.NewFromFloat(2.5)) {
		t.Errorf("decimalFromFloat(2.5) = %s", got)
	}
	if got := decimalFromFloat(math.NaN()); !got.IsZero() {
		t.Errorf("decimalFromFloat(NaN) = %s, want 0", got)
	}
	if got := decimalFromFloat(math.Inf(-1)); !got.IsZero() {
		t.Errorf("decimalFromFloat(-Inf) = %s, want 0", got)
	}
}
