package decimal

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money represents a currency amount. Projection reports carry whole currency units.
type Money struct {
	decimal.Decimal
}

// displayPrinter groups digits the way en-US locales do ("25,000").
var displayPrinter = message.NewPrinter(language.English)

// NewMoney creates a new Money instance from a float64.
// The value must be finite; use IsFinite to check untrusted input first.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// IsFinite reports whether v can be represented as Money.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Whole rounds to the nearest whole currency unit, ties away from zero
// (2.5 -> 3, -2.5 -> -3).
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// RoundWhole converts a float amount straight to a whole-unit decimal.
func RoundWhole(value float64) decimal.Decimal {
	return NewMoney(value).Whole().Decimal
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the whole-unit string without grouping ("25000").
func (m Money) String() string {
	return m.Whole().Decimal.StringFixed(0)
}

// Grouped returns the whole-unit amount with thousands separators ("25,000").
func (m Money) Grouped() string {
	whole := m.Whole().Decimal
	if whole.GreaterThanOrEqual(minInt64) && whole.LessThanOrEqual(maxInt64) {
		return displayPrinter.Sprintf("%d", whole.IntPart())
	}
	return groupDigits(whole.StringFixed(0))
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// groupDigits inserts commas into an integer string beyond the int64 range.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}

// Format renders the amount for display: "$" prefix plus grouped digits.
// Negative amounts keep the sign after the prefix ("$-1,250").
func (m Money) Format() string {
	return "$" + m.Grouped()
}
