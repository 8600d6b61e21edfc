package output

import (
	"strconv"

	money "github.com/rpgo/compound-interest/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders a whole-unit amount with a "$" prefix and thousands separators.
// Display only: the value is rounded for rendering and never fed back into calculations.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func floatToString(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// decimalFromFloat converts a raw input amount for display; non-finite values show as zero.
func decimalFromFloat(f float64) decimal.Decimal {
	if !money.IsFinite(f) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
