package output

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// money renders a currency amount with a dollar sign and no cents; residuals
// and costs at this scale don't benefit from cent precision on screen.
func money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(0)
	}
	return "$" + d.StringFixed(0)
}
