package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount reads "1.234,56", "-588,74" or "R$ 10,00" when decimalComma is
// set, and "1,234.56" or "-12.5" otherwise.
func parseAmount(s string, decimalComma bool) (decimal.Decimal, error) {
	clean := strings.NewReplacer("R$", "", " ", "", "\u00a0", "").Replace(s)

	if decimalComma {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	return decimal.NewFromString(clean)
}
