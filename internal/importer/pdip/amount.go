package pdip

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parsePesoAmount parses a peso-formatted amount string into centavos.
// Format examples: "1,234,567.89" -> 123456789, "PHP 500.00" -> 50000,
// "₱10,000" -> 1000000.
func parsePesoAmount(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "₱")
	clean = strings.TrimPrefix(clean, "PHP")
	clean = strings.TrimPrefix(clean, "Php")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
