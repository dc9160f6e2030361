package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValueError reports a VALUE argument that cannot be split into a number
// and a unit.
type ValueError struct {
	Text   string
	Number string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if e.Text == "" {
		return "empty value"
	}
	if e.Number == e.Text {
		return fmt.Sprintf("%s has no unit", e.Text)
	}
	return fmt.Sprintf("%q isn't a number", e.Number)
}

// ParseValue splits s into a number and the unit that follows it. The unit
// is the trailing run of characters after the last ASCII digit, so "5km"
// yields 5 and "km", and "1.5e3m" yields 1500 and "m".
func ParseValue(s string) (decimal.Decimal, string, error) {
	i := strings.LastIndexAny(s, "0123456789")
	number, unit := s[:i+1], s[i+1:]
	if unit == "" {
		return decimal.Decimal{}, "", &ValueError{Text: s, Number: number}
	}

	value, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Decimal{}, "", &ValueError{Text: s, Number: number}
	}
	return value, unit, nil
}
