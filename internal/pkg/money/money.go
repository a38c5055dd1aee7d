// Package money represents amounts as integer cents so that price
// arithmetic is exact. Inputs are two-decimal-place money and the only
// operation the pricing engine needs is multiplication by a whole number
// of nights, so no rounding rule ever applies.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a money amount in hundredths of the currency unit.
type Cents int64

var ErrInvalidAmount = errors.New("invalid money amount")

// Parse accepts "300", "300.5" or "300.00" and returns the amount in cents.
// More than two fractional digits or a negative amount is rejected.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" || len(frac) > 2 {
		return 0, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	cents := int64(0)
	if frac != "" {
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	return Cents(units*100 + cents), nil
}

// FromUnits converts whole currency units to Cents.
func FromUnits(units int64) Cents {
	return Cents(units * 100)
}

// MulNights multiplies a per-night rate by a night count. Exact by
// construction: integer cents times an integer.
func (c Cents) MulNights(nights int) Cents {
	return c * Cents(nights)
}

// String renders the amount with exactly two decimal places, e.g. "300.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON emits the decimal string form so clients never see raw cents.
func (c Cents) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts either a decimal string ("300.00") or a bare JSON
// number, which is how gateway callbacks deliver amounts.
func (c *Cents) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// not a string, try a bare number
		s = string(data)
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
