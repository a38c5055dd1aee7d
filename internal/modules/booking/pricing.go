package booking

import (
	"time"

	"hotelreserve/internal/pkg/money"
)

const dateLayout = "2006-01-02"

// parseStayDates parses and validates a [checkin, checkout) range. Dates are
// calendar days, normalized to UTC midnight; checkout must be strictly after
// checkin.
func parseStayDates(checkinStr, checkoutStr string) (time.Time, time.Time, error) {
	checkin, err := time.ParseInLocation(dateLayout, checkinStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	checkout, err := time.ParseInLocation(dateLayout, checkoutStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	if !checkout.After(checkin) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return checkin, checkout, nil
}

// quote derives nights and the stay total from the nightly rate. Integer
// cents times an integer night count: exact, no rounding rule needed.
func quote(rate money.Cents, checkin, checkout time.Time) (int, money.Cents) {
	nights := int(checkout.Sub(checkin) / (24 * time.Hour))
	return nights, rate.MulNights(nights)
}
