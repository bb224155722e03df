package medcard

import (
	"fmt"
	"time"
)

// isoDate is the wire format for every date on the card.
const isoDate = "2006-01-02"

// InvalidDateError reports a value that is not a valid ISO calendar date.
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q", e.Value)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// ParseISODate parses a strict YYYY-MM-DD calendar date.
// The parse is round-trip stable: FormatISODate returns the input unchanged.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s, Err: err}
	}
	return t, nil
}

// FormatISODate renders t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(isoDate)
}

// AgeInYears returns the number of whole years between birth and asOf,
// counting a year only once the birthday has been reached within it.
func AgeInYears(birth, asOf time.Time) int {
	years := asOf.Year() - birth.Year()
	if asOf.Month() < birth.Month() ||
		(asOf.Month() == birth.Month() && asOf.Day() < birth.Day()) {
		years--
	}
	return years
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
