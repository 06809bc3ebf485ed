// Package deadline implements the pure deadline arithmetic for delivery
// items: deriving an absolute UTC instant from a calendar date, a turnaround
// period, and an IANA timezone, plus the day-granularity helpers built on it.
//
// All functions are deterministic and independent of the host machine's
// local timezone.
package deadline

import (
	"time"

	"github.com/deliverydesk/backend/internal/domain"
)

// sourceDateLayout is the calendar date format accepted by Compute.
const sourceDateLayout = "2006-01-02"

// Compute derives the deadline instant for a source date.
//
// The source date is interpreted as a wall-clock calendar date in tz.
// turnaroundDays calendar days are added (field arithmetic, not 24h
// multiples, so DST transitions inside the period do not shift the result),
// the wall-clock time is pinned to 23:59:00.000 in tz, and the resulting
// local date-time is converted to UTC using the zone's offset rules for that
// specific date.
func Compute(sourceDate string, turnaroundDays int, tz string) (time.Time, error) {
	if turnaroundDays < 0 {
		return time.Time{}, domain.NewValidationError("turnaround_days", "must not be negative")
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, domain.NewValidationError("timezone", "invalid IANA timezone")
	}

	parsed, err := time.Parse(sourceDateLayout, sourceDate)
	if err != nil {
		return time.Time{}, domain.NewValidationError("source_date", "must be a YYYY-MM-DD date")
	}

	y, m, d := parsed.Date()
	// time.Date normalizes the overflowing day field, which is exactly
	// calendar-day addition.
	local := time.Date(y, m, d+turnaroundDays, 23, 59, 0, 0, loc)
	return local.UTC(), nil
}

// DaysRemaining returns the difference, in whole local calendar days, between
// now's calendar day and the calendar day containing deadline, both taken in
// tz. A deadline on today's local date yields 0; past dates are negative,
// future dates positive.
//
// The difference is computed between the two local dates directly rather
// than dividing an elapsed duration by 24h, so DST boundaries cannot
// introduce off-by-one results.
func DaysRemaining(deadline time.Time, tz string, now time.Time) (int, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return 0, domain.NewValidationError("timezone", "invalid IANA timezone")
	}

	today := midnightUTC(now.In(loc))
	day := midnightUTC(deadline.In(loc))

	return int(day.Sub(today) / (24 * time.Hour)), nil
}

// IsOverdue reports whether the deadline's local calendar day in tz has
// already passed.
func IsOverdue(deadline time.Time, tz string, now time.Time) (bool, error) {
	days, err := DaysRemaining(deadline, tz, now)
	if err != nil {
		return false, err
	}
	return days < 0, nil
}

// midnightUTC re-anchors a local date-time's calendar day as a UTC midnight,
// making day differences exact divisions by 24h.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
