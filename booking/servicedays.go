package booking

import (
	"fmt"
	"sort"
	"time"
)

// ValidateSelection normalizes the dates picked in the calendar UI to
// distinct weekday codes and checks them against the plan's frequency:
// weekly plans need exactly one day, twice-weekly plans exactly two.
//
// The calendar is expected to block weekends before submission; a Saturday
// or Sunday reaching this function fails with ErrInvalidServiceDay.
// Returned codes are sorted ascending.
func ValidateSelection(frequency Frequency, selected []time.Time) ([]Weekday, error) {
	if !frequency.Valid() {
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidOffering, frequency)
	}

	seen := make(map[Weekday]bool, len(selected))
	days := make([]Weekday, 0, len(selected))
	for _, d := range selected {
		wd := ISOWeekday(d)
		if !wd.Schedulable() {
			return nil, fmt.Errorf("%w: %s falls on a %s", ErrInvalidServiceDay,
				d.Format("2006-01-02"), wd)
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true
		days = append(days, wd)
	}

	if want := frequency.Visits(); len(days) != want {
		return nil, fmt.Errorf("%w: %s plan needs %d distinct weekday(s), got %d",
			ErrIncompleteSelection, frequency, want, len(days))
	}

	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days, nil
}

// Schedulable is the subset of a booking a schedule query needs: what kind
// of service it is, when it was created and which weekdays it repeats on.
type Schedulable interface {
	Service() ServiceType
	CreatedOn() time.Time
	Weekdays() []Weekday
}

// ScheduledOn reports whether date is a service date for the booking.
//
// One-time bookings are scheduled only on their creation calendar day in
// the viewer's local time zone; after that day they drop out of every
// schedule view. Regular bookings repeat on their stored weekdays with no
// end date. Callers must filter out paused and cancelled bookings before
// surfacing results.
func ScheduledOn(b Schedulable, date time.Time) bool {
	if b.Service() == ServiceOneTime {
		created := b.CreatedOn().In(date.Location())
		return created.Year() == date.Year() &&
			created.Month() == date.Month() &&
			created.Day() == date.Day()
	}

	wd := ISOWeekday(date)
	for _, d := range b.Weekdays() {
		if d == wd {
			return true
		}
	}
	return false
}
