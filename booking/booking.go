// Package booking holds the pricing and scheduling rules for the service.
// Everything in this package is a pure function over its inputs: no I/O,
// no shared state, safe to call concurrently.
package booking

import "time"

// ServiceType distinguishes a single clean-up from a recurring plan.
type ServiceType string

const (
	ServiceOneTime ServiceType = "one-time"
	ServiceRegular ServiceType = "regular"
)

func (s ServiceType) Valid() bool {
	return s == ServiceOneTime || s == ServiceRegular
}

// Frequency applies to regular service only.
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyTwiceWeekly Frequency = "twice-weekly"
)

func (f Frequency) Valid() bool {
	return f == FrequencyWeekly || f == FrequencyTwiceWeekly
}

// Visits per week for a frequency. Zero for anything unknown.
func (f Frequency) Visits() int {
	switch f {
	case FrequencyWeekly:
		return 1
	case FrequencyTwiceWeekly:
		return 2
	}
	return 0
}

// Weekday is an ISO weekday code, Monday=1 through Sunday=7.
// Service only runs Monday through Friday, so stored values are 1..5.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Unknown"
	}
	return dayNames[w-1]
}

// Schedulable reports whether the service operates on this weekday.
func (w Weekday) Schedulable() bool {
	return w >= Monday && w <= Friday
}

// ISOWeekday converts a date to its ISO weekday code, mapping Go's Sunday=0
// to 7.
func ISOWeekday(t time.Time) Weekday {
	wd := t.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// DayNames renders weekday codes as "Tuesday, Thursday" for confirmation
// summaries and emails.
func DayNames(days []Weekday) string {
	out := ""
	for i, d := range days {
		if i > 0 {
			out += ", "
		}
		out += d.String()
	}
	return out
}
