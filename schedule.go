package cron

import (
	"time"

	"github.com/dromara/carbon/v2"

	"github.com/Xevion/go-cron/internal/field"
)

// searchHorizonYears bounds the next-occurrence search. One full
// Gregorian cycle is enough that exhausting it means the schedule is
// contradictory rather than merely sparse.
const searchHorizonYears = 400

// Schedule is a parsed cron expression: the value set of each field
// plus the day combination flags. It is immutable and safe for
// concurrent use; a single Schedule may serve any number of Next calls
// from multiple goroutines.
type Schedule struct {
	expression string

	minutes  field.Set
	hours    field.Set
	days     field.Set
	months   field.Set
	weekdays field.Set

	// domStar and dowStar record whether the day-of-month and
	// day-of-week fields were literally "*" in the expression. When
	// both fields are restricted, a day matches if it satisfies either
	// one; otherwise the restricted field (if any) decides alone.
	domStar bool
	dowStar bool
}

// String returns the source expression the schedule was parsed from.
func (s *Schedule) String() string {
	return s.expression
}

// Equal reports whether both schedules admit exactly the same instants.
func (s *Schedule) Equal(o *Schedule) bool {
	return s.minutes.Equal(o.minutes) &&
		s.hours.Equal(o.hours) &&
		s.days.Equal(o.days) &&
		s.months.Equal(o.months) &&
		s.weekdays.Equal(o.weekdays) &&
		s.domStar == o.domStar &&
		s.dowStar == o.dowStar
}

// Next returns the earliest instant strictly after ref whose civil
// minute, hour, day-of-month, month and day-of-week satisfy the
// schedule, in ref's location. Matching is at whole-minute grain: even
// when ref itself lies on a matching minute, the result is later.
//
// It returns ErrNoMatch when no admissible instant exists within the
// search horizon.
func (s *Schedule) Next(ref time.Time) (time.Time, error) {
	loc := ref.Location()

	// Advance one minute and drop sub-minute fields, so the first
	// candidate is the earliest whole minute strictly after ref.
	t := ref.Add(time.Minute)
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)

	// time.Date resolves a civil time inside a daylight-saving gap to
	// the hour before the transition, so a reference just ahead of a
	// gap can normalize to at or before ref; walk the absolute
	// timeline across the gap instead.
	for !t.After(ref) {
		t = t.Add(time.Minute)
	}

	prev := ref
	limit := t.Year() + searchHorizonYears
	for t.Year() <= limit {
		// Candidates are rebuilt from civil fields, and a rebuild that
		// lands in a daylight-saving gap moves backward. Candidates are
		// minute-aligned, so whenever an iteration failed to advance,
		// the earliest candidate left is one absolute minute after the
		// last one examined; without this the search would oscillate
		// inside the hour before a gap and never reach the horizon.
		if !t.After(prev) {
			t = prev.Add(time.Minute)
		}
		prev = t

		// Month first: descending into days of an inadmissible month
		// would be wasted work.
		if !s.months.Contains(uint(t.Month())) {
			m, ok := s.months.Next(uint(t.Month()))
			if !ok {
				t = time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, loc)
				continue
			}
			t = time.Date(t.Year(), time.Month(m), 1, 0, 0, 0, 0, loc)
		}

		day, ok := s.nextDay(t)
		if !ok {
			// No admissible day left this month; time.Date normalizes
			// December+1 into January of the next year.
			t = time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, loc)
			continue
		}
		if day != t.Day() {
			t = time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, loc)
		}

		if !s.hours.Contains(uint(t.Hour())) {
			h, ok := s.hours.Next(uint(t.Hour()))
			if !ok {
				t = time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, loc)
				continue
			}
			t = time.Date(t.Year(), t.Month(), t.Day(), int(h), 0, 0, 0, loc)
		}

		if !s.minutes.Contains(uint(t.Minute())) {
			m, ok := s.minutes.Next(uint(t.Minute()))
			if !ok {
				t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+1, 0, 0, 0, loc)
				continue
			}
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), int(m), 0, 0, loc)
		}

		// A rebuild that hit a daylight-saving gap carries the civil
		// fields of the hour before it; re-verify before returning.
		if !s.matches(t) {
			t = t.Add(time.Minute)
			continue
		}
		return t, nil
	}
	return time.Time{}, ErrNoMatch
}

// NextN returns the next n occurrences strictly after ref, in order.
func (s *Schedule) NextN(ref time.Time, n int) ([]time.Time, error) {
	out := make([]time.Time, 0, n)
	t := ref
	for i := 0; i < n; i++ {
		next, err := s.Next(t)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
		t = next
	}
	return out, nil
}

// matches reports whether t's civil fields satisfy the whole schedule.
func (s *Schedule) matches(t time.Time) bool {
	return s.minutes.Contains(uint(t.Minute())) &&
		s.hours.Contains(uint(t.Hour())) &&
		s.months.Contains(uint(t.Month())) &&
		s.dayMatches(t.Year(), t.Month(), t.Day())
}

// nextDay returns the first admissible day of t's month starting at
// t's day, or false when the rest of the month has none. Days beyond
// the month's true length are never considered, so a requested day 31
// simply skips 30-day months and day 29 skips February outside leap
// years.
func (s *Schedule) nextDay(t time.Time) (int, bool) {
	last := daysIn(t.Year(), t.Month())
	for d := t.Day(); d <= last; d++ {
		if s.dayMatches(t.Year(), t.Month(), d) {
			return d, true
		}
	}
	return 0, false
}

// dayMatches applies the standard cron day combination rule: when
// either day field was a wildcard the other decides alone, and when
// both are restricted a day matches if it satisfies either one.
func (s *Schedule) dayMatches(year int, month time.Month, day int) bool {
	dom := s.days.Contains(uint(day))
	dow := s.weekdays.Contains(uint(weekdayOf(year, month, day)))
	if s.domStar || s.dowStar {
		return dom && dow
	}
	return dom || dow
}

// weekdayOf returns the weekday of a civil date, Sunday = 0. The
// weekday of a date is location-independent.
func weekdayOf(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
}

// daysIn returns the true length of a month, leap years included.
func daysIn(year int, month time.Month) int {
	return carbon.CreateFromDate(year, int(month), 1).DaysInMonth()
}
