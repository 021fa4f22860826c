package cron

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Trigger is anything that can compute its next firing time. A nil
// result means the trigger will never fire again after now.
type Trigger interface {
	NextTime(now time.Time) *time.Time

	// Hash returns a stable value identifying the trigger's
	// configuration, so registries can reject duplicates.
	Hash() uint64
}

// CronTrigger fires on a cron schedule.
type CronTrigger struct {
	schedule *Schedule
}

// NewCronTrigger creates a CronTrigger from a five-field cron
// expression.
func NewCronTrigger(expression string) (*CronTrigger, error) {
	schedule, err := Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}
	return &CronTrigger{schedule: schedule}, nil
}

// NextTime returns the next occurrence of the schedule after now, or
// nil when the schedule can never fire.
func (t *CronTrigger) NextTime(now time.Time) *time.Time {
	next, err := t.schedule.Next(now)
	if err != nil {
		return nil
	}
	return &next
}

// Hash returns a stable hash value for the CronTrigger.
func (t *CronTrigger) Hash() uint64 {
	h := fnv.New64()
	fmt.Fprintf(h, "cron:%s", t.schedule.String())
	return h.Sum64()
}

// SunTrigger fires at sunrise or sunset for a location, with an
// optional offset (which may be negative).
type SunTrigger struct {
	latitude  float64
	longitude float64
	sunset    bool
	offset    time.Duration
}

// NewSunriseTrigger creates a trigger firing at local sunrise plus
// offset.
func NewSunriseTrigger(latitude, longitude float64, offset time.Duration) *SunTrigger {
	return &SunTrigger{latitude: latitude, longitude: longitude, offset: offset}
}

// NewSunsetTrigger creates a trigger firing at local sunset plus
// offset.
func NewSunsetTrigger(latitude, longitude float64, offset time.Duration) *SunTrigger {
	return &SunTrigger{latitude: latitude, longitude: longitude, sunset: true, offset: offset}
}

// NextTime returns the next sun event strictly after now. Polar days
// and nights, where the event does not occur, are skipped.
func (t *SunTrigger) NextTime(now time.Time) *time.Time {
	day := now
	// The event for today may already have passed; look ahead day by
	// day. A year covers every latitude's polar season.
	for i := 0; i < 366; i++ {
		rise, set := sunrise.SunriseSunset(t.latitude, t.longitude, day.Year(), day.Month(), day.Day())
		event := rise
		if t.sunset {
			event = set
		}
		if !event.IsZero() {
			event = event.In(now.Location()).Add(t.offset)
			if event.After(now) {
				return &event
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return nil
}

// Hash returns a stable hash value for the SunTrigger.
func (t *SunTrigger) Hash() uint64 {
	h := fnv.New64()
	fmt.Fprintf(h, "sun:%f:%f:%t:%d", t.latitude, t.longitude, t.sunset, t.offset.Nanoseconds())
	return h.Sum64()
}
