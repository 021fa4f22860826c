// Package cron parses five-field cron expressions and computes the
// next time a schedule fires, without running a cron daemon.
//
//	┌─────────────────────  minute (0 - 59)
//	│ ┌───────────────────  hour   (0 - 23)
//	│ │ ┌─────────────────  day of month (1 - 31)
//	│ │ │ ┌───────────────  month  (1 - 12)
//	│ │ │ │ ┌─────────────  day of week (0 - 6, Sun - Sat)
//	│ │ │ │ │
//	* * * * *
//
// Each field accepts a comma-separated list of "*", single values,
// ranges ("12-18"), and steps ("*/5", "12-18/3", "6/2"). The
// day-of-week field also accepts case-insensitive weekday names
// ("Fri", "friday") as single values.
//
// The result of Next is computed in the reference time's location and
// is always strictly later than the reference:
//
//	next, err := cron.Next("*/5 * * * *", time.Now())
//
// Parsed schedules are immutable and may be reused concurrently:
//
//	s, err := cron.Parse("0 9 * * 1-5")
//	times, err := s.NextN(time.Now(), 10)
package cron
