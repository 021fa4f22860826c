package main

import (
	"log/slog"
	"os"
	"time"

	cron "github.com/Xevion/go-cron"
)

func main() {
	now := time.Now()

	// One-shot: parse and compute in a single call.
	next, err := cron.Next("*/5 * * * *", now)
	if err != nil {
		slog.Error("Error parsing expression", "error", err)
		os.Exit(1)
	}
	slog.Info("Every five minutes", "next", next)

	// Reuse a parsed schedule for several lookups.
	weekdays, err := cron.Parse("30 9 * * 1-5")
	if err != nil {
		slog.Error("Error parsing expression", "error", err)
		os.Exit(1)
	}
	runs, err := weekdays.NextN(now, 5)
	if err != nil {
		slog.Error("Error computing occurrences", "error", err)
		os.Exit(1)
	}
	for _, run := range runs {
		slog.Info("Weekday standup", "at", run)
	}

	// The next leap day, however far out.
	leap, err := cron.Next("0 0 29 2 *", now)
	if err != nil {
		slog.Error("Error computing leap day", "error", err)
		os.Exit(1)
	}
	slog.Info("Next leap day", "at", leap)

	// Triggers unify cron schedules with sun events.
	triggers := []cron.Trigger{
		mustCronTrigger("0 23 * * *"),
		cron.NewSunriseTrigger(29.4241, -98.4936, -30*time.Minute),
	}
	for _, trigger := range triggers {
		if at := trigger.NextTime(now); at != nil {
			slog.Info("Trigger fires", "at", *at)
		}
	}
}

func mustCronTrigger(expression string) *cron.CronTrigger {
	trigger, err := cron.NewCronTrigger(expression)
	if err != nil {
		slog.Error("Error building trigger", "error", err)
		os.Exit(1)
	}
	return trigger
}
