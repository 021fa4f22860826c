package cron

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned by the next-occurrence search when no
// admissible instant exists within the search horizon. In practice this
// only happens for contradictory schedules, such as a day-of-month that
// never occurs in the allowed months.
var ErrNoMatch = errors.New("no matching time within the search horizon")

// FieldCountError is returned when an expression does not contain
// exactly five whitespace-separated fields.
type FieldCountError struct {
	Count int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("wrong number of fields: expected %d, got %d", fieldCount, e.Count)
}

// InvalidFieldError is returned when a token inside one field fails
// that field's grammar or range checks. Field names the position
// (minute, hour, day-of-month, month, day-of-week) and Token the
// offending text.
type InvalidFieldError struct {
	Field  string
	Token  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s field: token %q: %s", e.Field, e.Token, e.Reason)
}
