package cron

import (
	"errors"
	"strings"
	"time"

	"github.com/Xevion/go-cron/internal/field"
)

// fieldCount is the number of fields in a standard cron expression.
const fieldCount = 5

// wildcard is the literal token that leaves a field unrestricted. The
// day-of-month and day-of-week fields record whether they were given as
// this exact token, since the day combination rule depends on the
// original text: an explicit "1-31" is restricted even though its value
// set equals the wildcard's.
const wildcard = "*"

// Parse validates a five-field cron expression (minute, hour,
// day-of-month, month, day-of-week) and returns its Schedule.
//
// It returns a *FieldCountError when the expression does not have
// exactly five fields, or a *InvalidFieldError naming the field and
// token when a field fails its grammar or range checks. Fields are
// checked in expression order and the first error wins.
func Parse(expression string) (*Schedule, error) {
	fields := strings.Fields(expression)
	if len(fields) != fieldCount {
		return nil, &FieldCountError{Count: len(fields)}
	}

	specs := [fieldCount]field.Spec{
		field.Minute,
		field.Hour,
		field.DayOfMonth,
		field.Month,
		field.DayOfWeek,
	}

	var sets [fieldCount]field.Set
	for i, spec := range specs {
		set, err := spec.Parse(fields[i])
		if err != nil {
			var syntax *field.SyntaxError
			if errors.As(err, &syntax) {
				return nil, &InvalidFieldError{
					Field:  spec.Name,
					Token:  syntax.Token,
					Reason: syntax.Reason,
				}
			}
			return nil, err
		}
		sets[i] = set
	}

	return &Schedule{
		expression: expression,
		minutes:    sets[0],
		hours:      sets[1],
		days:       sets[2],
		months:     sets[3],
		weekdays:   sets[4],
		domStar:    fields[2] == wildcard,
		dowStar:    fields[4] == wildcard,
	}, nil
}

// MustParse is like Parse but panics on error. It is intended for
// expressions hardcoded at program start, where an invalid expression
// is a bug.
func MustParse(expression string) *Schedule {
	s, err := Parse(expression)
	if err != nil {
		panic(err)
	}
	return s
}

// Next is a convenience that parses expression and returns the first
// occurrence strictly after ref, in ref's location.
func Next(expression string, ref time.Time) (time.Time, error) {
	s, err := Parse(expression)
	if err != nil {
		return time.Time{}, err
	}
	return s.Next(ref)
}
