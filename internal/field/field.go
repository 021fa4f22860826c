// Package field parses a single cron field into the set of integer
// values it allows. Each of the five positions in a cron expression is
// described by a Spec (its name, inclusive range, and optional alias
// table); parsing a field's text against its Spec yields a Set.
package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Workiva/go-datastructures/bitarray"
)

// Spec describes one cron field position: its human-readable name (used
// in error messages), the inclusive range of valid values, and an
// optional table of case-insensitive name aliases.
type Spec struct {
	Name string
	Min  uint
	Max  uint

	// Names maps lower-case aliases to values. Aliases are only
	// accepted as bare single values, never inside a range or step.
	Names map[string]uint
}

// The five standard field specs, in expression order.
var (
	Minute     = Spec{Name: "minute", Min: 0, Max: 59}
	Hour       = Spec{Name: "hour", Min: 0, Max: 23}
	DayOfMonth = Spec{Name: "day-of-month", Min: 1, Max: 31}
	Month      = Spec{Name: "month", Min: 1, Max: 12}
	DayOfWeek  = Spec{Name: "day-of-week", Min: 0, Max: 6, Names: map[string]uint{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}}
)

// SyntaxError describes a token that failed a field's grammar or range
// checks. The caller decides which field it belongs to.
type SyntaxError struct {
	Token  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("token %q: %s", e.Token, e.Reason)
}

// Set is the concrete set of values a field's text expands to. It is
// immutable after Parse and safe for concurrent readers.
type Set struct {
	bits   bitarray.BitArray
	values []uint
}

// Contains reports whether v is a member of the set.
func (s Set) Contains(v uint) bool {
	ok, err := s.bits.GetBit(uint64(v))
	return err == nil && ok
}

// Next returns the smallest member greater than or equal to from. The
// second return is false when no such member exists.
func (s Set) Next(from uint) (uint, bool) {
	for _, v := range s.values {
		if v >= from {
			return v, true
		}
	}
	return 0, false
}

// Values returns the members in ascending order. The returned slice is
// shared; callers must not modify it.
func (s Set) Values() []uint {
	return s.values
}

// Equal reports whether both sets contain exactly the same values.
func (s Set) Equal(o Set) bool {
	return s.bits.Equals(o.bits)
}

// Parse expands a field's text into its Set. The text is a
// comma-separated list of terms, each one of:
//
//	*         every value in the field's range
//	N         a single value (or a bare alias name)
//	N-M       an inclusive range, N <= M
//	*/S       every S-th value across the full range
//	N/S       every S-th value from N through the range maximum
//	N-M/S     every S-th value within the range
//
// The union of all terms forms the set. Empty list items are ignored,
// but a field that expands to no values at all is an error.
func (sp Spec) Parse(text string) (Set, error) {
	bits := bitarray.NewBitArray(uint64(sp.Max) + 1)
	terms := strings.FieldsFunc(text, func(r rune) bool { return r == ',' })
	if len(terms) == 0 {
		return Set{}, &SyntaxError{Token: text, Reason: "field is empty"}
	}
	for _, term := range terms {
		lo, hi, step, err := sp.parseTerm(term)
		if err != nil {
			return Set{}, err
		}
		for v := lo; v <= hi; v += step {
			if err := bits.SetBit(uint64(v)); err != nil {
				return Set{}, &SyntaxError{Token: term, Reason: err.Error()}
			}
		}
	}
	return newSet(bits), nil
}

func newSet(bits bitarray.BitArray) Set {
	nums := bits.ToNums()
	values := make([]uint, len(nums))
	for i, n := range nums {
		values[i] = uint(n)
	}
	return Set{bits: bits, values: values}
}

// parseTerm resolves one comma-separated term to the triple
// (low, high, step) describing the values it contributes.
func (sp Spec) parseTerm(term string) (lo, hi, step uint, err error) {
	rangeAndStep := strings.Split(term, "/")
	if len(rangeAndStep) > 2 {
		return 0, 0, 0, &SyntaxError{Token: term, Reason: "too many slashes"}
	}
	hasStep := len(rangeAndStep) == 2

	lowAndHigh := strings.Split(rangeAndStep[0], "-")
	if len(lowAndHigh) > 2 {
		return 0, 0, 0, &SyntaxError{Token: term, Reason: "too many hyphens"}
	}
	isRange := len(lowAndHigh) == 2

	switch {
	case lowAndHigh[0] == "*":
		if isRange {
			return 0, 0, 0, &SyntaxError{Token: term, Reason: "wildcard cannot start a range"}
		}
		lo, hi = sp.Min, sp.Max
	default:
		bare := !isRange && !hasStep
		lo, err = sp.parseValue(lowAndHigh[0], bare)
		if err != nil {
			return 0, 0, 0, err
		}
		switch {
		case isRange:
			hi, err = sp.parseValue(lowAndHigh[1], false)
			if err != nil {
				return 0, 0, 0, err
			}
			if lo > hi {
				return 0, 0, 0, &SyntaxError{
					Token:  term,
					Reason: fmt.Sprintf("beginning of range (%d) beyond end of range (%d)", lo, hi),
				}
			}
		case hasStep:
			// N/S means N through the field maximum.
			hi = sp.Max
		default:
			hi = lo
		}
	}

	step = 1
	if hasStep {
		step, err = sp.parseStep(rangeAndStep[1], lowAndHigh[0] == "*")
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return lo, hi, step, nil
}

// parseValue resolves a single bound: a decimal number within the
// field's range, or, when bare is true, an alias name.
func (sp Spec) parseValue(token string, bare bool) (uint, error) {
	if sp.Names != nil {
		if v, ok := sp.Names[strings.ToLower(token)]; ok {
			if !bare {
				return 0, &SyntaxError{Token: token, Reason: "name not allowed in a range or step"}
			}
			return v, nil
		}
	}
	n, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		reason := "not a number"
		if sp.Names != nil {
			reason = "not a number or known name"
		}
		return 0, &SyntaxError{Token: token, Reason: reason}
	}
	v := uint(n)
	if v < sp.Min || v > sp.Max {
		return 0, &SyntaxError{
			Token:  token,
			Reason: fmt.Sprintf("value %d out of range %d-%d", v, sp.Min, sp.Max),
		}
	}
	return v, nil
}

// parseStep resolves the S in */S, N/S, or N-M/S. A step larger than
// the field maximum is rejected only for the wildcard form; over an
// explicit range it just collapses the range to its low end.
func (sp Spec) parseStep(token string, wildcard bool) (uint, error) {
	n, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, &SyntaxError{Token: token, Reason: "step is not a number"}
	}
	if n == 0 {
		return 0, &SyntaxError{Token: token, Reason: "step must be positive"}
	}
	if wildcard && uint(n) > sp.Max {
		return 0, &SyntaxError{
			Token:  token,
			Reason: fmt.Sprintf("step %d exceeds field maximum %d", n, sp.Max),
		}
	}
	return uint(n), nil
}
