package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Filters narrows a vehicle listing. Every field is independently optional.
//
// Exact matches take precedence over looser ones: Year wins over MinYear/MaxYear,
// Make over MakeContains, Model over ModelContains. String criteria set to ""
// are treated as absent.
type Filters struct {
	Year    Optional[int]
	MinYear Optional[int]
	MaxYear Optional[int]

	Make         Optional[string]
	MakeContains Optional[string]

	Model         Optional[string]
	ModelContains Optional[string]
}

// Predicate reports whether a vehicle should be kept.
// A nil Predicate keeps everything.
type Predicate func(*Vehicle) bool

// Apply returns the vehicles p keeps, preserving their order.
// The input slice and its elements are not modified.
func (p Predicate) Apply(vehicles []*Vehicle) []*Vehicle {
	out := make([]*Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if p == nil || p(v) {
			out = append(out, v)
		}
	}
	return out
}

// Select returns the vehicles matching every active criterion in f.
// When f is empty all vehicles are returned.
func Select(f Filters, vehicles []*Vehicle) []*Vehicle {
	return f.Predicate().Apply(vehicles)
}

// IsEmpty reports whether no criterion is set.
func (f Filters) IsEmpty() bool {
	_, makeSet := nonEmpty(f.Make)
	_, makeContainsSet := nonEmpty(f.MakeContains)
	_, modelSet := nonEmpty(f.Model)
	_, modelContainsSet := nonEmpty(f.ModelContains)

	return !f.Year.IsSet() &&
		!f.MinYear.IsSet() &&
		!f.MaxYear.IsSet() &&
		!makeSet && !makeContainsSet &&
		!modelSet && !modelContainsSet
}

// Validate checks that numeric criteria fall within the accepted year range.
func (f Filters) Validate() error {
	years := []struct {
		param string
		opt   Optional[int]
	}{
		{"year", f.Year},
		{"minYear", f.MinYear},
		{"maxYear", f.MaxYear},
	}
	for _, y := range years {
		if v, ok := y.opt.Get(); ok && (v < MinYear || v > MaxYear) {
			return &MalformedInputError{
				Param:  y.param,
				Value:  strconv.Itoa(v),
				Reason: fmt.Sprintf("must be between %d and %d", MinYear, MaxYear),
			}
		}
	}
	return nil
}

// Predicate composes the active criteria into a single predicate joined by AND.
// Returns nil when f is empty.
func (f Filters) Predicate() Predicate {
	if f.IsEmpty() {
		return nil
	}

	var checks []Predicate

	// Year: exact wins, otherwise any combination of lower and upper bound.
	if year, ok := f.Year.Get(); ok {
		checks = append(checks, func(v *Vehicle) bool { return v.Year == year })
	} else {
		if minYear, ok := f.MinYear.Get(); ok {
			checks = append(checks, func(v *Vehicle) bool { return v.Year >= minYear })
		}
		if maxYear, ok := f.MaxYear.Get(); ok {
			checks = append(checks, func(v *Vehicle) bool { return v.Year <= maxYear })
		}
	}

	if check := textCheck(f.Make, f.MakeContains, func(v *Vehicle) string { return v.Make }); check != nil {
		checks = append(checks, check)
	}
	if check := textCheck(f.Model, f.ModelContains, func(v *Vehicle) string { return v.Model }); check != nil {
		checks = append(checks, check)
	}

	return func(v *Vehicle) bool {
		for _, check := range checks {
			if !check(v) {
				return false
			}
		}
		return true
	}
}

// textCheck builds the exact-or-substring check for one string field.
func textCheck(exact, contains Optional[string], field func(*Vehicle) string) Predicate {
	if s, ok := nonEmpty(exact); ok {
		want := fold(s)
		return func(v *Vehicle) bool { return fold(field(v)) == want }
	}
	if s, ok := nonEmpty(contains); ok {
		want := fold(s)
		return func(v *Vehicle) bool { return strings.Contains(fold(field(v)), want) }
	}
	return nil
}

func nonEmpty(o Optional[string]) (string, bool) {
	s, ok := o.Get()
	return s, ok && s != ""
}
