package domain

import "fmt"

// Validate checks v against the vehicle rules and returns a *ValidationError
// listing every violation, or nil when v is acceptable.
func Validate(v *Vehicle) error {
	var violations []Violation

	if v.Year < MinYear || v.Year > MaxYear {
		violations = append(violations, Violation{
			Field:   "year",
			Message: fmt.Sprintf("must be between %d and %d", MinYear, MaxYear),
		})
	}
	if v.Make == "" {
		violations = append(violations, Violation{Field: "make", Message: "is required"})
	}
	if v.Model == "" {
		violations = append(violations, Violation{Field: "model", Message: "is required"})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
