package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
)

const (
	// MinYear is the earliest model year accepted for a vehicle.
	MinYear = 1950
	// MaxYear is the latest model year accepted for a vehicle.
	MaxYear = 2050
)

// Vehicle represents a stored vehicle entry.
// ID is assigned by the repository on creation and never changes.
type Vehicle struct {
	ID    int64
	Year  int
	Make  string
	Model string
}

// Clone creates a copy of the vehicle.
func (v *Vehicle) Clone() *Vehicle {
	return &Vehicle{
		ID:    v.ID,
		Year:  v.Year,
		Make:  v.Make,
		Model: v.Model,
	}
}

// Equal reports whether a and b describe the same vehicle.
// Year must match exactly, make and model are compared case-insensitively.
// IDs are ignored.
func Equal(a, b *Vehicle) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Year == b.Year &&
		fold(a.Make) == fold(b.Make) &&
		fold(a.Model) == fold(b.Model)
}

// Hash returns a hash consistent with Equal: vehicles that are Equal
// always hash to the same value.
func Hash(v *Vehicle) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(fold(v.Make))
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(fold(v.Model))
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(strconv.Itoa(v.Year))
	return d.Sum64()
}

// fold normalizes s for case-insensitive comparison.
// A Caser is stateful, so a fresh one is used per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
