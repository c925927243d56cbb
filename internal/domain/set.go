package domain

// VehicleSet holds logically distinct vehicles, using Equal and Hash.
// The zero value is not usable; create one with NewVehicleSet.
type VehicleSet struct {
	buckets map[uint64][]*Vehicle
	size    int
}

// NewVehicleSet creates a set containing the given vehicles.
func NewVehicleSet(vehicles ...*Vehicle) *VehicleSet {
	s := &VehicleSet{buckets: make(map[uint64][]*Vehicle)}
	for _, v := range vehicles {
		s.Add(v)
	}
	return s
}

// Add inserts v unless an equal vehicle is already present.
// Returns true if v was added.
func (s *VehicleSet) Add(v *Vehicle) bool {
	h := Hash(v)
	for _, existing := range s.buckets[h] {
		if Equal(existing, v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v.Clone())
	s.size++
	return true
}

// Contains reports whether a vehicle equal to v is in the set.
func (s *VehicleSet) Contains(v *Vehicle) bool {
	for _, existing := range s.buckets[Hash(v)] {
		if Equal(existing, v) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct vehicles in the set.
func (s *VehicleSet) Len() int {
	return s.size
}
