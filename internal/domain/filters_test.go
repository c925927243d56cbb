package domain_test

import (
	"testing"

	"vehicles-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fleet() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: 1, Year: 2006, Make: "Chevy", Model: "Sonic"},
		{ID: 2, Year: 2006, Make: "Ford", Model: "Fiesta"},
		{ID: 3, Year: 2008, Make: "Chevy", Model: "Cruze"},
		{ID: 4, Year: 2009, Make: "Nissan", Model: "Sentra"},
		{ID: 5, Year: 2011, Make: "Ford", Model: "Fusion"},
		{ID: 6, Year: 2014, Make: "Subaru", Model: "Legacy"},
		{ID: 7, Year: 2016, Make: "Chevy", Model: "Impala"},
	}
}

func ids(vehicles []*domain.Vehicle) []int64 {
	out := make([]int64, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.ID
	}
	return out
}

func TestFilters_IsEmpty(t *testing.T) {
	assert.True(t, domain.Filters{}.IsEmpty())
	assert.True(t, domain.Filters{Make: domain.Some(""), ModelContains: domain.Some("")}.IsEmpty())
	assert.False(t, domain.Filters{MaxYear: domain.Some(2000)}.IsEmpty())
	assert.False(t, domain.Filters{ModelContains: domain.Some("a")}.IsEmpty())
}

func TestSelect_EmptyFiltersReturnsEverything(t *testing.T) {
	vehicles := fleet()

	got := domain.Select(domain.Filters{}, vehicles)

	assert.Equal(t, vehicles, got)
	assert.Nil(t, domain.Filters{}.Predicate())
}

func TestSelect(t *testing.T) {
	testCases := []struct {
		name    string
		filters domain.Filters
		want    []int64
	}{
		{
			name:    "exact year",
			filters: domain.Filters{Year: domain.Some(2006)},
			want:    []int64{1, 2},
		},
		{
			name:    "exact year wins over range",
			filters: domain.Filters{Year: domain.Some(2006), MinYear: domain.Some(2000), MaxYear: domain.Some(2020)},
			want:    []int64{1, 2},
		},
		{
			name:    "exact year wins even when range excludes it",
			filters: domain.Filters{Year: domain.Some(2006), MinYear: domain.Some(2010)},
			want:    []int64{1, 2},
		},
		{
			name:    "min year only",
			filters: domain.Filters{MinYear: domain.Some(2011)},
			want:    []int64{5, 6, 7},
		},
		{
			name:    "max year only",
			filters: domain.Filters{MaxYear: domain.Some(2008)},
			want:    []int64{1, 2, 3},
		},
		{
			name:    "year range inclusive",
			filters: domain.Filters{MinYear: domain.Some(2008), MaxYear: domain.Some(2014)},
			want:    []int64{3, 4, 5, 6},
		},
		{
			name:    "inverted range matches nothing",
			filters: domain.Filters{MinYear: domain.Some(2014), MaxYear: domain.Some(2008)},
			want:    []int64{},
		},
		{
			name:    "make is case-insensitive",
			filters: domain.Filters{Make: domain.Some("chevy")},
			want:    []int64{1, 3, 7},
		},
		{
			name:    "make contains",
			filters: domain.Filters{MakeContains: domain.Some("hev")},
			want:    []int64{1, 3, 7},
		},
		{
			name:    "exact make wins over contains",
			filters: domain.Filters{Make: domain.Some("FORD"), MakeContains: domain.Some("hev")},
			want:    []int64{2, 5},
		},
		{
			name:    "exact make does not match substrings",
			filters: domain.Filters{Make: domain.Some("Che")},
			want:    []int64{},
		},
		{
			name:    "empty exact make falls back to contains",
			filters: domain.Filters{Make: domain.Some(""), MakeContains: domain.Some("o")},
			want:    []int64{2, 5},
		},
		{
			name:    "model exact",
			filters: domain.Filters{Model: domain.Some("LEGACY")},
			want:    []int64{6},
		},
		{
			name:    "model contains",
			filters: domain.Filters{ModelContains: domain.Some("S")},
			want:    []int64{1, 2, 4, 5},
		},
		{
			name:    "exact model wins over contains",
			filters: domain.Filters{Model: domain.Some("cruze"), ModelContains: domain.Some("sonic")},
			want:    []int64{3},
		},
		{
			name: "criteria combine with and",
			filters: domain.Filters{
				MinYear:       domain.Some(2007),
				MakeContains:  domain.Some("CH"),
				ModelContains: domain.Some("a"),
			},
			want: []int64{7},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.Select(tc.filters, fleet())
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestSelect_CaseInsensitivity(t *testing.T) {
	vehicles := []*domain.Vehicle{{ID: 1, Year: 2006, Make: "Chevy", Model: "Sonic"}}

	assert.Len(t, domain.Select(domain.Filters{Make: domain.Some("chevy")}, vehicles), 1)
	assert.Len(t, domain.Select(domain.Filters{MakeContains: domain.Some("hev")}, vehicles), 1)
	assert.Len(t, domain.Select(domain.Filters{MakeContains: domain.Some("HEV")}, vehicles), 1)
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	vehicles := fleet()
	before := fleet()

	got := domain.Select(domain.Filters{Make: domain.Some("ford")}, vehicles)
	require.Len(t, got, 2)

	assert.Equal(t, before, vehicles)
}

func TestFilters_Validate(t *testing.T) {
	assert.NoError(t, domain.Filters{}.Validate())
	assert.NoError(t, domain.Filters{Year: domain.Some(1950), MinYear: domain.Some(2050)}.Validate())

	testCases := []struct {
		name      string
		filters   domain.Filters
		wantParam string
	}{
		{"year too low", domain.Filters{Year: domain.Some(1949)}, "year"},
		{"min year too high", domain.Filters{MinYear: domain.Some(2051)}, "minYear"},
		{"max year too low", domain.Filters{MaxYear: domain.Some(0)}, "maxYear"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.filters.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedInput)

			var merr *domain.MalformedInputError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, tc.wantParam, merr.Param)
		})
	}
}
