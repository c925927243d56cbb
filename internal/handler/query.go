package handler

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"vehicles-api/internal/domain"
)

// ParseFilters builds filter criteria from query parameters.
// Parameter names match case-insensitively; the first value of a repeated
// parameter wins and unknown parameters are ignored. Empty values are absent.
// Year parameters must be integers within the accepted year range.
func ParseFilters(query url.Values) (domain.Filters, error) {
	// Exact-case keys are seen first so they win over other spellings.
	keys := slices.Sorted(maps.Keys(query))
	slices.SortStableFunc(keys, func(a, b string) int {
		return boolCmp(isCanonical(a), isCanonical(b))
	})

	values := make(map[string]string, len(query))
	for _, key := range keys {
		k := strings.ToLower(key)
		if _, seen := values[k]; seen || len(query[key]) == 0 {
			continue
		}
		values[k] = query[key][0]
	}

	var f domain.Filters
	var err error

	if f.Year, err = intParam(values, "year"); err != nil {
		return domain.Filters{}, err
	}
	if f.MinYear, err = intParam(values, "minYear"); err != nil {
		return domain.Filters{}, err
	}
	if f.MaxYear, err = intParam(values, "maxYear"); err != nil {
		return domain.Filters{}, err
	}

	f.Make = stringParam(values, "make")
	f.MakeContains = stringParam(values, "makeContains")
	f.Model = stringParam(values, "model")
	f.ModelContains = stringParam(values, "modelContains")

	if err := f.Validate(); err != nil {
		return domain.Filters{}, err
	}
	return f, nil
}

var canonicalParams = []string{
	"year", "minYear", "maxYear",
	"make", "makeContains",
	"model", "modelContains",
}

func isCanonical(key string) bool {
	return slices.Contains(canonicalParams, key)
}

// boolCmp orders true before false.
func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

func intParam(values map[string]string, name string) (domain.Optional[int], error) {
	raw := values[strings.ToLower(name)]
	if raw == "" {
		return domain.None[int](), nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return domain.None[int](), &domain.MalformedInputError{
			Param:  name,
			Value:  raw,
			Reason: "must be an integer",
		}
	}
	return domain.Some(n), nil
}

func stringParam(values map[string]string, name string) domain.Optional[string] {
	raw := values[strings.ToLower(name)]
	if raw == "" {
		return domain.None[string]()
	}
	return domain.Some(raw)
}
