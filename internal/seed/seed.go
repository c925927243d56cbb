// Package seed loads initial vehicles from a YAML or JSON file.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"vehicles-api/internal/domain"
)

// Errors returned by LoadFile.
var (
	ErrFileNotFound = errors.New("seed file not found")
	ErrEmptyFile    = errors.New("seed file is empty")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
)

// Entry is one vehicle in a seed file.
// Keys follow the API wire format (Year, Make, Model).
type Entry struct {
	Year  int    `yaml:"Year" json:"Year"`
	Make  string `yaml:"Make" json:"Make"`
	Model string `yaml:"Model" json:"Model"`
}

// File is the top-level layout of a seed file.
type File struct {
	Vehicles []Entry `yaml:"vehicles" json:"vehicles"`
}

// LoadFile reads vehicles from path. The format is chosen by extension:
// .yaml and .yml are YAML, anything else is JSON.
// Every entry must pass vehicle validation.
func LoadFile(path string) ([]*domain.Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	var file File
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
		}
	} else {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
		}
	}

	vehicles := make([]*domain.Vehicle, 0, len(file.Vehicles))
	for i, e := range file.Vehicles {
		v := &domain.Vehicle{Year: e.Year, Make: e.Make, Model: e.Model}
		if err := domain.Validate(v); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

// Store is the subset of the vehicle service seeding needs.
type Store interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	List(ctx context.Context, f domain.Filters) ([]*domain.Vehicle, error)
}

// Result counts what Apply did.
type Result struct {
	Created int
	Skipped int
}

// Apply creates each vehicle in store, skipping any that is logically equal
// to one already stored or earlier in vehicles.
func Apply(ctx context.Context, store Store, vehicles []*domain.Vehicle) (Result, error) {
	existing, err := store.List(ctx, domain.Filters{})
	if err != nil {
		return Result{}, fmt.Errorf("listing existing vehicles: %w", err)
	}

	seen := domain.NewVehicleSet(existing...)

	var res Result
	for _, v := range vehicles {
		if !seen.Add(v) {
			res.Skipped++
			continue
		}
		if _, err := store.Create(ctx, v); err != nil {
			return res, fmt.Errorf("creating %d %s %s: %w", v.Year, v.Make, v.Model, err)
		}
		res.Created++
	}

	return res, nil
}
