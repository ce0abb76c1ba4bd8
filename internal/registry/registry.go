// Package registry supplies the read-only category and division reference
// data the allocation engines compute over.
package registry

import (
	"errors"
	"fmt"
	"math"

	"costshift/internal/model"
)

// ErrUnknownCategory is returned when a lookup references an id that was
// never registered. Callers are expected to only pass registered ids, so
// hitting this means a configuration or programming error.
var ErrUnknownCategory = errors.New("unknown category id")

// percentSumTolerance bounds floating-point drift when checking that
// baseline percentages cover the whole budget.
const percentSumTolerance = 1e-6

// Registry holds an ordered set of percent-mode categories.
// It is built once at startup and never mutated afterwards.
type Registry struct {
	categories []model.Category
	byID       map[string]int
}

// NewRegistry validates and indexes the given categories.
// Baseline percentages must sum to 100.
func NewRegistry(categories []model.Category) (*Registry, error) {
	if len(categories) == 0 {
		return nil, errors.New("registry: no categories")
	}

	byID := make(map[string]int, len(categories))
	sum := 0.0
	for i, c := range categories {
		if c.ID == "" {
			return nil, fmt.Errorf("registry: category %d has empty id", i)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("registry: category %q has empty name", c.ID)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("registry: duplicate category id %q", c.ID)
		}
		if c.BasePercent < 0 {
			return nil, fmt.Errorf("registry: category %q has negative baseline %.2f", c.ID, c.BasePercent)
		}
		byID[c.ID] = i
		sum += c.BasePercent
	}

	if math.Abs(sum-100) > percentSumTolerance {
		return nil, fmt.Errorf("registry: baselines sum to %.4f, want 100", sum)
	}

	return &Registry{categories: categories, byID: byID}, nil
}

// Categories returns the categories in registration order.
// The returned slice must not be modified.
func (r *Registry) Categories() []model.Category {
	return r.categories
}

// Lookup returns the category for the given id.
func (r *Registry) Lookup(id string) (model.Category, error) {
	i, ok := r.byID[id]
	if !ok {
		return model.Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	return r.categories[i], nil
}

// Has reports whether the id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Len returns the number of registered categories.
func (r *Registry) Len() int {
	return len(r.categories)
}

// BasePercents returns a fresh id -> baseline percentage map.
func (r *Registry) BasePercents() map[string]float64 {
	out := make(map[string]float64, len(r.categories))
	for _, c := range r.categories {
		out[c.ID] = c.BasePercent
	}
	return out
}
