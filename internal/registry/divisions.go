package registry

import (
	"errors"
	"fmt"

	"costshift/internal/model"
)

// Divisions holds an ordered set of strategy-mode CSI divisions.
// Unlike percent categories, division baselines are costs per square foot
// and carry no sum constraint.
type Divisions struct {
	divisions []model.Division
	byID      map[string]int
}

// NewDivisions validates and indexes the given divisions.
func NewDivisions(divisions []model.Division) (*Divisions, error) {
	if len(divisions) == 0 {
		return nil, errors.New("registry: no divisions")
	}

	byID := make(map[string]int, len(divisions))
	for i, d := range divisions {
		if d.ID == "" {
			return nil, fmt.Errorf("registry: division %d has empty id", i)
		}
		if d.Name == "" {
			return nil, fmt.Errorf("registry: division %q has empty name", d.ID)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("registry: duplicate division id %q", d.ID)
		}
		if d.BaseCostPSF < 0 {
			return nil, fmt.Errorf("registry: division %q has negative base cost %.2f", d.ID, d.BaseCostPSF)
		}
		byID[d.ID] = i
	}

	return &Divisions{divisions: divisions, byID: byID}, nil
}

// All returns the divisions in registration order.
// The returned slice must not be modified.
func (d *Divisions) All() []model.Division {
	return d.divisions
}

// Lookup returns the division for the given id.
func (d *Divisions) Lookup(id string) (model.Division, error) {
	i, ok := d.byID[id]
	if !ok {
		return model.Division{}, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	return d.divisions[i], nil
}

// Has reports whether the id is registered.
func (d *Divisions) Has(id string) bool {
	_, ok := d.byID[id]
	return ok
}

// BaseCosts returns a fresh id -> baseline cost map for the given building
// area in square feet.
func (d *Divisions) BaseCosts(areaSqFt float64) map[string]float64 {
	out := make(map[string]float64, len(d.divisions))
	for _, div := range d.divisions {
		out[div.ID] = div.BaseCostPSF * areaSqFt
	}
	return out
}
