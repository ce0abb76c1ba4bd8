// Package engine implements the allocation trade-off computations: the
// percent-mode Model (single-driver slider adjustments) and the
// strategy-mode Planner (multiplicative design strategy composition).
//
// Both engines are pure in-memory computations. A Model or Planner belongs
// to exactly one session; neither is safe for concurrent use.
package engine

import (
	"errors"
	"fmt"
	"math"

	"costshift/internal/model"
	"costshift/internal/registry"
	"costshift/internal/rules"
)

// ErrZeroTotal is returned when renormalization would divide by zero.
// It can only happen with a configuration where every category ends up at
// zero simultaneously, which is invalid input, not a computable state.
var ErrZeroTotal = errors.New("allocation total is zero, cannot renormalize")

// coefficientScale converts rule coefficients (expressed per 10 units of
// driver movement) into per-unit adjustments. See rules.TradeEffect.
const coefficientScale = 10.0

// Model holds the mutable allocation state for one percent-mode session.
//
// Every UpdateAllocation rebuilds the state from baseline rather than
// patching the previous state; repeated slider moves therefore never
// compound rounding error.
type Model struct {
	reg    *registry.Registry
	trades rules.TradeRules

	totalCost   float64
	allocations map[string]float64 // category id -> current percent
	adjustments map[string]float64 // category id -> percent delta from baseline
}

// New builds a Model at baseline. The rule table is validated against the
// registry so unknown ids fail here, not mid-computation.
func New(reg *registry.Registry, trades rules.TradeRules, totalCost float64) (*Model, error) {
	if err := trades.Validate(reg); err != nil {
		return nil, err
	}

	m := &Model{
		reg:       reg,
		trades:    trades,
		totalCost: totalCost,
	}
	m.Reset()
	return m, nil
}

// Reset restores every category to its baseline and zeroes all adjustments.
// Idempotent.
func (m *Model) Reset() {
	m.allocations = m.reg.BasePercents()
	m.adjustments = make(map[string]float64, m.reg.Len())
	for _, c := range m.reg.Categories() {
		m.adjustments[c.ID] = 0
	}
}

// UpdateAllocation sets the driver category to newValue (an absolute
// percentage), applies the driver's trade rules to coupled categories, and
// renormalizes so the total stays at exactly 100.
//
// The engine does not clamp newValue; slider bounds are the caller's
// concern. Out-of-range values still compute and normalize.
func (m *Model) UpdateAllocation(driverID string, newValue float64) (map[string]float64, error) {
	base, err := m.reg.Lookup(driverID)
	if err != nil {
		return nil, err
	}

	// Rebuild from baseline: the slider reports an absolute position, so
	// any previous trade-off state is superseded, not layered.
	m.Reset()

	delta := newValue - base.BasePercent
	m.allocations[driverID] = newValue
	m.adjustments[driverID] = delta

	if delta != 0 {
		for _, e := range m.trades[driverID] {
			adj := delta * e.Coefficient / coefficientScale
			m.allocations[e.Affected] += adj
			m.adjustments[e.Affected] += adj
		}
	}

	if err := m.renormalize(); err != nil {
		return nil, err
	}
	return m.Allocations(), nil
}

// renormalize scales every allocation so the total is exactly 100 while
// preserving relative proportions, then re-derives adjustments so they stay
// consistent with the scaled allocations.
func (m *Model) renormalize() error {
	total := 0.0
	for _, v := range m.allocations {
		total += v
	}
	if total == 0 {
		return ErrZeroTotal
	}
	if total == 100 {
		return nil
	}

	factor := 100 / total
	for _, c := range m.reg.Categories() {
		m.allocations[c.ID] *= factor
		m.adjustments[c.ID] = m.allocations[c.ID] - c.BasePercent
	}
	return nil
}

// Allocations returns a copy of the current id -> percent map.
func (m *Model) Allocations() map[string]float64 {
	return copyMap(m.allocations)
}

// Adjustments returns a copy of the current id -> percent delta map.
func (m *Model) Adjustments() map[string]float64 {
	return copyMap(m.adjustments)
}

// TotalCost returns the total project cost in dollars.
func (m *Model) TotalCost() float64 {
	return m.totalCost
}

// SetTotalCost updates the total project cost. Percent allocations are
// unaffected; only dollar derivations change.
func (m *Model) SetTotalCost(totalCost float64) {
	m.totalCost = totalCost
}

// DollarAmounts converts current allocations into dollar amounts.
func (m *Model) DollarAmounts() map[string]float64 {
	out := make(map[string]float64, len(m.allocations))
	for id, pct := range m.allocations {
		out[id] = m.totalCost * pct / 100
	}
	return out
}

// DollarDeltas returns the dollar change from baseline per category.
func (m *Model) DollarDeltas() map[string]float64 {
	out := make(map[string]float64, len(m.adjustments))
	for id, adj := range m.adjustments {
		out[id] = m.totalCost * adj / 100
	}
	return out
}

// Snapshot captures the state in the wire format consumed by export and
// scenario storage.
func (m *Model) Snapshot() model.Snapshot {
	return model.Snapshot{
		Allocations: m.Allocations(),
		Adjustments: m.Adjustments(),
		TotalCost:   m.totalCost,
	}
}

// Restore replaces the state from a snapshot, e.g. a saved scenario.
// Snapshot ids must match the registry and allocations must sum to 100.
func (m *Model) Restore(s model.Snapshot) error {
	if len(s.Allocations) != m.reg.Len() {
		return fmt.Errorf("snapshot has %d categories, registry has %d", len(s.Allocations), m.reg.Len())
	}
	total := 0.0
	for id, v := range s.Allocations {
		if !m.reg.Has(id) {
			return fmt.Errorf("snapshot: %w: %q", registry.ErrUnknownCategory, id)
		}
		total += v
	}
	if math.Abs(total-100) > 1e-6 {
		return fmt.Errorf("snapshot allocations sum to %.4f, want 100", total)
	}

	m.allocations = copyMap(s.Allocations)
	m.adjustments = make(map[string]float64, m.reg.Len())
	for _, c := range m.reg.Categories() {
		m.adjustments[c.ID] = m.allocations[c.ID] - c.BasePercent
	}
	if s.TotalCost > 0 {
		m.totalCost = s.TotalCost
	}
	return nil
}

func copyMap(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
