// Package rules holds the static trade-off configuration: how a change in
// one cost category ripples into others, and how design strategies shift
// CSI division costs.
package rules

import (
	"fmt"

	"costshift/internal/registry"
)

// TradeEffect couples one affected category to a driver.
//
// Coefficient is calibrated per 10 units of driver movement: a driver delta
// of +10 percentage points moves the affected category by Coefficient
// percentage points. The engine divides by 10 accordingly. This scale
// matches the built-in category ranges (sliders 0-30%) and must be
// re-derived if those ranges change.
type TradeEffect struct {
	Affected    string
	Coefficient float64
}

// TradeRules maps a driver category id to its ordered secondary effects.
// A driver absent from the table has no secondary effects. Rules are
// directed: envelope affecting mechanical does not imply the reverse.
type TradeRules map[string][]TradeEffect

// DefaultTradeRules is the built-in rule set for the default categories.
var DefaultTradeRules = TradeRules{
	"envelope": {
		{Affected: "mechanical", Coefficient: -0.8}, // +10% envelope = -8% mechanical
		{Affected: "electrical", Coefficient: -0.3},
	},
	"superstructure": {
		{Affected: "foundation", Coefficient: -0.6},
	},
	"plumbing": {
		{Affected: "electrical", Coefficient: -0.6},
		{Affected: "mechanical", Coefficient: -0.4},
	},
}

// Validate checks every driver and affected id against the registry.
// Unknown ids are configuration errors and fail eagerly, before any
// allocation math runs.
func (t TradeRules) Validate(reg *registry.Registry) error {
	for driver, effects := range t {
		if !reg.Has(driver) {
			return fmt.Errorf("trade rules: %w (driver %q)", registry.ErrUnknownCategory, driver)
		}
		for _, e := range effects {
			if !reg.Has(e.Affected) {
				return fmt.Errorf("trade rules: %w (driver %q affects %q)",
					registry.ErrUnknownCategory, driver, e.Affected)
			}
			if e.Affected == driver {
				return fmt.Errorf("trade rules: driver %q affects itself", driver)
			}
		}
	}
	return nil
}
