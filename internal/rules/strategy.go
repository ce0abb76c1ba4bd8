package rules

import (
	"fmt"

	"costshift/internal/model"
	"costshift/internal/registry"
)

// Effect is one division-level percentage adjustment. A Percent of -20
// multiplies the division's cost by 0.8.
type Effect struct {
	Division string
	Percent  float64
}

// StrategyEffects maps a strategy id to its ordered division effects.
type StrategyEffects map[string][]Effect

// Pair is an unordered strategy pair, stored with A < B.
type Pair struct {
	A, B string
}

// PairOf builds the canonical Pair for two strategy ids.
func PairOf(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// CombinationEffects holds additional adjustments that apply only when both
// strategies of a pair are active together.
type CombinationEffects map[Pair][]Effect

// DefaultStrategies is the built-in design strategy catalog.
var DefaultStrategies = []model.Strategy{
	{
		ID:          "envelope_mechanical",
		Name:        "Envelope/Mechanical",
		Description: "High-performance envelope with optimized HVAC",
		Color:       "#2ecc71",
	},
	{
		ID:          "structural_innovation",
		Name:        "Structural Innovation",
		Description: "Advanced structural systems for flexibility",
		Color:       "#9b59b6",
	},
	{
		ID:          "waste_heat_recovery",
		Name:        "Waste Heat Recovery",
		Description: "Energy recovery and sustainable systems",
		Color:       "#3498db",
	},
}

// DefaultStrategyEffects describes how each strategy shifts division costs,
// as a percentage of the division's baseline.
var DefaultStrategyEffects = StrategyEffects{
	"envelope_mechanical": {
		{Division: "superstructure", Percent: -2}, // lighter mechanical loads
		{Division: "enclosure", Percent: 25},      // high-performance envelope costs more
		{Division: "roofing", Percent: 15},
		{Division: "plumbing", Percent: -5},
		{Division: "mechanical", Percent: -20}, // major savings in mechanical
		{Division: "electrical", Percent: -10},
		{Division: "equipment", Percent: 5},
		{Division: "contractor_fees", Percent: 3},
	},
	"structural_innovation": {
		{Division: "substructure", Percent: 15}, // advanced foundations
		{Division: "superstructure", Percent: 20},
		{Division: "enclosure", Percent: -5},
		{Division: "roofing", Percent: -8},
		{Division: "interiors", Percent: -10}, // open floor plans save costs
		{Division: "conveying", Percent: 5},
		{Division: "plumbing", Percent: -3},
		{Division: "mechanical", Percent: -8},
		{Division: "fire_protection", Percent: 2},
		{Division: "electrical", Percent: -5},
		{Division: "contractor_fees", Percent: 5}, // innovation premium
	},
	"waste_heat_recovery": {
		{Division: "substructure", Percent: 2},
		{Division: "enclosure", Percent: 5},
		{Division: "roofing", Percent: 8}, // rooftop equipment
		{Division: "plumbing", Percent: 15},
		{Division: "mechanical", Percent: 10},
		{Division: "electrical", Percent: -15}, // energy savings
		{Division: "equipment", Percent: 20},
		{Division: "contractor_fees", Percent: 8},
	},
}

// DefaultCombinationEffects are the extra adjustments for strategy pairs.
var DefaultCombinationEffects = CombinationEffects{
	PairOf("envelope_mechanical", "structural_innovation"): {
		{Division: "superstructure", Percent: -3},
		{Division: "mechanical", Percent: -5},
		{Division: "contractor_fees", Percent: -2},
	},
	PairOf("envelope_mechanical", "waste_heat_recovery"): {
		{Division: "mechanical", Percent: -8},
		{Division: "electrical", Percent: -5},
		{Division: "equipment", Percent: -3},
	},
	PairOf("structural_innovation", "waste_heat_recovery"): {
		{Division: "superstructure", Percent: 2},
		{Division: "plumbing", Percent: -2},
		{Division: "mechanical", Percent: -3},
	},
}

// StrategyByID returns the strategy metadata for an id.
func StrategyByID(strategies []model.Strategy, id string) (model.Strategy, bool) {
	for _, s := range strategies {
		if s.ID == id {
			return s, true
		}
	}
	return model.Strategy{}, false
}

// Validate checks strategy and combination effects against the division set
// and the strategy catalog.
func (se StrategyEffects) Validate(divs *registry.Divisions, strategies []model.Strategy) error {
	for id, effects := range se {
		if _, ok := StrategyByID(strategies, id); !ok {
			return fmt.Errorf("strategy effects: unknown strategy %q", id)
		}
		for _, e := range effects {
			if !divs.Has(e.Division) {
				return fmt.Errorf("strategy effects: %w (strategy %q affects %q)",
					registry.ErrUnknownCategory, id, e.Division)
			}
		}
	}
	return nil
}

// Validate checks combination pairs against the strategy catalog and
// division set.
func (ce CombinationEffects) Validate(divs *registry.Divisions, strategies []model.Strategy) error {
	for pair, effects := range ce {
		if pair != PairOf(pair.A, pair.B) {
			return fmt.Errorf("combination effects: pair (%q, %q) not in canonical order", pair.A, pair.B)
		}
		for _, id := range []string{pair.A, pair.B} {
			if _, ok := StrategyByID(strategies, id); !ok {
				return fmt.Errorf("combination effects: unknown strategy %q", id)
			}
		}
		for _, e := range effects {
			if !divs.Has(e.Division) {
				return fmt.Errorf("combination effects: %w (pair %q+%q affects %q)",
					registry.ErrUnknownCategory, pair.A, pair.B, e.Division)
			}
		}
	}
	return nil
}
