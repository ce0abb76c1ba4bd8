package engine

import (
	"fmt"
	"sort"

	"costshift/internal/model"
	"costshift/internal/registry"
	"costshift/internal/rules"
)

// Planner composes design strategies over CSI division costs. Strategy
// effects are multiplicative: each active strategy scales a division's cost
// by (1 + effect/100), and each active strategy pair with a combination
// entry contributes one further scaling. Strategies are applied in sorted id
// order, so the result is independent of selection order.
type Planner struct {
	divs       *registry.Divisions
	strategies []model.Strategy
	effects    rules.StrategyEffects
	combos     rules.CombinationEffects

	areaSqFt float64
	active   map[string]bool
}

// NewPlanner validates the strategy tables against the division set and
// returns a planner with no strategies active.
func NewPlanner(divs *registry.Divisions, strategies []model.Strategy, effects rules.StrategyEffects, combos rules.CombinationEffects, areaSqFt float64) (*Planner, error) {
	if err := effects.Validate(divs, strategies); err != nil {
		return nil, err
	}
	if err := combos.Validate(divs, strategies); err != nil {
		return nil, err
	}

	return &Planner{
		divs:       divs,
		strategies: strategies,
		effects:    effects,
		combos:     combos,
		areaSqFt:   areaSqFt,
		active:     make(map[string]bool),
	}, nil
}

// SetActive switches a strategy on or off.
func (p *Planner) SetActive(strategyID string, on bool) error {
	if _, ok := rules.StrategyByID(p.strategies, strategyID); !ok {
		return fmt.Errorf("unknown strategy %q", strategyID)
	}
	if on {
		p.active[strategyID] = true
	} else {
		delete(p.active, strategyID)
	}
	return nil
}

// Toggle flips a strategy and reports its new state.
func (p *Planner) Toggle(strategyID string) (bool, error) {
	if err := p.SetActive(strategyID, !p.active[strategyID]); err != nil {
		return false, err
	}
	return p.active[strategyID], nil
}

// IsActive reports whether a strategy is currently on.
func (p *Planner) IsActive(strategyID string) bool {
	return p.active[strategyID]
}

// Active returns the active strategy ids in sorted order, which is also the
// order effects are applied in.
func (p *Planner) Active() []string {
	ids := make([]string, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Strategies returns the full catalog in registration order.
func (p *Planner) Strategies() []model.Strategy {
	return p.strategies
}

// Divisions returns the division set in registration order.
func (p *Planner) Divisions() []model.Division {
	return p.divs.All()
}

// AreaSqFt returns the building area the per-square-foot baselines are
// scaled by.
func (p *Planner) AreaSqFt() float64 {
	return p.areaSqFt
}

// SetAreaSqFt changes the building area. Active strategies are unaffected.
func (p *Planner) SetAreaSqFt(area float64) {
	p.areaSqFt = area
}

// BaselineCosts returns the id -> dollar cost map with no strategies
// applied.
func (p *Planner) BaselineCosts() map[string]float64 {
	return p.divs.BaseCosts(p.areaSqFt)
}

// Costs returns the id -> dollar cost map with all active strategies and
// their combination effects applied.
func (p *Planner) Costs() map[string]float64 {
	costs := p.BaselineCosts()
	active := p.Active()

	for _, id := range active {
		for _, e := range p.effects[id] {
			costs[e.Division] *= 1 + e.Percent/100
		}
	}

	// Combination effects fire once per active pair, regardless of how
	// many strategies are on.
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			for _, e := range p.combos[rules.PairOf(active[i], active[j])] {
				costs[e.Division] *= 1 + e.Percent/100
			}
		}
	}
	return costs
}

// TotalCost returns the sum of all division costs under the active
// strategies.
func (p *Planner) TotalCost() float64 {
	total := 0.0
	for _, v := range p.Costs() {
		total += v
	}
	return total
}

// BaselineTotal returns the sum of all division costs with no strategies.
func (p *Planner) BaselineTotal() float64 {
	total := 0.0
	for _, v := range p.BaselineCosts() {
		total += v
	}
	return total
}

// Deltas returns id -> dollar change from baseline per division.
func (p *Planner) Deltas() map[string]float64 {
	base := p.BaselineCosts()
	out := p.Costs()
	for id := range out {
		out[id] -= base[id]
	}
	return out
}

// PerStrategy returns each active strategy's standalone dollar impact: the
// total cost change it would cause if it were the only active strategy.
// Because effects compose multiplicatively, the standalone impacts do not
// sum to the combined delta; the difference is the interaction term.
func (p *Planner) PerStrategy() map[string]float64 {
	base := p.BaselineCosts()
	out := make(map[string]float64, len(p.active))
	for _, id := range p.Active() {
		delta := 0.0
		for _, e := range p.effects[id] {
			delta += base[e.Division] * e.Percent / 100
		}
		out[id] = delta
	}
	return out
}

// Snapshot captures division costs in the shared wire format. Allocations
// carry dollar costs per division and adjustments carry dollar deltas from
// baseline.
func (p *Planner) Snapshot() model.Snapshot {
	return model.Snapshot{
		Allocations: p.Costs(),
		Adjustments: p.Deltas(),
		TotalCost:   p.TotalCost(),
	}
}
