package model

// Snapshot is the serialized engine state handed to export and report code.
// Field names are the wire format; downstream report generation depends on
// them, so they must not change.
type Snapshot struct {
	Allocations map[string]float64 `json:"allocations"`
	Adjustments map[string]float64 `json:"adjustments"`
	TotalCost   float64            `json:"total_cost"`
}

// Scenario modes stored alongside snapshots.
const (
	ModePercent  = "percent"
	ModeStrategy = "strategy"
)

// ScenarioMeta identifies a saved scenario in the store.
type ScenarioMeta struct {
	Name      string
	Mode      string // ModePercent or ModeStrategy
	TotalCost float64
	SavedAt   string // RFC3339
}
