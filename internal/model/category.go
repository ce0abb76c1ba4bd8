// Package model defines domain types for costshift categories and scenarios.
package model

// Category is one percent-mode cost bucket of the project budget.
// BasePercent values across a registry sum to 100.
type Category struct {
	ID          string
	Name        string
	BasePercent float64
	Color       string // hex color used by the TUI breakdown views
}

// Division is one strategy-mode CSI division priced per square foot.
type Division struct {
	ID          string
	Name        string
	BaseCostPSF float64
	Color       string
}

// Strategy is a named bundle of simultaneous division effects representing
// a design decision (e.g. "Waste Heat Recovery").
type Strategy struct {
	ID          string
	Name        string
	Description string
	Color       string
}
