package registry

import "costshift/internal/model"

// DefaultCategories is the built-in percent-mode budget breakdown for a
// healthcare construction project. Baselines sum to 100.
var DefaultCategories = []model.Category{
	{ID: "envelope", Name: "Enclosure (Envelope)", BasePercent: 15.0, Color: "#2E86AB"},
	{ID: "superstructure", Name: "Superstructure", BasePercent: 20.0, Color: "#A23B72"},
	{ID: "foundation", Name: "Foundation", BasePercent: 10.0, Color: "#F18F01"},
	{ID: "plumbing", Name: "Plumbing", BasePercent: 8.0, Color: "#C73E1D"},
	{ID: "mechanical", Name: "Mechanical", BasePercent: 18.0, Color: "#6A994E"},
	{ID: "electrical", Name: "Electrical", BasePercent: 12.0, Color: "#BC4B51"},
	{ID: "equipment", Name: "Equipment", BasePercent: 7.0, Color: "#5B8C85"},
	{ID: "fees", Name: "Contractor & A/E Fees", BasePercent: 10.0, Color: "#8B5A3C"},
}

// DefaultDivisions is the built-in CSI division breakdown used by the
// strategy planner, priced per gross square foot.
var DefaultDivisions = []model.Division{
	{ID: "substructure", Name: "Substructure", BaseCostPSF: 18, Color: "#1f77b4"},
	{ID: "superstructure", Name: "Superstructure", BaseCostPSF: 95, Color: "#ff7f0e"},
	{ID: "enclosure", Name: "Enclosure", BaseCostPSF: 45, Color: "#2ca02c"},
	{ID: "roofing", Name: "Roofing", BaseCostPSF: 12, Color: "#d62728"},
	{ID: "interiors", Name: "Interiors", BaseCostPSF: 85, Color: "#9467bd"},
	{ID: "conveying", Name: "Conveying", BaseCostPSF: 15, Color: "#8c564b"},
	{ID: "plumbing", Name: "Plumbing", BaseCostPSF: 25, Color: "#e377c2"},
	{ID: "mechanical", Name: "Mechanical", BaseCostPSF: 110, Color: "#7f7f7f"},
	{ID: "fire_protection", Name: "Fire Protection", BaseCostPSF: 8, Color: "#bcbd22"},
	{ID: "electrical", Name: "Electrical", BaseCostPSF: 65, Color: "#17becf"},
	{ID: "equipment", Name: "Equipment/Furnishing", BaseCostPSF: 45, Color: "#aec7e8"},
	{ID: "contractor_fees", Name: "Contractor/A/E", BaseCostPSF: 78, Color: "#ffbb78"},
}

// Default returns the built-in percent-mode registry.
// Panics on invalid built-in data, which would be a build-time mistake.
func Default() *Registry {
	r, err := NewRegistry(DefaultCategories)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultCSI returns the built-in CSI division set.
func DefaultCSI() *Divisions {
	d, err := NewDivisions(DefaultDivisions)
	if err != nil {
		panic(err)
	}
	return d
}
