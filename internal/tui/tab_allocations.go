package tui

import (
	"fmt"
	"strings"

	"costshift/internal/cli"
	"costshift/internal/tui/components"
	"costshift/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderAllocationsTab renders the percent-mode slider list.
func (a App) renderAllocationsTab(cw int) string {
	t := theme.Active

	allocs := a.model.Allocations()
	adjs := a.model.Adjustments()
	amounts := a.model.DollarAmounts()
	deltas := a.model.DollarDeltas()

	driverLabel := "baseline"
	if a.lastDriver != "" {
		if c, err := a.reg.Lookup(a.lastDriver); err == nil {
			driverLabel = c.Name
		}
	}
	cards := []struct{ Label, Value, Delta string }{
		{"Total Budget", cli.FormatMoneyCompact(a.model.TotalCost()), ""},
		{"Driver", truncStr(driverLabel, 20), ""},
		{"Allocated", "100.0%", "always sums to 100"},
	}
	out := components.MetricCardRow(cards, cw) + "\n"

	nameW := 24
	barW := components.CardInnerWidth(cw) - nameW - 38 // fixed columns after the bar
	if barW < 12 {
		barW = 12
	}

	selStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	for i, c := range a.reg.Categories() {
		cursor := "  "
		name := nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Name, nameW)))
		if i == a.allocCursor {
			cursor = cursorStyle.Render("❯ ")
			name = selStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Name, nameW)))
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s  %12s %s\n",
			cursor,
			name,
			components.AllocationBar(allocs[c.ID], c.BasePercent, sliderMax, barW),
			components.SharePct(allocs[c.ID]),
			components.DeltaText(fmt.Sprintf("%7s", cli.FormatSignedPercent(adjs[c.ID])), adjs[c.ID]),
			cli.FormatMoney(amounts[c.ID]),
			components.DeltaText(fmt.Sprintf("%12s", cli.FormatMoneyDelta(deltas[c.ID])), deltas[c.ID]),
		))
	}

	out += components.ContentCard("Budget Allocations", b.String(), cw)
	return out
}
