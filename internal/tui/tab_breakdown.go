package tui

import (
	"fmt"
	"strings"

	"costshift/internal/cli"
	"costshift/internal/tui/components"
)

// renderBreakdownTab renders per-division costs under the active strategies.
func (a App) renderBreakdownTab(cw int) string {
	base := a.planner.BaselineCosts()
	costs := a.planner.Costs()
	deltas := a.planner.Deltas()

	maxCost := 0.0
	for _, v := range costs {
		if v > maxCost {
			maxCost = v
		}
	}
	for _, v := range base {
		if v > maxCost {
			maxCost = v
		}
	}

	nameW := 22
	barW := components.CardInnerWidth(cw) - nameW - 40 // fixed columns after the bar
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, div := range a.planner.Divisions() {
		b.WriteString(fmt.Sprintf("%-*s %s %13s %13s\n",
			nameW,
			truncStr(div.Name, nameW),
			components.CostBar(costs[div.ID], base[div.ID], maxCost, barW),
			cli.FormatMoney(costs[div.ID]),
			components.DeltaText(fmt.Sprintf("%13s", cli.FormatMoneyDelta(deltas[div.ID])), deltas[div.ID]),
		))
	}

	title := "Division Costs (baseline)"
	if n := len(a.planner.Active()); n > 0 {
		title = fmt.Sprintf("Division Costs (%d strategies active)", n)
	}
	out := components.ContentCard(title, strings.TrimRight(b.String(), "\n"), cw)

	costPerSF := "—"
	if a.planner.AreaSqFt() > 0 {
		costPerSF = fmt.Sprintf("$%.2f", a.planner.TotalCost()/a.planner.AreaSqFt())
	}
	cards := []struct{ Label, Value, Delta string }{
		{"Total", cli.FormatMoneyCompact(a.planner.TotalCost()), ""},
		{"vs Baseline", cli.FormatMoneyDelta(a.planner.TotalCost() - a.planner.BaselineTotal()), ""},
		{"Cost / SF", costPerSF, ""},
	}
	return out + "\n" + components.MetricCardRow(cards, cw)
}
