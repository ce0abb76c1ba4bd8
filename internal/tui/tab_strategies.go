package tui

import (
	"fmt"
	"strings"

	"costshift/internal/cli"
	"costshift/internal/rules"
	"costshift/internal/tui/components"
	"costshift/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderStrategiesTab renders the strategy toggle list with live impact.
func (a App) renderStrategiesTab(cw int) string {
	t := theme.Active

	combined := a.planner.TotalCost() - a.planner.BaselineTotal()
	cards := []struct{ Label, Value, Delta string }{
		{"Baseline", cli.FormatMoneyCompact(a.planner.BaselineTotal()), cli.FormatArea(a.planner.AreaSqFt())},
		{"With Strategies", cli.FormatMoneyCompact(a.planner.TotalCost()), ""},
		{"Net Change", cli.FormatMoneyDelta(combined), ""},
	}
	out := components.MetricCardRow(cards, cw) + "\n"

	selStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	impacts := a.planner.PerStrategy()

	var b strings.Builder
	for i, s := range a.planner.Strategies() {
		cursor := "  "
		name := nameStyle.Render(s.Name)
		if i == a.stratCursor {
			cursor = cursorStyle.Render("❯ ")
			name = selStyle.Render(s.Name)
		}

		impact := ""
		if a.planner.IsActive(s.ID) {
			impact = "  " + components.DeltaText(cli.FormatMoneyDelta(impacts[s.ID]), impacts[s.ID])
		}

		b.WriteString(fmt.Sprintf("%s%s %s%s\n", cursor, components.Checkbox(a.planner.IsActive(s.ID)), name, impact))
		b.WriteString("      " + descStyle.Render(truncStr(s.Description, cw-10)) + "\n")
	}

	out += components.ContentCard("Design Strategies", b.String(), cw)

	// Combination effects in play
	active := a.planner.Active()
	if len(active) >= 2 {
		var cb strings.Builder
		for i := 0; i < len(active); i++ {
			for j := i + 1; j < len(active); j++ {
				pair := rules.PairOf(active[i], active[j])
				if len(rules.DefaultCombinationEffects[pair]) == 0 {
					continue
				}
				sa, _ := rules.StrategyByID(a.planner.Strategies(), pair.A)
				sb, _ := rules.StrategyByID(a.planner.Strategies(), pair.B)
				cb.WriteString(fmt.Sprintf("%s + %s\n",
					nameStyle.Render(sa.Name), nameStyle.Render(sb.Name)))
				for _, e := range rules.DefaultCombinationEffects[pair] {
					cb.WriteString(descStyle.Render(fmt.Sprintf("    %s %s\n",
						e.Division, cli.FormatSignedPercent(e.Percent))))
				}
			}
		}
		if cb.Len() > 0 {
			out += "\n" + components.ContentCard("Combination Effects", strings.TrimRight(cb.String(), "\n"), cw)
		}
	}

	return out
}
