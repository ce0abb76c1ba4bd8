package components

import (
	"fmt"

	"costshift/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// AllocationBar renders a labeled allocation slider: name, filled bar with a
// baseline tick, and the current percentage. maxPct sets the bar's scale.
func AllocationBar(value, baseline, maxPct float64, barWidth int) string {
	t := theme.Active

	if maxPct <= 0 || barWidth <= 0 {
		return ""
	}

	clamp := func(n int) int {
		if n < 0 {
			return 0
		}
		if n > barWidth {
			return barWidth
		}
		return n
	}
	filled := clamp(int(value / maxPct * float64(barWidth)))
	tick := clamp(int(baseline / maxPct * float64(barWidth)))

	barColor := t.Accent
	switch {
	case value > baseline+0.05:
		barColor = t.Orange
	case value < baseline-0.05:
		barColor = t.Blue
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	tickStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var out string
	for i := 0; i < barWidth; i++ {
		switch {
		case i == tick && i != 0 && i != barWidth-1:
			out += tickStyle.Render("┃")
		case i < filled:
			out += filledStyle.Render("█")
		default:
			out += emptyStyle.Render("░")
		}
	}
	return out
}

// CostBar renders a solid-fill cost bar scaled against maxValue, colored by
// whether the cost sits above or below its baseline.
func CostBar(value, baseline, maxValue float64, barWidth int) string {
	t := theme.Active

	if maxValue <= 0 || barWidth <= 0 {
		return ""
	}

	fill := string(t.Accent)
	switch {
	case value > baseline+0.5:
		fill = string(t.Red)
	case value < baseline-0.5:
		fill = string(t.Green)
	}

	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pct := value / maxValue
	if pct > 1 {
		pct = 1
	}
	if pct < 0 {
		pct = 0
	}
	return bar.ViewAs(pct)
}

// Checkbox renders a strategy toggle marker.
func Checkbox(on bool) string {
	t := theme.Active
	if on {
		return lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render("[x]")
	}
	return lipgloss.NewStyle().Foreground(t.TextDim).Render("[ ]")
}

// DeltaText renders a signed value colored by direction: negative (savings)
// in green, positive (overrun) in red.
func DeltaText(formatted string, delta float64) string {
	t := theme.Active
	switch {
	case delta < -0.005:
		return lipgloss.NewStyle().Foreground(t.Green).Render(formatted)
	case delta > 0.005:
		return lipgloss.NewStyle().Foreground(t.Red).Render(formatted)
	default:
		return lipgloss.NewStyle().Foreground(t.TextDim).Render(formatted)
	}
}

// SharePct renders a dim share percentage, e.g. "18.0%".
func SharePct(pct float64) string {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf("%5.1f%%", pct))
}
