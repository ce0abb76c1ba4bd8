package tui

import (
	"fmt"
	"strconv"
	"strings"

	"costshift/internal/cli"
	"costshift/internal/config"
	"costshift/internal/tui/components"
	"costshift/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingTotalCost = iota
	settingArea
	settingTheme
	settingsFieldCount
)

type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
}

func newSettingsInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	ti.CharLimit = 15
	ti.Width = 20
	ti.Prompt = "> "
	return ti
}

// updateSettingsKeys handles navigation keys on the settings tab.
func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true
	case "enter":
		a.settings.saved = false
		switch a.settings.cursor {
		case settingTheme:
			// Cycle instead of typing
			a.cfg.Appearance.Theme = theme.Next(a.cfg.Appearance.Theme)
			theme.SetActive(a.cfg.Appearance.Theme)
			a.persistConfig()
			return a, nil, true
		case settingTotalCost:
			a.settings.editing = true
			a.settings.input = newSettingsInput(strconv.FormatFloat(a.model.TotalCost(), 'f', 0, 64))
			a.settings.input.Focus()
			return a, a.settings.input.Cursor.BlinkCmd(), true
		case settingArea:
			a.settings.editing = true
			a.settings.input = newSettingsInput(strconv.FormatFloat(a.planner.AreaSqFt(), 'f', 0, 64))
			a.settings.input.Focus()
			return a, a.settings.input.Cursor.BlinkCmd(), true
		}
	}
	return a, nil, false
}

// updateSettingsInput handles keys while a settings field is being edited.
func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.settings.editing = false
		return a, nil

	case "enter":
		v, err := strconv.ParseFloat(strings.TrimSpace(a.settings.input.Value()), 64)
		if err != nil || v <= 0 {
			a.errLine = "enter a positive number"
			return a, nil
		}
		switch a.settings.cursor {
		case settingTotalCost:
			a.model.SetTotalCost(v)
			a.cfg.Project.TotalCostUSD = v
		case settingArea:
			a.planner.SetAreaSqFt(v)
			a.cfg.Project.AreaSqFt = v
		}
		a.settings.editing = false
		a.persistConfig()
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// persistConfig saves the config best-effort; the in-memory state is already
// updated either way.
func (a *App) persistConfig() {
	if err := config.Save(a.cfg); err != nil {
		a.errLine = fmt.Sprintf("config not saved: %v", err)
		return
	}
	a.settings.saved = true
}

// renderSettingsTab renders the editable project settings.
func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	fields := []struct{ label, value string }{
		{"Total project cost", cli.FormatMoney(a.model.TotalCost())},
		{"Building area", cli.FormatArea(a.planner.AreaSqFt())},
		{"Theme", theme.Active.Name},
	}

	var b strings.Builder
	for i, f := range fields {
		cursor := "  "
		label := labelStyle.Render(fmt.Sprintf("%-22s", f.label))
		value := valueStyle.Render(f.value)
		if i == a.settings.cursor {
			cursor = cursorStyle.Render("❯ ")
			label = selStyle.Render(fmt.Sprintf("%-22s", f.label))
		}
		if a.settings.editing && i == a.settings.cursor {
			value = a.settings.input.View()
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, label, value))
	}

	b.WriteString("\n")
	if a.settings.editing {
		b.WriteString(dimStyle.Render("enter to apply, esc to cancel"))
	} else if a.settings.saved {
		b.WriteString(dimStyle.Render("saved to " + config.ConfigPath()))
	} else {
		b.WriteString(dimStyle.Render("enter edits a field; theme cycles on enter"))
	}

	return components.ContentCard("Settings", b.String(), cw)
}
