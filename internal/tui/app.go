// Package tui provides the interactive Bubble Tea budget explorer.
package tui

import (
	"fmt"
	"strings"

	"costshift/internal/cli"
	"costshift/internal/config"
	"costshift/internal/engine"
	"costshift/internal/registry"
	"costshift/internal/rules"
	"costshift/internal/tui/components"
	"costshift/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabAllocations = iota
	tabStrategies
	tabBreakdown
	tabSettings
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5

	// Slider behavior for the allocations tab.
	sliderStep = 0.5
	sliderMin  = 0.0
	sliderMax  = 30.0
)

// App is the root Bubble Tea model.
type App struct {
	cfg     config.Config
	reg     *registry.Registry
	model   *engine.Model
	planner *engine.Planner

	// The last driver the user moved and its slider position. The model
	// rebuilds from baseline per driver change, so this is the one piece
	// of slider state the engine doesn't carry.
	lastDriver string
	lastValue  float64

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	errLine   string

	allocCursor int
	stratCursor int
	settings    settingsState
}

// NewApp builds the TUI app from config and resolved project parameters.
func NewApp(cfg config.Config, totalCost, areaSqFt float64) (App, error) {
	reg, err := config.Registry(cfg)
	if err != nil {
		return App{}, err
	}
	trades, err := config.TradeRules(cfg, reg)
	if err != nil {
		return App{}, err
	}
	m, err := engine.New(reg, trades, totalCost)
	if err != nil {
		return App{}, err
	}
	p, err := engine.NewPlanner(registry.DefaultCSI(), rules.DefaultStrategies,
		rules.DefaultStrategyEffects, rules.DefaultCombinationEffects, areaSqFt)
	if err != nil {
		return App{}, err
	}

	return App{
		cfg:     cfg,
		reg:     reg,
		model:   m,
		planner: p,
	}, nil
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Settings editing intercepts all keys
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		a.errLine = ""

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		switch a.activeTab {
		case tabAllocations:
			if model, handled := a.updateAllocationsKeys(key); handled {
				return model, nil
			}
		case tabStrategies:
			if model, handled := a.updateStrategiesKeys(key); handled {
				return model, nil
			}
		case tabSettings:
			if model, cmd, handled := a.updateSettingsKeys(key); handled {
				return model, cmd
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if r := []rune(key); len(r) == 1 {
				if idx := components.TabIdxByKey(r[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	return a, nil
}

func (a App) updateAllocationsKeys(key string) (tea.Model, bool) {
	cats := a.reg.Categories()

	switch key {
	case "j", "down":
		if a.allocCursor < len(cats)-1 {
			a.allocCursor++
		}
		return a, true
	case "k", "up":
		if a.allocCursor > 0 {
			a.allocCursor--
		}
		return a, true
	case "h", "-":
		return a.adjustSelected(-sliderStep), true
	case "l", "+", "=":
		return a.adjustSelected(sliderStep), true
	case "r":
		a.model.Reset()
		a.lastDriver = ""
		a.lastValue = 0
		return a, true
	}
	return a, false
}

// adjustSelected moves the selected category's slider by step. The engine
// applies single-driver semantics: moving a new driver supersedes the old
// one's adjustments.
func (a App) adjustSelected(step float64) tea.Model {
	cats := a.reg.Categories()
	if a.allocCursor >= len(cats) {
		return a
	}
	cat := cats[a.allocCursor]

	current := cat.BasePercent
	if a.lastDriver == cat.ID {
		current = a.lastValue
	}

	next := current + step
	if next < sliderMin {
		next = sliderMin
	}
	if next > sliderMax {
		next = sliderMax
	}

	if _, err := a.model.UpdateAllocation(cat.ID, next); err != nil {
		a.errLine = err.Error()
		return a
	}
	a.lastDriver = cat.ID
	a.lastValue = next
	return a
}

func (a App) updateStrategiesKeys(key string) (tea.Model, bool) {
	strategies := a.planner.Strategies()

	switch key {
	case "j", "down":
		if a.stratCursor < len(strategies)-1 {
			a.stratCursor++
		}
		return a, true
	case "k", "up":
		if a.stratCursor > 0 {
			a.stratCursor--
		}
		return a, true
	case " ", "enter":
		if a.stratCursor < len(strategies) {
			if _, err := a.planner.Toggle(strategies[a.stratCursor].ID); err != nil {
				a.errLine = err.Error()
			}
		}
		return a, true
	case "r":
		for _, s := range strategies {
			_ = a.planner.SetActive(s.ID, false)
		}
		return a, true
	}
	return a, false
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  costshift needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	hint := "[?]help  [q]uit"
	switch a.activeTab {
	case tabAllocations:
		hint = "[j/k]select  [h/l]adjust  [r]eset  [?]help  [q]uit"
	case tabStrategies:
		hint = "[j/k]select  [space]toggle  [r]eset  [?]help  [q]uit"
	case tabSettings:
		hint = "[j/k]select  [enter]edit  [?]help  [q]uit"
	}
	total := cli.FormatMoneyCompact(a.model.TotalCost())
	if a.activeTab == tabStrategies || a.activeTab == tabBreakdown {
		total = cli.FormatMoneyCompact(a.planner.TotalCost())
	}
	statusBar := components.RenderStatusBar(w, hint, total)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabAllocations:
		content = a.renderAllocationsTab(cw)
	case tabStrategies:
		content = a.renderStrategiesTab(cw)
	case tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	if a.errLine != "" {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		content += "\n " + errStyle.Render(a.errLine)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"a s b x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"h l", "Adjust selected allocation"},
		{"Space", "Toggle strategy"},
		{"r", "Reset current tab"},
		{"Enter", "Edit setting"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
