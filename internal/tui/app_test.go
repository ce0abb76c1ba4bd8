package tui

import (
	"math"
	"testing"

	"costshift/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	app, err := NewApp(config.DefaultConfig(), 50_000_000, 250_000)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	app.width = 120
	app.height = 40
	return app
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, app App, msg tea.Msg) App {
	t.Helper()
	m, _ := app.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next
}

func TestAdjustAllocationKeepsTotal(t *testing.T) {
	app := newTestApp(t)

	// Bump the first category up twice.
	app = update(t, app, keyMsg("l"))
	app = update(t, app, keyMsg("l"))

	total := 0.0
	for _, v := range app.model.Allocations() {
		total += v
	}
	if math.Abs(total-100) > 1e-6 {
		t.Errorf("total = %v, want 100", total)
	}
	if app.lastDriver == "" {
		t.Error("lastDriver not recorded after adjustment")
	}
}

func TestAdjustClampsAtSliderMax(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 100; i++ {
		app = update(t, app, keyMsg("l"))
	}
	if app.lastValue != sliderMax {
		t.Errorf("lastValue = %v, want clamped at %v", app.lastValue, sliderMax)
	}

	for i := 0; i < 200; i++ {
		app = update(t, app, keyMsg("h"))
	}
	if app.lastValue != sliderMin {
		t.Errorf("lastValue = %v, want clamped at %v", app.lastValue, sliderMin)
	}
}

func TestResetRestoresBaseline(t *testing.T) {
	app := newTestApp(t)

	app = update(t, app, keyMsg("j"))
	app = update(t, app, keyMsg("l"))
	app = update(t, app, keyMsg("r"))

	for id, adj := range app.model.Adjustments() {
		if adj != 0 {
			t.Errorf("after reset, adjustment[%s] = %v, want 0", id, adj)
		}
	}
	if app.lastDriver != "" {
		t.Error("lastDriver not cleared on reset")
	}
}

func TestStrategyToggle(t *testing.T) {
	app := newTestApp(t)
	app.activeTab = tabStrategies

	app = update(t, app, keyMsg(" "))
	if got := len(app.planner.Active()); got != 1 {
		t.Fatalf("active strategies = %d, want 1", got)
	}

	app = update(t, app, keyMsg(" "))
	if got := len(app.planner.Active()); got != 0 {
		t.Fatalf("active strategies after re-toggle = %d, want 0", got)
	}
}

func TestTabNavigation(t *testing.T) {
	app := newTestApp(t)

	app = update(t, app, keyMsg("b"))
	if app.activeTab != tabBreakdown {
		t.Errorf("activeTab = %d, want breakdown", app.activeTab)
	}

	app = update(t, app, tea.KeyMsg{Type: tea.KeyRight})
	if app.activeTab != tabSettings {
		t.Errorf("activeTab = %d, want settings", app.activeTab)
	}

	app = update(t, app, tea.KeyMsg{Type: tea.KeyLeft})
	if app.activeTab != tabBreakdown {
		t.Errorf("activeTab = %d, want breakdown again", app.activeTab)
	}
}

func TestViewRendersAllTabs(t *testing.T) {
	app := newTestApp(t)
	app = update(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})

	for tab := 0; tab < 4; tab++ {
		app.activeTab = tab
		if v := app.View(); v == "" {
			t.Errorf("tab %d rendered empty view", tab)
		}
	}

	app.width = 40
	if v := app.View(); v == "" {
		t.Error("narrow terminal should still render a message")
	}
}
