package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Project.TotalCostUSD != 50_000_000 {
		t.Errorf("default total cost = %v, want 50000000", cfg.Project.TotalCostUSD)
	}
	if cfg.Project.AreaSqFt != 250_000 {
		t.Errorf("default area = %v, want 250000", cfg.Project.AreaSqFt)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("default theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Project.TotalCostUSD != DefaultConfig().Project.TotalCostUSD {
		t.Errorf("missing config: total cost = %v, want default", cfg.Project.TotalCostUSD)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Project.TotalCostUSD = 75_000_000
	cfg.Appearance.Theme = "terminal"
	cfg.Rules = []RuleConfig{
		{Driver: "envelope", Affected: "mechanical", Coefficient: -1.2},
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Project.TotalCostUSD != 75_000_000 {
		t.Errorf("total cost = %v, want 75000000", got.Project.TotalCostUSD)
	}
	if got.Appearance.Theme != "terminal" {
		t.Errorf("theme = %q, want terminal", got.Appearance.Theme)
	}
	if len(got.Rules) != 1 || got.Rules[0].Coefficient != -1.2 {
		t.Errorf("rules = %+v, want the saved override", got.Rules)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "costshift", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte("[project]\ntotal_cost_usd = 90000000\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Project.TotalCostUSD != 90_000_000 {
		t.Errorf("total cost = %v, want 90000000", cfg.Project.TotalCostUSD)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q, want default flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestRegistryDefaultsWhenNoOverrides(t *testing.T) {
	reg, err := Registry(DefaultConfig())
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	if reg.Len() != 8 {
		t.Errorf("default registry has %d categories, want 8", reg.Len())
	}
}

func TestRegistryOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Categories = []CategoryConfig{
		{ID: "shell", Name: "Shell", BasePercent: 60},
		{ID: "fitout", Name: "Fit-out", BasePercent: 40},
	}

	reg, err := Registry(cfg)
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	if reg.Len() != 2 {
		t.Errorf("override registry has %d categories, want 2", reg.Len())
	}

	cfg.Categories[1].BasePercent = 45 // sum 105
	if _, err := Registry(cfg); err == nil {
		t.Fatal("Registry accepted categories that do not sum to 100")
	}
}

func TestTradeRulesValidation(t *testing.T) {
	reg, err := Registry(DefaultConfig())
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}

	cfg := DefaultConfig()
	trades, err := TradeRules(cfg, reg)
	if err != nil {
		t.Fatalf("TradeRules: %v", err)
	}
	if len(trades["envelope"]) != 2 {
		t.Errorf("default envelope rules = %d, want 2", len(trades["envelope"]))
	}

	cfg.Rules = []RuleConfig{
		{Driver: "envelope", Affected: "helipad", Coefficient: -0.5},
	}
	if _, err := TradeRules(cfg, reg); err == nil {
		t.Fatal("TradeRules accepted unknown affected category")
	}
}
