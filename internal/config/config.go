// Package config loads and saves costshift configuration from the XDG
// config directory, and turns user overrides into validated registries and
// rule tables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"costshift/internal/model"
	"costshift/internal/registry"
	"costshift/internal/rules"
)

// Config holds all costshift configuration.
type Config struct {
	Project    ProjectConfig    `toml:"project"`
	Appearance AppearanceConfig `toml:"appearance"`
	Categories []CategoryConfig `toml:"category,omitempty"`
	Rules      []RuleConfig     `toml:"rule,omitempty"`
}

// ProjectConfig holds project-level parameters.
type ProjectConfig struct {
	TotalCostUSD float64 `toml:"total_cost_usd"`
	AreaSqFt     float64 `toml:"area_sqft"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// CategoryConfig is one user-defined budget category. When any [[category]]
// blocks are present they replace the built-in set entirely; baselines must
// still sum to 100.
type CategoryConfig struct {
	ID          string  `toml:"id"`
	Name        string  `toml:"name"`
	BasePercent float64 `toml:"base_percent"`
	Color       string  `toml:"color,omitempty"`
}

// RuleConfig is one user-defined trade-off rule. When any [[rule]] blocks
// are present they replace the built-in rule set entirely. Coefficients are
// expressed per 10 units of driver movement.
type RuleConfig struct {
	Driver      string  `toml:"driver"`
	Affected    string  `toml:"affected"`
	Coefficient float64 `toml:"coefficient"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Project: ProjectConfig{
			TotalCostUSD: 50_000_000,
			AreaSqFt:     250_000,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "costshift")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "costshift")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Registry builds the category registry: user-defined categories if any are
// configured, the built-in set otherwise. Invalid overrides fail here,
// before any command runs allocation math.
func Registry(cfg Config) (*registry.Registry, error) {
	if len(cfg.Categories) == 0 {
		return registry.Default(), nil
	}

	cats := make([]model.Category, len(cfg.Categories))
	for i, c := range cfg.Categories {
		cats[i] = model.Category{
			ID:          c.ID,
			Name:        c.Name,
			BasePercent: c.BasePercent,
			Color:       c.Color,
		}
	}
	reg, err := registry.NewRegistry(cats)
	if err != nil {
		return nil, fmt.Errorf("config categories: %w", err)
	}
	return reg, nil
}

// TradeRules builds the trade-off rule table: user-defined rules if any are
// configured, the built-in set otherwise.
func TradeRules(cfg Config, reg *registry.Registry) (rules.TradeRules, error) {
	var t rules.TradeRules
	if len(cfg.Rules) == 0 {
		t = rules.DefaultTradeRules
	} else {
		t = make(rules.TradeRules)
		for _, r := range cfg.Rules {
			t[r.Driver] = append(t[r.Driver], rules.TradeEffect{
				Affected:    r.Affected,
				Coefficient: r.Coefficient,
			})
		}
	}
	if err := t.Validate(reg); err != nil {
		return nil, fmt.Errorf("config rules: %w", err)
	}
	return t, nil
}
