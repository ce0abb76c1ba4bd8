package cmd

import (
	"os"

	"costshift/internal/config"
	"costshift/internal/engine"
	"costshift/internal/registry"
	"costshift/internal/rules"

	"github.com/spf13/cobra"
)

var (
	flagTotalCost float64
	flagAreaSqFt  float64
	flagSave      string
)

var rootCmd = &cobra.Command{
	Use:   "costshift",
	Short: "Construction budget trade-off explorer",
	Long:  "Explore construction budget allocations: shift category percentages, apply design strategies, and see the trade-offs ripple through the budget.",
	RunE:  runCategories,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64VarP(&flagTotalCost, "total", "t", 0, "Total project cost in USD (overrides config)")
	rootCmd.PersistentFlags().Float64VarP(&flagAreaSqFt, "area", "a", 0, "Building area in square feet (overrides config)")
}

// projectParams resolves total cost and area from flags over config.
func projectParams(cfg config.Config) (totalCost, areaSqFt float64) {
	totalCost = cfg.Project.TotalCostUSD
	if flagTotalCost > 0 {
		totalCost = flagTotalCost
	}
	areaSqFt = cfg.Project.AreaSqFt
	if flagAreaSqFt > 0 {
		areaSqFt = flagAreaSqFt
	}
	return totalCost, areaSqFt
}

// loadModel is the shared setup path for percent-mode commands: config,
// category registry, trade rules, engine.
func loadModel() (*engine.Model, *registry.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	reg, err := config.Registry(cfg)
	if err != nil {
		return nil, nil, err
	}
	trades, err := config.TradeRules(cfg, reg)
	if err != nil {
		return nil, nil, err
	}
	totalCost, _ := projectParams(cfg)
	m, err := engine.New(reg, trades, totalCost)
	if err != nil {
		return nil, nil, err
	}
	return m, reg, nil
}

// loadPlanner is the shared setup path for strategy-mode commands.
func loadPlanner() (*engine.Planner, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	_, areaSqFt := projectParams(cfg)
	return engine.NewPlanner(registry.DefaultCSI(), rules.DefaultStrategies,
		rules.DefaultStrategyEffects, rules.DefaultCombinationEffects, areaSqFt)
}
