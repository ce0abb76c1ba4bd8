package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"costshift/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	totalStr := strconv.FormatFloat(cfg.Project.TotalCostUSD, 'f', -1, 64)
	areaStr := strconv.FormatFloat(cfg.Project.AreaSqFt, 'f', -1, 64)
	theme := cfg.Appearance.Theme

	parsePositive := func(field string) func(string) error {
		return func(s string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return fmt.Errorf("%s must be a number", field)
			}
			if v <= 0 {
				return fmt.Errorf("%s must be positive", field)
			}
			return nil
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Total project cost (USD)").
				Description("Used to convert allocation percentages into dollars.").
				Value(&totalStr).
				Validate(parsePositive("total cost")),
			huh.NewInput().
				Title("Building area (square feet)").
				Description("Used to price CSI divisions in strategy mode.").
				Value(&areaStr).
				Validate(parsePositive("area")),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&theme),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Project.TotalCostUSD, _ = strconv.ParseFloat(strings.TrimSpace(totalStr), 64)
	cfg.Project.AreaSqFt, _ = strconv.ParseFloat(strings.TrimSpace(areaStr), 64)
	cfg.Appearance.Theme = theme

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `costshift setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
