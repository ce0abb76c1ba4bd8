package cmd

import (
	"fmt"

	"costshift/internal/cli"
	"costshift/internal/registry"
	"costshift/internal/rules"

	"github.com/spf13/cobra"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available design strategies",
	RunE:  runStrategies,
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

func runStrategies(_ *cobra.Command, _ []string) error {
	divs := registry.DefaultCSI()

	fmt.Println()
	fmt.Println(cli.RenderTitle("DESIGN STRATEGIES"))
	fmt.Println()

	rows := make([][]string, 0, len(rules.DefaultStrategies))
	for _, s := range rules.DefaultStrategies {
		rows = append(rows, []string{s.ID, s.Name, s.Description})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Catalog",
		Headers: []string{"ID", "Strategy", "Description"},
		Rows:    rows,
	}))

	for _, s := range rules.DefaultStrategies {
		effRows := make([][]string, 0, len(rules.DefaultStrategyEffects[s.ID]))
		for _, e := range rules.DefaultStrategyEffects[s.ID] {
			div, err := divs.Lookup(e.Division)
			if err != nil {
				return err
			}
			effRows = append(effRows, []string{div.Name, cli.FormatSignedPercent(e.Percent)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   s.Name,
			Headers: []string{"Division", "Effect"},
			Rows:    effRows,
		}))
	}

	fmt.Println("  Effects combine multiplicatively; pairs of strategies can add combination effects.")
	fmt.Println("  Run `costshift plan <id>...` to apply strategies.")
	fmt.Println()

	return nil
}
