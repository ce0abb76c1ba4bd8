package cmd

import (
	"fmt"

	"costshift/internal/cli"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Baseline budget breakdown by category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	m, reg, err := loadModel()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET BREAKDOWN  %s", cli.FormatMoneyCompact(m.TotalCost()))))
	fmt.Println()

	amounts := m.DollarAmounts()
	maxPct := 0.0
	for _, c := range reg.Categories() {
		if c.BasePercent > maxPct {
			maxPct = c.BasePercent
		}
	}

	rows := make([][]string, 0, reg.Len()+2)
	for _, c := range reg.Categories() {
		rows = append(rows, []string{
			c.Name,
			cli.FormatPercent(c.BasePercent),
			cli.FormatMoney(amounts[c.ID]),
			cli.RenderHorizontalBar(c.BasePercent, maxPct, 24),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "100.0%", cli.FormatMoney(m.TotalCost()), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Baseline Allocations",
		Headers: []string{"Category", "Share", "Amount", ""},
		Rows:    rows,
	}))
	fmt.Println("  Run `costshift shift <category> <percent>` to explore trade-offs.")
	fmt.Println()

	return nil
}
