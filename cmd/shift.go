package cmd

import (
	"fmt"
	"strconv"

	"costshift/internal/cli"
	"costshift/internal/model"
	"costshift/internal/store"

	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift <category> <percent>",
	Short: "Set a category's allocation and show the trade-offs",
	Long: "Set one category to a new percentage of the total budget. Coupled " +
		"categories move per the trade-off rules, then everything renormalizes " +
		"so the budget still sums to 100%.",
	Args: cobra.ExactArgs(2),
	RunE: runShift,
}

func init() {
	shiftCmd.Flags().StringVar(&flagSave, "save", "", "Save the result as a named scenario")
	rootCmd.AddCommand(shiftCmd)
}

func runShift(_ *cobra.Command, args []string) error {
	newValue, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid percentage %q: %w", args[1], err)
	}

	m, reg, err := loadModel()
	if err != nil {
		return err
	}

	driver, err := reg.Lookup(args[0])
	if err != nil {
		return err
	}

	if _, err := m.UpdateAllocation(driver.ID, newValue); err != nil {
		return err
	}

	allocs := m.Allocations()
	adjs := m.Adjustments()
	amounts := m.DollarAmounts()
	deltas := m.DollarDeltas()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s → %s",
		driver.Name, cli.FormatPercent(driver.BasePercent), cli.FormatPercent(newValue))))
	fmt.Println()

	rows := make([][]string, 0, reg.Len()+2)
	for _, c := range reg.Categories() {
		rows = append(rows, []string{
			c.Name,
			cli.FormatPercent(c.BasePercent),
			cli.FormatPercent(allocs[c.ID]),
			cli.FormatSignedPercent(adjs[c.ID]),
			cli.FormatMoney(amounts[c.ID]),
			cli.FormatMoneyDelta(deltas[c.ID]),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "100.0%", "100.0%", "", cli.FormatMoney(m.TotalCost()), "$0"})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Adjusted Allocations",
		Headers: []string{"Category", "Base", "Now", "Shift", "Amount", "Change"},
		Rows:    rows,
	}))
	fmt.Println()

	if flagSave != "" {
		db, err := store.Open(store.DefaultPath())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := db.Save(flagSave, model.ModePercent, m.Snapshot()); err != nil {
			return fmt.Errorf("saving scenario: %w", err)
		}
		fmt.Printf("  Saved scenario %q.\n\n", flagSave)
	}

	return nil
}
