package cmd

import (
	"fmt"

	"costshift/internal/cli"
	"costshift/internal/model"
	"costshift/internal/rules"
	"costshift/internal/store"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [strategy...]",
	Short: "Apply design strategies to the division cost model",
	Long: "Apply one or more design strategies to the per-division cost model. " +
		"Each strategy scales division costs by its percentage effects; active " +
		"strategy pairs contribute combination effects on top.",
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&flagSave, "save", "", "Save the result as a named scenario")
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, args []string) error {
	p, err := loadPlanner()
	if err != nil {
		return err
	}
	for _, id := range args {
		if err := p.SetActive(id, true); err != nil {
			return err
		}
	}

	base := p.BaselineCosts()
	costs := p.Costs()
	deltas := p.Deltas()

	fmt.Println()
	title := "DIVISION COSTS  Baseline"
	if len(p.Active()) > 0 {
		title = fmt.Sprintf("DIVISION COSTS  %d strategies active", len(p.Active()))
	}
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := make([][]string, 0, 16)
	for _, div := range p.Divisions() {
		rows = append(rows, []string{
			div.Name,
			cli.FormatMoney(base[div.ID]),
			cli.FormatMoney(costs[div.ID]),
			cli.FormatMoneyDelta(deltas[div.ID]),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"TOTAL",
		cli.FormatMoney(p.BaselineTotal()),
		cli.FormatMoney(p.TotalCost()),
		cli.FormatMoneyDelta(p.TotalCost() - p.BaselineTotal()),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s gross", cli.FormatArea(p.AreaSqFt())),
		Headers: []string{"Division", "Baseline", "With Strategies", "Change"},
		Rows:    rows,
	}))

	combined := p.TotalCost() - p.BaselineTotal()
	if impacts := p.PerStrategy(); len(impacts) > 0 {
		impactRows := make([][]string, 0, len(impacts))
		for _, id := range p.Active() {
			s, _ := rules.StrategyByID(p.Strategies(), id)
			impactRows = append(impactRows, []string{s.Name, cli.FormatMoneyDelta(impacts[id])})
		}
		standalone := 0.0
		for _, v := range impacts {
			standalone += v
		}
		impactRows = append(impactRows, []string{"---"})
		impactRows = append(impactRows, []string{"Interaction", cli.FormatMoneyDelta(combined - standalone)})
		impactRows = append(impactRows, []string{"Combined", cli.FormatMoneyDelta(combined)})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Strategy Impact",
			Headers: []string{"Strategy", "Standalone"},
			Rows:    impactRows,
		}))

		fmt.Printf("  Net change vs baseline: %s\n", cli.RenderDelta(combined))
	}
	fmt.Println()

	if flagSave != "" {
		db, err := store.Open(store.DefaultPath())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := db.Save(flagSave, model.ModeStrategy, p.Snapshot()); err != nil {
			return fmt.Errorf("saving scenario: %w", err)
		}
		fmt.Printf("  Saved scenario %q.\n\n", flagSave)
	}

	return nil
}
