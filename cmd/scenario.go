package cmd

import (
	"fmt"
	"sort"

	"costshift/internal/cli"
	"costshift/internal/model"
	"costshift/internal/store"

	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage saved scenarios",
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	RunE:  runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioDelete,
}

func init() {
	scenarioCmd.AddCommand(scenarioListCmd)
	scenarioCmd.AddCommand(scenarioShowCmd)
	scenarioCmd.AddCommand(scenarioDeleteCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func openStore() (*store.Store, error) {
	return store.Open(store.DefaultPath())
}

func runScenarioList(_ *cobra.Command, _ []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	metas, err := db.List()
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println("\n  No saved scenarios. Use `costshift shift --save <name>` to create one.")
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(metas))
	for _, m := range metas {
		rows = append(rows, []string{m.Name, m.Mode, cli.FormatMoneyCompact(m.TotalCost), m.SavedAt})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Saved Scenarios",
		Headers: []string{"Name", "Mode", "Total", "Saved"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runScenarioShow(_ *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	snap, mode, err := db.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIO %s  (%s)", args[0], mode)))
	fmt.Println()

	ids := make([]string, 0, len(snap.Allocations))
	for id := range snap.Allocations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([][]string, 0, len(ids)+2)
	for _, id := range ids {
		var current, change string
		if mode == model.ModeStrategy {
			// Strategy snapshots carry dollars per division.
			current = cli.FormatMoney(snap.Allocations[id])
			change = cli.FormatMoneyDelta(snap.Adjustments[id])
		} else {
			current = cli.FormatPercent(snap.Allocations[id])
			change = cli.FormatSignedPercent(snap.Adjustments[id])
		}
		rows = append(rows, []string{id, current, change})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", cli.FormatMoney(snap.TotalCost), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Value", "Change"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runScenarioDelete(_ *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Deleted scenario %q.\n", args[0])
	return nil
}
