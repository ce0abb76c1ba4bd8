package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"costshift/internal/model"
	"costshift/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagExportOut      string
	flagExportScenario string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export allocations as CSV",
	Long: "Export the baseline budget, or a saved scenario, as CSV. Writes to " +
		"stdout unless --out is given.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")
	exportCmd.Flags().StringVarP(&flagExportScenario, "scenario", "s", "", "Export a saved scenario instead of the baseline")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	var snap model.Snapshot
	var names map[string]string // id -> display name, when known
	mode := model.ModePercent

	if flagExportScenario != "" {
		db, err := store.Open(store.DefaultPath())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		snap, mode, err = db.Load(flagExportScenario)
		if err != nil {
			return err
		}
	} else {
		m, reg, err := loadModel()
		if err != nil {
			return err
		}
		snap = m.Snapshot()
		names = make(map[string]string, reg.Len())
		for _, c := range reg.Categories() {
			names[c.ID] = c.Name
		}
	}

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"category", "name", "allocation", "adjustment", "dollar_amount", "dollar_delta"}); err != nil {
		return err
	}

	ids := make([]string, 0, len(snap.Allocations))
	for id := range snap.Allocations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		name := names[id]
		if name == "" {
			name = id
		}
		alloc := snap.Allocations[id]
		adj := snap.Adjustments[id]

		// Percent snapshots derive dollars from the total; strategy
		// snapshots already carry dollars per division.
		dollars, dollarDelta := alloc, adj
		if mode == model.ModePercent {
			dollars = snap.TotalCost * alloc / 100
			dollarDelta = snap.TotalCost * adj / 100
		}
		if err := w.Write([]string{
			id,
			name,
			strconv.FormatFloat(alloc, 'f', 4, 64),
			strconv.FormatFloat(adj, 'f', 4, 64),
			strconv.FormatFloat(dollars, 'f', 2, 64),
			strconv.FormatFloat(dollarDelta, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if flagExportOut != "" {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", flagExportOut)
	}
	return nil
}
