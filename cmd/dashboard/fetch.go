package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go-freight-dashboard/internal/config"
	"go-freight-dashboard/internal/engine"
	"go-freight-dashboard/internal/loader"
	"go-freight-dashboard/internal/model"
	"go-freight-dashboard/internal/sheets"
	"go-freight-dashboard/pkg/utils"
)

var fetchAgg string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the range once and print the Month aggregation",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchAgg, "agg", "average", "aggregation method: average, sum, or max")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	method, err := model.ParseAggMethod(fetchAgg)
	if err != nil {
		return err
	}

	cred, err := sheets.LoadCredential(cfg.CredentialsFile)
	if err != nil {
		return err
	}
	client := sheets.NewClient(cred, cfg.APIBaseURL, cfg.HTTPTimeout)

	values, err := client.Values(cmd.Context(), sheets.Locator{SheetID: cfg.SheetID, Range: cfg.Range})
	if err != nil {
		return err
	}
	table, err := loader.BuildTable(values)
	if err != nil {
		return err
	}
	agg := engine.Aggregate(table, method)

	fmt.Printf("📥 %d rows loaded from %s %s\n", table.Len(), cfg.SheetID, cfg.Range)
	fmt.Printf("📊 %s by %s:\n", method.Label(), model.ColMonth)
	fmt.Println(strings.Join(agg.Columns, "\t"))
	for _, row := range agg.Rows {
		cells := make([]string, 0, len(agg.Columns))
		cells = append(cells, row.Cells[model.ColMonth])
		for _, col := range agg.Columns[1:] {
			if v, ok := row.Measure(col); ok {
				cells = append(cells, utils.FormatNumber(v))
			} else {
				cells = append(cells, "-")
			}
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
	return nil
}
