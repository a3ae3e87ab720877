// Package report implements the report command, which runs the full
// pipeline and writes the formatted text report.
package report

import (
	"context"
	"time"

	"github.com/farnaz-amriza/sales-analytics-system/cmd/common"
	"github.com/farnaz-amriza/sales-analytics-system/cmd/root"
	"github.com/farnaz-amriza/sales-analytics-system/internal/catalog"
	"github.com/farnaz-amriza/sales-analytics-system/internal/enrichment"
	"github.com/farnaz-amriza/sales-analytics-system/internal/report"

	"github.com/spf13/cobra"
)

var enrichedOutput string

// Cmd is the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full pipeline and generate the sales report.",
	Long: `Report reads a pipe-delimited sales data file, validates the records,
enriches them against the product catalog and writes a formatted text report
covering revenue, region performance, rankings, daily trends and enrichment
results.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVar(&enrichedOutput, "enriched-output", "", "Also write the enriched dataset to this file")
}

func reportFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	opts, err := common.BuildFilterOptions(root.SharedFlags.Region, root.SharedFlags.MinAmount, root.SharedFlags.MaxAmount)
	if err != nil {
		log.Fatalf("Invalid filter flags: %v", err)
	}

	valid, _, err := common.LoadTransactions(root.SharedFlags.Input, opts, log)
	if err != nil {
		log.Fatalf("Error loading transactions: %v", err)
	}

	cache := catalog.NewCache(root.Cfg.Catalog.CacheFile)
	client := catalog.NewClient(root.Cfg.Catalog.URL, time.Duration(root.Cfg.Catalog.TimeoutSeconds)*time.Second, cache)

	entries := client.FetchOrCached(context.Background())
	mapping := catalog.BuildMapping(entries)
	enriched := enrichment.Enrich(valid, mapping)

	if enrichedOutput != "" {
		if err := enrichment.WriteEnrichedFile(enriched, enrichedOutput); err != nil {
			log.Fatalf("Error writing enriched data: %v", err)
		}
	}

	assembler := report.NewAssembler()
	assembler.TopN = root.Cfg.Analytics.TopN
	assembler.LowQuantityThreshold = root.Cfg.Analytics.LowQuantityThreshold
	salesReport := assembler.Assemble(valid, enriched)

	output := root.SharedFlags.Output
	if output == "" {
		output = root.Cfg.Output.ReportFile
	}

	renderer := report.NewRenderer()
	if err := renderer.RenderToFile(salesReport, output); err != nil {
		log.Fatalf("Error generating report: %v", err)
	}

	log.WithField("file", output).Info("Report generated")
}
