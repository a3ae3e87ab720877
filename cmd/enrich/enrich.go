// Package enrich implements the enrich command, which joins validated
// transactions against the external product catalog and saves the enriched
// dataset.
package enrich

import (
	"context"
	"time"

	"github.com/farnaz-amriza/sales-analytics-system/cmd/common"
	"github.com/farnaz-amriza/sales-analytics-system/cmd/root"
	"github.com/farnaz-amriza/sales-analytics-system/internal/catalog"
	"github.com/farnaz-amriza/sales-analytics-system/internal/enrichment"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cmd is the enrich command.
var Cmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich sales data with product catalog attributes.",
	Long: `Enrich reads a pipe-delimited sales data file, validates the records,
fetches the product catalog and writes an enriched dataset with the catalog
category, brand and rating joined onto each transaction.`,
	Run: enrichFunc,
}

func enrichFunc(cmd *cobra.Command, args []string) {
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
	summary := enrichment.Summarize(enriched)
	log.WithFields(logrus.Fields{
		"matched":      summary.Matched,
		"total":        summary.Total,
		"success_rate": summary.SuccessRate.StringFixed(2),
	}).Info("Enrichment summary")

	output := root.SharedFlags.Output
	if output == "" {
		output = root.Cfg.Output.EnrichedFile
	}

	if err := enrichment.WriteEnrichedFile(enriched, output); err != nil {
		log.Fatalf("Error writing enriched data: %v", err)
	}

	log.WithField("file", output).Info("Enriched data saved")
}
