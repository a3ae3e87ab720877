// Package analyze implements the analyze command, which runs every
// aggregation over the validated transactions and logs the headline numbers.
package analyze

import (
	"github.com/farnaz-amriza/sales-analytics-system/cmd/common"
	"github.com/farnaz-amriza/sales-analytics-system/cmd/root"
	"github.com/farnaz-amriza/sales-analytics-system/internal/analytics"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cmd is the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze sales data and print summary statistics.",
	Long: `Analyze reads a pipe-delimited sales data file, validates the records and
computes revenue totals, region performance, product rankings, customer
behavior and daily trends.`,
	Run: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	opts, err := common.BuildFilterOptions(root.SharedFlags.Region, root.SharedFlags.MinAmount, root.SharedFlags.MaxAmount)
	if err != nil {
		log.Fatalf("Invalid filter flags: %v", err)
	}

	valid, _, err := common.LoadTransactions(root.SharedFlags.Input, opts, log)
	if err != nil {
		log.Fatalf("Error loading transactions: %v", err)
	}

	totalRevenue := analytics.TotalRevenue(valid)
	log.WithField("total_revenue", totalRevenue.StringFixed(2)).Info("Total revenue")

	for _, region := range analytics.RegionWiseSales(valid) {
		log.WithFields(logrus.Fields{
			"region":       region.Region,
			"total_sales":  region.TotalSales.StringFixed(2),
			"percentage":   region.Percentage.StringFixed(2),
			"transactions": region.TransactionCount,
		}).Info("Region performance")
	}

	for _, product := range analytics.TopSellingProducts(valid, root.Cfg.Analytics.TopN) {
		log.WithFields(logrus.Fields{
			"product":  product.ProductName,
			"quantity": product.TotalQuantity,
			"revenue":  product.TotalRevenue.StringFixed(2),
		}).Info("Top selling product")
	}

	for _, customer := range analytics.CustomerAnalysis(valid) {
		log.WithFields(logrus.Fields{
			"customer":        customer.CustomerID,
			"total_spent":     customer.TotalSpent.StringFixed(2),
			"purchases":       customer.PurchaseCount,
			"avg_order_value": customer.AvgOrderValue.StringFixed(2),
		}).Debug("Customer analysis")
	}

	peak := analytics.FindPeakSalesDay(valid)
	if peak.Date != "" {
		log.WithFields(logrus.Fields{
			"date":         peak.Date,
			"revenue":      peak.Revenue.StringFixed(2),
			"transactions": peak.TransactionCount,
		}).Info("Peak sales day")
	}

	low := analytics.LowPerformingProducts(valid, root.Cfg.Analytics.LowQuantityThreshold)
	log.WithField("count", len(low)).Info("Low performing products")

	log.Info("Analysis complete")
}
