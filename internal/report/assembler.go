// Package report assembles the analytical views into report tables and
// renders them as a formatted text report.
package report

import (
	"github.com/farnaz-amriza/sales-analytics-system/internal/analytics"
	"github.com/farnaz-amriza/sales-analytics-system/internal/enrichment"
	"github.com/farnaz-amriza/sales-analytics-system/internal/models"

	"github.com/shopspring/decimal"
)

// OverallSummary holds the headline numbers of a report.
type OverallSummary struct {
	TotalRevenue      decimal.Decimal
	TotalTransactions int
	AvgOrderValue     decimal.Decimal
	DateRange         string // "first to last", "N/A" when empty
}

// RegionAverage is the average transaction value for one region.
type RegionAverage struct {
	Region  string
	Average decimal.Decimal
}

// SalesReport is the full set of report tables. It is pure data; rendering
// to text is the renderer's job.
type SalesReport struct {
	Overall        OverallSummary
	Regions        []models.RegionStats
	TopProducts    []models.ProductStats
	TopCustomers   []models.CustomerStats
	Daily          []models.DailyStats
	BestDay        models.PeakDay
	LowPerformers  []models.ProductStats
	RegionAverages []RegionAverage
	Enrichment     models.EnrichmentSummary
}

// Assembler builds SalesReport tables from validated and enriched
// transactions.
type Assembler struct {
	TopN                 int
	LowQuantityThreshold int
}

// NewAssembler creates an Assembler with the default rankings sizes.
func NewAssembler() *Assembler {
	return &Assembler{
		TopN:                 analytics.DefaultTopN,
		LowQuantityThreshold: analytics.DefaultLowQuantityThreshold,
	}
}

// Assemble computes every report table from scratch. The inputs are only
// read; callers own the returned report.
func (a *Assembler) Assemble(valid []models.Transaction, enriched []models.EnrichedTransaction) *SalesReport {
	totalRevenue := analytics.TotalRevenue(valid)

	overall := OverallSummary{
		TotalRevenue:      totalRevenue,
		TotalTransactions: len(valid),
		AvgOrderValue:     decimal.Zero,
		DateRange:         "N/A",
	}
	if len(valid) > 0 {
		overall.AvgOrderValue = totalRevenue.Div(decimal.NewFromInt(int64(len(valid)))).Round(2)
	}

	daily := analytics.DailySalesTrend(valid)
	if len(daily) > 0 {
		overall.DateRange = daily[0].Date + " to " + daily[len(daily)-1].Date
	}

	customers := analytics.CustomerAnalysis(valid)
	if len(customers) > a.TopN {
		customers = customers[:a.TopN]
	}

	regions := analytics.RegionWiseSales(valid)
	averages := make([]RegionAverage, 0, len(regions))
	for _, r := range regions {
		avg := decimal.Zero
		if r.TransactionCount > 0 {
			avg = r.TotalSales.Div(decimal.NewFromInt(int64(r.TransactionCount))).Round(2)
		}
		averages = append(averages, RegionAverage{Region: r.Region, Average: avg})
	}

	return &SalesReport{
		Overall:        overall,
		Regions:        regions,
		TopProducts:    analytics.TopSellingProducts(valid, a.TopN),
		TopCustomers:   customers,
		Daily:          daily,
		BestDay:        analytics.FindPeakSalesDay(valid),
		LowPerformers:  analytics.LowPerformingProducts(valid, a.LowQuantityThreshold),
		RegionAverages: averages,
		Enrichment:     enrichment.Summarize(enriched),
	}
}
