package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/farnaz-amriza/sales-analytics-system/internal/logging"

	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const lineWidth = 45

// Renderer writes a SalesReport as a formatted text document with a fixed
// section ordering.
type Renderer struct {
	now func() time.Time
}

// NewRenderer creates a Renderer using the wall clock for the report
// timestamp.
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// Render writes the report to w.
func (r *Renderer) Render(report *SalesReport, w io.Writer) error {
	var b strings.Builder

	rule := strings.Repeat("=", lineWidth)
	sep := strings.Repeat("-", lineWidth)

	// Header
	b.WriteString(rule + "\n")
	b.WriteString("          SALES ANALYTICS REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", r.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Records Processed: %d\n", report.Overall.TotalTransactions)
	b.WriteString(rule + "\n\n")

	// Overall summary
	b.WriteString("OVERALL SUMMARY\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "Total Revenue:        %s\n", report.Overall.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "Total Transactions:   %d\n", report.Overall.TotalTransactions)
	fmt.Fprintf(&b, "Average Order Value:  %s\n", report.Overall.AvgOrderValue.StringFixed(2))
	fmt.Fprintf(&b, "Date Range:           %s\n\n", report.Overall.DateRange)

	// Region performance
	b.WriteString("REGION-WISE PERFORMANCE\n")
	b.WriteString(sep + "\n")
	b.WriteString("Region     Sales        % of Total   Transactions\n")
	for _, reg := range report.Regions {
		fmt.Fprintf(&b, "%-10s %12s   %6s%%        %d\n",
			reg.Region, reg.TotalSales.StringFixed(2), reg.Percentage.StringFixed(2), reg.TransactionCount)
	}
	b.WriteString("\n")

	// Top products
	fmt.Fprintf(&b, "TOP %d PRODUCTS\n", len(report.TopProducts))
	b.WriteString(sep + "\n")
	b.WriteString("Rank  Product        Qty   Revenue\n")
	for i, p := range report.TopProducts {
		fmt.Fprintf(&b, "%-5d %-14s %-5d %s\n",
			i+1, p.ProductName, p.TotalQuantity, p.TotalRevenue.StringFixed(2))
	}
	b.WriteString("\n")

	// Top customers
	fmt.Fprintf(&b, "TOP %d CUSTOMERS\n", len(report.TopCustomers))
	b.WriteString(sep + "\n")
	b.WriteString("Rank  Customer   Total Spent   Orders\n")
	for i, c := range report.TopCustomers {
		fmt.Fprintf(&b, "%-5d %-9s %12s     %d\n",
			i+1, c.CustomerID, c.TotalSpent.StringFixed(2), c.PurchaseCount)
	}
	b.WriteString("\n")

	// Daily trend
	b.WriteString("DAILY SALES TREND\n")
	b.WriteString(sep + "\n")
	b.WriteString("Date        Revenue     Transactions  Customers\n")
	for _, d := range report.Daily {
		fmt.Fprintf(&b, "%s  %10s     %-12d %d\n",
			d.Date, d.Revenue.StringFixed(2), d.TransactionCount, d.UniqueCustomers)
	}
	b.WriteString("\n")

	// Product performance analysis
	b.WriteString("PRODUCT PERFORMANCE ANALYSIS\n")
	b.WriteString(sep + "\n")
	if report.BestDay.Date != "" {
		fmt.Fprintf(&b, "Best Selling Day: %s (%s)\n\n", report.BestDay.Date, report.BestDay.Revenue.StringFixed(2))
	} else {
		b.WriteString("Best Selling Day: N/A\n\n")
	}

	b.WriteString("Low Performing Products:\n")
	if len(report.LowPerformers) > 0 {
		for _, p := range report.LowPerformers {
			fmt.Fprintf(&b, " - %s: Qty %d, Revenue %s\n", p.ProductName, p.TotalQuantity, p.TotalRevenue.StringFixed(2))
		}
	} else {
		b.WriteString(" - None\n")
	}
	b.WriteString("\n")

	b.WriteString("Average Transaction Value per Region:\n")
	for _, avg := range report.RegionAverages {
		fmt.Fprintf(&b, " - %s: %s\n", avg.Region, avg.Average.StringFixed(2))
	}
	b.WriteString("\n")

	// Enrichment summary
	b.WriteString("API ENRICHMENT SUMMARY\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "Products Enriched: %d\n", report.Enrichment.Matched)
	fmt.Fprintf(&b, "Success Rate: %s%%\n", report.Enrichment.SuccessRate.StringFixed(2))
	b.WriteString("Not Enriched Products:\n")
	if len(report.Enrichment.UnmatchedProducts) > 0 {
		for _, p := range report.Enrichment.UnmatchedProducts {
			fmt.Fprintf(&b, " - %s\n", p)
		}
	} else {
		b.WriteString(" - None\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderToFile writes the report to the given path, creating the parent
// directory when needed.
func (r *Renderer) RenderToFile(report *SalesReport, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		log.WithError(err).Error("Failed to create report directory")
		return fmt.Errorf("error creating report directory: %w", err)
	}

	file, err := os.Create(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to create report file")
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := r.Render(report, file); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	log.WithField("file", path).Info("Sales report generated")
	return nil
}
