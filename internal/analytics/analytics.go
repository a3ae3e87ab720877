// Package analytics computes the derived sales views: revenue totals,
// region/product/customer/date aggregations, rankings, the peak sales day
// and the low performing products.
//
// Every function reads its input without mutating it and returns a freshly
// built result, so calls are independent and safe to invoke in any order.
// Grouping preserves encounter order and rankings use stable sorts, so
// repeated runs on identical input produce identical output ordering.
package analytics

import (
	"sort"

	"github.com/farnaz-amriza/sales-analytics-system/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the default number of entries in the top products ranking.
const DefaultTopN = 5

// DefaultLowQuantityThreshold is the default cutoff below which a product
// counts as low performing.
const DefaultLowQuantityThreshold = 10

var oneHundred = decimal.NewFromInt(100)

// TotalRevenue sums the amount of every transaction. An empty input yields
// zero.
func TotalRevenue(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		total = total.Add(transactions[i].Amount())
	}
	return total
}

// RegionWiseSales groups transactions by region and returns per-region
// totals, counts and percentage share of the grand total (2 decimals),
// ordered by total sales descending. Regions with equal totals keep their
// encounter order. When the grand total is zero every percentage is zero.
func RegionWiseSales(transactions []models.Transaction) []models.RegionStats {
	index := make(map[string]int)
	stats := make([]models.RegionStats, 0)
	grandTotal := decimal.Zero

	for i := range transactions {
		amount := transactions[i].Amount()
		grandTotal = grandTotal.Add(amount)

		region := transactions[i].Region
		pos, ok := index[region]
		if !ok {
			pos = len(stats)
			index[region] = pos
			stats = append(stats, models.RegionStats{Region: region})
		}
		stats[pos].TotalSales = stats[pos].TotalSales.Add(amount)
		stats[pos].TransactionCount++
	}

	for i := range stats {
		if grandTotal.IsZero() {
			stats[i].Percentage = decimal.Zero
			continue
		}
		stats[i].Percentage = stats[i].TotalSales.Div(grandTotal).Mul(oneHundred).Round(2)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales.GreaterThan(stats[j].TotalSales)
	})

	return stats
}

// productStats aggregates quantity and revenue per product name, preserving
// encounter order. Shared by the top and low performer rankings.
func productStats(transactions []models.Transaction) []models.ProductStats {
	index := make(map[string]int)
	stats := make([]models.ProductStats, 0)

	for i := range transactions {
		name := transactions[i].ProductName
		pos, ok := index[name]
		if !ok {
			pos = len(stats)
			index[name] = pos
			stats = append(stats, models.ProductStats{ProductName: name})
		}
		stats[pos].TotalQuantity += transactions[i].Quantity
		stats[pos].TotalRevenue = stats[pos].TotalRevenue.Add(transactions[i].Amount())
	}

	return stats
}

// TopSellingProducts returns at most n products ordered by total quantity
// sold descending. Products with equal quantities keep their encounter order.
func TopSellingProducts(transactions []models.Transaction, n int) []models.ProductStats {
	stats := productStats(transactions)

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalQuantity > stats[j].TotalQuantity
	})

	if n >= 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// LowPerformingProducts returns the products whose total quantity is
// strictly below threshold, ordered by quantity ascending with stable ties.
// Revenue is rounded to 2 decimals at this reporting boundary.
func LowPerformingProducts(transactions []models.Transaction, threshold int) []models.ProductStats {
	stats := productStats(transactions)

	low := make([]models.ProductStats, 0)
	for _, s := range stats {
		if s.TotalQuantity < threshold {
			s.TotalRevenue = s.TotalRevenue.Round(2)
			low = append(low, s)
		}
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].TotalQuantity < low[j].TotalQuantity
	})

	return low
}

// CustomerAnalysis groups transactions by customer and returns spend,
// purchase count, the distinct products bought and the average order value
// (2 decimals), ordered by total spent descending with stable ties.
func CustomerAnalysis(transactions []models.Transaction) []models.CustomerStats {
	index := make(map[string]int)
	stats := make([]models.CustomerStats, 0)
	products := make([]map[string]struct{}, 0)

	for i := range transactions {
		customer := transactions[i].CustomerID
		pos, ok := index[customer]
		if !ok {
			pos = len(stats)
			index[customer] = pos
			stats = append(stats, models.CustomerStats{CustomerID: customer})
			products = append(products, make(map[string]struct{}))
		}
		stats[pos].TotalSpent = stats[pos].TotalSpent.Add(transactions[i].Amount())
		stats[pos].PurchaseCount++
		products[pos][transactions[i].ProductName] = struct{}{}
	}

	for i := range stats {
		// PurchaseCount is at least 1 for every grouped key.
		count := decimal.NewFromInt(int64(stats[i].PurchaseCount))
		stats[i].AvgOrderValue = stats[i].TotalSpent.Div(count).Round(2)

		names := make([]string, 0, len(products[i]))
		for name := range products[i] {
			names = append(names, name)
		}
		sort.Strings(names)
		stats[i].ProductsBought = names
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpent.GreaterThan(stats[j].TotalSpent)
	})

	return stats
}

// DailySalesTrend groups transactions by date and returns revenue, count and
// distinct customer count per day, ordered by date ascending. ISO dates sort
// chronologically as plain strings.
func DailySalesTrend(transactions []models.Transaction) []models.DailyStats {
	index := make(map[string]int)
	stats := make([]models.DailyStats, 0)
	customers := make([]map[string]struct{}, 0)

	for i := range transactions {
		date := transactions[i].Date
		pos, ok := index[date]
		if !ok {
			pos = len(stats)
			index[date] = pos
			stats = append(stats, models.DailyStats{Date: date})
			customers = append(customers, make(map[string]struct{}))
		}
		stats[pos].Revenue = stats[pos].Revenue.Add(transactions[i].Amount())
		stats[pos].TransactionCount++
		customers[pos][transactions[i].CustomerID] = struct{}{}
	}

	for i := range stats {
		stats[i].UniqueCustomers = len(customers[i])
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})

	return stats
}

// FindPeakSalesDay returns the date with the strictly highest revenue.
// Iteration runs over the ascending daily trend with a strict comparison,
// so the earliest date wins among equal maxima. An empty input yields the
// zero-valued sentinel.
func FindPeakSalesDay(transactions []models.Transaction) models.PeakDay {
	daily := DailySalesTrend(transactions)

	peak := models.PeakDay{Revenue: decimal.Zero}
	maxRevenue := decimal.Zero
	for _, day := range daily {
		if day.Revenue.GreaterThan(maxRevenue) {
			maxRevenue = day.Revenue
			peak.Date = day.Date
			peak.Revenue = day.Revenue.Round(2)
			peak.TransactionCount = day.TransactionCount
		}
	}

	return peak
}
