package models

import "github.com/shopspring/decimal"

// RegionStats summarizes sales for one region.
type RegionStats struct {
	Region           string
	TotalSales       decimal.Decimal
	TransactionCount int
	Percentage       decimal.Decimal // share of grand total, 2 decimals
}

// ProductStats summarizes quantity and revenue for one product name.
type ProductStats struct {
	ProductName   string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
}

// CustomerStats summarizes purchasing behavior for one customer.
type CustomerStats struct {
	CustomerID     string
	TotalSpent     decimal.Decimal
	PurchaseCount  int
	ProductsBought []string // distinct product names, sorted for determinism
	AvgOrderValue  decimal.Decimal
}

// DailyStats summarizes sales for one date.
type DailyStats struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
	UniqueCustomers  int
}

// PeakDay identifies the date with the highest revenue. The zero value
// (empty date, zero revenue and count) is the sentinel for "no data".
type PeakDay struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
}

// ValidationSummary reports the outcome of validating and filtering a
// parsed transaction batch.
type ValidationSummary struct {
	TotalInput       int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
}

// EnrichmentSummary reports how many transactions matched the catalog.
type EnrichmentSummary struct {
	Total             int
	Matched           int
	SuccessRate       decimal.Decimal // percentage, 2 decimals, 0 when Total is 0
	UnmatchedProducts []string        // product names with at least one unmatched row, sorted
}
