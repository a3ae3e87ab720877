package analytics

import (
	"testing"

	"github.com/farnaz-amriza/sales-analytics-system/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id, date, productName string, quantity int, unitPrice, customer, region string) models.Transaction {
	return models.Transaction{
		TransactionID: id,
		Date:          date,
		ProductID:     "P101",
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     decimal.RequireFromString(unitPrice),
		CustomerID:    customer,
		Region:        region,
	}
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		tx("T001", "2024-12-01", "Laptop", 2, "45000", "C001", "North"),
		tx("T002", "2024-12-01", "Mouse", 5, "500", "C002", "South"),
		tx("T003", "2024-12-02", "Laptop", 1, "45000", "C001", "North"),
		tx("T004", "2024-12-02", "Keyboard", 3, "1500", "C003", "East"),
		tx("T005", "2024-12-03", "Mouse", 2, "500", "C002", "South"),
	}
}

func TestTotalRevenue(t *testing.T) {
	total := TotalRevenue(sampleTransactions())

	// 90000 + 2500 + 45000 + 4500 + 1000
	assert.True(t, total.Equal(decimal.NewFromInt(143000)), "got %s", total)
}

func TestTotalRevenueEmptyInput(t *testing.T) {
	assert.True(t, TotalRevenue(nil).IsZero())
}

func TestTotalRevenueSpecExample(t *testing.T) {
	txns := []models.Transaction{
		tx("T001", "2024-12-01", "Laptop", 2, "45000", "C001", "North"),
	}
	assert.True(t, TotalRevenue(txns).Equal(decimal.NewFromInt(90000)))
}

func TestRegionWiseSalesTotalsMatchRevenue(t *testing.T) {
	txns := sampleTransactions()
	regions := RegionWiseSales(txns)

	sum := decimal.Zero
	for _, r := range regions {
		sum = sum.Add(r.TotalSales)
	}
	assert.True(t, sum.Equal(TotalRevenue(txns)), "region totals must sum to total revenue")
}

func TestRegionWiseSalesPercentagesSumToHundred(t *testing.T) {
	regions := RegionWiseSales(sampleTransactions())

	sum := decimal.Zero
	for _, r := range regions {
		sum = sum.Add(r.Percentage)
	}
	diff := sum.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.05)), "percentages sum to %s", sum)
}

func TestRegionWiseSalesOrderedDescending(t *testing.T) {
	regions := RegionWiseSales(sampleTransactions())

	require.Len(t, regions, 3)
	assert.Equal(t, "North", regions[0].Region)
	for i := 1; i < len(regions); i++ {
		assert.False(t, regions[i].TotalSales.GreaterThan(regions[i-1].TotalSales))
	}
}

func TestRegionWiseSalesTiesKeepEncounterOrder(t *testing.T) {
	txns := []models.Transaction{
		tx("T001", "2024-12-01", "Mouse", 1, "100", "C001", "West"),
		tx("T002", "2024-12-01", "Mouse", 1, "100", "C002", "East"),
	}

	regions := RegionWiseSales(txns)

	require.Len(t, regions, 2)
	assert.Equal(t, "West", regions[0].Region)
	assert.Equal(t, "East", regions[1].Region)
}

func TestRegionWiseSalesEmptyInput(t *testing.T) {
	assert.Empty(t, RegionWiseSales(nil))
}

func TestRegionWiseSalesZeroGrandTotalGivesZeroPercentages(t *testing.T) {
	// Zero-priced records cannot pass validation, but the aggregation must
	// still guard the division.
	txns := []models.Transaction{
		tx("T001", "2024-12-01", "Mouse", 1, "0", "C001", "North"),
	}

	regions := RegionWiseSales(txns)

	require.Len(t, regions, 1)
	assert.True(t, regions[0].Percentage.IsZero())
}

func TestTopSellingProducts(t *testing.T) {
	top := TopSellingProducts(sampleTransactions(), 2)

	require.Len(t, top, 2)
	assert.Equal(t, "Mouse", top[0].ProductName)
	assert.Equal(t, 7, top[0].TotalQuantity)
	assert.True(t, top[0].TotalRevenue.Equal(decimal.NewFromInt(3500)))
	assert.Equal(t, "Laptop", top[1].ProductName)
	assert.Equal(t, 3, top[1].TotalQuantity)
}

func TestTopSellingProductsIsSubsetOfFullAggregation(t *testing.T) {
	txns := sampleTransactions()
	full := TopSellingProducts(txns, len(txns))
	top := TopSellingProducts(txns, 2)

	for i, p := range top {
		assert.Equal(t, full[i], p)
	}
}

func TestTopSellingProductsFewerDistinctThanN(t *testing.T) {
	top := TopSellingProducts(sampleTransactions(), 50)
	assert.Len(t, top, 3)
}

func TestTopSellingProductsTiesKeepEncounterOrder(t *testing.T) {
	txns := []models.Transaction{
		tx("T001", "2024-12-01", "Pen", 3, "10", "C001", "North"),
		tx("T002", "2024-12-01", "Pencil", 3, "5", "C001", "North"),
	}

	top := TopSellingProducts(txns, 5)

	require.Len(t, top, 2)
	assert.Equal(t, "Pen", top[0].ProductName)
	assert.Equal(t, "Pencil", top[1].ProductName)
}

func TestCustomerAnalysis(t *testing.T) {
	customers := CustomerAnalysis(sampleTransactions())

	require.Len(t, customers, 3)
	assert.Equal(t, "C001", customers[0].CustomerID)
	assert.True(t, customers[0].TotalSpent.Equal(decimal.NewFromInt(135000)))
	assert.Equal(t, 2, customers[0].PurchaseCount)
	assert.True(t, customers[0].AvgOrderValue.Equal(decimal.NewFromInt(67500)))
	assert.Equal(t, []string{"Laptop"}, customers[0].ProductsBought)

	// C002 bought Mouse twice: distinct product list has one entry.
	var c002 models.CustomerStats
	for _, c := range customers {
		if c.CustomerID == "C002" {
			c002 = c
		}
	}
	assert.Equal(t, []string{"Mouse"}, c002.ProductsBought)
	assert.Equal(t, 2, c002.PurchaseCount)
}

func TestCustomerAnalysisAvgOrderValueRounded(t *testing.T) {
	txns := []models.Transaction{
		tx("T001", "2024-12-01", "Pen", 1, "10", "C001", "North"),
		tx("T002", "2024-12-01", "Pen", 1, "5", "C001", "North"),
		tx("T003", "2024-12-01", "Pen", 1, "5", "C001", "North"),
	}

	customers := CustomerAnalysis(txns)

	require.Len(t, customers, 1)
	// 20 / 3 = 6.666... -> 6.67
	assert.Equal(t, "6.67", customers[0].AvgOrderValue.StringFixed(2))
}

func TestDailySalesTrendOrderedAscending(t *testing.T) {
	daily := DailySalesTrend(sampleTransactions())

	require.Len(t, daily, 3)
	assert.Equal(t, "2024-12-01", daily[0].Date)
	assert.Equal(t, "2024-12-02", daily[1].Date)
	assert.Equal(t, "2024-12-03", daily[2].Date)

	assert.True(t, daily[0].Revenue.Equal(decimal.NewFromInt(92500)))
	assert.Equal(t, 2, daily[0].TransactionCount)
	assert.Equal(t, 2, daily[0].UniqueCustomers)
}

func TestDailySalesTrendCountsDistinctCustomers(t *testing.T) {
	txns := []models.Transaction{
		tx("T001", "2024-12-01", "Pen", 1, "10", "C001", "North"),
		tx("T002", "2024-12-01", "Pen", 1, "10", "C001", "North"),
		tx("T003", "2024-12-01", "Pen", 1, "10", "C002", "North"),
	}

	daily := DailySalesTrend(txns)

	require.Len(t, daily, 1)
	assert.Equal(t, 3, daily[0].TransactionCount)
	assert.Equal(t, 2, daily[0].UniqueCustomers)
}

func TestFindPeakSalesDay(t *testing.T) {
	peak := FindPeakSalesDay(sampleTransactions())

	assert.Equal(t, "2024-12-01", peak.Date)
	assert.True(t, peak.Revenue.Equal(decimal.NewFromInt(92500)))
	assert.Equal(t, 2, peak.TransactionCount)
}

func TestFindPeakSalesDayEmptyInput(t *testing.T) {
	peak := FindPeakSalesDay(nil)

	assert.Equal(t, "", peak.Date)
	assert.True(t, peak.Revenue.IsZero())
	assert.Equal(t, 0, peak.TransactionCount)
}

// Among equal maxima the earliest date wins because the comparison over the
// ascending trend is strict.
func TestFindPeakSalesDayTieGoesToEarliestDate(t *testing.T) {
	txns := []models.Transaction{
		tx("T001", "2024-12-05", "Pen", 1, "100", "C001", "North"),
		tx("T002", "2024-12-02", "Pen", 1, "100", "C002", "North"),
	}

	peak := FindPeakSalesDay(txns)

	assert.Equal(t, "2024-12-02", peak.Date)
}

func TestLowPerformingProducts(t *testing.T) {
	low := LowPerformingProducts(sampleTransactions(), 10)

	// Mouse has quantity 7, Laptop 3, Keyboard 3 - all below 10.
	require.Len(t, low, 3)
	for i := 1; i < len(low); i++ {
		assert.LessOrEqual(t, low[i-1].TotalQuantity, low[i].TotalQuantity)
	}
	for _, p := range low {
		assert.Less(t, p.TotalQuantity, 10)
	}
}

func TestLowPerformingProductsThresholdIsStrict(t *testing.T) {
	txns := []models.Transaction{
		tx("T001", "2024-12-01", "Pen", 10, "10", "C001", "North"),
		tx("T002", "2024-12-01", "Pencil", 9, "5", "C001", "North"),
	}

	low := LowPerformingProducts(txns, 10)

	require.Len(t, low, 1)
	assert.Equal(t, "Pencil", low[0].ProductName)
}

func TestLowPerformingProductsEmptyInput(t *testing.T) {
	assert.Empty(t, LowPerformingProducts(nil, 10))
}

func TestAggregationsDoNotMutateInput(t *testing.T) {
	txns := sampleTransactions()
	original := make([]models.Transaction, len(txns))
	copy(original, txns)

	TotalRevenue(txns)
	RegionWiseSales(txns)
	TopSellingProducts(txns, 5)
	CustomerAnalysis(txns)
	DailySalesTrend(txns)
	FindPeakSalesDay(txns)
	LowPerformingProducts(txns, 10)

	assert.Equal(t, original, txns)
}

func TestRepeatedRunsProduceIdenticalOrdering(t *testing.T) {
	txns := sampleTransactions()

	first := RegionWiseSales(txns)
	second := RegionWiseSales(txns)
	assert.Equal(t, first, second)

	topFirst := TopSellingProducts(txns, 5)
	topSecond := TopSellingProducts(txns, 5)
	assert.Equal(t, topFirst, topSecond)
}
