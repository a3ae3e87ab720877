// Package enrichment joins validated transactions to the product catalog
// mapping and writes the enriched dataset.
package enrichment

import (
	"sort"
	"strconv"
	"strings"

	"github.com/farnaz-amriza/sales-analytics-system/internal/logging"
	"github.com/farnaz-amriza/sales-analytics-system/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var oneHundred = decimal.NewFromInt(100)

// JoinKey derives the numeric catalog id from a product id such as "P101".
// It reports false when the prefix is missing or the remainder is not an
// integer; a malformed product id is a graceful no-match, not an error.
func JoinKey(productID string) (int, bool) {
	if !strings.HasPrefix(productID, models.ProductIDPrefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(productID, models.ProductIDPrefix))
	if err != nil {
		return 0, false
	}
	return id, true
}

// Enrich joins each transaction to the catalog mapping and returns
// independent enriched copies. The input transactions are never mutated.
// Running Enrich twice with the same mapping yields identical output.
func Enrich(transactions []models.Transaction, mapping models.ProductMapping) []models.EnrichedTransaction {
	enriched := make([]models.EnrichedTransaction, 0, len(transactions))

	for _, tx := range transactions {
		e := models.EnrichedTransaction{Transaction: tx}

		if key, ok := JoinKey(tx.ProductID); ok {
			if info, found := mapping[key]; found {
				e.APICategory = info.Category
				e.APIBrand = info.Brand
				e.APIRating = decimal.NullDecimal{Decimal: info.Rating, Valid: true}
				e.APIMatch = true
			}
		}

		enriched = append(enriched, e)
	}

	matched := 0
	for i := range enriched {
		if enriched[i].APIMatch {
			matched++
		}
	}
	log.WithFields(logrus.Fields{
		"total":   len(enriched),
		"matched": matched,
	}).Info("Enriched transactions with catalog data")

	return enriched
}

// Summarize reports the match rate of an enriched batch along with the
// product names that had at least one unmatched transaction.
func Summarize(enriched []models.EnrichedTransaction) models.EnrichmentSummary {
	summary := models.EnrichmentSummary{
		Total:       len(enriched),
		SuccessRate: decimal.Zero,
	}

	unmatched := make(map[string]struct{})
	for i := range enriched {
		if enriched[i].APIMatch {
			summary.Matched++
		} else {
			unmatched[enriched[i].ProductName] = struct{}{}
		}
	}

	if summary.Total > 0 {
		summary.SuccessRate = decimal.NewFromInt(int64(summary.Matched)).
			Div(decimal.NewFromInt(int64(summary.Total))).
			Mul(oneHundred).Round(2)
	}

	names := make([]string, 0, len(unmatched))
	for name := range unmatched {
		names = append(names, name)
	}
	sort.Strings(names)
	summary.UnmatchedProducts = names

	return summary
}
