// Package validation checks parsed transactions against the business
// validity rules and applies optional region and amount filters.
package validation

import (
	"github.com/farnaz-amriza/sales-analytics-system/internal/models"

	"github.com/shopspring/decimal"
)

// FilterOptions are the optional post-validation filters. The zero value
// applies no filtering.
type FilterOptions struct {
	Region    string              // keep only this region when non-empty
	MinAmount decimal.NullDecimal // inclusive lower bound on the amount
	MaxAmount decimal.NullDecimal // inclusive upper bound on the amount
}

// ValidateAndFilter validates transactions and applies the optional filters.
// Invalid records are counted and dropped without attribution of the failed
// rule; filtered records are counted separately from invalid ones. The
// returned slice is freshly allocated and the input is never mutated.
func ValidateAndFilter(transactions []models.Transaction, opts FilterOptions) ([]models.Transaction, int, models.ValidationSummary) {
	summary := models.ValidationSummary{
		TotalInput: len(transactions),
	}

	valid := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if !tx.IsValid() {
			summary.Invalid++
			continue
		}
		valid = append(valid, tx)
	}

	kept := make([]models.Transaction, 0, len(valid))
	for _, tx := range valid {
		if opts.Region != "" && tx.Region != opts.Region {
			summary.FilteredByRegion++
			continue
		}

		amount := tx.Amount()
		if opts.MinAmount.Valid && amount.LessThan(opts.MinAmount.Decimal) {
			summary.FilteredByAmount++
			continue
		}
		if opts.MaxAmount.Valid && amount.GreaterThan(opts.MaxAmount.Decimal) {
			summary.FilteredByAmount++
			continue
		}

		kept = append(kept, tx)
	}

	summary.FinalCount = len(kept)
	return kept, summary.Invalid, summary
}
