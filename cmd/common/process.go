// Package common contains shared functionality for command handlers.
package common

import (
	"fmt"

	"github.com/farnaz-amriza/sales-analytics-system/internal/models"
	"github.com/farnaz-amriza/sales-analytics-system/internal/salesparser"
	"github.com/farnaz-amriza/sales-analytics-system/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// BuildFilterOptions converts the region/amount flag strings into
// FilterOptions. Empty flags leave the corresponding filter disabled.
func BuildFilterOptions(region, minAmount, maxAmount string) (validation.FilterOptions, error) {
	opts := validation.FilterOptions{Region: region}

	if minAmount != "" {
		d, err := decimal.NewFromString(minAmount)
		if err != nil {
			return opts, fmt.Errorf("invalid --min-amount %q: %w", minAmount, err)
		}
		opts.MinAmount = decimal.NullDecimal{Decimal: d, Valid: true}
	}

	if maxAmount != "" {
		d, err := decimal.NewFromString(maxAmount)
		if err != nil {
			return opts, fmt.Errorf("invalid --max-amount %q: %w", maxAmount, err)
		}
		opts.MaxAmount = decimal.NullDecimal{Decimal: d, Valid: true}
	}

	return opts, nil
}

// LoadTransactions parses the sales file, then validates and filters the
// records. It returns the kept transactions and the validation summary.
func LoadTransactions(inputFile string, opts validation.FilterOptions, log *logrus.Logger) ([]models.Transaction, models.ValidationSummary, error) {
	parsed, err := salesparser.ParseFile(inputFile)
	if err != nil {
		return nil, models.ValidationSummary{}, fmt.Errorf("error reading sales data: %w", err)
	}

	valid, invalid, summary := validation.ValidateAndFilter(parsed, opts)

	log.WithFields(logrus.Fields{
		"total":              summary.TotalInput,
		"invalid":            invalid,
		"filtered_by_region": summary.FilteredByRegion,
		"filtered_by_amount": summary.FilteredByAmount,
		"kept":               summary.FinalCount,
	}).Info("Validated transactions")

	return valid, summary, nil
}
