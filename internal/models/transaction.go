// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ID prefix markers carried by well-formed sales records.
const (
	TransactionIDPrefix = "T"
	ProductIDPrefix     = "P"
	CustomerIDPrefix    = "C"
)

// Transaction represents a single sales record: one product sold to one
// customer on one date.
type Transaction struct {
	TransactionID string          `csv:"TransactionID"`
	Date          string          `csv:"Date"` // ISO YYYY-MM-DD, sorts correctly as a string
	ProductID     string          `csv:"ProductID"`
	ProductName   string          `csv:"ProductName"`
	Quantity      int             `csv:"Quantity"`
	UnitPrice     decimal.Decimal `csv:"UnitPrice"`
	CustomerID    string          `csv:"CustomerID"`
	Region        string          `csv:"Region"`
}

// Amount returns the transaction value (Quantity * UnitPrice).
// It is always derived from the source fields, never cached, so enriched
// copies and reports cannot drift from the record they came from.
func (t *Transaction) Amount() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// IsValid reports whether the transaction satisfies every validity rule:
// required fields present, positive quantity and unit price, and the
// T/P/C identifier prefixes.
func (t *Transaction) IsValid() bool {
	if t.TransactionID == "" || t.ProductID == "" || t.CustomerID == "" || t.Region == "" {
		return false
	}
	if t.Quantity <= 0 {
		return false
	}
	if !t.UnitPrice.IsPositive() {
		return false
	}
	if !strings.HasPrefix(t.TransactionID, TransactionIDPrefix) {
		return false
	}
	if !strings.HasPrefix(t.ProductID, ProductIDPrefix) {
		return false
	}
	if !strings.HasPrefix(t.CustomerID, CustomerIDPrefix) {
		return false
	}
	return true
}
