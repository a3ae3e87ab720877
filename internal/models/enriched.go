package models

import (
	"github.com/shopspring/decimal"
)

// EnrichedHeader is the fixed column order of the enriched output file.
var EnrichedHeader = []string{
	"TransactionID",
	"Date",
	"ProductID",
	"ProductName",
	"Quantity",
	"UnitPrice",
	"CustomerID",
	"Region",
	"API_Category",
	"API_Brand",
	"API_Rating",
	"API_Match",
}

// EnrichedTransaction is an independent copy of a Transaction augmented with
// catalog attributes. When the catalog lookup misses, the API fields stay
// empty and APIMatch is false. An absent rating serializes as the empty
// string so a real 0.0 rating remains distinguishable from "no match".
type EnrichedTransaction struct {
	Transaction
	APICategory string              `csv:"API_Category"`
	APIBrand    string              `csv:"API_Brand"`
	APIRating   decimal.NullDecimal `csv:"API_Rating"`
	APIMatch    bool                `csv:"API_Match"`
}
