package models

import "github.com/shopspring/decimal"

// CatalogEntry is one product record as returned by the external product
// catalog API.
type CatalogEntry struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Price    decimal.Decimal `json:"price"`
	Rating   decimal.Decimal `json:"rating"`
}

// ProductInfo holds the catalog attributes carried onto enriched transactions.
type ProductInfo struct {
	Title    string
	Category string
	Brand    string
	Rating   decimal.Decimal
}

// ProductMapping maps a numeric catalog id to its product attributes.
// It is built once per pipeline run and treated as read-only afterwards.
type ProductMapping map[int]ProductInfo
