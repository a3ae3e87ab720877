package catalog

import (
	"github.com/farnaz-amriza/sales-analytics-system/internal/models"
)

// BuildMapping builds the id-to-attributes lookup from fetched catalog
// entries. Entries without an id are skipped. A later entry with an id seen
// before silently overwrites the earlier one (last-wins).
func BuildMapping(entries []models.CatalogEntry) models.ProductMapping {
	mapping := make(models.ProductMapping, len(entries))

	for _, entry := range entries {
		if entry.ID == 0 {
			continue
		}
		mapping[entry.ID] = models.ProductInfo{
			Title:    entry.Title,
			Category: entry.Category,
			Brand:    entry.Brand,
			Rating:   entry.Rating,
		}
	}

	return mapping
}
