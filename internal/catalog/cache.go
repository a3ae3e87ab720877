package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/farnaz-amriza/sales-analytics-system/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// cacheEntry is the YAML shape of one cached catalog record. Decimal values
// are stored as strings so they round-trip exactly.
type cacheEntry struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Brand    string `yaml:"brand"`
	Price    string `yaml:"price"`
	Rating   string `yaml:"rating"`
}

// Cache persists fetched catalog entries to a YAML file so a previously
// fetched catalog can still enrich transactions when the API is unreachable.
type Cache struct {
	path string
}

// NewCache creates a cache backed by the given file path.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Load reads the cached catalog entries. A missing cache file is not an
// error; it yields an empty slice.
func (c *Cache) Load() ([]models.CatalogEntry, error) {
	data, err := os.ReadFile(c.path) // #nosec G304 -- cache path comes from configuration
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", c.path).Debug("Catalog cache not found")
			return []models.CatalogEntry{}, nil
		}
		return nil, fmt.Errorf("error reading catalog cache: %w", err)
	}

	var rows []cacheEntry
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("error parsing catalog cache: %w", err)
	}

	entries := make([]models.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		entry := models.CatalogEntry{
			ID:       row.ID,
			Title:    row.Title,
			Category: row.Category,
			Brand:    row.Brand,
		}
		if d, err := decimal.NewFromString(row.Price); err == nil {
			entry.Price = d
		}
		if d, err := decimal.NewFromString(row.Rating); err == nil {
			entry.Rating = d
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Save writes the catalog entries to the cache file, creating the parent
// directory when needed.
func (c *Cache) Save(entries []models.CatalogEntry) error {
	rows := make([]cacheEntry, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, cacheEntry{
			ID:       entry.ID,
			Title:    entry.Title,
			Category: entry.Category,
			Brand:    entry.Brand,
			Price:    entry.Price.String(),
			Rating:   entry.Rating.String(),
		})
	}

	data, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("error marshaling catalog cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0750); err != nil {
		return fmt.Errorf("error creating cache directory: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("error writing catalog cache: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  c.path,
		"count": len(entries),
	}).Debug("Saved catalog cache")

	return nil
}
