// Package catalog fetches the external product catalog, caches it locally
// and builds the id-to-attributes mapping used for enrichment.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/farnaz-amriza/sales-analytics-system/internal/logging"
	"github.com/farnaz-amriza/sales-analytics-system/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// productsResponse is the wire shape of the catalog API response.
type productsResponse struct {
	Products []models.CatalogEntry `json:"products"`
}

// Client fetches product entries from the catalog API.
type Client struct {
	url        string
	httpClient *http.Client
	cache      *Cache
}

// NewClient creates a catalog client for the given endpoint. A nil cache
// disables the offline fallback.
func NewClient(url string, timeout time.Duration, cache *Cache) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
	}
}

// Fetch retrieves all products from the catalog API.
func (c *Client) Fetch(ctx context.Context) ([]models.CatalogEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching product catalog: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog API returned status %d", resp.StatusCode)
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding catalog response: %w", err)
	}

	log.WithField("count", len(payload.Products)).Info("Fetched product catalog")
	return payload.Products, nil
}

// FetchOrCached tries the network first and falls back to the local cache.
// When both fail it returns an empty slice, never an error: the enrichment
// pipeline must degrade to unmatched records rather than abort.
func (c *Client) FetchOrCached(ctx context.Context) []models.CatalogEntry {
	entries, err := c.Fetch(ctx)
	if err == nil {
		if c.cache != nil {
			if err := c.cache.Save(entries); err != nil {
				log.WithError(err).Warn("Failed to refresh catalog cache")
			}
		}
		return entries
	}

	log.WithError(err).Warn("Catalog fetch failed, trying cache")

	if c.cache != nil {
		cached, cacheErr := c.cache.Load()
		if cacheErr != nil {
			log.WithError(cacheErr).Warn("Failed to load catalog cache")
		} else if len(cached) > 0 {
			log.WithField("count", len(cached)).Info("Using cached product catalog")
			return cached
		}
	}

	log.Warn("No catalog available, enrichment will produce unmatched records")
	return []models.CatalogEntry{}
}
