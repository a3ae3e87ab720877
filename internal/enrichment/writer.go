package enrichment

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/farnaz-amriza/sales-analytics-system/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// Delimiter separates fields in the enriched output file.
var Delimiter rune = '|'

// SetDelimiter allows setting the delimiter for the enriched output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// WriteEnrichedFile writes the enriched transactions to a delimited file
// with the fixed 12-column header. All writers go through this function so
// the output stays consistent.
func WriteEnrichedFile(enriched []models.EnrichedTransaction, path string) error {
	if enriched == nil {
		return fmt.Errorf("cannot write nil transactions")
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(enriched),
	}).Info("Writing enriched transactions")

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		log.WithError(err).Error("Failed to create output directory")
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to create enriched output file")
		return fmt.Errorf("error creating enriched output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(enriched, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal enriched transactions")
		return fmt.Errorf("error writing enriched data: %w", err)
	}

	log.WithField("file", path).Info("Successfully wrote enriched transactions")
	return nil
}
