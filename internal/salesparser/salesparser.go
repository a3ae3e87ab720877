// Package salesparser provides functionality to parse pipe-delimited sales
// data files into Transaction records. It handles row-level cleanup: product
// name normalization and thousand-separator stripping in numeric fields.
package salesparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/farnaz-amriza/sales-analytics-system/internal/logging"
	"github.com/farnaz-amriza/sales-analytics-system/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// fieldCount is the fixed width of a well-formed sales record.
const fieldCount = 8

// Delimiter separates fields in the sales data file.
var Delimiter rune = '|'

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// SetDelimiter allows setting the delimiter for sales data files.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// Parse reads pipe-delimited sales records from r and returns the parsed
// transactions. The header row is skipped. Rows that do not have exactly
// eight fields, or whose numeric fields cannot be converted, are dropped
// here - semantic validity is checked later by the validation package.
func Parse(r io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.LazyQuotes = true
	// Ragged rows must be skipped, not abort the parse.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		log.WithError(err).Error("Failed to read sales data")
		return nil, fmt.Errorf("error reading sales data: %w", err)
	}

	var transactions []models.Transaction
	skipped := 0
	for i, row := range rows {
		// Skip header row
		if i == 0 {
			continue
		}

		tx, ok := convertRow(row)
		if !ok {
			skipped++
			log.WithField("line", i+1).Debug("Skipping malformed sales record")
			continue
		}

		transactions = append(transactions, tx)
	}

	log.WithFields(logrus.Fields{
		"count":   len(transactions),
		"skipped": skipped,
	}).Info("Parsed sales records")

	return transactions, nil
}

// ParseFile parses a pipe-delimited sales data file and returns a slice of
// Transaction objects. This is the main entry point for reading sales data.
func ParseFile(filePath string) ([]models.Transaction, error) {
	log.WithField("file", filePath).Info("Parsing sales data file")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to open sales data file")
		return nil, fmt.Errorf("error opening sales data file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file)
}

// convertRow converts one raw record into a Transaction. It reports false
// when the row has the wrong width or unconvertible numeric fields.
func convertRow(row []string) (models.Transaction, bool) {
	if len(row) != fieldCount {
		return models.Transaction{}, false
	}

	for i := range row {
		row[i] = strings.TrimSpace(row[i])
	}

	// Commas in product names become spaces (e.g. "Mouse,Wireless").
	productName := strings.ReplaceAll(row[3], ",", " ")

	// Numeric fields may carry thousand separators.
	quantity, err := strconv.Atoi(strings.ReplaceAll(row[4], ",", ""))
	if err != nil {
		return models.Transaction{}, false
	}

	unitPrice, err := decimal.NewFromString(strings.ReplaceAll(row[5], ",", ""))
	if err != nil {
		return models.Transaction{}, false
	}

	return models.Transaction{
		TransactionID: row[0],
		Date:          row[1],
		ProductID:     row[2],
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    row[6],
		Region:        row[7],
	}, true
}

// ValidateFormat checks if the file looks like a pipe-delimited sales data
// file by inspecting its header row.
func ValidateFormat(filePath string) (bool, error) {
	log.WithField("file", filePath).Info("Validating sales data format")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to open file for validation")
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		log.WithError(err).Error("Failed to read header row")
		return false, fmt.Errorf("error reading header row: %w", err)
	}

	requiredColumns := []string{"TransactionID", "Date", "ProductID", "ProductName"}
	columnMap := make(map[string]bool)
	for _, col := range header {
		columnMap[strings.TrimSpace(col)] = true
	}

	for _, required := range requiredColumns {
		if !columnMap[required] {
			log.WithField("column", required).Info("Required column not found")
			return false, nil
		}
	}

	return true, nil
}
