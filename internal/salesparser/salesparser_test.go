package salesparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region"

func writeSalesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales_data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse(t *testing.T) {
	content := header + "\n" +
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North\n" +
		"T002|2024-12-02|P102|Mouse|5|500|C002|South\n"

	transactions, err := Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	first := transactions[0]
	assert.Equal(t, "T001", first.TransactionID)
	assert.Equal(t, "2024-12-01", first.Date)
	assert.Equal(t, "P101", first.ProductID)
	assert.Equal(t, "Laptop", first.ProductName)
	assert.Equal(t, 2, first.Quantity)
	assert.True(t, first.UnitPrice.Equal(decimal.NewFromInt(45000)))
	assert.Equal(t, "C001", first.CustomerID)
	assert.Equal(t, "North", first.Region)
}

func TestParseSkipsRowsWithWrongFieldCount(t *testing.T) {
	content := header + "\n" +
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North\n" +
		"T002|2024-12-02|P102|Mouse|5|500\n" + // 6 fields
		"T003|2024-12-03|P103|Keyboard|3|1500|C003|East|extra\n" + // 9 fields
		"T004|2024-12-04|P104|Monitor|1|12000|C004|West\n"

	transactions, err := Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "T001", transactions[0].TransactionID)
	assert.Equal(t, "T004", transactions[1].TransactionID)
}

func TestParseNormalizesProductNameCommas(t *testing.T) {
	content := header + "\n" +
		"T001|2024-12-01|P101|Mouse,Wireless|2|500|C001|North\n"

	transactions, err := Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Mouse Wireless", transactions[0].ProductName)
}

func TestParseStripsThousandSeparators(t *testing.T) {
	content := header + "\n" +
		"T001|2024-12-01|P101|Laptop|1,000|45,000.50|C001|North\n"

	transactions, err := Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, 1000, transactions[0].Quantity)
	assert.True(t, transactions[0].UnitPrice.Equal(decimal.RequireFromString("45000.50")))
}

func TestParseSkipsUnconvertibleNumericFields(t *testing.T) {
	content := header + "\n" +
		"T001|2024-12-01|P101|Laptop|two|45000|C001|North\n" +
		"T002|2024-12-02|P102|Mouse|5|cheap|C002|South\n" +
		"T003|2024-12-03|P103|Keyboard|3|1500|C003|East\n"

	transactions, err := Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "T003", transactions[0].TransactionID)
}

func TestParseHeaderOnly(t *testing.T) {
	transactions, err := Parse(strings.NewReader(header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestParseFile(t *testing.T) {
	path := writeSalesFile(t, header+"\n"+
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North\n")

	transactions, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestValidateFormat(t *testing.T) {
	valid := writeSalesFile(t, header+"\n"+
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North\n")

	ok, err := ValidateFormat(valid)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateFormatRejectsUnknownHeader(t *testing.T) {
	invalid := writeSalesFile(t, "Foo|Bar\nbaz|qux\n")

	ok, err := ValidateFormat(invalid)
	require.NoError(t, err)
	assert.False(t, ok)
}
