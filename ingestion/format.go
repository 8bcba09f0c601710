package ingestion

import (
	"fmt"
	"strconv"

	"github.com/poiesic/warebot/core"
)

// Placeholders substituted for absent fields. The model must never see an
// absent value rendered as blank.
const (
	placeholderUnknown = "Unknown"
	placeholderNA      = "N/A"
	placeholderGeneral = "General"
	placeholderMain    = "Main"
)

// recordTemplate is the canonical sentence rendering of one inventory row.
const recordTemplate = "Product ID: %s. " +
	"Product Name: %s. " +
	"Category: %s. " +
	"Available quantity is %s units. " +
	"Reorder level is %s units. " +
	"Supplier: %s. " +
	"Unit price is %s USD. " +
	"Warehouse location: %s. " +
	"Last updated on %s."

// FormatRow renders one tabular row into its canonical natural-language
// description and metadata tuple. Every one of the nine inventory fields is
// rendered; absent fields fall back to a fixed per-field placeholder, and
// ProductID falls back to the row's positional index. Formatting never
// fails: the worst case for a malformed row is placeholder text.
func FormatRow(row core.Row) (string, core.DocMetadata) {
	productID := fieldOr(row, "ProductID", strconv.Itoa(row.Index))
	category := fieldOr(row, "Category", placeholderGeneral)
	warehouse := fieldOr(row, "Warehouse", placeholderMain)

	text := fmt.Sprintf(recordTemplate,
		productID,
		fieldOr(row, "ProductName", placeholderUnknown),
		category,
		fieldOr(row, "Quantity", placeholderNA),
		fieldOr(row, "ReorderLevel", placeholderNA),
		fieldOr(row, "Supplier", placeholderUnknown),
		fieldOr(row, "Price", placeholderNA),
		warehouse,
		fieldOr(row, "LastUpdated", placeholderUnknown),
	)

	return text, core.DocMetadata{
		ProductID: productID,
		Category:  category,
		Warehouse: warehouse,
	}
}

func fieldOr(row core.Row, name, fallback string) string {
	if v, ok := row.Field(name); ok {
		return v
	}
	return fallback
}
