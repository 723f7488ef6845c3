package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ecommerce-api/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter bulk-loads products from a CSV export with name, price and
// stock columns.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and inserts one product per row. It returns the number
// of imported products and stops at the first failing row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing name column")
	}
	if _, ok := index["price"]; !ok {
		return 0, errors.New("missing price column")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+1, err)
		}
		if product == nil {
			continue
		}
		if _, err := i.productRepo.Create(ctx, *product); err != nil {
			return imported, fmt.Errorf("insert %s: %w", product.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	name := strings.TrimSpace(field(record, index, "name"))
	if name == "" {
		return nil, nil
	}

	// Prices exported as "$1.50" are accepted alongside plain decimals.
	rawPrice := strings.TrimPrefix(strings.TrimSpace(field(record, index, "price")), "$")
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", rawPrice, err)
	}

	stock := 0
	if raw := strings.TrimSpace(field(record, index, "stock")); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse stock %q: %w", raw, err)
		}
	}

	return &domain.Product{Name: name, Price: price, Stock: stock}, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
