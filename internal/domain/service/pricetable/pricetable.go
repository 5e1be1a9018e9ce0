package pricetable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/errcodes"
)

const columns = 2

type NameResolver interface {
	ResolveName(name string) (value.ItemID, bool)
}

// Table maps items to the maximum price the trader is willing to pay. It is
// read-only after Load and safe for concurrent use.
type Table struct {
	prices map[value.ItemID]decimal.Decimal
}

func New(prices map[value.ItemID]decimal.Decimal) *Table {
	t := &Table{prices: make(map[value.ItemID]decimal.Decimal, len(prices))}
	for id, price := range prices {
		t.prices[id] = price
	}

	return t
}

func LoadFile(path string, resolver NameResolver) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ConfigError, "open price table")
	}
	defer fh.Close()

	return Load(fh, resolver)
}

// Load reads headerless "display_name,reference_price" rows. Any malformed
// row or unknown name fails the whole load. A later row for the same item
// replaces an earlier one.
func Load(r io.Reader, resolver NameResolver) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	prices := make(map[value.ItemID]decimal.Decimal)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			// csv.ParseError carries its own line.
			return nil, domain.WrapError(err, errcodes.ConfigError, "price table")
		}

		line, _ := reader.FieldPos(0)

		if len(record) != columns {
			return nil, domain.NewError(
				errcodes.ConfigError,
				fmt.Sprintf("price table line %d: expected %d columns, got %d", line, columns, len(record)),
			)
		}

		name := strings.TrimSpace(record[0])

		id, ok := resolver.ResolveName(name)
		if !ok {
			return nil, domain.NewError(
				errcodes.ConfigError,
				fmt.Sprintf("price table line %d: unknown item %q", line, name),
			)
		}

		price, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, domain.WrapError(err, errcodes.ConfigError, fmt.Sprintf("price table line %d: invalid price", line))
		}

		if price.IsNegative() {
			return nil, domain.NewError(
				errcodes.ConfigError,
				fmt.Sprintf("price table line %d: negative price %s", line, price),
			)
		}

		prices[id] = price
	}

	return &Table{prices: prices}, nil
}

// Get returns the reference price of id. A miss means the item is not traded.
func (t *Table) Get(id value.ItemID) (decimal.Decimal, bool) {
	price, ok := t.prices[id]
	return price, ok
}

func (t *Table) Len() int {
	return len(t.prices)
}

func (t *Table) IDs() []value.ItemID {
	ids := make([]value.ItemID, 0, len(t.prices))
	for id := range t.prices {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
