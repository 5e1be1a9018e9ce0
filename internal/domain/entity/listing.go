package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/errcodes"
)

// SecondaryListing is a per-item summary row of a category query.
type SecondaryListing struct {
	ItemID     value.ItemID
	Name       string
	FloorPrice decimal.Decimal
	Quantity   uint32
	VolumeSold uint32
}

// SecondaryPage is one page of a category query.
type SecondaryPage struct {
	Total uint32
	Items []SecondaryListing
}

// UnitListing is one individual offer of an item.
type UnitListing struct {
	// Handle is the vendor's sale aggregator number used to buy this offer.
	Handle    string
	Name      string
	UnitPrice decimal.Decimal
	// Level is the accumulated level/experience of the offered unit.
	Level uint32
	// PricePerExp is set when the vendor reports the per-unit price itself.
	PricePerExp *decimal.Decimal
}

// EffectiveUnitPrice is the comparable price of the listing: the explicit
// per-unit price when present, otherwise UnitPrice / Level.
func (l UnitListing) EffectiveUnitPrice() (decimal.Decimal, error) {
	if l.PricePerExp != nil {
		return *l.PricePerExp, nil
	}

	if l.Level == 0 {
		return decimal.Decimal{}, domain.NewError(
			errcodes.NumericParseError,
			fmt.Sprintf("listing %s has zero level and no per-unit price", l.Handle),
		)
	}

	return l.UnitPrice.Div(decimal.NewFromInt(int64(l.Level))), nil
}

// Balance is one wallet balance entry.
type Balance struct {
	Chain   string
	Unit    string
	Balance decimal.Decimal
}

// DealTrendNode is one bucket of the vendor's deal history.
type DealTrendNode struct {
	Timestamp int64
	Count     uint32
	Avg       decimal.Decimal
	Min       decimal.Decimal
	Max       decimal.Decimal
	Total     decimal.Decimal
}
