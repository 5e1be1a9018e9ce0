package buy

import (
	"github.com/shopspring/decimal"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/value"
)

// PricedListing is a unit listing with its effective unit price resolved.
type PricedListing struct {
	Listing entity.UnitListing
	Price   decimal.Decimal
}

// Policy derives the maximum acceptable effective unit price for an item.
// listings are the priced listings in vendor order, cheapest first. ok is
// false when the policy cannot produce a threshold.
type Policy interface {
	Threshold(reference decimal.Decimal, listings []PricedListing) (threshold decimal.Decimal, ok bool)
	Name() string
}

// ReferencePolicy buys at or below the trader's reference price.
type ReferencePolicy struct{}

func (ReferencePolicy) Threshold(reference decimal.Decimal, _ []PricedListing) (decimal.Decimal, bool) {
	return reference, true
}

func (ReferencePolicy) Name() string {
	return "reference"
}

// TopAverageDiscountPolicy buys when the cheapest listing is at or below
// Ratio times the average of the TopN cheapest listings. At least
// MinListings listings are required.
type TopAverageDiscountPolicy struct {
	TopN        int
	Ratio       decimal.Decimal
	MinListings int
}

func (p TopAverageDiscountPolicy) Threshold(_ decimal.Decimal, listings []PricedListing) (decimal.Decimal, bool) {
	if p.TopN <= 0 || len(listings) == 0 || len(listings) < p.MinListings {
		return decimal.Decimal{}, false
	}

	top := listings[:min(p.TopN, len(listings))]

	sum := decimal.Zero
	for _, l := range top {
		sum = sum.Add(l.Price)
	}

	avg := sum.Div(decimal.NewFromInt(int64(len(top))))

	return avg.Mul(p.Ratio), true
}

func (TopAverageDiscountPolicy) Name() string {
	return "top-average"
}

// AllPolicy requires every inner policy to produce a threshold and uses the
// lowest one.
type AllPolicy []Policy

func (p AllPolicy) Threshold(reference decimal.Decimal, listings []PricedListing) (decimal.Decimal, bool) {
	if len(p) == 0 {
		return decimal.Decimal{}, false
	}

	var result decimal.Decimal

	for i, inner := range p {
		threshold, ok := inner.Threshold(reference, listings)
		if !ok {
			return decimal.Decimal{}, false
		}

		if i == 0 || threshold.LessThan(result) {
			result = threshold
		}
	}

	return result, true
}

func (AllPolicy) Name() string {
	return "all"
}

// Pairing maps a gold card to its regular counterpart.
type Pairing interface {
	RegularOf(id value.ItemID) (value.ItemID, bool)
}

// BaselinePolicy prices a candidate against the listings of another item.
// The engine fetches the baseline item's listings and asks for the
// threshold with them in place of the candidate's own.
type BaselinePolicy interface {
	Policy
	Baseline(id value.ItemID) (value.ItemID, bool)
	BaselineThreshold(baseline []PricedListing) (decimal.Decimal, bool)
}

// GoldVsRegularPolicy buys a gold card when it is at or below Ratio times
// the average of the TopN cheapest listings of its regular card. The regular
// card needs at least MinListings priced listings. Cards without a regular
// counterpart get no threshold.
type GoldVsRegularPolicy struct {
	Pairs       Pairing
	TopN        int
	Ratio       decimal.Decimal
	MinListings int
}

// Threshold has no baseline to work with and never yields a threshold.
func (GoldVsRegularPolicy) Threshold(decimal.Decimal, []PricedListing) (decimal.Decimal, bool) {
	return decimal.Decimal{}, false
}

func (p GoldVsRegularPolicy) Baseline(id value.ItemID) (value.ItemID, bool) {
	if p.Pairs == nil {
		return 0, false
	}

	return p.Pairs.RegularOf(id)
}

func (p GoldVsRegularPolicy) BaselineThreshold(baseline []PricedListing) (decimal.Decimal, bool) {
	return TopAverageDiscountPolicy{
		TopN:        p.TopN,
		Ratio:       p.Ratio,
		MinListings: p.MinListings,
	}.Threshold(decimal.Zero, baseline)
}

func (GoldVsRegularPolicy) Name() string {
	return "gold-vs-regular"
}
