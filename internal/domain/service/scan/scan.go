package scan

import (
	"github.com/shopspring/decimal"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/value"
)

type PriceLookup interface {
	Get(id value.ItemID) (decimal.Decimal, bool)
}

// Candidate is a summary row that passed the filter together with the
// reference price it was admitted against.
type Candidate struct {
	Listing   entity.SecondaryListing
	Reference decimal.Decimal
}

// Filter keeps the rows that have a reference price and whose floor price is
// at or below it. Input order is preserved and the input is not modified.
func Filter(listings []entity.SecondaryListing, table PriceLookup) []entity.SecondaryListing {
	candidates := Candidates(listings, table)

	result := make([]entity.SecondaryListing, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.Listing)
	}

	return result
}

// Candidates is Filter that also carries the matched reference price.
func Candidates(listings []entity.SecondaryListing, table PriceLookup) []Candidate {
	result := make([]Candidate, 0, len(listings))

	for _, listing := range listings {
		reference, ok := table.Get(listing.ItemID)
		if !ok {
			continue
		}

		if listing.FloorPrice.LessThanOrEqual(reference) {
			result = append(result, Candidate{
				Listing:   listing,
				Reference: reference,
			})
		}
	}

	return result
}
