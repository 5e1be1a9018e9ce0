package scan_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/service/pricetable"
	"ahoy_market/internal/domain/service/scan"
	"ahoy_market/internal/domain/value"
)

func listing(id value.ItemID, floor string) entity.SecondaryListing {
	return entity.SecondaryListing{
		ItemID:     id,
		Name:       "item-" + id.String(),
		FloorPrice: decimal.RequireFromString(floor),
	}
}

func TestFilter(t *testing.T) {
	rq := require.New(t)

	table := pricetable.New(map[value.ItemID]decimal.Decimal{
		1: decimal.RequireFromString("10"),
		2: decimal.RequireFromString("10"),
		3: decimal.RequireFromString("5"),
		4: decimal.RequireFromString("0"),
	})

	testCases := []struct {
		name     string
		listings []entity.SecondaryListing
		ids      []value.ItemID
	}{
		{
			name:     "Empty input",
			listings: nil,
			ids:      []value.ItemID{},
		},
		{
			name:     "Equal to reference is kept",
			listings: []entity.SecondaryListing{listing(1, "10")},
			ids:      []value.ItemID{1},
		},
		{
			name:     "Above reference is dropped",
			listings: []entity.SecondaryListing{listing(1, "10.0001")},
			ids:      []value.ItemID{},
		},
		{
			name:     "Not in table is dropped",
			listings: []entity.SecondaryListing{listing(9, "0.01")},
			ids:      []value.ItemID{},
		},
		{
			name:     "Zero reference keeps free rows",
			listings: []entity.SecondaryListing{listing(4, "0"), listing(4, "0.1")},
			ids:      []value.ItemID{4},
		},
		{
			name: "Order is preserved",
			listings: []entity.SecondaryListing{
				listing(3, "4"),
				listing(9, "1"),
				listing(1, "9.5"),
				listing(2, "11"),
				listing(2, "3"),
			},
			ids: []value.ItemID{3, 1, 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			result := scan.Filter(tc.listings, table)

			ids := make([]value.ItemID, 0, len(result))
			for _, l := range result {
				ids = append(ids, l.ItemID)
			}

			rq.Equal(tc.ids, ids)
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	rq := require.New(t)

	table := pricetable.New(map[value.ItemID]decimal.Decimal{1: decimal.RequireFromString("10")})

	input := []entity.SecondaryListing{listing(2, "1"), listing(1, "1")}
	snapshot := append([]entity.SecondaryListing(nil), input...)

	result := scan.Filter(input, table)
	rq.Len(result, 1)

	result[0].Name = "changed"

	rq.Equal(snapshot, input)
}

func TestFilterSubsetOfInput(t *testing.T) {
	rq := require.New(t)

	table := pricetable.New(map[value.ItemID]decimal.Decimal{
		1: decimal.RequireFromString("3"),
		2: decimal.RequireFromString("7"),
	})

	input := []entity.SecondaryListing{listing(1, "2"), listing(2, "8"), listing(1, "3"), listing(5, "1")}

	for _, kept := range scan.Filter(input, table) {
		reference, ok := table.Get(kept.ItemID)
		rq.True(ok)
		rq.True(kept.FloorPrice.LessThanOrEqual(reference))
		rq.Contains(input, kept)
	}
}

func TestCandidates(t *testing.T) {
	rq := require.New(t)

	table := pricetable.New(map[value.ItemID]decimal.Decimal{1: decimal.RequireFromString("10")})

	candidates := scan.Candidates([]entity.SecondaryListing{listing(1, "8")}, table)
	rq.Len(candidates, 1)
	rq.True(decimal.RequireFromString("10").Equal(candidates[0].Reference))
	rq.Equal(value.ItemID(1), candidates[0].Listing.ItemID)
}

func TestFilterScanOfTwoItems(t *testing.T) {
	rq := require.New(t)

	table := pricetable.New(map[value.ItemID]decimal.Decimal{100: decimal.RequireFromString("6.00")})

	result := scan.Filter([]entity.SecondaryListing{listing(100, "5.00"), listing(200, "12.00")}, table)
	rq.Len(result, 1)
	rq.Equal(value.ItemID(100), result[0].ItemID)

	again := scan.Filter([]entity.SecondaryListing{listing(100, "5.00"), listing(200, "12.00")}, table)
	rq.Equal(result, again)
}
