package market

import (
	"context"
	"log/slog"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/logx"
)

const itemListingsPageSize = 20

// QueryListings returns one page of per-item summary rows for the cards
// matching filter. Rows with unparseable prices are logged and dropped.
func (c *Client) QueryListings(
	ctx context.Context,
	filter value.CategoryFilter,
	page, pageSize uint32,
	sort value.SecondarySort,
) (entity.SecondaryPage, error) {
	request := secondaryRequest{
		ChainNftID:     value.ChainNftCards.WireCode(),
		DiscreteList:   discreteList(filter),
		ContinuityList: []continuityFilter{},
		PageNumber:     page,
		PageSize:       pageSize,
		SortType:       sort.WireCode(),
	}

	var response secondaryResponse
	if err := c.post(ctx, pathQuerySecondary, request, &response); err != nil {
		return entity.SecondaryPage{}, err
	}

	result := entity.SecondaryPage{
		Total: response.Total,
		Items: make([]entity.SecondaryListing, 0, len(response.List)),
	}

	for _, item := range response.List {
		listing, err := item.toEntity()
		if err != nil {
			logger(ctx).Warn(
				"drop secondary row",
				slog.Uint64(logx.FieldItemID, uint64(item.SecondaryID)),
				slog.String(logx.FieldItemName, item.SecondaryName),
				logx.Error(err),
			)

			continue
		}

		result.Items = append(result.Items, listing)
	}

	return result, nil
}

// QueryItemListings returns one page of individual offers of an item in the
// order the vendor sorted them.
func (c *Client) QueryItemListings(
	ctx context.Context,
	id value.ItemID,
	page uint32,
	sort value.ListingSort,
) ([]entity.UnitListing, error) {
	request := marketHomeRequest{
		CoinID:           coinIDUSDT,
		DiscreteList:     []discreteFilter{},
		ContinuityList:   []continuityFilter{levelContinuity()},
		PageNumber:       page,
		PageSize:         itemListingsPageSize,
		FirstCategoryID:  value.ChainNftCards.WireCode(),
		SecondCategoryID: uint32(id),
		SortType:         sort.WireCode(),
	}

	var response marketHomeResponse
	if err := c.post(ctx, pathQueryHome, request, &response); err != nil {
		return nil, err
	}

	listings := make([]entity.UnitListing, 0, len(response.List))

	for _, item := range response.List {
		listing, err := item.toEntity()
		if err != nil {
			logger(ctx).Warn(
				"drop listing",
				slog.String(logx.FieldHandle, item.SaleAggregatorNumber),
				logx.Error(err),
			)

			continue
		}

		listings = append(listings, listing)
	}

	return listings, nil
}
