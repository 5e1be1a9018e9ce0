package market

import (
	"context"
	"log/slog"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/logx"
)

const DefaultTimeRange = "7d"

// QueryDealTrend returns the deal history buckets of an item. A zero id
// queries the whole card class.
func (c *Client) QueryDealTrend(ctx context.Context, id value.ItemID, timeRange string) ([]entity.DealTrendNode, error) {
	if timeRange == "" {
		timeRange = DefaultTimeRange
	}

	request := dealTrendRequest{
		ChainNftID: value.ChainNftCards.WireCode(),
		TimeRange:  timeRange,
	}

	if id != 0 {
		request.CategoryID = id.String()
	}

	var response dealTrendResponse
	if err := c.post(ctx, pathQueryDealTrend, request, &response); err != nil {
		return nil, err
	}

	nodes := make([]entity.DealTrendNode, 0, len(response.Nodes))

	for _, node := range response.Nodes {
		parsed, err := node.toEntity()
		if err != nil {
			logger(ctx).Warn("drop deal trend node", slog.Int64("timestamp", node.Timestamp), logx.Error(err))

			continue
		}

		nodes = append(nodes, parsed)
	}

	return nodes, nil
}
