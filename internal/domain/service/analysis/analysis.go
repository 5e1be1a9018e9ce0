package analysis

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/logx"
)

const (
	defaultTopN      = 5
	dealTrendRange   = "7d"
	dealTrendDateFmt = "2006-01-02"
)

//go:generate moq -rm -out market_client_mock.gen.go . MarketClient:MarketClientMock
type MarketClient interface {
	QueryItemListings(ctx context.Context, id value.ItemID, page uint32, sort value.ListingSort) ([]entity.UnitListing, error)
	QueryDealTrend(ctx context.Context, id value.ItemID, timeRange string) ([]entity.DealTrendNode, error)
}

type ItemLookup interface {
	Lookup(id value.ItemID) (entity.Item, bool)
}

// SnapshotRow is the live price level of one item.
type SnapshotRow struct {
	ItemID        value.ItemID
	Name          string
	LocalizedName string
	// AvgEffectivePrice averages the cheapest priced listings.
	AvgEffectivePrice decimal.Decimal
	Listings          int
}

// DealTrendRow is one day of deals of one item.
type DealTrendRow struct {
	Date   string
	ItemID value.ItemID
	Name   string
	Count  uint32
	Avg    decimal.Decimal
	Min    decimal.Decimal
	Max    decimal.Decimal
	Total  decimal.Decimal
}

// Service builds market reports. Items are queried one after another.
type Service struct {
	client  MarketClient
	catalog ItemLookup
	topN    int
}

type Option func(*Service)

// WithTopN sets how many of the cheapest listings a snapshot averages.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

func NewService(client MarketClient, catalog ItemLookup, opts ...Option) *Service {
	s := &Service{
		client:  client,
		catalog: catalog,
		topN:    defaultTopN,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RealtimeSnapshot averages the effective price of the cheapest listings of
// every item. Items that fail to load or have no priced listing are skipped.
func (s *Service) RealtimeSnapshot(ctx context.Context, ids []value.ItemID) ([]SnapshotRow, error) {
	rows := make([]SnapshotRow, 0, len(ids))

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		listings, err := s.client.QueryItemListings(ctx, id, 1, value.ListingPriceExpAscending)
		if err != nil {
			logger(ctx).Warn("snapshot fetch failed", slog.String(logx.FieldItemID, id.String()), logx.Error(err))
			continue
		}

		prices := make([]decimal.Decimal, 0, s.topN)

		for _, listing := range listings {
			if len(prices) == s.topN {
				break
			}

			price, err := listing.EffectiveUnitPrice()
			if err != nil {
				continue
			}

			prices = append(prices, price)
		}

		if len(prices) == 0 {
			continue
		}

		row := SnapshotRow{
			ItemID:            id,
			AvgEffectivePrice: decimal.Avg(prices[0], prices[1:]...),
			Listings:          len(prices),
		}

		if item, ok := s.catalog.Lookup(id); ok {
			row.Name = item.Name
			row.LocalizedName = item.LocalizedName
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// DealTrend returns the daily deal history of every item, ordered by date
// and item id.
func (s *Service) DealTrend(ctx context.Context, ids []value.ItemID) ([]DealTrendRow, error) {
	var rows []DealTrendRow

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		nodes, err := s.client.QueryDealTrend(ctx, id, dealTrendRange)
		if err != nil {
			logger(ctx).Warn("deal trend fetch failed", slog.String(logx.FieldItemID, id.String()), logx.Error(err))
			continue
		}

		name := id.String()
		if item, ok := s.catalog.Lookup(id); ok {
			name = item.Name
		}

		for _, node := range nodes {
			rows = append(rows, DealTrendRow{
				Date:   time.UnixMilli(node.Timestamp).UTC().Format(dealTrendDateFmt),
				ItemID: id,
				Name:   name,
				Count:  node.Count,
				Avg:    node.Avg,
				Min:    node.Min,
				Max:    node.Max,
				Total:  node.Total,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}

		return rows[i].ItemID < rows[j].ItemID
	})

	return rows, nil
}
