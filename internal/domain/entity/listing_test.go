package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/entity"
	"ahoy_market/pkg/errcodes"
)

func TestUnitListingEffectiveUnitPrice(t *testing.T) {
	rq := require.New(t)

	perExp := decimal.RequireFromString("0.4")

	testCases := []struct {
		name    string
		listing entity.UnitListing
		price   string
		errCode string
	}{
		{
			name:    "Level one",
			listing: entity.UnitListing{UnitPrice: decimal.RequireFromString("2.5"), Level: 1},
			price:   "2.5",
		},
		{
			name:    "Divided by level",
			listing: entity.UnitListing{UnitPrice: decimal.RequireFromString("10"), Level: 4},
			price:   "2.5",
		},
		{
			name:    "Explicit per-unit price wins",
			listing: entity.UnitListing{UnitPrice: decimal.RequireFromString("10"), Level: 4, PricePerExp: &perExp},
			price:   "0.4",
		},
		{
			name:    "Explicit per-unit price with zero level",
			listing: entity.UnitListing{UnitPrice: decimal.RequireFromString("10"), PricePerExp: &perExp},
			price:   "0.4",
		},
		{
			name:    "Zero level",
			listing: entity.UnitListing{Handle: "sa-1", UnitPrice: decimal.RequireFromString("10")},
			errCode: errcodes.NumericParseError.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			price, err := tc.listing.EffectiveUnitPrice()

			if tc.errCode != "" {
				rq.Error(err)

				code, ok := domain.GetCode(err)
				rq.True(ok)
				rq.Equal(tc.errCode, code.String())

				return
			}

			rq.NoError(err)
			rq.True(decimal.RequireFromString(tc.price).Equal(price), "%s vs %s", tc.price, price)
		})
	}
}

func TestCycleReportCount(t *testing.T) {
	rq := require.New(t)

	report := entity.CycleReport{
		Outcomes: []entity.Outcome{
			{Kind: entity.OutcomePurchased},
			{Kind: entity.OutcomePurchaseFailed},
			{Kind: entity.OutcomePurchased},
			{Kind: entity.OutcomeFetchFailed},
		},
	}

	rq.Equal(2, report.Count(entity.OutcomePurchased))
	rq.Equal(1, report.Count(entity.OutcomeFetchFailed))
	rq.Zero(report.Count(entity.OutcomeAborted))

	rq.True(entity.OutcomePurchased.IsAttempt())
	rq.True(entity.OutcomePurchaseFailed.IsAttempt())
	rq.False(entity.OutcomeSkippedTooHighLevel.IsAttempt())
}
