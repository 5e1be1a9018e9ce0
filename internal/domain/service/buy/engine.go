package buy

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/service/scan"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/contextx"
	"ahoy_market/pkg/logx"
)

const (
	defaultMaxLevel    = 3
	defaultMaxListings = 20
	firstPage          = 1
)

//go:generate moq -rm -out market_client_mock.gen.go . MarketClient:MarketClientMock
type MarketClient interface {
	QueryItemListings(ctx context.Context, id value.ItemID, page uint32, sort value.ListingSort) ([]entity.UnitListing, error)
	Buy(ctx context.Context, handle string) (string, error)
}

// Engine re-checks the live listings of a candidate item and buys the
// cheapest one when it satisfies the policy.
type Engine struct {
	client      MarketClient
	policy      Policy
	maxLevel    uint32
	maxListings int
	now         func() time.Time
}

type Option func(*Engine)

// WithMaxLevel sets the highest listing level that may be bought.
func WithMaxLevel(level uint32) Option {
	return func(e *Engine) {
		e.maxLevel = level
	}
}

// WithMaxListings caps how many listings are inspected per item.
func WithMaxListings(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxListings = n
		}
	}
}

func WithPolicy(policy Policy) Option {
	return func(e *Engine) {
		if policy != nil {
			e.policy = policy
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(client MarketClient, opts ...Option) *Engine {
	e := &Engine{
		client:      client,
		policy:      ReferencePolicy{},
		maxLevel:    defaultMaxLevel,
		maxListings: defaultMaxListings,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Policy() Policy {
	return e.policy
}

// EvaluateAndBuy never returns an error: every failure is reported as an
// outcome kind.
func (e *Engine) EvaluateAndBuy(ctx context.Context, candidate scan.Candidate) entity.Outcome {
	item := candidate.Listing

	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldItemID, item.ItemID.String()),
		slog.String(logx.FieldItemName, item.Name),
	))

	outcome := entity.Outcome{
		ItemID: item.ItemID,
		Name:   item.Name,
	}

	finish := func(kind entity.OutcomeKind) entity.Outcome {
		outcome.Kind = kind
		outcome.FinishedAt = e.now()

		return outcome
	}

	listings, err := e.client.QueryItemListings(ctx, item.ItemID, firstPage, value.ListingPriceExpAscending)
	if err != nil {
		logger(ctx).Error("query item listings", logx.Error(err))

		outcome.Err = err

		return finish(entity.OutcomeFetchFailed)
	}

	if len(listings) > e.maxListings {
		listings = listings[:e.maxListings]
	}

	priced := e.price(ctx, listings)
	if len(priced) == 0 {
		logger(ctx).Debug("no usable listings", slog.Int("listings", len(listings)))

		return finish(entity.OutcomeNoQualifyingListing)
	}

	cheapest := priced[0]

	outcome.Price = cheapest.Price
	outcome.Level = cheapest.Listing.Level
	outcome.Handle = cheapest.Listing.Handle

	if cheapest.Listing.Level > e.maxLevel {
		logger(ctx).Info(
			"cheapest listing level too high",
			slog.Uint64(logx.FieldLevel, uint64(cheapest.Listing.Level)),
			slog.Uint64("max-level", uint64(e.maxLevel)),
		)

		return finish(entity.OutcomeSkippedTooHighLevel)
	}

	threshold, ok, err := e.threshold(ctx, candidate, priced)
	if err != nil {
		logger(ctx).Error("query baseline listings", logx.Error(err))

		outcome.Err = err

		return finish(entity.OutcomeFetchFailed)
	}

	if !ok {
		logger(ctx).Debug("policy produced no threshold", slog.String("policy", e.policy.Name()))

		return finish(entity.OutcomeNoQualifyingListing)
	}

	outcome.Threshold = threshold

	if cheapest.Price.GreaterThan(threshold) {
		logger(ctx).Debug(
			"cheapest listing above threshold",
			logx.Stringer(logx.FieldPrice, cheapest.Price),
			logx.Stringer(logx.FieldThreshold, threshold),
		)

		return finish(entity.OutcomeNoQualifyingListing)
	}

	confirmation, err := e.client.Buy(ctx, cheapest.Listing.Handle)
	if err != nil {
		logger(ctx).Warn(
			"purchase failed",
			slog.String(logx.FieldHandle, cheapest.Listing.Handle),
			logx.Stringer(logx.FieldPrice, cheapest.Price),
			logx.Error(err),
		)

		outcome.Err = err

		return finish(entity.OutcomePurchaseFailed)
	}

	logger(ctx).Info(
		"purchased",
		slog.String(logx.FieldHandle, cheapest.Listing.Handle),
		logx.Stringer(logx.FieldPrice, cheapest.Price),
		logx.Stringer(logx.FieldThreshold, threshold),
		slog.Uint64(logx.FieldLevel, uint64(cheapest.Listing.Level)),
	)

	outcome.Confirmation = confirmation

	return finish(entity.OutcomePurchased)
}

// threshold asks the policy for the highest acceptable price. A baseline
// policy is given the priced listings of its baseline item.
func (e *Engine) threshold(
	ctx context.Context,
	candidate scan.Candidate,
	priced []PricedListing,
) (decimal.Decimal, bool, error) {
	policy, ok := e.policy.(BaselinePolicy)
	if !ok {
		threshold, ok := e.policy.Threshold(candidate.Reference, priced)
		return threshold, ok, nil
	}

	baseline, ok := policy.Baseline(candidate.Listing.ItemID)
	if !ok {
		return decimal.Decimal{}, false, nil
	}

	listings, err := e.client.QueryItemListings(ctx, baseline, firstPage, value.ListingPriceExpAscending)
	if err != nil {
		return decimal.Decimal{}, false, err
	}

	if len(listings) > e.maxListings {
		listings = listings[:e.maxListings]
	}

	logger(ctx).Debug(
		"baseline listings",
		slog.String("baseline-id", baseline.String()),
		slog.Int("listings", len(listings)),
	)

	threshold, ok := policy.BaselineThreshold(e.price(ctx, listings))

	return threshold, ok, nil
}

// price resolves effective unit prices in vendor order. Listings whose price
// cannot be derived are logged and left out.
func (e *Engine) price(ctx context.Context, listings []entity.UnitListing) []PricedListing {
	result := make([]PricedListing, 0, len(listings))

	for _, l := range listings {
		price, err := l.EffectiveUnitPrice()
		if err != nil {
			logger(ctx).Warn(
				"skip listing without effective price",
				slog.String(logx.FieldHandle, l.Handle),
				logx.Error(err),
			)

			continue
		}

		result = append(result, PricedListing{Listing: l, Price: price})
	}

	return result
}
