package worker_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/service/buy"
	"ahoy_market/internal/domain/service/pricetable"
	"ahoy_market/internal/domain/service/scan"
	"ahoy_market/internal/domain/value"
	"ahoy_market/internal/worker"
	"ahoy_market/pkg/errcodes"
)

func row(id value.ItemID, floor string) entity.SecondaryListing {
	return entity.SecondaryListing{
		ItemID:     id,
		Name:       "item-" + id.String(),
		FloorPrice: decimal.RequireFromString(floor),
	}
}

func pagedSource(total uint32, pages ...[]entity.SecondaryListing) *worker.ListingSourceMock {
	return &worker.ListingSourceMock{
		QueryListingsFunc: func(
			_ context.Context,
			_ value.CategoryFilter,
			page, _ uint32,
			_ value.SecondarySort,
		) (entity.SecondaryPage, error) {
			if int(page) > len(pages) {
				return entity.SecondaryPage{Total: total}, nil
			}

			return entity.SecondaryPage{Total: total, Items: pages[page-1]}, nil
		},
	}
}

func purchasingBuyer() *worker.BuyerMock {
	return &worker.BuyerMock{
		EvaluateAndBuyFunc: func(_ context.Context, candidate scan.Candidate) entity.Outcome {
			return entity.Outcome{
				ItemID: candidate.Listing.ItemID,
				Name:   candidate.Listing.Name,
				Kind:   entity.OutcomePurchased,
				Price:  candidate.Listing.FloorPrice,
			}
		},
	}
}

func TestScanOrchestratorRunCycle(t *testing.T) {
	rq := require.New(t)

	table := pricetable.New(map[value.ItemID]decimal.Decimal{
		1: decimal.RequireFromString("5"),
		2: decimal.RequireFromString("5"),
		3: decimal.RequireFromString("5"),
	})

	testCases := []struct {
		name           string
		source         *worker.ListingSourceMock
		wantPages      int
		wantScanned    int
		wantCandidates []value.ItemID
		wantErr        bool
	}{
		{
			name: "Pages until total is reached",
			source: pagedSource(5,
				[]entity.SecondaryListing{row(1, "4"), row(9, "1")},
				[]entity.SecondaryListing{row(2, "6"), row(3, "5")},
				[]entity.SecondaryListing{row(2, "5")},
			),
			wantPages:      3,
			wantScanned:    5,
			wantCandidates: []value.ItemID{1, 3, 2},
		},
		{
			name: "Stops at an empty page",
			source: pagedSource(100,
				[]entity.SecondaryListing{row(1, "1"), row(2, "1")},
			),
			wantPages:      2,
			wantScanned:    2,
			wantCandidates: []value.ItemID{1, 2},
		},
		{
			name: "Failed page keeps rows collected so far",
			source: &worker.ListingSourceMock{
				QueryListingsFunc: func(
					_ context.Context,
					_ value.CategoryFilter,
					page, _ uint32,
					_ value.SecondarySort,
				) (entity.SecondaryPage, error) {
					if page == 2 {
						return entity.SecondaryPage{}, errors.New("connection reset")
					}

					return entity.SecondaryPage{Total: 10, Items: []entity.SecondaryListing{row(3, "2"), row(1, "7")}}, nil
				},
			},
			wantPages:      2,
			wantScanned:    2,
			wantCandidates: []value.ItemID{3},
			wantErr:        true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			buyer := purchasingBuyer()
			orchestrator := worker.NewScanOrchestrator(tc.source, table, buyer, worker.WithPageSize(2), worker.WithFanOut(1))

			report := orchestrator.RunCycle(context.Background())

			rq.Len(tc.source.QueryListingsCalls(), tc.wantPages)
			for i, call := range tc.source.QueryListingsCalls() {
				rq.Equal(uint32(i+1), call.Page)
				rq.Equal(uint32(2), call.PageSize)
				rq.Equal(value.SecondaryPriceAscending, call.Sort)
			}

			rq.Equal(tc.wantScanned, report.Scanned)
			rq.Equal(len(tc.wantCandidates), report.Candidates)
			rq.Equal(tc.wantErr, report.Err != nil)

			ids := make([]value.ItemID, 0, len(report.Outcomes))
			for _, o := range report.Outcomes {
				ids = append(ids, o.ItemID)
			}
			rq.Equal(tc.wantCandidates, ids)

			rq.Equal(uint64(1), report.Number)
			rq.Equal(uint64(1), orchestrator.Cycles())
			rq.Equal(worker.StateIdle, orchestrator.State())

			last, ok := orchestrator.LastReport()
			rq.True(ok)
			rq.Equal(report.Number, last.Number)
		})
	}
}

func TestScanOrchestratorBoundedFanOut(t *testing.T) {
	rq := require.New(t)

	const fanOut = 3

	listings := make([]entity.SecondaryListing, 0, 12)
	prices := make(map[value.ItemID]decimal.Decimal, 12)

	for id := value.ItemID(1); id <= 12; id++ {
		listings = append(listings, row(id, "1"))
		prices[id] = decimal.RequireFromString("1")
	}

	var inFlight, peak atomic.Int32

	buyer := &worker.BuyerMock{
		EvaluateAndBuyFunc: func(_ context.Context, candidate scan.Candidate) entity.Outcome {
			current := inFlight.Add(1)
			for {
				seen := peak.Load()
				if current <= seen || peak.CompareAndSwap(seen, current) {
					break
				}
			}

			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			return entity.Outcome{ItemID: candidate.Listing.ItemID, Kind: entity.OutcomeNoQualifyingListing}
		},
	}

	orchestrator := worker.NewScanOrchestrator(
		pagedSource(12, listings),
		pricetable.New(prices),
		buyer,
		worker.WithPageSize(20),
		worker.WithFanOut(fanOut),
	)

	report := orchestrator.RunCycle(context.Background())

	rq.Len(report.Outcomes, 12)
	rq.Len(buyer.EvaluateAndBuyCalls(), 12)
	rq.LessOrEqual(peak.Load(), int32(fanOut))

	for i, o := range report.Outcomes {
		rq.Equal(value.ItemID(i+1), o.ItemID)
	}
}

func TestScanOrchestratorRecoversPanics(t *testing.T) {
	rq := require.New(t)

	table := pricetable.New(map[value.ItemID]decimal.Decimal{
		1: decimal.RequireFromString("5"),
		2: decimal.RequireFromString("5"),
	})

	buyer := &worker.BuyerMock{
		EvaluateAndBuyFunc: func(_ context.Context, candidate scan.Candidate) entity.Outcome {
			if candidate.Listing.ItemID == 1 {
				panic("boom")
			}

			return entity.Outcome{ItemID: candidate.Listing.ItemID, Kind: entity.OutcomePurchaseFailed, Err: errors.New("sold")}
		},
	}

	orchestrator := worker.NewScanOrchestrator(
		pagedSource(2, []entity.SecondaryListing{row(1, "1"), row(2, "1")}),
		table,
		buyer,
	)

	report := orchestrator.RunCycle(context.Background())

	rq.Len(report.Outcomes, 2)
	rq.Equal(entity.OutcomeAborted, report.Outcomes[0].Kind)
	rq.Error(report.Outcomes[0].Err)
	rq.Equal(value.ItemID(1), report.Outcomes[0].ItemID)
	rq.Equal(entity.OutcomePurchaseFailed, report.Outcomes[1].Kind)
}

func TestScanOrchestratorRecordsOutcomes(t *testing.T) {
	rq := require.New(t)

	table := pricetable.New(map[value.ItemID]decimal.Decimal{
		1: decimal.RequireFromString("5"),
		2: decimal.RequireFromString("5"),
	})

	buyer := &worker.BuyerMock{
		EvaluateAndBuyFunc: func(_ context.Context, candidate scan.Candidate) entity.Outcome {
			kind := entity.OutcomePurchased
			if candidate.Listing.ItemID == 2 {
				kind = entity.OutcomeSkippedTooHighLevel
			}

			return entity.Outcome{ItemID: candidate.Listing.ItemID, Kind: kind}
		},
	}

	journal := &worker.JournalMock{
		SaveFunc: func(context.Context, entity.Outcome) error {
			return errors.New("journal down")
		},
	}

	reg := prometheus.NewRegistry()
	metrics := worker.NewMetrics(reg)
	outcomes := make(chan entity.Outcome, 2)

	orchestrator := worker.NewScanOrchestrator(
		pagedSource(2, []entity.SecondaryListing{row(1, "1"), row(2, "1")}),
		table,
		buyer,
		worker.WithJournal(journal),
		worker.WithMetrics(metrics),
		worker.WithOutcomes(outcomes),
	)

	report := orchestrator.RunCycle(context.Background())
	rq.Len(report.Outcomes, 2)

	rq.Len(journal.SaveCalls(), 1)
	rq.Equal(value.ItemID(1), journal.SaveCalls()[0].Outcome.ItemID)

	rq.Len(outcomes, 2)
	rq.Equal(value.ItemID(1), (<-outcomes).ItemID)
	rq.Equal(value.ItemID(2), (<-outcomes).ItemID)

	families, err := reg.Gather()
	rq.NoError(err)

	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "ahoy_buy_outcomes_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			counts[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
		}
	}

	rq.InDelta(1, counts[string(entity.OutcomePurchased)], 0)
	rq.InDelta(1, counts[string(entity.OutcomeSkippedTooHighLevel)], 0)
	rq.InDelta(0, counts[string(entity.OutcomeFetchFailed)], 0)

	rq.Equal(1, testutil.CollectAndCount(reg, "ahoy_scan_cycles_total"))
}

func TestScanOrchestratorRun(t *testing.T) {
	rq := require.New(t)

	t.Run("Once mode runs a single cycle", func(*testing.T) {
		source := pagedSource(0)
		orchestrator := worker.NewScanOrchestrator(source, pricetable.New(nil), purchasingBuyer(), worker.WithMode(worker.ModeOnce))

		rq.NoError(orchestrator.Run(context.Background()))
		rq.Equal(uint64(1), orchestrator.Cycles())
		rq.Equal(worker.StateTerminated, orchestrator.State())
	})

	t.Run("Continuous mode stops on cancel", func(*testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		var once sync.Once

		source := &worker.ListingSourceMock{
			QueryListingsFunc: func(
				_ context.Context,
				_ value.CategoryFilter,
				_, _ uint32,
				_ value.SecondarySort,
			) (entity.SecondaryPage, error) {
				once.Do(cancel)
				return entity.SecondaryPage{}, nil
			},
		}

		orchestrator := worker.NewScanOrchestrator(
			source,
			pricetable.New(nil),
			purchasingBuyer(),
			worker.WithCycleInterval(time.Hour),
		)

		err := orchestrator.Run(ctx)
		rq.ErrorIs(err, context.Canceled)
		rq.Equal(uint64(1), orchestrator.Cycles())
		rq.Equal(worker.StateTerminated, orchestrator.State())
	})

	t.Run("Cycle completes although cancelled mid-cycle", func(*testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		buyer := &worker.BuyerMock{
			EvaluateAndBuyFunc: func(ctx context.Context, candidate scan.Candidate) entity.Outcome {
				cancel()
				rq.NoError(ctx.Err())

				return entity.Outcome{ItemID: candidate.Listing.ItemID, Kind: entity.OutcomePurchased}
			},
		}

		orchestrator := worker.NewScanOrchestrator(
			pagedSource(1, []entity.SecondaryListing{row(1, "1")}),
			pricetable.New(map[value.ItemID]decimal.Decimal{1: decimal.RequireFromString("1")}),
			buyer,
		)

		rq.ErrorIs(orchestrator.Run(ctx), context.Canceled)

		last, ok := orchestrator.LastReport()
		rq.True(ok)
		rq.Equal(1, last.Count(entity.OutcomePurchased))
	})
}

func TestScanOrchestratorSecondBuyOnSoldHandle(t *testing.T) {
	rq := require.New(t)

	table := pricetable.New(map[value.ItemID]decimal.Decimal{
		1: decimal.RequireFromString("5"),
		2: decimal.RequireFromString("5"),
	})

	var sold atomic.Bool

	client := &buy.MarketClientMock{
		QueryItemListingsFunc: func(context.Context, value.ItemID, uint32, value.ListingSort) ([]entity.UnitListing, error) {
			return []entity.UnitListing{{Handle: "sa-1", UnitPrice: decimal.RequireFromString("2"), Level: 1}}, nil
		},
		BuyFunc: func(_ context.Context, handle string) (string, error) {
			if !sold.CompareAndSwap(false, true) {
				return "", domain.NewError(errcodes.APILogicError, "asset "+handle+" already sold")
			}

			return "ok", nil
		},
	}

	orchestrator := worker.NewScanOrchestrator(
		pagedSource(2, []entity.SecondaryListing{row(1, "1"), row(2, "1")}),
		table,
		buy.NewEngine(client),
	)

	report := orchestrator.RunCycle(context.Background())

	rq.NoError(report.Err)
	rq.Equal(2, report.Candidates)
	rq.Len(report.Outcomes, 2)
	rq.Equal(1, report.Count(entity.OutcomePurchased))
	rq.Equal(1, report.Count(entity.OutcomePurchaseFailed))
	rq.Len(client.BuyCalls(), 2)

	for _, o := range report.Outcomes {
		rq.Equal("sa-1", o.Handle)

		if o.Kind == entity.OutcomePurchaseFailed {
			rq.True(domain.HasCode(o.Err, errcodes.APILogicError))
		}
	}

	rq.Equal(worker.StateIdle, orchestrator.State())
	rq.Equal(uint64(1), orchestrator.Cycles())
}
