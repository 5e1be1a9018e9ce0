package worker

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/service/scan"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/contextx"
	"ahoy_market/pkg/errcodes"
	"ahoy_market/pkg/logx"
)

const (
	defaultPageSize = 20
	defaultFanOut   = 3
)

//go:generate moq -rm -out listing_source_mock.gen.go . ListingSource:ListingSourceMock
type ListingSource interface {
	QueryListings(
		ctx context.Context,
		filter value.CategoryFilter,
		page, pageSize uint32,
		sort value.SecondarySort,
	) (entity.SecondaryPage, error)
}

//go:generate moq -rm -out buyer_mock.gen.go . Buyer:BuyerMock
type Buyer interface {
	EvaluateAndBuy(ctx context.Context, candidate scan.Candidate) entity.Outcome
}

//go:generate moq -rm -out journal_mock.gen.go . Journal:JournalMock
type Journal interface {
	Save(ctx context.Context, outcome entity.Outcome) error
}

type Mode string

const (
	ModeContinuous Mode = "continuous"
	ModeOnce       Mode = "once"
)

type State int32

const (
	StateIdle State = iota
	StateScanning
	StateFiltering
	StateBuying
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateFiltering:
		return "filtering"
	case StateBuying:
		return "buying"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// ScanOrchestrator drives the scan, filter and buy loop.
type ScanOrchestrator struct {
	source ListingSource
	table  scan.PriceLookup
	buyer  Buyer

	filter        value.CategoryFilter
	pageSize      uint32
	fanOut        int
	mode          Mode
	cycleInterval time.Duration
	outcomes      chan<- entity.Outcome
	journal       Journal
	metrics       *Metrics
	now           func() time.Time

	state  atomic.Int32
	cycles atomic.Uint64

	mu         sync.RWMutex
	lastReport *entity.CycleReport
}

type Option func(*ScanOrchestrator)

func WithFilter(filter value.CategoryFilter) Option {
	return func(o *ScanOrchestrator) {
		o.filter = filter
	}
}

func WithPageSize(size uint32) Option {
	return func(o *ScanOrchestrator) {
		if size > 0 {
			o.pageSize = size
		}
	}
}

// WithFanOut sets how many candidates are evaluated concurrently.
func WithFanOut(n int) Option {
	return func(o *ScanOrchestrator) {
		if n > 0 {
			o.fanOut = n
		}
	}
}

func WithMode(mode Mode) Option {
	return func(o *ScanOrchestrator) {
		o.mode = mode
	}
}

// WithCycleInterval sets the pause between two continuous cycles.
func WithCycleInterval(interval time.Duration) Option {
	return func(o *ScanOrchestrator) {
		o.cycleInterval = interval
	}
}

// WithOutcomes publishes every outcome to ch. Sends block, so ch must be
// drained.
func WithOutcomes(ch chan<- entity.Outcome) Option {
	return func(o *ScanOrchestrator) {
		o.outcomes = ch
	}
}

// WithJournal records every buy attempt.
func WithJournal(journal Journal) Option {
	return func(o *ScanOrchestrator) {
		o.journal = journal
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(o *ScanOrchestrator) {
		o.metrics = metrics
	}
}

func WithNow(now func() time.Time) Option {
	return func(o *ScanOrchestrator) {
		o.now = now
	}
}

func NewScanOrchestrator(
	source ListingSource,
	table scan.PriceLookup,
	buyer Buyer,
	opts ...Option,
) *ScanOrchestrator {
	o := &ScanOrchestrator{
		source:   source,
		table:    table,
		buyer:    buyer,
		pageSize: defaultPageSize,
		fanOut:   defaultFanOut,
		mode:     ModeContinuous,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *ScanOrchestrator) State() State {
	return State(o.state.Load())
}

func (o *ScanOrchestrator) Cycles() uint64 {
	return o.cycles.Load()
}

// LastReport returns the report of the last completed cycle.
func (o *ScanOrchestrator) LastReport() (entity.CycleReport, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.lastReport == nil {
		return entity.CycleReport{}, false
	}

	return *o.lastReport, true
}

func (o *ScanOrchestrator) setState(ctx context.Context, state State) {
	o.state.Store(int32(state))
	logger(ctx).Debug("orchestrator state", logx.Stringer(logx.FieldState, state))
}

// Run executes cycles until ctx is cancelled, or once in single-shot mode.
// A started cycle always completes; cancellation is observed between cycles.
func (o *ScanOrchestrator) Run(ctx context.Context) error {
	defer o.setState(ctx, StateTerminated)

	logger(ctx).Info(
		"scan orchestrator started",
		slog.String("mode", string(o.mode)),
		slog.Int("fan-out", o.fanOut),
	)

	for {
		if err := ctx.Err(); err != nil {
			logger(ctx).Info("scan orchestrator stopped", slog.Uint64(logx.FieldCycle, o.Cycles()))
			return err
		}

		o.RunCycle(context.WithoutCancel(ctx))

		if o.mode == ModeOnce {
			return nil
		}

		if o.cycleInterval <= 0 {
			continue
		}

		timer := time.NewTimer(o.cycleInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}
}

// RunCycle scans all pages, filters them against the price table and
// evaluates every candidate. It never fails: failures are carried by the
// report and its outcomes.
func (o *ScanOrchestrator) RunCycle(ctx context.Context) entity.CycleReport {
	number := o.cycles.Add(1)
	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.Uint64(logx.FieldCycle, number)))

	report := entity.CycleReport{
		Number:    number,
		StartedAt: o.now(),
	}

	o.setState(ctx, StateScanning)

	listings, err := o.scanAll(ctx)
	if err != nil {
		report.Err = err
		logger(ctx).Error("scan failed", slog.Int("scanned", len(listings)), logx.Error(err))
	}

	report.Scanned = len(listings)

	o.setState(ctx, StateFiltering)

	candidates := scan.Candidates(listings, o.table)
	report.Candidates = len(candidates)

	o.setState(ctx, StateBuying)

	report.Outcomes = o.buyAll(ctx, candidates)
	report.Duration = o.now().Sub(report.StartedAt)

	o.record(ctx, report)

	o.mu.Lock()
	o.lastReport = &report
	o.mu.Unlock()

	o.setState(ctx, StateIdle)

	logger(ctx).Info(
		"scan cycle completed",
		slog.Int("scanned", report.Scanned),
		slog.Int("candidates", report.Candidates),
		slog.Int(string(entity.OutcomePurchased), report.Count(entity.OutcomePurchased)),
		slog.Int(string(entity.OutcomePurchaseFailed), report.Count(entity.OutcomePurchaseFailed)),
		slog.Int64(logx.FieldDurationMs, report.Duration.Milliseconds()),
	)

	return report
}

// scanAll pages through the category query until total rows are collected
// or the vendor returns an empty page. Rows collected before a failure are
// returned with the error.
func (o *ScanOrchestrator) scanAll(ctx context.Context) ([]entity.SecondaryListing, error) {
	var listings []entity.SecondaryListing

	for page := uint32(1); ; page++ {
		result, err := o.source.QueryListings(ctx, o.filter, page, o.pageSize, value.SecondaryPriceAscending)
		if err != nil {
			return listings, fmt.Errorf("page %d: %w", page, err)
		}

		logger(ctx).Debug(
			"scanned page",
			slog.Uint64(logx.FieldPage, uint64(page)),
			slog.Int("rows", len(result.Items)),
			slog.Uint64("total", uint64(result.Total)),
		)

		listings = append(listings, result.Items...)

		if len(result.Items) == 0 || uint64(page)*uint64(o.pageSize) >= uint64(result.Total) {
			return listings, nil
		}
	}
}

// buyAll evaluates candidates on a pool of fanOut workers and returns the
// outcomes in candidate order.
func (o *ScanOrchestrator) buyAll(ctx context.Context, candidates []scan.Candidate) []entity.Outcome {
	outcomes := make([]entity.Outcome, len(candidates))

	var g errgroup.Group
	g.SetLimit(o.fanOut)

	for i, candidate := range candidates {
		g.Go(func() error {
			outcomes[i] = o.evaluate(ctx, candidate)
			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

func (o *ScanOrchestrator) evaluate(ctx context.Context, candidate scan.Candidate) (outcome entity.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := domain.NewError(errcodes.InternalServerError, fmt.Sprintf("buy task panicked: %v", r))

			logger(ctx).Error(
				"buy task panicked",
				slog.String(logx.FieldItemID, candidate.Listing.ItemID.String()),
				slog.String(logx.FieldItemName, candidate.Listing.Name),
				slog.String(logx.FieldStack, string(debug.Stack())),
				logx.Error(err),
			)

			outcome = entity.Outcome{
				ItemID:     candidate.Listing.ItemID,
				Name:       candidate.Listing.Name,
				Kind:       entity.OutcomeAborted,
				Err:        err,
				FinishedAt: o.now(),
			}
		}
	}()

	return o.buyer.EvaluateAndBuy(ctx, candidate)
}

func (o *ScanOrchestrator) record(ctx context.Context, report entity.CycleReport) {
	o.metrics.observe(report)

	for _, outcome := range report.Outcomes {
		if o.journal != nil && outcome.Kind.IsAttempt() {
			if err := o.journal.Save(ctx, outcome); err != nil {
				logger(ctx).Warn(
					"journal save failed",
					slog.String(logx.FieldItemID, outcome.ItemID.String()),
					logx.Error(err),
				)
			}
		}

		if o.outcomes != nil {
			o.outcomes <- outcome
		}
	}
}
