package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/worker"
	"ahoy_market/pkg/errcodes"
	"ahoy_market/pkg/httpx/reply"
	"ahoy_market/pkg/logx"
	"ahoy_market/pkg/lox"
	"ahoy_market/pkg/rest"
)

const (
	defaultPurchasesLimit = 20
	maxPurchasesLimit     = 500
)

//go:generate moq -rm -out orchestrator_mock.gen.go . orchestrator:OrchestratorMock
type orchestrator interface {
	State() worker.State
	Cycles() uint64
	LastReport() (entity.CycleReport, bool)
}

type balanceSource interface {
	CachedBalance(ctx context.Context) ([]entity.Balance, error)
}

type purchaseJournal interface {
	ListRecent(ctx context.Context, limit int) ([]entity.PurchaseAttempt, error)
}

type StatusServer struct {
	orchestrator orchestrator
	balances     balanceSource
	journal      purchaseJournal
	policy       string
}

// NewStatusServer builds the status handlers. journal may be nil when the
// purchase journal is disabled.
func NewStatusServer(
	orchestrator orchestrator,
	balances balanceSource,
	journal purchaseJournal,
	policy string,
) StatusServer {
	return StatusServer{
		orchestrator: orchestrator,
		balances:     balances,
		journal:      journal,
		policy:       policy,
	}
}

func (s StatusServer) getV1Status(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	status := rest.Status{
		State:  s.orchestrator.State().String(),
		Cycles: s.orchestrator.Cycles(),
		Policy: s.policy,
	}

	if report, ok := s.orchestrator.LastReport(); ok {
		summary := newRESTCycleSummary(report)
		status.LastCycle = &summary
	}

	balances, err := s.balances.CachedBalance(ctx)
	if err != nil {
		logger(ctx).Warn("balance unavailable", logx.Error(err))
		status.BalanceError = err.Error()
	}

	status.Balances = lox.Map(balances, newRESTBalance)

	reply.JSON(ctx, w, http.StatusOK, status)

	return nil
}

func (s StatusServer) getV1Purchases(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if s.journal == nil {
		return failure.NewNotFoundError(
			"purchase journal is disabled",
			failure.WithCode(errcodes.NotFound),
			failure.WithDescription("Purchase journal is not configured"),
		)
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		return err
	}

	attempts, err := s.journal.ListRecent(ctx, limit)
	if err != nil {
		return fmt.Errorf("journal.ListRecent: %w", err)
	}

	logger(ctx).Debug("listed purchases", slog.Int("count", len(attempts)))

	reply.JSON(ctx, w, http.StatusOK, rest.PurchaseAttempts{
		Items: lox.Map(attempts, newRESTPurchaseAttempt),
	})

	return nil
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultPurchasesLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > maxPurchasesLimit {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid limit %q", raw),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription("limit must be an integer between 1 and 500"),
		)
	}

	return limit, nil
}
