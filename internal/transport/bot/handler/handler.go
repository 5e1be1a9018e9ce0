package handler

import (
	"context"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/worker"
)

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

type Handler struct {
	orchestrator orchestrator
	balances     balanceSource
	journal      purchaseJournal
	policy       string
}

// New builds the command handlers. journal may be nil.
func New(orchestrator orchestrator, balances balanceSource, journal purchaseJournal, policy string) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		balances:     balances,
		journal:      journal,
		policy:       policy,
	}
}
