package server

import (
	"time"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/pkg/rest"
)

func newRESTCycleSummary(report entity.CycleReport) rest.CycleSummary {
	summary := rest.CycleSummary{
		Number:     report.Number,
		StartedAt:  report.StartedAt.UTC().Format(time.RFC3339),
		DurationMs: report.Duration.Milliseconds(),
		Scanned:    report.Scanned,
		Candidates: report.Candidates,
		Outcomes:   make(map[string]int, len(entity.OutcomeKinds())),
	}

	for _, kind := range entity.OutcomeKinds() {
		summary.Outcomes[string(kind)] = report.Count(kind)
	}

	if report.Err != nil {
		summary.Error = report.Err.Error()
	}

	return summary
}

func newRESTBalance(balance entity.Balance) rest.Balance {
	return rest.Balance{
		Chain:   balance.Chain,
		Unit:    balance.Unit,
		Balance: balance.Balance.String(),
	}
}

func newRESTPurchaseAttempt(attempt entity.PurchaseAttempt) rest.PurchaseAttempt {
	return rest.PurchaseAttempt{
		ID:           attempt.ID,
		ItemID:       uint32(attempt.ItemID),
		Name:         attempt.Name,
		Outcome:      string(attempt.Kind),
		Handle:       attempt.Handle,
		Price:        attempt.Price.String(),
		Threshold:    attempt.Threshold.String(),
		Level:        attempt.Level,
		Confirmation: attempt.Confirmation,
		Error:        attempt.Error,
		AttemptedAt:  attempt.AttemptedAt.UTC().Format(time.RFC3339),
	}
}
