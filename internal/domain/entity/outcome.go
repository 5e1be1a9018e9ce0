package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"ahoy_market/internal/domain/value"
)

type OutcomeKind string

const (
	OutcomePurchased           OutcomeKind = "purchased"
	OutcomePurchaseFailed      OutcomeKind = "purchase_failed"
	OutcomeNoQualifyingListing OutcomeKind = "no_qualifying_listing"
	OutcomeSkippedTooHighLevel OutcomeKind = "skipped_too_high_level"
	OutcomeFetchFailed         OutcomeKind = "fetch_failed"
	// OutcomeAborted is reported for a buy task that panicked.
	OutcomeAborted OutcomeKind = "aborted"
)

func OutcomeKinds() []OutcomeKind {
	return []OutcomeKind{
		OutcomePurchased,
		OutcomePurchaseFailed,
		OutcomeNoQualifyingListing,
		OutcomeSkippedTooHighLevel,
		OutcomeFetchFailed,
		OutcomeAborted,
	}
}

// IsAttempt reports whether a buy call was issued.
func (k OutcomeKind) IsAttempt() bool {
	return k == OutcomePurchased || k == OutcomePurchaseFailed
}

// Outcome is the result of evaluating one candidate item.
type Outcome struct {
	ItemID value.ItemID
	Name   string
	Kind   OutcomeKind
	// Price is the effective unit price of the chosen listing, zero when no
	// listing was chosen.
	Price     decimal.Decimal
	Threshold decimal.Decimal
	Level     uint32
	Handle    string
	// Confirmation is the vendor's buy response.
	Confirmation string
	Err          error
	FinishedAt   time.Time
}

// CycleReport summarizes one scan, filter and buy cycle.
type CycleReport struct {
	Number     uint64
	StartedAt  time.Time
	Duration   time.Duration
	Scanned    int
	Candidates int
	Outcomes   []Outcome
	Err        error
}

func (r CycleReport) Count(kind OutcomeKind) int {
	var n int

	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}

	return n
}

// PurchaseAttempt is a journaled buy attempt.
type PurchaseAttempt struct {
	ID           int64
	ItemID       value.ItemID
	Name         string
	Kind         OutcomeKind
	Handle       string
	Price        decimal.Decimal
	Threshold    decimal.Decimal
	Level        uint32
	Confirmation string
	Error        string
	AttemptedAt  time.Time
}
