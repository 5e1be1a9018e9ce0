package rest

// Status is the scan loop snapshot.
type Status struct {
	State     string        `json:"state"`
	Cycles    uint64        `json:"cycles"`
	Policy    string        `json:"policy"`
	LastCycle *CycleSummary `json:"lastCycle,omitempty"`
	Balances  []Balance     `json:"balances"`
	// BalanceError is set when the wallet balance could not be fetched.
	BalanceError string `json:"balanceError,omitempty"`
}

type CycleSummary struct {
	Number     uint64         `json:"number"`
	StartedAt  string         `json:"startedAt"`
	DurationMs int64          `json:"durationMs"`
	Scanned    int            `json:"scanned"`
	Candidates int            `json:"candidates"`
	Outcomes   map[string]int `json:"outcomes"`
	Error      string         `json:"error,omitempty"`
}

type Balance struct {
	Chain   string `json:"chain"`
	Unit    string `json:"unit"`
	Balance string `json:"balance"`
}

type PurchaseAttempt struct {
	ID           int64  `json:"id"`
	ItemID       uint32 `json:"itemId"`
	Name         string `json:"name"`
	Outcome      string `json:"outcome"`
	Handle       string `json:"handle"`
	Price        string `json:"price"`
	Threshold    string `json:"threshold"`
	Level        uint32 `json:"level"`
	Confirmation string `json:"confirmation,omitempty"`
	Error        string `json:"error,omitempty"`
	AttemptedAt  string `json:"attemptedAt"`
}

type PurchaseAttempts struct {
	Items []PurchaseAttempt `json:"items"`
}

// Error is the error response body.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string

type ReportRequest struct {
	Kind string `json:"kind" validate:"required,oneof=realtime deal_trend"`
}

type Report struct {
	Kind string `json:"kind"`
	File string `json:"file"`
}
