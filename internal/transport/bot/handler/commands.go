package handler

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"ahoy_market/internal/domain/entity"
)

const (
	defaultPurchasesLimit = 10
	maxPurchasesLimit     = 50
)

const startMessage = `<b>ahoy market bot</b>

/status - scan loop state
/balance - wallet balance
/purchases [n] - recent buy attempts`

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return sendHTML(ctx, msg.Chat.ID, startMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	return sendHTML(ctx, msg.Chat.ID, h.StatusText())
}

func (h *Handler) OnBalance(ctx *th.Context, msg telego.Message) error {
	return sendHTML(ctx, msg.Chat.ID, h.BalanceText(ctx))
}

func (h *Handler) OnPurchases(ctx *th.Context, msg telego.Message) error {
	return sendHTML(ctx, msg.Chat.ID, h.PurchasesText(ctx, parsePurchasesLimit(msg.Text)))
}

// StatusText renders the orchestrator state and the last cycle summary.
func (h *Handler) StatusText() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>Status</b>: %s\n", h.orchestrator.State())
	fmt.Fprintf(&sb, "Cycles: %d\n", h.orchestrator.Cycles())
	fmt.Fprintf(&sb, "Policy: %s\n", html.EscapeString(h.policy))

	report, ok := h.orchestrator.LastReport()
	if !ok {
		sb.WriteString("No cycle completed yet")
		return sb.String()
	}

	fmt.Fprintf(
		&sb,
		"\n<b>Last cycle #%d</b> at %s (%s)\nScanned: %d\nCandidates: %d\nBought: %d\nFailed: %d",
		report.Number,
		report.StartedAt.UTC().Format(time.DateTime),
		report.Duration.Round(time.Millisecond),
		report.Scanned,
		report.Candidates,
		report.Count(entity.OutcomePurchased),
		report.Count(entity.OutcomePurchaseFailed),
	)

	if report.Err != nil {
		fmt.Fprintf(&sb, "\nScan error: %s", html.EscapeString(report.Err.Error()))
	}

	return sb.String()
}

func (h *Handler) BalanceText(ctx context.Context) string {
	balances, err := h.balances.CachedBalance(ctx)
	if err != nil {
		return "Balance unavailable: " + html.EscapeString(err.Error())
	}

	if len(balances) == 0 {
		return "Wallet is empty"
	}

	var sb strings.Builder

	sb.WriteString("<b>Balance</b>")

	for _, balance := range balances {
		fmt.Fprintf(
			&sb,
			"\n%s %s (%s)",
			balance.Balance.String(),
			html.EscapeString(balance.Unit),
			html.EscapeString(balance.Chain),
		)
	}

	return sb.String()
}

func (h *Handler) PurchasesText(ctx context.Context, limit int) string {
	if h.journal == nil {
		return "Purchase journal is disabled"
	}

	attempts, err := h.journal.ListRecent(ctx, limit)
	if err != nil {
		return "Journal unavailable: " + html.EscapeString(err.Error())
	}

	if len(attempts) == 0 {
		return "No buy attempts yet"
	}

	var sb strings.Builder

	sb.WriteString("<b>Recent attempts</b>")

	for _, attempt := range attempts {
		fmt.Fprintf(
			&sb,
			"\n%s %s #%s %s",
			attempt.AttemptedAt.UTC().Format(time.DateTime),
			attempt.Kind,
			attempt.ItemID,
			html.EscapeString(attempt.Name),
		)

		if !attempt.Price.IsZero() {
			fmt.Fprintf(&sb, " @ %s", attempt.Price.String())
		}
	}

	return sb.String()
}

func parsePurchasesLimit(text string) int {
	parts := strings.Fields(text)
	if len(parts) < 2 { //nolint:mnd
		return defaultPurchasesLimit
	}

	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 1 {
		return defaultPurchasesLimit
	}

	return min(n, maxPurchasesLimit)
}

func sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
