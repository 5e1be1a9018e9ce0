package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/pkg/logx"
)

type messageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// TelegramBot reports buy attempts to a chat.
type TelegramBot struct {
	bot    messageSender
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Run sends every attempted purchase read from outcomes until ctx is done or
// the channel is closed. Other outcomes are drained silently.
func (b *TelegramBot) Run(ctx context.Context, outcomes <-chan entity.Outcome) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case outcome, ok := <-outcomes:
			if !ok {
				return nil
			}

			if !outcome.Kind.IsAttempt() {
				continue
			}

			if err := b.SendOutcome(ctx, outcome); err != nil {
				logger(ctx).Error(
					"failed to send outcome",
					slog.String(logx.FieldItemID, outcome.ItemID.String()),
					logx.Error(err),
				)
			}
		}
	}
}

func (b *TelegramBot) SendOutcome(ctx context.Context, outcome entity.Outcome) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		FormatOutcome(outcome),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText sends a plain text message.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	if _, err := b.bot.SendMessage(ctx, tu.Message(tu.ID(b.chatID), text)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func FormatOutcome(outcome entity.Outcome) string {
	switch outcome.Kind {
	case entity.OutcomePurchased:
		return fmt.Sprintf(
			"✅ <b>Bought</b> %s (#%s)\n"+
				"💰 <b>Price:</b> %s\n"+
				"📊 <b>Threshold:</b> %s\n"+
				"⭐ <b>Level:</b> %d\n"+
				"🧾 <code>%s</code>",
			html.EscapeString(outcome.Name),
			outcome.ItemID,
			outcome.Price.String(),
			outcome.Threshold.String(),
			outcome.Level,
			html.EscapeString(outcome.Confirmation),
		)
	case entity.OutcomePurchaseFailed:
		cause := "unknown error"
		if outcome.Err != nil {
			cause = outcome.Err.Error()
		}

		return fmt.Sprintf(
			"❌ <b>Buy failed</b> %s (#%s)\n"+
				"💰 <b>Price:</b> %s\n"+
				"⚠️ %s",
			html.EscapeString(outcome.Name),
			outcome.ItemID,
			outcome.Price.String(),
			html.EscapeString(cause),
		)
	default:
		return fmt.Sprintf("%s (#%s): %s", html.EscapeString(outcome.Name), outcome.ItemID, outcome.Kind)
	}
}
