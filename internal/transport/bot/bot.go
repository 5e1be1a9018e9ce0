package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"ahoy_market/internal/transport/bot/handler"
	"ahoy_market/pkg/logx"
)

const longPollingTimeout = 60

// Bot answers operator commands in the configured chat.
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler
}

func New(ctx context.Context, token string, chatID int64, h *handler.Handler) (*Bot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	updates, err := bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}

	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("create bot handler: %w", err)
	}

	h.RegisterRoutes(botHandler, chatID)

	return &Bot{
		bot:        bot,
		botHandler: botHandler,
	}, nil
}

// Run handles updates until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("bot handler start", logx.Error(err))
		}
	}()

	logger(ctx).Info("command bot started")

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		logger(ctx).Error("bot handler stop", logx.Error(err))
	}

	logger(ctx).Info("command bot stopped")

	return nil
}
