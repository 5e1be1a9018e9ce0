package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AllowChat drops every update that does not come from chatID.
func AllowChat(chatID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if update.Message == nil || update.Message.Chat.ID != chatID {
			return nil
		}

		return ctx.Next(update)
	}
}
