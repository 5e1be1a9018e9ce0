package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"ahoy_market/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, chatID int64) {
	group := bh.Group(th.AnyMessage())
	group.Use(middleware.AllowChat(chatID))

	group.HandleMessage(h.OnStart, th.CommandEqual("start"))
	group.HandleMessage(h.OnStatus, th.CommandEqual("status"))
	group.HandleMessage(h.OnBalance, th.CommandEqual("balance"))
	group.HandleMessage(h.OnPurchases, th.CommandEqual("purchases"))
}
