package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ahoy_market/internal/application"
	"ahoy_market/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var arg string
	if len(os.Args) > 1 {
		arg = os.Args[1]
	}

	command, err := application.ParseCommand(arg)
	if err != nil {
		slog.Error("usage: ahoy-market [scan|scan-once|analyze|realtime]", logx.Error(err))
		os.Exit(2) //nolint:mnd
	}

	app, ctx, err := application.New(ctx)
	if err != nil {
		slog.Error("application init failed", logx.Error(err))
		os.Exit(1)
	}

	if err := app.Run(ctx, command); err != nil {
		slog.Error("application failed", slog.String("command", string(command)), logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	slog.Info("application stopped")
}
