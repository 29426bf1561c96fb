package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"portfolio-assistant/internal/app"
	"portfolio-assistant/internal/config"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg, err := config.Load(nil)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(app.NewLogger(cfg.LogLevel))

	// ---- Clients ----
	params, err := app.ParamStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to create parameter store client", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	a, err := app.New(cfg, params)
	if err != nil {
		slog.Error("failed to wire services", "err", err)
		os.Exit(1)
	}

	lambda.Start(a.Handler.Handle)
}
