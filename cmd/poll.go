package main

import (
	"context"
	"encoding/json"

	"order-notifier/cmd/bootstrap"
	resdto "order-notifier/internal/handler/dto/response"
	"order-notifier/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func pollOnceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "poll-once",
		Short: "Run a single poll tick and print the result",
		Long: `Run one tick against the commerce API: list recently paid orders, notify
the unseen ones and print what happened. Ids recorded in the ledgers are
treated as already seen when LEDGER_SEED_SEEN is set.`,
		RunE: runPollOnce,
	}
}

func runPollOnce(cmd *cobra.Command, args []string) error {
	var poller usecase.Poller
	app := fx.New(
		bootstrap.Module,
		fx.NopLogger,
		fx.Populate(&poller),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	result := poller.Tick(ctx)
	status, err := resdto.FromTickResult(result)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(status); err != nil {
		return err
	}
	return result.Err
}
