package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"order-notifier/cmd/bootstrap"
	"order-notifier/internal/domain/token"
	resdto "order-notifier/internal/handler/dto/response"
	"order-notifier/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	tokenWatch    bool
	tokenInterval time.Duration
	tokenReveal   bool
)

type tokenOutput struct {
	AccessToken string             `json:"access_token"`
	Status      resdto.TokenStatus `json:"status"`
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a commerce API token and print its status",
		Long: `Request a fresh bearer token with the configured client credentials.

With --watch the token is re-checked every --interval and refreshed once it
enters the refresh margin, until interrupted.`,
		RunE: runToken,
	}

	cmd.Flags().BoolVarP(&tokenWatch, "watch", "w", false, "keep the token fresh until interrupted")
	cmd.Flags().DurationVar(&tokenInterval, "interval", time.Minute, "check interval for --watch")
	cmd.Flags().BoolVar(&tokenReveal, "reveal", false, "print the full access token")

	return cmd
}

func runToken(cmd *cobra.Command, args []string) error {
	var tokens usecase.TokenProvider
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(&tokens),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	tok, err := tokens.Refresh(ctx)
	if err != nil {
		return err
	}
	if err := printToken(cmd, tok, tokens.Snapshot()); err != nil {
		return err
	}
	if !tokenWatch {
		return nil
	}

	ticker := time.NewTicker(tokenInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		prev := tokens.Snapshot()
		tok, err := tokens.GetValidToken(ctx)
		if err != nil {
			// the next tick tries again
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			continue
		}
		snapshot := tokens.Snapshot()
		if snapshot.Refreshes == prev.Refreshes && snapshot.Failures == prev.Failures {
			continue
		}
		if err := printToken(cmd, tok, snapshot); err != nil {
			return err
		}
	}
}

func printToken(cmd *cobra.Command, tok token.Token, snapshot usecase.TokenSnapshot) error {
	status, err := resdto.FromTokenSnapshot(snapshot)
	if err != nil {
		return err
	}
	out := tokenOutput{
		AccessToken: maskToken(tok.AccessToken()),
		Status:      status,
	}
	if tokenReveal {
		out.AccessToken = tok.AccessToken()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func maskToken(s string) string {
	const visible = 6
	if len(s) <= visible {
		return strings.Repeat("*", len(s))
	}
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}
