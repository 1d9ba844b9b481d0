package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var Version = "dev"

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           order-notifier ops API
// @version         1.0
// @description     Health, readiness, status and metrics of the order polling service.

// @BasePath  /
// @schemes http
func main() {
	rootCmd := &cobra.Command{
		Use:     "order-notifier",
		Short:   "Poll the commerce API for paid orders and fan out notifications",
		Version: Version,
		// no subcommand means run
		RunE:          func(cmd *cobra.Command, args []string) error { return runApp() },
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(pollOnceCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
