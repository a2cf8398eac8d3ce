package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ougirez/workforce-planner/internal/api"
	"github.com/ougirez/workforce-planner/internal/pkg/config"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
	"github.com/ougirez/workforce-planner/internal/pkg/logger"
	"github.com/ougirez/workforce-planner/internal/pkg/store"
	"github.com/ougirez/workforce-planner/internal/pkg/store/xpgx"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the planning HTTP API against the warehouse",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer logger.Sync()

	engine, err := config.NewEngine()
	if err != nil {
		return fmt.Errorf("config.NewEngine: %w", err)
	}

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperDatabaseURLKey), viper.GetUint64(constants.ViperDatabaseRetriesKey))
	if err != nil {
		return fmt.Errorf("xpgx.NewPool: %w", err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool), engine)
	if err != nil {
		return fmt.Errorf("api.NewAPIService: %w", err)
	}

	go svc.Serve(viper.GetString(constants.ViperServerAddrKey))

	<-ctx.Done()
	logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return svc.Shutdown(shutdownCtx)
}
