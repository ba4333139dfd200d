// Package cmd provides the obligation_generator command.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/finance_tracker/migrations"
	"github.com/SscSPs/finance_tracker/pkg/database"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var v = viper.New()

// rootCmd generates one month for one or every owner.
var rootCmd = &cobra.Command{
	Use:   "obligation_generator",
	Short: "Materialize a month of recurring obligations into transactions",
	Long: `obligation_generator creates the transactions for every recurring obligation
active in a month. It is meant to be run by an external scheduler; running it
again for the same month creates nothing new.

Example:
  obligation_generator --month 2025-02
  obligation_generator --month 2025-02 --owner 7d0c...`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().String("month", domain.CurrentMonth().String(), "month to generate (YYYY-MM)")
	rootCmd.Flags().String("owner", "", "generate for a single owner; empty means every owner with obligations")
	rootCmd.Flags().Bool("migrate", false, "apply pending database migrations before generating")
	_ = v.BindPFlags(rootCmd.Flags())
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	month, err := domain.ParseMonth(v.GetString("month"))
	if err != nil {
		logger.Error("Invalid month", slog.String("error", err.Error()))
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = middleware.WithLogger(ctx, logger.With(slog.String("month", month.String())))

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return err
	}
	defer database.ClosePgxPool(dbPool)

	if v.GetBool("migrate") {
		if _, err := migrations.Run(cfg.DatabaseURL); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			return err
		}
	}

	container := services.NewServiceContainer(pgsql.NewRepositoryProvider(dbPool))

	owners := []string{v.GetString("owner")}
	if owners[0] == "" {
		owners, err = container.Generation.ListGenerationOwners(ctx)
		if err != nil {
			return err
		}
	}
	logger.Info("Starting generation", slog.String("month", month.String()), slog.Int("owners", len(owners)))

	failedOwners, err := generateAll(ctx, container.Generation.GenerateForMonth, owners, month, cfg.GenerationConcurrency)
	if err != nil {
		logger.Error("Generation aborted", slog.String("error", err.Error()))
		return err
	}
	if len(failedOwners) > 0 {
		err := fmt.Errorf("%d owner(s) had obligations that could not be generated: %v", len(failedOwners), failedOwners)
		logger.Error("Generation finished with failures", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Generation complete", slog.String("month", month.String()))
	return nil
}

type generateFunc func(ctx context.Context, ownerID string, month string) (*domain.GenerationReport, error)

// generateAll fans out over owners, at most limit at a time. Each owner is handled by exactly
// one goroutine. It returns the owners whose report listed failures.
func generateAll(ctx context.Context, generate generateFunc, owners []string, month domain.Month, limit int) ([]string, error) {
	var (
		mu           sync.Mutex
		failedOwners []string
	)
	logger := middleware.GetLoggerFromCtx(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, owner := range owners {
		owner := owner // per-iteration copy; go.mod targets go1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			report, err := generate(gctx, owner, month.String())
			if err != nil {
				return fmt.Errorf("owner %s: %w", owner, err)
			}
			logger.Info("Owner generated",
				slog.String("owner_id", owner),
				slog.Int("generated", len(report.Generated)),
				slog.Int("skipped", len(report.Skipped)),
				slog.Int("failed", len(report.Failed)))
			if report.HasFailures() {
				mu.Lock()
				failedOwners = append(failedOwners, owner)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return failedOwners, nil
}
