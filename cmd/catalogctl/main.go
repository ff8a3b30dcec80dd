package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"platter/config"
	"platter/internal/domain/repository"
	logs "platter/internal/infra/log"
	"platter/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const commandTimeout = 5 * time.Minute

var rootCmd = &cobra.Command{
	Use:           "catalogctl",
	Short:         "Manage the restaurant catalog database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

type dependencies struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	DB             *gorm.DB
	RestaurantRepo repository.RestaurantRepository
	MenuRepo       repository.MenuRepository
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("catalogctl failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// runWithDependencies starts the database graph, runs fn and stops the graph again.
func runWithDependencies(parent context.Context, fn func(ctx context.Context, deps dependencies) error) error {
	var deps dependencies

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewRestaurantRepository,
			postgres.NewMenuRepository,
		),
		fx.Invoke(func(d dependencies) {
			deps = d
		}),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	ctx, cancel := context.WithTimeout(parent, commandTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start dependencies")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Warn("Failed to stop dependencies", slog.Any("error", err))
		}
	}()

	return fn(ctx, deps)
}
