package main

import (
	"context"
	"fmt"
	"log/slog"

	"platter/internal/domain/entity"
	"platter/internal/domain/repository"
	"platter/internal/errors"

	"github.com/spf13/cobra"
)

var (
	importFile   string
	importDryRun bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Upsert restaurants and menus from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		mf, err := loadMenuFile(importFile)
		if err != nil {
			return err
		}

		if importDryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d restaurants\n", importFile, len(mf.Restaurants))

			return nil
		}

		return runWithDependencies(cmd.Context(), func(ctx context.Context, deps dependencies) error {
			report, err := newCatalogImporter(deps.RestaurantRepo, deps.MenuRepo, deps.Logger).Import(ctx, mf)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), `
=== Import Report ===
Restaurants created: %d
Restaurants updated: %d
Items created:       %d
Items updated:       %d
Items retired:       %d
=====================
`, report.RestaurantsCreated, report.RestaurantsUpdated,
				report.ItemsCreated, report.ItemsUpdated, report.ItemsRetired)

			return nil
		})
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "menu YAML file path (required)")
	_ = importCmd.MarkFlagRequired("file")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "validate the file without touching the database")
	rootCmd.AddCommand(importCmd)
}

type importReport struct {
	RestaurantsCreated int
	RestaurantsUpdated int
	ItemsCreated       int
	ItemsUpdated       int
	ItemsRetired       int
}

type catalogImporter struct {
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuRepository
	logger         *slog.Logger
}

func newCatalogImporter(
	restaurantRepo repository.RestaurantRepository,
	menuRepo repository.MenuRepository,
	logger *slog.Logger,
) *catalogImporter {
	return &catalogImporter{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
		logger:         logger,
	}
}

// Import upserts restaurants by slug and menu items by name.
// Items missing from the file are kept but marked unavailable.
func (ci *catalogImporter) Import(ctx context.Context, mf *menuFile) (importReport, error) {
	var report importReport

	for _, doc := range mf.Restaurants {
		restaurant, err := ci.restaurantRepo.FindRestaurantBySlug(ctx, doc.Slug)
		switch {
		case errors.Is(err, repository.ErrRestaurantNotFound):
			restaurant = &entity.Restaurant{}
			report.RestaurantsCreated++
		case err != nil:
			return report, errors.Wrapf(err, "failed to look up restaurant %s", doc.Slug)
		default:
			report.RestaurantsUpdated++
		}

		doc.apply(restaurant)
		if err := ci.restaurantRepo.SaveRestaurant(ctx, restaurant); err != nil {
			return report, errors.Wrapf(err, "failed to save restaurant %s", doc.Slug)
		}

		if err := ci.importMenu(ctx, restaurant, doc.Menu, &report); err != nil {
			return report, err
		}

		ci.logger.Info("Restaurant imported",
			slog.String("slug", restaurant.Slug),
			slog.String("restaurant_id", restaurant.ID.String()),
			slog.Int("menu_items", len(doc.Menu)),
		)
	}

	return report, nil
}

func (ci *catalogImporter) importMenu(ctx context.Context, restaurant *entity.Restaurant, docs []menuItemDoc, report *importReport) error {
	existing, err := ci.menuRepo.ListMenuItems(ctx, restaurant.ID)
	if err != nil {
		return errors.Wrapf(err, "failed to list menu of %s", restaurant.Slug)
	}

	byName := make(map[string]*entity.MenuItem, len(existing))
	for _, item := range existing {
		byName[menuItemKey(item.Name)] = item
	}

	for _, doc := range docs {
		key := menuItemKey(doc.Name)
		item, found := byName[key]
		if found {
			delete(byName, key)
			report.ItemsUpdated++
		} else {
			item = &entity.MenuItem{RestaurantID: restaurant.ID}
			report.ItemsCreated++
		}

		doc.apply(item)
		if err := ci.menuRepo.SaveMenuItem(ctx, item); err != nil {
			return errors.Wrapf(err, "failed to save menu item %q of %s", doc.Name, restaurant.Slug)
		}
	}

	for _, item := range byName {
		if !item.IsAvailable {
			continue
		}
		item.IsAvailable = false
		if err := ci.menuRepo.SaveMenuItem(ctx, item); err != nil {
			return errors.Wrapf(err, "failed to retire menu item %q of %s", item.Name, restaurant.Slug)
		}
		report.ItemsRetired++
	}

	return nil
}
