package postgres

import (
	"context"

	"platter/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the catalog and order tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
