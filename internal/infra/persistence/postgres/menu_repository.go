package postgres

import (
	"context"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{
		db: db,
	}
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// ListMenuItems returns a restaurant's menu ordered by category and name.
func (repo *menuRepository) ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Variations", byPosition).
		Preload("AddOns", byPosition).
		Where("restaurant_id = ?", restaurantID).
		Order("category ASC").
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// FindMenuItemByID retrieves a menu item by its unique ID.
func (repo *menuRepository) FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Variations", byPosition).
		Preload("AddOns", byPosition).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	return toMenuItemDomain(&itemM), nil
}

// SaveMenuItem upserts the item and replaces its variations and add-ons.
func (repo *menuRepository) SaveMenuItem(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)
	variations := itemM.Variations
	addOns := itemM.AddOns
	itemM.Variations = nil
	itemM.AddOns = nil

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if itemM.ID == uuid.Nil {
			if err := tx.Create(itemM).Error; err != nil {
				return err
			}
		} else if err := tx.Save(itemM).Error; err != nil {
			return err
		}

		if err := tx.Where("menu_item_id = ?", itemM.ID).Delete(&model.MenuVariationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", itemM.ID).Delete(&model.MenuAddOnModel{}).Error; err != nil {
			return err
		}

		for i := range variations {
			variations[i].MenuItemID = itemM.ID
		}
		for i := range addOns {
			addOns[i].MenuItemID = itemM.ID
		}

		if len(variations) > 0 {
			if err := tx.Create(&variations).Error; err != nil {
				return err
			}
		}
		if len(addOns) > 0 {
			if err := tx.Create(&addOns).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("menu item references an unknown restaurant")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required menu item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save menu item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt
	for i := range variations {
		item.Variations[i].ID = variations[i].ID
	}
	for i := range addOns {
		item.AddOns[i].ID = addOns[i].ID
	}

	return nil
}

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	item := &entity.MenuItem{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		ImageURL:     data.ImageURL,
		IsAvailable:  data.IsAvailable,
		Variations:   make([]entity.Variation, 0, len(data.Variations)),
		AddOns:       make([]entity.AddOn, 0, len(data.AddOns)),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	for _, v := range data.Variations {
		item.Variations = append(item.Variations, entity.Variation{ID: v.ID, Name: v.Name, Price: v.Price})
	}
	for _, a := range data.AddOns {
		item.AddOns = append(item.AddOns, entity.AddOn{ID: a.ID, Name: a.Name, Price: a.Price})
	}

	return item
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	itemM := &model.MenuItemModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		ImageURL:     data.ImageURL,
		IsAvailable:  data.IsAvailable,
		Variations:   make([]model.MenuVariationModel, 0, len(data.Variations)),
		AddOns:       make([]model.MenuAddOnModel, 0, len(data.AddOns)),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	for i, v := range data.Variations {
		itemM.Variations = append(itemM.Variations, model.MenuVariationModel{
			ID: v.ID, MenuItemID: data.ID, Name: v.Name, Price: v.Price, Position: i,
		})
	}
	for i, a := range data.AddOns {
		itemM.AddOns = append(itemM.AddOns, model.MenuAddOnModel{
			ID: a.ID, MenuItemID: data.ID, Name: a.Name, Price: a.Price, Position: i,
		})
	}

	return itemM
}
