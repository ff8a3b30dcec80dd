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

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// ListRestaurants returns restaurants ordered by name.
func (repo *restaurantRepository) ListRestaurants(ctx context.Context, openOnly bool) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	query := repo.db.WithContext(ctx)
	if openOnly {
		query = query.Where("is_open = ?", true)
	}

	if err := query.Order("name ASC").Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// FindRestaurantByID retrieves a restaurant by its unique ID.
func (repo *restaurantRepository) FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindRestaurantBySlug retrieves a restaurant by its slug.
func (repo *restaurantRepository) FindRestaurantBySlug(ctx context.Context, slug string) (*entity.Restaurant, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *restaurantRepository) findOne(ctx context.Context, query string, arg any) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// SaveRestaurant inserts the restaurant or updates it when the ID exists.
func (repo *restaurantRepository) SaveRestaurant(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	var err error
	if restaurantM.ID == uuid.Nil {
		err = repo.db.WithContext(ctx).Create(restaurantM).Error
	} else {
		err = repo.db.WithContext(ctx).Save(restaurantM).Error
	}
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRestaurant
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:               data.ID,
		Slug:             data.Slug,
		Name:             data.Name,
		Cuisine:          data.Cuisine,
		Address:          data.Address,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		DeliveryRadiusKm: data.DeliveryRadiusKm,
		IsOpen:           data.IsOpen,
		ImageURL:         data.ImageURL,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:               data.ID,
		Slug:             data.Slug,
		Name:             data.Name,
		Cuisine:          data.Cuisine,
		Address:          data.Address,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		DeliveryRadiusKm: data.DeliveryRadiusKm,
		IsOpen:           data.IsOpen,
		ImageURL:         data.ImageURL,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
