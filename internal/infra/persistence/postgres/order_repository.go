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
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order together with its lines.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Lines {
		order.Lines[i].ID = orderM.Lines[i].ID
	}

	return nil
}

// FindOrderByID retrieves an order from the primary so a just-placed order is visible.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Lines", byPosition).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateOrderStatus moves an order to a new status.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:              data.ID,
		SessionID:       data.SessionID,
		RestaurantID:    data.RestaurantID,
		Status:          entity.OrderStatus(data.Status),
		DeliveryMode:    entity.DeliveryMode(data.DeliveryMode),
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		DeliveryAddress: data.DeliveryAddress,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		Note:            data.Note,
		Subtotal:        data.Subtotal,
		DeliveryFee:     data.DeliveryFee,
		Tax:             data.Tax,
		Total:           data.Total,
		Lines:           make([]entity.OrderLine, 0, len(data.Lines)),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	for _, line := range data.Lines {
		order.Lines = append(order.Lines, entity.OrderLine{
			ID:            line.ID,
			LineID:        line.LineID,
			MenuItemID:    line.MenuItemID,
			Name:          line.Name,
			VariationName: line.VariationName,
			AddOnNames:    line.AddOnNames,
			Note:          line.Note,
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
			LineTotal:     line.LineTotal,
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderID := data.ID
	if orderID == uuid.Nil {
		orderID = uuid.New()
	}

	orderM := &model.OrderModel{
		ID:              orderID,
		SessionID:       data.SessionID,
		RestaurantID:    data.RestaurantID,
		Status:          string(data.Status),
		DeliveryMode:    string(data.DeliveryMode),
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		DeliveryAddress: data.DeliveryAddress,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		Note:            data.Note,
		Subtotal:        data.Subtotal,
		DeliveryFee:     data.DeliveryFee,
		Tax:             data.Tax,
		Total:           data.Total,
		Lines:           make([]model.OrderLineModel, 0, len(data.Lines)),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	for i, line := range data.Lines {
		lineID := line.ID
		if lineID == uuid.Nil {
			lineID = uuid.New()
		}
		orderM.Lines = append(orderM.Lines, model.OrderLineModel{
			ID:            lineID,
			OrderID:       orderID,
			Position:      i,
			LineID:        line.LineID,
			MenuItemID:    line.MenuItemID,
			Name:          line.Name,
			VariationName: line.VariationName,
			AddOnNames:    line.AddOnNames,
			Note:          line.Note,
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
			LineTotal:     line.LineTotal,
		})
	}

	return orderM
}
