package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "platter/internal/delivery/context"
	"platter/internal/domain/constants"
	"platter/internal/domain/entity"
	"platter/internal/domain/repository"
	"platter/internal/domain/service"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// kitchenService implements the KitchenUsecase interface.
type kitchenService struct {
	orderRepo       repository.OrderRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewKitchenService creates a new kitchen service instance
func NewKitchenService(orderRepo repository.OrderRepository, notificationSvc service.NotificationService, logger *slog.Logger) usecase.KitchenUsecase {
	return &kitchenService{
		orderRepo:       orderRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (srv *kitchenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ForwardOrder alerts the restaurant's devices and marks the order as sent.
// Malformed events and unknown orders are not retryable; storage and
// messaging failures are.
func (srv *kitchenService) ForwardOrder(ctx context.Context, event *service.OrderPlacedEvent) error {
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return errors.Wrapf(err, "invalid order id %q", event.OrderID)
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.WithStack(err)
		}

		return usecase.NewRetryableError(errors.WithStack(err))
	}

	if order.Status == entity.OrderStatusSentToKitchen {
		srv.log(ctx).Info("[Kitchen] Order already forwarded, skipping",
			slog.String("order_id", event.OrderID),
		)

		return nil
	}

	topic := constants.RestaurantTopicPrefix + order.RestaurantID.String()
	title, body, data := kitchenAlert(event)

	if err := srv.notificationSvc.SendTopicNotification(ctx, topic, title, body, data); err != nil {
		return usecase.NewRetryableError(errors.Wrap(err, "failed to alert restaurant"))
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, orderID, entity.OrderStatusSentToKitchen); err != nil {
		return usecase.NewRetryableError(errors.Wrap(err, "failed to mark order as sent"))
	}

	srv.log(ctx).Info("[Kitchen] Order forwarded",
		slog.String("order_id", event.OrderID),
		slog.String("topic", topic),
	)

	return nil
}

// kitchenAlert builds the push notification shown on the restaurant tablet.
func kitchenAlert(event *service.OrderPlacedEvent) (title, body string, data map[string]string) {
	items := 0
	parts := make([]string, 0, len(event.Lines))
	for _, line := range event.Lines {
		items += line.Quantity
		name := line.Name
		if line.VariationName != "" {
			name = fmt.Sprintf("%s (%s)", name, line.VariationName)
		}
		parts = append(parts, fmt.Sprintf("%d× %s", line.Quantity, name))
	}

	title = fmt.Sprintf("New %s order: %d items", event.DeliveryMode, items)
	body = strings.Join(parts, ", ")

	data = map[string]string{
		"order_id":      event.OrderID,
		"restaurant_id": event.RestaurantID,
		"delivery_mode": event.DeliveryMode,
		"customer_name": event.CustomerName,
		"total":         event.Total,
		"placed_at":     event.PlacedAt,
	}

	return title, body, data
}
