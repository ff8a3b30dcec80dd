package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"platter/config"
	deliverycontext "platter/internal/delivery/context"
	"platter/internal/domain/cart"
	"platter/internal/domain/constants"
	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/domain/service"
	"platter/internal/usecase"
	"platter/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Config         *config.Config
	CartRepo       repository.CartRepository
	RestaurantRepo repository.RestaurantRepository
	OrderRepo      repository.OrderRepository
	TxManager      repository.TransactionManager
	Publisher      service.EventPublisher
	QRCodeSvc      service.QRCodeService
	Logger         *slog.Logger
}

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cartRepo       repository.CartRepository
	restaurantRepo repository.RestaurantRepository
	orderRepo      repository.OrderRepository
	txManager      repository.TransactionManager
	publisher      service.EventPublisher
	qrcodeSvc      service.QRCodeService
	policy         entity.PricingPolicy
	logger         *slog.Logger
	now            func() time.Time
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:       params.CartRepo,
		restaurantRepo: params.RestaurantRepo,
		orderRepo:      params.OrderRepo,
		txManager:      params.TxManager,
		publisher:      params.Publisher,
		qrcodeSvc:      params.QRCodeSvc,
		policy: entity.PricingPolicy{
			BaseDeliveryFee: params.Config.Pricing.BaseDeliveryFee,
			TaxRate:         params.Config.Pricing.TaxRate,
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout places an order for the session's cart.
func (srv *checkoutService) Checkout(ctx context.Context, sessionID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	if !input.Mode.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown delivery mode %q", input.Mode)
	}

	store, ok := srv.cartRepo.Find(ctx, sessionID)
	if !ok {
		return nil, domainerrors.ErrCartEmpty
	}

	// Held until the placed quantities leave the cart, so a second checkout
	// of the same session sees what is left.
	unlock := store.LockCheckout()
	defer unlock()

	lines := store.Snapshot()
	if len(lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	restaurant, err := srv.findRestaurant(ctx, lines[0].RestaurantID)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsOpen {
		return nil, domainerrors.ErrRestaurantClosed
	}

	if input.Mode == entity.DeliveryModeDelivery {
		if err := checkDeliveryRange(restaurant, input); err != nil {
			return nil, err
		}
	}

	totals, err := cart.ComputeTotals(lines, input.Mode, srv.policy)
	if err != nil {
		srv.log(ctx).Error("Cart failed pricing integrity check",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrPricingIntegrity, err.Error())
	}

	order := srv.newOrder(sessionID, restaurant.ID, lines, totals.Rounded(), input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOrderRepository().CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Only the placed quantities leave the cart; lines added meanwhile stay.
	for _, line := range lines {
		store.AdjustQuantity(line.LineID, -line.Quantity)
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("restaurant_id", restaurant.ID.String()),
		slog.String("mode", string(order.DeliveryMode)),
		slog.String("total", util.FormatPlain(order.Total)),
	)

	if err := srv.publisher.PublishOrderPlaced(ctx, newOrderPlacedEvent(ctx, order)); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}

	return order, nil
}

func (srv *checkoutService) findRestaurant(ctx context.Context, rawID string) (*entity.Restaurant, error) {
	restaurantID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrRestaurantNotFound, "invalid restaurant id %q", rawID)
	}

	restaurant, err := srv.restaurantRepo.FindRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, fmt.Errorf("failed to find restaurant: %w", err)
	}

	return restaurant, nil
}

// checkDeliveryRange compares the great-circle distance to the restaurant
// against its delivery radius. A zero radius means the restaurant does not deliver.
func checkDeliveryRange(restaurant *entity.Restaurant, input *usecase.CheckoutInput) error {
	if input.Latitude == nil || input.Longitude == nil || strings.TrimSpace(input.DeliveryAddress) == "" {
		return domainerrors.ErrDeliveryLocationRequired
	}

	from := orb.Point{restaurant.Longitude, restaurant.Latitude}
	to := orb.Point{*input.Longitude, *input.Latitude}
	distanceKm := geo.DistanceHaversine(from, to) / 1000

	if restaurant.DeliveryRadiusKm <= 0 || distanceKm > restaurant.DeliveryRadiusKm {
		return errors.Wrapf(domainerrors.ErrDeliveryOutOfRange,
			"%.2f km away, restaurant delivers within %.2f km", distanceKm, restaurant.DeliveryRadiusKm)
	}

	return nil
}

func (srv *checkoutService) newOrder(sessionID, restaurantID uuid.UUID, lines []entity.LineItem, totals entity.PricingResult, input *usecase.CheckoutInput) *entity.Order {
	now := srv.now()
	order := &entity.Order{
		ID:            uuid.New(),
		SessionID:     sessionID,
		RestaurantID:  restaurantID,
		Status:        entity.OrderStatusPlaced,
		DeliveryMode:  input.Mode,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		Note:          truncateRunes(strings.TrimSpace(input.Note), constants.MaxNoteLength),
		Subtotal:      totals.Subtotal,
		DeliveryFee:   totals.DeliveryFee,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Lines:         make([]entity.OrderLine, 0, len(lines)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if input.Mode == entity.DeliveryModeDelivery {
		order.DeliveryAddress = strings.TrimSpace(input.DeliveryAddress)
		order.Latitude = input.Latitude
		order.Longitude = input.Longitude
	}

	for _, line := range lines {
		addOnNames := make([]string, 0, len(line.AddOns))
		for _, addOn := range line.AddOns {
			addOnNames = append(addOnNames, addOn.Name)
		}
		order.Lines = append(order.Lines, entity.OrderLine{
			ID:            uuid.New(),
			LineID:        line.LineID,
			MenuItemID:    line.ProductID,
			Name:          line.Name,
			VariationName: line.VariationName,
			AddOnNames:    addOnNames,
			Note:          line.Note,
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
			LineTotal:     line.LineTotal().Round(entity.MinorUnitPlaces),
		})
	}

	return order
}

func newOrderPlacedEvent(ctx context.Context, order *entity.Order) *service.OrderPlacedEvent {
	event := &service.OrderPlacedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:      order.ID.String(),
		RestaurantID: order.RestaurantID.String(),
		DeliveryMode: string(order.DeliveryMode),
		CustomerName: order.CustomerName,
		Total:        util.FormatPlain(order.Total),
		Lines:        make([]service.OrderPlacedLine, 0, len(order.Lines)),
		PlacedAt:     order.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, line := range order.Lines {
		event.Lines = append(event.Lines, service.OrderPlacedLine{
			Name:          line.Name,
			VariationName: line.VariationName,
			AddOnNames:    line.AddOnNames,
			Note:          line.Note,
			Quantity:      line.Quantity,
		})
	}

	return event
}

// GetOrder returns an order placed by the session.
func (srv *checkoutService) GetOrder(ctx context.Context, sessionID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	// Another session's order is indistinguishable from a missing one.
	if order.SessionID != sessionID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// PickupQR renders the QR code for a pickup order as PNG.
func (srv *checkoutService) PickupQR(ctx context.Context, sessionID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, sessionID, orderID)
	if err != nil {
		return nil, err
	}

	if order.DeliveryMode != entity.DeliveryModePickup {
		return nil, domainerrors.ErrPickupOnly
	}

	png, err := srv.qrcodeSvc.GeneratePickupQR(order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate pickup QR: %w", err)
	}

	return png, nil
}
