package impl

import (
	"context"
	"fmt"
	"log/slog"

	"platter/config"
	deliverycontext "platter/internal/delivery/context"
	"platter/internal/domain/cart"
	"platter/internal/domain/constants"
	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/usecase"
	"platter/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const descriptionSummaryLength = 120

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Config   *config.Config
	CartRepo repository.CartRepository
	MenuRepo repository.MenuRepository
	Logger   *slog.Logger
}

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
	policy   entity.PricingPolicy
	currency config.CurrencyConfig
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	pricing := params.Config.Pricing

	return &cartService{
		cartRepo: params.CartRepo,
		menuRepo: params.MenuRepo,
		policy: entity.PricingPolicy{
			BaseDeliveryFee: pricing.BaseDeliveryFee,
			TaxRate:         pricing.TaxRate,
		},
		currency: pricing.Currency,
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem resolves the product from the catalog and adds it to the cart.
func (srv *cartService) AddItem(ctx context.Context, sessionID uuid.UUID, input *usecase.AddItemInput) (*entity.LineItem, error) {
	if input.Quantity <= 0 || input.Quantity > constants.MaxLineQuantity {
		return nil, errors.Wrapf(domainerrors.ErrCartLineInvalid, "quantity must be between 1 and %d", constants.MaxLineQuantity)
	}

	item, err := srv.menuRepo.FindMenuItemByID(ctx, input.MenuItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}

	if !item.IsAvailable {
		return nil, domainerrors.ErrItemUnavailable
	}

	line, err := buildLine(item, input)
	if err != nil {
		return nil, err
	}

	store := srv.cartRepo.GetOrCreate(ctx, sessionID)
	stored, err := store.Add(line)
	if err != nil {
		return nil, mapStoreError(err)
	}

	srv.log(ctx).Debug("Cart line added",
		slog.String("session_id", sessionID.String()),
		slog.String("line_id", line.LineID),
		slog.Int("quantity", stored.Quantity),
	)

	return &stored, nil
}

// buildLine prices the selected configuration and derives its line ID.
func buildLine(item *entity.MenuItem, input *usecase.AddItemInput) (entity.LineItem, error) {
	variation, err := selectVariation(item, input.VariationID)
	if err != nil {
		return entity.LineItem{}, err
	}

	rawIDs := make([]string, 0, len(input.AddOnIDs))
	for _, id := range input.AddOnIDs {
		rawIDs = append(rawIDs, id.String())
	}
	addOnIDs := cart.NormalizeAddOnIDs(rawIDs)

	unitPrice := variation.Price
	addOns := make([]entity.SelectedAddOn, 0, len(addOnIDs))
	for _, raw := range addOnIDs {
		addOn, ok := item.FindAddOn(uuid.MustParse(raw))
		if !ok {
			return entity.LineItem{}, errors.Wrapf(domainerrors.ErrAddOnNotFound, "add-on %s", raw)
		}
		unitPrice = unitPrice.Add(addOn.Price)
		addOns = append(addOns, entity.SelectedAddOn{
			ID:    raw,
			Name:  addOn.Name,
			Price: addOn.Price,
		})
	}

	note := truncateRunes(cart.NormalizeNote(input.Note), constants.MaxNoteLength)
	productID := item.ID.String()
	variationID := variation.ID.String()

	return entity.LineItem{
		LineID:             cart.DeriveLineID(productID, variationID, addOnIDs, note),
		ProductID:          productID,
		RestaurantID:       item.RestaurantID.String(),
		Name:               item.Name,
		VariationID:        variationID,
		VariationName:      variation.Name,
		AddOns:             addOns,
		Note:               note,
		UnitPrice:          unitPrice,
		Quantity:           input.Quantity,
		ImageURL:           item.ImageURL,
		DescriptionSummary: item.Summary(descriptionSummaryLength),
	}, nil
}

// selectVariation returns the requested variation. Items with a single
// variation may omit it.
func selectVariation(item *entity.MenuItem, id uuid.UUID) (entity.Variation, error) {
	if id == uuid.Nil {
		if len(item.Variations) == 1 {
			return item.Variations[0], nil
		}

		return entity.Variation{}, errors.Wrap(domainerrors.ErrVariationNotFound, "a variation must be chosen")
	}

	variation, ok := item.FindVariation(id)
	if !ok {
		return entity.Variation{}, errors.Wrapf(domainerrors.ErrVariationNotFound, "variation %s", id)
	}

	return variation, nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, cart.ErrInvalidLine):
		return errors.Wrap(domainerrors.ErrCartLineInvalid, err.Error())
	case errors.Is(err, cart.ErrRestaurantMismatch):
		return domainerrors.ErrCartRestaurantMismatch
	case errors.Is(err, cart.ErrQuantityLimit):
		return domainerrors.ErrCartQuantityLimit
	case errors.Is(err, cart.ErrCartFull):
		return domainerrors.ErrCartFull
	default:
		return fmt.Errorf("failed to update cart: %w", err)
	}
}

// SetQuantity sets a line's quantity; zero or less removes the line.
func (srv *cartService) SetQuantity(ctx context.Context, sessionID uuid.UUID, lineID string, quantity int) error {
	if store, ok := srv.cartRepo.Find(ctx, sessionID); ok {
		store.SetQuantity(lineID, quantity)
	}

	return nil
}

// AdjustQuantity changes a line's quantity by delta.
func (srv *cartService) AdjustQuantity(ctx context.Context, sessionID uuid.UUID, lineID string, delta int) error {
	if store, ok := srv.cartRepo.Find(ctx, sessionID); ok {
		store.AdjustQuantity(lineID, delta)
	}

	return nil
}

// RemoveLine deletes a line.
func (srv *cartService) RemoveLine(ctx context.Context, sessionID uuid.UUID, lineID string) error {
	if store, ok := srv.cartRepo.Find(ctx, sessionID); ok {
		store.RemoveLine(lineID)
	}

	return nil
}

// ClearCart empties the cart.
func (srv *cartService) ClearCart(ctx context.Context, sessionID uuid.UUID) error {
	if store, ok := srv.cartRepo.Find(ctx, sessionID); ok {
		store.Clear()
	}

	return nil
}

// GetCart returns the cart snapshot priced for mode.
func (srv *cartService) GetCart(ctx context.Context, sessionID uuid.UUID, mode entity.DeliveryMode) (*usecase.CartView, error) {
	lines := srv.snapshot(ctx, sessionID)

	quote, err := srv.quote(lines, mode)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, line := range lines {
		count += line.Quantity
	}

	return &usecase.CartView{
		Lines:     lines,
		ItemCount: count,
		Quote:     quote,
	}, nil
}

// Quote prices the cart for mode without returning its lines.
func (srv *cartService) Quote(ctx context.Context, sessionID uuid.UUID, mode entity.DeliveryMode) (*usecase.Quote, error) {
	return srv.quote(srv.snapshot(ctx, sessionID), mode)
}

func (srv *cartService) snapshot(ctx context.Context, sessionID uuid.UUID) []entity.LineItem {
	store, ok := srv.cartRepo.Find(ctx, sessionID)
	if !ok {
		return []entity.LineItem{}
	}

	return store.Snapshot()
}

func (srv *cartService) quote(lines []entity.LineItem, mode entity.DeliveryMode) (*usecase.Quote, error) {
	if !mode.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown delivery mode %q", mode)
	}

	totals, err := cart.ComputeTotals(lines, mode, srv.policy)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPricingIntegrity, err.Error())
	}

	return newQuote(mode, totals.Rounded(), srv.currency), nil
}

func newQuote(mode entity.DeliveryMode, rounded entity.PricingResult, currency config.CurrencyConfig) *usecase.Quote {
	format := func(d decimal.Decimal) string {
		return util.FormatAmount(d, currency.Symbol)
	}

	return &usecase.Quote{
		Mode:     mode,
		Currency: currency.Code,
		Totals:   rounded,
		Display: usecase.AmountDisplay{
			Subtotal:    format(rounded.Subtotal),
			DeliveryFee: format(rounded.DeliveryFee),
			Tax:         format(rounded.Tax),
			Total:       format(rounded.Total),
		},
	}
}
