package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"platter/config"
	apimiddleware "platter/internal/delivery/api/middleware"
	"platter/internal/delivery/api/router"
	"platter/internal/delivery/api/router/handler"
	deliverycontext "platter/internal/delivery/context"
	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	mockUsecase "platter/internal/mocks/usecase"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo       *echo.Echo
	sessionUC  *mockUsecase.MockSessionUsecase
	catalogUC  *mockUsecase.MockCatalogUsecase
	cartUC     *mockUsecase.MockCartUsecase
	checkoutUC *mockUsecase.MockCheckoutUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "16KB"
	cfg.TestRoutes = &config.TestRoutesConfig{Enabled: true}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := apiFixtures{
		sessionUC:  mockUsecase.NewMockSessionUsecase(t),
		catalogUC:  mockUsecase.NewMockCatalogUsecase(t),
		cartUC:     mockUsecase.NewMockCartUsecase(t),
		checkoutUC: mockUsecase.NewMockCheckoutUsecase(t),
	}
	fx.echo = newEcho(cfg, logger, router.RouterParams{
		SessionHandler:    handler.NewSessionHandler(fx.sessionUC),
		CatalogHandler:    handler.NewCatalogHandler(fx.catalogUC),
		CartHandler:       handler.NewCartHandler(handler.CartHandlerParams{CartUC: fx.cartUC, Logger: logger}),
		OrderHandler:      handler.NewOrderHandler(fx.checkoutUC),
		TestHandler:       handler.NewTestHandler(),
		SessionMiddleware: apimiddleware.NewSessionMiddleware(fx.sessionUC),
		Config:            cfg,
	})

	return fx
}

func (fx apiFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func (fx apiFixtures) withSession(t *testing.T) uuid.UUID {
	t.Helper()
	sessionID := uuid.New()
	fx.sessionUC.EXPECT().ValidateSession(mock.Anything, "tok").Return(sessionID, nil)

	return sessionID
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), envelope.Meta.RequestID)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_StartSession(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := uuid.New()
	fx.sessionUC.EXPECT().StartSession(mock.Anything).Return(&usecase.SessionToken{
		Token:     "tok",
		SessionID: sessionID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/sessions", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var got usecase.SessionToken
	decodeData(t, rec, &got)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, sessionID, got.SessionID)
}

func TestAPI_Catalog(t *testing.T) {
	fx := createTestAPI(t)
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Bombay Canteen", IsOpen: true}

	fx.catalogUC.EXPECT().ListRestaurants(mock.Anything, true).Return([]*entity.Restaurant{restaurant}, nil)
	fx.catalogUC.EXPECT().GetMenu(mock.Anything, restaurant.ID).Return(&usecase.RestaurantMenu{Restaurant: restaurant}, nil)
	fx.catalogUC.EXPECT().GetRestaurant(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrRestaurantNotFound)

	rec := fx.do(http.MethodGet, "/api/v1/restaurants?open=true", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodGet, "/api/v1/restaurants/"+restaurant.ID.String()+"/menu", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodGet, "/api/v1/restaurants/"+uuid.NewString(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RESTAURANT_NOT_FOUND", errorCode(t, rec))

	rec = fx.do(http.MethodGet, "/api/v1/restaurants/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fx.do(http.MethodGet, "/api/v1/restaurants?open=maybe", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_CartRequiresSession(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/api/v1/cart", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_REQUIRED", errorCode(t, rec))
}

func TestAPI_GetCart(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := fx.withSession(t)

	view := &usecase.CartView{
		Lines:     []entity.LineItem{{LineID: "l1", UnitPrice: decimal.NewFromInt(320), Quantity: 1}},
		ItemCount: 1,
		Quote:     &usecase.Quote{Mode: entity.DeliveryModePickup, Display: usecase.AmountDisplay{Total: "₹336.00"}},
	}
	fx.cartUC.EXPECT().GetCart(mock.Anything, sessionID, entity.DeliveryModePickup).Return(view, nil)

	rec := fx.do(http.MethodGet, "/api/v1/cart?mode=pickup", "tok", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got usecase.CartView
	decodeData(t, rec, &got)
	assert.Equal(t, 1, got.ItemCount)
	assert.Equal(t, "₹336.00", got.Quote.Display.Total)
}

func TestAPI_AddLine(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := fx.withSession(t)
	menuItemID := uuid.New()
	addOnID := uuid.New()

	fx.cartUC.EXPECT().
		AddItem(mock.Anything, sessionID, mock.AnythingOfType("*usecase.AddItemInput")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, input *usecase.AddItemInput) (*entity.LineItem, error) {
			assert.Equal(t, menuItemID, input.MenuItemID)
			assert.Equal(t, []uuid.UUID{addOnID}, input.AddOnIDs)
			assert.Equal(t, 1, input.Quantity)

			return &entity.LineItem{LineID: "l1", Quantity: 1}, nil
		})

	body := `{"menu_item_id":"` + menuItemID.String() + `","add_on_ids":["` + addOnID.String() + `"],"note":"no onion"}`
	rec := fx.do(http.MethodPost, "/api/v1/cart/lines", "tok", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_AddLine_Validation(t *testing.T) {
	fx := createTestAPI(t)
	fx.withSession(t)

	rec := fx.do(http.MethodPost, "/api/v1/cart/lines", "tok", `{"menu_item_id":"nope","quantity":500}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "uuid", body.Error.Details["menu_item_id"])
	assert.Equal(t, "max=99", body.Error.Details["quantity"])
}

func TestAPI_LineMutations(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := fx.withSession(t)
	view := &usecase.CartView{Lines: []entity.LineItem{}}

	fx.cartUC.EXPECT().SetQuantity(mock.Anything, sessionID, "l1", 0).Return(nil)
	fx.cartUC.EXPECT().AdjustQuantity(mock.Anything, sessionID, "l1", -1).Return(nil)
	fx.cartUC.EXPECT().RemoveLine(mock.Anything, sessionID, "l1").Return(nil)
	fx.cartUC.EXPECT().ClearCart(mock.Anything, sessionID).Return(nil)
	fx.cartUC.EXPECT().GetCart(mock.Anything, sessionID, entity.DeliveryModeDelivery).Return(view, nil).Times(3)

	assert.Equal(t, http.StatusOK, fx.do(http.MethodPut, "/api/v1/cart/lines/l1", "tok", `{"quantity":0}`).Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodPatch, "/api/v1/cart/lines/l1", "tok", `{"delta":-1}`).Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodDelete, "/api/v1/cart/lines/l1", "tok", "").Code)
	assert.Equal(t, http.StatusNoContent, fx.do(http.MethodDelete, "/api/v1/cart", "tok", "").Code)

	// quantity is required and capped on PUT
	assert.Equal(t, http.StatusBadRequest, fx.do(http.MethodPut, "/api/v1/cart/lines/l1", "tok", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, fx.do(http.MethodPut, "/api/v1/cart/lines/l1", "tok", `{"quantity":9223372036854775807}`).Code)
}

func TestAPI_Quote_UnknownMode(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := fx.withSession(t)

	fx.cartUC.EXPECT().
		Quote(mock.Anything, sessionID, entity.DeliveryMode("drone")).
		Return(nil, domainerrors.ErrValidationFailed)

	rec := fx.do(http.MethodGet, "/api/v1/cart/quote?mode=drone", "tok", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_Checkout(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := fx.withSession(t)
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPlaced, DeliveryMode: entity.DeliveryModePickup}

	fx.checkoutUC.EXPECT().
		Checkout(mock.Anything, sessionID, mock.AnythingOfType("*usecase.CheckoutInput")).
		Return(order, nil)

	rec := fx.do(http.MethodPost, "/api/v1/checkout", "tok", `{"mode":"pickup","customer_name":"Asha","customer_phone":"+91 98200 00000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Order
	decodeData(t, rec, &got)
	assert.Equal(t, order.ID, got.ID)
}

func TestAPI_Checkout_DeliveryNeedsAddress(t *testing.T) {
	fx := createTestAPI(t)
	fx.withSession(t)

	rec := fx.do(http.MethodPost, "/api/v1/checkout", "tok", `{"mode":"delivery","customer_name":"Asha","customer_phone":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestAPI_Checkout_EmptyCart(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := fx.withSession(t)

	fx.checkoutUC.EXPECT().Checkout(mock.Anything, sessionID, mock.Anything).Return(nil, domainerrors.ErrCartEmpty)

	rec := fx.do(http.MethodPost, "/api/v1/checkout", "tok", `{"mode":"pickup","customer_name":"Asha","customer_phone":"1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "CART_EMPTY", errorCode(t, rec))
}

func TestAPI_PickupQR(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := fx.withSession(t)
	orderID := uuid.New()
	fx.checkoutUC.EXPECT().PickupQR(mock.Anything, sessionID, orderID).Return([]byte("\x89PNG"), nil)

	rec := fx.do(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/qr", "tok", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestAPI_OrdersRequireSession(t *testing.T) {
	fx := createTestAPI(t)
	orderID := uuid.New().String()

	for _, target := range []string{"/api/v1/orders/" + orderID, "/api/v1/orders/" + orderID + "/qr"} {
		rec := fx.do(http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Equal(t, "SESSION_REQUIRED", errorCode(t, rec))
	}
}

func TestAPI_GetOrder_OtherSessionIsNotFound(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := fx.withSession(t)
	orderID := uuid.New()
	fx.checkoutUC.EXPECT().GetOrder(mock.Anything, sessionID, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	rec := fx.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "tok", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), "customer_phone")
}

func TestAPI_UnhandledErrorIsMasked(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := fx.withSession(t)
	orderID := uuid.New()
	fx.checkoutUC.EXPECT().GetOrder(mock.Anything, sessionID, orderID).Return(nil, io.ErrUnexpectedEOF)

	rec := fx.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "tok", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
}

func TestAPI_TestSessionRoute(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := fx.withSession(t)

	rec := fx.do(http.MethodGet, "/test/session", "tok", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), sessionID.String())
}
