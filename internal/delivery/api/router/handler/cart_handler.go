package handler

import (
	"log/slog"
	"net/http"

	"platter/internal/delivery/api/middleware"
	"platter/internal/delivery/api/response"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler exposes the session cart
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddLineRequest is a configured product chosen on the product page
type AddLineRequest struct {
	MenuItemID  string   `json:"menu_item_id" validate:"required,uuid"`
	VariationID string   `json:"variation_id" validate:"omitempty,uuid"`
	AddOnIDs    []string `json:"add_on_ids" validate:"max=20,dive,uuid"`
	Note        string   `json:"note" validate:"max=1000"`
	Quantity    int      `json:"quantity" validate:"omitempty,min=1,max=99"`
}

// SetQuantityRequest sets a line's quantity; zero or less removes the line
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,max=99"`
}

// AdjustQuantityRequest changes a line's quantity by delta
type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required,min=-99,max=99"`
}

// GetCart handles GET /cart?mode=
func (h *CartHandler) GetCart(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
	}

	return h.renderCart(c, sessionID, http.StatusOK)
}

// Quote handles GET /cart/quote?mode=
func (h *CartHandler) Quote(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
	}

	quote, err := h.cartUC.Quote(c.Request().Context(), sessionID, modeQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// AddLine handles POST /cart/lines
func (h *CartHandler) AddLine(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
	}

	var req AddLineRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.AddItemInput{
		MenuItemID: uuid.MustParse(req.MenuItemID),
		AddOnIDs:   make([]uuid.UUID, 0, len(req.AddOnIDs)),
		Note:       req.Note,
		Quantity:   req.Quantity,
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if req.VariationID != "" {
		input.VariationID = uuid.MustParse(req.VariationID)
	}
	for _, id := range req.AddOnIDs {
		input.AddOnIDs = append(input.AddOnIDs, uuid.MustParse(id))
	}

	line, err := h.cartUC.AddItem(c.Request().Context(), sessionID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, line)
}

// SetQuantity handles PUT /cart/lines/:lineId
func (h *CartHandler) SetQuantity(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
	}

	var req SetQuantityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.cartUC.SetQuantity(c.Request().Context(), sessionID, c.Param("lineId"), *req.Quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.renderCart(c, sessionID, http.StatusOK)
}

// AdjustQuantity handles PATCH /cart/lines/:lineId
func (h *CartHandler) AdjustQuantity(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
	}

	var req AdjustQuantityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.cartUC.AdjustQuantity(c.Request().Context(), sessionID, c.Param("lineId"), req.Delta); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.renderCart(c, sessionID, http.StatusOK)
}

// RemoveLine handles DELETE /cart/lines/:lineId
func (h *CartHandler) RemoveLine(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
	}

	if err := h.cartUC.RemoveLine(c.Request().Context(), sessionID, c.Param("lineId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.renderCart(c, sessionID, http.StatusOK)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) renderCart(c echo.Context, sessionID uuid.UUID, status int) error {
	view, err := h.cartUC.GetCart(c.Request().Context(), sessionID, modeQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, view)
}
