package handler

import (
	"net/http"

	"platter/internal/delivery/api/middleware"
	"platter/internal/delivery/api/response"
	"platter/internal/domain/entity"
	"platter/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler handles checkout and placed orders
type OrderHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(checkoutUC usecase.CheckoutUsecase) *OrderHandler {
	return &OrderHandler{checkoutUC: checkoutUC}
}

// CheckoutRequest carries the customer details collected at checkout
type CheckoutRequest struct {
	Mode            string   `json:"mode" validate:"required,delivery_mode"`
	CustomerName    string   `json:"customer_name" validate:"required,max=100"`
	CustomerPhone   string   `json:"customer_phone" validate:"required,max=32"`
	DeliveryAddress string   `json:"delivery_address" validate:"required_if=Mode delivery,max=300"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Note            string   `json:"note" validate:"max=1000"`
}

// Checkout handles POST /checkout
func (h *OrderHandler) Checkout(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
	}

	var req CheckoutRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.checkoutUC.Checkout(c.Request().Context(), sessionID, &usecase.CheckoutInput{
		Mode:            entity.DeliveryMode(req.Mode),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Note:            req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.checkoutUC.GetOrder(c.Request().Context(), sessionID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// PickupQR handles GET /orders/:id/qr and returns a PNG image
func (h *OrderHandler) PickupQR(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.checkoutUC.PickupQR(c.Request().Context(), sessionID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
