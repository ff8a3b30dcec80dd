package handler

import (
	"net/http"
	"strconv"

	"platter/internal/delivery/api/response"
	"platter/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves restaurant and menu browsing
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListRestaurants handles GET /restaurants?open=true
func (h *CatalogHandler) ListRestaurants(c echo.Context) error {
	openOnly := false
	if raw := c.QueryParam("open"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "open must be a boolean")
		}
		openOnly = parsed
	}

	restaurants, err := h.catalogUC.ListRestaurants(c.Request().Context(), openOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants)
}

// GetRestaurant handles GET /restaurants/:id
func (h *CatalogHandler) GetRestaurant(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	restaurant, err := h.catalogUC.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// GetMenu handles GET /restaurants/:id/menu
func (h *CatalogHandler) GetMenu(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	menu, err := h.catalogUC.GetMenu(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, menu)
}
