package handler

import (
	"net/http"

	"platter/internal/delivery/api/response"
	"platter/internal/delivery/api/validator"
	"platter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and validates it. The returned
// error is already a rendered response.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	return true, nil
}

// uuidParam parses a path parameter as a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// modeQuery reads the delivery mode from ?mode=, defaulting to delivery.
// Unknown modes are passed through for the usecase to reject.
func modeQuery(c echo.Context) entity.DeliveryMode {
	mode := c.QueryParam("mode")
	if mode == "" {
		return entity.DeliveryModeDelivery
	}

	return entity.DeliveryMode(mode)
}
