package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "platter/internal/delivery/context"
	"platter/internal/domain/service"
	mockUsecase "platter/internal/mocks/usecase"
	"platter/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/kitchen-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event *service.OrderPlacedEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.OrderPlacedEvent{
		RequestID:    "req-from-event",
		OrderID:      "0b9f7c7e-4a55-4d1c-9d3e-2f3c1b8a7a10",
		RestaurantID: "6f1c2b8e-1f7d-4a3e-8c55-1b2d3e4f5a6b",
		DeliveryMode: "pickup",
		Lines:        []service.OrderPlacedLine{{Name: "Paneer Tikka", Quantity: 1}},
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		forwardErr error
		forwarded  bool
		wantStatus int
	}{
		{
			name:       "forwarded",
			body:       func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			forwarded:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "retryable failure asks for redelivery",
			body:       func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			forwardErr: usecase.NewRetryableError(errors.New("fcm unavailable")),
			forwarded:  true,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "permanent failure is acknowledged",
			body:       func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			forwardErr: errors.New("order not found"),
			forwarded:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid base64",
			body:       func(t *testing.T) string { return pushBody(t, "%%%", nil) },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid json",
			body: func(t *testing.T) string {
				return pushBody(t, base64.StdEncoding.EncodeToString([]byte("{")), nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing order id",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, &service.OrderPlacedEvent{RestaurantID: "r"}), nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed envelope",
			body:       func(_ *testing.T) string { return `{"message":` },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kitchenUC := mockUsecase.NewMockKitchenUsecase(t)
			if tt.forwarded {
				kitchenUC.EXPECT().
					ForwardOrder(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).
					Return(tt.forwardErr)
			}
			h := newPushHandler(kitchenUC, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

			rec := servePush(h, tt.body(t))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	kitchenUC := mockUsecase.NewMockKitchenUsecase(t)
	kitchenUC.EXPECT().
		ForwardOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.OrderPlacedEvent) error {
			assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})
	h := newPushHandler(kitchenUC, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := &service.OrderPlacedEvent{RequestID: "req-event", OrderID: "o", RestaurantID: "r"}
	rec := servePush(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-attr"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	kitchenUC := mockUsecase.NewMockKitchenUsecase(t)
	h := newPushHandler(kitchenUC, func(_ *http.Request) error {
		return errors.New("bad audience")
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := servePush(h, pushBody(t, "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPubSubToken_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Error(t, verifyPubSubToken(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	assert.Error(t, verifyPubSubToken(req))
}
