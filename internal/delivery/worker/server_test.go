package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"platter/config"
	"platter/internal/delivery/worker/handler"
	"platter/internal/domain/service"
	"platter/internal/infra/pubsub"
	mockUsecase "platter/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorker_LocalPublisherRoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	kitchenUC := mockUsecase.NewMockKitchenUsecase(t)
	event := &service.OrderPlacedEvent{
		RequestID:    "req-123",
		OrderID:      "0b9f7c7e-4a55-4d1c-9d3e-2f3c1b8a7a10",
		RestaurantID: "6f1c2b8e-1f7d-4a3e-8c55-1b2d3e4f5a6b",
		DeliveryMode: "delivery",
		Total:        "639.54",
		Lines:        []service.OrderPlacedLine{{Name: "Sweet Lassi", Quantity: 2}},
	}

	kitchenUC.EXPECT().
		ForwardOrder(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).
		RunAndReturn(func(_ context.Context, got *service.OrderPlacedEvent) error {
			assert.Equal(t, event, got)

			return nil
		})

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:    cfg,
		Logger:    logger,
		KitchenUC: kitchenUC,
	})
	server := httptest.NewServer(newEcho(logger, pushHandler))
	defer server.Close()

	publisher := pubsub.NewLocalHTTPPublisher(server.URL+"/push", server.Client(), logger)
	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), event))
}

func TestWorker_Health(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := newEcho(logger, handler.NewPushHandler(handler.PushHandlerParams{
		Config:    &config.Config{},
		Logger:    logger,
		KitchenUC: mockUsecase.NewMockKitchenUsecase(t),
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
