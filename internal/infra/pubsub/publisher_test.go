package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"platter/config"
	"platter/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.OrderPlacedEvent {
	return &service.OrderPlacedEvent{
		RequestID:    "req-1",
		OrderID:      "order-1",
		RestaurantID: "rest-1",
		DeliveryMode: "pickup",
		CustomerName: "Asha",
		Total:        "987.00",
		Lines: []service.OrderPlacedLine{
			{Name: "Butter Chicken", VariationName: "Full", Quantity: 2},
		},
		PlacedAt: "2026-01-01T12:00:00Z",
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var got PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, server.Client(), slog.Default())
	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "order-1", got.Message.MessageID)
	assert.Equal(t, "rest-1", got.Message.Attributes["restaurant_id"])

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var event service.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, server.Client(), slog.Default())
	err := publisher.PublishOrderPlaced(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "unset uses noop", cfg: nil},
		{name: "empty provider uses noop", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "orders"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.Default(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			lc.RequireStart()
			lc.RequireStop()
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: slog.Default()}

	assert.NoError(t, publisher.PublishOrderPlaced(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}
