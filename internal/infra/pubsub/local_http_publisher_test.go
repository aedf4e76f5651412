package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scoop/config"
	"scoop/internal/domain/entity"
	"scoop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOrderEvent() *service.ServiceOrderEvent {
	clientID := uuid.New()
	return &service.ServiceOrderEvent{
		RequestID: "req-1",
		Order: &entity.ServiceOrder{
			ID:            uuid.New(),
			UserID:        uuid.New(),
			ClientID:      &clientID,
			Creams:        []entity.OrderLine{{ID: uuid.New(), Name: "Vanilla", Price: 4}},
			TotalPrice:    4,
			PaymentMethod: entity.PaymentPix,
			CreatedAt:     time.Now(),
		},
	}
}

func TestLocalHTTPPublisher_PushEnvelope(t *testing.T) {
	event := testOrderEvent()

	var got PubSubPushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.PublishServiceOrder(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.Order.ID.String(), got.Message.MessageID)
	assert.Equal(t, event.Order.UserID.String(), got.Message.OrderingKey)
	assert.Equal(t, "PIX", got.Message.Attributes["payment_method"])
	assert.Equal(t, "4.00", got.Message.Attributes["total_price"])
	assert.Equal(t, event.Order.ClientID.String(), got.Message.Attributes["client_id"])

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.ServiceOrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Order.ID, decoded.Order.ID)
	assert.Equal(t, "Vanilla", decoded.Order.Creams[0].Name)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishServiceOrder(context.Background(), testOrderEvent())
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		isNoop  bool
	}{
		{name: "unset", cfg: nil, isNoop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, isNoop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			_, noop := publisher.(*noopPublisher)
			assert.Equal(t, tt.isNoop, noop)
		})
	}
}
