//go:build unit

package channelapi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayops/internal/infra"
	"stayops/internal/infra/channelapi"
	"stayops/internal/pkg/config"
	"stayops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *channelapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().ChannelAPI
	cfg.BaseURL = srv.URL
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return channelapi.NewClient(cfg, logger)
}

func headerPayload() usecase.HeaderPayload {
	return usecase.HeaderPayload{
		PropertyID: "prop-1",
		Status:     "new",
		Arrival:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Departure:  time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		Amount:     "450.00",
		Currency:   "EUR",
		Adults:     2,
	}
}

func TestClient_CreateBooking(t *testing.T) {
	t.Run("sends credentials and decodes a bare object", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/bookings", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "prop-1", body["property_id"])
			assert.Equal(t, "2026-09-10", body["arrival"])
			assert.Equal(t, "450.00", body["amount"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"bk-1","property_id":"prop-1","status":"new","arrival":"2026-09-10","departure":"2026-09-13","amount":"450.00","currency":"EUR","adults":2}`))
		})

		rec, err := client.CreateBooking(context.Background(), headerPayload())
		require.NoError(t, err)
		assert.Equal(t, "bk-1", rec.ID)
		assert.Equal(t, "450.00", rec.Amount)
		assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), rec.Arrival)
	})

	t.Run("decodes an enveloped object", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"id":"bk-2","status":"new","arrival":"2026-09-10","departure":"2026-09-13","amount":"450.00"}}`))
		})

		rec, err := client.CreateBooking(context.Background(), headerPayload())
		require.NoError(t, err)
		assert.Equal(t, "bk-2", rec.ID)
	})

	t.Run("keeps the nested remote message on rejection", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":{"message":"Property not active"}}`))
		})

		_, err := client.CreateBooking(context.Background(), headerPayload())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRemoteRejected))
		assert.Equal(t, "Property not active", infra.RemoteMessage(err))
	})

	t.Run("keeps the flat remote message on not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Booking not found"}`))
		})

		_, err := client.CreateBooking(context.Background(), headerPayload())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, "Booking not found", infra.RemoteMessage(err))
	})

	t.Run("keeps a non-JSON body verbatim on server failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream connect error"))
		})

		_, err := client.CreateBooking(context.Background(), headerPayload())
		assert.True(t, infra.IsKind(err, infra.KindRemoteFailure))
		assert.Equal(t, "upstream connect error", infra.RemoteMessage(err))
	})

	t.Run("rejects a response that is not an object", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id":"bk-1"}]`))
		})

		_, err := client.CreateBooking(context.Background(), headerPayload())
		assert.True(t, infra.IsKind(err, infra.KindUnexpectedShape))
	})

	t.Run("wraps connection failures as transport errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		cfg := config.NewTestConfig().ChannelAPI
		cfg.BaseURL = srv.URL
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		client := channelapi.NewClient(cfg, logger)
		srv.Close()

		_, err := client.CreateBooking(context.Background(), headerPayload())
		assert.True(t, infra.IsKind(err, infra.KindTransport))
	})
}

func TestClient_GetBookingAggregate(t *testing.T) {
	t.Run("requests every child collection and maps them", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bookings/bk-1", r.URL.Path)
			assert.Equal(t, "rooms,services,guarantees,guests", r.URL.Query().Get("include"))

			_, _ = w.Write([]byte(`{
				"id": "bk-1",
				"property_id": "prop-1",
				"status": "confirmed",
				"arrival": "2026-09-10",
				"departure": "2026-09-13",
				"amount": "450.00",
				"currency": "EUR",
				"adults": 2,
				"rooms": [{
					"id": "room-1",
					"room_type_id": "rt-1",
					"rate_plan_id": "rp-1",
					"check_in": "2026-09-10",
					"check_out": "2026-09-13",
					"adults": 2,
					"amount": "150.00",
					"days": [
						{"id": "day-1", "date": "2026-09-10", "price": "150.00"},
						{"id": "day-2", "date": "2026-09-11", "price": "150.00"},
						{"id": "day-3", "date": "2026-09-12", "price": "150.00"}
					]
				}],
				"services": [{"id": "svc-1", "type": "breakfast", "pricing_mode": "per_person", "persons": 2, "nights": 3, "unit_price": "12.50", "total": "75.00"}],
				"guarantees": [{"id": "g-1", "card_type": "visa", "card_number": "4111111111111111", "card_holder": "Jamie Harper", "expiry_month": "09", "expiry_year": "2029"}],
				"guests": [{"id": "guest-1", "first_name": "Jamie", "last_name": "Harper", "email": "jamie@example.com"}]
			}`))
		})

		agg, err := client.GetBookingAggregate(context.Background(), "bk-1")
		require.NoError(t, err)

		assert.Equal(t, "bk-1", agg.ID)
		require.Len(t, agg.Rooms, 1)
		assert.Equal(t, "room-1", agg.Rooms[0].ID)
		assert.Len(t, agg.Rooms[0].Days, 3)
		assert.Equal(t, time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC), agg.Rooms[0].Days[1].Date)
		require.Len(t, agg.Services, 1)
		assert.Equal(t, "75.00", agg.Services[0].Total)
		require.Len(t, agg.Guarantees, 1)
		assert.Equal(t, "g-1", agg.Guarantees[0].ID)
		require.Len(t, agg.Guests, 1)
		assert.Equal(t, "Jamie", agg.Guests[0].FirstName)
	})

	t.Run("escapes the booking identifier in the path", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bookings/bk%2F1", r.URL.EscapedPath())
			_, _ = w.Write([]byte(`{"id":"bk/1","status":"new","arrival":"2026-09-10","departure":"2026-09-13","amount":"1.00"}`))
		})

		agg, err := client.GetBookingAggregate(context.Background(), "bk/1")
		require.NoError(t, err)
		assert.Equal(t, "bk/1", agg.ID)
	})
}
