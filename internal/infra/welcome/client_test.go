//go:build unit

package welcome_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-booking-api/internal/infra/welcome"
	"hotel-booking-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *welcome.Client {
	return welcome.NewClient(config.WelcomeConfig{BaseURL: baseURL, Timeout: time.Second})
}

func TestClientMessageFor(t *testing.T) {
	ctx := context.Background()

	t.Run("passes guest name, hotel name and room type", func(t *testing.T) {
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			got = map[string]string{
				"guest_name": q.Get("guest_name"),
				"hotel_name": q.Get("hotel_name"),
				"room_type":  q.Get("room_type"),
			}
			_, _ = w.Write([]byte(`{"message":"Ahlan, Sara!"}`))
		}))
		defer srv.Close()

		msg := newClient(srv.URL).MessageFor(ctx, "Sara Al-Rashid", "Desert Rose", "Deluxe")

		assert.Equal(t, "Ahlan, Sara!", msg)
		require.NotNil(t, got)
		assert.Equal(t, "Sara Al-Rashid", got["guest_name"])
		assert.Equal(t, "Desert Rose", got["hotel_name"])
		assert.Equal(t, "Deluxe", got["room_type"])
	})

	t.Run("unconfigured base url falls back", func(t *testing.T) {
		msg := newClient("").MessageFor(ctx, "Sara", "Desert Rose", "Deluxe")
		assert.Equal(t, welcome.DefaultMessage, msg)
	})

	t.Run("non-200 falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		msg := newClient(srv.URL).MessageFor(ctx, "Sara", "Desert Rose", "Deluxe")
		assert.Equal(t, welcome.DefaultMessage, msg)
	})

	t.Run("malformed body falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		msg := newClient(srv.URL).MessageFor(ctx, "Sara", "Desert Rose", "Deluxe")
		assert.Equal(t, welcome.DefaultMessage, msg)
	})

	t.Run("blank message falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"message":"   "}`))
		}))
		defer srv.Close()

		msg := newClient(srv.URL).MessageFor(ctx, "Sara", "Desert Rose", "Deluxe")
		assert.Equal(t, welcome.DefaultMessage, msg)
	})
}
