package welcome

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"hotel-booking-api/internal/pkg/config"
)

// DefaultMessage is used whenever the remote service is unreachable,
// slow, or returns garbage. Voucher generation never fails because of
// the welcome message.
const DefaultMessage = "We look forward to welcoming you."

type MessageProvider interface {
	MessageFor(ctx context.Context, guestName, hotelName, roomType string) string
}

// Client fetches a localized welcome message from the content service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.WelcomeConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *Client) MessageFor(ctx context.Context, guestName, hotelName, roomType string) string {
	if c.baseURL == "" {
		return DefaultMessage
	}

	q := url.Values{}
	q.Set("guest_name", guestName)
	q.Set("hotel_name", hotelName)
	q.Set("room_type", roomType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/welcome?"+q.Encode(), nil)
	if err != nil {
		return DefaultMessage
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("welcome message fetch failed", "error", err.Error())
		return DefaultMessage
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("welcome message fetch returned non-200", "status", resp.StatusCode)
		return DefaultMessage
	}

	var body messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slog.Warn("welcome message decode failed", "error", err.Error())
		return DefaultMessage
	}

	if strings.TrimSpace(body.Message) == "" {
		return DefaultMessage
	}
	return body.Message
}
