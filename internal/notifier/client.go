// Package notifier provides the outbound webhook client used to deliver
// user notifications to an external messenger.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lukasbehr/messecall/internal/config"
	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/pkg/logger"
)

// Client posts notification payloads to a configured webhook.
type Client struct {
	webhookURL string
	enabled    bool
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a new webhook client.
func NewClient(cfg *config.NotifierConfig, log *logger.Logger) *Client {
	return &Client{
		webhookURL: cfg.WebhookURL,
		enabled:    cfg.Enabled,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Payload is the wire format posted to the webhook.
type Payload struct {
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Enabled reports whether deliveries are switched on.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Send delivers one notification to the webhook. Disabled clients drop
// the message and report success so the dispatcher can mark it sent.
func (c *Client) Send(ctx context.Context, notification *models.Notification) error {
	if !c.enabled {
		c.log.Debug().Uint("notification_id", notification.ID).Msg("Notifier disabled, skipping delivery")
		return nil
	}

	payload := Payload{
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		CreatedAt: notification.CreatedAt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post notification webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}

	c.log.Debug().
		Uint("notification_id", notification.ID).
		Uint("user_id", notification.UserID).
		Msg("Delivered notification")

	return nil
}
