package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	storefront "github.com/zhivo/storefront"
)

// MessengerConfig configures the webhook messenger
type MessengerConfig struct {
	// WebhookURL receives the formatted order summary as a POST
	WebhookURL string

	// HTTPClient is the HTTP client to use (optional)
	HTTPClient *http.Client

	// Timeout for requests (optional, defaults to 10s)
	Timeout time.Duration
}

// Messenger hands formatted order summaries to a delivery webhook.
// The handoff is fire-and-forget: any problem reaching the webhook is
// reported as ErrDeliveryUnconfirmed, never as a hard failure, because the
// core does not track delivery.
type Messenger struct {
	webhookURL string
	httpClient *http.Client
}

// NewMessenger creates a webhook messenger
func NewMessenger(config *MessengerConfig) *Messenger {
	if config == nil {
		config = &MessengerConfig{}
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	return &Messenger{
		webhookURL: config.WebhookURL,
		httpClient: httpClient,
	}
}

// Send posts the message to the webhook with the destination in a header.
func (m *Messenger) Send(ctx context.Context, message, destination string) error {
	req, err := http.NewRequestWithContext(ctx, "POST", m.webhookURL, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("failed to create handoff request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("X-Destination", destination)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return storefront.ErrDeliveryUnconfirmed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return storefront.ErrDeliveryUnconfirmed
	}
	return nil
}

// Ensure Messenger implements storefront.Messenger
var _ storefront.Messenger = (*Messenger)(nil)
