// Package http provides HTTP-specific implementations of storefront
// collaborators: the payment-gateway client, a webhook messenger, and
// request-body validation for the payment endpoints.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	storefront "github.com/zhivo/storefront"
)

// GatewayConfig configures the HTTP payment-gateway client
type GatewayConfig struct {
	// BaseURL is the base URL of the gateway's REST API
	BaseURL string

	// KeyID and KeySecret are the basic-auth API credentials
	KeyID     string
	KeySecret string

	// HTTPClient is the HTTP client to use (optional)
	HTTPClient *http.Client

	// Timeout for requests (optional, defaults to 30s)
	Timeout time.Duration
}

// DefaultGatewayURL is the production gateway endpoint.
const DefaultGatewayURL = "https://api.razorpay.com"

// GatewayClient talks to a Razorpay-style orders API over HTTP.
// Implements storefront.PaymentGateway.
type GatewayClient struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

// NewGatewayClient creates a new HTTP gateway client
func NewGatewayClient(config *GatewayConfig) *GatewayClient {
	if config == nil {
		config = &GatewayConfig{}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultGatewayURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	return &GatewayClient{
		baseURL:    baseURL,
		keyID:      config.KeyID,
		keySecret:  config.KeySecret,
		httpClient: httpClient,
	}
}

// gatewayOrderResponse is the gateway's own order representation.
type gatewayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrder asks the gateway for an order reference. Transport errors and
// 5xx responses surface as gateway_unavailable ("payment system down"),
// other non-2xx responses as gateway_rejected ("payment declined").
func (c *GatewayClient) CreateOrder(ctx context.Context, amountMinorUnits int64, currency string) (storefront.GatewayOrder, error) {
	body, err := json.Marshal(map[string]interface{}{
		"amount":   amountMinorUnits,
		"currency": currency,
	})
	if err != nil {
		return storefront.GatewayOrder{}, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return storefront.GatewayOrder{}, fmt.Errorf("failed to create order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return storefront.GatewayOrder{}, storefront.NewStoreError(
			storefront.ErrCodeGatewayUnavailable,
			fmt.Sprintf("gateway request failed: %v", err), nil)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return storefront.GatewayOrder{}, storefront.NewStoreError(
			storefront.ErrCodeGatewayUnavailable,
			fmt.Sprintf("failed to read gateway response: %v", err), nil)
	}

	switch {
	case resp.StatusCode >= 500:
		return storefront.GatewayOrder{}, storefront.NewStoreError(
			storefront.ErrCodeGatewayUnavailable,
			fmt.Sprintf("gateway returned %d: %s", resp.StatusCode, string(responseBody)), nil)
	case resp.StatusCode >= 300:
		return storefront.GatewayOrder{}, storefront.NewStoreError(
			storefront.ErrCodeGatewayRejected,
			fmt.Sprintf("gateway rejected order (%d): %s", resp.StatusCode, string(responseBody)), nil)
	}

	var order gatewayOrderResponse
	if err := json.Unmarshal(responseBody, &order); err != nil {
		return storefront.GatewayOrder{}, storefront.NewStoreError(
			storefront.ErrCodeGatewayUnavailable,
			fmt.Sprintf("failed to decode gateway response: %v", err), nil)
	}

	return storefront.GatewayOrder{
		OrderRef:         order.ID,
		Currency:         order.Currency,
		AmountMinorUnits: order.Amount,
	}, nil
}

// Ensure GatewayClient implements PaymentGateway
var _ storefront.PaymentGateway = (*GatewayClient)(nil)
