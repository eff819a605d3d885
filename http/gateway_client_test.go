package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storefront "github.com/zhivo/storefront"
)

func TestGatewayClientCreateOrder(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_abc123",
			"amount":   379800,
			"currency": "INR",
		})
	}))
	defer server.Close()

	client := NewGatewayClient(&GatewayConfig{
		BaseURL:   server.URL,
		KeyID:     "key_id",
		KeySecret: "key_secret",
	})

	order, err := client.CreateOrder(context.Background(), 379800, "INR")
	require.NoError(t, err)

	assert.Equal(t, "/v1/orders", gotPath)
	assert.Equal(t, "key_id", gotUser)
	assert.Equal(t, "key_secret", gotPass)
	assert.Equal(t, float64(379800), gotBody["amount"])
	assert.Equal(t, "INR", gotBody["currency"])

	assert.Equal(t, storefront.GatewayOrder{
		OrderRef:         "order_abc123",
		Currency:         "INR",
		AmountMinorUnits: 379800,
	}, order)
}

func TestGatewayClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewGatewayClient(&GatewayConfig{BaseURL: server.URL})

	_, err := client.CreateOrder(context.Background(), 100, "INR")
	require.Error(t, err)
	assert.Equal(t, storefront.ErrCodeGatewayUnavailable, storefront.ErrorCode(err))
}

func TestGatewayClientRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad amount"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewGatewayClient(&GatewayConfig{BaseURL: server.URL})

	_, err := client.CreateOrder(context.Background(), 100, "INR")
	require.Error(t, err)
	assert.Equal(t, storefront.ErrCodeGatewayRejected, storefront.ErrorCode(err))
}

func TestGatewayClientUnreachable(t *testing.T) {
	// A closed server port: the transport error must map to unavailable.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewGatewayClient(&GatewayConfig{BaseURL: server.URL})

	_, err := client.CreateOrder(context.Background(), 100, "INR")
	require.Error(t, err)
	assert.Equal(t, storefront.ErrCodeGatewayUnavailable, storefront.ErrorCode(err))
}
