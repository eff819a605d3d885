package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	storefront "github.com/zhivo/storefront"
)

func TestMessengerSend(t *testing.T) {
	var gotBody, gotDestination string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotDestination = r.Header.Get("X-Destination")
	}))
	defer server.Close()

	m := NewMessenger(&MessengerConfig{WebhookURL: server.URL})
	if err := m.Send(context.Background(), "ORDER ID: ZHV1", "917398102456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody != "ORDER ID: ZHV1" {
		t.Fatalf("unexpected body %q", gotBody)
	}
	if gotDestination != "917398102456" {
		t.Fatalf("unexpected destination %q", gotDestination)
	}
}

func TestMessengerUnconfirmed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	m := NewMessenger(&MessengerConfig{WebhookURL: server.URL})
	err := m.Send(context.Background(), "msg", "dest")
	if !errors.Is(err, storefront.ErrDeliveryUnconfirmed) {
		t.Fatalf("expected ErrDeliveryUnconfirmed, got %v", err)
	}
}

func TestMessengerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	m := NewMessenger(&MessengerConfig{WebhookURL: server.URL})
	err := m.Send(context.Background(), "msg", "dest")
	if !errors.Is(err, storefront.ErrDeliveryUnconfirmed) {
		t.Fatalf("expected ErrDeliveryUnconfirmed, got %v", err)
	}
}
