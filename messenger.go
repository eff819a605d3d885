package storefront

import (
	"context"
	"net/url"
)

// ErrDeliveryUnconfirmed reports that a handoff reached the messaging
// collaborator but delivery could not be confirmed. The core is
// fire-and-forget: callers may log this but must not treat it as an order
// failure.
var ErrDeliveryUnconfirmed = NewStoreError(ErrCodeDeliveryUnconfirmed,
	"message handed off but delivery not confirmed", nil)

// Messenger is the external messaging collaborator that receives formatted
// order summaries. The destination is a phone-number-like identifier.
type Messenger interface {
	Send(ctx context.Context, message, destination string) error
}

// BuildWhatsAppLink builds the wa.me link that opens a WhatsApp conversation
// with the destination number, pre-filled with the given message.
func BuildWhatsAppLink(destination, message string) string {
	return "https://wa.me/" + destination + "?text=" + url.QueryEscape(message)
}
