package storefront

import (
	"context"
	"time"
)

// OrderPlacedContext contains the outcome of a completed checkout.
// Delivered is false when the messenger could not confirm the handoff.
type OrderPlacedContext struct {
	Order       Order
	Message     string
	Destination string
	Delivered   bool
}

// OrderPlacedHook is called after a checkout completes. Any error returned
// is ignored and never affects the placed order.
type OrderPlacedHook func(OrderPlacedContext) error

// CheckoutService drives a cart and customer form through validation, order
// formatting and the external handoff. It holds no per-order state; orders
// are ephemeral and never persisted.
type CheckoutService struct {
	messenger  Messenger
	clock      func() time.Time
	generateID OrderIDGenerator

	orderPlacedHooks []OrderPlacedHook
}

// CheckoutOption configures the service
type CheckoutOption func(*CheckoutService)

// WithMessenger sets the messaging collaborator that receives formatted
// order summaries. Without one, PlaceOrder still produces the order and
// message but performs no handoff.
func WithMessenger(m Messenger) CheckoutOption {
	return func(s *CheckoutService) {
		s.messenger = m
	}
}

// WithClock overrides the time source, mainly for deterministic tests.
func WithClock(clock func() time.Time) CheckoutOption {
	return func(s *CheckoutService) {
		s.clock = clock
	}
}

// WithOrderIDGenerator overrides order id generation, e.g. with
// UUIDOrderID for collision-resistant ids.
func WithOrderIDGenerator(gen OrderIDGenerator) CheckoutOption {
	return func(s *CheckoutService) {
		s.generateID = gen
	}
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(opts ...CheckoutOption) *CheckoutService {
	s := &CheckoutService{
		clock:      time.Now,
		generateID: GenerateOrderID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnOrderPlaced registers a hook called after every completed checkout.
func (s *CheckoutService) OnOrderPlaced(hook OrderPlacedHook) *CheckoutService {
	s.orderPlacedHooks = append(s.orderPlacedHooks, hook)
	return s
}

// PlaceOrder validates the form, snapshots the cart into an order, formats
// the summary and hands it off to the messenger. Validation failures block
// progression and enumerate every failing field. The handoff is
// fire-and-forget: an unconfirmed delivery does not fail the order. On
// success the cart is cleared and the form should be discarded by the caller.
func (s *CheckoutService) PlaceOrder(ctx context.Context, cart *Cart, form CustomerForm, destination string) (Order, string, error) {
	if cart.IsEmpty() {
		return Order{}, "", NewStoreError(ErrCodeEmptyCart, "cannot place an order with an empty cart", nil)
	}
	if errs := Validate(form); len(errs) > 0 {
		return Order{}, "", ValidationError(errs)
	}

	order, err := NewOrder(cart, form, s.generateID(), s.clock())
	if err != nil {
		return Order{}, "", err
	}
	message := FormatOrder(order)

	delivered := false
	if s.messenger != nil {
		// Delivery problems are the channel's to report; the order stands.
		delivered = s.messenger.Send(ctx, message, destination) == nil
	}

	cart.Clear()

	hookCtx := OrderPlacedContext{
		Order:       order,
		Message:     message,
		Destination: destination,
		Delivered:   delivered,
	}
	for _, hook := range s.orderPlacedHooks {
		_ = hook(hookCtx)
	}

	return order, message, nil
}
