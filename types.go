package storefront

import "time"

// Product is an immutable catalog record. Prices are whole rupees; there is
// no minor-unit component at the catalog level.
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice int64   `json:"unitPrice"`
	Category  string  `json:"category"`
	Rating    float64 `json:"rating"`
	InStock   bool    `json:"inStock"`
}

// LineItem is one product-quantity pairing within a cart.
// A cart holds at most one line item per product id and every quantity is >= 1.
type LineItem struct {
	ProductID int   `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// CartTotals holds the derived aggregates of a cart. They are recomputed from
// the cart contents on every call and never cached.
type CartTotals struct {
	TotalItems int64 `json:"totalItems"`
	Subtotal   int64 `json:"subtotal"`
}

// CustomerForm is the customer-supplied contact/address form. It is mutated
// field by field by the caller and validated as a whole with Validate.
type CustomerForm struct {
	Name        string `json:"name"`
	Company     string `json:"company,omitempty"`
	Address     string `json:"address"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email,omitempty"`
	GSTRequired bool   `json:"gstRequired"`
	GSTNumber   string `json:"gstNumber,omitempty"`
}

// OrderLine is a cart line item frozen at order time, with the product name
// and unit price denormalized so the order no longer depends on the catalog.
type OrderLine struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

// LineTotal returns quantity x unit price for this line.
func (l OrderLine) LineTotal() int64 {
	return l.Quantity * l.UnitPrice
}

// Order is an ephemeral snapshot of a cart plus customer form, constructed
// once per checkout confirmation and immutable afterwards. Orders are never
// persisted by this core.
type Order struct {
	OrderID    string       `json:"orderId"`
	CreatedAt  time.Time    `json:"createdAt"`
	Items      []OrderLine  `json:"items"`
	Customer   CustomerForm `json:"customer"`
	TotalItems int64        `json:"totalItems"`
	Subtotal   int64        `json:"subtotal"`
}

// GatewayOrder is the order reference issued by the external payment gateway.
type GatewayOrder struct {
	OrderRef         string `json:"orderRef"`
	Currency         string `json:"currencyCode"`
	AmountMinorUnits int64  `json:"amountMinorUnits"`
}

// VerifyResult is the terminal outcome of a signature verification attempt.
type VerifyResult struct {
	Verified bool   `json:"verified"`
	Reason   string `json:"reason,omitempty"`
}

// CreateOrderRequest is the body of POST /api/create-order.
// Amount is the major-unit (rupee) price.
type CreateOrderRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// CreateOrderResponse is the success body of POST /api/create-order.
type CreateOrderResponse struct {
	OrderRef         string `json:"orderRef"`
	CurrencyCode     string `json:"currencyCode"`
	AmountMinorUnits int64  `json:"amountMinorUnits"`
}

// VerifyPaymentRequest is the body of POST /api/verify-payment. Field names
// follow the gateway's webhook convention.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// VerifyPaymentResponse is the body of POST /api/verify-payment responses.
// Status is "success" when the signature verified and "failed" otherwise.
type VerifyPaymentResponse struct {
	Status string `json:"status"`
}
