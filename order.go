package storefront

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BrandPrefix is the 3-letter prefix on generated order ids.
const BrandPrefix = "ZHV"

// orderTimeLayout renders timestamps the way the storefront always has:
// dd/mm/yyyy, 24-hour time.
const orderTimeLayout = "02/01/2006, 15:04"

// OrderIDGenerator produces order identifiers.
type OrderIDGenerator func() string

// GenerateOrderID produces an identifier composed of the brand prefix, the 8
// least-significant decimal digits of the current Unix-epoch-millisecond
// timestamp, and a 3-digit zero-padded random suffix.
//
// The collision probability is non-zero; that is acceptable only because
// orders are not persisted or deduplicated here. Use UUIDOrderID where
// collision resistance matters.
func GenerateOrderID() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return fmt.Sprintf("%s%s%03d", BrandPrefix, ms[len(ms)-8:], rand.Intn(1000))
}

// UUIDOrderID returns a collision-resistant order id generator: prefix
// followed by a UUID v4 without hyphens (32 hex chars). An empty prefix
// defaults to the brand prefix.
func UUIDOrderID(prefix string) OrderIDGenerator {
	if prefix == "" {
		prefix = BrandPrefix
	}
	return func() string {
		return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")
	}
}

// NewOrder snapshots a cart and customer form into an immutable order.
// Product names and unit prices are denormalized into the order lines so the
// order no longer depends on the catalog. The form must already have been
// validated; NewOrder only fails if the cart references an unknown product.
func NewOrder(cart *Cart, form CustomerForm, orderID string, createdAt time.Time) (Order, error) {
	items := cart.Items()
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		p, err := cart.catalog.Lookup(item.ProductID)
		if err != nil {
			return Order{}, err
		}
		lines = append(lines, OrderLine{
			ProductID: item.ProductID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	totals := cart.Totals()
	return Order{
		OrderID:    orderID,
		CreatedAt:  createdAt,
		Items:      lines,
		Customer:   form,
		TotalItems: totals.TotalItems,
		Subtotal:   totals.Subtotal,
	}, nil
}

// FormatOrder renders an order into the human-readable summary handed to the
// messaging channel. It is pure presentation: identical inputs (including
// order id and timestamp) produce byte-identical output, and it cannot fail
// for any well-formed order. Validation happens before this point, never
// here.
func FormatOrder(order Order) string {
	var b strings.Builder

	rule := strings.Repeat("=", 27)
	sep := strings.Repeat("-", 27)

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "     ZHIVO CONSULTING\n")
	fmt.Fprintf(&b, "    ORDER CONFIRMATION\n")
	fmt.Fprintf(&b, "%s\n\n", rule)

	fmt.Fprintf(&b, "ORDER ID: %s\n", order.OrderID)
	fmt.Fprintf(&b, "Date & Time: %s\n\n", order.CreatedAt.Format(orderTimeLayout))

	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "CUSTOMER DETAILS\n")
	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "Name: %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "Company: %s\n", orNA(order.Customer.Company))
	fmt.Fprintf(&b, "Address: %s\n", order.Customer.Address)
	fmt.Fprintf(&b, "Mobile: %s\n", order.Customer.Mobile)
	fmt.Fprintf(&b, "Email: %s\n", orNA(order.Customer.Email))
	fmt.Fprintf(&b, "GST Required: %s\n", yesNo(order.Customer.GSTRequired))
	if order.Customer.GSTRequired {
		fmt.Fprintf(&b, "GST Number: %s\n", order.Customer.GSTNumber)
	}

	fmt.Fprintf(&b, "\n%s\n", sep)
	fmt.Fprintf(&b, "ORDER SUMMARY\n")
	fmt.Fprintf(&b, "%s\n\n", sep)

	for i, line := range order.Items {
		fmt.Fprintf(&b, "%d. %s x%d\n", i+1, line.Name, line.Quantity)
		fmt.Fprintf(&b, "   Unit Price: ₹%d | Amount: ₹%d\n\n", line.UnitPrice, line.LineTotal())
	}

	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "ORDER TOTAL\n")
	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "Total Items: %d\n", order.TotalItems)
	fmt.Fprintf(&b, "Subtotal: ₹%d\n", order.Subtotal)
	fmt.Fprintf(&b, "Shipping: FREE\n")
	fmt.Fprintf(&b, "GRAND TOTAL: ₹%d\n\n", order.Subtotal)

	fmt.Fprintf(&b, "Delivery Address:\n%s\n\n", order.Customer.Address)
	fmt.Fprintf(&b, "Contact: %s\n\n", order.Customer.Mobile)

	fmt.Fprintf(&b, "Thank you for shopping with Zhivo Consulting!\n")
	fmt.Fprintf(&b, "Save this order ID for future reference: %s\n", order.OrderID)

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
