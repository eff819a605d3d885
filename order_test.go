package storefront

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIDPattern = regexp.MustCompile(`^ZHV[0-9]{11}$`)

func TestGenerateOrderID(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateOrderID()
		assert.Regexp(t, orderIDPattern, id)
	}
}

func TestUUIDOrderID(t *testing.T) {
	gen := UUIDOrderID("ORD")

	a, b := gen(), gen()
	assert.Regexp(t, `^ORD[0-9a-f]{32}$`, a)
	assert.NotEqual(t, a, b)

	assert.Regexp(t, `^ZHV[0-9a-f]{32}$`, UUIDOrderID("")())
}

func testOrder(t *testing.T) Order {
	t.Helper()
	cart := NewCart(DefaultCatalog())
	require.NoError(t, cart.Add(1))
	require.NoError(t, cart.SetQuantity(1, 2))

	form := validForm()
	created := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	order, err := NewOrder(cart, form, "ZHV12345678001", created)
	require.NoError(t, err)
	return order
}

func TestNewOrderSnapshot(t *testing.T) {
	cart := NewCart(DefaultCatalog())
	require.NoError(t, cart.Add(1))
	require.NoError(t, cart.Add(3))

	order, err := NewOrder(cart, validForm(), "ZHV12345678001", time.Now())
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Premium Laptop Bag", order.Items[0].Name)
	assert.Equal(t, int64(1899), order.Items[0].UnitPrice)
	assert.Equal(t, int64(2), order.TotalItems)
	assert.Equal(t, int64(1899+2499), order.Subtotal)

	// The snapshot must not track later cart mutations.
	cart.Clear()
	assert.Len(t, order.Items, 2)
}

func TestFormatOrderIdempotent(t *testing.T) {
	order := testOrder(t)
	assert.Equal(t, FormatOrder(order), FormatOrder(order),
		"identical inputs must produce byte-identical output")
}

func TestFormatOrderContents(t *testing.T) {
	order := testOrder(t)
	msg := FormatOrder(order)

	assert.Contains(t, msg, "ORDER ID: ZHV12345678001")
	assert.Contains(t, msg, "Date & Time: 15/06/2024, 14:30")
	assert.Contains(t, msg, "Name: Asha Rao")
	assert.Contains(t, msg, "Company: N/A")
	assert.Contains(t, msg, "Email: N/A")
	assert.Contains(t, msg, "GST Required: No")
	assert.NotContains(t, msg, "GST Number:")
	assert.Contains(t, msg, "Shipping: FREE")
	assert.Contains(t, msg, "Save this order ID for future reference: ZHV12345678001")
}

func TestFormatOrderGSTSection(t *testing.T) {
	order := testOrder(t)
	order.Customer.GSTRequired = true
	order.Customer.GSTNumber = "29ABCDE1234F1Z5"

	msg := FormatOrder(order)
	assert.Contains(t, msg, "GST Required: Yes")
	assert.Contains(t, msg, "GST Number: 29ABCDE1234F1Z5")
}

// End-to-end scenario from the storefront: two laptop bags at 1899 each.
func TestFormatOrderEndToEnd(t *testing.T) {
	cart := NewCart(DefaultCatalog())
	require.NoError(t, cart.Add(1))
	require.NoError(t, cart.SetQuantity(1, 2))

	assert.Equal(t, CartTotals{TotalItems: 2, Subtotal: 3798}, cart.Totals())

	order, err := NewOrder(cart, validForm(), "ZHV12345678001", time.Now())
	require.NoError(t, err)
	msg := FormatOrder(order)

	assert.Contains(t, msg, "Premium Laptop Bag x2")

	var grandTotal string
	for _, line := range strings.Split(msg, "\n") {
		if strings.HasPrefix(line, "GRAND TOTAL:") {
			grandTotal = line
		}
	}
	require.NotEmpty(t, grandTotal, "grand total line missing")
	assert.Equal(t, 1, strings.Count(grandTotal, "3798"))
}
