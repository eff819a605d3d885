package storefront

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is an optional prometheus registry that plugs into the verifier
// and checkout hooks. The library itself never requires it.
type Metrics struct {
	reg             *prometheus.Registry
	OrdersPlaced    prometheus.Counter
	GatewayOrders   prometheus.Counter
	GatewayFailures prometheus.Counter
	Verified        prometheus.Counter
	Rejected        prometheus.Counter
}

// NewMetrics creates and registers the storefront counters.
func NewMetrics() *Metrics {
	r := prometheus.NewRegistry()
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_orders_placed_total"})
	gatewayOrders := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_gateway_orders_total"})
	gatewayFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_gateway_failures_total"})
	verified := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_verifications_verified_total"})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_verifications_rejected_total"})

	r.MustRegister(ordersPlaced, gatewayOrders, gatewayFailures, verified, rejected)
	return &Metrics{
		reg:             r,
		OrdersPlaced:    ordersPlaced,
		GatewayOrders:   gatewayOrders,
		GatewayFailures: gatewayFailures,
		Verified:        verified,
		Rejected:        rejected,
	}
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Instrument wires the metrics into a verifier's lifecycle hooks.
func (m *Metrics) Instrument(v *Verifier) *Verifier {
	v.OnAfterVerify(func(ctx VerifyResultContext) error {
		if ctx.Result.Verified {
			m.Verified.Inc()
		} else {
			m.Rejected.Inc()
		}
		return nil
	})
	v.OnAfterCreateOrder(func(CreateOrderResultContext) error {
		m.GatewayOrders.Inc()
		return nil
	})
	v.OnCreateOrderFailure(func(CreateOrderFailureContext) {
		m.GatewayFailures.Inc()
	})
	return v
}

// OrderPlacedHook counts completed checkouts; register it with
// CheckoutService.OnOrderPlaced.
func (m *Metrics) OrderPlacedHook() OrderPlacedHook {
	return func(OrderPlacedContext) error {
		m.OrdersPlaced.Inc()
		return nil
	}
}
