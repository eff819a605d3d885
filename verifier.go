package storefront

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// DefaultCurrency is the gateway currency for all orders.
const DefaultCurrency = "INR"

// minorUnitsPerRupee converts major-unit rupee prices to the gateway's
// minor-unit (paise) convention.
const minorUnitsPerRupee = 100

// PaymentGateway is the external payment-processing collaborator. It issues
// order references for a given minor-unit amount. Failures are reported as
// StoreErrors with code gateway_unavailable (payment system down) or
// gateway_rejected (payment declined) so callers can tell the two apart.
//
// Any timeout on the gateway call is the transport's responsibility; the
// verifier itself never retries.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency string) (GatewayOrder, error)
}

// Verifier recomputes and checks payment signatures against a shared secret,
// and creates gateway orders on the payment path.
//
// Verification is a two-state machine per attempt: an order reference is
// either Verified or Rejected on its first verification, with no retries
// inside this core. The two operations are stateless request/response calls
// and safe for concurrent use across different orders.
type Verifier struct {
	gateway PaymentGateway
	secret  []byte

	// Lifecycle hooks
	beforeVerifyHooks         []BeforeVerifyHook
	afterVerifyHooks          []AfterVerifyHook
	afterCreateOrderHooks     []AfterCreateOrderHook
	onCreateOrderFailureHooks []OnCreateOrderFailureHook
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithGateway sets the payment gateway collaborator. CreateOrder fails with
// gateway_unavailable when no gateway is configured.
func WithGateway(gateway PaymentGateway) VerifierOption {
	return func(v *Verifier) {
		v.gateway = gateway
	}
}

// NewVerifier creates a verifier for the given shared secret.
func NewVerifier(sharedSecret string, opts ...VerifierOption) *Verifier {
	v := &Verifier{secret: []byte(sharedSecret)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ============================================================================
// Hook Registration Methods
// ============================================================================

func (v *Verifier) OnBeforeVerify(hook BeforeVerifyHook) *Verifier {
	v.beforeVerifyHooks = append(v.beforeVerifyHooks, hook)
	return v
}

func (v *Verifier) OnAfterVerify(hook AfterVerifyHook) *Verifier {
	v.afterVerifyHooks = append(v.afterVerifyHooks, hook)
	return v
}

func (v *Verifier) OnAfterCreateOrder(hook AfterCreateOrderHook) *Verifier {
	v.afterCreateOrderHooks = append(v.afterCreateOrderHooks, hook)
	return v
}

func (v *Verifier) OnCreateOrderFailure(hook OnCreateOrderFailureHook) *Verifier {
	v.onCreateOrderFailureHooks = append(v.onCreateOrderFailureHooks, hook)
	return v
}

// ============================================================================
// Core Payment Methods
// ============================================================================

// CreateOrder asks the gateway for an order reference covering the given
// major-unit amount. The amount is converted to the gateway's minor-unit
// convention (x100). Gateway failures surface to the caller untouched; this
// core performs no retries and no fallback.
func (v *Verifier) CreateOrder(ctx context.Context, amountMajorUnits int64) (GatewayOrder, error) {
	if amountMajorUnits <= 0 {
		return GatewayOrder{}, NewStoreError(ErrCodeGatewayRejected,
			fmt.Sprintf("order amount must be positive, got %d", amountMajorUnits), nil)
	}
	if v.gateway == nil {
		return GatewayOrder{}, NewStoreError(ErrCodeGatewayUnavailable,
			"no payment gateway configured", nil)
	}

	hookCtx := CreateOrderContext{
		Ctx:              ctx,
		AmountMinorUnits: amountMajorUnits * minorUnitsPerRupee,
		Currency:         DefaultCurrency,
		Timestamp:        time.Now(),
	}

	start := time.Now()
	order, err := v.gateway.CreateOrder(ctx, hookCtx.AmountMinorUnits, hookCtx.Currency)
	duration := time.Since(start)

	if err != nil {
		for _, hook := range v.onCreateOrderFailureHooks {
			hook(CreateOrderFailureContext{CreateOrderContext: hookCtx, Error: err, Duration: duration})
		}
		return GatewayOrder{}, err
	}

	resultCtx := CreateOrderResultContext{CreateOrderContext: hookCtx, Order: order, Duration: duration}
	for _, hook := range v.afterCreateOrderHooks {
		_ = hook(resultCtx)
	}

	return order, nil
}

// ExpectedSignature recomputes the signature the gateway must have produced
// for the given order/payment pair: lowercase hex HMAC-SHA256 of
// "orderRef|paymentRef" under the shared secret.
func (v *Verifier) ExpectedSignature(orderRef, paymentRef string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderRef + "|" + paymentRef))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a claimed signature against the independently recomputed
// expectation. Equality yields Verified, anything else Rejected; a Rejected
// outcome is never recoverable into a success (fail-closed). Amount and
// product details do not influence the result.
//
// The expected signature is lowercase hex and the claimed string must match
// it exactly; an uppercase variant of a correct signature is rejected. The
// comparison runs through hmac.Equal, which is constant-time.
func (v *Verifier) Verify(orderRef, paymentRef, claimedSignature string) VerifyResult {
	hookCtx := VerifyContext{
		OrderRef:         orderRef,
		PaymentRef:       paymentRef,
		ClaimedSignature: claimedSignature,
		Timestamp:        time.Now(),
	}

	start := time.Now()
	result := v.verify(hookCtx)
	duration := time.Since(start)

	resultCtx := VerifyResultContext{VerifyContext: hookCtx, Result: result, Duration: duration}
	for _, hook := range v.afterVerifyHooks {
		_ = hook(resultCtx)
	}

	return result
}

func (v *Verifier) verify(hookCtx VerifyContext) VerifyResult {
	for _, hook := range v.beforeVerifyHooks {
		result, err := hook(hookCtx)
		if err != nil {
			return VerifyResult{Verified: false, Reason: err.Error()}
		}
		if result != nil && result.Abort {
			return VerifyResult{Verified: false, Reason: result.Reason}
		}
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(hookCtx.OrderRef + "|" + hookCtx.PaymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(hookCtx.ClaimedSignature)) {
		return VerifyResult{Verified: false, Reason: "signature mismatch"}
	}

	return VerifyResult{Verified: true}
}
