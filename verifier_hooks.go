package storefront

import (
	"context"
	"time"
)

// ============================================================================
// Verifier Hook Context Types
// ============================================================================

// VerifyContext contains information passed to verify hooks
type VerifyContext struct {
	OrderRef         string
	PaymentRef       string
	ClaimedSignature string
	Timestamp        time.Time
}

// VerifyResultContext contains a verify outcome and its context
type VerifyResultContext struct {
	VerifyContext
	Result   VerifyResult
	Duration time.Duration
}

// CreateOrderContext contains information passed to create-order hooks
type CreateOrderContext struct {
	Ctx              context.Context
	AmountMinorUnits int64
	Currency         string
	Timestamp        time.Time
}

// CreateOrderResultContext contains a gateway order and its context
type CreateOrderResultContext struct {
	CreateOrderContext
	Order    GatewayOrder
	Duration time.Duration
}

// CreateOrderFailureContext contains a gateway failure and its context
type CreateOrderFailureContext struct {
	CreateOrderContext
	Error    error
	Duration time.Duration
}

// ============================================================================
// Verifier Hook Result Types
// ============================================================================

// BeforeHookResult represents the result of a "before" hook
// If Abort is true, the operation will be aborted with the given Reason
type BeforeHookResult struct {
	Abort  bool
	Reason string
}

// ============================================================================
// Verifier Hook Function Types
// ============================================================================

// BeforeVerifyHook is called before signature verification
// If it returns a result with Abort=true, verification is skipped and a
// Rejected result is returned with the provided reason. Aborting can only
// ever fail closed; no hook can turn a mismatch into a Verified result.
type BeforeVerifyHook func(VerifyContext) (*BeforeHookResult, error)

// AfterVerifyHook is called after every verification attempt, Verified or
// Rejected. Any error returned is ignored and never affects the result.
type AfterVerifyHook func(VerifyResultContext) error

// AfterCreateOrderHook is called after a gateway order is created
// Any error returned is ignored and never affects the result.
type AfterCreateOrderHook func(CreateOrderResultContext) error

// OnCreateOrderFailureHook is called when gateway order creation fails.
// The failure still propagates to the caller untouched; there is no recovery
// path and no automatic retry.
type OnCreateOrderFailureHook func(CreateOrderFailureContext)
