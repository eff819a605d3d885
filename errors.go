package storefront

import "fmt"

// StoreError represents a storefront-specific error
type StoreError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Common error codes
const (
	ErrCodeUnknownProduct      = "unknown_product"
	ErrCodeItemNotFound        = "item_not_found"
	ErrCodeEmptyCart           = "empty_cart"
	ErrCodeValidationFailed    = "validation_failed"
	ErrCodeGatewayUnavailable  = "gateway_unavailable"
	ErrCodeGatewayRejected     = "gateway_rejected"
	ErrCodeSignatureMismatch   = "signature_mismatch"
	ErrCodeDeliveryUnconfirmed = "delivery_unconfirmed"
)

// NewStoreError creates a new store error
func NewStoreError(code, message string, details map[string]interface{}) *StoreError {
	return &StoreError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ErrorCode extracts the storefront error code from err, or "" if err is not
// a *StoreError.
func ErrorCode(err error) string {
	if se, ok := err.(*StoreError); ok {
		return se.Code
	}
	return ""
}
