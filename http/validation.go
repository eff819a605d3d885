package http

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	storefront "github.com/zhivo/storefront"
)

// verifyPaymentSchema describes the expected shape of the verify-payment
// body. All three fields are required, non-empty strings; the signature must
// be lowercase hex, matching what the verifier compares against. Anything
// else is rejected before the verifier is consulted.
const verifyPaymentSchema = `{
	"type": "object",
	"required": ["razorpay_order_id", "razorpay_payment_id", "razorpay_signature"],
	"properties": {
		"razorpay_order_id":  {"type": "string", "minLength": 1},
		"razorpay_payment_id": {"type": "string", "minLength": 1},
		"razorpay_signature": {"type": "string", "pattern": "^[0-9a-f]+$"}
	},
	"additionalProperties": false
}`

var verifyPaymentSchemaLoader = gojsonschema.NewStringLoader(verifyPaymentSchema)

// ValidateVerifyPaymentBody validates and decodes a verify-payment request
// body. Returns the decoded request if valid, or an error naming the first
// schema violation.
func ValidateVerifyPaymentBody(body []byte) (*storefront.VerifyPaymentRequest, error) {
	result, err := gojsonschema.Validate(verifyPaymentSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("invalid verify-payment body: %v", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("invalid verify-payment body: %s", result.Errors()[0].String())
	}

	var req storefront.VerifyPaymentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("failed to parse verify-payment body: %v", err)
	}
	return &req, nil
}
