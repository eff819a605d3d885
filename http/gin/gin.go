// Package gin mounts the storefront order/payment HTTP surface on a Gin
// router.
package gin

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	storefront "github.com/zhivo/storefront"
	storehttp "github.com/zhivo/storefront/http"
)

// RegisterPaymentRoutes mounts POST /api/create-order and
// POST /api/verify-payment on the given router.
func RegisterPaymentRoutes(r gin.IRouter, verifier *storefront.Verifier) {
	r.POST("/api/create-order", CreateOrderHandler(verifier))
	r.POST("/api/verify-payment", VerifyPaymentHandler(verifier))
}

// CreateOrderHandler returns the handler for POST /api/create-order.
// The body carries the major-unit price; the gateway order comes back in
// minor units. Gateway failures map to 502 so callers can tell "payment
// system down" from a declined payment in the body's error code.
func CreateOrderHandler(verifier *storefront.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req storefront.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive integer"})
			return
		}

		order, err := verifier.CreateOrder(c.Request.Context(), req.Amount)
		if err != nil {
			if storefront.ErrorCode(err) == storefront.ErrCodeGatewayRejected {
				c.JSON(http.StatusBadGateway, gin.H{"error": storefront.ErrCodeGatewayRejected})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": storefront.ErrCodeGatewayUnavailable})
			return
		}

		c.JSON(http.StatusOK, storefront.CreateOrderResponse{
			OrderRef:         order.OrderRef,
			CurrencyCode:     order.Currency,
			AmountMinorUnits: order.AmountMinorUnits,
		})
	}
}

// VerifyPaymentHandler returns the handler for POST /api/verify-payment.
// The body is schema-checked before the verifier is consulted; malformed
// bodies fail closed with the same response as a signature mismatch.
func VerifyPaymentHandler(verifier *storefront.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, storefront.VerifyPaymentResponse{Status: "failed"})
			return
		}

		req, err := storehttp.ValidateVerifyPaymentBody(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, storefront.VerifyPaymentResponse{Status: "failed"})
			return
		}

		result := verifier.Verify(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
		if !result.Verified {
			c.JSON(http.StatusBadRequest, storefront.VerifyPaymentResponse{Status: "failed"})
			return
		}
		c.JSON(http.StatusOK, storefront.VerifyPaymentResponse{Status: "success"})
	}
}
