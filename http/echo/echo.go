// Package echo mounts the storefront order/payment HTTP surface on an Echo
// router.
package echo

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	storefront "github.com/zhivo/storefront"
	storehttp "github.com/zhivo/storefront/http"
)

// RegisterPaymentRoutes mounts POST /api/create-order and
// POST /api/verify-payment on the given Echo instance.
func RegisterPaymentRoutes(e *echo.Echo, verifier *storefront.Verifier) {
	e.POST("/api/create-order", CreateOrderHandler(verifier))
	e.POST("/api/verify-payment", VerifyPaymentHandler(verifier))
}

// CreateOrderHandler returns the handler for POST /api/create-order.
func CreateOrderHandler(verifier *storefront.Verifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req storefront.CreateOrderRequest
		if err := c.Bind(&req); err != nil || req.Amount <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "amount must be a positive integer"})
		}

		order, err := verifier.CreateOrder(c.Request().Context(), req.Amount)
		if err != nil {
			code := storefront.ErrorCode(err)
			if code != storefront.ErrCodeGatewayRejected {
				code = storefront.ErrCodeGatewayUnavailable
			}
			return c.JSON(http.StatusBadGateway, map[string]string{"error": code})
		}

		return c.JSON(http.StatusOK, storefront.CreateOrderResponse{
			OrderRef:         order.OrderRef,
			CurrencyCode:     order.Currency,
			AmountMinorUnits: order.AmountMinorUnits,
		})
	}
}

// VerifyPaymentHandler returns the handler for POST /api/verify-payment.
// Malformed bodies fail closed with the same response as a signature
// mismatch.
func VerifyPaymentHandler(verifier *storefront.Verifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, storefront.VerifyPaymentResponse{Status: "failed"})
		}

		req, err := storehttp.ValidateVerifyPaymentBody(body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, storefront.VerifyPaymentResponse{Status: "failed"})
		}

		result := verifier.Verify(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
		if !result.Verified {
			return c.JSON(http.StatusBadRequest, storefront.VerifyPaymentResponse{Status: "failed"})
		}
		return c.JSON(http.StatusOK, storefront.VerifyPaymentResponse{Status: "success"})
	}
}
