package entities

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrProductNotFound  = errors.New("product not found")

	ErrNoValidItems            = errors.New("no valid items in cart")
	ErrInvalidShippingAddress  = errors.New("shipping address is required")
	ErrIllegalTransition       = errors.New("illegal order status transition")
	ErrDuplicatePaymentSession = errors.New("payment session already has an order")

	ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")

	ErrPaymentUnavailable = errors.New("payment processing unavailable")
	ErrPaymentProvider    = errors.New("payment provider error")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrMalformedEvent     = errors.New("malformed webhook event")
)
