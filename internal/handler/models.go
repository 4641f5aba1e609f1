package handler

import (
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
)

// CheckoutRequest запрос на оформление заказа
type CheckoutRequest struct {
	UserID          string                   `json:"user_id" validate:"required"`
	CartItems       []string                 `json:"cart_items" validate:"required,min=1,dive,required"`
	ShippingAddress entities.ShippingAddress `json:"shipping_address" validate:"required" swaggertype:"object"`
}

// CheckoutResponse ссылка на оплату и созданный заказ
type CheckoutResponse struct {
	Success     bool   `json:"success"`
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
	OrderID     string `json:"order_id"`
}

// WebhookResponse подтверждение приема события
type WebhookResponse struct {
	Success bool `json:"success"`
}

// Order представляет заказ
type Order struct {
	ID               string                   `json:"id"`
	UserID           string                   `json:"user_id"`
	Items            []LineItem               `json:"items"`
	Total            decimal.Decimal          `json:"total" swaggertype:"string" example:"200.00"`
	Status           string                   `json:"status" enums:"pending,paid,shipped,delivered"`
	PaymentSessionID string                   `json:"stripe_payment_id,omitempty"`
	ShippingAddress  entities.ShippingAddress `json:"shipping_address" swaggertype:"object"`
	CreatedAt        time.Time                `json:"created_at"`
}

// LineItem позиция заказа
type LineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"100.00"`
}

func CheckoutResultToJSON(r entities.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Success:     true,
		SessionID:   r.SessionID,
		CheckoutURL: r.CheckoutURL,
		OrderID:     r.OrderID,
	}
}

func LineItemEntityToJSON(li entities.LineItem) LineItem {
	return LineItem{
		ProductID:   li.ProductID,
		ProductName: li.ProductName,
		Size:        li.Size,
		Quantity:    li.Quantity,
		Price:       li.UnitPrice,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemEntityToJSON(it))
	}

	return Order{
		ID:               o.ID,
		UserID:           o.UserID,
		Items:            items,
		Total:            o.Total,
		Status:           o.Status.String(),
		PaymentSessionID: o.PaymentSessionID,
		ShippingAddress:  o.ShippingAddress,
		CreatedAt:        o.CreatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}
