package entities

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Size      string
	Quantity  int
}

// LineItem снимок позиции корзины на момент оформления заказа.
// Цена и название копируются из товара и больше не перечитываются.
type LineItem struct {
	ProductID   string
	ProductName string
	Size        string
	Quantity    int
	UnitPrice   decimal.Decimal
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// ShippingAddress хранится как есть, без разбора полей.
type ShippingAddress json.RawMessage

func (a ShippingAddress) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	return a, nil
}

func (a *ShippingAddress) UnmarshalJSON(data []byte) error {
	*a = append((*a)[:0], data...)
	return nil
}

// Valid проверяет, что адрес - непустой JSON объект.
func (a ShippingAddress) Valid() bool {
	trimmed := bytes.TrimSpace(a)
	if len(trimmed) < 2 || trimmed[0] != '{' {
		return false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return false
	}
	return len(fields) > 0
}

type Order struct {
	ID               string
	UserID           string
	Items            []LineItem
	Total            decimal.Decimal
	Status           OrderStatus
	PaymentSessionID string
	ShippingAddress  ShippingAddress
	CreatedAt        time.Time
}

// PaymentEvent поля события платежного провайдера, которые читает сервис.
type PaymentEvent struct {
	ID        string
	Type      string
	SessionID string
	UserID    string
}

const EventCheckoutSessionCompleted = "checkout.session.completed"

func (e PaymentEvent) IsCheckoutCompleted() bool {
	return e.Type == EventCheckoutSessionCompleted
}

type CheckoutResult struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
	OrderID     string `json:"order_id"`
}

type CheckoutSessionRequest struct {
	UserID         string
	Items          []LineItem
	IdempotencyKey string
}

// PaymentSession сессия оплаты на стороне провайдера.
type PaymentSession struct {
	ID  string
	URL string
}
