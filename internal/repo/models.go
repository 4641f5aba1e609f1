package repo

import (
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID               string          `db:"id"`
	UserID           string          `db:"user_id"`
	Total            decimal.Decimal `db:"total"`
	Status           string          `db:"status"`
	PaymentSessionID *string         `db:"payment_session_id"`
	ShippingAddress  []byte          `db:"shipping_address"`
	CreatedAt        time.Time       `db:"created_at"`
}

type LineItem struct {
	OrderID     string          `db:"order_id"`
	Position    int             `db:"position"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Size        string          `db:"size"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}

type CartItem struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	ProductID string `db:"product_id"`
	Size      string `db:"size"`
	Quantity  int    `db:"quantity"`
}

type Product struct {
	ID    string          `db:"id"`
	Name  string          `db:"name"`
	Price decimal.Decimal `db:"price"`
}

var orderColumns = []string{
	"id", "user_id", "total", "status", "payment_session_id", "shipping_address", "created_at",
}

var lineItemColumns = []string{
	"order_id", "position", "product_id", "product_name", "size", "quantity", "unit_price",
}

func LineItemToEntity(li LineItem) entities.LineItem {
	return entities.LineItem{
		ProductID:   li.ProductID,
		ProductName: li.ProductName,
		Size:        li.Size,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
	}
}

func OrderToEntity(o Order, items []LineItem) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		UserID:          o.UserID,
		Total:           o.Total,
		Status:          entities.OrderStatus(o.Status),
		ShippingAddress: entities.ShippingAddress(o.ShippingAddress),
		CreatedAt:       o.CreatedAt,
	}
	if o.PaymentSessionID != nil {
		order.PaymentSessionID = *o.PaymentSessionID
	}

	order.Items = make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		order.Items = append(order.Items, LineItemToEntity(it))
	}
	return order
}

func CartItemToEntity(c CartItem) entities.CartItem {
	return entities.CartItem{
		ID:        c.ID,
		UserID:    c.UserID,
		ProductID: c.ProductID,
		Size:      c.Size,
		Quantity:  c.Quantity,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
