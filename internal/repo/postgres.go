package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	uniqueViolation          pq.ErrorCode = "23505"
	orderSessionIDConstraint              = "orders_payment_session_id_key"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Товары и корзина принадлежат соседним сервисам, здесь только чтение и очистка корзины.

func (r *postgresRepo) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select("id", "name", "price").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := trm.Q(ctx, r.db).GetContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) GetCartItem(ctx context.Context, cartItemID string) (entities.CartItem, error) {
	query, args := r.qb.Select("id", "user_id", "product_id", "size", "quantity").
		From("cart_items").
		Where(sq.Eq{"id": cartItemID}).
		MustSql()

	var item CartItem
	err := trm.Q(ctx, r.db).GetContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to get cart item: %w", err)
	}
	return CartItemToEntity(item), nil
}

func (r *postgresRepo) DeleteCartItemsByUser(ctx context.Context, userID string) (int64, error) {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	res, err := trm.Q(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cart items: %w", err)
	}
	return res.RowsAffected()
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.UserID, o.Total, string(o.Status), nullString(o.PaymentSessionID),
			[]byte(o.ShippingAddress), o.CreatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	_, err := trm.Q(ctx, r.db).ExecContext(ctx, query, args...)
	if isUniqueViolation(err, orderSessionIDConstraint) {
		return entities.ErrDuplicatePaymentSession
	}
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == constraint
}

func (r *postgresRepo) SaveLineItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns(lineItemColumns...).
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.ProductName, it.Size, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	if _, err := trm.Q(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save line items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.getOrder(ctx, sq.Eq{"id": orderID})
}

func (r *postgresRepo) GetOrderBySessionID(ctx context.Context, sessionID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"payment_session_id": sessionID})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := trm.Q(ctx, r.db).GetContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.lineItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, items[order.ID]), nil
}

// SetOrderStatus выставляет статус, только если текущий статус не дальше по жизненному циклу.
// Повторная установка того же статуса считается успешной. Возвращает false, если заказ не обновлен.
func (r *postgresRepo) SetOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) (bool, error) {
	allowed := entities.StatusesBefore(status)
	from := make([]string, 0, len(allowed))
	for _, s := range allowed {
		from = append(from, string(s))
	}

	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": orderID, "status": from}).
		MustSql()

	res, err := trm.Q(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	return r.listOrders(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC"))
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return r.listOrders(ctx, r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)))
}

func (r *postgresRepo) listOrders(ctx context.Context, q sq.SelectBuilder) ([]entities.Order, error) {
	query, args := q.MustSql()

	var orders []Order
	if err := trm.Q(ctx, r.db).SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	items, err := r.lineItems(ctx, ids...)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, items[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) lineItems(ctx context.Context, orderIDs ...string) (map[string][]LineItem, error) {
	query, args := r.qb.Select(lineItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var items []LineItem
	if err := trm.Q(ctx, r.db).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select line items: %w", err)
	}

	res := make(map[string][]LineItem, len(orderIDs))
	for _, it := range items {
		res[it.OrderID] = append(res[it.OrderID], it)
	}
	return res, nil
}
