package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/google/uuid"
)

type Aggregator interface {
	Aggregate(ctx context.Context, cartItemIDs []string) (Aggregation, error)
}

type PaymentProvider interface {
	// Available false, если оплата не настроена или провайдер недоступен.
	Available() bool
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.PaymentSession, error)
}

type OrderWriter interface {
	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING.
	// CreateOrder возвращает ErrDuplicatePaymentSession, если у сессии уже есть другой заказ.
	CreateOrder(ctx context.Context, o entities.Order) error
	SaveLineItems(ctx context.Context, orderID string, items []entities.LineItem) error
	GetOrderBySessionID(ctx context.Context, sessionID string) (entities.Order, error)
}

// IdempotencyStore ключи изолированы по пользователю.
type IdempotencyStore interface {
	Get(ctx context.Context, userID, key string) (entities.CheckoutResult, error)
	Save(ctx context.Context, userID, key string, res entities.CheckoutResult) error
}

type CheckoutInput struct {
	UserID          string
	CartItemIDs     []string
	ShippingAddress entities.ShippingAddress
	IdempotencyKey  string
}

var persistRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 50 * time.Millisecond,
	MaxDelay:     time.Second,
	Multiplier:   2,
}

type checkoutService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	aggregator Aggregator
	orders     OrderWriter
	provider   PaymentProvider
	idem       IdempotencyStore
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	aggregator Aggregator,
	orders OrderWriter,
	provider PaymentProvider,
	idem IdempotencyStore,
) *checkoutService {
	return &checkoutService{
		logger:     logger.With(slog.String("service", "checkout")),
		txManager:  txManager,
		aggregator: aggregator,
		orders:     orders,
		provider:   provider,
		idem:       idem,
	}
}

// Checkout создает платежную сессию и сохраняет заказ в статусе pending.
func (s *checkoutService) Checkout(ctx context.Context, in CheckoutInput) (entities.CheckoutResult, error) {
	if !s.provider.Available() {
		return entities.CheckoutResult{}, entities.ErrPaymentUnavailable
	}

	if in.IdempotencyKey != "" {
		if res, ok := s.lookup(ctx, in.UserID, in.IdempotencyKey); ok {
			return res, nil
		}
	}

	if !in.ShippingAddress.Valid() {
		return entities.CheckoutResult{}, entities.ErrInvalidShippingAddress
	}

	agg, err := s.aggregator.Aggregate(ctx, in.CartItemIDs)
	if err != nil {
		return entities.CheckoutResult{}, err
	}

	session, err := s.provider.CreateCheckoutSession(ctx, entities.CheckoutSessionRequest{
		UserID:         in.UserID,
		Items:          agg.Items,
		IdempotencyKey: providerIdempotencyKey(in.UserID, in.IdempotencyKey),
	})
	if err != nil {
		return entities.CheckoutResult{}, fmt.Errorf("failed to create payment session: %w", err)
	}

	order := entities.Order{
		ID:               uuid.NewString(),
		UserID:           in.UserID,
		Items:            agg.Items,
		Total:            agg.Total,
		Status:           entities.OrderStatusPending,
		PaymentSessionID: session.ID,
		ShippingAddress:  in.ShippingAddress,
		CreatedAt:        time.Now().UTC(),
	}

	err = utils.Retry(ctx, persistRetry, func() error { return s.saveOrder(ctx, order) }, entities.ErrDuplicatePaymentSession)
	if errors.Is(err, entities.ErrDuplicatePaymentSession) {
		// Провайдер вернул сессию повторного запроса, заказ под нее уже сохранен.
		existing, lookupErr := s.orders.GetOrderBySessionID(ctx, session.ID)
		if lookupErr != nil {
			return entities.CheckoutResult{}, fmt.Errorf("failed to get order by session: %w", lookupErr)
		}
		s.logger.InfoContext(ctx, "checkout replayed by payment session",
			slog.String("order_id", existing.ID),
			slog.String("session_id", session.ID),
		)
		order = existing
		err = nil
	}
	if err != nil {
		// Сессия у провайдера уже создана, заказа под нее нет.
		s.logger.ErrorContext(ctx, "orphaned payment session",
			slog.String("session_id", session.ID),
			slog.String("user_id", in.UserID),
			slog.Any("error", err),
		)
		return entities.CheckoutResult{}, fmt.Errorf("failed to persist order: %w", err)
	}

	res := entities.CheckoutResult{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
		OrderID:     order.ID,
	}

	s.logger.InfoContext(ctx, "checkout session created",
		slog.String("order_id", order.ID),
		slog.String("session_id", session.ID),
		slog.String("total", order.Total.StringFixed(2)),
	)

	if in.IdempotencyKey != "" {
		if err := s.idem.Save(ctx, in.UserID, in.IdempotencyKey, res); err != nil {
			s.logger.WarnContext(ctx, "failed to save idempotency key", slog.Any("error", err))
		}
	}
	return res, nil
}

func (s *checkoutService) lookup(ctx context.Context, userID, key string) (entities.CheckoutResult, bool) {
	res, err := s.idem.Get(ctx, userID, key)
	if err == nil {
		s.logger.DebugContext(ctx, "checkout replayed", slog.String("order_id", res.OrderID))
		return res, true
	}
	if !errors.Is(err, entities.ErrIdempotencyKeyNotFound) {
		s.logger.WarnContext(ctx, "idempotency lookup failed", slog.Any("error", err))
	}
	return entities.CheckoutResult{}, false
}

func (s *checkoutService) saveOrder(ctx context.Context, order entities.Order) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := s.orders.SaveLineItems(ctx, order.ID, order.Items); err != nil {
			return fmt.Errorf("failed to save line items: %w", err)
		}
		return nil
	})
}

// providerIdempotencyKey ключ для провайдера, чтобы одинаковые ключи разных пользователей не склеивались.
func providerIdempotencyKey(userID, key string) string {
	if key == "" {
		return ""
	}
	return userID + ":" + key
}
