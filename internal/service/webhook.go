package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type EventVerifier interface {
	VerifyEvent(payload []byte, signature string) (entities.PaymentEvent, error)
}

type OrderStatusStore interface {
	GetOrderBySessionID(ctx context.Context, sessionID string) (entities.Order, error)
	// SetOrderStatus ничего не меняет, если заказ уже в этом статусе или дальше.
	SetOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) (bool, error)
}

type CartCleaner interface {
	DeleteCartItemsByUser(ctx context.Context, userID string) (int64, error)
}

// Outcome итог обработки события, используется в логах и метриках.
type Outcome string

const (
	OutcomeIgnored   Outcome = "ignored"
	OutcomeUnmatched Outcome = "unmatched"
	OutcomeStale     Outcome = "stale"
	OutcomePaid      Outcome = "paid"
)

type webhookReconciler struct {
	logger   *slog.Logger
	verifier EventVerifier
	orders   OrderStatusStore
	carts    CartCleaner
	cache    Cache
}

func NewWebhookReconciler(
	logger *slog.Logger,
	verifier EventVerifier,
	orders OrderStatusStore,
	carts CartCleaner,
	cache Cache,
) *webhookReconciler {
	return &webhookReconciler{
		logger:   logger.With(slog.String("service", "webhook")),
		verifier: verifier,
		orders:   orders,
		carts:    carts,
		cache:    cache,
	}
}

// Reconcile проверяет подпись события и применяет его к заказу.
// Все эффекты идемпотентны, повторная доставка события безопасна.
func (r *webhookReconciler) Reconcile(ctx context.Context, payload []byte, signature string) (Outcome, error) {
	event, err := r.verifier.VerifyEvent(payload, signature)
	if err != nil {
		return "", err
	}

	log := r.logger.With(
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	if !event.IsCheckoutCompleted() {
		log.DebugContext(ctx, "event ignored")
		return OutcomeIgnored, nil
	}

	order, err := r.orders.GetOrderBySessionID(ctx, event.SessionID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		log.WarnContext(ctx, "no order for payment session", slog.String("session_id", event.SessionID))
		return OutcomeUnmatched, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get order by session: %w", err)
	}
	log = log.With(slog.String("order_id", order.ID))

	if !order.Status.CanTransitionTo(entities.OrderStatusPaid) {
		log.WarnContext(ctx, "event skipped",
			slog.Any("error", fmt.Errorf("%w: %s -> %s", entities.ErrIllegalTransition, order.Status, entities.OrderStatusPaid)),
		)
		return OutcomeStale, nil
	}

	updated, err := r.orders.SetOrderStatus(ctx, order.ID, entities.OrderStatusPaid)
	if err != nil {
		return "", fmt.Errorf("failed to mark order paid: %w", err)
	}
	r.cache.Delete(order.ID)
	if updated {
		log.InfoContext(ctx, "order paid")
	}

	if event.UserID != "" {
		removed, err := r.carts.DeleteCartItemsByUser(ctx, event.UserID)
		if err != nil {
			return "", fmt.Errorf("failed to clear cart: %w", err)
		}
		log.DebugContext(ctx, "cart cleared", slog.String("user_id", event.UserID), slog.Int64("removed", removed))
	}

	return OutcomePaid, nil
}
