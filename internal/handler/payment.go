package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/idempotency"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const SignatureHeader = "Stripe-Signature"

type CheckoutService interface {
	Checkout(ctx context.Context, in service.CheckoutInput) (entities.CheckoutResult, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, payload []byte, signature string) (service.Outcome, error)
}

type PaymentHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	checkout   CheckoutService
	reconciler Reconciler
}

func NewPaymentHandler(logger *slog.Logger, checkout CheckoutService, reconciler Reconciler) *PaymentHandler {
	return &PaymentHandler{
		logger:     logger.With(slog.String("handler", "payment")),
		validate:   validator.New(),
		checkout:   checkout,
		reconciler: reconciler,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Post("/checkout", h.Checkout)
	r.Post("/webhook/stripe", h.Webhook)
}

// Checkout создает платежную сессию для позиций корзины.
// @Summary      Оформить заказ
// @Description  Собирает позиции корзины по актуальным ценам, создает сессию оплаты и заказ в статусе pending
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string           false  "Ключ идемпотентности"
// @Param        request          body      CheckoutRequest  true   "Позиции корзины и адрес доставки"
// @Success      200  {object}  CheckoutResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      400  {object}  utils.ErrorResponse "Нет товаров или оплата недоступна"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout [post]
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.checkout.Checkout(ctx, service.CheckoutInput{
		UserID:          req.UserID,
		CartItemIDs:     req.CartItems,
		ShippingAddress: req.ShippingAddress,
		IdempotencyKey:  idempotency.Key(r),
	})
	if err != nil {
		h.writeCheckoutError(ctx, w, err, req.UserID)
		return
	}

	checkoutsTotal.WithLabelValues("success").Inc()
	utils.WriteJSON(w, CheckoutResultToJSON(res), http.StatusOK)
}

func (h *PaymentHandler) writeCheckoutError(ctx context.Context, w http.ResponseWriter, err error, userID string) {
	switch {
	case errors.Is(err, entities.ErrNoValidItems):
		checkoutsTotal.WithLabelValues("no_items").Inc()
		utils.WriteError(w, "no valid items in cart", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidShippingAddress):
		checkoutsTotal.WithLabelValues("invalid").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrPaymentUnavailable):
		checkoutsTotal.WithLabelValues("unavailable").Inc()
		utils.WriteError(w, "payment processing unavailable", http.StatusBadRequest)
	case errors.Is(err, entities.ErrPaymentProvider):
		checkoutsTotal.WithLabelValues("provider_error").Inc()
		h.logger.WarnContext(ctx, "payment provider rejected checkout", slog.Any("error", err), slog.String("user_id", userID))
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		checkoutsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to checkout", slog.Any("error", err), slog.String("user_id", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// Webhook принимает события платежного провайдера.
// @Summary      Webhook Stripe
// @Description  Проверяет подпись события и переводит заказ в статус paid после успешной оплаты
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Подпись события"
// @Success      200  {object}  WebhookResponse
// @Failure      400  {object}  utils.ErrorResponse "Неверная подпись или событие"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /webhook/stripe [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := utils.ReadBody(r)
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.reconciler.Reconcile(ctx, payload, r.Header.Get(SignatureHeader))
	if err != nil {
		h.writeWebhookError(ctx, w, err)
		return
	}

	webhookEventsTotal.WithLabelValues("http", string(outcome)).Inc()
	utils.WriteJSON(w, WebhookResponse{Success: true}, http.StatusOK)
}

func (h *PaymentHandler) writeWebhookError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrInvalidSignature):
		webhookEventsTotal.WithLabelValues("http", "invalid_signature").Inc()
		h.logger.WarnContext(ctx, "webhook rejected", slog.Any("error", err))
		utils.WriteError(w, "invalid signature", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMalformedEvent):
		webhookEventsTotal.WithLabelValues("http", "malformed").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrPaymentUnavailable):
		webhookEventsTotal.WithLabelValues("http", "unavailable").Inc()
		utils.WriteError(w, "payment processing unavailable", http.StatusBadRequest)
	default:
		webhookEventsTotal.WithLabelValues("http", "error").Inc()
		h.logger.ErrorContext(ctx, "failed to reconcile payment event", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
