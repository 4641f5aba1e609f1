package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/sony/gobreaker/v2"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

const metadataUserID = "user_id"

type StripeProvider struct {
	logger   *slog.Logger
	cfg      config.Stripe
	sessions *session.Client
	breaker  *gobreaker.CircuitBreaker[*stripe.CheckoutSession]
}

type Option func(p *StripeProvider)

// WithBackend подменяет HTTP бэкенд Stripe, например на тестовый сервер.
func WithBackend(b stripe.Backend) Option {
	return func(p *StripeProvider) {
		p.sessions.B = b
	}
}

func NewStripeProvider(logger *slog.Logger, cfg config.Stripe, opts ...Option) *StripeProvider {
	logger = logger.With(slog.String("provider", "stripe"))

	p := &StripeProvider{
		logger: logger,
		cfg:    cfg,
		sessions: &session.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: cfg.APIKey,
		},
	}

	p.breaker = gobreaker.NewCircuitBreaker[*stripe.CheckoutSession](gobreaker.Settings{
		Name:        "stripe-checkout",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isClientError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Available false без ключа API или при открытом circuit breaker.
func (p *StripeProvider) Available() bool {
	return p.cfg.CheckoutEnabled() && p.breaker.State() != gobreaker.StateOpen
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.PaymentSession, error) {
	if !p.cfg.CheckoutEnabled() {
		return entities.PaymentSession{}, entities.ErrPaymentUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.RequestTimeout)
	defer cancel()

	params := p.sessionParams(req)
	params.Context = ctx

	s, err := p.breaker.Execute(func() (*stripe.CheckoutSession, error) {
		return p.sessions.New(params)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return entities.PaymentSession{}, fmt.Errorf("%w: %v", entities.ErrPaymentUnavailable, err)
	}
	if err != nil {
		return entities.PaymentSession{}, fmt.Errorf("%w: %s", entities.ErrPaymentProvider, providerMessage(err))
	}

	return entities.PaymentSession{ID: s.ID, URL: s.URL}, nil
}

func (p *StripeProvider) sessionParams(req entities.CheckoutSessionRequest) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, it := range req.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(p.cfg.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("%s - Size %s", it.ProductName, it.Size)),
				},
				UnitAmount: stripe.Int64(MinorUnits(it)),
			},
			Quantity: stripe.Int64(int64(it.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(p.cfg.SuccessURL),
		CancelURL:          stripe.String(p.cfg.CancelURL),
	}
	params.AddMetadata(metadataUserID, req.UserID)
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	return params
}

// MinorUnits цена позиции в копейках/центах.
func MinorUnits(it entities.LineItem) int64 {
	return it.UnitPrice.Shift(2).Round(0).IntPart()
}

type eventEnvelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string            `json:"id"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// VerifyEvent проверяет подпись события и разбирает только нужные поля.
// Метка времени подписи должна быть не старше webhook.DefaultTolerance.
func (p *StripeProvider) VerifyEvent(payload []byte, signature string) (entities.PaymentEvent, error) {
	return p.verify(payload, signature, func() error {
		return webhook.ValidatePayloadWithTolerance(payload, signature, p.cfg.WebhookSecret, webhook.DefaultTolerance)
	})
}

// RelayVerifier проверяет события, пришедшие через Kafka. Они могут лежать в топике
// дольше допуска по времени, поэтому проверяется только подпись.
type RelayVerifier struct {
	p *StripeProvider
}

func (p *StripeProvider) RelayVerifier() *RelayVerifier {
	return &RelayVerifier{p: p}
}

func (v *RelayVerifier) VerifyEvent(payload []byte, signature string) (entities.PaymentEvent, error) {
	return v.p.verify(payload, signature, func() error {
		return webhook.ValidatePayloadIgnoringTolerance(payload, signature, v.p.cfg.WebhookSecret)
	})
}

func (p *StripeProvider) verify(payload []byte, signature string, validate func() error) (entities.PaymentEvent, error) {
	if !p.cfg.WebhookEnabled() {
		return entities.PaymentEvent{}, entities.ErrPaymentUnavailable
	}

	if err := validate(); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %v", entities.ErrInvalidSignature, err)
	}

	var env eventEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %v", entities.ErrMalformedEvent, err)
	}
	if env.Type == "" {
		return entities.PaymentEvent{}, fmt.Errorf("%w: missing event type", entities.ErrMalformedEvent)
	}

	return entities.PaymentEvent{
		ID:        env.ID,
		Type:      env.Type,
		SessionID: env.Data.Object.ID,
		UserID:    env.Data.Object.Metadata[metadataUserID],
	}, nil
}

func isClientError(err error) bool {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.HTTPStatusCode >= 400 && se.HTTPStatusCode < 500 && se.HTTPStatusCode != http.StatusTooManyRequests
}

func providerMessage(err error) string {
	var se *stripe.Error
	if errors.As(err, &se) && se.Msg != "" {
		return se.Msg
	}
	return err.Error()
}
