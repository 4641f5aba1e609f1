package payment_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const webhookSecret = "whsec_test_secret"

func testConfig() config.Stripe {
	return config.Stripe{
		APIKey:         "sk_test_123",
		WebhookSecret:  webhookSecret,
		SuccessURL:     "http://localhost:3000/success",
		CancelURL:      "http://localhost:3000/cart",
		Currency:       "usd",
		RequestTimeout: 5 * time.Second,
	}
}

func newProvider(t *testing.T, cfg config.Stripe, handler http.HandlerFunc) *payment.StripeProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return payment.NewStripeProvider(logger, cfg, payment.WithBackend(backend))
}

func sessionRequest() entities.CheckoutSessionRequest {
	return entities.CheckoutSessionRequest{
		UserID: "u1",
		Items: []entities.LineItem{
			{ProductID: "A", ProductName: "Air Jordan 1", Size: "10", Quantity: 2, UnitPrice: decimal.RequireFromString("100")},
			{ProductID: "C", ProductName: "Dunk Low", Size: "9", Quantity: 1, UnitPrice: decimal.RequireFromString("129.99")},
		},
		IdempotencyKey: "idem-1",
	}
}

func TestStripeProvider_CreateCheckoutSession(t *testing.T) {
	p := newProvider(t, testConfig(), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "idem-1", r.Header.Get("Idempotency-Key"))
		assert.NoError(t, r.ParseForm())

		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[0]"))
		assert.Equal(t, "u1", r.PostForm.Get("metadata[user_id]"))
		assert.Equal(t, "usd", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "Air Jordan 1 - Size 10", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "10000", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "2", r.PostForm.Get("line_items[0][quantity]"))
		assert.Equal(t, "12999", r.PostForm.Get("line_items[1][price_data][unit_amount]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"cs_test_123","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_123"}`)
	})

	s, err := p.CreateCheckoutSession(context.Background(), sessionRequest())
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", s.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", s.URL)
}

func TestStripeProvider_CreateCheckoutSession_ProviderError(t *testing.T) {
	p := newProvider(t, testConfig(), func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"Amount must be at least 50 cents"}}`)
	})

	_, err := p.CreateCheckoutSession(context.Background(), sessionRequest())
	require.ErrorIs(t, err, entities.ErrPaymentProvider)
	assert.Contains(t, err.Error(), "Amount must be at least 50 cents")
}

func TestStripeProvider_CreateCheckoutSession_NotConfigured(t *testing.T) {
	var calls atomic.Int32
	cfg := testConfig()
	cfg.APIKey = ""

	p := newProvider(t, cfg, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	assert.False(t, p.Available())
	_, err := p.CreateCheckoutSession(context.Background(), sessionRequest())
	assert.ErrorIs(t, err, entities.ErrPaymentUnavailable)
	assert.Zero(t, calls.Load())
}

func TestStripeProvider_CircuitBreakerOpens(t *testing.T) {
	var calls atomic.Int32
	p := newProvider(t, testConfig(), func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"type":"api_error","message":"internal"}}`)
	})

	require.True(t, p.Available())
	for range 5 {
		_, err := p.CreateCheckoutSession(context.Background(), sessionRequest())
		require.ErrorIs(t, err, entities.ErrPaymentProvider)
	}
	assert.False(t, p.Available())

	_, err := p.CreateCheckoutSession(context.Background(), sessionRequest())
	assert.ErrorIs(t, err, entities.ErrPaymentUnavailable)
	assert.Equal(t, int32(5), calls.Load())
}

func TestStripeProvider_ClientErrorsDoNotOpenBreaker(t *testing.T) {
	var calls atomic.Int32
	p := newProvider(t, testConfig(), func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"bad"}}`)
	})

	for range 7 {
		_, err := p.CreateCheckoutSession(context.Background(), sessionRequest())
		require.ErrorIs(t, err, entities.ErrPaymentProvider)
	}
	assert.Equal(t, int32(7), calls.Load())
}

func signed(payload string, secret string, ts time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    secret,
		Timestamp: ts,
	}).Header
}

func TestStripeProvider_VerifyEvent(t *testing.T) {
	const completed = `{"id":"evt_1","object":"event","type":"checkout.session.completed",` +
		`"data":{"object":{"id":"sess_123","object":"checkout.session","metadata":{"user_id":"u1"}}}}`

	testCases := []struct {
		name      string
		cfg       func(c *config.Stripe)
		payload   string
		signature func(payload string) string
		want      entities.PaymentEvent
		wantErr   error
	}{
		{
			name:    "valid completed event",
			payload: completed,
			signature: func(payload string) string {
				return signed(payload, webhookSecret, time.Now())
			},
			want: entities.PaymentEvent{ID: "evt_1", Type: "checkout.session.completed", SessionID: "sess_123", UserID: "u1"},
		},
		{
			name:    "event without metadata",
			payload: `{"id":"evt_2","type":"checkout.session.expired","data":{"object":{"id":"sess_9"}}}`,
			signature: func(payload string) string {
				return signed(payload, webhookSecret, time.Now())
			},
			want: entities.PaymentEvent{ID: "evt_2", Type: "checkout.session.expired", SessionID: "sess_9"},
		},
		{
			name:    "wrong secret",
			payload: completed,
			signature: func(payload string) string {
				return signed(payload, "whsec_other", time.Now())
			},
			wantErr: entities.ErrInvalidSignature,
		},
		{
			name:    "missing signature",
			payload: completed,
			signature: func(string) string {
				return ""
			},
			wantErr: entities.ErrInvalidSignature,
		},
		{
			name:    "stale timestamp",
			payload: completed,
			signature: func(payload string) string {
				return signed(payload, webhookSecret, time.Now().Add(-time.Hour))
			},
			wantErr: entities.ErrInvalidSignature,
		},
		{
			name:    "malformed payload with valid signature",
			payload: `{"type":`,
			signature: func(payload string) string {
				return signed(payload, webhookSecret, time.Now())
			},
			wantErr: entities.ErrMalformedEvent,
		},
		{
			name:    "secret not configured",
			cfg:     func(c *config.Stripe) { c.WebhookSecret = "" },
			payload: completed,
			signature: func(payload string) string {
				return signed(payload, webhookSecret, time.Now())
			},
			wantErr: entities.ErrPaymentUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			if tc.cfg != nil {
				tc.cfg(&cfg)
			}
			p := payment.NewStripeProvider(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)

			got, err := p.VerifyEvent([]byte(tc.payload), tc.signature(tc.payload))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRelayVerifier_VerifyEvent(t *testing.T) {
	const completed = `{"id":"evt_1","type":"checkout.session.completed",` +
		`"data":{"object":{"id":"sess_123","metadata":{"user_id":"u1"}}}}`

	testCases := []struct {
		name    string
		cfg     func(c *config.Stripe)
		secret  string
		age     time.Duration
		wantErr error
	}{
		{name: "fresh event", secret: webhookSecret},
		{name: "event delayed in topic", secret: webhookSecret, age: 6 * time.Hour},
		{name: "wrong secret", secret: "whsec_other", age: 6 * time.Hour, wantErr: entities.ErrInvalidSignature},
		{
			name:    "secret not configured",
			cfg:     func(c *config.Stripe) { c.WebhookSecret = "" },
			secret:  webhookSecret,
			wantErr: entities.ErrPaymentUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			if tc.cfg != nil {
				tc.cfg(&cfg)
			}
			p := payment.NewStripeProvider(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)

			got, err := p.RelayVerifier().VerifyEvent([]byte(completed), signed(completed, tc.secret, time.Now().Add(-tc.age)))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.PaymentEvent{ID: "evt_1", Type: "checkout.session.completed", SessionID: "sess_123", UserID: "u1"}, got)
		})
	}
}

func TestMinorUnits(t *testing.T) {
	testCases := []struct {
		price string
		want  int64
	}{
		{"100", 10000},
		{"299.99", 29999},
		{"0.015", 2},
		{"19.994", 1999},
	}
	for _, tc := range testCases {
		t.Run(tc.price, func(t *testing.T) {
			li := entities.LineItem{UnitPrice: decimal.RequireFromString(tc.price)}
			assert.Equal(t, tc.want, payment.MinorUnits(li))
		})
	}
}
