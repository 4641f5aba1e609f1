package service_test

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/idempotency"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/checkout-service/pkg/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memStore хранилище в памяти для сквозных сценариев.
type memStore struct {
	mu       sync.Mutex
	products map[string]entities.Product
	carts    map[string]entities.CartItem
	orders   map[string]entities.Order
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]entities.Product),
		carts:    make(map[string]entities.CartItem),
		orders:   make(map[string]entities.Order),
	}
}

func (s *memStore) GetCartItem(_ context.Context, id string) (entities.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.carts[id]
	if !ok {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	return item, nil
}

func (s *memStore) GetProduct(_ context.Context, id string) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return p, nil
}

func (s *memStore) DeleteCartItemsByUser(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, item := range s.carts {
		if item.UserID == userID {
			delete(s.carts, id)
			n++
		}
	}
	return n, nil
}

// CreateOrder повторяет ограничения таблицы orders: id и payment_session_id уникальны.
func (s *memStore) CreateOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.orders {
		if existing.ID != o.ID && o.PaymentSessionID != "" && existing.PaymentSessionID == o.PaymentSessionID {
			return entities.ErrDuplicatePaymentSession
		}
	}
	if _, ok := s.orders[o.ID]; !ok {
		o.Items = nil
		s.orders[o.ID] = o
	}
	return nil
}

func (s *memStore) SaveLineItems(_ context.Context, orderID string, items []entities.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.orders[orderID]
	if o.Items == nil {
		o.Items = slices.Clone(items)
		s.orders[orderID] = o
	}
	return nil
}

func (s *memStore) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (s *memStore) GetOrderBySessionID(_ context.Context, sessionID string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.PaymentSessionID == sessionID {
			return o, nil
		}
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (s *memStore) SetOrderStatus(_ context.Context, orderID string, status entities.OrderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok || !slices.Contains(entities.StatusesBefore(status), o.Status) {
		return false, nil
	}
	o.Status = status
	s.orders[orderID] = o
	return true, nil
}

func (s *memStore) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	all, _ := s.LatestOrders(ctx, len(s.orders))
	var res []entities.Order
	for _, o := range all {
		if o.UserID == userID {
			res = append(res, o)
		}
	}
	return res, nil
}

func (s *memStore) LatestOrders(_ context.Context, count int) ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]entities.Order, 0, len(s.orders))
	for _, o := range s.orders {
		res = append(res, o)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	if len(res) > count {
		res = res[:count]
	}
	return res, nil
}

func (s *memStore) snapshot() (map[string]entities.CartItem, map[string]entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	carts := make(map[string]entities.CartItem, len(s.carts))
	for k, v := range s.carts {
		carts[k] = v
	}
	orders := make(map[string]entities.Order, len(s.orders))
	for k, v := range s.orders {
		orders[k] = v
	}
	return carts, orders
}

type passTx struct{}

func (passTx) Do(ctx context.Context, cb func(ctx context.Context) error) error {
	return cb(ctx)
}

// staticVerifier принимает только подпись "valid".
type staticVerifier struct {
	event entities.PaymentEvent
}

func (v staticVerifier) VerifyEvent(_ []byte, signature string) (entities.PaymentEvent, error) {
	if signature != "valid" {
		return entities.PaymentEvent{}, entities.ErrInvalidSignature
	}
	return v.event, nil
}

type flow struct {
	store      *memStore
	provider   *mocks.MockPaymentProvider
	cache      *cache.LRUCache[entities.Order]
	checkout   interface {
		Checkout(ctx context.Context, in service.CheckoutInput) (entities.CheckoutResult, error)
	}
	reconciler func(ev entities.PaymentEvent) interface {
		Reconcile(ctx context.Context, payload []byte, signature string) (service.Outcome, error)
	}
}

func newFlow(t *testing.T) flow {
	return newFlowWithIdempotency(t, mocks.NewMockIdempotencyStore(t))
}

func newFlowWithIdempotency(t *testing.T, idem service.IdempotencyStore) flow {
	store := newMemStore()
	store.products["A"] = entities.Product{ID: "A", Name: "Air Jordan 1", Price: decimal.RequireFromString("100")}
	store.carts["c1"] = entities.CartItem{ID: "c1", UserID: "u1", ProductID: "A", Size: "10", Quantity: 2}
	// товар B удален из каталога
	store.carts["c2"] = entities.CartItem{ID: "c2", UserID: "u1", ProductID: "B", Size: "9", Quantity: 1}
	store.carts["c9"] = entities.CartItem{ID: "c9", UserID: "u2", ProductID: "A", Size: "8", Quantity: 1}

	provider := mocks.NewMockPaymentProvider(t)
	provider.EXPECT().Available().Return(true).Maybe()
	orderCache := cache.NewLRUCache[entities.Order](100, time.Minute)
	logger := discardLogger()

	agg := service.NewCartAggregator(logger, store, store)
	return flow{
		store:    store,
		provider: provider,
		cache:    orderCache,
		checkout: service.NewCheckoutService(logger, passTx{}, agg, store, provider, idem),
		reconciler: func(ev entities.PaymentEvent) interface {
			Reconcile(ctx context.Context, payload []byte, signature string) (service.Outcome, error)
		} {
			return service.NewWebhookReconciler(logger, staticVerifier{event: ev}, store, store, orderCache)
		},
	}
}

var completedEvent = entities.PaymentEvent{
	ID:        "evt_1",
	Type:      entities.EventCheckoutSessionCompleted,
	SessionID: "sess_123",
	UserID:    "u1",
}

func TestFlow_CheckoutThenPayment(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	f.provider.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).
		Return(entities.PaymentSession{ID: "sess_123", URL: "https://pay.example/sess_123"}, nil).Once()

	res, err := f.checkout.Checkout(ctx, service.CheckoutInput{
		UserID:          "u1",
		CartItemIDs:     []string{"c1", "c2"},
		ShippingAddress: testAddress,
	})
	require.NoError(t, err)
	assert.Equal(t, "sess_123", res.SessionID)

	order, err := f.store.GetOrderByID(ctx, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPending, order.Status)
	assert.True(t, decimal.NewFromInt(200).Equal(order.Total))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "A", order.Items[0].ProductID)
	assert.Equal(t, "10", order.Items[0].Size)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.JSONEq(t, string(testAddress), string(order.ShippingAddress))

	// заказ попадает в кэш до оплаты, после оплаты запись должна быть сброшена
	f.cache.Set(order.ID, order)

	r := f.reconciler(completedEvent)
	for range 2 {
		outcome, err := r.Reconcile(ctx, []byte(`{}`), "valid")
		require.NoError(t, err)
		assert.Equal(t, service.OutcomePaid, outcome)

		order, err = f.store.GetOrderByID(ctx, res.OrderID)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusPaid, order.Status)

		carts, _ := f.store.snapshot()
		assert.NotContains(t, carts, "c1")
		assert.NotContains(t, carts, "c2")
		assert.Contains(t, carts, "c9")

		_, cached := f.cache.Get(order.ID)
		assert.False(t, cached)
	}
}

func TestFlow_NoValidItems(t *testing.T) {
	f := newFlow(t)

	_, err := f.checkout.Checkout(context.Background(), service.CheckoutInput{
		UserID:          "u1",
		CartItemIDs:     []string{"c2", "missing"},
		ShippingAddress: testAddress,
	})
	assert.ErrorIs(t, err, entities.ErrNoValidItems)

	_, orders := f.store.snapshot()
	assert.Empty(t, orders)
}

func TestFlow_WebhookWithoutEffect(t *testing.T) {
	testCases := []struct {
		name      string
		event     entities.PaymentEvent
		signature string
		wantErr   error
	}{
		{
			name:      "invalid signature",
			event:     completedEvent,
			signature: "forged",
			wantErr:   entities.ErrInvalidSignature,
		},
		{
			name:      "unknown session",
			event:     entities.PaymentEvent{ID: "evt_9", Type: entities.EventCheckoutSessionCompleted, SessionID: "sess_unknown", UserID: "u1"},
			signature: "valid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFlow(t)
			ctx := context.Background()

			f.provider.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).
				Return(entities.PaymentSession{ID: "sess_123", URL: "https://pay.example/sess_123"}, nil).Once()
			_, err := f.checkout.Checkout(ctx, service.CheckoutInput{
				UserID: "u1", CartItemIDs: []string{"c1"}, ShippingAddress: testAddress,
			})
			require.NoError(t, err)

			cartsBefore, ordersBefore := f.store.snapshot()

			_, err = f.reconciler(tc.event).Reconcile(ctx, []byte(`{}`), tc.signature)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}

			cartsAfter, ordersAfter := f.store.snapshot()
			assert.Equal(t, cartsBefore, cartsAfter)
			assert.Equal(t, ordersBefore, ordersAfter)
		})
	}
}

// sessionPerKey ведет себя как провайдер: один ключ идемпотентности - одна сессия.
func sessionPerKey(calls *int) func(context.Context, entities.CheckoutSessionRequest) (entities.PaymentSession, error) {
	var mu sync.Mutex
	sessions := make(map[string]entities.PaymentSession)
	return func(_ context.Context, req entities.CheckoutSessionRequest) (entities.PaymentSession, error) {
		mu.Lock()
		defer mu.Unlock()
		*calls++
		if s, ok := sessions[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
			return s, nil
		}
		id := "sess_" + req.UserID + "_" + strconv.Itoa(*calls)
		s := entities.PaymentSession{ID: id, URL: "https://pay.example/" + id}
		sessions[req.IdempotencyKey] = s
		return s, nil
	}
}

func TestFlow_IdempotencyKeyScopedByUser(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	f := newFlowWithIdempotency(t, idempotency.NewRedisStore(client, time.Hour))
	ctx := context.Background()

	var calls int
	f.provider.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).RunAndReturn(sessionPerKey(&calls))

	first, err := f.checkout.Checkout(ctx, service.CheckoutInput{
		UserID: "u1", CartItemIDs: []string{"c1"}, ShippingAddress: testAddress, IdempotencyKey: "k",
	})
	require.NoError(t, err)

	other, err := f.checkout.Checkout(ctx, service.CheckoutInput{
		UserID: "u2", CartItemIDs: []string{"c9"}, ShippingAddress: testAddress, IdempotencyKey: "k",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, other.SessionID)
	assert.NotEqual(t, first.OrderID, other.OrderID)
	assert.Equal(t, 2, calls)

	order, err := f.store.GetOrderByID(ctx, other.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "u2", order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "8", order.Items[0].Size)

	replay, err := f.checkout.Checkout(ctx, service.CheckoutInput{
		UserID: "u1", CartItemIDs: []string{"c1"}, ShippingAddress: testAddress, IdempotencyKey: "k",
	})
	require.NoError(t, err)
	assert.Equal(t, first, replay)
	assert.Equal(t, 2, calls)
}

// downStore хранилище ключей идемпотентности при недоступном Redis.
type downStore struct{}

var errRedisDown = errors.New("dial tcp: connection refused")

func (downStore) Get(context.Context, string, string) (entities.CheckoutResult, error) {
	return entities.CheckoutResult{}, errRedisDown
}

func (downStore) Save(context.Context, string, string, entities.CheckoutResult) error {
	return errRedisDown
}

func TestFlow_RepeatedCheckoutWithoutIdempotencyStore(t *testing.T) {
	f := newFlowWithIdempotency(t, downStore{})
	ctx := context.Background()

	var calls int
	f.provider.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).RunAndReturn(sessionPerKey(&calls))

	in := service.CheckoutInput{UserID: "u1", CartItemIDs: []string{"c1"}, ShippingAddress: testAddress, IdempotencyKey: "k"}

	first, err := f.checkout.Checkout(ctx, in)
	require.NoError(t, err)

	// провайдер вернул ту же сессию, заказ второй раз не создается
	second, err := f.checkout.Checkout(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, calls)

	_, orders := f.store.snapshot()
	assert.Len(t, orders, 1)
}
