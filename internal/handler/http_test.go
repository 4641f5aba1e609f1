package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "5f0c7b7e-2a4e-4a55-9d59-0e3c2f1d8a11"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, h interface{ Init(r chi.Router) }, req *http.Request) (int, string) {
	t.Helper()

	r := chi.NewRouter()
	h.Init(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{
		ID:     orderID,
		UserID: "u1",
		Items: []entities.LineItem{
			{ProductID: "A", ProductName: "Air Jordan 1", Size: "10", Quantity: 2, UnitPrice: decimal.RequireFromString("100")},
		},
		Total:            decimal.RequireFromString("200"),
		Status:           entities.OrderStatusPaid,
		PaymentSessionID: "sess_123",
		ShippingAddress:  entities.ShippingAddress(`{"city":"Portland"}`),
		CreatedAt:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderGetter)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"paid"`,
		},
		{
			name:         "invalid id",
			orderID:      "not-a-uuid",
			mockBehavior: func(*mocks.MockOrderGetter) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:    "not found",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderGetter(t)
			tc.mockBehavior(svc)

			h := handler.NewHTTPHandler(discardLogger(), svc)
			status, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, orderID, resp["id"])
				assert.Equal(t, "200", resp["total"])
				assert.Equal(t, "sess_123", resp["stripe_payment_id"])
				assert.Equal(t, map[string]any{"city": "Portland"}, resp["shipping_address"])
			}
		})
	}
}

func TestHTTPHandler_ListUserOrders(t *testing.T) {
	svc := mocks.NewMockOrderGetter(t)
	svc.EXPECT().ListUserOrders(mock.Anything, "u1").
		Return([]entities.Order{{ID: "2", UserID: "u1"}, {ID: "1", UserID: "u1"}}, nil).Once()

	status, body := serve(t, handler.NewHTTPHandler(discardLogger(), svc),
		httptest.NewRequest(http.MethodGet, "/users/u1/orders", nil))

	require.Equal(t, http.StatusOK, status)
	var resp []handler.Order
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2", resp[0].ID)
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockOrderGetter)
		wantStatus   int
	}{
		{
			name:  "default limit",
			query: "",
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().ListOrders(mock.Anything, 100).Return([]entities.Order{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "custom limit",
			query: "?limit=5",
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().ListOrders(mock.Anything, 5).Return([]entities.Order{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "limit out of range",
			query:        "?limit=5000",
			mockBehavior: func(*mocks.MockOrderGetter) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "limit not a number",
			query:        "?limit=all",
			mockBehavior: func(*mocks.MockOrderGetter) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:  "repo error",
			query: "",
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().ListOrders(mock.Anything, 100).Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderGetter(t)
			tc.mockBehavior(svc)

			status, _ := serve(t, handler.NewHTTPHandler(discardLogger(), svc),
				httptest.NewRequest(http.MethodGet, "/admin/orders"+tc.query, nil))
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}
