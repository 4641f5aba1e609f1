package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderReader, cache *mocks.MockCache)

	validOrder := entities.Order{ID: "123", UserID: "u1", Status: entities.OrderStatusPaid}
	pendingOrder := entities.Order{ID: "456", UserID: "u1", Status: entities.OrderStatusPending}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderReader, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(validOrder, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderReader, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(entities.Order{}, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validOrder).
					Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "pending order is not cached",
			orderID: "456",
			mockBehavior: func(orderRepo *mocks.MockOrderReader, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("456").
					Return(entities.Order{}, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "456").
					Return(pendingOrder, nil).Once()
			},
			want: pendingOrder,
		},
		{
			name:    "not found in repo",
			orderID: "not-exist",
			mockBehavior: func(orderRepo *mocks.MockOrderReader, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("not-exist").
					Return(entities.Order{}, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderReader, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(entities.Order{}, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validOrder).
					Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderReader(t)
			cache := mocks.NewMockCache(t)

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(discardLogger(), orderRepo, cache)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_Lists(t *testing.T) {
	dbError := errors.New("db error")
	orders := []entities.Order{{ID: "2", UserID: "u1"}, {ID: "1", UserID: "u1"}}

	t.Run("user orders", func(t *testing.T) {
		repo := mocks.NewMockOrderReader(t)
		repo.EXPECT().ListOrdersByUser(mock.Anything, "u1").Return(orders, nil)

		got, err := service.NewOrderService(discardLogger(), repo, mocks.NewMockCache(t)).ListUserOrders(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("latest orders", func(t *testing.T) {
		repo := mocks.NewMockOrderReader(t)
		repo.EXPECT().LatestOrders(mock.Anything, 10).Return(orders, nil)

		got, err := service.NewOrderService(discardLogger(), repo, mocks.NewMockCache(t)).ListOrders(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("repo error", func(t *testing.T) {
		repo := mocks.NewMockOrderReader(t)
		repo.EXPECT().LatestOrders(mock.Anything, 10).Return(nil, dbError)

		_, err := service.NewOrderService(discardLogger(), repo, mocks.NewMockCache(t)).ListOrders(context.Background(), 10)
		assert.ErrorIs(t, err, dbError)
	})
}

func TestOrderService_WarmUpCache(t *testing.T) {
	repo := mocks.NewMockOrderReader(t)
	cache := mocks.NewMockCache(t)

	orders := []entities.Order{
		{ID: "3", Status: entities.OrderStatusPending},
		{ID: "2", Status: entities.OrderStatusPaid},
		{ID: "1", Status: entities.OrderStatusDelivered},
	}
	repo.EXPECT().LatestOrders(mock.Anything, 100).Return(orders, nil)
	cache.EXPECT().Set("2", orders[1]).Return().Once()
	cache.EXPECT().Set("1", orders[2]).Return().Once()

	err := service.NewOrderService(discardLogger(), repo, cache).WarmUpCache(context.Background(), 100)
	assert.NoError(t, err)
}
