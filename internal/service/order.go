package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
)

type OrderReader interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type Cache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
	Delete(key string)
}

type orderService struct {
	logger *slog.Logger
	repo   OrderReader
	cache  Cache
}

func NewOrderService(logger *slog.Logger, repo OrderReader, cache Cache) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if order, ok := s.cache.Get(orderID); ok {
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetryConfig, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if cacheable(order) {
		s.cache.Set(orderID, order)
	}
	return order, nil
}

// cacheable pending заказ может в любой момент стать paid через webhook,
// поэтому в кэш попадают только заказы, которые этот сервис уже не меняет.
func cacheable(order entities.Order) bool {
	return order.Status != entities.OrderStatusPending
}

func (s *orderService) ListUserOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	orders, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) ListOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	orders, err := s.repo.LatestOrders(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// WarmUpCache загружает последние заказы в кэш при старте.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	cached := 0
	for _, order := range orders {
		if !cacheable(order) {
			continue
		}
		s.cache.Set(order.ID, order)
		cached++
	}
	s.logger.InfoContext(ctx, "cache warmed up", slog.Int("orders", cached))
	return nil
}
