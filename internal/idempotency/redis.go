package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/redis/go-redis/v9"
)

const Header = "Idempotency-Key"

// Key достает ключ идемпотентности из заголовка запроса.
func Key(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(Header))
}

// RedisStore хранит результаты оформления заказа по ключу идемпотентности.
// Ключ действует только в пределах пользователя.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, userID, key string) (entities.CheckoutResult, error) {
	data, err := s.client.Get(ctx, storeKey(userID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.CheckoutResult{}, entities.ErrIdempotencyKeyNotFound
	}
	if err != nil {
		return entities.CheckoutResult{}, fmt.Errorf("redis get failed: %w", err)
	}

	var res entities.CheckoutResult
	if err := json.Unmarshal(data, &res); err != nil {
		return entities.CheckoutResult{}, fmt.Errorf("unmarshal checkout result failed: %w", err)
	}
	return res, nil
}

// Save сохраняет результат, только если по ключу еще ничего нет: первый результат выигрывает.
func (s *RedisStore) Save(ctx context.Context, userID, key string, res entities.CheckoutResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal checkout result failed: %w", err)
	}

	if err := s.client.SetNX(ctx, storeKey(userID, key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func storeKey(userID, key string) string {
	return fmt.Sprintf("checkout:idempotency:%s:%s", userID, key)
}
