package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/checkout-service/docs"
	"github.com/SergeyBogomolovv/checkout-service/internal/app"
	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	"github.com/SergeyBogomolovv/checkout-service/internal/idempotency"
	"github.com/SergeyBogomolovv/checkout-service/internal/payment"
	"github.com/SergeyBogomolovv/checkout-service/internal/postgres"
	"github.com/SergeyBogomolovv/checkout-service/internal/repo"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/cache"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// @title           Checkout Service API
// @version         1.0
// @description     Документация HTTP API
// @BasePath        /api
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to migrate db", postgres.Migrate(db))
	logger.Info("postgres connected")

	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	defer rdb.Close()
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// Без Redis оформление работает, но без идемпотентности по ключу
		logger.Warn("redis unavailable", slog.Any("error", err))
	}

	if !conf.Stripe.CheckoutEnabled() {
		logger.Warn("STRIPE_SECRET_KEY is not set, checkout is disabled")
	}
	if !conf.Stripe.WebhookEnabled() {
		logger.Warn("STRIPE_WEBHOOK_SECRET is not set, payment events are rejected")
	}

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache[entities.Order](conf.Cache.Capacity, conf.Cache.TTL)
	idemStore := idempotency.NewRedisStore(rdb, conf.Redis.IdempotencyTTL)
	provider := payment.NewStripeProvider(logger, conf.Stripe)

	aggregator := service.NewCartAggregator(logger, store, store)
	checkoutService := service.NewCheckoutService(logger, txManager, aggregator, store, provider, idemStore)
	reconciler := service.NewWebhookReconciler(logger, provider, store, store, orderCache)
	relayReconciler := service.NewWebhookReconciler(logger, provider.RelayVerifier(), store, store, orderCache)
	orderService := service.NewOrderService(logger, store, orderCache)

	handler.RegisterMetrics()
	paymentHandler := handler.NewPaymentHandler(logger, checkoutService, reconciler)
	httpHandler := handler.NewHTTPHandler(logger, orderService)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, relayReconciler)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(paymentHandler, httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
