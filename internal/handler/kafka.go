package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/segmentio/kafka-go"
)

// kafkaHandler читает события оплаты, которые пересылает внешний relay:
// значение сообщения - исходное тело webhook, подпись - в заголовке Stripe-Signature.
// reconciler должен проверять подпись без допуска по времени: сообщение может ждать в топике сколько угодно.
type kafkaHandler struct {
	dlq        *kafka.Writer
	reader     *kafka.Reader
	logger     *slog.Logger
	reconciler Reconciler
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, reconciler Reconciler) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		reconciler: reconciler,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		if err := h.handleEvent(ctx, m); err != nil {
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleEvent(ctx context.Context, m kafka.Message) error {
	eventsInProgress.Inc()
	defer eventsInProgress.Dec()

	start := time.Now()
	defer func() { eventProcessingDuration.Observe(time.Since(start).Seconds()) }()

	signature := headerValue(m, SignatureHeader)

	var outcome service.Outcome
	fn := func() error {
		var err error
		outcome, err = h.reconciler.Reconcile(ctx, m.Value, signature)
		return err
	}

	// Ошибки подписи и формата не исправятся повтором
	err := utils.Retry(ctx, utils.DefaultRetryConfig, fn,
		entities.ErrInvalidSignature,
		entities.ErrMalformedEvent,
		entities.ErrPaymentUnavailable,
	)
	if err != nil {
		webhookEventsTotal.WithLabelValues("kafka", "error").Inc()
		return fmt.Errorf("failed to reconcile event: %w", err)
	}

	webhookEventsTotal.WithLabelValues("kafka", string(outcome)).Inc()
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}

func headerValue(m kafka.Message, key string) string {
	for _, hdr := range m.Headers {
		if strings.EqualFold(hdr.Key, key) {
			return string(hdr.Value)
		}
	}
	return ""
}
