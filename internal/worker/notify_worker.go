package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/repository"
)

const (
	eventQueueName = "order.events"
	dlxExchange    = "order.events.dlx"
	dlqQueueName   = "order.events.dlq"
	notifiedTTL    = 24 * time.Hour
)

// NotifyWorker consumes order events (placed, status changed) and records
// a customer-notification marker per order+status. Duplicate deliveries
// are skipped via a redis idempotency key.
type NotifyWorker struct {
	channel     *amqp.Channel
	orderRepo   repository.OrderRepository
	redisClient *redis.Client
	log         *slog.Logger
	done        chan struct{}
}

func NewNotifyWorker(
	ch *amqp.Channel,
	orderRepo repository.OrderRepository,
	redisClient *redis.Client,
	log *slog.Logger,
) *NotifyWorker {
	return &NotifyWorker{
		channel:     ch,
		orderRepo:   orderRepo,
		redisClient: redisClient,
		log:         log,
		done:        make(chan struct{}),
	}
}

// SetupRabbitMQ declares the event queue and its DLX/DLQ.
func SetupRabbitMQ(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(dlxExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare DLX: %w", err)
	}
	if _, err := ch.QueueDeclare(dlqQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare DLQ: %w", err)
	}
	if err := ch.QueueBind(dlqQueueName, eventQueueName, dlxExchange, false, nil); err != nil {
		return fmt.Errorf("bind DLQ: %w", err)
	}
	if _, err := ch.QueueDeclare(eventQueueName, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    dlxExchange,
		"x-dead-letter-routing-key": eventQueueName,
	}); err != nil {
		return fmt.Errorf("declare event queue: %w", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set QoS: %w", err)
	}
	return nil
}

func (w *NotifyWorker) Start(ctx context.Context) error {
	msgs, err := w.channel.Consume(eventQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				w.processMessage(ctx, msg)
			case <-w.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	w.log.Info("notify worker started")
	return nil
}

func (w *NotifyWorker) Stop() { close(w.done) }

func (w *NotifyWorker) processMessage(ctx context.Context, msg amqp.Delivery) {
	var event model.OrderEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		w.log.Error("unmarshal order event", "error", err)
		_ = msg.Nack(false, false)
		return
	}

	log := w.log.With("order_id", event.OrderID, "status", event.Status)

	notifiedKey := fmt.Sprintf("order_notified:%s:%s", event.OrderID, event.Status)
	exists, err := w.redisClient.Exists(ctx, notifiedKey).Result()
	if err != nil {
		log.Error("check notified key", "error", err)
		_ = msg.Nack(false, true)
		return
	}
	if exists > 0 {
		log.Info("already notified, skipping")
		_ = msg.Ack(false)
		return
	}

	if err := w.notify(ctx, event); err != nil {
		log.Error("notify failed", "error", err)
		_ = msg.Nack(false, false) // to DLQ
		return
	}

	if err := w.redisClient.Set(ctx, notifiedKey, "1", notifiedTTL).Err(); err != nil {
		log.Error("set notified key", "error", err)
	}

	_ = msg.Ack(false)
	log.Info("customer notified")
}

func (w *NotifyWorker) notify(ctx context.Context, event model.OrderEvent) error {
	order, found, err := w.orderRepo.GetByID(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if !found {
		return fmt.Errorf("order not found: %s", event.OrderID)
	}

	// The storefront only ever showed an in-app confirmation; the SMS hook
	// logs where a real sender would go.
	w.log.Info("order update sent",
		"order_id", order.ID,
		"phone", order.UserPhone,
		"status", event.Status,
		"progress", event.Status.Progress(),
	)
	return nil
}
