package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/northwind-service/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type OrderStatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, id string, status string) error
}

// Consumer listens for order lifecycle events and moves freshly created
// orders from pending to confirmed, standing in for a payment check.
type Consumer struct {
	client  *redis.Client
	updater OrderStatusUpdater
	log     *zap.Logger

	// delay before confirming a new order
	confirmDelay time.Duration
}

func NewConsumer(client *redis.Client, updater OrderStatusUpdater, log *zap.Logger) *Consumer {
	return &Consumer{
		client:       client,
		updater:      updater,
		log:          log,
		confirmDelay: 2 * time.Second,
	}
}

func (c *Consumer) Subscribe(ctx context.Context, channel string) {
	sub := c.client.Subscribe(ctx, channel)
	defer sub.Close()
	ch := sub.Channel()

	c.log.Info("subscribed to channel", zap.String("channel", channel))

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Channel == "order.created" {
				c.handleOrderCreated(ctx, msg.Payload)
			}
		}
	}
}

func (c *Consumer) handleOrderCreated(ctx context.Context, payload string) {
	var order model.Order
	if err := json.Unmarshal([]byte(payload), &order); err != nil {
		c.log.Error("failed to unmarshal order event", zap.Error(err))
		return
	}

	select {
	case <-ctx.Done():
		return
	case <-time.After(c.confirmDelay):
	}

	if c.updater == nil {
		return
	}
	if err := c.updater.UpdateOrderStatus(ctx, order.ID, model.StatusConfirmed); err != nil {
		c.log.Error("failed to confirm order", zap.String("order_id", order.ID), zap.Error(err))
		return
	}
	c.log.Info("order confirmed", zap.String("order_id", order.ID))
}
