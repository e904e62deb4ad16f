// Package rmqconsumer reads change events back off the broker and writes
// an audit line per delivery.
package rmqconsumer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"civic-issues-api/config"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
	closeOnce  sync.Once
}

func New(cfg config.MQ, logger *zap.Logger) *Consumer {
	return &Consumer{
		cfg: cfg,
		log: logger,
	}
}

func (c *Consumer) Connect(dsn string) error {
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}
	c.conn, c.chConsume = conn, ch

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

// Init binds the audit queue to every key in routingKeys and starts consuming.
func (c *Consumer) Init(routingKeys []string) error {
	if err := c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range routingKeys {
		if err := c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var err error
	c.chDelivery, err = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				return
			}
			if err := c.delivery(msg); err != nil {
				// alert
				c.log.Error("mq read message error", zap.Error(err))
			}
		case <-ctx.Done():
			c.Close()
			return
		}
	}
}

// Close releases the channel and connection. It is safe to call more than
// once and before Connect.
func (c *Consumer) Close() {
	c.closeOnce.Do(func() {
		if c.chConsume != nil {
			_ = c.chConsume.Close()
		}
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

type envelope struct {
	Id         string `json:"event_id"`
	Resource   string `json:"resource"`
	Action     string `json:"event_action"`
	ResourceID string `json:"resource_id"`
}

func (c *Consumer) delivery(msg amqp091.Delivery) error {
	var e envelope
	if err := json.Unmarshal(msg.Body, &e); err != nil {
		return fmt.Errorf("decode event %s: %w", msg.MessageId, err)
	}

	c.log.Info("change event",
		zap.String("routing_key", msg.RoutingKey),
		zap.String("event_id", e.Id),
		zap.String("resource", e.Resource),
		zap.String("action", e.Action),
		zap.String("resource_id", e.ResourceID),
		zap.ByteString("body", msg.Body),
	)

	return nil
}
