package mq

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"civic-issues-api/config"
)

// "Rely on metrics, not guesses."
const bufferSize = 128

var ErrClosed = errors.New("mq: publisher stopped")

type (
	publishChannel interface {
		PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
		Close() error
	}
	RabbitMQ struct {
		cfg   config.MQ
		log   *zap.Logger
		conn  *amqp091.Connection
		pubCh publishChannel
		in    chan Event
		done  chan struct{}
	}
)

func New(cfg config.MQ, logger *zap.Logger) *RabbitMQ {
	return &RabbitMQ{
		cfg:  cfg,
		log:  logger,
		in:   make(chan Event, bufferSize),
		done: make(chan struct{}),
	}
}

func (r *RabbitMQ) Connect(ctx context.Context, dsn string) error {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	amqpCfg := amqp091.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Properties: amqp091.Table{
			"connection_name": "civicissuesapi",
		},
		Dial: func(network, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, addr)
		},
	}

	conn, err := amqp091.DialConfig(dsn, amqpCfg)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}
	if err = declare(ch, r.cfg); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	r.conn, r.pubCh = conn, ch
	r.log.Info("rabbitmq connected successfully", zap.String("exchange", r.cfg.Exchange))

	return nil
}

func declare(ch *amqp091.Channel, cfg config.MQ) error {
	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}
	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	for _, rk := range RoutingKeys() {
		if err = ch.QueueBind(q.Name, rk, cfg.Exchange, false, nil); err != nil {
			return err
		}
	}

	return nil
}

// Publish queues e for the worker. It blocks while the buffer is full, until
// ctx ends or the worker stops.
func (r *RabbitMQ) Publish(ctx context.Context, e Event) error {
	select {
	case <-r.done:
		return ErrClosed
	default:
	}

	select {
	case r.in <- e:
		return nil
	case <-r.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *RabbitMQ) PublisherWorker(ctx context.Context) {
	r.log.Info("starting publisher worker")

	defer func() {
		close(r.done)
		if r.pubCh != nil {
			_ = r.pubCh.Close()
		}
		r.log.Info("publisher worker gracefully stopped")
	}()

	for {
		select {
		case e := <-r.in:
			if err := r.publish(ctx, e); err != nil {
				// alert
				r.log.Error("mq publish error",
					zap.String("routing_key", e.RoutingKey()),
					zap.String("event_id", e.Id.String()),
					zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (r *RabbitMQ) publish(ctx context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	pub := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    e.Id.String(),
		Timestamp:    e.TS,
		Type:         e.RoutingKey(),
		Body:         b,
	}

	return r.pubCh.PublishWithContext(
		ctx,
		r.cfg.Exchange,
		e.RoutingKey(),
		false,
		false,
		pub,
	)
}

func (r *RabbitMQ) Close() {
	if r.conn != nil {
		_ = r.conn.Close()
	}
}

// Nop drops every event. It stands in when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
