package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"stampcard/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher implements EventPublisher on a durable RabbitMQ queue
type rabbitMQPublisher struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitMQPublisher dials the broker and declares the durable event queue
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	p := &rabbitMQPublisher{
		url:    url,
		queue:  queue,
		logger: logger,
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("queue", queue))

	return p, nil
}

// connect opens a connection and channel; callers hold mu or own p exclusively.
func (p *rabbitMQPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errors.Wrap(err, "rabbitmq dial failed")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "rabbitmq channel open failed")
	}

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return errors.Wrapf(err, "rabbitmq queue declare %s failed", p.queue)
	}

	p.conn = conn
	p.ch = ch

	return nil
}

// PublishLoyaltyEvent publishes a persistent JSON message to the queue
func (p *rabbitMQPublisher) PublishLoyaltyEvent(ctx context.Context, event *service.LoyaltyEvent) error {
	body, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range attrs {
		headers[k] = v
	}

	pub := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Type:          string(event.Type),
		Timestamp:     event.OccurredAt.UTC(),
		Headers:       headers,
		Body:          body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Reconnect once if the broker dropped the connection since the last publish.
	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	if err := p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		return errors.Wrap(err, "rabbitmq publish failed")
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
	)

	return nil
}

// Close closes the channel and connection
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
