package events

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes booking outcome events to a durable queue. Publishing is
// fire-and-forget from the caller's perspective: the booking usecases log
// errors returned here but never fail an operation on them.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

func (s *Service) Publish(ctx context.Context, event models.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	s.log.Info("events.Publish message published",
		zap.String(constvars.LoggingQueueKey, s.queueName),
		zap.String("event_type", string(event.Type)),
		zap.String(constvars.LoggingSessionIDKey, event.SessionID),
	)
	return nil
}
