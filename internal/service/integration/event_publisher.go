package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/models"
)

const (
	gradeRoutingKey      = "grade.recorded"
	attendanceRoutingKey = "attendance.recorded"
)

type EventPublisher interface {
	PublishGradeRecorded(ctx context.Context, event *models.GradeRecordedEvent) error
	PublishAttendanceRecorded(ctx context.Context, event *models.AttendanceRecordedEvent) error
	Close() error
}

type eventPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	logger   zerolog.Logger
}

func NewEventPublisher(url, exchange string, logger zerolog.Logger) (EventPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Info().
		Str("exchange", exchange).
		Msg("Connected to RabbitMQ")

	return &eventPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func (p *eventPublisher) PublishGradeRecorded(ctx context.Context, event *models.GradeRecordedEvent) error {
	if err := p.publish(ctx, gradeRoutingKey, event); err != nil {
		return err
	}

	p.logger.Info().
		Int64("enrollment_id", event.EnrollmentID).
		Str("component", event.Component).
		Msg("Grade recorded event published")

	return nil
}

func (p *eventPublisher) PublishAttendanceRecorded(ctx context.Context, event *models.AttendanceRecordedEvent) error {
	if err := p.publish(ctx, attendanceRoutingKey, event); err != nil {
		return err
	}

	p.logger.Info().
		Int64("enrollment_id", event.EnrollmentID).
		Str("date", event.Date).
		Msg("Attendance recorded event published")

	return nil
}

func (p *eventPublisher) publish(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		publishCtx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (p *eventPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Error().Err(err).Msg("Failed to close RabbitMQ channel")
		}
	}

	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			p.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	return nil
}
