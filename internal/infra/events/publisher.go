package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder счетчик опубликованных событий
type MetricsRecorder interface {
	RecordEventPublished(event, status string)
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Config параметры подключения к Kafka
type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher публикует события о бронированиях в Kafka
type Publisher struct {
	writer  messageWriter
	metrics MetricsRecorder
	log     Logger
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
}

// NewPublisher создает publisher поверх kafka-go writer
func NewPublisher(cfg Config, metrics MetricsRecorder, log Logger) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("%w: at least one broker is required", ErrInvalidConfig)
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{}, // события одного черновика в одной партиции
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: cfg.WriteTimeout,
		MaxAttempts:  3,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger:  kafka.LoggerFunc(log.Error),
	}

	return newPublisher(writer, metrics, log), nil
}

func newPublisher(w messageWriter, metrics MetricsRecorder, log Logger) *Publisher {
	return &Publisher{
		writer:  w,
		metrics: metrics,
		log:     log,
		now:     time.Now,
	}
}

// PublishConfirmed публикует booking.confirmed
func (p *Publisher) PublishConfirmed(ctx context.Context, data BookingData) error {
	return p.publish(ctx, EventBookingConfirmed, data)
}

// PublishPaymentFailed публикует booking.payment_failed
func (p *Publisher) PublishPaymentFailed(ctx context.Context, data BookingData) error {
	return p.publish(ctx, EventBookingPaymentFailed, data)
}

func (p *Publisher) publish(ctx context.Context, event string, data BookingData) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	value, err := json.Marshal(Envelope{
		Event:      event,
		Version:    envelopeVersion,
		OccurredAt: p.now().UTC(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	msg := kafka.Message{
		Key:   []byte(data.DraftID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.record(event, "error")
		p.log.Error("Failed to publish %s for order=%s: %v", event, data.OrderID, err)
		return fmt.Errorf("%w: %s: %v", ErrPublish, event, err)
	}

	p.record(event, "ok")
	p.log.Info("Published %s for order=%s", event, data.OrderID)
	return nil
}

func (p *Publisher) record(event, status string) {
	if p.metrics != nil {
		p.metrics.RecordEventPublished(event, status)
	}
}

// Close закрывает writer
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NoopPublisher используется, когда публикация событий выключена
type NoopPublisher struct{}

func (NoopPublisher) PublishConfirmed(context.Context, BookingData) error     { return nil }
func (NoopPublisher) PublishPaymentFailed(context.Context, BookingData) error { return nil }
func (NoopPublisher) Close() error                                          { return nil }
