package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/oticaroyal/panel/internal/entity"
	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l               *slog.Logger
	w               *kafka.Writer
	orderEventTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:               l,
		w:               w,
		orderEventTopic: topic,
	}
}

const (
	EventOrderCreated = "order_created"
	EventOrderUpdated = "order_updated"
	EventOrderDeleted = "order_deleted"
)

type OrderEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Type        string    `json:"type"`
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	ClientID    int64     `json:"client_id"`
	SellerID    int64     `json:"seller_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (p *Producer) OrderCreated(ctx context.Context, order entity.Order) {
	p.send(ctx, EventOrderCreated, order)
}

func (p *Producer) OrderUpdated(ctx context.Context, order entity.Order) {
	p.send(ctx, EventOrderUpdated, order)
}

func (p *Producer) OrderDeleted(ctx context.Context, order entity.Order) {
	p.send(ctx, EventOrderDeleted, order)
}

func (p *Producer) send(ctx context.Context, eventType string, order entity.Order) {
	event := OrderEvent{
		EventID:     uuid.Must(uuid.NewV4()),
		Type:        eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		ClientID:    order.ClientID,
		SellerID:    order.SellerID,
		OccurredAt:  time.Now(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.OrderNumber),
		Value: b,
		Topic: p.orderEventTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (k *infoLogger) Printf(format string, args ...any) {
	k.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (k *errorLogger) Printf(format string, args ...any) {
	k.l.Error(fmt.Sprintf(format, args...))
}
