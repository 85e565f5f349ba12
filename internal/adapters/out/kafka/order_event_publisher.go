// Package kafka publishes order lifecycle events to a Kafka topic.
//
// Each changed order becomes one JSON OrderStatusChanged message keyed by the
// order id, so all events of one order land in the same partition in order.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"taxi/internal/core/domain/model/order"
	"taxi/internal/pkg/errs"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const OrderStatusChangedEventType = "OrderStatusChanged"

// OrderStatusChangedEvent is the wire form of a committed order change.
type OrderStatusChangedEvent struct {
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	OrderID    int       `json:"orderId"`
	Status     string    `json:"status"`
	DriverID   *int      `json:"driverId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewProducerConfig returns the sarama configuration the publisher expects
// from its SyncProducer.
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = 5 * time.Second
	return config
}

// NewSyncProducer connects a SyncProducer to the given brokers.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	return sarama.NewSyncProducer(brokers, NewProducerConfig())
}

// OrderEventPublisher implements ports.OrderEventPublisher over a sarama SyncProducer.
type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

func NewOrderEventPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	if producer == nil {
		return nil, errs.NewValueIsRequiredError("producer")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "order_event_publisher"),
	}, nil
}

// PublishOrderChanged sends one event per order in a single batch.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, orders ...*order.TaxiOrder) error {
	if len(orders) == 0 {
		return nil
	}

	messages := make([]*sarama.ProducerMessage, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}

		payload, err := json.Marshal(newOrderStatusChangedEvent(o))
		if err != nil {
			return err
		}

		messages = append(messages, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(strconv.Itoa(o.ID())),
			Value: sarama.ByteEncoder(payload),
		})
	}

	if len(messages) == 0 {
		return nil
	}

	if err := p.producer.SendMessages(messages); err != nil {
		var producerErrs sarama.ProducerErrors
		if errors.As(err, &producerErrs) {
			for _, pe := range producerErrs {
				p.logger.ErrorContext(ctx, "Failed to publish order event",
					"topic", p.topic, "key", pe.Msg.Key, "error", pe.Err)
			}
		}
		return err
	}

	for _, msg := range messages {
		p.logger.DebugContext(ctx, "Order event published",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "key", msg.Key)
	}

	return nil
}

// Close releases the underlying producer.
func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}

func newOrderStatusChangedEvent(o *order.TaxiOrder) OrderStatusChangedEvent {
	event := OrderStatusChangedEvent{
		EventID:    uuid.NewString(),
		EventType:  OrderStatusChangedEventType,
		OrderID:    o.ID(),
		Status:     o.Status().String(),
		OccurredAt: o.LastProgressTime().UTC(),
	}

	if d := o.Driver(); d != nil {
		id := d.ID()
		event.DriverID = &id
	}

	return event
}
