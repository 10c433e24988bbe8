package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"boatsandjoy/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Publisher emits booking lifecycle events to the configured topic. Delivery
// is best effort: callers treat failures as log-and-continue.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
	Close() error
}

type publisherImpl struct {
	writer *kafkaGo.Writer
}

type noopPublisher struct {
}

func (n *noopPublisher) Publish(_ context.Context, _ Message) error {
	return nil
}

func (n *noopPublisher) Close() error {
	return nil
}

func New(config *config.Config) Publisher {
	kafkaCfg := config.Broker.Kafka

	if !kafkaCfg.Enable {
		log.Info().Msg("Kafka publisher disabled, booking events will not be emitted")

		return &noopPublisher{}
	}

	transport := &kafkaGo.Transport{}
	if kafkaCfg.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: kafkaCfg.Username,
			Password: kafkaCfg.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:      kafkaGo.TCP(kafkaCfg.Brokers...),
		Topic:     kafkaCfg.Topic,
		Balancer:  &kafkaGo.Hash{},
		Transport: transport,
	}

	log.Info().
		Strs("brokers", kafkaCfg.Brokers).
		Str("topic", kafkaCfg.Topic).
		Msg("Kafka publisher initialized")

	return &publisherImpl{
		writer: writer,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, message Message) error {
	kafkaMessage, err := message.ToKafkaMessage()
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafkaMessage); err != nil {
		log.Error().Err(err).Str("key", message.Key).Msg("Failed to publish message")

		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (p *publisherImpl) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}
