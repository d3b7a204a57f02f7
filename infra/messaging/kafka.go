package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, msg *Message) error

type KafkaClient struct {
	config    KafkaConfig
	writer    *kafka.Writer
	dlqWriter *kafka.Writer
}

func NewKafkaClient(config KafkaConfig) (*KafkaClient, error) {
	if len(config.Brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectionTimeout)
	defer cancel()

	dialer := &kafka.Dialer{Timeout: config.ConnectionTimeout, ClientID: config.ClientID}
	conn, err := dialer.DialContext(ctx, "tcp", config.Brokers[0])
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kafka: %w", err)
	}
	conn.Close()

	client := &KafkaClient{
		config: config,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(config.Brokers...),
			Topic:                  config.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			WriteTimeout:           config.ConnectionTimeout,
		},
	}
	if config.DLQTopic != "" {
		client.dlqWriter = &kafka.Writer{
			Addr:                   kafka.TCP(config.Brokers...),
			Topic:                  config.DLQTopic,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			WriteTimeout:           config.ConnectionTimeout,
		}
	}
	return client, nil
}

func (c *KafkaClient) PublishMessage(ctx context.Context, msg *Message) error {
	payload, err := Encode(msg)
	if err != nil {
		return err
	}
	return c.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Key),
		Value: payload,
		Time:  msg.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(msg.Type)},
		},
	})
}

// ConsumeMessages reads the consume topic until ctx ends. A message whose handler keeps
// failing after MaxRetries is parked on the DLQ topic and committed.
func (c *KafkaClient) ConsumeMessages(ctx context.Context, handler HandlerFunc) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  c.config.Brokers,
		GroupID:  c.config.GroupID,
		Topic:    c.config.ConsumeTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
	defer reader.Close()

	for {
		m, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		c.dispatch(ctx, m, handler)

		if err := reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			zap.L().Error("failed to commit kafka message", zap.Int64("offset", m.Offset), zap.Error(err))
		}
	}
}

func (c *KafkaClient) dispatch(ctx context.Context, m kafka.Message, handler HandlerFunc) {
	msg, err := Decode(m.Value)
	if err != nil {
		zap.L().Warn("dropping undecodable kafka message", zap.String("topic", m.Topic), zap.Int64("offset", m.Offset), zap.Error(err))
		c.park(ctx, m, err)
		return
	}

	attempts := c.config.MaxRetries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return
		}
		zap.L().Warn("kafka handler failed",
			zap.String("type", msg.Type), zap.String("id", msg.ID), zap.Int("attempt", attempt), zap.Error(err))
		if ctx.Err() != nil {
			return
		}
	}
	c.park(ctx, m, err)
}

func (c *KafkaClient) park(ctx context.Context, m kafka.Message, cause error) {
	if c.dlqWriter == nil {
		return
	}
	headers := append([]kafka.Header{}, m.Headers...)
	headers = append(headers, kafka.Header{Key: "error", Value: []byte(cause.Error())})
	if err := c.dlqWriter.WriteMessages(ctx, kafka.Message{Key: m.Key, Value: m.Value, Headers: headers}); err != nil {
		zap.L().Error("failed to write message to dlq", zap.Error(err))
	}
}

func (c *KafkaClient) Close() error {
	var errs []error
	if err := c.writer.Close(); err != nil {
		errs = append(errs, err)
	}
	if c.dlqWriter != nil {
		if err := c.dlqWriter.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
