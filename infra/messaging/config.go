package messaging

import "time"

type KafkaConfig struct {
	Brokers           []string
	Topic             string
	ConsumeTopic      string
	DLQTopic          string
	GroupID           string
	ClientID          string
	MaxRetries        int
	ConnectionTimeout time.Duration
}

func NewDefaultConfig(kafkaBrokers []string) KafkaConfig {
	if len(kafkaBrokers) == 0 {
		kafkaBrokers = []string{"localhost:9092"}
	}

	return KafkaConfig{
		Brokers:           kafkaBrokers,
		Topic:             "quiz-events",
		ConsumeTopic:      "user-events",
		DLQTopic:          "quiz-events-dlq",
		GroupID:           "quiz-service",
		ClientID:          "quiz-service",
		MaxRetries:        3,
		ConnectionTimeout: 10 * time.Second,
	}
}
