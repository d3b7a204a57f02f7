package initializer

import (
	"context"

	"quiz-service/config"
	"quiz-service/infra/messaging"

	"go.uber.org/zap"
)

// InitMessaging connects to Kafka and starts the consumer that feeds handler. It returns
// nil when Kafka is disabled or unreachable; the service runs without an event stream then.
func InitMessaging(ctx context.Context, appConfig config.Config, handler messaging.HandlerFunc) *messaging.KafkaClient {
	if !appConfig.Kafka.Enabled {
		return nil
	}

	kafkaConfig := messaging.NewDefaultConfig(appConfig.Kafka.Brokers)
	if appConfig.Kafka.Topic != "" {
		kafkaConfig.Topic = appConfig.Kafka.Topic
	}
	if appConfig.Kafka.ConsumeTopic != "" {
		kafkaConfig.ConsumeTopic = appConfig.Kafka.ConsumeTopic
	}
	if appConfig.Kafka.DLQTopic != "" {
		kafkaConfig.DLQTopic = appConfig.Kafka.DLQTopic
	}
	if appConfig.Kafka.GroupID != "" {
		kafkaConfig.GroupID = appConfig.Kafka.GroupID
	}
	if appConfig.Kafka.MaxRetries > 0 {
		kafkaConfig.MaxRetries = appConfig.Kafka.MaxRetries
	}
	kafkaConfig.ClientID = appConfig.App.Name

	kafkaClient, err := messaging.NewKafkaClient(kafkaConfig)
	if err != nil {
		zap.L().Warn("Kafka unavailable, event stream disabled", zap.Strings("brokers", kafkaConfig.Brokers), zap.Error(err))
		return nil
	}
	zap.L().Info("Kafka client initialized",
		zap.String("topic", kafkaConfig.Topic), zap.String("consume_topic", kafkaConfig.ConsumeTopic))

	go func() {
		zap.L().Info("Starting Kafka consumer", zap.String("group_id", kafkaConfig.GroupID))
		if err := kafkaClient.ConsumeMessages(ctx, handler); err != nil {
			zap.L().Error("Kafka consumer stopped", zap.Error(err))
		}
	}()

	return kafkaClient
}
