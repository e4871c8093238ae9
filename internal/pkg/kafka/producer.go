package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"freightdesk/internal/pkg/config"
	"freightdesk/pkg/logger"
)

// NewSyncProducer connects a producer for the delivery status topic.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	brokers := cfg.BrokerList()

	saramaConfig, err := ProducerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("producer config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Producer.Topic),
	)

	if err := waitForTopic(ctx, kafkaLog, brokers, cfg.Producer.Topic, saramaConfig); err != nil {
		return nil, err
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}

	kafkaLog.Info("kafka producer ready")
	return producer, nil
}
