package kafka

import (
	"context"
	"fmt"
	"slices"

	"github.com/IBM/sarama"

	"freightdesk/internal/pkg/config"
	"freightdesk/pkg/logger"
	"freightdesk/pkg/retrier/backoff_adapter"
)

const clientID = "freightdesk"

// ConsumerConfig reads the group from the oldest offset so a fresh group replays the backlog.
func ConsumerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	saramaConfig, err := baseConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, err
	}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = cfg.Sarama.ConsumerOffsetsAutocommit
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}
	return saramaConfig, nil
}

// ProducerConfig waits for every in-sync replica and keys partitions by message key.
func ProducerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	saramaConfig, err := baseConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, err
	}
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Retry.Max = cfg.Producer.RetryMax
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner
	return saramaConfig, nil
}

func baseConfig(version string) (*sarama.Config, error) {
	parsed, err := sarama.ParseKafkaVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", version, err)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = clientID
	saramaConfig.Version = parsed
	return saramaConfig, nil
}

// waitForTopic blocks until the brokers answer and list topic.
func waitForTopic(ctx context.Context, log logger.Logger, brokers []string, topic string, saramaConfig *sarama.Config) error {
	return backoff_adapter.WaitReady(ctx, log, backoff_adapter.StartupConfig, "kafka", func(context.Context) error {
		client, err := sarama.NewClient(brokers, saramaConfig)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Warn("failed to close kafka probe client", logger.NewField("error", err))
			}
		}()

		topics, err := client.Topics()
		if err != nil {
			return err
		}
		if !slices.Contains(topics, topic) {
			return fmt.Errorf("topic %q does not exist yet", topic)
		}
		return nil
	})
}
