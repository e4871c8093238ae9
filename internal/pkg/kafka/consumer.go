package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"freightdesk/internal/pkg/config"
	"freightdesk/pkg/logger"
)

// Consumer drives one consumer group over the order status topic.
type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := cfg.BrokerList()

	saramaConfig, err := ConsumerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("consumer config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topic", cfg.Topic),
	)

	if err := waitForTopic(ctx, kafkaLog, brokers, cfg.Topic, saramaConfig); err != nil {
		return nil, err
	}

	group, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group %s: %w", cfg.ConsumerGroup, err)
	}

	return &Consumer{
		log:     kafkaLog,
		group:   group,
		topics:  []string{cfg.Topic},
		handler: handler,
	}, nil
}

// Start blocks until ctx is cancelled or the group fails. Consume returns on
// every rebalance, so it is called again until then.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	go c.drainErrors(ctx)

	for {
		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.log.Error("kafka consumer failed", logger.NewField("error", err))
			return fmt.Errorf("consume %v: %w", c.topics, err)
		}

		if ctx.Err() != nil {
			c.log.Info("kafka consumer stopping")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

// drainErrors logs the errors sarama reports outside of Consume.
func (c *Consumer) drainErrors(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-c.group.Errors():
			if !ok {
				return
			}
			c.log.Warn("kafka consumer group error", logger.NewField("error", err))
		}
	}
}
