package kafka

import (
	"fmt"

	"github.com/IBM/sarama"

	"cryptoshop/internal/pkg/config"
	"cryptoshop/pkg/logger"
)

// NewSyncProducer создает синхронный producer: подтверждение от всех реплик,
// публикация события считается успешной только после ack.
func NewSyncProducer(log logger.Logger, cfg *config.Kafka, brokers []string) (sarama.SyncProducer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	log.With(
		logger.NewField("brokers", brokers),
	).Info("Kafka producer created")

	return producer, nil
}
