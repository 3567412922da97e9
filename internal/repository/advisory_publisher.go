package repository

import (
	"context"
	"fmt"

	"AgriChain/internal/domain/models"
	pkgkafka "AgriChain/pkg/kafka"
	applogger "AgriChain/pkg/logger"
)

// KafkaAdvisoryPublisher streams generated advisories to a Kafka topic so
// downstream consumers (SMS gateways, analytics jobs) can react to them.
type KafkaAdvisoryPublisher struct {
	producer *pkgkafka.Producer
	topic    string
	l        *applogger.Logger
}

// NewKafkaAdvisoryPublisher creates the Kafka-backed publisher.
func NewKafkaAdvisoryPublisher(producer *pkgkafka.Producer, topic string, l *applogger.Logger) *KafkaAdvisoryPublisher {
	if topic == "" {
		topic = "agrichain.advisories"
	}
	return &KafkaAdvisoryPublisher{producer: producer, topic: topic, l: l}
}

// PublishAdvisory emits one advisory keyed by its id, so replays of the
// same advisory land on the same partition.
func (p *KafkaAdvisoryPublisher) PublishAdvisory(ctx context.Context, a *models.Advisory) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(a.AdvisoryID), a); err != nil {
		p.l.Error("publish advisory error",
			applogger.String("topic", p.topic),
			applogger.String("advisory_id", a.AdvisoryID),
			applogger.Error(err),
		)
		return fmt.Errorf("publish advisory: %w", err)
	}
	return nil
}

func (p *KafkaAdvisoryPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher discards advisories. Used when Kafka is disabled.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (NoopPublisher) PublishAdvisory(context.Context, *models.Advisory) error { return nil }
func (NoopPublisher) Close() error                                            { return nil }
