package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/suifund/crowdfunding-gobackend/internal/models"
	"go.uber.org/zap"
)

// DonationRecorded is the event type emitted once per recorded donation attempt.
const DonationRecorded = "donation.recorded"

// Publisher announces recorded donations to downstream consumers.
type Publisher interface {
	PublishDonation(ctx context.Context, txn *models.Transaction) error
	Close() error
}

var (
	_ Publisher = (*KafkaPublisher)(nil)
	_ Publisher = NopPublisher{}
)

// MessageWriter is the part of kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type donationMessage struct {
	Type string              `json:"type"`
	Data *models.Transaction `json:"data"`
	Time time.Time           `json:"time"`
}

// KafkaPublisher publishes recorded donations, keyed by campaign so that a
// campaign's events stay ordered within one partition.
type KafkaPublisher struct {
	writer MessageWriter
	topic  string
	logger *zap.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on brokers
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	logger.Info("Kafka publisher configured", zap.Strings("brokers", brokers), zap.String("topic", topic))
	return NewPublisherWithWriter(writer, topic, logger)
}

func NewPublisherWithWriter(writer MessageWriter, topic string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic, logger: logger}
}

func (p *KafkaPublisher) PublishDonation(ctx context.Context, txn *models.Transaction) error {
	if txn == nil {
		return fmt.Errorf("cannot publish nil transaction")
	}

	msgBytes, err := json.Marshal(donationMessage{Type: DonationRecorded, Data: txn, Time: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal donation message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(txn.CampaignID.Hex()),
		Value: msgBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to publish donation to kafka topic %s: %w", p.topic, err)
	}

	p.logger.Debug("Published donation",
		zap.String("tx_digest", txn.TxDigest),
		zap.String("status", txn.Status))
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}
	p.logger.Info("Disconnected from Kafka")
	return nil
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishDonation(context.Context, *models.Transaction) error { return nil }

func (NopPublisher) Close() error { return nil }
