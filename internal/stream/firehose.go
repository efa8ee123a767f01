package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/Fouss011/ayii-ratp/internal/config"
	"github.com/Fouss011/ayii-ratp/internal/domain"
)

// Firehose publishes every accepted report to a Kafka topic for downstream
// analytics. Best-effort: a publish failure never fails the report itself.
// With no brokers configured the firehose is a no-op.
type Firehose struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

func NewFirehose(cfg *config.Config, logger *slog.Logger) *Firehose {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("kafka firehose disabled (no brokers configured)")
		return &Firehose{logger: logger}
	}

	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.Topic,
		Balancer:     &kafkago.Hash{}, // partition by kind
		RequiredAcks: kafkago.RequireOne,
	}
	return &Firehose{writer: w, logger: logger}
}

func (f *Firehose) Enabled() bool { return f.writer != nil }

func (f *Firehose) Publish(ctx context.Context, report *domain.Report) error {
	if f.writer == nil {
		return nil
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("serialize report: %w", err)
	}

	return f.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(report.Kind),
		Value: data,
	})
}

func (f *Firehose) Close() error {
	if f.writer == nil {
		return nil
	}
	return f.writer.Close()
}
