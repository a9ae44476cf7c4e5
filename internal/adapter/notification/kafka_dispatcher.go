// Package notification dispatches order confirmations over Kafka. Dispatch is
// fire-and-forget: a failed write is the caller's to log, never to escalate.
package notification

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rl1809/checkout/internal/port"
)

type KafkaDispatcher struct {
	writer *kafka.Writer
}

// NewKafkaDispatcher builds a dispatcher from a comma-separated broker list.
// An empty list yields a disabled dispatcher whose Dispatch is a no-op.
func NewKafkaDispatcher(brokersCSV, topic string) *KafkaDispatcher {
	var brokers []string
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return &KafkaDispatcher{}
	}
	return &KafkaDispatcher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (d *KafkaDispatcher) Enabled() bool {
	return d.writer != nil
}

func (d *KafkaDispatcher) Dispatch(ctx context.Context, n port.Notification) error {
	if d.writer == nil {
		return nil
	}
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return d.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.Recipient),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

func (d *KafkaDispatcher) Close() error {
	if d.writer == nil {
		return nil
	}
	return d.writer.Close()
}
