package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"eliteblog/events"
	"eliteblog/logger"
)

// KafkaBus is the confluent-kafka-go backed Bus implementation.
type KafkaBus struct {
	producer *kafka.Producer
	topic    string
}

// NewKafkaBus initializes the producer against the given brokers.
func NewKafkaBus(brokers, topic string) (*KafkaBus, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	// drain delivery reports so the internal queue never fills up
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Log.Errorf("event delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				logger.Log.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &KafkaBus{producer: p, topic: topic}, nil
}

// Publish sends the event and waits for its delivery report. Callers run
// this off the request path; a failed delivery is logged, never retried.
func (k *KafkaBus) Publish(ctx context.Context, event events.PostPublishedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Buffered and never closed: when ctx expires before the delivery
	// report arrives, the producer can still drop the late report here and
	// the channel is simply collected.
	deliveryChan := make(chan kafka.Event, 1)

	err = k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &k.topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce event: %w", err)
	}

	select {
	case ev := <-deliveryChan:
		m := ev.(*kafka.Message)
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("event delivery failed: %w", m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// Close flushes pending messages and shuts the producer down.
func (k *KafkaBus) Close() {
	if k.producer != nil {
		if remaining := k.producer.Flush(5000); remaining > 0 {
			logger.Log.Warnf("%d events still queued after flush", remaining)
		}
		k.producer.Close()
	}
}
