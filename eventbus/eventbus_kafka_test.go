package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"eliteblog/events"
)

// A delivery report that arrives after Publish has given up on the context
// must land in the (still open) delivery channel instead of crashing the
// producer goroutine.
func TestPublishSurvivesLateDeliveryReport(t *testing.T) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		// unroutable broker so the report is a fast local failure
		"bootstrap.servers":  "localhost:1",
		"message.timeout.ms": 100,
	})
	if err != nil {
		t.Skipf("kafka producer unavailable: %v", err)
	}
	defer p.Close()

	bus := &KafkaBus{producer: p, topic: "eliteblog.posts"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = bus.Publish(ctx, events.NewPostPublished("1", "عنوان", "فريق التحرير", "تقنية"))
	if err == nil {
		t.Fatal("expected an error for an expired context")
	}

	// wait out the message timeout so the failed report is delivered
	time.Sleep(500 * time.Millisecond)
}
