// Package eventbus publishes application events. The bus is strictly a
// notification channel: no handler in this process consumes the events.
package eventbus

import (
	"context"

	"eliteblog/events"
)

// Bus publishes events to an external broker.
type Bus interface {
	Publish(ctx context.Context, event events.PostPublishedEvent) error
	Close()
}

// NopBus drops events. Used when no brokers are configured.
type NopBus struct{}

func (NopBus) Publish(context.Context, events.PostPublishedEvent) error { return nil }
func (NopBus) Close()                                                   {}
