package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eliteblog/events"
	"eliteblog/models"
)

type captureBus struct {
	published chan events.PostPublishedEvent
	err       error
}

func newCaptureBus(err error) *captureBus {
	return &captureBus{published: make(chan events.PostPublishedEvent, 1), err: err}
}

func (b *captureBus) Publish(_ context.Context, e events.PostPublishedEvent) error {
	b.published <- e
	return b.err
}

func (b *captureBus) Close() {}

func TestReceiveAcknowledgesImmediately(t *testing.T) {
	bus := newCaptureBus(nil)
	svc := NewPublishService(bus)

	ack := svc.Receive(models.Post{ID: "9", Title: "عنوان", Author: "كاتب", Category: "تقنية"})

	assert.True(t, ack.Success)
	assert.Equal(t, "Post received for publishing", ack.Message)
	assert.Equal(t, "عنوان", ack.Post.Title)
	assert.Equal(t, "كاتب", ack.Post.Author)

	select {
	case e := <-bus.published:
		assert.Equal(t, "9", e.PostID)
		assert.Equal(t, events.PostPublished, e.Type)
		assert.NotEmpty(t, e.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the publish notification to fire")
	}
}

func TestReceiveSucceedsWhenDeliveryFails(t *testing.T) {
	bus := newCaptureBus(errors.New("broker down"))
	svc := NewPublishService(bus)

	ack := svc.Receive(models.Post{Title: "عنوان", Author: "كاتب"})
	assert.True(t, ack.Success, "delivery failure must not gate the acknowledgement")

	<-bus.published
}
