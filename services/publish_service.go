package services

import (
	"context"
	"time"

	"eliteblog/dto"
	"eliteblog/eventbus"
	"eliteblog/events"
	"eliteblog/logger"
	"eliteblog/models"
)

// PublishService acknowledges publish requests and notifies downstream
// consumers. The acknowledgement never waits on delivery: a broker outage
// must not fail the author's save.
type PublishService struct {
	bus eventbus.Bus
}

func NewPublishService(bus eventbus.Bus) *PublishService {
	return &PublishService{bus: bus}
}

// Receive accepts a published post and fires the notification off the
// request path.
func (s *PublishService) Receive(post models.Post) dto.PublishAck {
	logger.Log.Infof("received post for publishing: %s", post.Title)

	event := events.NewPostPublished(post.ID, post.Title, post.Author, post.Category)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.bus.Publish(ctx, event); err != nil {
			logger.Log.Warnf("post published event delivery failed: %v", err)
		}
	}()

	return dto.PublishAck{
		Success: true,
		Message: "Post received for publishing",
		Post:    dto.PublishAckPost{Title: post.Title, Author: post.Author},
	}
}
