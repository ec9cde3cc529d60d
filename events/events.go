package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType names the notifications this application emits.
type EventType string

const (
	PostPublished EventType = "post.published"
)

// BaseEvent is the envelope shared by all events.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// PostPublishedEvent announces a locally created post. It is a best-effort
// notification: local state is already mutated by the time this is emitted,
// and delivery failure never rolls anything back.
type PostPublishedEvent struct {
	BaseEvent
	PostID   string `json:"post_id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// NewPostPublished builds a PostPublishedEvent envelope.
func NewPostPublished(postID, title, author, category string) PostPublishedEvent {
	return PostPublishedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      PostPublished,
			Timestamp: time.Now(),
			Source:    "eliteblog",
			Version:   "1",
		},
		PostID:   postID,
		Title:    title,
		Author:   author,
		Category: category,
	}
}
