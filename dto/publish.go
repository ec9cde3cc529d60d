package dto

// PublishAckPost echoes the identifying fields of the received post.
type PublishAckPost struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// PublishAck is the acknowledgement returned by the publish endpoint.
type PublishAck struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Post    PublishAckPost `json:"post"`
}

// AssistantStatusDTO reports the assistant's readiness.
type AssistantStatusDTO struct {
	Ready     bool   `json:"ready"`
	Model     string `json:"model"`
	PostCount int    `json:"postCount"`
}
