package models

// GroundingReference is a source URL returned by the generative service
// alongside grounded text, used for citation.
type GroundingReference struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}
