package dto

// NavigateRequest drives the view router.
type NavigateRequest struct {
	Mode   string    `json:"mode" binding:"required"`
	PostID string    `json:"postId"`
	Draft  *DraftDTO `json:"draft"`
}

// DraftDTO pre-fills the editor.
type DraftDTO struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// ViewStateDTO reports where the router currently points.
type ViewStateDTO struct {
	Mode      string    `json:"mode"`
	Title     string    `json:"title"`
	NeedsPost bool      `json:"needsPost"`
	Post      *PostDTO  `json:"post,omitempty"`
	Draft     *DraftDTO `json:"draft,omitempty"`
}
