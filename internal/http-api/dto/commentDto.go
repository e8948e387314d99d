package dto

// NewCommentDTO for creating a comment
type NewCommentDTO struct {
	VideoID    int64  `json:"video_id" binding:"required"`
	OwnerEmail string `json:"owner_email" binding:"required,email"`
	Body       string `json:"body" binding:"required,min=1,max=5000"`
}
