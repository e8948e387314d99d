package dto

// NewRatingDTO for creating or updating a rating
type NewRatingDTO struct {
	RatingOwnerEmail string `json:"rating_owner_email" binding:"required,email"`
	RatingVideoID    int64  `json:"rating_video_id" binding:"required"`
	Rating           int    `json:"rating" binding:"required,min=1,max=5"`
}
