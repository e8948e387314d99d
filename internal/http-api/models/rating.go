package models

// Rating holds one user's score for one video. The unique index over
// (rating_owner_email, rating_video_id) backs the atomic upsert in the
// rating repository.
type Rating struct {
	RatingID         int64  `json:"rating_id" gorm:"column:rating_id;primaryKey;autoIncrement"`
	RatingOwnerEmail string `json:"rating_owner_email" gorm:"column:rating_owner_email;not null;uniqueIndex:uq_ratings_owner_video"`
	RatingVideoID    int64  `json:"rating_video_id" gorm:"column:rating_video_id;not null;uniqueIndex:uq_ratings_owner_video;index"`
	Rating           int    `json:"rating" gorm:"column:rating;not null"`
}

func (Rating) TableName() string {
	return "ratings"
}
