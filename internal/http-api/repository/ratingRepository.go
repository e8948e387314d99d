package repository

import (
	"videoh/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(rating *models.Rating) error
	GetByOwnerAndVideo(ownerEmail string, videoID int64) (*models.Rating, error)
	CalculateAverageRating(videoID int64) (float64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or, when the (owner, video) pair already has a
// row, replaces its value. Done as a single INSERT ... ON CONFLICT DO UPDATE
// against the unique index, so two concurrent writers cannot both insert.
func (r *ratingRepository) Upsert(rating *models.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "rating_owner_email"},
			{Name: "rating_video_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"rating"}),
	}).Create(rating).Error
}

// GetByOwnerAndVideo retrieves a user's rating for a specific video
func (r *ratingRepository) GetByOwnerAndVideo(ownerEmail string, videoID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("rating_owner_email = ? AND rating_video_id = ?", ownerEmail, videoID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// CalculateAverageRating calculates the average rating for a video.
// COALESCE keeps the no-ratings case at 0 instead of NULL.
func (r *ratingRepository) CalculateAverageRating(videoID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Where("rating_video_id = ?", videoID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}
