package repository

import (
	"videoh/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(commentID int64) (*models.Comment, error)
	GetByVideo(videoID int64) ([]models.Comment, error)
	GetReported() ([]models.Comment, error)
	Delete(commentID int64) (int64, error)
	MarkReported(commentID int64) (*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByVideo retrieves all comments for a specific video
func (r *commentRepository) GetByVideo(videoID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("video_id = ?", videoID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// GetReported retrieves all comments flagged for moderator review
func (r *commentRepository) GetReported() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("reported = ?", true).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment and reports how many rows were affected
func (r *commentRepository) Delete(commentID int64) (int64, error) {
	result := r.db.Where("id = ?", commentID).Delete(&models.Comment{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// MarkReported sets reported=true and returns the updated comment. The flag
// is one-way; nothing ever clears it.
func (r *commentRepository) MarkReported(commentID int64) (*models.Comment, error) {
	result := r.db.Model(&models.Comment{}).
		Where("id = ?", commentID).
		Update("reported", true)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(commentID)
}
