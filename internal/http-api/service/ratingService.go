package service

import (
	"errors"

	"videoh/internal/http-api/auth"
	"videoh/internal/http-api/dto"
	"videoh/internal/http-api/models"
	"videoh/internal/http-api/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	CreateOrUpdate(claims auth.Claims, req dto.NewRatingDTO) error
	AverageForVideo(videoID int64) (float64, error)
	ForUser(claims auth.Claims, ownerEmail string, videoID int64) (int, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
}

func NewRatingService(ratingRepo repository.RatingRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo}
}

// CreateOrUpdate stores the caller's rating for a video, replacing any
// earlier value. A caller may only submit ratings under their own email.
func (s *ratingService) CreateOrUpdate(claims auth.Claims, req dto.NewRatingDTO) error {
	if !auth.Owns(claims, req.RatingOwnerEmail) {
		return ErrUnauthorized
	}

	rating := &models.Rating{
		RatingOwnerEmail: req.RatingOwnerEmail,
		RatingVideoID:    req.RatingVideoID,
		Rating:           req.Rating,
	}

	return s.ratingRepo.Upsert(rating)
}

// AverageForVideo returns the arithmetic mean of a video's ratings, 0.0 when
// the video has none.
func (s *ratingService) AverageForVideo(videoID int64) (float64, error) {
	return s.ratingRepo.CalculateAverageRating(videoID)
}

// ForUser returns one user's rating for a video. Callers may only read their
// own rating.
func (s *ratingService) ForUser(claims auth.Claims, ownerEmail string, videoID int64) (int, error) {
	if !auth.Owns(claims, ownerEmail) {
		return 0, ErrUnauthorized
	}

	rating, err := s.ratingRepo.GetByOwnerAndVideo(ownerEmail, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRatingNotFound
		}
		return 0, err
	}

	return rating.Rating, nil
}
