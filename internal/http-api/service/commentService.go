package service

import (
	"errors"
	"log/slog"

	"videoh/internal/http-api/auth"
	"videoh/internal/http-api/dto"
	"videoh/internal/http-api/models"
	"videoh/internal/http-api/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	ListForVideo(videoID int64) ([]models.Comment, error)
	Create(claims auth.Claims, req dto.NewCommentDTO) error
	ListReported(claims auth.Claims) ([]models.Comment, error)
	Delete(claims auth.Claims, commentID int64) error
	Report(commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// ListForVideo retrieves all comments for a video. Any authenticated caller
// may read them; a video without comments yields an empty slice.
func (s *commentService) ListForVideo(videoID int64) ([]models.Comment, error) {
	return s.commentRepo.GetByVideo(videoID)
}

// Create stores a new comment after checking the caller is its declared owner.
func (s *commentService) Create(claims auth.Claims, req dto.NewCommentDTO) error {
	if !auth.Owns(claims, req.OwnerEmail) {
		return ErrUnauthorized
	}

	comment := &models.Comment{
		VideoID:    req.VideoID,
		OwnerEmail: req.OwnerEmail,
		Body:       req.Body,
	}

	return s.commentRepo.Create(comment)
}

// ListReported retrieves every comment flagged for review. Administrators only.
func (s *commentService) ListReported(claims auth.Claims) ([]models.Comment, error) {
	if !auth.IsAdministrator(claims) {
		return nil, ErrUnauthorized
	}
	return s.commentRepo.GetReported()
}

// Delete removes a comment. The comment is fetched first so the ownership
// rule can be applied against its stored owner; an absent comment is
// reported as not found before any authorization outcome.
func (s *commentService) Delete(claims auth.Claims, commentID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if !auth.CanDeleteComment(claims, comment.OwnerEmail) {
		slog.Debug("comment delete refused", "comment_id", commentID, "caller", claims.Email)
		return ErrUnauthorized
	}

	rows, err := s.commentRepo.Delete(commentID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Report flags a comment for moderator review. Idempotent: reporting an
// already-reported comment leaves it reported.
func (s *commentService) Report(commentID int64) error {
	if _, err := s.commentRepo.MarkReported(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
