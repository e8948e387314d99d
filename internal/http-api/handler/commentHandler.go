package handler

import (
	"errors"
	"net/http"
	"strconv"

	"videoh/internal/http-api/dto"
	"videoh/internal/http-api/middleware"
	"videoh/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment-related routes
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	comments := router.Group("/comments")
	{
		comments.GET("/:video_id", h.ListForVideo)    // All comments for a video
		comments.POST("", h.Create)                   // Create a comment
		comments.GET("/reported", h.ListReported)     // Flagged comments (admin)
		comments.GET("/delete/:comment_id", h.Delete) // Delete a comment
		comments.GET("/report/:comment_id", h.Report) // Flag a comment
	}
}

// ListForVideo retrieves all comments for a video
// GET /dev/api/comments/:video_id
func (h *CommentHandler) ListForVideo(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("video_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video ID"})
		return
	}

	comments, err := h.commentService.ListForVideo(videoID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comments could not be loaded"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Create creates a new comment
// POST /dev/api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not authenticated"})
		return
	}

	var req dto.NewCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.commentService.Create(claims, req); err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment could not be created"})
		return
	}

	c.Status(http.StatusOK)
}

// ListReported retrieves all comments flagged for review
// GET /dev/api/comments/reported
func (h *CommentHandler) ListReported(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not authenticated"})
		return
	}

	comments, err := h.commentService.ListReported(claims)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "comments could not be loaded"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Delete deletes a comment
// GET /dev/api/comments/delete/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not authenticated"})
		return
	}

	if err := h.commentService.Delete(claims, commentID); err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": "comment could not be deleted"})
		}
		return
	}

	c.Status(http.StatusOK)
}

// Report flags a comment for moderator review
// GET /dev/api/comments/report/:comment_id
func (h *CommentHandler) Report(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	if err := h.commentService.Report(commentID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment could not be reported"})
		return
	}

	c.Status(http.StatusOK)
}
