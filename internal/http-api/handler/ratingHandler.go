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

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/ratings")
	{
		ratings.POST("", h.CreateOrUpdate)                        // Submit or replace a rating
		ratings.GET("/total/:video_id", h.GetAverage)             // Average rating for a video
		ratings.GET("/user/:owner_email/:video_id", h.GetForUser) // One user's rating
	}
}

// CreateOrUpdate submits the caller's rating for a video, replacing any
// previous one
// POST /dev/api/ratings
func (h *RatingHandler) CreateOrUpdate(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not authenticated"})
		return
	}

	var req dto.NewRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ratingService.CreateOrUpdate(claims, req); err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating could not be saved"})
		return
	}

	c.Status(http.StatusOK)
}

// GetAverage retrieves the average rating for a video
// GET /dev/api/ratings/total/:video_id
func (h *RatingHandler) GetAverage(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("video_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video ID"})
		return
	}

	avg, err := h.ratingService.AverageForVideo(videoID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "rating could not be loaded"})
		return
	}

	c.JSON(http.StatusOK, avg)
}

// GetForUser retrieves one user's rating for a video
// GET /dev/api/ratings/user/:owner_email/:video_id
func (h *RatingHandler) GetForUser(c *gin.Context) {
	ownerEmail := c.Param("owner_email")

	videoID, err := strconv.ParseInt(c.Param("video_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video ID"})
		return
	}

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not authenticated"})
		return
	}

	rating, err := h.ratingService.ForUser(claims, ownerEmail, videoID)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "rating could not be loaded"})
		return
	}

	c.JSON(http.StatusOK, rating)
}
