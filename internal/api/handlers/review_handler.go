package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cinehub/internal/api/middleware"
	"cinehub/internal/domain"
	"cinehub/internal/services"
	"cinehub/pkg/logger"
)

type ReviewHandler struct {
	reviews *services.ReviewService
	log     logger.Logger
}

func NewReviewHandler(reviews *services.ReviewService, log logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		log:     log,
	}
}

type CreateReviewRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type UpdateReviewRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Rating  *int    `json:"rating"`
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

func toReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		MovieID:   review.MovieID,
		Title:     review.Title,
		Content:   review.Content,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Title == "" || req.Content == "" {
		return badRequest(c, "title and content are required")
	}

	review, err := h.reviews.CreateReview(c.Request().Context(), middleware.UserID(c), movieID,
		services.CreateReviewInput{
			Title:   req.Title,
			Content: req.Content,
			Rating:  req.Rating,
		})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toReviewResponse(review))
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return badRequest(c, "invalid review id")
	}

	review, err := h.reviews.GetReview(c.Request().Context(), reviewID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toReviewResponse(review))
}

func (h *ReviewHandler) ListMovieReviews(c echo.Context) error {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}

	reviews, err := h.reviews.ListMovieReviews(c.Request().Context(), movieID)
	if err != nil {
		return writeError(c, err)
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(review))
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return badRequest(c, "invalid review id")
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	review, err := h.reviews.UpdateReview(c.Request().Context(), middleware.UserID(c), reviewID,
		services.UpdateReviewInput{
			Title:   req.Title,
			Content: req.Content,
			Rating:  req.Rating,
		})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toReviewResponse(review))
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return badRequest(c, "invalid review id")
	}

	if err := h.reviews.DeleteReview(c.Request().Context(), middleware.UserID(c), reviewID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "successfully deleted"})
}
