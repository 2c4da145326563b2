package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cinehub/internal/api/middleware"
	"cinehub/internal/domain"
	"cinehub/internal/services"
	"cinehub/pkg/logger"
)

type LikeHandler struct {
	likes *services.LikeService
	log   logger.Logger
}

func NewLikeHandler(likes *services.LikeService, log logger.Logger) *LikeHandler {
	return &LikeHandler{
		likes: likes,
		log:   log,
	}
}

type ReviewLikeResponse struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"user_id"`
	ReviewID int64 `json:"review_id"`
	IsLiked  bool  `json:"is_liked"`
}

type ReviewLikeCountResponse struct {
	ReviewID  int64 `json:"review_id"`
	LikeCount int64 `json:"like_count"`
}

type MovieReactionResponse struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	MovieID int64  `json:"movie_id"`
	Type    string `json:"type"`
}

type MovieReactionCountResponse struct {
	MovieID  int64 `json:"movie_id"`
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

func toReviewLikeResponse(like *domain.ReviewLike) ReviewLikeResponse {
	return ReviewLikeResponse{
		ID:       like.ID,
		UserID:   like.UserID,
		ReviewID: like.ReviewID,
		IsLiked:  like.IsLiked,
	}
}

func (h *LikeHandler) LikeReview(c echo.Context) error {
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return badRequest(c, "invalid review id")
	}

	like, err := h.likes.LikeReview(c.Request().Context(), middleware.UserID(c), reviewID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toReviewLikeResponse(like))
}

func (h *LikeHandler) UnlikeReview(c echo.Context) error {
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return badRequest(c, "invalid review id")
	}

	like, err := h.likes.UnlikeReview(c.Request().Context(), middleware.UserID(c), reviewID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toReviewLikeResponse(like))
}

func (h *LikeHandler) ReviewLikeCount(c echo.Context) error {
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return badRequest(c, "invalid review id")
	}

	count, err := h.likes.ReviewLikeCount(c.Request().Context(), reviewID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ReviewLikeCountResponse{ReviewID: reviewID, LikeCount: count})
}

func (h *LikeHandler) reactToMovie(c echo.Context, reaction domain.ReactionType) error {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}

	row, err := h.likes.ReactToMovie(c.Request().Context(), middleware.UserID(c), movieID, reaction)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MovieReactionResponse{
		ID:      row.ID,
		UserID:  row.UserID,
		MovieID: row.MovieID,
		Type:    string(row.Type),
	})
}

func (h *LikeHandler) LikeMovie(c echo.Context) error {
	return h.reactToMovie(c, domain.ReactionLike)
}

func (h *LikeHandler) DislikeMovie(c echo.Context) error {
	return h.reactToMovie(c, domain.ReactionDislike)
}

func (h *LikeHandler) RemoveMovieReaction(c echo.Context) error {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}

	if err := h.likes.RemoveMovieReaction(c.Request().Context(), middleware.UserID(c), movieID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "reaction removed"})
}

func (h *LikeHandler) MovieReactionCounts(c echo.Context) error {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}

	likes, dislikes, err := h.likes.MovieReactionCounts(c.Request().Context(), movieID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MovieReactionCountResponse{
		MovieID:  movieID,
		Likes:    likes,
		Dislikes: dislikes,
	})
}
