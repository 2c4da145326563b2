package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cinehub/internal/api/middleware"
	"cinehub/internal/domain"
	"cinehub/internal/services"
	"cinehub/pkg/logger"
)

type FollowHandler struct {
	follows *services.FollowService
	log     logger.Logger
}

func NewFollowHandler(follows *services.FollowService, log logger.Logger) *FollowHandler {
	return &FollowHandler{
		follows: follows,
		log:     log,
	}
}

type FollowResponse struct {
	ID          int64 `json:"id"`
	FollowerID  int64 `json:"follower_id"`
	FollowingID int64 `json:"following_id"`
	IsFollowing bool  `json:"is_following"`
}

func toFollowResponse(follow *domain.Follow) FollowResponse {
	return FollowResponse{
		ID:          follow.ID,
		FollowerID:  follow.FollowerID,
		FollowingID: follow.FollowingID,
		IsFollowing: follow.IsFollowing,
	}
}

func (h *FollowHandler) Follow(c echo.Context) error {
	followingID, ok := pathID(c, "user_id")
	if !ok {
		return badRequest(c, "invalid user id")
	}

	follow, err := h.follows.Follow(c.Request().Context(), middleware.UserID(c), followingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toFollowResponse(follow))
}

func (h *FollowHandler) Unfollow(c echo.Context) error {
	followingID, ok := pathID(c, "user_id")
	if !ok {
		return badRequest(c, "invalid user id")
	}

	follow, err := h.follows.Unfollow(c.Request().Context(), middleware.UserID(c), followingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toFollowResponse(follow))
}

func (h *FollowHandler) Followers(c echo.Context) error {
	users, err := h.follows.Followers(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		h.log.Error("Failed to list followers", "error", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

func (h *FollowHandler) Following(c echo.Context) error {
	users, err := h.follows.Following(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		h.log.Error("Failed to list following", "error", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}
