package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"cinehub/internal/api/middleware"
	"cinehub/internal/domain"
	"cinehub/internal/services"
	"cinehub/pkg/logger"
)

type UserHandler struct {
	users *services.UserService
	auth  *services.AuthService
	log   logger.Logger
}

func NewUserHandler(users *services.UserService, auth *services.AuthService, log logger.Logger) *UserHandler {
	return &UserHandler{
		users: users,
		auth:  auth,
		log:   log,
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Age      *int    `json:"age"`
	Gender   *string `json:"gender"`
}

type UserResponse struct {
	ID              int64      `json:"id"`
	Username        string     `json:"username"`
	Age             int        `json:"age"`
	Gender          string     `json:"gender"`
	ProfileImageURL string     `json:"profile_image_url,omitempty"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		Age:             user.Age,
		Gender:          string(user.Gender),
		ProfileImageURL: user.ProfileImageURL,
		LastLogin:       user.LastLogin,
		CreatedAt:       user.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	return responses
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return badRequest(c, "username and password are required")
	}
	if req.Age <= 0 {
		return badRequest(c, "age must be positive")
	}
	gender := domain.Gender(req.Gender)
	if !gender.Valid() {
		return badRequest(c, "gender must be male or female")
	}

	id, err := h.users.CreateUser(c.Request().Context(), services.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Age:      req.Age,
		Gender:   gender,
	})
	if err != nil {
		h.log.Error("Failed to create user", "username", req.Username, "error", err)
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

// Login accepts form credentials and returns a bearer token.
func (h *UserHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return badRequest(c, "username and password are required")
	}

	token, err := h.auth.Login(c.Request().Context(), username, password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		h.log.Error("Failed to list users", "error", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

func (h *UserHandler) SearchUsers(c echo.Context) error {
	params := domain.UserSearchParams{
		Username: c.QueryParam("username"),
		Gender:   domain.Gender(c.QueryParam("gender")),
	}
	if ageStr := c.QueryParam("age"); ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err != nil {
			return badRequest(c, "invalid age")
		}
		params.Age = age
	}

	users, err := h.users.SearchUsers(c.Request().Context(), params)
	if err != nil {
		h.log.Error("Failed to search users", "error", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	input := services.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Age:      req.Age,
	}
	if req.Gender != nil {
		gender := domain.Gender(*req.Gender)
		if !gender.Valid() {
			return badRequest(c, "gender must be male or female")
		}
		input.Gender = &gender
	}

	user, err := h.users.UpdateUser(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) DeleteMe(c echo.Context) error {
	if err := h.users.DeleteUser(c.Request().Context(), middleware.UserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "successfully deleted"})
}

func (h *UserHandler) UploadProfileImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "failed to read image file")
	}
	defer file.Close()

	user, err := h.users.UpdateProfileImage(c.Request().Context(), middleware.UserID(c), fileHeader.Filename, file)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
