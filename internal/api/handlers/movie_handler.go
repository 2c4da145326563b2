package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"cinehub/internal/domain"
	"cinehub/internal/services"
	"cinehub/pkg/logger"
)

type MovieHandler struct {
	movies *services.MovieService
	log    logger.Logger
}

func NewMovieHandler(movies *services.MovieService, log logger.Logger) *MovieHandler {
	return &MovieHandler{
		movies: movies,
		log:    log,
	}
}

type CreateMovieRequest struct {
	Title    string                 `json:"title"`
	Plot     string                 `json:"plot"`
	Cast     map[string]interface{} `json:"cast"`
	Playtime int                    `json:"playtime"`
	Genre    string                 `json:"genre"`
}

type UpdateMovieRequest struct {
	Title    *string                `json:"title"`
	Plot     *string                `json:"plot"`
	Cast     map[string]interface{} `json:"cast"`
	Playtime *int                   `json:"playtime"`
	Genre    *string                `json:"genre"`
}

type MovieResponse struct {
	ID             int64                  `json:"id"`
	Title          string                 `json:"title"`
	Plot           string                 `json:"plot"`
	Cast           map[string]interface{} `json:"cast"`
	Playtime       int                    `json:"playtime"`
	Genre          string                 `json:"genre"`
	PosterImageURL string                 `json:"poster_image_url,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

func toMovieResponse(movie *domain.Movie) MovieResponse {
	return MovieResponse{
		ID:             movie.ID,
		Title:          movie.Title,
		Plot:           movie.Plot,
		Cast:           movie.Cast,
		Playtime:       movie.Playtime,
		Genre:          string(movie.Genre),
		PosterImageURL: movie.PosterImageURL,
		CreatedAt:      movie.CreatedAt,
	}
}

func toMovieResponses(movies []*domain.Movie) []MovieResponse {
	responses := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		responses = append(responses, toMovieResponse(movie))
	}
	return responses
}

func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *MovieHandler) CreateMovie(c echo.Context) error {
	var req CreateMovieRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if req.Title == "" {
		return badRequest(c, "title is required")
	}
	if req.Playtime <= 0 {
		return badRequest(c, "playtime must be positive")
	}
	genre := domain.Genre(req.Genre)
	if !genre.Valid() {
		return badRequest(c, "invalid genre")
	}

	id, err := h.movies.CreateMovie(c.Request().Context(), services.CreateMovieInput{
		Title:    req.Title,
		Plot:     req.Plot,
		Cast:     req.Cast,
		Playtime: req.Playtime,
		Genre:    genre,
	})
	if err != nil {
		h.log.Error("Failed to create movie", "title", req.Title, "error", err)
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *MovieHandler) GetMovie(c echo.Context) error {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}

	movie, err := h.movies.GetMovie(c.Request().Context(), movieID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

func (h *MovieHandler) ListMovies(c echo.Context) error {
	movies, err := h.movies.ListMovies(c.Request().Context())
	if err != nil {
		h.log.Error("Failed to list movies", "error", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toMovieResponses(movies))
}

func (h *MovieHandler) SearchMovies(c echo.Context) error {
	params := domain.MovieSearchParams{
		Title: c.QueryParam("title"),
		Genre: domain.Genre(c.QueryParam("genre")),
		Plot:  c.QueryParam("plot"),
	}

	movies, err := h.movies.SearchMovies(c.Request().Context(), params)
	if err != nil {
		h.log.Error("Failed to search movies", "error", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toMovieResponses(movies))
}

func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}

	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	input := services.UpdateMovieInput{
		Title:    req.Title,
		Plot:     req.Plot,
		Cast:     req.Cast,
		Playtime: req.Playtime,
	}
	if req.Genre != nil {
		genre := domain.Genre(*req.Genre)
		if !genre.Valid() {
			return badRequest(c, "invalid genre")
		}
		input.Genre = &genre
	}
	if req.Playtime != nil && *req.Playtime <= 0 {
		return badRequest(c, "playtime must be positive")
	}

	movie, err := h.movies.UpdateMovie(c.Request().Context(), movieID, input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}

	if err := h.movies.DeleteMovie(c.Request().Context(), movieID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "successfully deleted"})
}

func (h *MovieHandler) UploadPoster(c echo.Context) error {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "failed to read image file")
	}
	defer file.Close()

	movie, err := h.movies.UpdatePoster(c.Request().Context(), movieID, fileHeader.Filename, file)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

func (h *MovieHandler) Trending(c echo.Context) error {
	limit := 20
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			return badRequest(c, "invalid limit")
		}
		limit = parsed
	}

	movies, err := h.movies.Trending(c.Request().Context(), limit)
	if err != nil {
		h.log.Error("Failed to load trending movies", "error", err)
		return writeError(c, err)
	}
	if movies == nil {
		movies = []*domain.TrendingMovie{}
	}
	return c.JSON(http.StatusOK, movies)
}
