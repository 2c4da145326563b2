package services

import (
	"context"
	"io"

	"cinehub/internal/domain"
	"cinehub/internal/storage"
	"cinehub/pkg/logger"
)

type CreateMovieInput struct {
	Title    string
	Plot     string
	Cast     map[string]interface{}
	Playtime int
	Genre    domain.Genre
}

type UpdateMovieInput struct {
	Title    *string
	Plot     *string
	Cast     map[string]interface{}
	Playtime *int
	Genre    *domain.Genre
}

type MovieService struct {
	movies   domain.MovieRepository
	trending domain.TrendingCache
	media    *storage.LocalStorage
	log      logger.Logger
}

func NewMovieService(movies domain.MovieRepository, trending domain.TrendingCache,
	media *storage.LocalStorage, log logger.Logger) *MovieService {
	return &MovieService{
		movies:   movies,
		trending: trending,
		media:    media,
		log:      log,
	}
}

func (s *MovieService) CreateMovie(ctx context.Context, input CreateMovieInput) (int64, error) {
	movie := &domain.Movie{
		Title:    input.Title,
		Plot:     input.Plot,
		Cast:     input.Cast,
		Playtime: input.Playtime,
		Genre:    input.Genre,
	}
	return s.movies.CreateMovie(ctx, movie)
}

func (s *MovieService) GetMovie(ctx context.Context, movieID int64) (*domain.Movie, error) {
	return s.movies.GetMovie(ctx, movieID)
}

func (s *MovieService) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	return s.movies.ListMovies(ctx)
}

func (s *MovieService) SearchMovies(ctx context.Context, params domain.MovieSearchParams) ([]*domain.Movie, error) {
	return s.movies.SearchMovies(ctx, params)
}

func (s *MovieService) UpdateMovie(ctx context.Context, movieID int64, input UpdateMovieInput) (*domain.Movie, error) {
	movie, err := s.movies.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Plot != nil {
		movie.Plot = *input.Plot
	}
	if input.Cast != nil {
		movie.Cast = input.Cast
	}
	if input.Playtime != nil {
		movie.Playtime = *input.Playtime
	}
	if input.Genre != nil {
		movie.Genre = *input.Genre
	}

	if err := s.movies.UpdateMovie(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) DeleteMovie(ctx context.Context, movieID int64) error {
	movie, err := s.movies.GetMovie(ctx, movieID)
	if err != nil {
		return err
	}

	if err := s.movies.DeleteMovie(ctx, movieID); err != nil {
		return err
	}

	if err := s.media.Delete(movie.PosterImageURL); err != nil {
		s.log.Warn("Failed to delete poster image", "movie_id", movieID, "error", err)
	}
	return nil
}

// UpdatePoster stores the uploaded poster and replaces the previous one.
func (s *MovieService) UpdatePoster(ctx context.Context, movieID int64, filename string, file io.Reader) (*domain.Movie, error) {
	movie, err := s.movies.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	path, err := s.media.SaveImage("movies", filename, file)
	if err != nil {
		return nil, err
	}

	previous := movie.PosterImageURL
	movie.PosterImageURL = path
	if err := s.movies.UpdateMovie(ctx, movie); err != nil {
		return nil, err
	}

	if err := s.media.Delete(previous); err != nil {
		s.log.Warn("Failed to delete previous poster image", "movie_id", movieID, "error", err)
	}
	return movie, nil
}

// Trending serves the precomputed trending list from the cache, falling
// back to the database when the cache is empty (e.g. right after startup,
// before the first recompute).
func (s *MovieService) Trending(ctx context.Context, limit int) ([]*domain.TrendingMovie, error) {
	movies, err := s.trending.GetTrending(ctx)
	if err != nil {
		s.log.Warn("Trending cache read failed", "error", err)
	}
	if len(movies) > 0 {
		return movies, nil
	}
	return s.movies.TopLikedMovies(ctx, limit)
}
