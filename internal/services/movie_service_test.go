package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub/internal/domain"
	"cinehub/internal/storage"
	"cinehub/pkg/logger"
)

func newMovieFixture(t *testing.T) (*MovieService, *fakeMovieRepo, *fakeTrendingCache) {
	t.Helper()
	movies := newFakeMovieRepo()
	cache := &fakeTrendingCache{}
	media := storage.NewLocalStorage(t.TempDir())
	return NewMovieService(movies, cache, media, logger.NewNop()), movies, cache
}

func TestTrendingServesCachedList(t *testing.T) {
	service, movies, cache := newMovieFixture(t)
	movies.trending = []*domain.TrendingMovie{{MovieID: 1, Title: "Heat", LikeCount: 3}}
	require.NoError(t, cache.SetTrending(context.Background(), []*domain.TrendingMovie{
		{MovieID: 2, Title: "Alien", LikeCount: 9},
	}))

	trending, err := service.Trending(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, trending, 1)
	assert.Equal(t, int64(2), trending[0].MovieID)
}

func TestTrendingFallsBackToDatabase(t *testing.T) {
	service, movies, _ := newMovieFixture(t)
	movies.trending = []*domain.TrendingMovie{{MovieID: 1, Title: "Heat", LikeCount: 3}}

	trending, err := service.Trending(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, trending, 1)
	assert.Equal(t, int64(1), trending[0].MovieID)
}

func TestUpdateMovieAppliesPartialChanges(t *testing.T) {
	service, _, _ := newMovieFixture(t)

	id, err := service.CreateMovie(context.Background(), CreateMovieInput{
		Title:    "Heat",
		Plot:     "Heist",
		Playtime: 170,
		Genre:    domain.GenreAction,
	})
	require.NoError(t, err)

	plot := "A heist goes wrong"
	movie, err := service.UpdateMovie(context.Background(), id, UpdateMovieInput{Plot: &plot})
	require.NoError(t, err)
	assert.Equal(t, "Heat", movie.Title)
	assert.Equal(t, plot, movie.Plot)
	assert.Equal(t, domain.GenreAction, movie.Genre)
}

func TestTrendingJobPrimesCache(t *testing.T) {
	movies := newFakeMovieRepo()
	movies.trending = []*domain.TrendingMovie{{MovieID: 1, Title: "Heat", LikeCount: 3}}
	cache := &fakeTrendingCache{}

	job := NewTrendingJob(movies, cache, time.Minute, 20, logger.NewNop())
	job.Recompute(context.Background())

	cached, err := cache.GetTrending(context.Background())
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, int64(1), cached[0].MovieID)
}
