package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"cinehub/internal/domain"
	"cinehub/pkg/logger"
)

// TrendingJob periodically recomputes the trending movie list from reaction
// counts and stores the result in the trending cache.
type TrendingJob struct {
	cron     *cron.Cron
	movies   domain.MovieRepository
	trending domain.TrendingCache
	interval time.Duration
	limit    int
	log      logger.Logger
}

func NewTrendingJob(movies domain.MovieRepository, trending domain.TrendingCache,
	interval time.Duration, limit int, log logger.Logger) *TrendingJob {
	return &TrendingJob{
		cron:     cron.New(),
		movies:   movies,
		trending: trending,
		interval: interval,
		limit:    limit,
		log:      log,
	}
}

func (j *TrendingJob) Start(ctx context.Context) error {
	j.log.Info("Starting trending recompute job", "interval", j.interval)

	spec := fmt.Sprintf("@every %s", j.interval)
	_, err := j.cron.AddFunc(spec, func() {
		j.Recompute(ctx)
	})
	if err != nil {
		return err
	}

	// Prime the cache so the endpoint has data before the first tick.
	j.Recompute(ctx)

	j.cron.Start()
	return nil
}

func (j *TrendingJob) Stop() error {
	j.log.Info("Stopping trending recompute job")
	j.cron.Stop()
	return nil
}

func (j *TrendingJob) Recompute(ctx context.Context) {
	movies, err := j.movies.TopLikedMovies(ctx, j.limit)
	if err != nil {
		j.log.Error("Failed to recompute trending movies", "error", err)
		return
	}

	if err := j.trending.SetTrending(ctx, movies); err != nil {
		j.log.Error("Failed to store trending movies", "error", err)
		return
	}

	j.log.Debug("Trending movies recomputed", "count", len(movies))
}
