package redis

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"cinehub/internal/domain"
)

const trendingKey = "movies:trending"

type RedisTrendingCache struct {
	client *redis.Client
}

func NewRedisTrendingCache(client *redis.Client) *RedisTrendingCache {
	return &RedisTrendingCache{client: client}
}

func (r *RedisTrendingCache) SetTrending(ctx context.Context, movies []*domain.TrendingMovie) error {
	data, err := json.Marshal(movies)
	if err != nil {
		return err
	}
	// No TTL: the recompute job overwrites the key on every run.
	return r.client.Set(ctx, trendingKey, data, 0).Err()
}

func (r *RedisTrendingCache) GetTrending(ctx context.Context) ([]*domain.TrendingMovie, error) {
	data, err := r.client.Get(ctx, trendingKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var movies []*domain.TrendingMovie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}
