package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisLikeCountCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLikeCountCache(client *redis.Client, ttl time.Duration) *RedisLikeCountCache {
	return &RedisLikeCountCache{client: client, ttl: ttl}
}

func reviewLikeCountKey(reviewID int64) string {
	return fmt.Sprintf("review:%d:like_count", reviewID)
}

func (r *RedisLikeCountCache) GetReviewLikeCount(ctx context.Context, reviewID int64) (int64, bool, error) {
	result, err := r.client.Get(ctx, reviewLikeCountKey(reviewID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}

	count, err := strconv.ParseInt(result, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

func (r *RedisLikeCountCache) SetReviewLikeCount(ctx context.Context, reviewID, count int64) error {
	return r.client.Set(ctx, reviewLikeCountKey(reviewID), count, r.ttl).Err()
}

func (r *RedisLikeCountCache) InvalidateReviewLikeCount(ctx context.Context, reviewID int64) error {
	return r.client.Del(ctx, reviewLikeCountKey(reviewID)).Err()
}
