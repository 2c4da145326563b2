package services

import (
	"context"

	"cinehub/internal/domain"
	"cinehub/pkg/logger"
)

// LikeService owns review likes and movie reactions. Review like counts go
// through a Redis read-through cache that is invalidated on every like
// state change; a like notification fires only on a genuine transition into
// the liked state.
type LikeService struct {
	likes     domain.ReviewLikeRepository
	reactions domain.MovieReactionRepository
	reviews   domain.ReviewRepository
	movies    domain.MovieRepository
	counts    domain.LikeCountCache
	triggers  *NotificationTriggers
	log       logger.Logger
}

func NewLikeService(
	likes domain.ReviewLikeRepository,
	reactions domain.MovieReactionRepository,
	reviews domain.ReviewRepository,
	movies domain.MovieRepository,
	counts domain.LikeCountCache,
	triggers *NotificationTriggers,
	log logger.Logger,
) *LikeService {
	return &LikeService{
		likes:     likes,
		reactions: reactions,
		reviews:   reviews,
		movies:    movies,
		counts:    counts,
		triggers:  triggers,
		log:       log,
	}
}

func (s *LikeService) LikeReview(ctx context.Context, userID, reviewID int64) (*domain.ReviewLike, error) {
	if _, err := s.reviews.GetReview(ctx, reviewID); err != nil {
		return nil, err
	}

	like, created, err := s.likes.GetOrCreateLike(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	activated := created
	if !created && !like.IsLiked {
		if err := s.likes.SetLiked(ctx, like.ID, true); err != nil {
			return nil, err
		}
		like.IsLiked = true
		activated = true
	}

	if activated {
		s.invalidateCount(ctx, reviewID)
		s.triggers.HandleReviewLikeEvent(ctx, domain.ReviewLikeEvent{
			UserID:   userID,
			ReviewID: reviewID,
		})
	}

	return like, nil
}

func (s *LikeService) UnlikeReview(ctx context.Context, userID, reviewID int64) (*domain.ReviewLike, error) {
	if _, err := s.reviews.GetReview(ctx, reviewID); err != nil {
		return nil, err
	}

	like, created, err := s.likes.GetOrCreateLike(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	if created || like.IsLiked {
		if err := s.likes.SetLiked(ctx, like.ID, false); err != nil {
			return nil, err
		}
		like.IsLiked = false
		s.invalidateCount(ctx, reviewID)
	}

	return like, nil
}

// ReviewLikeCount serves the like count through the cache and falls back to
// the database on a miss.
func (s *LikeService) ReviewLikeCount(ctx context.Context, reviewID int64) (int64, error) {
	if _, err := s.reviews.GetReview(ctx, reviewID); err != nil {
		return 0, err
	}

	count, hit, err := s.counts.GetReviewLikeCount(ctx, reviewID)
	if err != nil {
		s.log.Warn("Like count cache read failed", "review_id", reviewID, "error", err)
	} else if hit {
		return count, nil
	}

	count, err = s.likes.CountLikes(ctx, reviewID)
	if err != nil {
		return 0, err
	}

	if err := s.counts.SetReviewLikeCount(ctx, reviewID, count); err != nil {
		s.log.Warn("Like count cache write failed", "review_id", reviewID, "error", err)
	}

	return count, nil
}

func (s *LikeService) ReactToMovie(ctx context.Context, userID, movieID int64, reaction domain.ReactionType) (*domain.MovieReaction, error) {
	if _, err := s.movies.GetMovie(ctx, movieID); err != nil {
		return nil, err
	}
	return s.reactions.UpsertReaction(ctx, userID, movieID, reaction)
}

func (s *LikeService) RemoveMovieReaction(ctx context.Context, userID, movieID int64) error {
	return s.reactions.DeleteReaction(ctx, userID, movieID)
}

func (s *LikeService) MovieReactionCounts(ctx context.Context, movieID int64) (likes, dislikes int64, err error) {
	if _, err := s.movies.GetMovie(ctx, movieID); err != nil {
		return 0, 0, err
	}

	likes, err = s.reactions.CountReactions(ctx, movieID, domain.ReactionLike)
	if err != nil {
		return 0, 0, err
	}
	dislikes, err = s.reactions.CountReactions(ctx, movieID, domain.ReactionDislike)
	if err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}

func (s *LikeService) invalidateCount(ctx context.Context, reviewID int64) {
	if err := s.counts.InvalidateReviewLikeCount(ctx, reviewID); err != nil {
		s.log.Warn("Like count cache invalidation failed", "review_id", reviewID, "error", err)
	}
}
